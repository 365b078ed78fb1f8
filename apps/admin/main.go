package main

import (
	"log"
	"os"

	"github.com/trezcool/edulog/core"
	"github.com/trezcool/edulog/storage/database"
	sqlxrepos "github.com/trezcool/edulog/storage/database/sqlx"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	core.Conf = core.NewConfig()

	// set up DB
	db, err := database.Open(core.Conf)
	errAndDie(err)
	defer db.Close()
	errAndDie(database.Ping(db))

	engine, err := database.Engine(core.Conf.DatabaseURL)
	errAndDie(err)

	// start CLI
	cli := commandLine{
		db:      db,
		engine:  engine,
		usrRepo: sqlxrepos.NewUserRepository(db),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
