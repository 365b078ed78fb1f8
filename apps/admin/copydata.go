package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/edulog/storage/database"
)

// copyTables lists every table in dependency order; destination truncation
// runs in reverse.
var copyTables = []string{"department", `"user"`, "meeting", "task", "schedule"}

// copyData copies all rows of every table from one store to the other,
// e.g. from a local sqlite file to a networked postgres instance.
func (cli *commandLine) copyData(srcURL, dstURL string) error {
	src, err := database.OpenURL(srcURL)
	if err != nil {
		return errors.Wrap(err, "opening source database")
	}
	defer src.Close()
	dst, err := database.OpenURL(dstURL)
	if err != nil {
		return errors.Wrap(err, "opening destination database")
	}
	defer dst.Close()

	if err = database.Ping(src); err != nil {
		return errors.Wrap(err, "pinging source database")
	}
	if err = database.Ping(dst); err != nil {
		return errors.Wrap(err, "pinging destination database")
	}

	dstEngine, err := database.Engine(dstURL)
	if err != nil {
		return err
	}
	if err = database.Migrate(dst.DB, dstEngine); err != nil {
		return errors.Wrap(err, "migrating destination database")
	}

	for i := len(copyTables) - 1; i >= 0; i-- {
		if _, err = dst.Exec("DELETE FROM " + copyTables[i]); err != nil {
			return errors.Wrapf(err, "truncating %s", copyTables[i])
		}
	}

	for _, table := range copyTables {
		n, err := copyTable(src, dst, table)
		if err != nil {
			return errors.Wrapf(err, "copying %s", table)
		}
		logger.Printf("%s: %d rows copied", table, n)
	}

	if dstEngine == database.EnginePostgres {
		return resetSequences(dst)
	}
	return nil
}

func copyTable(src, dst *sqlx.DB, table string) (int, error) {
	rows, err := src.Queryx(fmt.Sprintf("SELECT * FROM %s ORDER BY id", table))
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var count int
	for rows.Next() {
		row := make(map[string]interface{})
		if err = rows.MapScan(row); err != nil {
			return count, err
		}

		cols := make([]string, 0, len(row))
		for col := range row {
			cols = append(cols, col)
		}
		sort.Strings(cols)

		insert := fmt.Sprintf(
			"INSERT INTO %s (%s) VALUES (:%s)",
			table, strings.Join(cols, ", "), strings.Join(cols, ", :"),
		)
		if _, err = dst.NamedExec(insert, row); err != nil {
			return count, err
		}
		count++
	}
	return count, rows.Err()
}

// resetSequences realigns each table's id sequence after explicit-id inserts.
func resetSequences(dst *sqlx.DB) error {
	for _, table := range copyTables {
		q := fmt.Sprintf(
			"SELECT setval(pg_get_serial_sequence('%s', 'id'), COALESCE(MAX(id), 0) + 1, false) FROM %s",
			table, table,
		)
		if _, err := dst.Exec(q); err != nil {
			return errors.Wrapf(err, "resetting %s id sequence", table)
		}
	}
	return nil
}
