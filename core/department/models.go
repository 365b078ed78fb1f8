package department

import "github.com/trezcool/edulog/core"

// Department is the reference list backing all department dropdowns.
type Department struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type NewDepartment struct {
	Name string `json:"name" form:"name" validate:"required"`
}

func (nd *NewDepartment) Validate() error {
	nd.Name = core.CleanString(nd.Name)
	return core.Validate.Struct(nd)
}
