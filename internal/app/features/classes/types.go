// internal/app/features/classes/types.go
package classes

import (
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/viewdata"
)

// listRow is one class in the list table.
type listRow struct {
	ID          string
	Name        string
	Description string
	MemberCount int
	Tuition     string
	CreatedAt   string
}

type listData struct {
	viewdata.BaseVM

	Query      string
	Rows       []listRow
	Total      int
	Page       int
	TotalPages int
	HasPrev    bool
	HasNext    bool
	PrevPage   int
	NextPage   int
}

// memberRow is one resolved class member. Dangling member ids arrive here
// already filled with placeholder values.
type memberRow struct {
	ID       string
	Name     string
	Phone    string
	RoleName string
}

type scheduleRow struct {
	Day   string
	Hours string
}

type lessonRow struct {
	ID        string
	Content   string
	StartTime string
	Status    string
}

type viewData struct {
	viewdata.BaseVM

	ID          string
	Name        string
	Description string
	Tuition     string
	CreatedAt   string
	Schedules   []scheduleRow
	Members     []memberRow
	Lessons     []lessonRow
}

type deleteData struct {
	viewdata.BaseVM

	ID   string
	Name string
}
