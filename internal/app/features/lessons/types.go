// internal/app/features/lessons/types.go
package lessons

import (
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/attachments"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/viewdata"
)

type listRow struct {
	ID        string
	Content   string
	StartTime string
	Status    string
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

type homeworkRow struct {
	ID      string
	Title   string
	Status  string
	DueDate string
}

type viewData struct {
	viewdata.BaseVM

	ID        string
	Content   string
	Note      string
	StartTime string
	EndTime   string
	Status    string

	ClassID   string
	ClassName string

	Homeworks []homeworkRow
	Materials []attachments.Resolved
}

type deleteData struct {
	viewdata.BaseVM

	ID      string
	Content string
}
