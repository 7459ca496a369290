// internal/app/features/exams/types.go
package exams

import (
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/attachments"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/viewdata"
)

type listRow struct {
	ID        string
	Title     string
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

type viewData struct {
	viewdata.BaseVM

	ID          string
	Title       string
	Description string
	StartTime   string
	EndTime     string
	Status      string
	HasScore    bool
	Score       float64
	Feedback    string
	SubmittedAt string

	ClassID   string
	ClassName string

	Materials    []attachments.Resolved
	StudentWorks []attachments.Resolved
}

type deleteData struct {
	viewdata.BaseVM

	ID    string
	Title string
}
