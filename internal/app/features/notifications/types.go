// internal/app/features/notifications/types.go
package notifications

import (
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/viewdata"
)

// listRow is one notification in the list. Body arrives sanitized to
// plain text.
type listRow struct {
	ID        string
	Title     string
	Body      string
	Icon      string
	Link      string
	Audience  string
	CreatedAt string
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

type deleteData struct {
	viewdata.BaseVM

	ID    string
	Title string
}
