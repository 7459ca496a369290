// internal/app/features/exams/list.go
package exams

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"

	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/listview"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/timeouts"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/viewdata"
	"github.com/huulamthcsyl/e-tutor-web/internal/domain/models"
)

// ServeList handles GET /exams (with optional ?q= search and ?page=).
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	term := listview.ParseSearch(r)
	page := listview.ParsePage(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	all, err := h.Exams.ListAll(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list exams failed", err, "Không thể tải danh sách bài kiểm tra.", "/dashboard")
		return
	}

	filtered := listview.Filter(all, term, func(e models.Exam) []string {
		return []string{e.Title, e.Description}
	})

	pageItems, totalPages := listview.Paginate(filtered, page, listview.PageSize)
	if clamped := listview.ClampPage(page, totalPages); clamped != page {
		page = clamped
		pageItems, _ = listview.Paginate(filtered, page, listview.PageSize)
	}

	rows := make([]listRow, 0, len(pageItems))
	for _, e := range pageItems {
		rows = append(rows, listRow{
			ID:        e.ID.Hex(),
			Title:     e.Title,
			StartTime: e.StartTime.Display(),
			Status:    e.Status,
		})
	}

	templates.Render(w, r, "exams_list", listData{
		BaseVM:     viewdata.NewBaseVM(r, "Bài kiểm tra", "/dashboard"),
		Query:      term,
		Rows:       rows,
		Total:      len(filtered),
		Page:       page,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
		PrevPage:   page - 1,
		NextPage:   page + 1,
	})
}
