// internal/app/features/lessons/list.go
package lessons

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"

	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/listview"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/timeouts"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/viewdata"
	"github.com/huulamthcsyl/e-tutor-web/internal/domain/models"
)

// ServeList handles GET /lessons (with optional ?q= search and ?page=).
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	term := listview.ParseSearch(r)
	page := listview.ParsePage(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	all, err := h.Lessons.ListAll(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list lessons failed", err, "Không thể tải danh sách buổi học.", "/dashboard")
		return
	}

	filtered := listview.Filter(all, term, func(l models.Lesson) []string {
		return []string{l.Content, l.Note}
	})

	pageItems, totalPages := listview.Paginate(filtered, page, listview.PageSize)
	if clamped := listview.ClampPage(page, totalPages); clamped != page {
		page = clamped
		pageItems, _ = listview.Paginate(filtered, page, listview.PageSize)
	}

	rows := make([]listRow, 0, len(pageItems))
	for _, l := range pageItems {
		rows = append(rows, listRow{
			ID:        l.ID.Hex(),
			Content:   l.Content,
			StartTime: l.StartTime.Display(),
			Status:    l.Status,
		})
	}

	templates.Render(w, r, "lessons_list", listData{
		BaseVM:     viewdata.NewBaseVM(r, "Buổi học", "/dashboard"),
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
