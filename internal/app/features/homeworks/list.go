// internal/app/features/homeworks/list.go
package homeworks

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"

	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/listview"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/timeouts"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/viewdata"
	"github.com/huulamthcsyl/e-tutor-web/internal/domain/models"
)

// ServeList handles GET /homeworks (with optional ?q= search and ?page=).
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	term := listview.ParseSearch(r)
	page := listview.ParsePage(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	all, err := h.Homeworks.ListAll(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list homeworks failed", err, "Không thể tải danh sách bài tập.", "/dashboard")
		return
	}

	filtered := listview.Filter(all, term, func(hw models.Homework) []string {
		return []string{hw.Title, hw.Feedback}
	})

	pageItems, totalPages := listview.Paginate(filtered, page, listview.PageSize)
	if clamped := listview.ClampPage(page, totalPages); clamped != page {
		page = clamped
		pageItems, _ = listview.Paginate(filtered, page, listview.PageSize)
	}

	rows := make([]listRow, 0, len(pageItems))
	for _, hw := range pageItems {
		rows = append(rows, listRow{
			ID:      hw.ID.Hex(),
			Title:   hw.Title,
			DueDate: hw.DueDate.Display(),
			Status:  hw.Status,
		})
	}

	templates.Render(w, r, "homeworks_list", listData{
		BaseVM:     viewdata.NewBaseVM(r, "Bài tập", "/dashboard"),
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
