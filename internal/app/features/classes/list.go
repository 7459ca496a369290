// internal/app/features/classes/list.go
package classes

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"

	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/format"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/listview"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/timeouts"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/viewdata"
	"github.com/huulamthcsyl/e-tutor-web/internal/domain/models"
)

// ServeList handles GET /classes (with optional ?q= search and ?page=).
// Filtering and paging happen in memory over the full list; the admin
// data set is small enough that this beats a query round-trip per knob.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	term := listview.ParseSearch(r)
	page := listview.ParsePage(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	all, err := h.Classes.ListAll(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list classes failed", err, "Không thể tải danh sách lớp học.", "/dashboard")
		return
	}

	filtered := listview.Filter(all, term, func(c models.Class) []string {
		return []string{c.Name, c.Description}
	})

	pageItems, totalPages := listview.Paginate(filtered, page, listview.PageSize)
	if clamped := listview.ClampPage(page, totalPages); clamped != page {
		page = clamped
		pageItems, _ = listview.Paginate(filtered, page, listview.PageSize)
	}

	rows := make([]listRow, 0, len(pageItems))
	for _, c := range pageItems {
		rows = append(rows, listRow{
			ID:          c.ID.Hex(),
			Name:        c.Name,
			Description: c.Description,
			MemberCount: len(c.Members),
			Tuition:     format.VND(c.Tuition),
			CreatedAt:   c.CreatedAt.Display(),
		})
	}

	templates.Render(w, r, "classes_list", listData{
		BaseVM:     viewdata.NewBaseVM(r, "Lớp học", "/dashboard"),
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
