// internal/app/features/profiles/list.go
package profiles

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"

	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/listview"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/timeouts"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/viewdata"
	"github.com/huulamthcsyl/e-tutor-web/internal/domain/models"
)

// ServeList handles GET /profiles (with optional ?q= search and ?page=).
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	term := listview.ParseSearch(r)
	page := listview.ParsePage(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	all, err := h.Profiles.ListAll(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list profiles failed", err, "Không thể tải danh sách người dùng.", "/dashboard")
		return
	}

	filtered := listview.Filter(all, term, func(p models.Profile) []string {
		return []string{p.Name, p.Email, p.PhoneNumber}
	})

	pageItems, totalPages := listview.Paginate(filtered, page, listview.PageSize)
	if clamped := listview.ClampPage(page, totalPages); clamped != page {
		page = clamped
		pageItems, _ = listview.Paginate(filtered, page, listview.PageSize)
	}

	rows := make([]listRow, 0, len(pageItems))
	for _, p := range pageItems {
		rows = append(rows, listRow{
			ID:        p.ID.Hex(),
			Name:      p.Name,
			Email:     p.Email,
			Phone:     p.PhoneNumber,
			RoleName:  models.RoleName(p.Role),
			Status:    p.Status,
			CreatedAt: p.CreatedAt.Display(),
		})
	}

	templates.Render(w, r, "profiles_list", listData{
		BaseVM:     viewdata.NewBaseVM(r, "Người dùng", "/dashboard"),
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
