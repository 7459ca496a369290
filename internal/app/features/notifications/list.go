// internal/app/features/notifications/list.go
package notifications

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"

	statsstore "github.com/huulamthcsyl/e-tutor-web/internal/app/store/stats"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/listview"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/navigation"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/timeouts"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/viewdata"
	"github.com/huulamthcsyl/e-tutor-web/internal/domain/models"
)

// ServeList handles GET /notifications (with optional ?q= search and ?page=).
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	term := listview.ParseSearch(r)
	page := listview.ParsePage(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	all, err := h.Notifications.ListAll(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list notifications failed", err, "Không thể tải danh sách thông báo.", "/dashboard")
		return
	}

	filtered := listview.Filter(all, term, func(n models.Notification) []string {
		return []string{n.Title, n.Body}
	})

	pageItems, totalPages := listview.Paginate(filtered, page, listview.PageSize)
	if clamped := listview.ClampPage(page, totalPages); clamped != page {
		page = clamped
		pageItems, _ = listview.Paginate(filtered, page, listview.PageSize)
	}

	rows := make([]listRow, 0, len(pageItems))
	for _, n := range pageItems {
		audience := "Cá nhân"
		if n.Broadcast() {
			audience = "Tất cả"
		}
		rows = append(rows, listRow{
			ID:        n.ID.Hex(),
			Title:     n.Title,
			Body:      h.sanitizer.Sanitize(n.Body),
			Icon:      statsstore.ActivityIcon(n.DocumentType),
			Link:      navigation.DeepLink(n.DocumentType, n.DocumentID),
			Audience:  audience,
			CreatedAt: n.CreatedAt.Display(),
		})
	}

	templates.Render(w, r, "notifications_list", listData{
		BaseVM:     viewdata.NewBaseVM(r, "Thông báo", "/dashboard"),
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
