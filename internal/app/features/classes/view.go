// internal/app/features/classes/view.go
package classes

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	classstore "github.com/huulamthcsyl/e-tutor-web/internal/app/store/classes"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/format"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/refs"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/timeouts"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/viewdata"
	"github.com/huulamthcsyl/e-tutor-web/internal/domain/models"
)

// ServeView handles GET /classes/{id}.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	idHex := chi.URLParam(r, "id")
	oid, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "bad class id", "Không tìm thấy lớp học.", "/classes")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	cl, err := h.Classes.GetByID(ctx, oid)
	switch {
	case errors.Is(err, classstore.ErrNotFound):
		h.ErrLog.LogNotFound(w, r, "class not found", "Không tìm thấy lớp học.", "/classes")
		return
	case err != nil:
		h.ErrLog.LogServerError(w, r, "load class failed", err, "Không thể tải lớp học.", "/classes")
		return
	}

	// Members resolve concurrently; a missing profile becomes a
	// placeholder row instead of failing the page.
	members := refs.ResolveAll(ctx, cl.Members,
		func(ctx context.Context, id primitive.ObjectID) (models.Profile, error) {
			p, err := h.Profiles.GetByID(ctx, id)
			if err != nil {
				return models.Profile{}, err
			}
			return *p, nil
		},
		func(id primitive.ObjectID) models.Profile {
			return models.Profile{
				ID:          id,
				Name:        "no name",
				PhoneNumber: "no phone",
				Role:        models.RoleStudent,
			}
		})

	lessons, err := h.Lessons.ListByClass(ctx, cl.ID)
	if err != nil {
		// The class page is still useful without its lesson list.
		h.Log.Error("list class lessons failed", zap.Error(err), zap.String("class_id", idHex))
		lessons = nil
	}

	data := viewData{
		BaseVM:      viewdata.NewBaseVM(r, cl.Name, "/classes"),
		ID:          cl.ID.Hex(),
		Name:        cl.Name,
		Description: cl.Description,
		Tuition:     format.VND(cl.Tuition),
		CreatedAt:   cl.CreatedAt.Display(),
	}

	for _, s := range cl.Schedules {
		data.Schedules = append(data.Schedules, scheduleRow{
			Day:   format.DayName(s.Day),
			Hours: s.StartTime + " – " + s.EndTime,
		})
	}

	for _, m := range members {
		data.Members = append(data.Members, memberRow{
			ID:       m.ID.Hex(),
			Name:     m.Name,
			Phone:    m.PhoneNumber,
			RoleName: models.RoleName(m.Role),
		})
	}

	for _, l := range lessons {
		data.Lessons = append(data.Lessons, lessonRow{
			ID:        l.ID.Hex(),
			Content:   l.Content,
			StartTime: l.StartTime.Display(),
			Status:    l.Status,
		})
	}

	templates.Render(w, r, "class_view", data)
}
