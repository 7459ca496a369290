// internal/app/features/lessons/view.go
package lessons

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	lessonstore "github.com/huulamthcsyl/e-tutor-web/internal/app/store/lessons"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/attachments"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/refs"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/timeouts"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/viewdata"
	"github.com/huulamthcsyl/e-tutor-web/internal/domain/models"
)

// ServeView handles GET /lessons/{id}.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	idHex := chi.URLParam(r, "id")
	oid, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "bad lesson id", "Không tìm thấy buổi học.", "/lessons")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	l, err := h.Lessons.GetByID(ctx, oid)
	switch {
	case errors.Is(err, lessonstore.ErrNotFound):
		h.ErrLog.LogNotFound(w, r, "lesson not found", "Không tìm thấy buổi học.", "/lessons")
		return
	case err != nil:
		h.ErrLog.LogServerError(w, r, "load lesson failed", err, "Không thể tải buổi học.", "/lessons")
		return
	}

	cl := refs.ResolveOne(ctx, l.ClassID, h.Classes.GetByID)

	// Homework ids whose documents no longer exist are dropped, not
	// rendered as placeholders.
	resolved := refs.ResolveAll(ctx, l.HomeworkIDs,
		func(ctx context.Context, id primitive.ObjectID) (models.Homework, error) {
			hw, err := h.Homeworks.GetByID(ctx, id)
			if err != nil {
				return models.Homework{}, err
			}
			return *hw, nil
		},
		func(primitive.ObjectID) models.Homework {
			return models.Homework{}
		})

	data := viewData{
		BaseVM:    viewdata.NewBaseVM(r, "Buổi học", "/lessons"),
		ID:        l.ID.Hex(),
		Content:   l.Content,
		Note:      l.Note,
		StartTime: l.StartTime.Display(),
		EndTime:   l.EndTime.Display(),
		Status:    l.Status,
		Materials: attachments.Resolve(ctx, h.Signer, l.Materials),
	}

	if cl != nil {
		data.ClassID = cl.ID.Hex()
		data.ClassName = cl.Name
	}

	for _, hw := range resolved {
		if hw.ID.IsZero() {
			continue
		}
		data.Homeworks = append(data.Homeworks, homeworkRow{
			ID:      hw.ID.Hex(),
			Title:   hw.Title,
			Status:  hw.Status,
			DueDate: hw.DueDate.Display(),
		})
	}

	templates.Render(w, r, "lesson_view", data)
}
