// internal/app/features/homeworks/view.go
package homeworks

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	homeworkstore "github.com/huulamthcsyl/e-tutor-web/internal/app/store/homeworks"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/attachments"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/refs"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/timeouts"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/viewdata"
)

// ServeView handles GET /homeworks/{id}.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	idHex := chi.URLParam(r, "id")
	oid, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "bad homework id", "Không tìm thấy bài tập.", "/homeworks")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	hw, err := h.Homeworks.GetByID(ctx, oid)
	switch {
	case errors.Is(err, homeworkstore.ErrNotFound):
		h.ErrLog.LogNotFound(w, r, "homework not found", "Không tìm thấy bài tập.", "/homeworks")
		return
	case err != nil:
		h.ErrLog.LogServerError(w, r, "load homework failed", err, "Không thể tải bài tập.", "/homeworks")
		return
	}

	// Both parents are optional; a zero or dangling id just drops the link.
	cl := refs.ResolveOne(ctx, hw.ClassID, h.Classes.GetByID)
	lesson := refs.ResolveOne(ctx, hw.LessonID, h.Lessons.GetByID)

	data := viewData{
		BaseVM:       viewdata.NewBaseVM(r, hw.Title, "/homeworks"),
		ID:           hw.ID.Hex(),
		Title:        hw.Title,
		DueDate:      hw.DueDate.Display(),
		Status:       hw.Status,
		Feedback:     hw.Feedback,
		Materials:    attachments.Resolve(ctx, h.Signer, hw.Materials),
		StudentWorks: attachments.Resolve(ctx, h.Signer, hw.StudentWorks),
	}

	if hw.Score != nil {
		data.HasScore = true
		data.Score = *hw.Score
	}

	if !hw.SubmittedAt.Time.IsZero() {
		data.SubmittedAt = hw.SubmittedAt.Display()
	}

	if cl != nil {
		data.ClassID = cl.ID.Hex()
		data.ClassName = cl.Name
	}

	if lesson != nil {
		data.LessonID = lesson.ID.Hex()
		data.LessonContent = lesson.Content
	}

	templates.Render(w, r, "homework_view", data)
}
