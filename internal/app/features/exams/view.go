// internal/app/features/exams/view.go
package exams

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	examstore "github.com/huulamthcsyl/e-tutor-web/internal/app/store/exams"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/attachments"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/refs"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/timeouts"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/viewdata"
)

// ServeView handles GET /exams/{id}.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	idHex := chi.URLParam(r, "id")
	oid, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "bad exam id", "Không tìm thấy bài kiểm tra.", "/exams")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	e, err := h.Exams.GetByID(ctx, oid)
	switch {
	case errors.Is(err, examstore.ErrNotFound):
		h.ErrLog.LogNotFound(w, r, "exam not found", "Không tìm thấy bài kiểm tra.", "/exams")
		return
	case err != nil:
		h.ErrLog.LogServerError(w, r, "load exam failed", err, "Không thể tải bài kiểm tra.", "/exams")
		return
	}

	cl := refs.ResolveOne(ctx, e.ClassID, h.Classes.GetByID)

	// The exam papers and what students handed in are signed as two
	// independent batches; a failure in one never blanks the other.
	materials := attachments.Resolve(ctx, h.Signer, e.Materials)
	works := attachments.Resolve(ctx, h.Signer, e.StudentWorks)

	data := viewData{
		BaseVM:       viewdata.NewBaseVM(r, e.Title, "/exams"),
		ID:           e.ID.Hex(),
		Title:        e.Title,
		Description:  e.Description,
		StartTime:    e.StartTime.Display(),
		EndTime:      e.EndTime.Display(),
		Status:       e.Status,
		Feedback:     e.Feedback,
		Materials:    materials,
		StudentWorks: works,
	}

	if e.Score != nil {
		data.HasScore = true
		data.Score = *e.Score
	}

	if !e.SubmittedAt.Time.IsZero() {
		data.SubmittedAt = e.SubmittedAt.Display()
	}

	if cl != nil {
		data.ClassID = cl.ID.Hex()
		data.ClassName = cl.Name
	}

	templates.Render(w, r, "exam_view", data)
}
