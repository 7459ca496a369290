// internal/app/features/lessons/handler.go
package lessons

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	uierrors "github.com/huulamthcsyl/e-tutor-web/internal/app/features/errors"
	classstore "github.com/huulamthcsyl/e-tutor-web/internal/app/store/classes"
	homeworkstore "github.com/huulamthcsyl/e-tutor-web/internal/app/store/homeworks"
	lessonstore "github.com/huulamthcsyl/e-tutor-web/internal/app/store/lessons"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/attachments"
)

// Handler is the feature-level entry point for lesson pages.
type Handler struct {
	Lessons   *lessonstore.Store
	Classes   *classstore.Store
	Homeworks *homeworkstore.Store
	Signer    attachments.Signer
	Log       *zap.Logger
	ErrLog    *uierrors.ErrorLogger
}

func NewHandler(db *mongo.Database, signer attachments.Signer, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Lessons:   lessonstore.New(db),
		Classes:   classstore.New(db),
		Homeworks: homeworkstore.New(db),
		Signer:    signer,
		Log:       logger,
		ErrLog:    errLog,
	}
}
