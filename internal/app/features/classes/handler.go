// internal/app/features/classes/handler.go
package classes

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	uierrors "github.com/huulamthcsyl/e-tutor-web/internal/app/features/errors"
	classstore "github.com/huulamthcsyl/e-tutor-web/internal/app/store/classes"
	lessonstore "github.com/huulamthcsyl/e-tutor-web/internal/app/store/lessons"
	profilestore "github.com/huulamthcsyl/e-tutor-web/internal/app/store/profiles"
)

// Handler is the feature-level entry point for class pages.
type Handler struct {
	Classes  *classstore.Store
	Lessons  *lessonstore.Store
	Profiles *profilestore.Store
	Log      *zap.Logger
	ErrLog   *uierrors.ErrorLogger
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Classes:  classstore.New(db),
		Lessons:  lessonstore.New(db),
		Profiles: profilestore.New(db),
		Log:      logger,
		ErrLog:   errLog,
	}
}
