// internal/app/features/profiles/handler.go
package profiles

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	uierrors "github.com/huulamthcsyl/e-tutor-web/internal/app/features/errors"
	profilestore "github.com/huulamthcsyl/e-tutor-web/internal/app/store/profiles"
)

// Handler is the feature-level entry point for user profile pages.
type Handler struct {
	Profiles *profilestore.Store
	Log      *zap.Logger
	ErrLog   *uierrors.ErrorLogger
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Profiles: profilestore.New(db),
		Log:      logger,
		ErrLog:   errLog,
	}
}
