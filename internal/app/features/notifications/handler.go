// internal/app/features/notifications/handler.go
package notifications

import (
	"github.com/microcosm-cc/bluemonday"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	uierrors "github.com/huulamthcsyl/e-tutor-web/internal/app/features/errors"
	notificationstore "github.com/huulamthcsyl/e-tutor-web/internal/app/store/notifications"
)

// Handler is the feature-level entry point for notification pages.
type Handler struct {
	Notifications *notificationstore.Store
	Log           *zap.Logger
	ErrLog        *uierrors.ErrorLogger

	// sanitizer strips all markup from notification bodies; they come
	// from the mobile apps and may carry HTML.
	sanitizer *bluemonday.Policy
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Notifications: notificationstore.New(db),
		Log:           logger,
		ErrLog:        errLog,
		sanitizer:     bluemonday.StrictPolicy(),
	}
}
