// internal/app/features/exams/handler.go
package exams

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	uierrors "github.com/huulamthcsyl/e-tutor-web/internal/app/features/errors"
	classstore "github.com/huulamthcsyl/e-tutor-web/internal/app/store/classes"
	examstore "github.com/huulamthcsyl/e-tutor-web/internal/app/store/exams"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/attachments"
)

// Handler is the feature-level entry point for exam pages.
type Handler struct {
	Exams   *examstore.Store
	Classes *classstore.Store
	Signer  attachments.Signer
	Log     *zap.Logger
	ErrLog  *uierrors.ErrorLogger
}

func NewHandler(db *mongo.Database, signer attachments.Signer, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Exams:   examstore.New(db),
		Classes: classstore.New(db),
		Signer:  signer,
		Log:     logger,
		ErrLog:  errLog,
	}
}
