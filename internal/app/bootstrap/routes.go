// internal/app/bootstrap/routes.go
package bootstrap

import (
	"context"
	"net/http"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	classesfeature "github.com/huulamthcsyl/e-tutor-web/internal/app/features/classes"
	dashboardfeature "github.com/huulamthcsyl/e-tutor-web/internal/app/features/dashboard"
	errorsfeature "github.com/huulamthcsyl/e-tutor-web/internal/app/features/errors"
	examsfeature "github.com/huulamthcsyl/e-tutor-web/internal/app/features/exams"
	healthfeature "github.com/huulamthcsyl/e-tutor-web/internal/app/features/health"
	homeworksfeature "github.com/huulamthcsyl/e-tutor-web/internal/app/features/homeworks"
	lessonsfeature "github.com/huulamthcsyl/e-tutor-web/internal/app/features/lessons"
	loginfeature "github.com/huulamthcsyl/e-tutor-web/internal/app/features/login"
	logoutfeature "github.com/huulamthcsyl/e-tutor-web/internal/app/features/logout"
	notificationsfeature "github.com/huulamthcsyl/e-tutor-web/internal/app/features/notifications"
	profilesfeature "github.com/huulamthcsyl/e-tutor-web/internal/app/features/profiles"
	classstore "github.com/huulamthcsyl/e-tutor-web/internal/app/store/classes"
	examstore "github.com/huulamthcsyl/e-tutor-web/internal/app/store/exams"
	homeworkstore "github.com/huulamthcsyl/e-tutor-web/internal/app/store/homeworks"
	lessonstore "github.com/huulamthcsyl/e-tutor-web/internal/app/store/lessons"
	notificationstore "github.com/huulamthcsyl/e-tutor-web/internal/app/store/notifications"
	profilestore "github.com/huulamthcsyl/e-tutor-web/internal/app/store/profiles"
	statsstore "github.com/huulamthcsyl/e-tutor-web/internal/app/store/stats"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/attachments"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/auth"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. It boots the template engine, applies
// session middleware, and mounts feature routers for every part of the
// admin dashboard.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	db := deps.ETutorMongoDatabase

	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	errLog := errorsfeature.NewErrorLogger(logger)

	signer, err := buildSigner(appCfg, logger)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if logged in.
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.ETutorMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Locally stored materials are served straight off disk.
	if appCfg.StorageType == "local" && appCfg.StorageLocalURL != "" {
		r.Handle(appCfg.StorageLocalURL+"/*", fileserver.Handler(appCfg.StorageLocalURL, appCfg.StorageLocalPath))
	}

	// Authentication. The login form doubles as the landing page.
	loginHandler := loginfeature.NewHandler(profilestore.New(db), sessionMgr, errLog, logger)
	r.Mount("/login", loginfeature.Routes(loginHandler))
	r.Get("/", loginHandler.ServeLogin)

	logoutHandler := logoutfeature.NewHandler(sessionMgr, logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler))

	// Error pages
	errorsHandler := errorsfeature.NewHandler()
	r.Get("/forbidden", errorsHandler.Forbidden)

	// Dashboard overview
	statsSvc := statsstore.New(
		classstore.New(db),
		lessonstore.New(db),
		examstore.New(db),
		homeworkstore.New(db),
		notificationstore.New(db),
		profilestore.New(db),
		logger,
	)
	dashboardHandler := dashboardfeature.NewHandler(statsSvc, logger)
	r.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler))

	// Resource management
	classesHandler := classesfeature.NewHandler(db, errLog, logger)
	r.Mount("/classes", classesfeature.Routes(classesHandler))

	lessonsHandler := lessonsfeature.NewHandler(db, signer, errLog, logger)
	r.Mount("/lessons", lessonsfeature.Routes(lessonsHandler))

	examsHandler := examsfeature.NewHandler(db, signer, errLog, logger)
	r.Mount("/exams", examsfeature.Routes(examsHandler))

	homeworksHandler := homeworksfeature.NewHandler(db, signer, errLog, logger)
	r.Mount("/homeworks", homeworksfeature.Routes(homeworksHandler))

	notificationsHandler := notificationsfeature.NewHandler(db, errLog, logger)
	r.Mount("/notifications", notificationsfeature.Routes(notificationsHandler))

	profilesHandler := profilesfeature.NewHandler(db, errLog, logger)
	r.Mount("/profiles", profilesfeature.Routes(profilesHandler))

	return r, nil
}

// buildSigner picks the attachment URL backend from config: presigned S3
// URLs in production, a static local path during development.
func buildSigner(appCfg AppConfig, logger *zap.Logger) (attachments.Signer, error) {
	if appCfg.StorageType != "s3" {
		base := strings.TrimSuffix(appCfg.BaseURL, "/") + appCfg.StorageLocalURL
		logger.Info("using local attachment storage", zap.String("base_url", base))
		return attachments.LocalSigner{BaseURL: base}, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(appCfg.StorageS3Region))
	if err != nil {
		logger.Error("aws config load failed", zap.Error(err))
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg)
	logger.Info("using S3 attachment storage",
		zap.String("bucket", appCfg.StorageS3Bucket),
		zap.String("prefix", appCfg.StorageS3Prefix))

	return attachments.NewS3Signer(client, appCfg.StorageS3Bucket, appCfg.StorageS3Prefix, appCfg.StorageS3Expiry), nil
}
