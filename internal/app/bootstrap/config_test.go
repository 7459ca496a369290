package bootstrap

import (
	"testing"
	"time"

	"go.uber.org/zap"
)

func validAppConfig() AppConfig {
	return AppConfig{
		MongoURI:         "mongodb://localhost:27017",
		MongoDatabase:    "etutor",
		SessionKey:       "test-session-key",
		SessionName:      "etutor-session",
		StorageType:      "local",
		StorageLocalPath: "./uploads/materials",
		StorageLocalURL:  "/files/materials",
		StorageS3Expiry:  15 * time.Minute,
		BaseURL:          "http://localhost:3000",
	}
}

func TestValidateConfig_Valid(t *testing.T) {
	cfg := validAppConfig()
	if err := ValidateConfig(nil, cfg, zap.NewNop()); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}

func TestValidateConfig_BadMongoURI(t *testing.T) {
	cfg := validAppConfig()
	cfg.MongoURI = "not-a-mongo-uri"
	if err := ValidateConfig(nil, cfg, zap.NewNop()); err == nil {
		t.Error("expected error for invalid MongoDB URI")
	}
}

func TestValidateConfig_UnknownStorageType(t *testing.T) {
	cfg := validAppConfig()
	cfg.StorageType = "ftp"
	if err := ValidateConfig(nil, cfg, zap.NewNop()); err == nil {
		t.Error("expected error for unknown storage type")
	}
}

func TestValidateConfig_S3RequiresBucket(t *testing.T) {
	cfg := validAppConfig()
	cfg.StorageType = "s3"
	cfg.StorageS3Bucket = ""
	if err := ValidateConfig(nil, cfg, zap.NewNop()); err == nil {
		t.Error("expected error for s3 storage without bucket")
	}

	cfg.StorageS3Bucket = "etutor-materials"
	if err := ValidateConfig(nil, cfg, zap.NewNop()); err != nil {
		t.Errorf("expected valid s3 config, got %v", err)
	}
}

func TestBuildSigner_Local(t *testing.T) {
	cfg := validAppConfig()
	signer, err := buildSigner(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("buildSigner failed: %v", err)
	}
	if signer == nil {
		t.Fatal("expected a signer")
	}
}
