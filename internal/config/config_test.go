package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadUsesDefaultsAndYAMLOverrides(t *testing.T) {
	clearConfigEnv(t)

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")
	yaml := `
http:
  addr: ":9090"
cloudinary:
  cloud_name: exion-cloud
  default_folder: media
auth:
  session_idle_ttl: 45m
smtp:
  notify_to: osis@sekolah.sch.id
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.HTTP.Addr != ":9090" {
		t.Fatalf("unexpected http addr: %s", cfg.HTTP.Addr)
	}
	if cfg.Cloudinary.CloudName != "exion-cloud" {
		t.Fatalf("unexpected cloudinary cloud name: %s", cfg.Cloudinary.CloudName)
	}
	if cfg.Cloudinary.DefaultFolder != "media" {
		t.Fatalf("unexpected cloudinary default folder: %s", cfg.Cloudinary.DefaultFolder)
	}
	if cfg.Auth.SessionIdleTTL.String() != "45m0s" {
		t.Fatalf("unexpected session idle ttl: %s", cfg.Auth.SessionIdleTTL)
	}
	if cfg.SMTP.NotifyTo != "osis@sekolah.sch.id" {
		t.Fatalf("unexpected smtp notify_to: %s", cfg.SMTP.NotifyTo)
	}

	if cfg.Cloudinary.UploadPreset != "exion_unsigned" {
		t.Fatalf("upload preset default should survive partial yaml: %s", cfg.Cloudinary.UploadPreset)
	}
	if cfg.S3.Bucket != "exion-documents" {
		t.Fatalf("s3 bucket default should survive partial yaml: %s", cfg.S3.Bucket)
	}
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load config with missing file: %v", err)
	}

	if cfg.HTTP.Addr != ":8080" {
		t.Fatalf("unexpected default http addr: %s", cfg.HTTP.Addr)
	}
	if cfg.Cloudinary.DefaultFolder != "uploads" {
		t.Fatalf("unexpected default upload folder: %s", cfg.Cloudinary.DefaultFolder)
	}
	if cfg.Identity.Endpoint == "" {
		t.Fatalf("identity endpoint default must not be empty")
	}
	if cfg.Auth.SessionIdleTTL.String() != "30m0s" {
		t.Fatalf("unexpected default session idle ttl: %s", cfg.Auth.SessionIdleTTL)
	}
}

func TestLoadAppliesEnvOverrides(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("CLOUDINARY_CLOUD_NAME", "env-cloud")
	t.Setenv("SESSION_IDLE_TTL", "1h")
	t.Setenv("REDIS_DB", "3")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.Cloudinary.CloudName != "env-cloud" {
		t.Fatalf("env override for cloud name not applied: %s", cfg.Cloudinary.CloudName)
	}
	if cfg.Auth.SessionIdleTTL.String() != "1h0m0s" {
		t.Fatalf("env override for session ttl not applied: %s", cfg.Auth.SessionIdleTTL)
	}
	if cfg.Redis.DB != 3 {
		t.Fatalf("env override for redis db not applied: %d", cfg.Redis.DB)
	}
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_ENV",
		"HTTP_ADDR",
		"HTTP_READ_TIMEOUT",
		"HTTP_WRITE_TIMEOUT",
		"HTTP_IDLE_TIMEOUT",
		"LOG_LEVEL",
		"POSTGRES_DSN",
		"REDIS_ADDR",
		"REDIS_PASSWORD",
		"REDIS_DB",
		"CLOUDINARY_CLOUD_NAME",
		"CLOUDINARY_API_KEY",
		"CLOUDINARY_API_SECRET",
		"CLOUDINARY_UPLOAD_PRESET",
		"CLOUDINARY_DEFAULT_FOLDER",
		"IDENTITY_API_KEY",
		"IDENTITY_ENDPOINT",
		"S3_ENDPOINT",
		"S3_ACCESS_KEY",
		"S3_SECRET_KEY",
		"S3_BUCKET",
		"S3_USE_SSL",
		"SMTP_HOST",
		"SMTP_PORT",
		"SMTP_USERNAME",
		"SMTP_PASSWORD",
		"SMTP_FROM",
		"SMTP_NOTIFY_TO",
		"JWT_SECRET",
		"SESSION_IDLE_TTL",
	} {
		t.Setenv(key, "")
	}
}
