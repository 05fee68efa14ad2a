package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// clearEnv зануляет все переменные, которые читает Load, чтобы тест
// не зависел от окружения машины.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DATABASE_URL", "JWT_SECRET_KEY", "SERVER_PORT",
		"R2_ACCOUNT_ID", "R2_ACCESS_KEY_ID", "R2_SECRET_ACCESS_KEY", "R2_BUCKET_NAME", "R2_PUBLIC_BASE_URL",
		"SMTP_HOST", "SMTP_PORT", "SMTP_USERNAME", "SMTP_PASSWORD", "SMTP_FROM",
	} {
		t.Setenv(key, "")
	}
}

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost/tabledraw_test?sslmode=disable")
	t.Setenv("JWT_SECRET_KEY", "secret")
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 8080, cfg.ServerPort)
	require.False(t, cfg.R2Enabled())
	require.False(t, cfg.SMTPEnabled())
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET_KEY", "secret")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/tabledraw_test")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "JWT_SECRET_KEY")
}

func TestLoadValidatesServerPort(t *testing.T) {
	clearEnv(t)
	setRequired(t)

	t.Setenv("SERVER_PORT", "not-a-port")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("SERVER_PORT", "70000")
	_, err = Load()
	require.Error(t, err)

	t.Setenv("SERVER_PORT", "9090")
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.ServerPort)
}

func TestLoadRejectsPartialR2Group(t *testing.T) {
	clearEnv(t)
	setRequired(t)
	t.Setenv("R2_ACCOUNT_ID", "acc")
	t.Setenv("R2_BUCKET_NAME", "bucket")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "incomplete Cloudflare R2 configuration")
}

func TestLoadAcceptsFullR2Group(t *testing.T) {
	clearEnv(t)
	setRequired(t)
	t.Setenv("R2_ACCOUNT_ID", "acc")
	t.Setenv("R2_ACCESS_KEY_ID", "key")
	t.Setenv("R2_SECRET_ACCESS_KEY", "secret")
	t.Setenv("R2_BUCKET_NAME", "bucket")
	t.Setenv("R2_PUBLIC_BASE_URL", "https://cdn.example.com")

	cfg, err := Load()
	require.NoError(t, err)
	require.True(t, cfg.R2Enabled())
}

func TestLoadSMTPGroup(t *testing.T) {
	clearEnv(t)
	setRequired(t)
	t.Setenv("SMTP_HOST", "smtp.example.com")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "incomplete SMTP configuration")

	t.Setenv("SMTP_USERNAME", "mailer")
	t.Setenv("SMTP_PASSWORD", "pass")
	t.Setenv("SMTP_FROM", "noreply@example.com")

	cfg, err := Load()
	require.NoError(t, err)
	require.True(t, cfg.SMTPEnabled())
	require.Equal(t, 587, cfg.SMTPPort, "SMTP port defaults to 587")
}
