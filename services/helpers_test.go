package services

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tabledraw/tabledraw/models"
	"github.com/tabledraw/tabledraw/storage"
)

func TestParseStartDate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{"iso date", "2026-09-01", time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)},
		{"rfc3339", "2026-09-01T10:30:00Z", time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)},
		{"us style", "Sep 1, 2026 10:00", time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)},
		{"padded", "  2026-09-01  ", time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseStartDate(tt.raw)
			require.NoError(t, err)
			require.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestParseStartDateRejectsGarbage(t *testing.T) {
	_, err := parseStartDate("next tuesday-ish")
	require.ErrorIs(t, err, ErrTournamentInvalidStartDate)

	_, err = parseStartDate("")
	require.ErrorIs(t, err, ErrTournamentInvalidStartDate)
}

func TestIsValidStatusTransition(t *testing.T) {
	tests := []struct {
		current models.TournamentStatus
		next    models.TournamentStatus
		want    bool
	}{
		{models.StatusSetup, models.StatusRegistration, true},
		{models.StatusSetup, models.StatusCanceled, true},
		{models.StatusSetup, models.StatusActive, false},
		{models.StatusRegistration, models.StatusActive, true},
		{models.StatusRegistration, models.StatusSetup, false},
		{models.StatusActive, models.StatusCompleted, true},
		{models.StatusActive, models.StatusCanceled, true},
		{models.StatusActive, models.StatusRegistration, false},
		{models.StatusCompleted, models.StatusActive, false},
		{models.StatusCanceled, models.StatusRegistration, false},
		// Переход в тот же статус всегда допустим (no-op).
		{models.StatusCompleted, models.StatusCompleted, true},
	}
	for _, tt := range tests {
		got := isValidStatusTransition(tt.current, tt.next)
		require.Equal(t, tt.want, got, "%s -> %s", tt.current, tt.next)
	}
}

func TestGetExtensionFromContentType(t *testing.T) {
	tests := []struct {
		contentType string
		want        string
	}{
		{"image/jpeg", ".jpg"},
		{"image/jpg", ".jpg"},
		{"image/png", ".png"},
		{"image/gif", ".gif"},
		{"image/webp", ".webp"},
	}
	for _, tt := range tests {
		got, err := GetExtensionFromContentType(tt.contentType)
		require.NoError(t, err)
		require.Equal(t, tt.want, got)
	}

	_, err := GetExtensionFromContentType("application/pdf")
	require.ErrorIs(t, err, ErrInvalidContentType)
}

type stubUploader struct {
	baseURL string
}

func (s *stubUploader) Upload(ctx context.Context, key, contentType string, reader io.Reader) (*storage.UploadResult, error) {
	return &storage.UploadResult{Key: key}, nil
}

func (s *stubUploader) Delete(ctx context.Context, key string) error { return nil }

func (s *stubUploader) GetPublicURL(key string) string { return s.baseURL + "/" + key }

func TestPopulateTournamentLogoURL(t *testing.T) {
	key := "tournaments/7/logo_1.png"
	uploader := &stubUploader{baseURL: "https://cdn.example.com"}

	tournament := &models.Tournament{ID: 7, LogoKey: &key}
	populateTournamentLogoURL(tournament, uploader)
	require.NotNil(t, tournament.LogoURL)
	require.Equal(t, "https://cdn.example.com/tournaments/7/logo_1.png", *tournament.LogoURL)

	// Без загрузчика и без ключа URL не проставляется.
	bare := &models.Tournament{ID: 8}
	populateTournamentLogoURL(bare, uploader)
	require.Nil(t, bare.LogoURL)

	withKey := &models.Tournament{ID: 9, LogoKey: &key}
	populateTournamentLogoURL(withKey, nil)
	require.Nil(t, withKey.LogoURL)
}

func TestCanManage(t *testing.T) {
	tournament := &models.Tournament{ID: 1, DirectorID: 42}

	require.True(t, canManage(tournament, 42, models.RoleDirector))
	require.True(t, canManage(tournament, 99, models.RoleAdmin))
	require.False(t, canManage(tournament, 99, models.RoleDirector))
}
