package storage

import (
	"context"
	"io"
)

// UploadResult описывает сохранённый объект: ключ в бакете,
// публичный адрес и ETag от провайдера.
type UploadResult struct {
	Key      string
	Location string
	ETag     string
}

// FileUploader - абстракция над объектным хранилищем.
// Сейчас единственная реализация - Cloudflare R2, но сервисы
// зависят только от этого интерфейса.
type FileUploader interface {
	Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*UploadResult, error)

	Delete(ctx context.Context, key string) error

	GetPublicURL(key string) string
}
