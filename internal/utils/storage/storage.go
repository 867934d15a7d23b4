package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"
)

var (
	ErrFileNotFound    = errors.New("file not found")
	ErrInvalidFileName = errors.New("invalid file name")
)

// FileStorage keeps uploaded files in a flat namespace addressed by file name.
type FileStorage interface {
	Save(ctx context.Context, name string, file *multipart.FileHeader) error
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	Delete(ctx context.Context, name string) error
}

// New builds the backend selected by driver ("local" or "s3").
func New(ctx context.Context, driver string, uploadDir string) (FileStorage, error) {
	switch driver {
	case "", "local":
		return NewLocalStorage(uploadDir)
	case "s3":
		return NewAwsS3(ctx)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}

func checkName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return ErrInvalidFileName
	}
	return nil
}
