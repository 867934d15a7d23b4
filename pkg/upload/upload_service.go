package upload

import (
	"context"
	"errors"
	"food-order-api/domain"
	"food-order-api/internal/utils/storage"
	"io"
	"mime/multipart"
	"strings"

	"github.com/google/uuid"
)

// PublicPath is the route prefix uploaded files are served from.
const PublicPath = "/api/uploads/"

type (
	UploadService interface {
		Upload(ctx context.Context, file *multipart.FileHeader, scheme string, host string) (domain.UploadResponse, error)
		Open(ctx context.Context, filename string) (io.ReadCloser, error)
	}

	uploadService struct {
		storage storage.FileStorage
	}
)

func NewUploadService(fileStorage storage.FileStorage) UploadService {
	return &uploadService{storage: fileStorage}
}

func (s *uploadService) Upload(ctx context.Context, file *multipart.FileHeader, scheme string, host string) (domain.UploadResponse, error) {
	if file == nil {
		return domain.UploadResponse{}, domain.ErrNoFile
	}
	if file.Filename == "" {
		return domain.UploadResponse{}, domain.ErrNoFilename
	}
	if !domain.AllowedImageExtensions[Extension(file.Filename)] {
		return domain.UploadResponse{}, domain.ErrDisallowedFileType
	}

	stored := uuid.New().String() + "_" + SecureFilename(file.Filename)
	if err := s.storage.Save(ctx, stored, file); err != nil {
		return domain.UploadResponse{}, err
	}

	return domain.UploadResponse{
		URL: strings.ToLower(scheme) + "://" + host + PublicPath + stored,
	}, nil
}

func (s *uploadService) Open(ctx context.Context, filename string) (io.ReadCloser, error) {
	rc, err := s.storage.Open(ctx, filename)
	if err != nil {
		if errors.Is(err, storage.ErrFileNotFound) {
			return nil, domain.ErrUploadNotFound
		}
		return nil, err
	}
	return rc, nil
}
