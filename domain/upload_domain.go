package domain

import (
	"errors"
)

var (
	ErrNoFile             = errors.New("No file part")
	ErrNoFilename         = errors.New("No selected file")
	ErrDisallowedFileType = errors.New("File type not allowed")
	ErrUploadNotFound     = errors.New("File not found")
)

var AllowedImageExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
}

type UploadResponse struct {
	URL string `json:"url"`
}
