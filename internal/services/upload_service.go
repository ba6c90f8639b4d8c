package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"
	"time"

	"workhubb_backend/internal/apperrors"
	"workhubb_backend/internal/config"
	"workhubb_backend/internal/dto"
	"workhubb_backend/internal/storage"

	"github.com/google/uuid"
)

var dataURIPattern = regexp.MustCompile(`^data:([^;]+);base64,`)

// UploadService stores profile photos in the blob store and hands back
// a public URL. Photos are treated as immutable: every upload gets a
// fresh path, nothing is overwritten.
type UploadService struct {
	store        storage.Storage
	maxSize      int64
	allowedTypes []string
}

func NewUploadService(store storage.Storage, cfg *config.Config) *UploadService {
	return &UploadService{
		store:        store,
		maxSize:      cfg.Upload.MaxSize,
		allowedTypes: cfg.Upload.AllowedTypes,
	}
}

// UploadImage validates and stores one image payload.
func (s *UploadService) UploadImage(ctx context.Context, reader io.Reader, size int64, contentType, fileName string) (*dto.UploadResponse, error) {
	if size > s.maxSize {
		return nil, apperrors.ErrFileTooLarge
	}
	if !s.typeAllowed(contentType) {
		return nil, apperrors.ErrInvalidFileType
	}

	blobPath := s.blobPath(fileName, contentType)
	if err := s.store.Save(ctx, blobPath, reader, contentType); err != nil {
		return nil, apperrors.InternalError(err)
	}

	url, err := s.store.GetURL(ctx, blobPath)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.UploadResponse{URL: url, Pathname: blobPath}, nil
}

// UploadBase64 accepts the JSON alternative: a base64 string with an
// optional data:image/...;base64, prefix.
func (s *UploadService) UploadBase64(ctx context.Context, req *dto.Base64UploadRequest) (*dto.UploadResponse, error) {
	payload := req.Base64
	if payload == "" {
		payload = req.Data
	}
	if payload == "" {
		return nil, apperrors.ErrNoFileProvided
	}

	contentType := "image/jpeg"
	if m := dataURIPattern.FindStringSubmatch(payload); m != nil {
		contentType = m[1]
		payload = payload[len(m[0]):]
	} else if i := strings.Index(payload, ","); i >= 0 {
		payload = payload[i+1:]
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid base64 image data")
	}

	// No default file name: with an empty name blobPath falls back to
	// the MIME subtype, so a data:image/jpeg payload lands as .jpeg.
	return s.UploadImage(ctx, bytes.NewReader(raw), int64(len(raw)), contentType, req.FileName)
}

func (s *UploadService) typeAllowed(contentType string) bool {
	for _, allowed := range s.allowedTypes {
		if strings.HasPrefix(contentType, allowed) {
			return true
		}
	}
	return false
}

// blobPath builds a unique destination, keeping the original extension
// when there is one and falling back to the MIME subtype.
func (s *UploadService) blobPath(fileName, contentType string) string {
	ext := strings.TrimPrefix(path.Ext(fileName), ".")
	if ext == "" {
		if i := strings.Index(contentType, "/"); i >= 0 {
			ext = contentType[i+1:]
		} else {
			ext = "jpg"
		}
	}
	suffix := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("profile-photos/avatar-%d-%s.%s", time.Now().UnixMilli(), suffix, ext)
}
