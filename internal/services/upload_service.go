package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"jobboard_backend/internal/config"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/storage"
	"jobboard_backend/pkg/apperrors"

	"github.com/google/uuid"
)

var resumeTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

// UploadService validates multipart files and hands them to the external
// object store. Only the resulting URL is persisted by callers.
type UploadService struct {
	storage storage.Storage
	cfg     *config.Config
}

func NewUploadService(st storage.Storage, cfg *config.Config) *UploadService {
	return &UploadService{storage: st, cfg: cfg}
}

// StoreProfileImage validates and stores a profile image (image MIME
// types, size-capped) and returns its public URL.
func (s *UploadService) StoreProfileImage(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	if fh.Size > s.cfg.Upload.MaxImageSize {
		return "", apperrors.ErrFileTooLarge
	}

	contentType := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return "", apperrors.ErrInvalidFileType
	}

	return s.store(ctx, fh, "images", contentType)
}

// StoreResume validates and stores a resume (PDF/DOC/DOCX, size-capped)
// and returns its public URL.
func (s *UploadService) StoreResume(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	if fh.Size > s.cfg.Upload.MaxResumeSize {
		return "", apperrors.ErrFileTooLarge
	}

	contentType := fh.Header.Get("Content-Type")
	if !resumeTypes[contentType] {
		// Some browsers send generic types; fall back to the extension.
		switch strings.ToLower(filepath.Ext(fh.Filename)) {
		case ".pdf", ".doc", ".docx":
		default:
			return "", apperrors.ErrInvalidFileType
		}
	}

	return s.store(ctx, fh, "resumes", contentType)
}

func (s *UploadService) store(ctx context.Context, fh *multipart.FileHeader, folder, contentType string) (string, error) {
	file, err := fh.Open()
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	defer file.Close()

	path := fmt.Sprintf("%s/%s%s", folder, uuid.NewString(), filepath.Ext(fh.Filename))

	if err := s.storage.Save(ctx, path, file, contentType); err != nil {
		return "", apperrors.UpstreamError(err, "storage", "Failed to store file")
	}
	logger.CtxInfo(ctx, "file stored", "path", path, "size", fh.Size)

	url, err := s.storage.GetURL(ctx, path)
	if err != nil {
		return "", apperrors.UpstreamError(err, "storage", "Failed to resolve file URL")
	}
	return url, nil
}
