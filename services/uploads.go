package services

import (
	"context"
	"errors"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type UploadService interface {
	UploadImage(ctx context.Context, file io.Reader) (string, error)
}

type uploadService struct {
	cld *cloudinary.Cloudinary
}

// NewUploadService configures the Cloudinary client from the
// CLOUDINARY_URL environment variable.
func NewUploadService() (UploadService, error) {
	cld, err := cloudinary.New()
	if err != nil {
		return nil, err
	}
	return &uploadService{cld: cld}, nil
}

// UploadImage proxies the file to Cloudinary and returns the secure URL.
func (s *uploadService) UploadImage(ctx context.Context, file io.Reader) (string, error) {
	resp, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder: "gramseva/complaints",
	})
	if err != nil {
		return "", err
	}
	if resp.SecureURL == "" {
		return "", errors.New("upload failed: no URL returned")
	}
	return resp.SecureURL, nil
}
