package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/petcare/petcare-api/internal/domains/uploads/domain"
	"github.com/petcare/petcare-api/internal/domains/uploads/ports"
)

// ErrInvalidUpload wraps every rejection that maps to 400.
var ErrInvalidUpload = errors.New("invalid upload")

// PublicPath is where stored files are served from.
const PublicPath = "/uploads/"

// Service validates images and hands them to storage.
type Service struct {
	storage ports.Storage
	baseURL string
	newName func() string
}

func NewService(storage ports.Storage, publicBaseURL string) *Service {
	return &Service{
		storage: storage,
		baseURL: strings.TrimRight(publicBaseURL, "/"),
		newName: uuid.NewString,
	}
}

// Upload stores content as <uuid><ext>. size is the size the client declared.
func (s *Service) Upload(ctx context.Context, originalName string, size int64, content io.Reader) (*ports.Stored, error) {
	if content == nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidUpload, domain.ErrMissingFile)
	}
	img, err := domain.NewImage(originalName, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidUpload, err)
	}
	filename := s.newName() + img.Extension
	// Read one byte past the limit so an understated size is still caught.
	written, err := s.storage.Save(ctx, filename, io.LimitReader(content, domain.MaxImageSize+1))
	if err != nil {
		return nil, err
	}
	if written > domain.MaxImageSize {
		_ = s.storage.Delete(ctx, filename)
		return nil, fmt.Errorf("%w: %w", ErrInvalidUpload, domain.ErrFileTooLarge)
	}
	return &ports.Stored{
		URL:          s.baseURL + PublicPath + url.PathEscape(filename),
		Filename:     filename,
		OriginalName: img.OriginalName,
		Size:         written,
	}, nil
}
