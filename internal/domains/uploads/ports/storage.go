package ports

import (
	"context"
	"io"
)

// Storage writes an uploaded file under a generated name.
type Storage interface {
	Save(ctx context.Context, filename string, content io.Reader) (int64, error)
	Delete(ctx context.Context, filename string) error
}

// Stored is the result of a successful upload.
type Stored struct {
	URL          string
	Filename     string
	OriginalName string
	Size         int64
}
