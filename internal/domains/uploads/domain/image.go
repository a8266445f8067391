// Package domain validates uploaded images.
package domain

import (
	"errors"
	"path/filepath"
	"strings"
)

// MaxImageSize is the upload size limit in bytes.
const MaxImageSize int64 = 5 << 20

var (
	ErrMissingFile   = errors.New("nenhum arquivo foi enviado")
	ErrNotAnImage    = errors.New("apenas arquivos de imagem são permitidos")
	ErrFileTooLarge  = errors.New("arquivo excede o limite de 5MB")
	allowedExtension = map[string]struct{}{".jpg": {}, ".jpeg": {}, ".png": {}, ".gif": {}}
)

// Image describes an incoming file before it is stored.
type Image struct {
	OriginalName string
	Size         int64
	Extension    string
}

// NewImage checks the extension (case-insensitive) and size of an upload.
func NewImage(originalName string, size int64) (Image, error) {
	originalName = strings.TrimSpace(filepath.Base(originalName))
	if originalName == "" || originalName == "." || originalName == string(filepath.Separator) {
		return Image{}, ErrMissingFile
	}
	ext := strings.ToLower(filepath.Ext(originalName))
	if _, ok := allowedExtension[ext]; !ok {
		return Image{}, ErrNotAnImage
	}
	if size > MaxImageSize {
		return Image{}, ErrFileTooLarge
	}
	return Image{OriginalName: originalName, Size: size, Extension: ext}, nil
}
