package storage

import (
	"context"
	"errors"
	"time"
)

var ErrOutsideStore = errors.New("path is not managed by this store")

// Object is a stored file as seen by List.
type Object struct {
	Key        string
	PublicPath string
	ModTime    time.Time
}

// FileStore persists uploaded files under slash-separated keys and addresses
// them by the public path returned from Save.
type FileStore interface {
	Save(ctx context.Context, key, contentType string, data []byte) (string, error)
	Remove(ctx context.Context, publicPath string) error
	List(ctx context.Context, prefix string) ([]Object, error)
}
