package storage

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Upload is an uploaded file held in memory.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Janitor removes files that lost their owning row. Failures are logged and
// never reach the caller.
type Janitor struct {
	files   FileStore
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewJanitor(files FileStore) *Janitor {
	return &Janitor{files: files, timeout: 30 * time.Second}
}

// Remove deletes publicPath in the background.
func (j *Janitor) Remove(publicPath string) {
	if publicPath == "" {
		return
	}
	j.wg.Add(1)
	go func() {
		defer j.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
		defer cancel()
		j.RemoveNow(ctx, publicPath)
	}()
}

// RemoveNow deletes publicPath synchronously and reports whether it did.
func (j *Janitor) RemoveNow(ctx context.Context, publicPath string) bool {
	err := j.files.Remove(ctx, publicPath)
	switch {
	case err == nil:
		return true
	case errors.Is(err, ErrOutsideStore):
		log.Debug().Str("path", publicPath).Msg("file not managed by storage, skipping removal")
	default:
		log.Warn().Err(err).Str("path", publicPath).Msg("failed to remove stored file")
	}
	return false
}

// Wait blocks until background removals finish.
func (j *Janitor) Wait() {
	j.wg.Wait()
}
