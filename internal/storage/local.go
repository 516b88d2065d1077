package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// LocalStore keeps files on disk below Root; they are served by the HTTP
// layer under PublicPrefix.
type LocalStore struct {
	Root         string
	PublicPrefix string
}

func NewLocalStore(root, publicPrefix string) (*LocalStore, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &LocalStore{
		Root:         abs,
		PublicPrefix: "/" + strings.Trim(publicPrefix, "/"),
	}, nil
}

// Save writes data to key and refuses to overwrite an existing file.
func (s *LocalStore) Save(_ context.Context, key, _ string, data []byte) (string, error) {
	full, err := s.resolve(key)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", err
	}

	f, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(full)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(full)
		return "", err
	}

	return s.publicPath(key), nil
}

// Remove deletes the file behind publicPath. Missing files are not an error.
func (s *LocalStore) Remove(_ context.Context, publicPath string) error {
	key, ok := strings.CutPrefix(publicPath, s.PublicPrefix+"/")
	if !ok {
		return ErrOutsideStore
	}
	full, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (s *LocalStore) List(_ context.Context, prefix string) ([]Object, error) {
	dir, err := s.resolve(prefix)
	if err != nil {
		return nil, err
	}

	var out []Object
	err = filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(s.Root, p)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)
		out = append(out, Object{Key: key, PublicPath: s.publicPath(key), ModTime: info.ModTime()})
		return nil
	})
	return out, err
}

func (s *LocalStore) publicPath(key string) string {
	return s.PublicPrefix + "/" + key
}

// resolve maps key below Root and rejects anything escaping it.
func (s *LocalStore) resolve(key string) (string, error) {
	clean := path.Clean("/" + key)
	full := filepath.Join(s.Root, filepath.FromSlash(clean))
	if full != s.Root && !strings.HasPrefix(full, s.Root+string(filepath.Separator)) {
		return "", ErrOutsideStore
	}
	return full, nil
}
