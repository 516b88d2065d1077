package master

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/barbershop-site/internal/domain/catalog"
	"github.com/BruksfildServices01/barbershop-site/internal/httperr"
	"github.com/BruksfildServices01/barbershop-site/internal/models"
	"github.com/BruksfildServices01/barbershop-site/internal/storage"
)

type Masters struct {
	repo     catalog.MasterRepository
	gallery  catalog.GalleryRepository
	files    storage.FileStore
	janitor  *storage.Janitor
	maxPhoto int
	now      func() time.Time
}

// New wires the master flows. gallery is only read, to keep files that a
// gallery item still shows.
func New(repo catalog.MasterRepository, gallery catalog.GalleryRepository, files storage.FileStore, janitor *storage.Janitor, maxPhotoPx int) *Masters {
	return &Masters{
		repo:     repo,
		gallery:  gallery,
		files:    files,
		janitor:  janitor,
		maxPhoto: maxPhotoPx,
		now:      time.Now,
	}
}

func (uc *Masters) List(ctx context.Context) ([]models.Master, error) {
	masters, err := uc.repo.List(ctx)
	if err != nil {
		return nil, httperr.ErrStore("Failed to load masters", err)
	}
	return masters, nil
}

func (uc *Masters) Create(ctx context.Context, in catalog.MasterInput) (*models.Master, error) {
	if err := in.ValidateCreate(); err != nil {
		return nil, err
	}

	m := in.NewMaster()
	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, httperr.ErrStore("Failed to create master", err)
	}
	return m, nil
}

// Update applies MergeUpdate semantics. A replaced photo is removed from
// storage once the row points at the new one.
func (uc *Masters) Update(ctx context.Context, id uint, in catalog.MasterInput) (*models.Master, error) {
	if err := in.ValidateUpdate(); err != nil {
		return nil, err
	}

	m, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Failed to load master")
	}

	oldPhoto := m.Photo()
	catalog.MergeUpdate(m, in)
	if m.PhotoURL != nil && *m.PhotoURL == "" {
		m.PhotoURL = nil
	}

	if err := uc.repo.Save(ctx, m); err != nil {
		return nil, notFoundOr(err, "Failed to update master")
	}

	if oldPhoto != m.Photo() {
		uc.releasePhoto(ctx, oldPhoto)
	}
	return m, nil
}

func (uc *Masters) Delete(ctx context.Context, id uint) (*models.Master, error) {
	m, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Failed to delete master")
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return nil, notFoundOr(err, "Failed to delete master")
	}

	uc.releasePhoto(ctx, m.Photo())
	return m, nil
}

// UploadPhoto stores a master photo and returns its public path. The caller
// attaches the path to a master through Create or Update.
func (uc *Masters) UploadPhoto(ctx context.Context, up storage.Upload) (string, error) {
	if err := storage.CheckImage(up.Filename, up.ContentType); err != nil {
		return "", err
	}

	data, err := storage.FitWithin(up.Data, uc.maxPhoto)
	if err != nil {
		return "", err
	}
	format, _, err := storage.Inspect(data)
	if err != nil {
		return "", err
	}

	path, err := uc.files.Save(ctx, storage.MasterPhotoKey(up.Filename, format, uc.now()), storage.ContentType(format), data)
	if err != nil {
		return "", httperr.ErrStore("Failed to store photo", err)
	}
	return path, nil
}

// releasePhoto removes path unless another row still references it. When the
// check itself fails the file is left for the orphan sweeper.
func (uc *Masters) releasePhoto(ctx context.Context, path string) {
	if path == "" {
		return
	}
	inUse, err := catalog.FileInUse(ctx, path, uc.gallery, uc.repo)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("could not check photo references, keeping file")
		return
	}
	if inUse {
		return
	}
	uc.janitor.Remove(path)
}

func notFoundOr(err error, msg string) error {
	if errors.Is(err, catalog.ErrNotFound) {
		return httperr.ErrNotFound("Master not found")
	}
	return httperr.ErrStore(msg, err)
}
