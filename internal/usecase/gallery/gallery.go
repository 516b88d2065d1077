package gallery

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

type Gallery struct {
	repo    catalog.GalleryRepository
	masters catalog.MasterRepository
	files   storage.FileStore
	janitor *storage.Janitor
	now     func() time.Time
}

// New wires the gallery flows. masters is only read, so a file a master
// photo points at survives deletion of its gallery item.
func New(repo catalog.GalleryRepository, masters catalog.MasterRepository, files storage.FileStore, janitor *storage.Janitor) *Gallery {
	return &Gallery{
		repo:    repo,
		masters: masters,
		files:   files,
		janitor: janitor,
		now:     time.Now,
	}
}

func (uc *Gallery) List(ctx context.Context) ([]models.GalleryItem, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, httperr.ErrStore("Failed to load gallery", err)
	}
	return items, nil
}

// Upload stores the image and then inserts its row. The two steps are not
// atomic: when the insert fails the stored file is removed again.
func (uc *Gallery) Upload(ctx context.Context, up storage.Upload) (*models.GalleryItem, error) {
	if err := storage.CheckImage(up.Filename, up.ContentType); err != nil {
		return nil, err
	}
	format, _, err := storage.Inspect(up.Data)
	if err != nil {
		return nil, err
	}

	key := storage.GalleryKey(format, uc.now())
	path, err := uc.files.Save(ctx, key, storage.ContentType(format), up.Data)
	if err != nil {
		return nil, httperr.ErrStore("Failed to store image", err)
	}

	item := &models.GalleryItem{ImageURL: path}
	if err := uc.repo.Create(ctx, item); err != nil {
		if !uc.janitor.RemoveNow(context.WithoutCancel(ctx), path) {
			log.Error().Str("path", path).Msg("orphaned gallery file after failed insert")
		}
		return nil, httperr.ErrStore("Failed to save image", err)
	}

	return item, nil
}

// Delete removes the row, then the file in the background unless another row
// still references it.
func (uc *Gallery) Delete(ctx context.Context, id uint) (*models.GalleryItem, error) {
	item, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, notFoundOr(err)
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return nil, notFoundOr(err)
	}

	inUse, err := catalog.FileInUse(ctx, item.ImageURL, uc.repo, uc.masters)
	switch {
	case err != nil:
		log.Warn().Err(err).Str("path", item.ImageURL).Msg("could not check image references, keeping file")
	case !inUse:
		uc.janitor.Remove(item.ImageURL)
	}
	return item, nil
}

func notFoundOr(err error) error {
	if errors.Is(err, catalog.ErrNotFound) {
		return httperr.ErrNotFound("Image not found")
	}
	return httperr.ErrStore("Failed to delete image", err)
}
