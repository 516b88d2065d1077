package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/barbershop-site/internal/domain/catalog"
	"github.com/BruksfildServices01/barbershop-site/internal/storage"
)

// OrphanSweeper deletes stored uploads that no gallery item or master
// references, e.g. after a crash between file write and row insert or a
// photo uploaded but never attached.
type OrphanSweeper struct {
	files   storage.FileStore
	gallery catalog.GalleryRepository
	masters catalog.MasterRepository
	minAge  time.Duration
	now     func() time.Time
}

func NewOrphanSweeper(
	files storage.FileStore,
	gallery catalog.GalleryRepository,
	masters catalog.MasterRepository,
	minAge time.Duration,
) *OrphanSweeper {
	return &OrphanSweeper{
		files:   files,
		gallery: gallery,
		masters: masters,
		minAge:  minAge,
		now:     time.Now,
	}
}

// Sweep returns the number of removed files. Files younger than minAge are
// kept so an upload whose row is still being written is never touched.
func (s *OrphanSweeper) Sweep(ctx context.Context) (int, error) {
	referenced := map[string]bool{}

	images, err := s.gallery.ImagePaths(ctx)
	if err != nil {
		return 0, fmt.Errorf("load gallery paths: %w", err)
	}
	photos, err := s.masters.PhotoPaths(ctx)
	if err != nil {
		return 0, fmt.Errorf("load master photos: %w", err)
	}
	for _, p := range append(images, photos...) {
		referenced[p] = true
	}

	removed := 0
	cutoff := s.now().Add(-s.minAge)
	for _, prefix := range []string{storage.GalleryPrefix, storage.MastersPrefix} {
		objects, err := s.files.List(ctx, prefix)
		if err != nil {
			return removed, fmt.Errorf("list %s: %w", prefix, err)
		}
		for _, obj := range objects {
			if referenced[obj.PublicPath] || obj.ModTime.After(cutoff) {
				continue
			}
			if err := s.files.Remove(ctx, obj.PublicPath); err != nil {
				log.Warn().Err(err).Str("path", obj.PublicPath).Msg("failed to remove orphaned file")
				continue
			}
			removed++
		}
	}
	return removed, nil
}

// Schedule runs Sweep on the cron spec. An empty spec disables the job and
// returns a nil scheduler.
func Schedule(spec string, s *OrphanSweeper) (*cron.Cron, error) {
	if spec == "" {
		return nil, nil
	}

	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		removed, err := s.Sweep(ctx)
		if err != nil {
			log.Error().Err(err).Msg("orphan sweep failed")
			return
		}
		log.Info().Int("removed", removed).Msg("orphan sweep finished")
	})
	if err != nil {
		return nil, fmt.Errorf("schedule orphan sweep: %w", err)
	}

	c.Start()
	return c, nil
}
