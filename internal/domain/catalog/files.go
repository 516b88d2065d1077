package catalog

import (
	"context"
	"slices"
)

// FileInUse reports whether any gallery item or master still points at
// publicPath. Admins may set a master photo_url to any stored file, so one
// file can be shared between rows.
func FileInUse(ctx context.Context, publicPath string, gallery GalleryRepository, masters MasterRepository) (bool, error) {
	images, err := gallery.ImagePaths(ctx)
	if err != nil {
		return false, err
	}
	if slices.Contains(images, publicPath) {
		return true, nil
	}
	photos, err := masters.PhotoPaths(ctx)
	if err != nil {
		return false, err
	}
	return slices.Contains(photos, publicPath), nil
}
