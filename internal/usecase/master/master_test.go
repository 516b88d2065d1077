package master_test

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-site/internal/domain/catalog"
	"github.com/BruksfildServices01/barbershop-site/internal/httperr"
	"github.com/BruksfildServices01/barbershop-site/internal/models"
	infraRepo "github.com/BruksfildServices01/barbershop-site/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-site/internal/storage"
	"github.com/BruksfildServices01/barbershop-site/internal/testutil"
	"github.com/BruksfildServices01/barbershop-site/internal/usecase/master"
)

func ptr[T any](v T) *T { return &v }

type fixture struct {
	uc      *master.Masters
	repo    *infraRepo.MasterGormRepository
	gallery *infraRepo.GalleryGormRepository
	files   *storage.LocalStore
	root    string
	janitor *storage.Janitor
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	root := t.TempDir()
	files, err := storage.NewLocalStore(root, "/uploads")
	require.NoError(t, err)

	gdb := testutil.NewDB(t)
	janitor := storage.NewJanitor(files)
	repo := infraRepo.NewMasterGormRepository(gdb)
	gallery := infraRepo.NewGalleryGormRepository(gdb)
	return fixture{
		uc:      master.New(repo, gallery, files, janitor, 64),
		repo:    repo,
		gallery: gallery,
		files:   files,
		root:    root,
		janitor: janitor,
	}
}

func (f fixture) upload(t *testing.T, name string) string {
	t.Helper()
	path, err := f.uc.UploadPhoto(context.Background(), storage.Upload{Filename: name, ContentType: "image/png", Data: testutil.PNG(t, 8, 8)})
	require.NoError(t, err)
	return path
}

func (f fixture) exists(publicPath string) bool {
	_, err := os.Stat(filepath.Join(f.root, strings.TrimPrefix(publicPath, "/uploads/")))
	return err == nil
}

func TestCreateAndList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	m, err := f.uc.Create(ctx, catalog.MasterInput{Name: ptr("Ivan"), Experience: ptr(5)})
	require.NoError(t, err)
	assert.NotZero(t, m.ID)

	list, err := f.uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Ivan", list[0].Name)
	assert.Equal(t, 5, *list[0].Experience)

	_, err = f.uc.Create(ctx, catalog.MasterInput{Specialty: ptr("Fades")})
	assert.True(t, httperr.Is(err, httperr.KindValidation))
}

func TestUpdate_MergesAndReplacesPhoto(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	oldPhoto, err := f.uc.UploadPhoto(ctx, storage.Upload{Filename: "old.png", ContentType: "image/png", Data: testutil.PNG(t, 8, 8)})
	require.NoError(t, err)

	m, err := f.uc.Create(ctx, catalog.MasterInput{Name: ptr("A"), Specialty: ptr("B"), PhotoURL: ptr(oldPhoto)})
	require.NoError(t, err)

	updated, err := f.uc.Update(ctx, m.ID, catalog.MasterInput{Name: ptr("C")})
	require.NoError(t, err)
	assert.Equal(t, "C", updated.Name)
	assert.Equal(t, "B", updated.Specialty)
	assert.Equal(t, oldPhoto, updated.Photo())

	newPhoto, err := f.uc.UploadPhoto(ctx, storage.Upload{Filename: "new.png", ContentType: "image/png", Data: testutil.PNG(t, 8, 8)})
	require.NoError(t, err)

	updated, err = f.uc.Update(ctx, m.ID, catalog.MasterInput{PhotoURL: ptr(newPhoto)})
	require.NoError(t, err)
	f.janitor.Wait()

	assert.Equal(t, newPhoto, updated.Photo())
	assert.False(t, f.exists(oldPhoto))
	assert.True(t, f.exists(newPhoto))

	_, err = f.uc.Update(ctx, 999, catalog.MasterInput{Name: ptr("X")})
	assert.True(t, httperr.Is(err, httperr.KindNotFound))
}

func TestDelete_RemovesPhoto(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	photo, err := f.uc.UploadPhoto(ctx, storage.Upload{Filename: "p.png", ContentType: "image/png", Data: testutil.PNG(t, 8, 8)})
	require.NoError(t, err)
	m, err := f.uc.Create(ctx, catalog.MasterInput{Name: ptr("Ivan"), PhotoURL: ptr(photo)})
	require.NoError(t, err)

	_, err = f.uc.Delete(ctx, m.ID)
	require.NoError(t, err)
	f.janitor.Wait()
	assert.False(t, f.exists(photo))

	_, err = f.uc.Delete(ctx, m.ID)
	assert.True(t, httperr.Is(err, httperr.KindNotFound))
}

func TestUploadPhoto_DownscalesLargeImages(t *testing.T) {
	f := newFixture(t)

	path, err := f.uc.UploadPhoto(context.Background(), storage.Upload{
		Filename:    "Ivan Petrov.png",
		ContentType: "image/png",
		Data:        testutil.PNG(t, 256, 128),
	})
	require.NoError(t, err)
	assert.Regexp(t, `^/uploads/masters/\d+-Ivan_Petrov\.png$`, path)

	data, err := os.ReadFile(filepath.Join(f.root, strings.TrimPrefix(path, "/uploads/")))
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 32, img.Bounds().Dy())
}

func TestUploadPhoto_RejectsText(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.UploadPhoto(context.Background(), storage.Upload{
		Filename:    "notes.txt",
		ContentType: "text/plain",
		Data:        []byte("hi"),
	})
	assert.True(t, httperr.Is(err, httperr.KindUnsupportedMedia))
}

// deletedOnRead loses every row to a concurrent delete right after it is read.
type deletedOnRead struct {
	*infraRepo.MasterGormRepository
}

func (r deletedOnRead) Get(ctx context.Context, id uint) (*models.Master, error) {
	m, err := r.MasterGormRepository.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.MasterGormRepository.Delete(ctx, id); err != nil {
		return nil, err
	}
	return m, nil
}

func TestUpdate_ConcurrentDeleteIsNotUndone(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	m, err := f.uc.Create(ctx, catalog.MasterInput{Name: ptr("A")})
	require.NoError(t, err)

	uc := master.New(deletedOnRead{f.repo}, f.gallery, f.files, f.janitor, 64)
	_, err = uc.Update(ctx, m.ID, catalog.MasterInput{Name: ptr("C")})
	assert.True(t, httperr.Is(err, httperr.KindNotFound))

	list, err := f.uc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDelete_KeepsPhotoSharedWithAnotherMaster(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	photo := f.upload(t, "shared.png")
	a, err := f.uc.Create(ctx, catalog.MasterInput{Name: ptr("A"), PhotoURL: ptr(photo)})
	require.NoError(t, err)
	_, err = f.uc.Create(ctx, catalog.MasterInput{Name: ptr("B"), PhotoURL: ptr(photo)})
	require.NoError(t, err)

	_, err = f.uc.Delete(ctx, a.ID)
	require.NoError(t, err)
	f.janitor.Wait()
	assert.True(t, f.exists(photo))
}

func TestUpdate_KeepsReplacedPhotoShownInGallery(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	photo := f.upload(t, "cut.png")
	require.NoError(t, f.gallery.Create(ctx, &models.GalleryItem{ImageURL: photo}))
	m, err := f.uc.Create(ctx, catalog.MasterInput{Name: ptr("A"), PhotoURL: ptr(photo)})
	require.NoError(t, err)

	_, err = f.uc.Update(ctx, m.ID, catalog.MasterInput{PhotoURL: ptr("")})
	require.NoError(t, err)
	f.janitor.Wait()
	assert.True(t, f.exists(photo))
}

func TestUploadPhoto_ExtensionFollowsContent(t *testing.T) {
	f := newFixture(t)

	path, err := f.uc.UploadPhoto(context.Background(), storage.Upload{
		Filename:    "ivan.jpg",
		ContentType: "image/jpeg",
		Data:        testutil.PNG(t, 8, 8),
	})
	require.NoError(t, err)
	assert.Regexp(t, `^/uploads/masters/\d+-ivan\.png$`, path)
}
