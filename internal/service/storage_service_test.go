package service

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"health-directory-api/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) (StorageService, string) {
	t.Helper()
	root := t.TempDir()
	log := logrus.New()
	log.SetOutput(os.Stderr)
	svc := NewStorageService(log, config.StorageConfig{
		RootDir:       root,
		PublicBaseURL: "http://localhost:8080/storage",
	})
	return svc, root
}

func TestStorageUpload(t *testing.T) {
	svc, root := newTestStorage(t)

	content := []byte("fake png bytes")
	result, err := svc.Upload(context.Background(), UploadInput{
		Bucket:      "clinics",
		Folder:      "banners",
		FileName:    "front.png",
		ContentType: "image/png",
		Size:        int64(len(content)),
		MaxSizeMB:   10,
		Content:     bytes.NewReader(content),
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(result.URL, "http://localhost:8080/storage/clinics/banners/"))
	assert.Regexp(t, regexp.MustCompile(`^banners/\d+-[0-9a-f]{12}\.png$`), result.Path)

	written, err := os.ReadFile(filepath.Join(root, "clinics", filepath.FromSlash(result.Path)))
	require.NoError(t, err)
	assert.Equal(t, content, written)
}

func TestStorageUploadRejectsNonImage(t *testing.T) {
	svc, root := newTestStorage(t)

	_, err := svc.Upload(context.Background(), UploadInput{
		Bucket:      "clinics",
		Folder:      "photos",
		FileName:    "notes.txt",
		ContentType: "text/plain",
		Size:        10,
		Content:     strings.NewReader("hello"),
	})
	assert.ErrorIs(t, err, ErrNotAnImage)

	// nothing should reach disk on a rejected upload
	_, err = os.Stat(filepath.Join(root, "clinics"))
	assert.True(t, os.IsNotExist(err))
}

func TestStorageUploadRejectsOversizedFile(t *testing.T) {
	svc, root := newTestStorage(t)

	_, err := svc.Upload(context.Background(), UploadInput{
		Bucket:      "news",
		Folder:      "photos",
		FileName:    "big.jpg",
		ContentType: "image/jpeg",
		Size:        6 * 1024 * 1024,
		MaxSizeMB:   5,
		Content:     strings.NewReader(""),
	})
	assert.ErrorIs(t, err, ErrFileTooLarge)

	_, err = os.Stat(filepath.Join(root, "news"))
	assert.True(t, os.IsNotExist(err))
}

func TestStorageUploadRejectsUnknownBucket(t *testing.T) {
	svc, _ := newTestStorage(t)

	_, err := svc.Upload(context.Background(), UploadInput{
		Bucket:      "avatars",
		FileName:    "a.png",
		ContentType: "image/png",
		Size:        10,
		Content:     strings.NewReader("x"),
	})
	assert.ErrorIs(t, err, ErrInvalidBucket)
}

func TestStorageUploadRejectsTraversalFolder(t *testing.T) {
	svc, _ := newTestStorage(t)

	_, err := svc.Upload(context.Background(), UploadInput{
		Bucket:      "partners",
		Folder:      "..",
		FileName:    "a.png",
		ContentType: "image/png",
		Size:        10,
		Content:     strings.NewReader("x"),
	})
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestStorageDelete(t *testing.T) {
	svc, root := newTestStorage(t)

	result, err := svc.Upload(context.Background(), UploadInput{
		Bucket:      "professionals",
		Folder:      "photos",
		FileName:    "face.jpg",
		ContentType: "image/jpeg",
		Size:        4,
		Content:     strings.NewReader("abcd"),
	})
	require.NoError(t, err)

	err = svc.Delete(context.Background(), "professionals", result.Path)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(root, "professionals", filepath.FromSlash(result.Path)))
	assert.True(t, os.IsNotExist(err))
}

func TestStorageDeleteMissingObject(t *testing.T) {
	svc, _ := newTestStorage(t)

	err := svc.Delete(context.Background(), "clinics", "photos/nope.png")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}

func TestStorageDeleteRejectsTraversalPath(t *testing.T) {
	svc, _ := newTestStorage(t)

	err := svc.Delete(context.Background(), "clinics", "../secrets.txt")
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestStorageListObjects(t *testing.T) {
	svc, _ := newTestStorage(t)

	_, err := svc.Upload(context.Background(), UploadInput{
		Bucket:      "news",
		Folder:      "photos",
		FileName:    "cover.png",
		ContentType: "image/png",
		Size:        3,
		Content:     strings.NewReader("abc"),
	})
	require.NoError(t, err)

	objects, err := svc.ListObjects(context.Background(), "news")
	require.NoError(t, err)
	require.Len(t, objects, 1)
	assert.Equal(t, int64(3), objects[0].Size)
	assert.True(t, strings.HasPrefix(objects[0].Path, "photos/"))

	// an empty bucket lists as empty, not as an error
	empty, err := svc.ListObjects(context.Background(), "partners")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestStorageListBuckets(t *testing.T) {
	svc, _ := newTestStorage(t)

	names := svc.ListBuckets(context.Background())
	assert.ElementsMatch(t, []string{"clinics", "professionals", "partners", "news"}, names)
}
