// Package service hosts infrastructure-facing services that are not tied to
// a single entity, currently the image object store.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"health-directory-api/config"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrNotAnImage     = errors.New("file must be an image")
	ErrFileTooLarge   = errors.New("file exceeds the maximum allowed size")
	ErrInvalidBucket  = errors.New("bucket is not recognized")
	ErrInvalidPath    = errors.New("storage path is invalid")
	ErrObjectNotFound = errors.New("object not found")
)

// DefaultMaxUploadMB applies when the caller does not override the limit;
// banner uploads typically raise it to 10.
const DefaultMaxUploadMB = 5

// buckets is the closed set of entity-scoped buckets, one per uploadable
// entity type.
var buckets = map[string]bool{
	"clinics":       true,
	"professionals": true,
	"partners":      true,
	"news":          true,
}

type UploadInput struct {
	Bucket      string
	Folder      string
	FileName    string
	ContentType string
	Size        int64
	MaxSizeMB   int64
	Content     io.Reader
}

type UploadResult struct {
	URL  string `json:"url"`
	Path string `json:"path"`
}

type ObjectInfo struct {
	Path         string
	Size         int64
	LastModified time.Time
}

// StorageService stores uploaded images on the local filesystem under
// <root>/<bucket>/<folder>/ and resolves public URLs for them. Objects are
// never overwritten; every upload gets a fresh unique name.
type StorageService interface {
	Upload(ctx context.Context, input UploadInput) (*UploadResult, error)
	Delete(ctx context.Context, bucket, objectPath string) error
	ListBuckets(ctx context.Context) []string
	ListObjects(ctx context.Context, bucket string) ([]ObjectInfo, error)
}

type storageService struct {
	log          *logrus.Logger
	rootDir      string
	baseURL      string
	defaultMaxMB int64
}

func NewStorageService(log *logrus.Logger, cfg config.StorageConfig) StorageService {
	defaultMaxMB := cfg.MaxUploadMB
	if defaultMaxMB <= 0 {
		defaultMaxMB = DefaultMaxUploadMB
	}

	return &storageService{
		log:          log,
		rootDir:      cfg.RootDir,
		baseURL:      strings.TrimRight(cfg.PublicBaseURL, "/"),
		defaultMaxMB: defaultMaxMB,
	}
}

// Upload validates the file before any disk work: the MIME type must start
// with image/ and the size must not exceed the caller's limit.
func (s *storageService) Upload(ctx context.Context, input UploadInput) (*UploadResult, error) {
	if !strings.HasPrefix(input.ContentType, "image/") {
		return nil, ErrNotAnImage
	}

	maxMB := input.MaxSizeMB
	if maxMB <= 0 {
		maxMB = s.defaultMaxMB
	}
	if input.Size > maxMB*1024*1024 {
		return nil, ErrFileTooLarge
	}

	if !buckets[input.Bucket] {
		return nil, ErrInvalidBucket
	}

	folder := input.Folder
	if folder == "" {
		folder = "photos"
	}
	if !isSafeSegment(folder) {
		return nil, ErrInvalidPath
	}

	name := uniqueFileName(input.FileName)
	objectPath := path.Join(folder, name)

	dir := filepath.Join(s.rootDir, input.Bucket, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		s.log.Warnf("Failed to create storage directory: %+v", err)
		return nil, err
	}

	dst, err := os.OpenFile(filepath.Join(dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		s.log.Warnf("Failed to create object file: %+v", err)
		return nil, err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, input.Content); err != nil {
		s.log.Warnf("Failed to write object file: %+v", err)
		os.Remove(dst.Name())
		return nil, err
	}

	return &UploadResult{
		URL:  fmt.Sprintf("%s/%s/%s", s.baseURL, input.Bucket, objectPath),
		Path: objectPath,
	}, nil
}

func (s *storageService) Delete(ctx context.Context, bucket, objectPath string) error {
	if !buckets[bucket] {
		return ErrInvalidBucket
	}
	if !isSafePath(objectPath) {
		return ErrInvalidPath
	}

	full := filepath.Join(s.rootDir, bucket, filepath.FromSlash(objectPath))
	if err := os.Remove(full); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrObjectNotFound
		}
		s.log.Warnf("Failed to remove object: %+v", err)
		return err
	}
	return nil
}

func (s *storageService) ListBuckets(ctx context.Context) []string {
	names := make([]string, 0, len(buckets))
	for name := range buckets {
		names = append(names, name)
	}
	return names
}

func (s *storageService) ListObjects(ctx context.Context, bucket string) ([]ObjectInfo, error) {
	if !buckets[bucket] {
		return nil, ErrInvalidBucket
	}

	root := filepath.Join(s.rootDir, bucket)
	var objects []ObjectInfo
	err := filepath.WalkDir(root, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
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
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		objects = append(objects, ObjectInfo{
			Path:         filepath.ToSlash(rel),
			Size:         info.Size(),
			LastModified: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return objects, nil
}

// uniqueFileName builds "<unix-millis>-<token><ext>", preserving the
// original extension.
func uniqueFileName(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	token := strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), token, ext)
}

func isSafeSegment(segment string) bool {
	return segment != "" && segment != "." && segment != ".." &&
		!strings.ContainsAny(segment, `/\`)
}

func isSafePath(p string) bool {
	if p == "" {
		return false
	}
	for _, segment := range strings.Split(p, "/") {
		if !isSafeSegment(segment) {
			return false
		}
	}
	return true
}
