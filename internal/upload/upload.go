// Package upload stores admin-panel media under a public uploads directory.
// The database record is the source of truth for every stored file; callers
// treat a failed file removal as log-and-continue.
package upload

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	MaxImageSize = 5 * 1024 * 1024
	MaxLogoSize  = 2 * 1024 * 1024

	thumbnailEdge = 400
)

var (
	ErrNoFile          = errors.New("no file provided")
	ErrFileTooLarge    = errors.New("file too large")
	ErrUnsupportedType = errors.New("unsupported file type")

	// General media: raster images only.
	imageTypes = map[string]bool{
		"image/jpeg": true,
		"image/jpg":  true,
		"image/png":  true,
		"image/webp": true,
		"image/gif":  true,
	}

	// Site logo: vector allowed, tighter size ceiling.
	logoTypes = map[string]bool{
		"image/png":     true,
		"image/jpeg":    true,
		"image/jpg":     true,
		"image/svg+xml": true,
	}

	unsafeChars = regexp.MustCompile(`[^a-z0-9]+`)
)

type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

type SavedFile struct {
	Filename      string
	Path          string
	ThumbnailPath string
	Size          int64
	MimeType      string
}

// Store writes uploads below BaseDir and reports paths below PublicPrefix,
// mirroring how the files are later served.
type Store struct {
	BaseDir      string
	PublicPrefix string
}

func NewStore(baseDir string) *Store {
	return &Store{BaseDir: baseDir, PublicPrefix: "/uploads"}
}

// SaveImage stores a media-library upload and, for formats imaging can
// decode, a fitted thumbnail next to it. Thumbnail failures are swallowed:
// the original upload already succeeded.
func (s *Store) SaveImage(up Upload, subdir string) (*SavedFile, error) {
	if err := validate(up, imageTypes, MaxImageSize); err != nil {
		return nil, err
	}
	saved, diskPath, err := s.write(up, subdir)
	if err != nil {
		return nil, err
	}
	if thumb, err := s.makeThumbnail(diskPath, up.ContentType); err == nil && thumb != "" {
		saved.ThumbnailPath = s.publicPath(subdir, thumb)
	}
	return saved, nil
}

// SaveLogo stores the site logo with the tighter allow-list and ceiling.
func (s *Store) SaveLogo(up Upload) (*SavedFile, error) {
	if err := validate(up, logoTypes, MaxLogoSize); err != nil {
		return nil, err
	}
	saved, _, err := s.write(up, "")
	return saved, err
}

// Remove deletes the file backing a public path. Paths outside the upload
// prefix are rejected rather than resolved.
func (s *Store) Remove(publicPath string) error {
	rel, ok := strings.CutPrefix(publicPath, s.PublicPrefix+"/")
	if !ok || strings.Contains(rel, "..") {
		return fmt.Errorf("path %q is not an upload", publicPath)
	}
	return os.Remove(filepath.Join(s.BaseDir, filepath.FromSlash(rel)))
}

func validate(up Upload, allowed map[string]bool, maxSize int64) error {
	if up.Reader == nil || up.Filename == "" {
		return ErrNoFile
	}
	if !allowed[strings.ToLower(up.ContentType)] {
		return ErrUnsupportedType
	}
	if up.Size > maxSize {
		return ErrFileTooLarge
	}
	return nil
}

func (s *Store) write(up Upload, subdir string) (*SavedFile, string, error) {
	dir := s.BaseDir
	if subdir != "" {
		dir = filepath.Join(dir, subdir)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, "", err
	}

	filename := uniqueFilename(up.Filename)
	diskPath := filepath.Join(dir, filename)

	out, err := os.Create(diskPath)
	if err != nil {
		return nil, "", err
	}
	written, err := io.Copy(out, io.LimitReader(up.Reader, up.Size))
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(diskPath)
		return nil, "", err
	}

	return &SavedFile{
		Filename: filename,
		Path:     s.publicPath(subdir, filename),
		Size:     written,
		MimeType: up.ContentType,
	}, diskPath, nil
}

func (s *Store) makeThumbnail(diskPath, contentType string) (string, error) {
	switch strings.ToLower(contentType) {
	case "image/jpeg", "image/jpg", "image/png", "image/gif":
	default:
		return "", nil
	}
	img, err := imaging.Open(diskPath)
	if err != nil {
		return "", err
	}
	thumb := imaging.Fit(img, thumbnailEdge, thumbnailEdge, imaging.Lanczos)

	ext := filepath.Ext(diskPath)
	name := strings.TrimSuffix(filepath.Base(diskPath), ext) + "_thumb" + ext
	if err := imaging.Save(thumb, filepath.Join(filepath.Dir(diskPath), name)); err != nil {
		return "", err
	}
	return name, nil
}

func (s *Store) publicPath(subdir, filename string) string {
	if subdir != "" {
		return s.PublicPrefix + "/" + subdir + "/" + filename
	}
	return s.PublicPrefix + "/" + filename
}

func uniqueFilename(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	base := strings.TrimSuffix(filepath.Base(original), filepath.Ext(original))
	base = strings.Trim(unsafeChars.ReplaceAllString(strings.ToLower(base), "-"), "-")
	if base == "" {
		base = "upload"
	}
	return fmt.Sprintf("%s-%s%s", base, uuid.New().String()[:8], ext)
}
