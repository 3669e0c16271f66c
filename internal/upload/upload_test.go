package upload

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func pngUpload(t *testing.T, name string) Upload {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 8))))
	return Upload{
		Filename:    name,
		ContentType: "image/png",
		Size:        int64(buf.Len()),
		Reader:      &buf,
	}
}

func TestSaveImage(t *testing.T) {
	store := NewStore(t.TempDir())

	saved, err := store.SaveImage(pngUpload(t, "Team Photo.PNG"), "general")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(saved.Path, "/uploads/general/team-photo-"))
	require.True(t, strings.HasSuffix(saved.Filename, ".png"))
	require.Equal(t, "image/png", saved.MimeType)
	require.Greater(t, saved.Size, int64(0))

	_, err = os.Stat(filepath.Join(store.BaseDir, "general", saved.Filename))
	require.NoError(t, err)

	// png uploads get a thumbnail next to the original
	require.NotEmpty(t, saved.ThumbnailPath)
	thumb := strings.TrimPrefix(saved.ThumbnailPath, "/uploads/general/")
	_, err = os.Stat(filepath.Join(store.BaseDir, "general", thumb))
	require.NoError(t, err)
}

func TestSaveImageRejectsUnsupportedType(t *testing.T) {
	store := NewStore(t.TempDir())

	up := Upload{
		Filename:    "notes.pdf",
		ContentType: "application/pdf",
		Size:        10,
		Reader:      strings.NewReader("0123456789"),
	}
	_, err := store.SaveImage(up, "general")
	require.ErrorIs(t, err, ErrUnsupportedType)

	// nothing written
	entries, err := os.ReadDir(store.BaseDir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestSaveImageRejectsOversize(t *testing.T) {
	store := NewStore(t.TempDir())

	up := pngUpload(t, "big.png")
	up.Size = MaxImageSize + 1
	_, err := store.SaveImage(up, "general")
	require.ErrorIs(t, err, ErrFileTooLarge)

	entries, err := os.ReadDir(store.BaseDir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestSaveLogoCeilingTighterThanImages(t *testing.T) {
	store := NewStore(t.TempDir())

	up := pngUpload(t, "logo.png")
	up.Size = MaxLogoSize + 1
	_, err := store.SaveLogo(up)
	require.ErrorIs(t, err, ErrFileTooLarge)
}

func TestSaveLogoRejectsWebp(t *testing.T) {
	store := NewStore(t.TempDir())

	up := Upload{
		Filename:    "logo.webp",
		ContentType: "image/webp",
		Size:        10,
		Reader:      strings.NewReader("0123456789"),
	}
	_, err := store.SaveLogo(up)
	require.ErrorIs(t, err, ErrUnsupportedType)
}

func TestRemove(t *testing.T) {
	store := NewStore(t.TempDir())

	saved, err := store.SaveLogo(pngUpload(t, "logo.png"))
	require.NoError(t, err)

	require.NoError(t, store.Remove(saved.Path))
	_, err = os.Stat(filepath.Join(store.BaseDir, saved.Filename))
	require.True(t, os.IsNotExist(err))
}

func TestRemoveRejectsForeignPaths(t *testing.T) {
	store := NewStore(t.TempDir())

	require.Error(t, store.Remove("/etc/passwd"))
	require.Error(t, store.Remove("/uploads/../secret"))
}

func TestUniqueFilenameSanitises(t *testing.T) {
	a := uniqueFilename("Brand Logo (final).PNG")
	b := uniqueFilename("Brand Logo (final).PNG")
	require.True(t, strings.HasPrefix(a, "brand-logo-final-"))
	require.True(t, strings.HasSuffix(a, ".png"))
	require.NotEqual(t, a, b)
}
