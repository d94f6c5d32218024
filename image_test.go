package ballicon

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/bmp"
)

func TestImage_EncodeByExtension(t *testing.T) {
	img, err := Render(16)
	assert.NoError(t, err)

	testCases := []struct {
		name   string
		decode func(*bytes.Buffer) (image.Image, error)
	}{
		{name: "icon.png", decode: func(b *bytes.Buffer) (image.Image, error) { return png.Decode(b) }},
		{name: "ICON.PNG", decode: func(b *bytes.Buffer) (image.Image, error) { return png.Decode(b) }},
		{name: "icon.bmp", decode: func(b *bytes.Buffer) (image.Image, error) { return bmp.Decode(b) }},
		{name: "icon.jpg", decode: func(b *bytes.Buffer) (image.Image, error) { return jpeg.Decode(b) }},
		{name: "icon.jpeg", decode: func(b *bytes.Buffer) (image.Image, error) { return jpeg.Decode(b) }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			assert.NoError(t, Encode(&buf, tc.name, img))

			res, err := tc.decode(&buf)
			assert.NoError(t, err)
			assert.Equal(t, img.Bounds(), res.Bounds())
		})
	}
}

func TestImage_EncodeICO(t *testing.T) {
	img, err := Render(32)
	assert.NoError(t, err)

	var buf bytes.Buffer
	assert.NoError(t, Encode(&buf, "favicon.ico", img))
	// ICONDIR header: reserved, type 1 (icon), one image.
	assert.Equal(t, []byte{0, 0, 1, 0, 1, 0}, buf.Bytes()[:6])
}

func TestImage_EncodeUnsupported(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))

	for _, name := range []string{"icon.gif", "icon", "icon.webp"} {
		err := Encode(&bytes.Buffer{}, name, img)
		assert.ErrorIs(t, err, ErrUnsupportedFormat, name)
	}
}

func TestImage_WriteFile(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()

	img, err := Render(16)
	assert.NoError(err)

	path := filepath.Join(dir, "favicon-16.png")
	assert.NoError(WriteFile(path, img))

	f, err := os.Open(path)
	assert.NoError(err)
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	assert.NoError(err)
	assert.Equal(16, cfg.Width)
	assert.Equal(16, cfg.Height)
}

func TestImage_WriteFileOverwrites(t *testing.T) {
	assert := assert.New(t)
	path := filepath.Join(t.TempDir(), "icon.png")

	big, err := Render(64)
	assert.NoError(err)
	small, err := Render(8)
	assert.NoError(err)

	assert.NoError(WriteFile(path, big))
	assert.NoError(WriteFile(path, small))

	f, err := os.Open(path)
	assert.NoError(err)
	defer f.Close()

	res, err := png.Decode(f)
	assert.NoError(err)
	assert.Equal(small.Bounds(), res.Bounds())
}

func TestImage_WriteFileErrors(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))

	err := WriteFile(filepath.Join(dir, "missing", "icon.png"), img)
	var werr *WriteError
	assert.True(errors.As(err, &werr))
	assert.Equal(filepath.Join(dir, "missing", "icon.png"), werr.Path)
	assert.ErrorIs(err, os.ErrNotExist)

	path := filepath.Join(dir, "icon.tiff")
	err = WriteFile(path, img)
	assert.ErrorIs(err, ErrUnsupportedFormat)
	assert.NoFileExists(path)
}
