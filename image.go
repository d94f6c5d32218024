package ballicon

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	ico "github.com/sergeymakinen/go-ico"
	"golang.org/x/image/bmp"
)

// ErrUnsupportedFormat is returned when the output file extension has no known encoder.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// WriteError reports a failure to create or write an output file.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("unable to write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Encode encodes the image to w in the format matching the extension of name.
func Encode(w io.Writer, name string, img image.Image) error {
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".png":
		return png.Encode(w, img)
	case ".bmp":
		return bmp.Encode(w, img)
	case ".ico":
		return ico.Encode(w, img)
	case ".jpg", ".jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 100})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// WriteFile encodes the image into the file at path, replacing its content.
// The file is removed in case the encoding fails.
func WriteFile(path string, img image.Image) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &WriteError{Path: path, Err: cerr}
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	if err := Encode(f, path, img); err != nil {
		if errors.Is(err, ErrUnsupportedFormat) {
			return err
		}
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
