// Package filex handles the local files picked for upload.
package filex

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
)

var ErrIsDirectory = errors.New("is a directory")

// LocalFile is a file chosen for upload. Only the handle is kept; bytes are
// read at upload time.
type LocalFile struct {
	Path string
	Name string
	Size int64
}

// Select resolves path and checks that it names a regular file.
func Select(path string) (*LocalFile, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("abs %s: %w", path, err)
	}

	fi, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", abs, err)
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("%s: %w", abs, ErrIsDirectory)
	}

	return &LocalFile{Path: abs, Name: fi.Name(), Size: fi.Size()}, nil
}

// Load reads the file and guesses its content type, first by extension and
// then by sniffing the bytes.
func Load(f *LocalFile) ([]byte, string, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", f.Path, err)
	}

	ct := mime.TypeByExtension(filepath.Ext(f.Name))
	if ct == "" {
		ct = http.DetectContentType(data)
	}
	return data, ct, nil
}
