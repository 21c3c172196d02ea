package archive

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zip"
)

// ErrEntryNotFound is returned by ReadEntry for a missing entry.
var ErrEntryNotFound = errors.New("entry not found")

// Entries lists the file entries of a jar in stored order; directories are skipped.
func Entries(jarPath string) ([]string, error) {
	r, err := zip.OpenReader(jarPath)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", jarPath, err)
	}
	defer r.Close()

	var names []string

	for _, f := range r.File {
		if strings.HasSuffix(f.Name, "/") {
			continue
		}

		names = append(names, f.Name)
	}

	return names, nil
}

// ReadEntry returns the content of one entry.
func ReadEntry(jarPath, name string) ([]byte, error) {
	r, err := zip.OpenReader(jarPath)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", jarPath, err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.Name != name {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("opening %s in %s: %w", name, jarPath, err)
		}
		defer rc.Close()

		return io.ReadAll(rc)
	}

	return nil, fmt.Errorf("%s in %s: %w", name, jarPath, ErrEntryNotFound)
}
