package archive

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/klauspost/compress/zip"
)

// File permission constants.
const (
	dirPerm = 0o755
)

// ManifestPath is the jar manifest entry.
const ManifestPath = "META-INF/MANIFEST.MF"

// reproducibleTime is used for every entry when WriterConfig.Reproducible is set.
var reproducibleTime = time.Date(1980, time.February, 1, 0, 0, 0, 0, time.UTC)

// WriterConfig holds configuration for jar writing.
type WriterConfig struct {
	// Reproducible pins entry timestamps so identical inputs give identical bytes.
	Reproducible bool
	// CreatedBy is written to the manifest's Created-By header.
	CreatedBy string
}

// DefaultWriterConfig returns the default writer configuration.
func DefaultWriterConfig() WriterConfig {
	return WriterConfig{
		Reproducible: true,
		CreatedBy:    "tpom",
	}
}

// Writer writes jars.
type Writer struct {
	config WriterConfig
	logger *slog.Logger
	now    func() time.Time
}

// NewWriter creates a Writer.
func NewWriter(config WriterConfig, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}

	return &Writer{config: config, logger: logger, now: time.Now}
}

type entry struct {
	path   string
	source string
	data   []byte
}

// Write builds jar's file. The file is replaced atomically.
func (w *Writer) Write(ctx context.Context, jar *Jar) error {
	entries, err := w.collect(ctx, jar)
	if err != nil {
		return fmt.Errorf("jar %s: %w", jar.Name(), err)
	}

	if err := os.MkdirAll(filepath.Dir(jar.File()), dirPerm); err != nil {
		return fmt.Errorf("jar %s: creating output directory: %w", jar.Name(), err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(jar.File()), "."+filepath.Base(jar.File())+".*")
	if err != nil {
		return fmt.Errorf("jar %s: %w", jar.Name(), err)
	}

	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
	}()

	if err := w.writeZip(ctx, tmp, entries); err != nil {
		return fmt.Errorf("jar %s: %w", jar.Name(), err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("jar %s: %w", jar.Name(), err)
	}

	if err := os.Rename(tmp.Name(), jar.File()); err != nil {
		return fmt.Errorf("jar %s: %w", jar.Name(), err)
	}

	w.logger.Info("Wrote jar",
		slog.String("jar", jar.Name()),
		slog.String("file", jar.File()),
		slog.Int("entries", len(entries)))

	return nil
}

func (w *Writer) collect(ctx context.Context, jar *Jar) ([]entry, error) {
	entries := []entry{{path: ManifestPath, data: w.manifest()}}

	if jar.Content() != nil {
		files, err := jar.Content().Files()
		if err != nil {
			return nil, err
		}

		for _, f := range files {
			entries = append(entries, entry{path: f.Path, source: f.Source})
		}
	}

	for _, in := range jar.Instructions() {
		src, err := in.Spec.From.Produce(ctx)
		if err != nil {
			return nil, fmt.Errorf("producing %s: %w", in.Spec.From.ID(), err)
		}

		w.logger.Debug("Embedding produced file",
			slog.String("producer", in.Spec.From.ID()),
			slog.String("entry", in.Path()))

		entries = append(entries, entry{path: in.Path(), source: src})
	}

	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.path]; ok {
			return nil, fmt.Errorf("duplicate entry %q", e.path)
		}

		seen[e.path] = struct{}{}
	}

	return entries, nil
}

func (w *Writer) manifest() []byte {
	return []byte("Manifest-Version: 1.0\r\nCreated-By: " + w.config.CreatedBy + "\r\n\r\n")
}

func (w *Writer) modTime() time.Time {
	if w.config.Reproducible {
		return reproducibleTime
	}

	return w.now()
}

func (w *Writer) writeZip(ctx context.Context, out io.Writer, entries []entry) error {
	zw := zip.NewWriter(out)
	modified := w.modTime()
	dirs := make(map[string]struct{})

	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}

		for _, d := range parentDirs(e.path) {
			if _, ok := dirs[d]; ok {
				continue
			}

			dirs[d] = struct{}{}

			if _, err := zw.CreateHeader(&zip.FileHeader{
				Name:     d,
				Method:   zip.Store,
				Modified: modified,
			}); err != nil {
				return fmt.Errorf("adding directory %s: %w", d, err)
			}
		}

		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:     e.path,
			Method:   zip.Deflate,
			Modified: modified,
		})
		if err != nil {
			return fmt.Errorf("adding %s: %w", e.path, err)
		}

		if err := copyEntry(fw, e); err != nil {
			return fmt.Errorf("adding %s: %w", e.path, err)
		}
	}

	return zw.Close()
}

func copyEntry(dst io.Writer, e entry) error {
	if e.source == "" {
		_, err := dst.Write(e.data)
		return err
	}

	f, err := os.Open(e.source)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(dst, f)

	return err
}

// parentDirs returns "a/", "a/b/" for "a/b/c".
func parentDirs(p string) []string {
	dir := path.Dir(p)
	if dir == "." || dir == "/" {
		return nil
	}

	parts := strings.Split(dir, "/")
	out := make([]string, 0, len(parts))

	for i := range parts {
		out = append(out, strings.Join(parts[:i+1], "/")+"/")
	}

	return out
}
