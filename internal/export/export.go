// Package export writes the landing page as a static site: one HTML file per
// theme, the structured-data record and the assets. Every file is replaced
// atomically so a web server reading the directory never sees a partial page.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/natefinch/atomic"
	"github.com/sirupsen/logrus"

	"hypnosis-landing/internal/content"
	"hypnosis-landing/internal/page"
	"hypnosis-landing/internal/schema"
	"hypnosis-landing/internal/theme"
	"hypnosis-landing/web"
)

// Options describes one export
type Options struct {
	Dir     string
	Catalog *content.Catalog
	// Default is rendered as the site's index.html
	Default theme.Theme
	// Themes each get <name>/index.html
	Themes []theme.Theme
	Year   int
}

// Site writes the export and returns the written paths, relative to Dir
func Site(opts Options) ([]string, error) {
	if opts.Dir == "" {
		return nil, fmt.Errorf("export: no output directory")
	}
	if opts.Catalog == nil {
		return nil, fmt.Errorf("export: no catalog")
	}

	w := &writer{dir: opts.Dir}

	if err := w.page("index.html", opts, opts.Default); err != nil {
		return nil, err
	}
	for _, th := range opts.Themes {
		if err := w.page(path.Join(th.Name, "index.html"), opts, th); err != nil {
			return nil, err
		}
	}

	rec, err := schema.LocalBusiness(opts.Catalog.Business)
	if err != nil {
		return nil, fmt.Errorf("export: structured data: %w", err)
	}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: structured data: %w", err)
	}
	if err := w.write("schema.json", data); err != nil {
		return nil, err
	}

	if err := w.assets(); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"dir":   opts.Dir,
		"files": len(w.written),
	}).Info("Static export written")
	return w.written, nil
}

type writer struct {
	dir     string
	written []string
}

func (w *writer) page(name string, opts Options, th theme.Theme) error {
	var buf bytes.Buffer
	err := page.Render(page.Options{
		Theme:   th,
		Catalog: opts.Catalog,
		Year:    opts.Year,
	}).Render(&buf)
	if err != nil {
		return fmt.Errorf("export: render %s: %w", th.Name, err)
	}
	return w.write(name, buf.Bytes())
}

func (w *writer) write(name string, data []byte) error {
	target := filepath.Join(w.dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := atomic.WriteFile(target, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("export: write %s: %w", name, err)
	}
	w.written = append(w.written, name)
	return nil
}

// assets copies the embedded static directory as is
func (w *writer) assets() error {
	return fs.WalkDir(web.Static, web.StaticRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(web.Static, p)
		if err != nil {
			return fmt.Errorf("export: read asset %s: %w", p, err)
		}
		return w.write(p, data)
	})
}
