package pkgview

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
)

// ErrUnknownView is returned when no template was loaded for a view name.
var ErrUnknownView = errors.New("unknown view")

// Templates is an html/template backed renderer.
type Templates struct {
	pages map[string]*template.Template
	data  any
}

// Options configures Load.
type Options struct {
	// Layout is the shared layout file, relative to the FS root.
	Layout string
	// Pattern selects page files, e.g. "pages/*.html".
	Pattern string
	// Data is exposed to every template as .Site.
	Data any
}

// Load parses every page matching opts.Pattern with opts.Layout. The view name
// is the page file name without extension.
func Load(fsys fs.FS, opts Options) (*Templates, error) {
	files, err := fs.Glob(fsys, opts.Pattern)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates match %q", opts.Pattern)
	}

	pages := make(map[string]*template.Template, len(files))
	for _, file := range files {
		name := strings.TrimSuffix(path.Base(file), path.Ext(file))

		tmpl, err := template.New(path.Base(opts.Layout)).ParseFS(fsys, opts.Layout, file)
		if err != nil {
			return nil, fmt.Errorf("parse view %s: %w", name, err)
		}
		pages[name] = tmpl
	}

	return &Templates{pages: pages, data: opts.Data}, nil
}

type pageData struct {
	Site  any
	Model any
}

// Render executes the named view into w. Output is buffered so a failing
// template never leaves a half-written page behind.
func (t *Templates) Render(w io.Writer, name string, model any) error {
	tmpl, ok := t.pages[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownView, name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, pageData{Site: t.data, Model: model}); err != nil {
		return fmt.Errorf("render view %s: %w", name, err)
	}

	_, err := buf.WriteTo(w)
	return err
}

// Has reports whether a view with the given name was loaded.
func (t *Templates) Has(name string) bool {
	_, ok := t.pages[name]
	return ok
}
