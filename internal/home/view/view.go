// Package view holds the site's embedded page templates and static assets.
package view

import (
	"embed"
	"io/fs"

	"github.com/shandysiswandi/tradewind/internal/pkg/pkgview"
)

// Page names rendered by the home endpoints.
const (
	PageIndex   = "index"
	PagePrivacy = "privacy"
	PageError   = "error"
)

//go:embed templates
var templates embed.FS

//go:embed static
var static embed.FS

// Site is the data shared by every page.
type Site struct {
	Name        string
	Environment string
	Year        int
}

// Development reports whether detailed error guidance should be shown.
func (s Site) Development() bool {
	return s.Environment == "Development"
}

// Load parses the embedded pages.
func Load(site Site) (*pkgview.Templates, error) {
	return pkgview.Load(templates, pkgview.Options{
		Layout:  "templates/layout.html",
		Pattern: "templates/pages/*.html",
		Data:    site,
	})
}

// Static returns the embedded static assets rooted at the site root, so
// "css/site.css" is served at /css/site.css.
func Static() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
