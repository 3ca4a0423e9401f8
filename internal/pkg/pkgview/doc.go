// Package pkgview renders server-side HTML pages.
//
// Each page template is parsed together with a shared layout so a page only
// defines its "title" and "content" blocks.
package pkgview
