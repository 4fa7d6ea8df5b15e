// Package template defines the template engine contract used by the HTML
// step renderer. The pongo2-backed implementation lives in the pongo
// subpackage.
package template
