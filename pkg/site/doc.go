// Package site renders the Trading Journal landing and legal pages by
// composing the UI primitives from package components inside pongo2
// templates. Copy is loaded from embedded YAML and can be replaced with
// WithContentFS.
package site
