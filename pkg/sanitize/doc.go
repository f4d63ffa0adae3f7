// Package sanitize holds the bluemonday policies used for markup that
// enters the kit from outside Go code: replacement brand icons and inline
// page copy loaded from content files.
package sanitize
