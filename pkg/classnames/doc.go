// Package classnames resolves the final class attribute for the uikit
// primitives. Resolution is plain ordered concatenation: entries keep their
// first-occurrence order, empty entries are dropped, and nothing is merged
// or de-duplicated. Precedence between conflicting utilities is left to the
// stylesheet, where later classes win.
package classnames
