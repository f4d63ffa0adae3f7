// Package components renders the uikit primitives (Button, Input,
// LoadingSpinner and the brand Logo/LogoIcon) as HTML fragments.
//
// Every primitive is a pure function of an immutable props struct: identical
// props always produce byte-identical markup. Class strings are resolved once
// per render through classnames.Join as base ∘ variant ∘ size ∘ override, and
// native behaviour (disabled, required, focus) is delegated to the host
// element rather than modelled here.
//
// Callers that need to reach the rendered host control supply a Ref callback;
// it receives a Handle describing the element after the markup is written.
// The handle is borrowed: the caller does not own the element and the handle
// is only meaningful for the document produced by that render.
package components
