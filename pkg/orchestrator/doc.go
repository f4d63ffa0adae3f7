// Package orchestrator wires theme selection and renderer lookup in front of
// page rendering, providing dependency injection friendly helpers for
// consumers that prefer a single entry point.
package orchestrator
