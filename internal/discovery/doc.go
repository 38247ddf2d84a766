// Package discovery walks a games root and validates every game package it
// finds. A malformed manifest skips that one game with a warning; fatal
// faults (unreadable files, path traversal in a manifest) abort the whole
// walk. Discovery holds no state of its own, so concurrent callers may
// share the same read-only settings.
package discovery
