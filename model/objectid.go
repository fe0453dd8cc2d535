package model

import "github.com/google/uuid"

// NewObjectID mints a fresh, time-ordered object id for an Element, Section,
// or Slide. Continuation copies produced by the overflow handler always get
// a fresh id here rather than reusing the original's — spec.md §3 requires
// "fresh object ids" on both halves of a split.
func NewObjectID(prefix string) string {
	return prefix + "-" + uuid.Must(uuid.NewV7()).String()
}
