package posts

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMalformedMetadata = errors.New("posts: malformed metadata")
	ErrDuplicatePath     = errors.New("posts: duplicate path")
	ErrPathRequired      = errors.New("posts: path is required")
	ErrDateRequired      = errors.New("posts: date is required")
	ErrDateInvalid       = errors.New("posts: date could not be parsed")
	ErrSlugRequired      = errors.New("posts: slug is required")
	ErrSlugInvalid       = errors.New("posts: slug contains invalid characters")
	ErrSlugConflict      = errors.New("posts: slug conflict")
)

// MalformedMetadataError captures a metadata field that could not be parsed
// or validated for a given document.
type MalformedMetadataError struct {
	Path  string
	Field string
	Cause error
}

func (e *MalformedMetadataError) Error() string {
	if e == nil {
		return ErrMalformedMetadata.Error()
	}
	parts := []string{ErrMalformedMetadata.Error()}
	if path := strings.TrimSpace(e.Path); path != "" {
		parts = append(parts, fmt.Sprintf("path=%s", path))
	}
	if field := strings.TrimSpace(e.Field); field != "" {
		parts = append(parts, fmt.Sprintf("field=%s", field))
	}
	if e.Cause != nil {
		parts = append(parts, e.Cause.Error())
	}
	return strings.Join(parts, ": ")
}

func (e *MalformedMetadataError) Unwrap() error {
	return ErrMalformedMetadata
}

// DuplicatePathError captures two documents resolving to the same path.
type DuplicatePathError struct {
	Path string
}

func (e *DuplicatePathError) Error() string {
	if e == nil {
		return ErrDuplicatePath.Error()
	}
	if path := strings.TrimSpace(e.Path); path != "" {
		return fmt.Sprintf("%s: path=%s", ErrDuplicatePath.Error(), path)
	}
	return ErrDuplicatePath.Error()
}

func (e *DuplicatePathError) Unwrap() error {
	return ErrDuplicatePath
}

// SlugConflictError captures two posts normalising to the same slug, which
// would collide in the generated output tree.
type SlugConflictError struct {
	Slug      string
	Path      string
	OtherPath string
}

func (e *SlugConflictError) Error() string {
	if e == nil {
		return ErrSlugConflict.Error()
	}
	slug := strings.TrimSpace(e.Slug)
	if slug == "" {
		return ErrSlugConflict.Error()
	}
	if e.Path != "" && e.OtherPath != "" {
		return fmt.Sprintf("%s: slug=%s paths=%s,%s", ErrSlugConflict.Error(), slug, e.OtherPath, e.Path)
	}
	return fmt.Sprintf("%s: slug=%s", ErrSlugConflict.Error(), slug)
}

func (e *SlugConflictError) Unwrap() error {
	return ErrSlugConflict
}
