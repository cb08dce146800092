package indexcmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	buildSiteMessageType    = "postindex.index.build_site"
	checkContentMessageType = "postindex.index.check_content"
)

// BuildSiteCommand runs the full pipeline for the provided Directory: load
// documents, build the ordered index, render and write every artifact.
type BuildSiteCommand struct {
	// Directory selects the filesystem path to load Markdown files from.
	Directory string `json:"directory"`
	// IncludeDrafts overrides the configured draft policy when set.
	IncludeDrafts *bool `json:"include_drafts,omitempty"`
	// DryRun plans artifacts without writing anything.
	DryRun bool `json:"dry_run,omitempty"`
}

// Type implements command.Message.
func (BuildSiteCommand) Type() string { return buildSiteMessageType }

// Validate ensures directory input is present before handlers execute.
func (cmd BuildSiteCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("postindex.index.build_site.directory_required", "directory is required")
			}
			return nil
		})),
	)
}

// CheckContentCommand validates every document under Directory without
// producing output: metadata must parse, dates must be well formed, and no
// two documents may share a path or slug.
type CheckContentCommand struct {
	// Directory selects the filesystem path to load Markdown files from.
	Directory string `json:"directory"`
}

// Type implements command.Message.
func (CheckContentCommand) Type() string { return checkContentMessageType }

// Validate ensures directory input is present before handlers execute.
func (cmd CheckContentCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("postindex.index.check_content.directory_required", "directory is required")
			}
			return nil
		})),
	)
}
