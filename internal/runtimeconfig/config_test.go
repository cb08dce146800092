package runtimeconfig

import (
	"errors"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() error = %v", err)
	}
	if !cfg.Enabled {
		t.Error("default config should be enabled")
	}
	if cfg.Content.Dir != "content" {
		t.Errorf("Content.Dir = %q, want %q", cfg.Content.Dir, "content")
	}
	if !cfg.Content.Recursive {
		t.Error("default content loading should be recursive")
	}
	if cfg.Index.IncludeDrafts {
		t.Error("drafts should be excluded by default")
	}
}

func TestValidateContentDirRequired(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Content.Dir = "   "
	if err := cfg.Validate(); !errors.Is(err, ErrContentDirRequired) {
		t.Fatalf("Validate() error = %v, want ErrContentDirRequired", err)
	}
}

func TestValidateGeneratorOutputDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Generator.OutputDir = ""
	if err := cfg.Validate(); !errors.Is(err, ErrGeneratorOutputDirRequired) {
		t.Fatalf("Validate() error = %v, want ErrGeneratorOutputDirRequired", err)
	}

	cfg.Features.Generator = false
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() with generator disabled error = %v", err)
	}
}

func TestValidateBaseURL(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Site.BaseURL = "example.com/blog"
	if err := cfg.Validate(); !errors.Is(err, ErrSiteBaseURLInvalid) {
		t.Fatalf("Validate() error = %v, want ErrSiteBaseURLInvalid", err)
	}

	cfg.Site.BaseURL = "https://example.com/blog"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestValidateLogging(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "missing provider",
			mutate:  func(cfg *Config) { cfg.Logging.Provider = "" },
			wantErr: ErrLoggingProviderRequired,
		},
		{
			name:    "unknown provider",
			mutate:  func(cfg *Config) { cfg.Logging.Provider = "syslog" },
			wantErr: ErrLoggingProviderUnknown,
		},
		{
			name:    "invalid level",
			mutate:  func(cfg *Config) { cfg.Logging.Level = "loud" },
			wantErr: ErrLoggingLevelInvalid,
		},
		{
			name: "invalid gologger format",
			mutate: func(cfg *Config) {
				cfg.Logging.Provider = "gologger"
				cfg.Logging.Format = "xml"
			},
			wantErr: ErrLoggingFormatInvalid,
		},
		{
			name: "format ignored for console provider",
			mutate: func(cfg *Config) {
				cfg.Logging.Provider = "console"
				cfg.Logging.Format = "xml"
			},
		},
		{
			name: "logging skipped when feature disabled",
			mutate: func(cfg *Config) {
				cfg.Features.Logger = false
				cfg.Logging.Provider = "syslog"
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Validate() error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}
