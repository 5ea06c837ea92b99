// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config binds the sitekit configuration file and environment
// to a validated struct.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/azedda/sitekit/internal/pdftext"
)

// Config is the full tool configuration. Flags override these values
// per command.
type Config struct {
	// Profile is the path of the document all commands default to.
	Profile string `mapstructure:"profile" validate:"required"`

	PDF      PDFConfig      `mapstructure:"pdf"`
	Snippets SnippetsConfig `mapstructure:"snippets"`
	HTTP     HTTPConfig     `mapstructure:"http"`
}

// PDFConfig holds settings for the pdf subcommands.
type PDFConfig struct {
	// Backend selects the extraction backend: native or pdftotext.
	Backend string `mapstructure:"backend" validate:"oneof=native pdftotext"`

	// Pages and Chars bound the head output.
	Pages int `mapstructure:"pages" validate:"min=1"`
	Chars int `mapstructure:"chars" validate:"min=1"`
}

// SnippetsConfig holds settings for the snippet scan and its index.
type SnippetsConfig struct {
	// DataDir is the base directory for the snippet index (contains index/).
	DataDir string `mapstructure:"data_dir" validate:"required"`

	// Keywords overrides the built-in report vocabulary when non-empty.
	Keywords []string `mapstructure:"keywords"`

	// MaxResults caps query output (default 20).
	MaxResults int `mapstructure:"max_results" validate:"min=1"`
}

// HTTPConfig holds settings for fetching the deployed document.
type HTTPConfig struct {
	Timeout    time.Duration `mapstructure:"timeout" validate:"min=0"`
	UserAgent  string        `mapstructure:"user_agent"`
	MaxRetries int           `mapstructure:"max_retries" validate:"min=0"`
}

// KeywordList returns the configured keywords, falling back to the
// built-in defaults.
func (c SnippetsConfig) KeywordList() []string {
	if len(c.Keywords) > 0 {
		return c.Keywords
	}
	return pdftext.DefaultKeywords
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() Config {
	return Config{
		Profile: "data/profile.json",
		PDF: PDFConfig{
			Backend: "native",
			Pages:   pdftext.DefaultHeadPages,
			Chars:   pdftext.DefaultHeadChars,
		},
		Snippets: SnippetsConfig{
			DataDir:    ".sitekit",
			MaxResults: 20,
		},
		HTTP: HTTPConfig{
			Timeout:    30 * time.Second,
			UserAgent:  "sitekit/0.1",
			MaxRetries: 3,
		},
	}
}

// Load unmarshals v over the defaults and validates the result.
func Load(v *viper.Viper) (Config, error) {
	cfg := Default()
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshaling configuration: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
