// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "data/profile.json", cfg.Profile)
	assert.Equal(t, "native", cfg.PDF.Backend)
	assert.Equal(t, 2, cfg.PDF.Pages)
	assert.Equal(t, 800, cfg.PDF.Chars)
	assert.Equal(t, ".sitekit", cfg.Snippets.DataDir)
	assert.Equal(t, 20, cfg.Snippets.MaxResults)
	assert.NotEmpty(t, cfg.Snippets.KeywordList())
}

func TestLoad_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("profile", "site/profile.json")
	v.Set("pdf.backend", "pdftotext")
	v.Set("snippets.keywords", []string{"DoMoMEA"})

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "site/profile.json", cfg.Profile)
	assert.Equal(t, "pdftotext", cfg.PDF.Backend)
	assert.Equal(t, []string{"DoMoMEA"}, cfg.Snippets.KeywordList())
}

func TestLoad_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value any
	}{
		{"unknown backend", "pdf.backend", "ghostscript"},
		{"zero pages", "pdf.pages", 0},
		{"zero max results", "snippets.max_results", 0},
		{"empty profile", "profile", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			v.Set(tt.key, tt.value)
			_, err := Load(v)
			assert.Error(t, err)
		})
	}
}
