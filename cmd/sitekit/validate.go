// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/azedda/sitekit/internal/httputil"
	"github.com/azedda/sitekit/internal/profile"
	"github.com/azedda/sitekit/internal/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate [profile.json]",
	Short: "Check the profile document against the site's invariants",
	Long: `Validate parses the profile document and checks the structural
invariants the front-end relies on. Every violation is reported, not
just the first.

Exit status: 0 when the document is valid, 1 on a parse error or
schema violations, 2 when the input cannot be read.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().String("schema", "", "also validate against a JSON Schema file")
	validateCmd.Flags().String("remote", "", "fetch and validate the deployed document at this URL")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	schemaPath, _ := cmd.Flags().GetString("schema")
	remoteURL, _ := cmd.Flags().GetString("remote")

	source := cfg.Profile
	if len(args) == 1 {
		source = args[0]
	}

	var raw []byte
	var err error
	if remoteURL != "" {
		source = remoteURL
		raw, err = httputil.GetBytes(cmd.Context(), httputil.Config{
			Timeout:    cfg.HTTP.Timeout,
			UserAgent:  cfg.HTTP.UserAgent,
			MaxRetries: cfg.HTTP.MaxRetries,
		}, remoteURL)
	} else {
		raw, err = os.ReadFile(source)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: failed to read %s: %v\n", source, err)
		return &exitError{code: 2}
	}

	doc, err := profile.Decode(raw)
	if err != nil {
		fmt.Printf("ERROR: invalid JSON in %s\n", source)
		var pe *profile.ParseError
		if errors.As(err, &pe) {
			fmt.Printf("  %s\n", pe)
		} else {
			fmt.Printf("  %v\n", err)
		}
		return &exitError{code: 1}
	}

	violations := validate.Check(doc)
	if schemaPath != "" {
		schemaViolations, err := validate.CheckSchema(schemaPath, raw)
		if err != nil {
			return err
		}
		violations = append(violations, schemaViolations...)
	}

	if len(violations) > 0 {
		fmt.Printf("ERROR: schema checks failed for %s:\n", source)
		for _, msg := range violations {
			fmt.Printf("- %s\n", msg)
		}
		return &exitError{code: 1}
	}

	fmt.Printf("OK: %s is valid JSON and passed basic schema checks\n", source)
	return nil
}
