// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/azedda/sitekit/internal/patch"
	"github.com/azedda/sitekit/internal/profile"
)

var textCmd = &cobra.Command{
	Use:   "text",
	Short: "Apply text corrections to the document",
}

var textApplyCmd = &cobra.Command{
	Use:   "apply <patchfile> [profile.json]",
	Short: "Apply a YAML patch file of text corrections",
	Long: `Apply reads a YAML patch file and applies each patch to the document
in order. Patches address fields by dotted path and may target a single
language of a localized field.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runTextApply,
}

func init() {
	textCmd.AddCommand(textApplyCmd)
	rootCmd.AddCommand(textCmd)
}

func runTextApply(cmd *cobra.Command, args []string) error {
	patchFile := args[0]
	path := cfg.Profile
	if len(args) == 2 {
		path = args[1]
	}

	patches, err := patch.LoadFile(patchFile)
	if err != nil {
		return err
	}

	doc, err := profile.Load(path)
	if err != nil {
		return err
	}
	root, ok := doc.(map[string]any)
	if !ok {
		return fmt.Errorf("%s: root JSON value must be an object", path)
	}

	if err := patch.Apply(root, patches); err != nil {
		return err
	}
	if err := profile.Save(path, root); err != nil {
		return err
	}

	fmt.Printf("applied %d patch(es) to %s\n", len(patches), path)
	return nil
}
