// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/azedda/sitekit/internal/icons"
	"github.com/azedda/sitekit/internal/profile"
)

var iconsCmd = &cobra.Command{
	Use:   "icons",
	Short: "Rewrite the document's display text with icon markup",
}

var iconsReplaceCmd = &cobra.Command{
	Use:   "replace [profile.json]",
	Short: "Swap emoji for Font Awesome markup throughout the document",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runIconsReplace,
}

var iconsDecorateCmd = &cobra.Command{
	Use:   "decorate [profile.json]",
	Short: "Prefix section labels and entries with their icons",
	Long: `Decorate applies the icon scheme to hero bullets, navigation and
section labels, timeline entries, and the other decorated fields.
Values already carrying markup are left alone, so the command is safe
to re-run.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIconsDecorate,
}

func init() {
	iconsDecorateCmd.Flags().String("rules", "", "YAML rule file overlaying the built-in icon scheme")

	iconsCmd.AddCommand(iconsReplaceCmd)
	iconsCmd.AddCommand(iconsDecorateCmd)
	rootCmd.AddCommand(iconsCmd)
}

func profilePath(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	return cfg.Profile
}

func runIconsReplace(cmd *cobra.Command, args []string) error {
	path := profilePath(args)
	doc, err := profile.Load(path)
	if err != nil {
		return err
	}

	doc, changed := icons.ReplaceEmoji(doc)
	if err := profile.Save(path, doc); err != nil {
		return err
	}

	fmt.Printf("replaced emoji in %d string(s) in %s\n", changed, path)
	return nil
}

func runIconsDecorate(cmd *cobra.Command, args []string) error {
	path := profilePath(args)
	rulesPath, _ := cmd.Flags().GetString("rules")

	rules := icons.DefaultRules()
	if rulesPath != "" {
		var err error
		rules, err = icons.LoadRules(rulesPath)
		if err != nil {
			return err
		}
	}

	doc, err := profile.Load(path)
	if err != nil {
		return err
	}
	root, ok := doc.(map[string]any)
	if !ok {
		return fmt.Errorf("%s: root JSON value must be an object", path)
	}

	changed := icons.Decorate(root, rules)
	if err := profile.Save(path, root); err != nil {
		return err
	}

	fmt.Printf("decorated %d value(s) in %s\n", changed, path)
	return nil
}
