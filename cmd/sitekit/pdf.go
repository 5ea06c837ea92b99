// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/azedda/sitekit/internal/pdftext"
	"github.com/azedda/sitekit/internal/snippets"
)

var pdfCmd = &cobra.Command{
	Use:   "pdf",
	Short: "Extract text and evidence snippets from the PDF reports",
}

var pdfHeadCmd = &cobra.Command{
	Use:   "head [files...]",
	Short: "Print metadata and the opening text of each PDF",
	Long: `Head prints page count, title and subject metadata, and the first
pages of each PDF collapsed to a single line. Files that do not exist
are skipped.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPDFHead,
}

var pdfSnippetsCmd = &cobra.Command{
	Use:   "snippets <file>",
	Short: "Scan a PDF for report keywords and print matching lines",
	Long: `Snippets extracts the full text of a PDF, redacts phone-like numbers,
and prints every line matching one of the report keywords together
with one line of context on each side. With --save the hits are also
written to the snippet index for later queries.`,
	Args: cobra.ExactArgs(1),
	RunE: runPDFSnippets,
}

var pdfHitsCmd = &cobra.Command{
	Use:   "hits [keyword]",
	Short: "List stored snippet hits, optionally filtered by keyword",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPDFHits,
}

func init() {
	pdfHeadCmd.Flags().Int("pages", 0, "pages to read (default from config)")
	pdfHeadCmd.Flags().Int("chars", 0, "maximum characters to print (default from config)")

	pdfSnippetsCmd.Flags().StringSlice("keyword", nil, "keyword to search for (repeatable; default: report vocabulary)")
	pdfSnippetsCmd.Flags().Bool("save", false, "store the hits in the snippet index")

	pdfCmd.AddCommand(pdfHeadCmd)
	pdfCmd.AddCommand(pdfSnippetsCmd)
	pdfCmd.AddCommand(pdfHitsCmd)
	rootCmd.AddCommand(pdfCmd)
}

func runPDFHead(cmd *cobra.Command, args []string) error {
	pages, _ := cmd.Flags().GetInt("pages")
	chars, _ := cmd.Flags().GetInt("chars")
	if pages <= 0 {
		pages = cfg.PDF.Pages
	}
	if chars <= 0 {
		chars = cfg.PDF.Chars
	}

	extractor, err := pdftext.NewExtractor(cfg.PDF.Backend)
	if err != nil {
		return err
	}

	failed := 0
	for _, path := range args {
		if _, err := os.Stat(path); err != nil {
			continue
		}

		fmt.Printf("\n=== %s ===\n", filepath.Base(path))

		info, err := pdftext.ReadInfo(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed: %s (%v)\n", path, err)
			failed++
			continue
		}
		fmt.Printf("pages: %d\n", info.Pages)
		if info.Title != "" {
			fmt.Printf("meta.title: %s\n", info.Title)
		}
		if info.Subject != "" {
			fmt.Printf("meta.subject: %s\n", info.Subject)
		}

		head, err := pdftext.Head(extractor, path, pages, chars)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed: %s (%v)\n", path, err)
			failed++
			continue
		}
		fmt.Println("head:")
		fmt.Println(head)
	}

	if failed > 0 {
		return fmt.Errorf("%d file(s) failed", failed)
	}
	return nil
}

func runPDFSnippets(cmd *cobra.Command, args []string) error {
	path := args[0]
	keywords, _ := cmd.Flags().GetStringSlice("keyword")
	save, _ := cmd.Flags().GetBool("save")
	if len(keywords) == 0 {
		keywords = cfg.Snippets.KeywordList()
	}

	extractor, err := pdftext.NewExtractor(cfg.PDF.Backend)
	if err != nil {
		return err
	}

	texts, err := extractor.PageTexts(path, 0)
	if err != nil {
		return err
	}

	text := pdftext.RedactPII(strings.Join(texts, "\n"))
	hits := pdftext.Scan(text, keywords)

	for _, hit := range hits {
		fmt.Printf("- %s\n", hit.Context)
	}
	fmt.Printf("\nTotal hits: %d\n", len(hits))

	if !save {
		return nil
	}

	store, err := snippets.Open(cfg.Snippets.DataDir, cfg.Snippets.MaxResults)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.ReplaceScan(cmd.Context(), filepath.Base(path), hits); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "saved %d hits to the snippet index\n", len(hits))
	return nil
}

func runPDFHits(cmd *cobra.Command, args []string) error {
	keyword := ""
	if len(args) == 1 {
		keyword = args[0]
	}

	store, err := snippets.Open(cfg.Snippets.DataDir, cfg.Snippets.MaxResults)
	if err != nil {
		return err
	}
	defer store.Close()

	hits, err := store.Hits(cmd.Context(), keyword)
	if err != nil {
		return err
	}

	for _, hit := range hits {
		fmt.Printf("%s:%d [%s] %s\n", hit.PDF, hit.Line, hit.Keyword, hit.Context)
	}
	fmt.Printf("\n%d stored hit(s)\n", len(hits))
	return nil
}
