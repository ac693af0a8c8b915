package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

const docsDirPerm = 0o755

var (
	genDocsOutputDir string
	genDocsFormat    string
)

var genDocsCmd = &cobra.Command{
	Use:   "gen-docs",
	Short: "Generate documentation from CLI commands",
	Long: `Generate documentation (man pages or markdown) from CLI command definitions.

Supported formats:
  man       Unix manual pages (groff format)
  markdown  Markdown files (for websites/wikis)

By default, man pages are installed to ~/.local/share/man/man1/ so they
are immediately available via 'man quarterdeck'. You may need to run
'mandb' to update the man page index.

Examples:
  quarterdeck gen-docs                      # Install man pages
  quarterdeck gen-docs --format markdown    # Generate markdown docs
  quarterdeck gen-docs --output ./man       # Generate to local directory`,
	RunE: runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "Output directory for generated docs")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", "man", "Output format: man, markdown")
}

func runGenDocs(_ *cobra.Command, _ []string) error {
	// Resolve output directory
	outputDir := genDocsOutputDir
	if outputDir == "" {
		switch genDocsFormat {
		case "man":
			manDir, err := defaultManDir()
			if err != nil {
				return fmt.Errorf("resolve man directory: %w", err)
			}
			outputDir = manDir
		case "markdown":
			outputDir = "./docs"
		}
	}

	if err := os.MkdirAll(outputDir, docsDirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	switch genDocsFormat {
	case "man":
		return generateManPages(outputDir)
	case "markdown":
		return generateMarkdown(outputDir)
	default:
		return fmt.Errorf("unsupported format %q (use: man, markdown)", genDocsFormat)
	}
}

func defaultManDir() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, "man", "man1"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", "man", "man1"), nil
}

func generateManPages(outputDir string) error {
	header := &doc.GenManHeader{
		Title:   "QUARTERDECK",
		Section: "1",
		Source:  "quarterdeck " + buildInfo.Version,
		Manual:  "Quarterdeck Manual",
		Date:    func() *time.Time { t := time.Now(); return &t }(),
	}

	// Disable auto-generation timestamp in the footer for reproducible builds
	rootCmd.DisableAutoGenTag = true

	if err := doc.GenManTree(rootCmd, header, outputDir); err != nil {
		return fmt.Errorf("generate man pages: %w", err)
	}

	fmt.Printf("Installed man pages to %s\n", outputDir)
	fmt.Println("Run 'mandb' if 'man quarterdeck' doesn't work immediately.")
	return nil
}

func generateMarkdown(outputDir string) error {
	rootCmd.DisableAutoGenTag = true

	if err := doc.GenMarkdownTree(rootCmd, outputDir); err != nil {
		return fmt.Errorf("generate markdown docs: %w", err)
	}

	fmt.Printf("Generated markdown docs in %s\n", outputDir)
	return nil
}
