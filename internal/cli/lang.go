package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/quarterdeckhq/quarterdeck/internal/application/usecase"
)

var langCmd = &cobra.Command{
	Use:   "lang",
	Short: "Show or change the console language",
	Long: `Show the active console language and the available catalogs, or switch
with 'lang set'. The choice persists to the config file; a running daemon
adopts it through its config watcher.`,
	RunE: runLangShow,
}

var langSetCmd = &cobra.Command{
	Use:   "set <tag>",
	Short: "Switch the console language",
	Args:  cobra.ExactArgs(1),
	RunE:  runLangSet,
}

func init() {
	rootCmd.AddCommand(langCmd)
	langCmd.AddCommand(langSetCmd)
}

func runLangShow(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	current, available, err := usecase.NewGetLanguageUseCase(app.Locales).Execute(app.Ctx())
	if err != nil {
		return fmt.Errorf("get language: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "TAG\tNAME")
	fmt.Fprintln(w, "---\t----")
	for _, info := range available {
		tag := info.Tag
		if info.Tag == current {
			tag += " *"
		}
		fmt.Fprintf(w, "%s\t%s\n", tag, info.Name)
	}
	return nil
}

func runLangSet(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	if err := usecase.NewSetLanguageUseCase(app.Locales).Execute(app.Ctx(), args[0]); err != nil {
		return err
	}

	fmt.Printf("Language set to %s.\n", args[0])
	return nil
}
