package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/quarterdeckhq/quarterdeck/internal/application/port"
	"github.com/quarterdeckhq/quarterdeck/internal/application/usecase"
)

const exportFilePerm = 0o644

var keymapCmd = &cobra.Command{
	Use:   "keymap",
	Short: "Inspect and edit shortcut bindings",
	Long: `Manage the console keymap:
  list    - Show every action with its current and default binding
  set     - Bind an action to a chord
  reset   - Restore one binding (or --all) to its default
  export  - Write the keymap as JSON
  import  - Replace the keymap from a JSON export

Edits persist to the config file. A running daemon picks them up through
its config watcher and rebinds every live console.`,
	RunE: runKeymapList,
}

var keymapListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every action with its current binding",
	RunE:  runKeymapList,
}

var keymapSetCmd = &cobra.Command{
	Use:   "set <action> <chord>",
	Short: "Bind an action to a chord",
	Long: `Bind an action to a chord like "ctrl+k", "shift+?", or "escape".

Binding a chord that another action already uses is rejected; unbind or
rebind the other action first.`,
	Args: cobra.ExactArgs(2),
	RunE: runKeymapSet,
}

var (
	keymapResetAll bool

	keymapResetCmd = &cobra.Command{
		Use:   "reset [action]",
		Short: "Restore default bindings",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runKeymapReset,
	}
)

var keymapExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write the keymap as JSON (stdout without a file)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runKeymapExport,
}

var keymapImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the keymap from a JSON export",
	Args:  cobra.ExactArgs(1),
	RunE:  runKeymapImport,
}

func init() {
	rootCmd.AddCommand(keymapCmd)
	keymapCmd.AddCommand(keymapListCmd)
	keymapCmd.AddCommand(keymapSetCmd)
	keymapCmd.AddCommand(keymapResetCmd)
	keymapCmd.AddCommand(keymapExportCmd)
	keymapCmd.AddCommand(keymapImportCmd)

	keymapResetCmd.Flags().BoolVar(&keymapResetAll, "all", false, "reset every binding to its default")
}

func runKeymapList(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	doc, err := usecase.NewGetKeymapUseCase(app.Keymaps).Execute(app.Ctx())
	if err != nil {
		return fmt.Errorf("get keymap: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "ACTION\tCHORD\tDEFAULT\tDESCRIPTION")
	fmt.Fprintln(w, "------\t-----\t-------\t-----------")

	for _, entry := range doc.Entries {
		chord := entry.Chord
		if chord == "" {
			chord = "(unbound)"
		}
		if entry.IsCustom {
			chord += " *"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			entry.Action, chord, entry.DefaultChord, app.Locales.T(entry.Description))
	}
	return nil
}

func runKeymapSet(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	req := port.SetBindingRequest{Action: args[0], Chord: args[1]}
	uc := usecase.NewSetBindingUseCase(app.Keymaps, app.Keymaps)
	if err := uc.Execute(app.Ctx(), req); err != nil {
		return err
	}

	fmt.Printf("Bound %s to %s.\n", args[0], args[1])
	return nil
}

func runKeymapReset(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	switch {
	case keymapResetAll:
		if err := usecase.NewResetAllBindingsUseCase(app.Keymaps).Execute(app.Ctx()); err != nil {
			return err
		}
		fmt.Println("All bindings restored to defaults.")
	case len(args) == 1:
		uc := usecase.NewResetBindingUseCase(app.Keymaps)
		if err := uc.Execute(app.Ctx(), port.ResetBindingRequest{Action: args[0]}); err != nil {
			return err
		}
		fmt.Printf("Restored %s to its default binding.\n", args[0])
	default:
		return fmt.Errorf("name an action or pass --all")
	}
	return nil
}

func runKeymapExport(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	data, err := usecase.NewExportKeymapUseCase(app.Keymaps).Execute(app.Ctx())
	if err != nil {
		return fmt.Errorf("export keymap: %w", err)
	}

	if len(args) == 0 {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(args[0], data, exportFilePerm); err != nil {
		return fmt.Errorf("write %s: %w", args[0], err)
	}
	fmt.Printf("Exported keymap to %s.\n", args[0])
	return nil
}

func runKeymapImport(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}

	count, err := usecase.NewImportKeymapUseCase(app.Keymaps).Execute(app.Ctx(), data)
	if err != nil {
		return fmt.Errorf("import keymap: %w", err)
	}

	fmt.Printf("Imported %d bindings from %s.\n", count, args[0])
	return nil
}
