package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Yerel tercihleri göster veya değiştir",
		RunE: func(cmd *cobra.Command, args []string) error {
			theme := app.Prefs.Theme()
			if theme == "" {
				theme = "light"
			}
			lang := app.Prefs.Language()
			if lang == "" {
				lang = "tr"
			}
			fmt.Fprintf(app.Out, "theme: %s\n", theme)
			fmt.Fprintf(app.Out, "language: %s\n", lang)
			return nil
		},
	}
	cmd.AddCommand(newConfigSetCmd(app))
	return cmd
}

func newConfigSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set <anahtar> <değer>",
		Short: "Bir tercihi kaydet (theme, language)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			switch key {
			case "theme":
				app.Prefs.SetTheme(value)
			case "language":
				app.Prefs.SetLanguage(value)
			default:
				return fmt.Errorf("bilinmeyen tercih: %s", key)
			}
			fmt.Fprintf(app.Out, "%s = %s\n", key, value)
			return nil
		},
	}
}
