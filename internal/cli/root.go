// Package cli implements the hubctl terminal client for the Youthive API.
package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"youthive/internal/client"
	"youthive/internal/prefs"
)

const defaultAPIURL = "http://localhost:8080"

type App struct {
	Prefs *prefs.Store
	API   *client.Client
	Out   io.Writer
	In    io.Reader
}

func NewRootCmd() *cobra.Command {
	baseURL := os.Getenv("YOUTHIVE_API")
	if baseURL == "" {
		baseURL = defaultAPIURL
	}

	app := &App{
		Prefs: prefs.NewStore(prefs.DefaultPath()),
		API:   client.New(baseURL),
		Out:   os.Stdout,
		In:    os.Stdin,
	}
	// Saved session survives restarts; the server rejects stale tokens.
	app.API.Token = app.Prefs.AccessToken()

	cmd := &cobra.Command{
		Use:          "hubctl",
		Short:        "Youthive makale platformu istemcisi",
		SilenceUsage: true,
	}

	cmd.AddCommand(newLoginCmd(app))
	cmd.AddCommand(newRegisterCmd(app))
	cmd.AddCommand(newLogoutCmd(app))
	cmd.AddCommand(newPasswordCmd(app))
	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newReadCmd(app))
	cmd.AddCommand(newFavoriteCmd(app))
	cmd.AddCommand(newFavoritesCmd(app))
	cmd.AddCommand(newUploadCmd(app))
	cmd.AddCommand(newCategoriesCmd(app))
	cmd.AddCommand(newEditorCmd(app))
	cmd.AddCommand(newConfigCmd(app))

	return cmd
}
