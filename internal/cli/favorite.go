package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFavoriteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favorite <makale-no>",
		Short: "Makaleyi kaydet veya kaydı kaldır",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseArticleID(args[0])
			if err != nil {
				return err
			}

			favorited, err := toggleFavorite(cmd.Context(), app.API, app.API.Token, id)
			if err != nil {
				return err
			}

			if favorited {
				fmt.Fprintf(app.Out, "Makale #%d kaydedildi.\n", id)
			} else {
				fmt.Fprintf(app.Out, "Makale #%d kayıtlardan çıkarıldı.\n", id)
			}
			return nil
		},
	}
	return cmd
}

func newFavoritesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favorites",
		Short: "Kaydedilen makaleleri listele",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.API.Token == "" {
				return ErrLoginRequired
			}

			ids, err := app.API.Favorites(cmd.Context())
			if err != nil {
				return err
			}
			if len(ids) == 0 {
				fmt.Fprintln(app.Out, "Henüz kaydedilmiş makale yok.")
				return nil
			}
			for _, id := range ids {
				fmt.Fprintf(app.Out, "#%d\n", id)
			}
			return nil
		},
	}
	return cmd
}
