package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"youthive/internal/models"
)

func newEditorCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "editor",
		Short: "Editör işlemleri",
	}
	cmd.AddCommand(newEditorPendingCmd(app))
	cmd.AddCommand(newEditorApproveCmd(app))
	cmd.AddCommand(newEditorRejectCmd(app))
	cmd.AddCommand(newEditorEditCmd(app))
	cmd.AddCommand(newEditorDeleteCmd(app))
	return cmd
}

func printQueue(app *App, articles []models.Article) {
	if len(articles) == 0 {
		fmt.Fprintln(app.Out, "Kuyrukta makale yok.")
		return
	}
	for _, a := range articles {
		fmt.Fprintf(app.Out, "#%d\t[%s]\t%s\t%s · %s\n", a.ID, a.Status, a.Title, a.AuthorName, a.CategoryName)
	}
}

func newEditorPendingCmd(app *App) *cobra.Command {
	var status string
	var categoryID int64
	var oldest bool

	cmd := &cobra.Command{
		Use:   "pending",
		Short: "Moderasyon kuyruğunu göster",
		RunE: func(cmd *cobra.Command, args []string) error {
			articles, err := app.API.EditorArticles(cmd.Context(), status, categoryID, oldest)
			if err != nil {
				return err
			}
			printQueue(app, articles)
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", models.StatusPending, "durum süzgeci (pending, approved, rejected, all)")
	cmd.Flags().Int64Var(&categoryID, "category", 0, "kategori numarası")
	cmd.Flags().BoolVar(&oldest, "oldest", false, "en eskiden yeniye sırala")
	cmd.PreRun = func(cmd *cobra.Command, args []string) {
		if status == "all" {
			status = ""
		}
	}
	return cmd
}

// setStatus runs the moderation action then re-fetches the queue so
// the editor sees the server's state, not a local guess.
func setStatus(app *App, cmd *cobra.Command, args []string, status string) error {
	id, err := parseArticleID(args[0])
	if err != nil {
		return err
	}
	if err := app.API.SetStatus(cmd.Context(), id, status); err != nil {
		return err
	}
	fmt.Fprintf(app.Out, "Makale #%d: %s\n", id, status)

	articles, err := app.API.EditorArticles(cmd.Context(), models.StatusPending, 0, false)
	if err != nil {
		return err
	}
	printQueue(app, articles)
	return nil
}

func newEditorApproveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "approve <makale-no>",
		Short: "Makaleyi onayla",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setStatus(app, cmd, args, models.StatusApproved)
		},
	}
}

func newEditorRejectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reject <makale-no>",
		Short: "Makaleyi reddet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setStatus(app, cmd, args, models.StatusRejected)
		},
	}
}

func newEditorEditCmd(app *App) *cobra.Command {
	var title, abstract string
	var categoryID int64

	cmd := &cobra.Command{
		Use:   "edit <makale-no>",
		Short: "Makale bilgilerini düzenle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseArticleID(args[0])
			if err != nil {
				return err
			}

			// Unset flags keep the current values.
			article, err := app.API.Article(cmd.Context(), id)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("title") {
				title = article.Title
			}
			if !cmd.Flags().Changed("abstract") {
				abstract = article.Abstract
			}
			if !cmd.Flags().Changed("category") {
				categoryID = article.CategoryID
			}

			if err := app.API.UpdateArticle(cmd.Context(), id, title, abstract, categoryID); err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Makale #%d güncellendi.\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "yeni başlık")
	cmd.Flags().StringVar(&abstract, "abstract", "", "yeni özet")
	cmd.Flags().Int64Var(&categoryID, "category", 0, "yeni kategori numarası")
	return cmd
}

func newEditorDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <makale-no>",
		Short: "Makaleyi kalıcı olarak sil",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseArticleID(args[0])
			if err != nil {
				return err
			}

			if !yes && !confirm(app, fmt.Sprintf("#%d numaralı makale kalıcı olarak silinecek. Emin misiniz?", id)) {
				fmt.Fprintln(app.Out, "İptal edildi.")
				return nil
			}

			if err := app.API.DeleteArticle(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Makale #%d silindi.\n", id)

			articles, err := app.API.EditorArticles(cmd.Context(), models.StatusPending, 0, false)
			if err != nil {
				return err
			}
			printQueue(app, articles)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "onay sorma")
	return cmd
}
