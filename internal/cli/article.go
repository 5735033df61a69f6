package cli

import (
	"fmt"
	"log"
	"strconv"

	"github.com/spf13/cobra"
)

func parseArticleID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("geçersiz makale numarası: %s", arg)
	}
	return id, nil
}

func newReadCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "read <makale-no>",
		Short: "Makalenin PDF adresini göster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseArticleID(args[0])
			if err != nil {
				return err
			}

			article, err := app.API.Article(cmd.Context(), id)
			if err != nil {
				return err
			}

			// The read counts even if the report is lost; failure is
			// logged and the count shown as if it went through.
			views := article.ViewCount + 1
			if err := app.API.IncrementView(cmd.Context(), id); err != nil {
				log.Printf("view count update failed for article %d: %v", id, err)
			}

			fmt.Fprintf(app.Out, "%s\n", article.Title)
			fmt.Fprintf(app.Out, "%s · %s · %d görüntülenme\n", article.AuthorName, article.CategoryName, views)
			fmt.Fprintf(app.Out, "PDF: %s\n", article.PDFURL)
			return nil
		},
	}
	return cmd
}

func newUploadCmd(app *App) *cobra.Command {
	var title, abstract string
	var categoryID int64

	cmd := &cobra.Command{
		Use:   "upload <pdf-dosyası>",
		Short: "Yeni makale yükle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.API.Token == "" {
				return fmt.Errorf("makale yüklemek için önce giriş yapınız")
			}

			article, err := uploadArticle(cmd.Context(), app.API, title, abstract, categoryID, args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(app.Out, "Makale yüklendi: #%d %s (durum: %s)\n", article.ID, article.Title, article.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "makale başlığı")
	cmd.Flags().StringVar(&abstract, "abstract", "", "makale özeti")
	cmd.Flags().Int64Var(&categoryID, "category", 0, "kategori numarası")
	return cmd
}

func newCategoriesCmd(app *App) *cobra.Command {
	var topOnly bool

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Kategorileri listele",
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, err := app.API.Categories(cmd.Context(), topOnly)
			if err != nil {
				return err
			}
			for _, c := range categories {
				fmt.Fprintf(app.Out, "%d\t%s\n", c.ID, c.Name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&topOnly, "top", false, "yalnızca üst düzey kategoriler")
	return cmd
}
