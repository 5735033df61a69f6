package cli

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"youthive/internal/listing"
)

// searchDebounce matches the pause a user needs before a keystroke
// actually re-filters the list.
const searchDebounce = 300 * time.Millisecond

func newListCmd(app *App) *cobra.Command {
	var search, category, sortKey string
	var interactive bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Onaylanmış makaleleri listele",
		RunE: func(cmd *cobra.Command, args []string) error {
			articles, err := app.API.Articles(cmd.Context())
			if err != nil {
				return err
			}

			list := &listing.List{}
			list.Render(articles)
			engine := listing.NewEngine(list, app.Prefs)

			// Saved filters come back first; explicit flags win.
			state := app.Prefs.LoadFilters()
			if cmd.Flags().Changed("search") {
				state.Search = search
			}
			if cmd.Flags().Changed("category") {
				state.Category = category
			}
			if cmd.Flags().Changed("sort") {
				state.Sort = listing.SortKey(sortKey)
			}

			result := engine.Apply(state)
			printList(app, list, state, result)

			if interactive {
				return interactiveSearch(app, engine, list)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "başlık veya özet içinde ara")
	cmd.Flags().StringVar(&category, "category", "", "kategori adına göre süz")
	cmd.Flags().StringVar(&sortKey, "sort", "", "sıralama: newest, oldest, az, za, popular")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "etkileşimli arama modu")
	return cmd
}

func printList(app *App, list *listing.List, state listing.FilterState, result listing.Result) {
	if list.Empty() {
		fmt.Fprintln(app.Out, listing.EmptyMessage)
		return
	}

	if state.Category != "" {
		fmt.Fprintf(app.Out, "Kategori: %s\n", state.Category)
	}

	for _, item := range list.Visible() {
		fmt.Fprintf(app.Out, "#%d  %s\n", item.ID, item.Title)
		fmt.Fprintf(app.Out, "     %s · %s · %d görüntülenme · %s\n",
			item.Author, item.Category, item.Views, item.CreatedAt.Format("02.01.2006"))
		fmt.Fprintf(app.Out, "     %s\n", item.Excerpt)
	}

	fmt.Fprintf(app.Out, "%d / %d makale gösteriliyor\n", result.Visible, result.Total)
}

// interactiveSearch re-filters on every input line, debounced the way
// the search box behaves. An empty line exits.
func interactiveSearch(app *App, engine *listing.Engine, list *listing.List) error {
	state := app.Prefs.LoadFilters()

	done := make(chan struct{})
	apply := listing.Debounce(searchDebounce, func() {
		result := engine.Apply(state)
		printList(app, list, state, result)
		done <- struct{}{}
	})

	scanner := bufio.NewScanner(app.In)
	fmt.Fprintln(app.Out, "Arama terimi girin (boş satır çıkar):")
	for scanner.Scan() {
		term := strings.TrimSpace(scanner.Text())
		if term == "" {
			break
		}
		state.Search = term
		apply()
		<-done
	}
	return scanner.Err()
}
