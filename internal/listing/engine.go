package listing

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// StateStore persists the filter state between runs. Saving is
// best-effort and must never fail observably.
type StateStore interface {
	SaveFilters(state FilterState)
	LoadFilters() FilterState
}

type Result struct {
	Visible int
	Total   int
}

// Engine reorders and filters the list. Sort always runs before filter:
// sorting moves every item regardless of visibility, filtering only
// toggles visibility, so visible items stay in sorted order.
type Engine struct {
	List  *List
	Store StateStore
}

func NewEngine(list *List, store StateStore) *Engine {
	return &Engine{List: list, Store: store}
}

// Apply runs a full sort+filter pass and persists the state used.
func (e *Engine) Apply(state FilterState) Result {
	state = state.Normalize()
	e.Sort(state.Sort)
	result := e.Filter(state)
	if e.Store != nil {
		e.Store.SaveFilters(state)
	}
	return result
}

// Titles compare with Turkish collation so İ/I and ç/c order the way a
// Turkish reader expects.
var turkish = collate.New(language.Turkish)

// Sort reorders the full item set, stable, never changing visibility.
// Unknown keys fall back to newest-first.
func (e *Engine) Sort(key SortKey) {
	items := e.List.Items
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		switch key {
		case SortOldest:
			return a.CreatedAt.Before(b.CreatedAt)
		case SortAZ:
			return turkish.CompareString(a.Title, b.Title) < 0
		case SortZA:
			return turkish.CompareString(b.Title, a.Title) < 0
		case SortPopular:
			return a.Views > b.Views
		default:
			return b.CreatedAt.Before(a.CreatedAt)
		}
	})
}

// Filter toggles item visibility. An item is visible iff the search
// term occurs in its title or excerpt (case-insensitive) and the
// category filter occurs in its category name. Substring, not exact:
// category "fen" matches "fen bilimleri".
func (e *Engine) Filter(state FilterState) Result {
	search := strings.ToLower(strings.TrimSpace(state.Search))
	category := strings.ToLower(strings.TrimSpace(state.Category))

	visible := 0
	for _, it := range e.List.Items {
		matchesSearch := search == "" ||
			strings.Contains(it.TitleKey, search) ||
			strings.Contains(it.ExcerptKey, search)
		matchesCategory := category == "" || strings.Contains(it.CategoryKey, category)

		it.Visible = matchesSearch && matchesCategory
		if it.Visible {
			visible++
		}
	}
	return Result{Visible: visible, Total: len(e.List.Items)}
}
