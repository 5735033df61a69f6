package listing

import (
	"html"
	"strings"
	"time"

	"youthive/internal/models"
)

// Shown when an article has no abstract.
const NoAbstractPlaceholder = "Bu makale için özet bulunmuyor."

// EmptyMessage is the placeholder for a list with no records at all.
const EmptyMessage = "Henüz onaylanmış makale bulunmuyor"

// Item is one rendered card. Title, Excerpt and Author are HTML-escaped
// display strings; TitleKey and CategoryKey are the lower-cased derived
// attributes the filter matches against.
type Item struct {
	ID          int64
	Title       string
	Excerpt     string
	Category    string
	Author      string
	Views       int
	CreatedAt   time.Time
	TitleKey    string
	ExcerptKey  string
	CategoryKey string
	Visible     bool
}

// List is the in-memory model both the renderer and the filter engine
// work on. The rendered output is a projection of it, never the source
// of truth.
type List struct {
	Items []*Item
}

// Render replaces the current items with a projection of the fetched
// records, in the order they arrived. User-supplied text is escaped
// here so no later consumer can inject markup.
func (l *List) Render(articles []models.Article) {
	items := make([]*Item, 0, len(articles))
	for _, a := range articles {
		abstract := a.Abstract
		if abstract == "" {
			abstract = NoAbstractPlaceholder
		}
		items = append(items, &Item{
			ID:          a.ID,
			Title:       html.EscapeString(a.Title),
			Excerpt:     html.EscapeString(abstract),
			Category:    a.CategoryName,
			Author:      html.EscapeString(a.AuthorName),
			Views:       a.ViewCount,
			CreatedAt:   a.CreatedAt,
			TitleKey:    strings.ToLower(a.Title),
			ExcerptKey:  strings.ToLower(abstract),
			CategoryKey: strings.ToLower(a.CategoryName),
			Visible:     true,
		})
	}
	l.Items = items
}

func (l *List) Empty() bool {
	return len(l.Items) == 0
}

// Visible returns the visible items in current order.
func (l *List) Visible() []*Item {
	visible := make([]*Item, 0, len(l.Items))
	for _, it := range l.Items {
		if it.Visible {
			visible = append(visible, it)
		}
	}
	return visible
}
