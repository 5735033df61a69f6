package slug

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

func TestMake(t *testing.T) {
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

	t.Run("deterministic for a fixed instant", func(t *testing.T) {
		first := Make("Yapay Zeka ve Eğitim", now)
		second := Make("Yapay Zeka ve Eğitim", now)
		assert.Equal(t, first, second)
	})

	t.Run("different instants give different slugs", func(t *testing.T) {
		first := Make("Yapay Zeka", now)
		second := Make("Yapay Zeka", now.Add(77*time.Millisecond))
		assert.NotEqual(t, first, second)
	})

	t.Run("turkish letters are transliterated", func(t *testing.T) {
		slug := Make("Çevre Bilinci", now)
		assert.True(t, strings.HasPrefix(slug, "cevre-bilinci-"), "got %q", slug)
	})

	t.Run("only lowercase ascii, digits and dashes", func(t *testing.T) {
		titles := []string{
			"Çevre Bilinci",
			"Şu an: %100 İyi!",
			"   boşluk   deneme   ",
			"ÜĞÖÇŞİ",
			"123 sayı",
		}
		for _, title := range titles {
			slug := Make(title, now)
			assert.Regexp(t, slugPattern, slug, "title %q", title)
			assert.False(t, strings.HasPrefix(slug, "-"), "title %q gave %q", title, slug)
			assert.False(t, strings.HasSuffix(slug, "-"), "title %q gave %q", title, slug)
		}
	})

	t.Run("symbol-only title still yields a slug", func(t *testing.T) {
		slug := Make("!!! ???", now)
		assert.NotEmpty(t, slug)
		assert.Regexp(t, slugPattern, slug)
	})

	t.Run("long titles are capped", func(t *testing.T) {
		slug := Make(strings.Repeat("makale başlığı ", 20), now)
		// 60 chars of base plus the dash and time suffix.
		assert.LessOrEqual(t, len(slug), 67)
	})
}

func TestObjectName(t *testing.T) {
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

	t.Run("keeps the extension", func(t *testing.T) {
		name := ObjectName("Bitirme Tezi (Son).pdf", now)
		assert.True(t, strings.HasSuffix(name, ".pdf"), "got %q", name)
	})

	t.Run("two uploads of the same file collide never", func(t *testing.T) {
		first := ObjectName("tez.pdf", now)
		second := ObjectName("tez.pdf", now)
		// xid part differs even at the same instant.
		assert.NotEqual(t, first, second)
	})

	t.Run("no spaces or unsafe characters", func(t *testing.T) {
		name := ObjectName("ödev çalışması 2025?.pdf", now)
		assert.NotContains(t, name, " ")
		assert.NotContains(t, name, "?")
		assert.NotContains(t, name, "ç")
	})
}
