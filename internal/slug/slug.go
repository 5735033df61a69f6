// Package slug derives URL-safe article slugs and unique storage object
// names from user-supplied titles and file names.
package slug

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/rs/xid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const maxBaseLength = 60

// deaccent decomposes characters and drops the combining marks, so
// "Çevre" becomes "Cevre" before lowercasing kicks in.
var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make builds a slug from the title: lower-case ASCII, non-alphanumeric
// runs collapsed to a single dash, trimmed, capped at 60 characters and
// suffixed with a base-36 time tail so identical titles stay unique.
func Make(title string, now time.Time) string {
	base := normalize(title)
	suffix := timeSuffix(now)
	if base == "" {
		return suffix
	}
	return base + "-" + suffix
}

func normalize(title string) string {
	lowered := strings.ToLower(title)

	stripped, _, err := transform.String(deaccent, lowered)
	if err != nil {
		stripped = lowered
	}

	var b strings.Builder
	pendingDash := false
	for _, r := range stripped {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
		} else {
			pendingDash = true
		}
	}

	s := b.String()
	if len(s) > maxBaseLength {
		s = strings.TrimRight(s[:maxBaseLength], "-")
	}
	return s
}

func timeSuffix(now time.Time) string {
	s := strconv.FormatInt(now.UnixMilli(), 36)
	if len(s) > 6 {
		s = s[len(s)-6:]
	}
	return s
}

// ObjectName builds a storage key for an uploaded file: timestamp, a
// random id and the normalized original name, extension preserved.
func ObjectName(originalName string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" {
		ext = ".pdf"
	}

	base := strings.TrimSuffix(filepath.Base(originalName), filepath.Ext(originalName))
	stripped, _, err := transform.String(deaccent, base)
	if err != nil {
		stripped = base
	}

	var b strings.Builder
	for _, r := range stripped {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
		if b.Len() >= 30 {
			break
		}
	}

	return fmt.Sprintf("%d_%s_%s%s", now.UnixMilli(), xid.New().String(), b.String(), ext)
}
