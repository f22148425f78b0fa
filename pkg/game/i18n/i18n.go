// Package i18n holds the user-facing strings. Catalogs are gettext .po
// files embedded into the binary.
package i18n

import (
	"embed"
	"fmt"
	"log"
	"sync"

	"github.com/leonelquinteros/gotext"
)

// DefaultLocale is used when no locale is configured or the requested one
// has no catalog.
const DefaultLocale = "en"

//go:embed locales/*.po
var catalogs embed.FS

var (
	mu     sync.RWMutex
	po     *gotext.Po
	locale string
)

// Load switches the active catalog. Unknown locales fall back to English.
func Load(name string) error {
	if name == "" {
		name = DefaultLocale
	}
	buf, err := catalogs.ReadFile("locales/" + name + ".po")
	if err != nil {
		if name == DefaultLocale {
			return fmt.Errorf("read catalog %s: %w", name, err)
		}
		log.Printf("No catalog for locale %q, using %s", name, DefaultLocale)
		return Load(DefaultLocale)
	}

	p := gotext.NewPo()
	p.Parse(buf)

	mu.Lock()
	po, locale = p, name
	mu.Unlock()
	return nil
}

// Locale returns the active locale name.
func Locale() string {
	current()
	mu.RLock()
	defer mu.RUnlock()
	return locale
}

func current() *gotext.Po {
	mu.RLock()
	p := po
	mu.RUnlock()
	if p != nil {
		return p
	}
	if err := Load(DefaultLocale); err != nil {
		log.Printf("Loading default catalog: %v", err)
		return gotext.NewPo()
	}
	mu.RLock()
	defer mu.RUnlock()
	return po
}

// T translates key and formats it with args. Unknown keys come back as-is.
func T(key string, args ...any) string {
	return current().Get(key, args...)
}

// TN translates a pluralised key for n. n is passed as the first format
// argument, followed by args.
func TN(key, plural string, n int, args ...any) string {
	return current().GetN(key, plural, n, append([]any{n}, args...)...)
}
