// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package locale

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Key identifies a UI message.
type Key string

// Supported languages, in matcher preference order.
var Supported = []language.Tag{language.Vietnamese, language.English}

var (
	cat     *catalog.Builder
	matcher = language.NewMatcher(Supported)
)

func init() {
	cat = catalog.NewBuilder(catalog.Fallback(language.Vietnamese))
	for key, msg := range vi {
		mustSet(language.Vietnamese, key, msg)
	}
	for key, msg := range en {
		mustSet(language.English, key, msg)
	}
}

func mustSet(tag language.Tag, key Key, msg string) {
	if err := cat.SetString(tag, string(key), msg); err != nil {
		panic("locale: " + err.Error())
	}
}

// Printer formats catalog messages for one language.
type Printer struct {
	tag language.Tag
	p   *message.Printer
}

// Match returns the supported language closest to the given BCP 47 tag.
// Unknown or malformed tags fall back to Vietnamese.
func Match(lang string) language.Tag {
	tag, err := language.Parse(lang)
	if err != nil {
		return language.Vietnamese
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return language.Vietnamese
	}
	return Supported[idx]
}

// New returns a Printer for the supported language closest to lang.
func New(lang string) *Printer {
	tag := Match(lang)
	return &Printer{tag: tag, p: message.NewPrinter(tag, message.Catalog(cat))}
}

// Default returns the Vietnamese printer.
func Default() *Printer {
	return New("vi")
}

// SetLanguage switches the printer in place so that every holder of it
// picks up the new language.
func (p *Printer) SetLanguage(lang string) {
	n := New(lang)
	p.tag, p.p = n.tag, n.p
}

// Tag returns the matched language.
func (p *Printer) Tag() language.Tag {
	return p.tag
}

// T formats the message for key. Args fill the message's verbs.
func (p *Printer) T(key Key, args ...any) string {
	return p.p.Sprintf(string(key), args...)
}

// Has reports whether key has a message in the catalog.
func Has(key Key) bool {
	_, ok := vi[key]
	return ok
}
