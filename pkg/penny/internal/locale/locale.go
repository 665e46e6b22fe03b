// Package locale loads the embedded message catalogs and resolves UI
// strings for the configured language.
package locale

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed messages/*.toml
var catalogs embed.FS

var DefaultLanguage = language.English

// Localizer resolves message ids in one language, falling back to English
// and then to the id itself.
type Localizer struct {
	tag       language.Tag
	localizer *i18n.Localizer
	log       *slog.Logger
	missing   map[string]bool
}

// NewBundle loads every embedded catalog.
func NewBundle() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(DefaultLanguage)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(catalogs, "messages/*.toml")
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		if _, err := bundle.LoadMessageFileFS(catalogs, f); err != nil {
			return nil, fmt.Errorf("load %s: %w", path.Base(f), err)
		}
	}
	return bundle, nil
}

// New returns a Localizer for lang, a BCP 47 tag such as "de" or "en-US".
// An empty lang selects English.
func New(lang string, log *slog.Logger) (*Localizer, error) {
	tag := DefaultLanguage
	if lang = strings.TrimSpace(lang); lang != "" {
		parsed, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("invalid locale %q: %w", lang, err)
		}
		tag = parsed
	}

	bundle, err := NewBundle()
	if err != nil {
		return nil, err
	}

	matched, _, confidence := language.NewMatcher(bundle.LanguageTags()).Match(tag)
	if confidence == language.No {
		log.Warn("No catalog for locale, using default", "locale", tag.String(), "default", DefaultLanguage.String())
		matched = DefaultLanguage
	}

	return &Localizer{
		tag:       matched,
		localizer: i18n.NewLocalizer(bundle, tag.String(), DefaultLanguage.String()),
		log:       log,
		missing:   map[string]bool{},
	}, nil
}

// Tag is the catalog language in use.
func (l *Localizer) Tag() language.Tag {
	return l.tag
}

// Localize returns the message for id. Unknown ids are returned unchanged
// and logged once.
func (l *Localizer) Localize(id string) string {
	msg, err := l.localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if msg != "" {
		return msg
	}
	if !l.missing[id] {
		l.missing[id] = true
		l.log.Warn("Missing translation", "id", id, "locale", l.tag.String(), "error", err)
	}
	return id
}

// Supported lists the languages with an embedded catalog.
func Supported() []language.Tag {
	bundle, err := NewBundle()
	if err != nil {
		return nil
	}
	return bundle.LanguageTags()
}
