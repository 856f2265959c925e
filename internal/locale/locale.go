// Package locale holds the Vietnamese and English UI strings.
package locale

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type Language string

const (
	Vietnamese Language = "vi"
	English    Language = "en"
)

// Languages in settings order.
var Languages = []Language{Vietnamese, English}

func (l Language) Valid() bool {
	return l == Vietnamese || l == English
}

// AppTitle is the main window title in every language.
const AppTitle = "AOT - AlwaysOnTop"

// Version is shown in the about dialog.
const Version = "2.0.0"

var bundle = func() *i18n.Bundle {
	b := i18n.NewBundle(language.Vietnamese)
	if err := b.AddMessages(language.Vietnamese, vi...); err != nil {
		panic(err)
	}
	if err := b.AddMessages(language.English, en...); err != nil {
		panic(err)
	}
	return b
}()

// Translator looks up strings of one language.
type Translator struct {
	lang Language
	loc  *i18n.Localizer
}

func New(lang Language) *Translator {
	if !lang.Valid() {
		lang = Vietnamese
	}
	return &Translator{
		lang: lang,
		loc:  i18n.NewLocalizer(bundle, string(lang)),
	}
}

func (t *Translator) Language() Language {
	return t.lang
}

// T returns the message id, or id itself when there is no such message.
func (t *Translator) T(id string) string {
	return t.Tf(id, nil)
}

// Tf fills {{.Name}} fields of message id from data.
func (t *Translator) Tf(id string, data map[string]any) string {
	s, err := t.loc.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		return id
	}
	return s
}

// DialogTitles returns the titles of this program's secondary windows in all
// languages. They are never offered for pinning.
func DialogTitles() []string {
	var titles []string
	for _, lang := range Languages {
		t := New(lang)
		titles = append(titles, t.T("settings_title"), t.T("about_title"))
	}
	return titles
}
