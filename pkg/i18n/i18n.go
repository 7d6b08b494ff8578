package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localesFS embed.FS

// DefaultLanguage idioma base del bundle y respaldo de cualquier mensaje faltante.
var DefaultLanguage = language.MustParse("pt-BR")

// Translator traduce los textos de presentación (días de la semana, reportes).
// Es inmutable después de New y seguro para uso concurrente.
type Translator struct {
	bundle    *goi18n.Bundle
	supported []language.Tag
	matcher   language.Matcher
}

// New carga los archivos de mensajes embebidos.
func New() (*Translator, error) {
	bundle := goi18n.NewBundle(DefaultLanguage)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := fs.ReadDir(localesFS, "locales")
	if err != nil {
		return nil, fmt.Errorf("i18n: leer locales: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".toml") {
			continue
		}
		if _, err := bundle.LoadMessageFileFS(localesFS, "locales/"+e.Name()); err != nil {
			return nil, fmt.Errorf("i18n: cargar %s: %w", e.Name(), err)
		}
	}

	// El idioma por defecto va primero: es el resultado cuando nada coincide.
	supported := []language.Tag{DefaultLanguage}
	for _, t := range bundle.LanguageTags() {
		if t != DefaultLanguage {
			supported = append(supported, t)
		}
	}
	return &Translator{bundle: bundle, supported: supported, matcher: language.NewMatcher(supported)}, nil
}

// Match elige el idioma soportado más cercano. Acepta códigos sueltos ("es", "pt_BR")
// o cabeceras Accept-Language; evalúa las preferencias en orden y usa la primera válida.
func (t *Translator) Match(prefs ...string) language.Tag {
	for _, p := range prefs {
		p = strings.ReplaceAll(strings.TrimSpace(p), "_", "-")
		if p == "" {
			continue
		}
		tags, _, err := language.ParseAcceptLanguage(p)
		if err != nil || len(tags) == 0 {
			continue
		}
		_, idx, conf := t.matcher.Match(tags...)
		if conf != language.No {
			return t.supported[idx]
		}
	}
	return DefaultLanguage
}

// Localize devuelve el mensaje id en el idioma tag; si falta, devuelve el id.
func (t *Translator) Localize(tag language.Tag, id string) string {
	loc := goi18n.NewLocalizer(t.bundle, tag.String())
	msg, err := loc.Localize(&goi18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return msg
}

// Weekday nombre localizado del día.
func (t *Translator) Weekday(tag language.Tag, d time.Weekday) string {
	return t.Localize(tag, "weekday_"+strings.ToLower(d.String()))
}
