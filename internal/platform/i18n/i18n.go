// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

/*
Package i18n projects bilingual content onto a single requested language.

Translated attributes are stored as two physical variants (`title_en`,
`title_id`). This package picks one of them for a [Lang] and never falls
back silently: anything other than en or id is an [ErrUnsupportedLanguage].
*/
package i18n

import (
	"errors"
	"net/http"

	"golang.org/x/text/language"

	"github.com/wiwekaitech/wiweka/internal/platform/apperr"
)

// # Languages

// Lang is a supported content language.
type Lang string

const (
	// English is also the default language.
	English Lang = "en"
	// Indonesian is the secondary language.
	Indonesian Lang = "id"

	// Default is used when the request expresses no preference.
	Default = English

	// QueryParam is the query string key selecting the language.
	QueryParam = "lang"
)

// Supported lists the languages in matcher preference order.
var Supported = []Lang{English, Indonesian}

// ErrUnsupportedLanguage is the cause carried by every unsupported-language error.
var ErrUnsupportedLanguage = errors.New("i18n: unsupported language")

var matcher = language.NewMatcher([]language.Tag{language.English, language.Indonesian})

// Valid reports whether l is one of [Supported].
func (l Lang) Valid() bool {
	return l == English || l == Indonesian
}

// Parse validates a raw language code. The empty string selects [Default].
func Parse(raw string) (Lang, error) {
	if raw == "" {
		return Default, nil
	}

	lang := Lang(raw)
	if !lang.Valid() {
		return "", unsupported(raw)
	}

	return lang, nil
}

// Negotiate picks the best supported language for an Accept-Language header.
func Negotiate(acceptLanguage string) Lang {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}

	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return Default
	}

	return Supported[index]
}

// FromRequest resolves the language of a request.
//
// An explicit `?lang=` wins and must be valid; otherwise the Accept-Language
// header is negotiated; otherwise [Default] applies.
func FromRequest(request *http.Request) (Lang, error) {
	query := request.URL.Query()
	if query.Has(QueryParam) {
		return Parse(query.Get(QueryParam))
	}

	if header := request.Header.Get("Accept-Language"); header != "" {
		return Negotiate(header), nil
	}

	return Default, nil
}

// # Projection

// Select returns en for [English] and id for [Indonesian].
func Select[T any](en, id T, lang Lang) (T, error) {
	switch lang {
	case English:
		return en, nil
	case Indonesian:
		return id, nil
	default:
		var zero T
		return zero, unsupported(string(lang))
	}
}

// Translatable exposes the two physical variants of a logical field.
//
// ok is false when the entity has no such field.
type Translatable interface {
	Translation(field string) (en, id any, ok bool)
}

// FormatTranslations applies [Select] across fields, keyed by logical name.
//
// Field names the entity does not expose are skipped.
func FormatTranslations(entity Translatable, fields []string, lang Lang) (map[string]any, error) {
	if !lang.Valid() {
		return nil, unsupported(string(lang))
	}

	projected := make(map[string]any, len(fields))
	for _, field := range fields {
		en, id, ok := entity.Translation(field)
		if !ok {
			continue
		}

		value, err := Select(en, id, lang)
		if err != nil {
			return nil, err
		}
		projected[field] = value
	}

	return projected, nil
}

func unsupported(raw string) error {
	return apperr.UnsupportedLanguage(raw).WithCause(ErrUnsupportedLanguage)
}
