// Package display turns stored fields into presentation-safe strings. Every
// function here is total: missing input yields a placeholder, never an error.
package display

import (
	"strconv"
	"strings"
	"time"
)

// Placeholder is rendered for absent values.
const Placeholder = "-"

type Locale string

const (
	LocaleKorean  Locale = "ko-KR"
	LocaleEnglish Locale = "en-US"
)

// ParseLocale maps a BCP 47 tag onto a supported locale, defaulting to English.
func ParseLocale(tag string) Locale {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if strings.HasPrefix(tag, "ko") {
		return LocaleKorean
	}
	return LocaleEnglish
}

type DateVariant int

const (
	// DateShort renders month and day.
	DateShort DateVariant = iota
	// DateLong renders year, month and day.
	DateLong
)

// FormatDate renders t in locale. A zero time renders Placeholder.
func FormatDate(t time.Time, locale Locale, variant DateVariant) string {
	if t.IsZero() {
		return Placeholder
	}

	switch locale {
	case LocaleKorean:
		if variant == DateLong {
			return strconv.Itoa(t.Year()) + "년 " + strconv.Itoa(int(t.Month())) + "월 " + strconv.Itoa(t.Day()) + "일"
		}
		return t.Format("01. 02.")
	default:
		if variant == DateLong {
			return t.Format("January 2, 2006")
		}
		return t.Format("01/02")
	}
}

// FormatDatePtr is FormatDate for optional dates.
func FormatDatePtr(t *time.Time, locale Locale, variant DateVariant) string {
	if t == nil {
		return Placeholder
	}
	return FormatDate(*t, locale, variant)
}

// Formatter carries the request-independent display settings.
type Formatter struct {
	Locale   Locale
	Location *time.Location
}

func NewFormatter(locale Locale, location *time.Location) Formatter {
	if location == nil {
		location = time.UTC
	}
	return Formatter{Locale: locale, Location: location}
}

func (f Formatter) Date(t time.Time, variant DateVariant) string {
	if t.IsZero() {
		return Placeholder
	}
	loc := f.Location
	if loc == nil {
		loc = time.UTC
	}
	return FormatDate(t.In(loc), f.Locale, variant)
}

func (f Formatter) DatePtr(t *time.Time, variant DateVariant) string {
	if t == nil {
		return Placeholder
	}
	return f.Date(*t, variant)
}
