// Package naming derives the Java identifiers used in generated sources.
package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lowerCaser = cases.Lower(language.Und)

// Capitalize upper-cases the first rune and leaves the rest untouched, so
// "orderItem" becomes "OrderItem".
func Capitalize(name string) string {
	if name == "" {
		return name
	}
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[size:]
}

// LowerFirst lower-cases the first rune, producing bean names such as
// "createOrderCommandHandler".
func LowerFirst(name string) string {
	if name == "" {
		return name
	}
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToLower(r)) + name[size:]
}

// Lower lower-cases the whole identifier independent of the host locale.
func Lower(name string) string {
	return lowerCaser.String(name)
}

// Pluralize applies the English suffix rules used for table names and REST
// paths: "category" -> "categories", "box" -> "boxes", "order" -> "orders".
func Pluralize(name string) string {
	switch {
	case name == "":
		return name
	case strings.HasSuffix(name, "y"):
		return strings.TrimSuffix(name, "y") + "ies"
	case strings.HasSuffix(name, "s"), strings.HasSuffix(name, "x"),
		strings.HasSuffix(name, "ch"), strings.HasSuffix(name, "sh"):
		return name + "es"
	default:
		return name + "s"
	}
}

// WithSuffix capitalizes name and appends suffix unless it is already there.
func WithSuffix(name, suffix string) string {
	capitalized := Capitalize(name)
	if strings.HasSuffix(capitalized, suffix) {
		return capitalized
	}
	return capitalized + suffix
}

// WithoutSuffix capitalizes name and strips a trailing suffix, so both
// "order" and "OrderController" yield "Order" for suffix "Controller".
func WithoutSuffix(name, suffix string) string {
	capitalized := Capitalize(name)
	return strings.TrimSuffix(capitalized, suffix)
}

// Slug normalises free-form migration names: lower case with spaces and
// hyphens folded into underscores.
func Slug(name string) string {
	return strings.NewReplacer(" ", "_", "-", "_").Replace(Lower(name))
}
