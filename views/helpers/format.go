package helpers

import (
	"database/sql"
	"fmt"
	"html/template"
	"strings"
)

// FuncMap exposes the formatting helpers to the page templates.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"formatPrice":  FormatPrice,
		"formatDate":   FormatDate,
		"contentLabel": ContentLabel,
	}
}

// FormatPrice formats a nullable price as dollars (e.g. 15.5 -> "$15.50")
func FormatPrice(price sql.NullFloat64) string {
	if !price.Valid {
		return ""
	}
	return fmt.Sprintf("$%.2f", price.Float64)
}

// FormatDate formats a sql.NullTime as "Jan 2, 2006", empty when null
func FormatDate(t sql.NullTime) string {
	if !t.Valid {
		return ""
	}
	return t.Time.Format("Jan 2, 2006")
}

// ContentLabel turns a stored content type into a display label
// (e.g. "marketing_copy" -> "Marketing Copy")
func ContentLabel(contentType string) string {
	words := strings.Split(contentType, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
