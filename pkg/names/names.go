// Copyright (c) 2026 Yiffer.xyz. All rights reserved.
// Author: contact@yiffer.xyz

// Package names normalizes comic and artist names for fuzzy comparison.
//
// # Usage
//
// Submitted names are compared against the ban list and against existing
// records in normalized form so that "Café Dog!" and "cafe-dog" collide.
package names

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// nonAlphanumeric matches any character outside [a-z0-9].
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)
)

// Normalize converts an arbitrary Unicode name into a canonical ASCII form.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD (decomposes accented chars: é → e + combining acute).
// 2. Removes combining marks (accents).
// 3. Converts to lowercase.
// 4. Strips everything outside [a-z0-9].
func Normalize(s string) string {
	// 1. Normalize and remove accents
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	result, _, _ := transform.String(t, s)

	// 2. Lowercase
	result = strings.ToLower(result)

	// 3. Strip separators and punctuation entirely
	result = nonAlphanumeric.ReplaceAllString(result, "")

	return result
}

// Similar reports whether two names collide in normalized form.
func Similar(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// isMn reports whether the rune is a Unicode combining mark (category Mn).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
