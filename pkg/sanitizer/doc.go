// Package sanitizer normalizes user input before it is validated or stored.
//
// Normalization is Unicode aware (golang.org/x/text/unicode/norm), so
// canonically equivalent strings end up byte-identical:
//
//	email := sanitizer.NormalizeEmail("  Ann@Example.COM ") // "ann@example.com"
//	title := sanitizer.NormalizeText("buy \t milk\x00")     // "buy milk"
package sanitizer
