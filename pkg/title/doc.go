// Package title validates book titles and decides whether two titles denote
// the same work.
//
// Validation is deliberately lenient. A title is accepted when it carries no
// surrounding whitespace, is not on the blocklist (compared case-insensitively)
// and matches at least one of the allowed-content patterns. Matching any single
// pattern is enough, so "Hello, World!?" is accepted because it contains a
// space, while "abc@@@" is rejected because no pattern matches it.
//
//	title.IsTitle("The Hobbit")        // true
//	title.IsTitle(" The Hobbit")       // false, leading space
//	title.IsTitle("boaty mcboatface")  // false, blocked
//	title.IsTitle(42)                  // false, not text
//
// Equivalence tries three independent normalizations against the original
// inputs and reports a match if any of them makes the strings equal:
//
//   - DiacriticInsensitive: trim, NFD, drop U+0300..U+036F
//   - LigatureExpanded: NFKD, replace "æ" with "ae"
//   - BidiStripped: NFKD, drop U+202E RIGHT-TO-LEFT OVERRIDE
//
//	title.IsSameTitle("café", "cafe\u0301") // true
//	title.IsSameTitle("æon", "aeon")          // true
//	title.IsSameTitle("Æon", "AEon")          // false, only lowercase æ expands
//
// All functions are pure and safe for concurrent use.
package title
