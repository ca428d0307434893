// Package slug turns book titles into URL-safe identifiers.
//
//	slug.Make("The Left Hand of Darkness") // "the-left-hand-of-darkness"
//	slug.Make("Æon Flux: Crème Brûlée")    // "aeon-flux-creme-brulee"
//	slug.Make("Catch-22", slug.Separator("_"), slug.MaxLength(6))
//	// "catch"
//
// Input is decomposed for compatibility (NFKD) with golang.org/x/text, common
// ligatures are spelled out, combining marks are dropped, and every run of
// characters other than ASCII letters and digits becomes one separator.
// Characters without an ASCII decomposition, such as CJK ideographs, are
// treated as separators.
//
// MaxLength counts characters and never leaves a trailing separator.
package slug
