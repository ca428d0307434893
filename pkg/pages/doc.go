// Package pages parses page numbers and counts the pages covered by a page
// range expression such as the ones accepted by a print dialog.
//
// CleanPageNum is a best-effort parser for a single page reference:
//
//	n, ok := pages.CleanPageNum(" p3 ") // 3, true
//	_, ok = pages.CleanPageNum("abc")   // ok == false
//
// CountPages counts pages inclusively across comma-separated tokens, each a
// single page or a hyphenated range in either direction:
//
//	pages.CountPages("1-3,5-6,p9").Int64() // 6
//	pages.CountPages("10-1").Int64()       // 10
//
// # Results
//
// CountPages returns a Result that keeps two failure classes apart:
//
//   - StatusMalformed: a token does not fit the grammar or is longer than
//     MaxTokenLength. The page count is reported as zero.
//   - StatusUncomputable: the running total exceeded MaxSafeInteger.
//
// Callers that only need a number can use Int64, which is zero for both.
package pages
