// Package validator turns the bookmeta checks into declarative rules with
// translation-friendly error metadata.
//
// A Rule pairs a Check func with the ValidationError reported when it fails.
// Apply evaluates rules and aggregates failures into ValidationErrors, which
// implements error, so several field problems travel in one return value.
//
//	err := validator.Apply(
//	    validator.ValidTitle("title", entry.Title),
//	    validator.PageRange("pages", entry.Pages),
//	    validator.PageNumber("bookmark", entry.Bookmark),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        // render verrs.Get(field)
//	    }
//	}
//
// Translation keys used by the book rules:
//
//   - validation.title
//   - validation.page_number
//   - validation.page_range
//   - validation.page_range_overflow
//
// Rules hold no state beyond their captured arguments and are safe to build
// and evaluate concurrently.
package validator
