package validator

import (
	"github.com/dmitrymomot/bookmeta/pkg/pages"
	"github.com/dmitrymomot/bookmeta/pkg/title"
)

// ValidTitle checks value the way title.IsTitle does.
func ValidTitle(field, value string) Rule {
	return TitleWith(field, value, title.DefaultValidator())
}

// TitleWith checks value with a caller-supplied title validator.
func TitleWith(field, value string, v title.Validator) Rule {
	return Rule{
		Check: func() bool {
			return v.Valid(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid book title",
			TranslationKey: "validation.title",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// PageNumber checks that value is a single page reference such as "12" or "p12".
func PageNumber(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, ok := pages.CleanPageNum(value)
			return ok
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a page number",
			TranslationKey: "validation.page_number",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// PageRange checks that value is a well-formed page range expression.
// An expression whose count overflows is still well-formed; see
// PageRangeComputable.
func PageRange(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return !pages.CountPages(value).Malformed()
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a list of pages or page ranges",
			TranslationKey: "validation.page_range",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// PageRangeComputable checks that the pages in value can be counted without
// exceeding pages.MaxSafeInteger.
func PageRangeComputable(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return !pages.CountPages(value).Uncomputable()
		},
		Error: ValidationError{
			Field:          field,
			Message:        "covers too many pages to count",
			TranslationKey: "validation.page_range_overflow",
			TranslationValues: map[string]any{
				"field": field,
				"max":   pages.MaxSafeInteger,
			},
		},
	}
}
