package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/bookmeta/pkg/logger"
	"github.com/dmitrymomot/bookmeta/pkg/pages"
	"github.com/dmitrymomot/bookmeta/pkg/sanitizer"
	"github.com/dmitrymomot/bookmeta/pkg/slug"
	"github.com/dmitrymomot/bookmeta/pkg/title"
	"github.com/dmitrymomot/bookmeta/pkg/validator"
)

// Entry is a book entry as submitted by a user. Pages and Bookmark are
// optional; empty values are not checked.
type Entry struct {
	Title       string
	Pages       string
	Bookmark    string
	Description string
}

// Record is an Entry that passed Check.
type Record struct {
	Title       string
	// Slug is the URL slug of Title. Titles without Latin letters or digits
	// get a name-based UUID instead, so Slug is never empty.
	Slug        string
	PageCount   int64
	Bookmark    int64
	HasBookmark bool
	Description string
}

// Checker validates entries. Build it with New or NewFromConfig.
type Checker struct {
	titles title.Validator
	clean  func(string) string
	log    *slog.Logger
}

// Option configures a Checker.
type Option func(*Checker)

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *Checker) {
		if l != nil {
			c.log = l
		}
	}
}

// WithTitleValidator replaces title.DefaultValidator().
func WithTitleValidator(v title.Validator) Option {
	return func(c *Checker) {
		c.titles = v
	}
}

// WithHTML sanitizes descriptions with e under p instead of CleanForHTML.
func WithHTML(e sanitizer.Engine, p sanitizer.Policy) Option {
	return func(c *Checker) {
		if e != nil {
			c.clean = descriptionCleaner(sanitizer.HTMLCleaner(e, p))
		}
	}
}

// New returns a Checker using the package defaults: the default title
// blocklist, sanitizer.CleanForHTML and a discarding logger.
func New(opts ...Option) *Checker {
	c := &Checker{
		titles: title.DefaultValidator(),
		clean:  descriptionCleaner(sanitizer.CleanForHTML),
		log:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewFromConfig builds a Checker from cfg. Extra opts are applied last.
func NewFromConfig(cfg Config, opts ...Option) (*Checker, error) {
	policy, err := cfg.Policy()
	if err != nil {
		return nil, err
	}
	log, err := cfg.Logger()
	if err != nil {
		return nil, err
	}

	base := []Option{
		WithLogger(log),
		WithTitleValidator(title.NewValidator(cfg.TitleBlocklist...)),
		WithHTML(sanitizer.TokenEngine{}, policy),
	}
	return New(append(base, opts...)...), nil
}

// slugNamespace scopes the name-based UUIDs used as fallback slugs.
var slugNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/dmitrymomot/bookmeta/title"))

func titleSlug(t string) string {
	if s := slug.Make(t); s != "" {
		return s
	}
	return uuid.NewSHA1(slugNamespace, []byte(t)).String()
}

func descriptionCleaner(html func(string) string) func(string) string {
	return sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.Trim, html)
}

// Check validates e and returns the normalized record. Validation failures
// are returned as validator.ValidationErrors wrapped with ErrInvalidEntry.
func (c *Checker) Check(ctx context.Context, e Entry) (Record, error) {
	rules := []validator.Rule{validator.TitleWith("title", e.Title, c.titles)}
	if e.Pages != "" {
		rules = append(rules,
			validator.PageRange("pages", e.Pages),
			validator.PageRangeComputable("pages", e.Pages),
		)
	}
	if e.Bookmark != "" {
		rules = append(rules, validator.PageNumber("bookmark", e.Bookmark))
	}

	if err := validator.Apply(rules...); err != nil {
		c.log.DebugContext(ctx, "book entry rejected",
			logger.Title(e.Title),
			logger.PageRange(e.Pages),
			logger.Error(err),
		)
		return Record{}, fmt.Errorf("%w: %w", ErrInvalidEntry, err)
	}

	rec := Record{
		Title:       e.Title,
		Slug:        titleSlug(e.Title),
		Description: c.clean(e.Description),
	}
	if e.Pages != "" {
		rec.PageCount = pages.CountPages(e.Pages).Int64()
	}
	if e.Bookmark != "" {
		rec.Bookmark, rec.HasBookmark = pages.CleanPageNum(e.Bookmark)
	}

	c.log.DebugContext(ctx, "book entry accepted",
		logger.Title(rec.Title),
		slog.String("slug", rec.Slug),
		slog.Int64("page_count", rec.PageCount),
	)
	return rec, nil
}

// Count counts the pages in expr and logs expressions that cannot be counted.
func (c *Checker) Count(ctx context.Context, expr string) pages.Result {
	res := pages.CountPages(expr)
	switch res.Status() {
	case pages.StatusMalformed:
		c.log.DebugContext(ctx, "malformed page range", logger.PageRange(expr), logger.PageStatus(res.Status()))
	case pages.StatusUncomputable:
		c.log.WarnContext(ctx, "page range too large to count", logger.PageRange(expr), logger.PageStatus(res.Status()))
	}
	return res
}

// SameTitle reports whether a and b denote the same title, logging the
// equivalence that matched.
func (c *Checker) SameTitle(ctx context.Context, a, b string) bool {
	strategy, same := title.SameTitle(a, b)
	if same {
		c.log.DebugContext(ctx, "titles match", logger.Title(a), logger.Strategy(strategy))
	}
	return same
}

// Duplicates returns the indexes of entries in shelf whose title is the same
// as t.
func (c *Checker) Duplicates(ctx context.Context, t string, shelf []string) []int {
	var idx []int
	for i, s := range shelf {
		if c.SameTitle(ctx, t, s) {
			idx = append(idx, i)
		}
	}
	return idx
}
