package pages

import (
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/dmitrymomot/bookmeta/internal/jstext"
)

const (
	// MaxTokenLength is the longest range token CountPages accepts.
	MaxTokenLength = 1000

	// MaxSafeInteger is the largest page count CountPages reports, 2^53-1.
	// Counts stay exactly representable as IEEE-754 doubles so they survive
	// JSON round trips through other runtimes.
	MaxSafeInteger int64 = 1<<53 - 1
)

var (
	pageNumRegex     = regexp.MustCompile(`^p?\d+$`)
	rangeTokenRegex  = regexp.MustCompile(`^\d+-\d+$`)
	singleTokenRegex = regexp.MustCompile(`^\d+$`)
	rangeStripper    = strings.NewReplacer("p", "", " ", "")
)

// CleanPageNum parses a single page reference such as "12", "p12" or " p 12 ".
// Whitespace anywhere in raw is ignored. ok is false when raw is not a page
// reference or the number does not fit in an int64.
func CleanPageNum(raw string) (n int64, ok bool) {
	s := jstext.RemoveSpace(raw)

	if !pageNumRegex.MatchString(s) {
		return 0, false
	}

	n, err := strconv.ParseInt(strings.TrimPrefix(s, "p"), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// CountPages counts, inclusively, the pages named by a comma-separated list of
// page numbers and ranges, e.g. "1-3,5-6,p9" is 6 pages. Every "p" and space is
// removed before splitting. A descending range counts like its ascending twin.
//
// Any token that is not a number or a number pair, including an empty token,
// makes the whole expression malformed. The count is uncomputable as soon as
// the running total exceeds MaxSafeInteger.
func CountPages(raw string) Result {
	var total int64

	for _, token := range strings.Split(rangeStripper.Replace(raw), ",") {
		if len(token) > MaxTokenLength {
			return Malformed()
		}

		switch {
		case rangeTokenRegex.MatchString(token):
			lo, hi, _ := strings.Cut(token, "-")
			n, ok := span(lo, hi)
			if !ok {
				return Uncomputable()
			}
			total += n
		case singleTokenRegex.MatchString(token):
			total++
		default:
			return Malformed()
		}

		if total > MaxSafeInteger {
			return Uncomputable()
		}
	}

	return Count(total)
}

// span returns |hi-lo|+1 for two decimal digit runs, or false when it exceeds
// MaxSafeInteger.
func span(lo, hi string) (int64, bool) {
	a, errA := strconv.ParseInt(lo, 10, 64)
	b, errB := strconv.ParseInt(hi, 10, 64)
	if errA == nil && errB == nil {
		d := b - a
		if d < 0 {
			d = -d
		}
		if d >= MaxSafeInteger {
			return 0, false
		}
		return d + 1, true
	}

	// Endpoints wider than int64; digits are already validated.
	x, _ := new(big.Int).SetString(lo, 10)
	y, _ := new(big.Int).SetString(hi, 10)
	d := new(big.Int).Sub(y, x)
	d.Abs(d)
	if !d.IsInt64() || d.Int64() >= MaxSafeInteger {
		return 0, false
	}
	return d.Int64() + 1, true
}
