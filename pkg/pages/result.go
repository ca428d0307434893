package pages

import "strconv"

// Status classifies the outcome of CountPages.
type Status uint8

const (
	// StatusOK means the expression was counted.
	StatusOK Status = iota
	// StatusMalformed means the expression does not describe pages.
	StatusMalformed
	// StatusUncomputable means the count does not fit MaxSafeInteger.
	StatusUncomputable
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusMalformed:
		return "malformed"
	case StatusUncomputable:
		return "uncomputable"
	default:
		return "unknown"
	}
}

// Result is the outcome of counting a page range expression.
type Result struct {
	count  int64
	status Status
}

// Count returns a successful Result.
func Count(n int64) Result { return Result{count: n, status: StatusOK} }

// Malformed returns the Result for an expression that does not fit the grammar.
func Malformed() Result { return Result{status: StatusMalformed} }

// Uncomputable returns the Result for a count that overflowed.
func Uncomputable() Result { return Result{status: StatusUncomputable} }

// Status reports how counting ended.
func (r Result) Status() Status { return r.status }

// OK reports whether the expression was counted.
func (r Result) OK() bool { return r.status == StatusOK }

// Malformed reports whether the expression was rejected by the grammar.
func (r Result) Malformed() bool { return r.status == StatusMalformed }

// Uncomputable reports whether counting overflowed.
func (r Result) Uncomputable() bool { return r.status == StatusUncomputable }

// Value returns the page count and whether it is defined. A malformed
// expression is defined as zero pages; an uncomputable one is undefined.
func (r Result) Value() (int64, bool) {
	return r.count, r.status != StatusUncomputable
}

// Int64 returns the page count, or zero when counting failed.
func (r Result) Int64() int64 { return r.count }

func (r Result) String() string {
	if r.status == StatusOK {
		return strconv.FormatInt(r.count, 10)
	}
	return r.status.String()
}
