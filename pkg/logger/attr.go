package logger

import (
	"fmt"
	"log/slog"
)

// Error records err under "error", or nothing when err is nil.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Title records a book title under "title".
func Title(title string) slog.Attr {
	return slog.String("title", title)
}

// PageRange records a raw page range expression under "page_range".
func PageRange(expr string) slog.Attr {
	return slog.String("page_range", expr)
}

// PageStatus records a page counting outcome under "page_status".
func PageStatus(status fmt.Stringer) slog.Attr {
	return slog.String("page_status", status.String())
}

// Strategy records the title equivalence that matched under "strategy".
func Strategy(strategy fmt.Stringer) slog.Attr {
	return slog.String("strategy", strategy.String())
}
