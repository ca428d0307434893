package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/bookmeta/pkg/logger"
	"github.com/dmitrymomot/bookmeta/pkg/pages"
	"github.com/dmitrymomot/bookmeta/pkg/title"
)

func TestAttrs(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		err := errors.New("boom")
		assert.Equal(t, slog.Any("error", err), logger.Error(err))
		assert.Equal(t, slog.Attr{}, logger.Error(nil))
	})

	t.Run("domain attributes", func(t *testing.T) {
		assert.Equal(t, slog.String("component", "catalog"), logger.Component("catalog"))
		assert.Equal(t, slog.String("title", "Dune"), logger.Title("Dune"))
		assert.Equal(t, slog.String("page_range", "1-3"), logger.PageRange("1-3"))
		assert.Equal(t, slog.String("page_status", "malformed"), logger.PageStatus(pages.StatusMalformed))
		assert.Equal(t, slog.String("strategy", "bidi_stripped"), logger.Strategy(title.BidiStripped))
	})
}
