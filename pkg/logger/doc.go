// Package logger builds log/slog loggers for bookmeta components.
//
// New returns a *slog.Logger configured with functional options: output
// format (text or JSON), minimum level, static attributes, and
// ContextExtractor callbacks that add attributes taken from a
// context.Context every time a record is handled.
//
//	log := logger.New(
//	    logger.WithEnvironment("development", "catalog"),
//	    logger.WithContextValue("request_id", requestIDKey),
//	)
//	log.DebugContext(ctx, "title rejected", logger.Title(entry.Title))
//
// Attribute helpers in attr.go keep key names consistent: Error, Component,
// Title, PageRange, PageStatus and Strategy. Error returns an empty attribute
// for a nil error so it can be passed unconditionally.
//
// ParseLevel and ParseFormat turn configuration strings into option values.
package logger
