// Package log provides logging helpers built on top of the standard
// slog package.
//
// Gazette articles run to thousands of characters of OCR text, and
// attaching one to a log record as-is makes the output unreadable. The
// ClipHandler wraps any slog.Handler and truncates long string
// attributes to a fixed budget before they reach the underlying
// handler, appending an ellipsis marker with the original length.
//
// Usage:
//
//	logger := log.NewClipLogger(os.Stderr, true) // verbose=true
//	logger.Debug("article normalized",
//	    "article", article.ID,
//	    "text", article.NormalizedText, // clipped if long
//	)
//	slog.SetDefault(logger)
package log
