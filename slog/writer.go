package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pystandards"
)

var _ pystandards.ExportWriter = (*LoggingExportWriter)(nil)

// LoggingExportWriter wraps an ExportWriter with logging.
type LoggingExportWriter struct {
	next   pystandards.ExportWriter
	logger *slog.Logger
}

// NewLoggingExportWriter creates a new LoggingExportWriter.
func NewLoggingExportWriter(next pystandards.ExportWriter, logger *slog.Logger) *LoggingExportWriter {
	return &LoggingExportWriter{next: next, logger: logger}
}

// WriteExport delegates to the wrapped writer and logs the operation.
func (w *LoggingExportWriter) WriteExport(ctx context.Context, path string, doc *pystandards.Export) (err error) {
	defer func(begin time.Time) {
		var standards int
		if doc != nil {
			standards = len(doc.Standards)
		}
		w.logger.Info("write export",
			"path", path,
			"standards", standards,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteExport(ctx, path, doc)
}
