package mock

import (
	"context"

	"github.com/fwojciec/pystandards"
)

var _ pystandards.ExportWriter = (*ExportWriter)(nil)

// ExportWriter is a mock implementation of pystandards.ExportWriter.
type ExportWriter struct {
	WriteExportFn func(ctx context.Context, path string, doc *pystandards.Export) error
}

func (w *ExportWriter) WriteExport(ctx context.Context, path string, doc *pystandards.Export) error {
	return w.WriteExportFn(ctx, path, doc)
}
