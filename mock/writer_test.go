package mock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/pystandards"
	"github.com/fwojciec/pystandards/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportWriter_WriteExport(t *testing.T) {
	t.Parallel()

	t.Run("delegates to WriteExportFn", func(t *testing.T) {
		t.Parallel()

		var calledPath string
		var calledDoc *pystandards.Export
		w := &mock.ExportWriter{
			WriteExportFn: func(_ context.Context, path string, doc *pystandards.Export) error {
				calledPath = path
				calledDoc = doc
				return nil
			},
		}

		doc := &pystandards.Export{}
		err := w.WriteExport(context.Background(), "standards.json", doc)

		require.NoError(t, err)
		assert.Equal(t, "standards.json", calledPath)
		assert.Same(t, doc, calledDoc)
	})

	t.Run("returns error from WriteExportFn", func(t *testing.T) {
		t.Parallel()

		expectedErr := errors.New("disk full")
		w := &mock.ExportWriter{
			WriteExportFn: func(_ context.Context, _ string, _ *pystandards.Export) error {
				return expectedErr
			},
		}

		err := w.WriteExport(context.Background(), "standards.json", &pystandards.Export{})

		assert.Equal(t, expectedErr, err)
	})
}
