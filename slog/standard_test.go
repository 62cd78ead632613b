package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/pystandards"
	"github.com/fwojciec/pystandards/mock"
	pyslog "github.com/fwojciec/pystandards/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingStandardService_ListCategories(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.StandardService{
		ListCategoriesFn: func(ctx context.Context) ([]pystandards.CategoryInfo, error) {
			return []pystandards.CategoryInfo{
				{Category: pystandards.CategoryTesting, Title: "Testing and Quality"},
				{Category: pystandards.CategoryEnvironment, Title: "Development Environment"},
			}, nil
		},
	}

	infos, err := pyslog.NewLoggingStandardService(inner, logger).ListCategories(context.Background())

	require.NoError(t, err)
	assert.Len(t, infos, 2)
	output := buf.String()
	assert.Contains(t, output, "list categories")
	assert.Contains(t, output, "count=2")
	assert.Contains(t, output, "duration=")
}

func TestLoggingStandardService_FindStandard(t *testing.T) {
	t.Parallel()

	t.Run("logs category and example count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.StandardService{
			FindStandardFn: func(ctx context.Context, category pystandards.Category) (*pystandards.Standard, error) {
				return &pystandards.Standard{Category: category, Examples: make([]pystandards.Example, 3)}, nil
			},
		}

		_, err := pyslog.NewLoggingStandardService(inner, logger).FindStandard(context.Background(), pystandards.CategoryTesting)

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "find standard")
		assert.Contains(t, output, "category=testing")
		assert.Contains(t, output, "examples=3")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.StandardService{
			FindStandardFn: func(ctx context.Context, category pystandards.Category) (*pystandards.Standard, error) {
				return nil, errors.New("not indexed")
			},
		}

		_, err := pyslog.NewLoggingStandardService(inner, logger).FindStandard(context.Background(), pystandards.CategoryTesting)

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "examples=0")
		assert.Contains(t, output, "err=\"not indexed\"")
	})
}

func TestLoggingStandardService_Search(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.StandardService{
		SearchFn: func(ctx context.Context, query string) ([]pystandards.SearchResult, error) {
			return []pystandards.SearchResult{{Category: pystandards.CategoryTesting, Field: "title", Text: "Testing"}}, nil
		},
	}

	results, err := pyslog.NewLoggingStandardService(inner, logger).Search(context.Background(), "test")

	require.NoError(t, err)
	assert.Len(t, results, 1)
	output := buf.String()
	assert.Contains(t, output, "msg=search")
	assert.Contains(t, output, "query=test")
	assert.Contains(t, output, "count=1")
}
