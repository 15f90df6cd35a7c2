package service

import (
	"testing"
	"time"

	"github.com/gogotex/docstore/internal/document"
	"github.com/gogotex/docstore/internal/document/repository"
	"github.com/gogotex/docstore/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMemoryService_SaveFindSearch(t *testing.T) {
	svc := NewMemoryService()
	now := time.Now()

	inserts := testutil.ToFloat64(metrics.DocumentsSaved.WithLabelValues("insert"))
	updates := testutil.ToFloat64(metrics.DocumentsSaved.WithLabelValues("update"))
	hits := testutil.ToFloat64(metrics.DocumentLookups.WithLabelValues("hit"))
	misses := testutil.ToFloat64(metrics.DocumentLookups.WithLabelValues("miss"))
	searches := testutil.ToFloat64(metrics.Searches)

	d, err := svc.Save(&document.Document{
		Title:   document.Ptr("Alpha Document"),
		Content: document.Ptr("Hello World"),
		Author:  &document.Author{ID: "1", Name: "Ann"},
		Created: document.Ptr(now),
	})
	require.NoError(t, err)
	require.NotEmpty(t, d.ID)

	_, err = svc.Save(&document.Document{ID: d.ID, Title: document.Ptr("Alpha Revised")})
	require.NoError(t, err)
	require.Equal(t, 1, svc.Count())

	got, ok := svc.FindByID(d.ID)
	require.True(t, ok)
	require.Equal(t, "Alpha Revised", *got.Title)

	_, ok = svc.FindByID("missing")
	require.False(t, ok)

	require.Len(t, svc.Search(&document.SearchRequest{TitlePrefixes: []string{"Alpha"}}), 1)
	require.Empty(t, svc.Search(&document.SearchRequest{ContainsContents: []string{"Hello"}}))

	require.Equal(t, inserts+1, testutil.ToFloat64(metrics.DocumentsSaved.WithLabelValues("insert")))
	require.Equal(t, updates+1, testutil.ToFloat64(metrics.DocumentsSaved.WithLabelValues("update")))
	require.Equal(t, hits+1, testutil.ToFloat64(metrics.DocumentLookups.WithLabelValues("hit")))
	require.Equal(t, misses+1, testutil.ToFloat64(metrics.DocumentLookups.WithLabelValues("miss")))
	require.Equal(t, searches+2, testutil.ToFloat64(metrics.Searches))
}

func TestMemoryService_SaveNil(t *testing.T) {
	svc := NewMemoryService()
	d, err := svc.Save(nil)
	require.ErrorIs(t, err, repository.ErrNilDocument)
	require.Nil(t, d)
}

func TestMemoryService_IDGeneratorOption(t *testing.T) {
	svc := NewMemoryService(repository.WithIDGenerator(func() string { return "fixed" }))
	d, err := svc.Save(&document.Document{ID: "ignored"})
	require.NoError(t, err)
	require.Equal(t, "fixed", d.ID)

	again, err := svc.Save(&document.Document{ID: "fixed", Title: document.Ptr("v2")})
	require.NoError(t, err)
	require.Equal(t, "fixed", again.ID)
	require.Len(t, svc.Search(nil), 1)
}
