package search

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expo-kit/rn-expo-mcp/internal/config"
	"github.com/expo-kit/rn-expo-mcp/internal/content"
	"github.com/expo-kit/rn-expo-mcp/internal/guides"
	"github.com/expo-kit/rn-expo-mcp/internal/patterns"
)

func buildCatalogIndex(t *testing.T) (*Index, []Document) {
	t.Helper()

	reg, err := patterns.Load(content.FS)
	require.NoError(t, err)
	g, err := guides.Load(content.FS)
	require.NoError(t, err)

	docs := Documents(reg, g)
	ix, err := New(context.Background(), docs)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ix.Close() })
	return ix, docs
}

func newTestIndex(t *testing.T, docs ...Document) *Index {
	t.Helper()
	ix, err := New(context.Background(), docs)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ix.Close() })
	return ix
}

// --- Catalog ---

func TestBuild_IndexesWholeCatalog(t *testing.T) {
	ix, docs := buildCatalogIndex(t)

	n, err := ix.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(docs), n)

	kinds := map[Kind]int{}
	for _, d := range docs {
		kinds[d.Kind]++
	}
	assert.Equal(t, len(guides.Categories), kinds[KindPractice])
	assert.Equal(t, 3, kinds[KindReference])
	// 13 expo-router steps plus react-navigation copies of steps 2, 5 and 7.
	assert.Equal(t, guides.StepCount+3, kinds[KindSetup])
	assert.Greater(t, kinds[KindPattern], 50)
}

func TestSearch_MMKVFindsStatePattern(t *testing.T) {
	ix, _ := buildCatalogIndex(t)

	results, err := ix.Search(context.Background(), "MMKV", 20)
	require.NoError(t, err)
	require.NotEmpty(t, results)

	found := false
	for _, r := range results {
		if r.Kind == KindPattern && r.Family == patterns.State {
			found = true
			break
		}
	}
	assert.True(t, found, "expected a state pattern among results")
}

func TestSearch_SetupStepCarriesRouter(t *testing.T) {
	ix, _ := buildCatalogIndex(t)

	results, err := ix.Search(context.Background(), "AppNavigator", 20)
	require.NoError(t, err)
	require.NotEmpty(t, results)

	for _, r := range results {
		if r.Kind == KindSetup {
			assert.Equal(t, string(config.RouterReactNavigation), r.Router)
		}
	}
}

// --- Search ---

func TestSearch_RanksAndHighlights(t *testing.T) {
	ix := newTestIndex(t,
		Document{Kind: KindPattern, Family: "state", Key: "mmkv", Title: "MMKV storage", Body: "MMKV is a fast key value store. Use MMKV with persist."},
		Document{Kind: KindPattern, Family: "api", Key: "axios", Title: "Axios client", Body: "Axios handles HTTP requests."},
	)

	results, err := ix.Search(context.Background(), "mmkv", 5)
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, KindPattern, r.Kind)
	assert.Equal(t, "state", r.Family)
	assert.Equal(t, "mmkv", r.Key)
	assert.Equal(t, "MMKV storage", r.Title)
	assert.Contains(t, r.Snippet, "**MMKV**")
}

func TestSearch_AllWordsMustMatch(t *testing.T) {
	ix := newTestIndex(t,
		Document{Kind: KindPattern, Key: "a", Title: "A", Body: "zustand store with selectors"},
		Document{Kind: KindPattern, Key: "b", Title: "B", Body: "zustand store"},
	)

	results, err := ix.Search(context.Background(), "zustand selectors", 5)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "a", results[0].Key)
}

func TestSearch_Stemming(t *testing.T) {
	ix := newTestIndex(t,
		Document{Kind: KindReference, Key: "r", Title: "Lists", Body: "Rendering long lists"},
	)

	results, err := ix.Search(context.Background(), "render list", 5)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestSearch_EmptyQuery(t *testing.T) {
	ix := newTestIndex(t, Document{Kind: KindReference, Key: "r", Title: "T", Body: "body"})

	for _, q := range []string{"", "   ", "\t\n"} {
		results, err := ix.Search(context.Background(), q, 5)
		require.NoError(t, err)
		assert.Nil(t, results)
	}
}

func TestSearch_QuerySyntaxIsLiteral(t *testing.T) {
	ix := newTestIndex(t, Document{Kind: KindReference, Key: "r", Title: "T", Body: "zustand and mmkv"})

	for _, q := range []string{"zustand AND (mmkv", `NEAR(zustand`, `mm"kv`, "title:zustand", "zust*"} {
		_, err := ix.Search(context.Background(), q, 5)
		assert.NoError(t, err, q)
	}
}

func TestSearch_LimitIsClamped(t *testing.T) {
	var docs []Document
	for i := 0; i < 30; i++ {
		docs = append(docs, Document{Kind: KindPattern, Key: strings.Repeat("k", i+1), Title: "Expo", Body: "expo router"})
	}
	ix := newTestIndex(t, docs...)

	tests := []struct {
		limit int
		want  int
	}{
		{1, 1},
		{0, config.DefaultSearchLimit},
		{-4, config.DefaultSearchLimit},
		{100, config.MaxSearchLimit},
	}
	for _, tt := range tests {
		results, err := ix.Search(context.Background(), "expo", tt.limit)
		require.NoError(t, err)
		assert.Len(t, results, tt.want, "limit %d", tt.limit)
	}
}

func TestSearch_CanceledContext(t *testing.T) {
	ix := newTestIndex(t, Document{Kind: KindReference, Key: "r", Title: "T", Body: "body"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ix.Search(ctx, "body", 5)
	assert.Error(t, err)
}

// --- Helpers ---

func TestSanitizeFTS(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", ""},
		{"mmkv", `"mmkv"`},
		{"zustand  mmkv", `"zustand" "mmkv"`},
		{`"quoted"`, `"quoted"`},
		{`mm"kv`, `"mm""kv"`},
		{"AND OR NOT", `"AND" "OR" "NOT"`},
		{`mmkv ""`, `"mmkv"`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeFTS(tt.in), tt.in)
	}
}

func TestNew_OpenError(t *testing.T) {
	orig := openDB
	t.Cleanup(func() { openDB = orig })

	openDB = func(string, string) (*sql.DB, error) {
		return nil, errors.New("boom")
	}

	_, err := New(context.Background(), nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}
