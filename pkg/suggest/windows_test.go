package suggest

import (
	"testing"

	"github.com/bastiangx/toolsuggest/pkg/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	tools := []catalog.ToolSpec{
		{
			Name:        "csv_exporter",
			Description: "export data to a csv file",
			Keywords:    []string{"csv", "export"},
			Aliases:     []string{"csvfile"},
		},
		{
			Name:        "bucket_uploader",
			Description: "upload files to an s3 bucket",
			Keywords:    []string{"s3", "bucket", "upload"},
		},
		{
			Name:        "pdf_reader",
			Description: "read pdf documents and extract text",
			Keywords:    []string{"pdf", "read"},
		},
	}
	e, err := NewEngine(tools, DefaultConfig(), nil)
	require.NoError(t, err)
	return e
}

func TestIntentWindowsSingleSegmentNoSeparators(t *testing.T) {
	e := newTestEngine(t)
	windows := e.intentWindows("export csv")
	require.Len(t, windows, 1)
	assert.Equal(t, []string{"export"}, windows[0].completeTerms)
	assert.Equal(t, "csv", windows[0].lastPrefix)
	assert.Greater(t, windows[0].anchorHits, 0)
}

func TestIntentWindowsSplitOnSeparatorToken(t *testing.T) {
	e := newTestEngine(t)
	cfg := e.cfg
	cfg.MaxIntents = 2
	e2, err := NewEngine(nil, cfg, nil)
	require.NoError(t, err)
	e2.AddTools([]catalog.ToolSpec{
		{Name: "csv_exporter", Keywords: []string{"csv", "export"}},
		{Name: "bucket_uploader", Keywords: []string{"s3", "bucket"}},
	})

	windows := e2.intentWindows("export csv and upload bucket")
	require.Len(t, windows, 2)
}

func TestIntentWindowsSplitOnPunctuation(t *testing.T) {
	e := newTestEngine(t)
	cfg := e.cfg
	cfg.MaxIntents = 2
	e3, err := NewEngine(nil, cfg, nil)
	require.NoError(t, err)
	e3.AddTools([]catalog.ToolSpec{
		{Name: "csv_exporter", Keywords: []string{"csv", "export"}},
		{Name: "pdf_reader", Keywords: []string{"pdf", "read"}},
	})

	windows := e3.intentWindows("export csv, read pdf")
	require.Len(t, windows, 2)
}

func TestIntentWindowsOrdersAnchoredBeforeFallbackAndKeepsBoth(t *testing.T) {
	e := newTestEngine(t)
	cfg := e.cfg
	cfg.MaxIntents = 2
	e4, err := NewEngine(nil, cfg, nil)
	require.NoError(t, err)
	e4.AddTools([]catalog.ToolSpec{
		{Name: "csv_exporter", Keywords: []string{"csv", "export"}},
	})

	windows := e4.intentWindows("export csv, thanks so much")
	require.Len(t, windows, 2)
	assert.Greater(t, windows[0].anchorHits, 0)
	assert.Equal(t, 0, windows[1].anchorHits)
}

func TestIntentWindowsEmptyTextYieldsNoWindows(t *testing.T) {
	e := newTestEngine(t)
	assert.Nil(t, e.intentWindows(""))
	assert.Nil(t, e.intentWindows("   "))
}

func TestIntentWindowsNoiseOnlyYieldsNoWindows(t *testing.T) {
	e := newTestEngine(t)
	assert.Nil(t, e.intentWindows("123 0000 !!!!"))
}

func TestMinCompleteHitsNoCompleteTermsIsNil(t *testing.T) {
	e := newTestEngine(t)
	assert.Nil(t, e.minCompleteHits(1, nil))
}

func TestMinCompleteHitsAnchoredUsesAnchorAlpha(t *testing.T) {
	e := newTestEngine(t)
	required := e.minCompleteHits(2, []string{"a", "b", "c", "d"})
	require.NotNil(t, required)
	assert.Equal(t, 1, *required)
}

func TestMinCompleteHitsFallbackUsesAlpha(t *testing.T) {
	e := newTestEngine(t)
	required := e.minCompleteHits(0, []string{"a", "b", "c"})
	require.NotNil(t, required)
	assert.Equal(t, 2, *required)
}

func TestMinCompleteHitsNeverBelowOne(t *testing.T) {
	e := newTestEngine(t)
	required := e.minCompleteHits(0, []string{"a"})
	require.NotNil(t, required)
	assert.Equal(t, 1, *required)
}
