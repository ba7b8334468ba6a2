package targets

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/christopherburke/radecparse/coords"
)

const list = `name,coordinates
M 31,00:42:44.3 +41:16:09
Vega,279.2347 38.7837
Bad Star,400.0 10.0
,12 30 00 45 00 00
Vega,18h36m56.3s +38d47m01s
`

func TestRead(t *testing.T) {
	got, err := Read(strings.NewReader(list))
	require.NoError(t, err)
	require.Len(t, got, 5)

	assert.Equal(t, "M 31", got[0].Name)
	assert.Equal(t, "00:42:44.3 +41:16:09", got[0].Coordinates)

	slugs := make([]string, len(got))
	for i, tg := range got {
		slugs[i] = tg.Slug
	}
	assert.Equal(t, []string{"m-31", "vega", "bad-star", "12-30-00-45-00-00", "vega-2"}, slugs)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "targets.csv")
	require.NoError(t, os.WriteFile(path, []byte(list), 0o644))

	got, err := Parse(path)
	require.NoError(t, err)
	assert.Len(t, got, 5)

	_, err = Parse(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestResolveAll(t *testing.T) {
	got, err := Read(strings.NewReader(list))
	require.NoError(t, err)

	counter := &Counter{}
	results := ResolveAll(got, counter)
	require.Len(t, results, 5)
	assert.Equal(t, 4, counter.AcceptedCount)
	assert.Equal(t, 1, counter.RejectedCount)

	vega := results[1]
	assert.True(t, vega.Accepted)
	assert.Equal(t, coords.ShapeDecimalPair.String(), vega.Shape)
	assert.InDelta(t, 279.2347, vega.RA, 1e-9)
	assert.Equal(t, "18:36:56.328 +38:47:01.320", vega.Colon)

	bad := results[2]
	assert.False(t, bad.Accepted)
	assert.Empty(t, bad.Colon)
	assert.Equal(t, "invalid ra 400: must be within [0, 360]", bad.Error)
	assert.True(t, coords.IsKind(bad.Err, coords.RangeViolation))

	assert.Equal(t, "12:30:00.000 +45:00:00.000", results[3].Colon)
}

func TestResolveConvertRejected(t *testing.T) {
	r := Resolve(&Target{Slug: "edge", Coordinates: "360 0"})
	assert.False(t, r.Accepted)
	assert.Zero(t, r.RA)
	assert.Zero(t, r.Dec)
	assert.True(t, coords.IsKind(r.Err, coords.RangeViolation))
	assert.Empty(t, r.Colon)
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	r := Resolve(&Target{Slug: "x", Coordinates: "12:30:00 +45:00:00"})
	require.NoError(t, WriteText(&buf, []*Result{r}))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "187.5 45", lines[0])
	assert.Equal(t, "12:30:00.000 +45:00:00.000", lines[1])
	assert.Equal(t, "12h30m00.000s +45d00m00.000s", lines[2])
	assert.Equal(t, "12 30 00.000 +45 00 00.000", lines[3])
	assert.Equal(t, "187d30m00.000s +45d00m00.000s", lines[4])
	assert.Equal(t, "12.50000000h +45.00000000d", lines[5])
}

func TestWriteTextRejected(t *testing.T) {
	var buf bytes.Buffer
	r := Resolve(&Target{Slug: "x", Coordinates: "400.0 10.0"})
	require.NoError(t, WriteText(&buf, []*Result{r}))
	assert.Empty(t, buf.String())
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	results := []*Result{
		Resolve(&Target{Slug: "a", Name: "A", Coordinates: "12:30:00 +45:00:00"}),
		Resolve(&Target{Slug: "b", Name: "B", Coordinates: "400.0 10.0"}),
	}
	require.NoError(t, WriteCSV(&buf, results))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "slug,name,input,accepted,shape,ra_deg,dec_deg,colon"))
	assert.Contains(t, lines[0], ",symbol,")
	assert.Contains(t, lines[1], "12ʰ30ᵐ00.000ˢ +45°00′00.000″")
	assert.Contains(t, lines[1], "12:30:00.000 +45:00:00.000")
	assert.Contains(t, lines[2], "invalid ra 400")
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	r := Resolve(&Target{Slug: "a", Name: "A", Coordinates: "25.0d 36.0d"})
	require.NoError(t, Write(&buf, FormatYAML, []*Result{r}))

	var back []map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	require.Len(t, back, 1)
	assert.Equal(t, "a", back[0]["slug"])
	assert.Equal(t, true, back[0]["accepted"])
	assert.EqualValues(t, 25, back[0]["ra_deg"])
	assert.Equal(t, "degree letter pair", back[0]["shape"])
	assert.NotContains(t, back[0], "error")
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"text", "yaml", "csv"} {
		f, err := ParseFormat(s)
		require.NoError(t, err)
		assert.Equal(t, Format(s), f)
	}
	_, err := ParseFormat("json")
	assert.Error(t, err)
}
