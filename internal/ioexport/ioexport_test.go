package ioexport_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gndefrag/internal/ioexport"
	"github.com/gnames/gndefrag/internal/iotesting"
	"github.com/gnames/gndefrag/pkg/catalog"
	"github.com/gnames/gndefrag/pkg/config"
	"github.com/gnames/gndefrag/pkg/errcode"
	"github.com/gnames/gndefrag/pkg/optimize"
	"github.com/gnames/gndefrag/pkg/strategy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func greedyOutcome(t *testing.T) *optimize.Outcome {
	t.Helper()
	c := iotesting.ScenarioCatalog()
	out, err := optimize.Run(context.Background(), c, strategy.Greedy, nil)
	require.NoError(t, err)
	return out
}

func assertCode(t *testing.T, err error, code gn.ErrorCode) {
	t.Helper()
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")
	assert.Equal(t, code, gnErr.Code)
}

func TestWriteLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.out")
	err := ioexport.WriteLayout(path, greedyOutcome(t))
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1\n3\n2\n", string(content))
}

func TestWriteLayoutNotOptimized(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.out")
	err := ioexport.WriteLayout(path, nil)
	assertCode(t, err, errcode.NotOptimizedError)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "no file should be created")
}

func TestWriteLayoutBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "layout.out")
	err := ioexport.WriteLayout(path, greedyOutcome(t))
	assertCode(t, err, errcode.WriteLayoutError)
}

func TestWriteReport(t *testing.T) {
	out := greedyOutcome(t)
	dir := t.TempDir()

	t.Run("json", func(t *testing.T) {
		path := filepath.Join(dir, "report.json")
		require.NoError(t, ioexport.WriteReport(path, "JSON", out, 2))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		var rep map[string]any
		require.NoError(t, json.Unmarshal(content, &rep))

		res := rep["result"].(map[string]any)
		assert.Equal(t, "greedy", res["algorithm"])
		assert.Equal(t, out.Result.RunID, res["runId"])
		ps := rep["placements"].([]any)
		require.Len(t, ps, 2)
		first := ps[0].(map[string]any)
		assert.Equal(t, float64(1), first["id"])
		assert.Equal(t, float64(1), first["newPosition"])
		cat := rep["catalog"].(map[string]any)
		assert.Equal(t, float64(3), cat["objectsNum"])
	})

	t.Run("yaml", func(t *testing.T) {
		path := filepath.Join(dir, "report.yaml")
		require.NoError(t, ioexport.WriteReport(path, "yaml", out, 20))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		var rep struct {
			Result struct {
				Algorithm  string  `yaml:"algorithm"`
				AfterScore float64 `yaml:"after_score"`
			} `yaml:"result"`
			Placements []struct {
				ID          int `yaml:"id"`
				NewPosition int `yaml:"new_position"`
			} `yaml:"placements"`
		}
		require.NoError(t, yaml.Unmarshal(content, &rep))
		assert.Equal(t, "greedy", rep.Result.Algorithm)
		assert.InDelta(t, out.Result.AfterScore, rep.Result.AfterScore, 1e-9)
		require.Len(t, rep.Placements, 3)
		assert.Equal(t, 3, rep.Placements[1].ID)
		assert.Equal(t, 2, rep.Placements[1].NewPosition)
	})

	t.Run("text", func(t *testing.T) {
		path := filepath.Join(dir, "report.txt")
		require.NoError(t, ioexport.WriteReport(path, "text", out, 20))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		txt := string(content)
		assert.Contains(t, txt, "greedy")
		assert.Contains(t, txt, out.Result.RunID)
		assert.Contains(t, txt, "First 3 placements")
		assert.Contains(t, txt, "33.33%")
	})

	t.Run("unknown format", func(t *testing.T) {
		path := filepath.Join(dir, "report.xml")
		err := ioexport.WriteReport(path, "xml", out, 20)
		assertCode(t, err, errcode.UnknownReportFormatError)
		_, err = os.Stat(path)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("not optimized", func(t *testing.T) {
		path := filepath.Join(dir, "none.json")
		err := ioexport.WriteReport(path, "json", nil, 20)
		assertCode(t, err, errcode.NotOptimizedError)
	})
}

func TestNewReport(t *testing.T) {
	out := greedyOutcome(t)
	assert.Len(t, ioexport.NewReport(out, 0).Placements, 0)
	assert.Len(t, ioexport.NewReport(out, 1).Placements, 1)
	assert.Len(t, ioexport.NewReport(out, 100).Placements, 3)
	assert.Len(t, ioexport.NewReport(out, -1).Placements, 3)
}

func TestEncodeText(t *testing.T) {
	var buf bytes.Buffer
	rep := ioexport.NewReport(greedyOutcome(t), 20)
	require.NoError(t, ioexport.Encode(&buf, ioexport.Text, rep))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	// header of placements and three rows at the end
	assert.Contains(t, lines[len(lines)-4], "frequency")
	assert.Equal(t, []string{"1", "1", "1"},
		strings.Fields(lines[len(lines)-3])[:3])
}

func TestExporter(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	layoutPath := filepath.Join(dir, "layout.out")
	reportPath := filepath.Join(dir, "report.yaml")

	cfg := config.New()
	cfg.Update([]config.Option{config.OptReportFormat("yaml")})

	t.Run("nil outcome", func(t *testing.T) {
		e := ioexport.New(cfg, layoutPath, reportPath)
		err := e.Export(ctx, nil)
		assertCode(t, err, errcode.NotOptimizedError)
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("layout and report", func(t *testing.T) {
		e := ioexport.New(cfg, layoutPath, reportPath)
		require.NoError(t, e.Export(ctx, greedyOutcome(t)))
		_, err := os.Stat(layoutPath)
		assert.NoError(t, err)
		_, err = os.Stat(reportPath)
		assert.NoError(t, err)
	})

	t.Run("works with optimizer", func(t *testing.T) {
		c := catalog.New([]catalog.Object{
			{ID: 5, Size: 1, AccessFrequency: 0.1},
			{ID: 6, Size: 1, AccessFrequency: 0.9},
		}, 10, 1)
		o := optimize.NewOptimizer(c)
		out, err := o.Outcome()
		assertCode(t, err, errcode.NotOptimizedError)

		path := filepath.Join(t.TempDir(), "layout.out")
		e := ioexport.New(cfg, path, "")
		assertCode(t, e.Export(ctx, out), errcode.NotOptimizedError)

		_, err = o.Optimize(ctx, strategy.Segmented, nil)
		require.NoError(t, err)
		out, err = o.Outcome()
		require.NoError(t, err)
		require.NoError(t, e.Export(ctx, out))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "6\n5\n", string(content))
	})
}
