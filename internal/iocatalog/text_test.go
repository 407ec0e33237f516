package iocatalog_test

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/gnames/gndefrag/internal/iocatalog"
	"github.com/gnames/gndefrag/pkg/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseText(t *testing.T) {
	tests := []struct {
		msg        string
		input      string
		diskSpace  float64
		tokenCount int
		objs       []catalog.Object
	}{
		{
			msg:        "header and objects",
			input:      "1000 100\n1 2.5 0.9\n2 7.5 0.1\n3 5.0 0.5\n",
			diskSpace:  1000,
			tokenCount: 100,
			objs: []catalog.Object{
				{ID: 1, Size: 2.5, AccessFrequency: 0.9, OriginalPosition: 1},
				{ID: 2, Size: 7.5, AccessFrequency: 0.1, OriginalPosition: 2},
				{ID: 3, Size: 5, AccessFrequency: 0.5, OriginalPosition: 3},
			},
		},
		{
			msg:        "leading empty lines",
			input:      "\n\n  500 7\n10 1 1\n",
			diskSpace:  500,
			tokenCount: 7,
			objs: []catalog.Object{
				{ID: 10, Size: 1, AccessFrequency: 1, OriginalPosition: 1},
			},
		},
		{
			msg:        "bad header keeps defaults and is not an object",
			input:      "1 2.5 x\n5 1.0 0.3\n",
			diskSpace:  42,
			tokenCount: 3,
			objs: []catalog.Object{
				{ID: 5, Size: 1, AccessFrequency: 0.3, OriginalPosition: 1},
			},
		},
		{
			msg:        "malformed rows are skipped",
			input:      "1000 100\n1 2\n\n2 abc 0.5\n3 1.5 xyz\n4 1.5 0.25\n",
			diskSpace:  1000,
			tokenCount: 100,
			objs: []catalog.Object{
				{ID: 4, Size: 1.5, AccessFrequency: 0.25, OriginalPosition: 1},
			},
		},
		{
			msg:        "non-numeric id is replaced by line number",
			input:      "1000 100\nobjA 1 0.5\n-7 2 0.5\n8 3 0.5 extra\n",
			diskSpace:  1000,
			tokenCount: 100,
			objs: []catalog.Object{
				{ID: 1, Size: 1, AccessFrequency: 0.5, OriginalPosition: 1},
				{ID: 2, Size: 2, AccessFrequency: 0.5, OriginalPosition: 2},
				{ID: 8, Size: 3, AccessFrequency: 0.5, OriginalPosition: 3},
			},
		},
		{
			msg:        "non-finite and negative values are skipped",
			input:      "100 10\n1 NaN 0.5\n2 3 Inf\n3 2 0.4\n4 -1 0.2\n5 1 -0.1\n6 0 1.5\n",
			diskSpace:  100,
			tokenCount: 10,
			objs: []catalog.Object{
				{ID: 3, Size: 2, AccessFrequency: 0.4, OriginalPosition: 1},
				{ID: 6, Size: 0, AccessFrequency: 1.5, OriginalPosition: 2},
			},
		},
		{
			msg: "overlong line is skipped",
			input: "100 10\n1 2 0.5\n" + strings.Repeat("x", 2*1024*1024) +
				"\nobj 2 0.4\n",
			diskSpace:  100,
			tokenCount: 10,
			objs: []catalog.Object{
				{ID: 1, Size: 2, AccessFrequency: 0.5, OriginalPosition: 1},
				{ID: 3, Size: 2, AccessFrequency: 0.4, OriginalPosition: 2},
			},
		},
		{
			msg:        "overlong line before header",
			input:      strings.Repeat("9", 2*1024*1024) + "\n100 10\n1 2 0.5",
			diskSpace:  100,
			tokenCount: 10,
			objs: []catalog.Object{
				{ID: 1, Size: 2, AccessFrequency: 0.5, OriginalPosition: 1},
			},
		},
		{
			msg:        "header only",
			input:      "2000 50\n",
			diskSpace:  2000,
			tokenCount: 50,
		},
		{
			msg:        "empty input",
			input:      "",
			diskSpace:  42,
			tokenCount: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			c, err := iocatalog.ParseText(strings.NewReader(tt.input), 42, 3)
			require.NoError(t, err)
			assert.Equal(t, tt.diskSpace, c.DiskSpace())
			assert.Equal(t, tt.tokenCount, c.TokenCount())
			assert.Equal(t, len(tt.objs), c.Len())
			if len(tt.objs) > 0 {
				assert.Equal(t, tt.objs, c.Objects())
			}
		})
	}
}

func TestParseTextReadError(t *testing.T) {
	r := io.MultiReader(
		strings.NewReader("100 10\n1 2 0.5\n"),
		iotest.ErrReader(errors.New("disk failure")),
	)
	_, err := iocatalog.ParseText(r, 42, 3)
	assert.ErrorContains(t, err, "disk failure")
}
