package ioprogress_test

import (
	"bytes"
	"testing"

	"github.com/gnames/gndefrag/internal/ioprogress"
	"github.com/stretchr/testify/assert"
)

func TestBar(t *testing.T) {
	var buf bytes.Buffer
	bar := ioprogress.NewWithWriter(&buf, "greedy: ")
	progress := bar.Func()

	progress(12.4)
	assert.Equal(t, int64(12), bar.Current())

	progress(50.6)
	assert.Equal(t, int64(51), bar.Current())

	progress(20)
	assert.Equal(t, int64(51), bar.Current(), "bar never goes back")

	progress(150)
	assert.Equal(t, int64(100), bar.Current())

	bar.Finish()
}

func TestBarFinishTwice(t *testing.T) {
	var buf bytes.Buffer
	bar := ioprogress.NewWithWriter(&buf, "annealing: ")
	bar.Set(100)
	assert.NotPanics(t, bar.Finish)
}
