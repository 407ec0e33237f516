package iocatalog

import (
	"bufio"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/gnames/gndefrag/pkg/catalog"
)

// maxLineSize is the longest catalog line ParseText accepts.
const maxLineSize = 1024 * 1024

// ParseText reads a catalog in the text format:
//
//	<disk_space> <token_count>
//	<id> <size> <access_frequency>
//	...
//
// The first non-empty line is the header. If it does not contain a
// valid disk space and token count, diskSpace and tokenCount are used.
// Object lines with less than three fields, with unparseable, negative
// or non-finite size or frequency, or longer than maxLineSize are
// skipped. A non-numeric id is replaced by the line number counted from
// the header.
func ParseText(
	r io.Reader,
	diskSpace float64,
	tokenCount int,
) (*catalog.Catalog, error) {
	var objs []catalog.Object
	var headerFound bool
	var lineNum int

	br := bufio.NewReader(r)
	for {
		raw, tooLong, err := readLine(br)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if tooLong {
			if headerFound {
				lineNum++
			}
			slog.Debug("Skipping overlong catalog line",
				"line", lineNum, "limit", maxLineSize)
			continue
		}

		line := strings.TrimSpace(string(raw))
		if !headerFound {
			if line == "" {
				continue
			}
			headerFound = true
			if ds, tc, ok := parseHeader(line); ok {
				diskSpace, tokenCount = ds, tc
			} else {
				slog.Debug("Catalog header is not recognized, using defaults",
					"header", line,
					"disk_space", diskSpace,
					"token_count", tokenCount,
				)
			}
			continue
		}

		lineNum++
		obj, ok := parseObject(line, lineNum)
		if !ok {
			if line != "" {
				slog.Debug("Skipping malformed catalog line",
					"line", lineNum, "text", line)
			}
			continue
		}
		objs = append(objs, obj)
	}

	return catalog.New(objs, diskSpace, tokenCount), nil
}

func parseHeader(line string) (float64, int, bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, 0, false
	}
	ds, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, 0, false
	}
	tc, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, false
	}
	return ds, tc, true
}

func parseObject(line string, lineNum int) (catalog.Object, bool) {
	var res catalog.Object
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return res, false
	}

	size, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return res, false
	}
	freq, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return res, false
	}

	if !validValues(size, freq) {
		return res, false
	}

	res.ID = parseID(fields[0], lineNum)
	res.Size = size
	res.AccessFrequency = freq
	return res, true
}

// readLine returns the next line without its line ending. Lines longer
// than maxLineSize are consumed but not returned, tooLong is set instead.
// A last line without a trailing newline is returned with nil error.
func readLine(br *bufio.Reader) (line []byte, tooLong bool, err error) {
	for {
		var chunk []byte
		var isPrefix bool
		chunk, isPrefix, err = br.ReadLine()
		if err != nil {
			if err == io.EOF && (len(line) > 0 || tooLong) {
				err = nil
			}
			return line, tooLong, err
		}
		if !tooLong {
			if len(line)+len(chunk) > maxLineSize {
				tooLong = true
				line = nil
			} else {
				line = append(line, chunk...)
			}
		}
		if !isPrefix {
			return line, tooLong, nil
		}
	}
}

// validValues rejects sizes and frequencies that would turn metrics
// into NaN or make them meaningless. Zero size and frequencies above 1
// are kept, scores are clamped later.
func validValues(size, freq float64) bool {
	for _, v := range []float64{size, freq} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return false
		}
	}
	return true
}

// parseID accepts only unsigned decimal ids.
func parseID(s string, fallback int) int {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return fallback
		}
	}
	id, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return id
}
