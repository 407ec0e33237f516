package ioexport

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gndefrag/internal/iofs"
	"github.com/gnames/gndefrag/pkg/catalog"
	"github.com/gnames/gndefrag/pkg/optimize"
	"github.com/gnames/gnfmt"
	"gopkg.in/yaml.v3"
)

// Report formats.
const (
	Text = "text"
	JSON = "json"
	YAML = "yaml"
)

// Report is a summary of an optimization run.
type Report struct {
	Catalog catalog.Stats   `json:"catalog" yaml:"catalog"`
	Result  optimize.Result `json:"result"  yaml:"result"`

	// Placements are the first objects of the optimized layout.
	Placements []optimize.Placement `json:"placements" yaml:"placements"`
}

// NewReport creates a report with at most placementsNum placements.
// Negative placementsNum means all of them.
func NewReport(out *optimize.Outcome, placementsNum int) Report {
	ps := out.Placements()
	if placementsNum >= 0 && placementsNum < len(ps) {
		ps = ps[:placementsNum]
	}
	return Report{
		Catalog:    out.Catalog.Stats(),
		Result:     out.Result,
		Placements: ps,
	}
}

// WriteReport saves a report of the outcome to path in the given format.
func WriteReport(
	path, format string,
	out *optimize.Outcome,
	placementsNum int,
) error {
	if out == nil {
		return optimize.NotOptimizedError()
	}
	format = strings.ToLower(format)
	if !isKnownFormat(format) {
		return UnknownReportFormatError(format)
	}

	rep := NewReport(out, placementsNum)
	err := iofs.WriteAtomic(path, func(w io.Writer) error {
		return Encode(w, format, rep)
	})
	if err != nil {
		return WriteReportError(path, err)
	}

	slog.Info("Optimization report saved", "path", path, "format", format)
	return nil
}

// Encode writes the report to w in the given format.
func Encode(w io.Writer, format string, rep Report) error {
	switch strings.ToLower(format) {
	case Text:
		return encodeText(w, rep)
	case JSON:
		res, err := gnfmt.GNjson{Pretty: true}.Encode(rep)
		if err != nil {
			return err
		}
		res = append(res, '\n')
		_, err = w.Write(res)
		return err
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()
	default:
		return UnknownReportFormatError(format)
	}
}

func isKnownFormat(format string) bool {
	switch format {
	case Text, JSON, YAML:
		return true
	}
	return false
}

func encodeText(w io.Writer, rep Report) error {
	var sb strings.Builder
	st, res := rep.Catalog, rep.Result

	sb.WriteString("Storage layout optimization\n\n")
	line := func(k string, v any) {
		fmt.Fprintf(&sb, "%-24s%v\n", k+":", v)
	}
	line("Algorithm", res.Algorithm)
	line("Run ID", res.RunID)
	line("Catalog ID", res.CatalogID)
	line("Objects", humanize.Comma(int64(st.ObjectsNum)))
	line("Total size", humanize.CommafWithDigits(st.TotalSize, 2))
	line("Disk space", humanize.CommafWithDigits(st.DiskSpace, 2))
	line("Token count", humanize.Comma(int64(st.TokenCount)))
	if st.OverCommitted {
		line("Warning", "total size exceeds disk space")
	}
	sb.WriteString("\n")
	line("Fragmentation before", fmt.Sprintf("%.2f%%", res.BeforeFragmentation))
	line("Fragmentation after", fmt.Sprintf("%.2f%%", res.AfterFragmentation))
	line("Score before", fmt.Sprintf("%.2f", res.BeforeScore))
	line("Score after", fmt.Sprintf("%.2f", res.AfterScore))
	line("Improvement", fmt.Sprintf("%.2f%%", res.Improvement))
	line("Time", gnfmt.TimeString(res.TimeCost))

	if len(rep.Placements) > 0 {
		fmt.Fprintf(&sb, "\nFirst %d placements:\n", len(rep.Placements))
		fmt.Fprintf(&sb, "%8s %8s %10s %10s %10s\n",
			"new", "original", "id", "size", "frequency")
		for _, v := range rep.Placements {
			fmt.Fprintf(&sb, "%8d %8d %10d %10.2f %10.4f\n",
				v.NewPosition, v.OriginalPosition, v.ID,
				v.Size, v.AccessFrequency)
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
