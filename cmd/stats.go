/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gndefrag/internal/iocatalog"
	"github.com/gnames/gndefrag/internal/ioexport"
	"github.com/gnames/gndefrag/pkg/catalog"
	"github.com/gnames/gnfmt"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// getStatsCmd returns the stats command.
func getStatsCmd() *cobra.Command {
	statsCmd := &cobra.Command{
		Use:   "stats <input>",
		Short: "Show statistics of a catalog",
		Long: `Read a catalog and show the number of objects, their total and
average size, average access frequency, disk space and token count.

Examples:
  gndefrag stats data.in
  gndefrag stats -f json storage.db`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runStats(cmd, args[0])
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	statsCmd.Flags().StringP("format", "f", "",
		"output format: text, json or yaml")
	catalogFlags(statsCmd)

	return statsCmd
}

func runStats(cmd *cobra.Command, input string) error {
	cfg.Update(flagOptions(cmd))

	cat, err := iocatalog.New(cfg, input).Load(context.Background())
	if err != nil {
		return err
	}

	return encodeStats(os.Stdout, cfg.Report.Format, cat.Stats())
}

func encodeStats(w io.Writer, format string, st catalog.Stats) error {
	switch strings.ToLower(format) {
	case ioexport.JSON:
		res, err := gnfmt.GNjson{Pretty: true}.Encode(st)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(res))
		return err
	case ioexport.YAML:
		res, err := yaml.Marshal(st)
		if err != nil {
			return err
		}
		_, err = w.Write(res)
		return err
	default:
		_, err := io.WriteString(w, statsText(st))
		return err
	}
}

func printStats(st catalog.Stats) {
	fmt.Print(statsText(st))
}

func statsText(st catalog.Stats) string {
	var sb strings.Builder
	sb.WriteString("\nCatalog statistics:\n")
	fmt.Fprintf(&sb, "- Objects:       %s\n", humanize.Comma(int64(st.ObjectsNum)))
	fmt.Fprintf(&sb, "- Total size:    %.2f\n", st.TotalSize)
	fmt.Fprintf(&sb, "- Average size:  %.2f\n", st.AvgSize)
	fmt.Fprintf(&sb, "- Average freq:  %.4f\n", st.AvgFrequency)
	fmt.Fprintf(&sb, "- Disk space:    %g\n", st.DiskSpace)
	fmt.Fprintf(&sb, "- Token count:   %d\n", st.TokenCount)
	if st.OverCommitted {
		sb.WriteString("- Warning:       total size exceeds disk space\n")
	}
	sb.WriteString("\n")
	return sb.String()
}
