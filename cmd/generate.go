/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>
*/
package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gndefrag/internal/iocatalog"
	"github.com/gnames/gnlib"
	"github.com/spf13/cobra"
)

// getGenerateCmd returns the generate command.
func getGenerateCmd() *cobra.Command {
	var objectsNum int

	generateCmd := &cobra.Command{
		Use:   "generate <output>",
		Short: "Generate a random test catalog",
		Long: `Create a text catalog with random objects. Sizes are uniformly
distributed between 0.1 and 10, access frequencies between 0.1 and 1.

Examples:
  gndefrag generate sample_test.in
  gndefrag generate -n 1000 -d 5000 --seed 7 large.in`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runGenerate(cmd, args[0], objectsNum)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	generateCmd.Flags().IntVarP(&objectsNum, "objects", "n", 100,
		"number of objects")
	generateCmd.Flags().Float64P("disk-space", "d", 0,
		"disk space written to the header (default from config)")
	generateCmd.Flags().IntP("token-count", "t", 0,
		"token count written to the header (default from config)")
	generateCmd.Flags().Uint64("seed", 0,
		"seed of random data, 0 means a random seed")

	return generateCmd
}

func runGenerate(cmd *cobra.Command, output string, objectsNum int) error {
	cfg.Update(flagOptions(cmd))

	if objectsNum < 0 {
		gn.Warn("Number of objects cannot be negative, using 0")
		objectsNum = 0
	}

	opt := cfg.Optimize
	err := iocatalog.Generate(
		output, objectsNum, opt.DiskSpace, opt.TokenCount,
		iocatalog.NewRand(opt.Seed),
	)
	if err != nil {
		return err
	}

	fmt.Println(gnlib.FormatMessage(
		"<em>Generated %s objects in %s</em>",
		[]any{humanize.Comma(int64(objectsNum)), output},
	))
	return nil
}
