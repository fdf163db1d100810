// Package main provides the CLI entry point for docx2excel.
package main

import (
	"fmt"
	"os"

	"github.com/inalma/officeconv/internal/logging"
	"github.com/inalma/officeconv/pkg/docx2excel"
	"github.com/spf13/cobra"
)

var (
	outputPath string
	noCombined bool
	verbose    bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "docx2excel <input.docx>",
		Short: "Extract tables, text and images from a Word document into Excel",
		Long: `docx2excel writes one sheet per table found in a .docx file, a combined
sheet when there are several tables, a sheet with the paragraph text and
a sheet listing the embedded pictures.`,
		Args:         cobra.ExactArgs(1),
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output .xlsx path (default: input name with .xlsx)")
	rootCmd.Flags().BoolVar(&noCombined, "no-combined", false, "Do not create the combined sheet")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log extraction details to stderr")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	opts := docx2excel.DefaultOptions()
	opts.IncludeCombined = !noCombined
	opts.Logger = logging.New(cmd.ErrOrStderr(), verbose)

	written, err := docx2excel.Convert(args[0], outputPath, opts)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), written)
	return nil
}
