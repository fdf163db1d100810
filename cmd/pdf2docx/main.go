// Package main provides the CLI entry point for pdf2docx.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/inalma/officeconv/internal/logging"
	"github.com/inalma/officeconv/pkg/pdf2docx"
	"github.com/inalma/officeconv/pkg/pdf2docx/ocr"
	"github.com/spf13/cobra"
)

const usageLine = "usage: pdf2docx <input.pdf> <output.docx>"

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var errUsage = errors.New(usageLine)

var (
	lang       string
	dpi        int
	minChars   int
	keepOCRPDF string
	verbose    bool
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command and maps its outcome to an exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errUsage):
		fmt.Fprintln(stderr, usageLine)
		return exitUsage
	default:
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}
}

func newRootCmd() *cobra.Command {
	// Arguments after the output path are ignored.
	rootCmd := &cobra.Command{
		Use:   "pdf2docx <input.pdf> <output.docx>",
		Short: "Convert a PDF to a Word document, running OCR on scanned files",
		Long: `pdf2docx checks whether a PDF carries a usable text layer. When it does
not, the pages are recognized with Tesseract (build with -tags ocr) before
the document is converted to .docx.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errUsage
			}
			return nil
		},
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().StringVar(&lang, "lang", "spa+eng", "OCR languages, joined with +")
	rootCmd.Flags().IntVar(&dpi, "dpi", 300, "Resolution hint for OCR")
	rootCmd.Flags().IntVar(&minChars, "min-chars", ocr.DefaultMinChars, "Letters and numbers below which OCR runs")
	rootCmd.Flags().StringVar(&keepOCRPDF, "keep-ocr-pdf", "", "Save the searchable PDF produced by OCR to this path")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log conversion details to stderr")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	opts := pdf2docx.DefaultOptions()
	opts.Languages = ocr.ParseLanguages(lang)
	opts.DPI = dpi
	opts.MinChars = minChars
	opts.KeepOCRPDF = keepOCRPDF
	opts.Logger = logging.New(cmd.ErrOrStderr(), verbose)

	if err := pdf2docx.Convert(cmd.Context(), args[0], args[1], opts); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "OK")
	return nil
}
