package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/ssnfield/internal/application/usecase"
	"github.com/bnema/ssnfield/internal/cli/styles"
	"github.com/bnema/ssnfield/internal/domain/ssn"
	"github.com/bnema/ssnfield/internal/logging"
)

var (
	formatMasked       bool
	formatCaret        int
	formatPlain        bool
	formatCaretMapping string
)

var formatCmd = &cobra.Command{
	Use:   "format DIGITS...",
	Short: "Render values through the field without a terminal UI",
	Long: `Apply each argument as a proposed value, in order, and print the result.

A proposal with more than nine digits is rejected and the previous value is
kept, exactly as the interactive field does. Non-digits are ignored.

Examples:
  ssnfield format 123456789
  ssnfield format 1234 --caret 2
  ssnfield format 12345678 1234567890   # second edit is rejected
  ssnfield format 123456789 --masked --plain`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFormat,
}

func init() {
	rootCmd.AddCommand(formatCmd)
	formatCmd.Flags().BoolVarP(&formatMasked, "masked", "m", false, "render in masked mode")
	formatCmd.Flags().IntVar(&formatCaret, "caret", -1, "raw caret position (default end of value)")
	formatCmd.Flags().BoolVarP(&formatPlain, "plain", "p", false, "print the display string only")
	formatCmd.Flags().StringVar(&formatCaretMapping, "caret-mapping", "", "truncating or exact (default from field.caret_mapping)")
}

func runFormat(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := logging.WithCommand(app.Ctx(), "format")

	uc := app.FormatUC
	if formatCaretMapping != "" {
		mapping, err := ssn.ParseMapping(formatCaretMapping)
		if err != nil {
			return fmt.Errorf("--caret-mapping: %w", err)
		}
		uc = usecase.NewFormatFieldUseCase(mapping)
	}

	out := uc.Execute(ctx, usecase.FormatFieldInput{
		Edits:  args,
		Masked: formatMasked,
		Caret:  formatCaret,
	})

	w := cmd.OutOrStdout()
	if formatPlain {
		fmt.Fprintln(w, out.Display)
		return nil
	}

	fmt.Fprint(w, styles.NewFormatRenderer(app.Theme).Render(styles.FieldReport{
		Value:        out.Value,
		Display:      out.Display,
		Decorated:    out.Decorated,
		Caret:        out.Caret,
		DisplayCaret: out.DisplayCaret,
		Rejected:     out.Rejected,
	}))
	return nil
}
