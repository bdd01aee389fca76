package cmd

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"

	"github.com/bnema/ssnfield/internal/application/usecase"
	"github.com/bnema/ssnfield/internal/cli/model"
	"github.com/bnema/ssnfield/internal/cli/styles"
	"github.com/bnema/ssnfield/internal/domain/ssn"
	"github.com/bnema/ssnfield/internal/logging"
)

var errInputCancelled = errors.New("input cancelled")

var (
	inputMasked       bool
	inputValue        string
	inputReveal       bool
	inputCaretMapping string
)

var inputCmd = &cobra.Command{
	Use:   "input",
	Short: "Run the interactive SSN field",
	Long: `Open the SSN field full-screen and print the value on enter.

The printed value follows the field's display mode: masked if the field was
masked when submitted. Use --reveal to print the raw digits instead.

Keys:
  ctrl+t   toggle visibility      ctrl+v   paste
  ctrl+y   copy digits            enter    done
  esc      cancel                 ?        help

Examples:
  ssnfield input
  ssnfield input --masked --value 123456789
  ssnfield input --reveal > ssn.txt`,
	Args: cobra.NoArgs,
	RunE: runInput,
}

func init() {
	rootCmd.AddCommand(inputCmd)
	inputCmd.Flags().BoolVarP(&inputMasked, "masked", "m", false, "start in masked mode (default from field.start_masked)")
	inputCmd.Flags().StringVar(&inputValue, "value", "", "initial digits")
	inputCmd.Flags().BoolVar(&inputReveal, "reveal", false, "print raw digits on submit")
	inputCmd.Flags().StringVar(&inputCaretMapping, "caret-mapping", "", "click mapping: truncating or exact (default from field.caret_mapping)")
}

func runInput(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	ctx := logging.WithCommand(app.Ctx(), "input")
	log := logging.FromContext(ctx)

	mapping := app.Mapping
	if inputCaretMapping != "" {
		m, err := ssn.ParseMapping(inputCaretMapping)
		if err != nil {
			return fmt.Errorf("--caret-mapping: %w", err)
		}
		mapping = m
	}

	masked := app.Config.Field.StartMasked
	if cmd.Flags().Changed("masked") {
		masked = inputMasked
	}

	zones := zone.New()
	defer zones.Close()

	capture := usecase.NewCaptureFieldUseCase()
	m := model.NewFieldModel(ctx, app.Theme, model.FieldModelConfig{
		Value:        inputValue,
		Masked:       masked,
		Mapping:      mapping,
		Clipboard:    app.Clipboard,
		Observer:     capture,
		QuitOnSubmit: true,
		Zones:        zones,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	app.WatchTheme(func(t *styles.Theme) {
		p.Send(model.ThemeChangedMsg{Theme: t})
	})

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("run model: %w", err)
	}

	fm, ok := finalModel.(model.FieldModel)
	if !ok {
		return fmt.Errorf("unexpected model type")
	}
	if !fm.Submitted() {
		log.Debug().Msg("input cancelled")
		return errInputCancelled
	}

	fmt.Fprintln(cmd.OutOrStdout(), capture.Output(inputReveal))
	return nil
}
