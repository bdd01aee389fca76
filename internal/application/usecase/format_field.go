package usecase

import (
	"context"
	"strings"

	"github.com/bnema/ssnfield/internal/domain/ssn"
	"github.com/bnema/ssnfield/internal/logging"
)

// FormatFieldInput holds the parameters for a non-interactive render.
type FormatFieldInput struct {
	// Edits are applied in order, each proposed as the whole new value.
	Edits  []string
	Masked bool
	// Caret is a raw caret position; negative means end of value.
	Caret int
}

// FormatFieldOutput is the rendered field state.
type FormatFieldOutput struct {
	Value        string
	Display      string
	Decorated    string
	Caret        int
	DisplayCaret int
	Rejected     []string
}

// FormatFieldUseCase renders values through the same gate the field uses.
type FormatFieldUseCase struct {
	mapping ssn.OffsetMapping
}

// NewFormatFieldUseCase creates a new FormatFieldUseCase.
func NewFormatFieldUseCase(mapping ssn.OffsetMapping) *FormatFieldUseCase {
	if mapping == nil {
		mapping = ssn.TruncatingMapping{}
	}
	return &FormatFieldUseCase{mapping: mapping}
}

// Execute applies the edits and reports the resulting display and caret.
func (uc *FormatFieldUseCase) Execute(ctx context.Context, input FormatFieldInput) *FormatFieldOutput {
	log := logging.FromContext(ctx)

	out := &FormatFieldOutput{}
	value := ""
	for _, edit := range input.Edits {
		proposed := ssn.Digits(edit)
		next := ssn.ApplyEdit(value, proposed)
		if next != proposed {
			out.Rejected = append(out.Rejected, strings.TrimSpace(edit))
			log.Debug().Int("digits", len(proposed)).Msg("edit rejected")
			continue
		}
		value = next
	}

	mode := ssn.Visible
	if input.Masked {
		mode = ssn.Masked
	}
	buf := ssn.NewBuffer(value, mode)
	if input.Caret >= 0 {
		buf.SetCaret(input.Caret)
	}

	out.Value = buf.Value()
	out.Display = buf.Display()
	out.Decorated = ssn.Decorate(buf.Value())
	if input.Masked {
		out.Decorated = ssn.ToMasked(out.Decorated)
	}
	out.Caret = buf.Caret()
	out.DisplayCaret = buf.DisplayCaret(uc.mapping)
	return out
}
