// Package usecase contains application business logic.
package usecase

import (
	"context"
	"sync"

	"github.com/bnema/ssnfield/internal/application/port"
	"github.com/bnema/ssnfield/internal/domain/ssn"
	"github.com/bnema/ssnfield/internal/logging"
)

// CaptureFieldUseCase observes an SSN field and keeps the submitted value.
// Values only ever reach the log in masked form.
type CaptureFieldUseCase struct {
	mu        sync.Mutex
	last      port.FieldEvent
	submitted bool
	changes   int
}

var _ port.FieldObserver = (*CaptureFieldUseCase)(nil)

// NewCaptureFieldUseCase creates a new CaptureFieldUseCase.
func NewCaptureFieldUseCase() *CaptureFieldUseCase {
	return &CaptureFieldUseCase{}
}

// OnChange records the latest field state.
func (uc *CaptureFieldUseCase) OnChange(ctx context.Context, ev port.FieldEvent) {
	uc.mu.Lock()
	uc.last = ev
	uc.changes++
	uc.mu.Unlock()

	logging.FromContext(ctx).Debug().
		Str("display", ssn.Format(ev.Value, true)).
		Int("caret", ev.Caret).
		Stringer("mode", ev.Mode).
		Msg("field changed")
}

// OnSubmit stores the final value.
func (uc *CaptureFieldUseCase) OnSubmit(ctx context.Context, ev port.FieldEvent) error {
	uc.mu.Lock()
	uc.last = ev
	uc.submitted = true
	changes := uc.changes
	uc.mu.Unlock()

	logging.FromContext(ctx).Info().
		Str("display", ssn.Format(ev.Value, true)).
		Bool("complete", len(ev.Value) == ssn.MaxDigits).
		Int("changes", changes).
		Msg("field submitted")
	return nil
}

// Result returns the last observed event and whether it was submitted.
func (uc *CaptureFieldUseCase) Result() (port.FieldEvent, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.last, uc.submitted
}

// Output renders a submitted value for printing. Raw digits are returned only
// when reveal is set; otherwise the display string follows the field's mode.
func (uc *CaptureFieldUseCase) Output(reveal bool) string {
	ev, _ := uc.Result()
	if reveal {
		return ev.Value
	}
	return ssn.Format(ev.Value, ev.Mode == ssn.Masked)
}
