package port

import (
	"context"

	"github.com/bnema/ssnfield/internal/domain/ssn"
)

//go:generate mockgen -source=field.go -destination=mocks/mock_field.go -package=mock_port

// FieldEvent is a snapshot of the field after an accepted edit or a toggle.
type FieldEvent struct {
	Value string
	Caret int
	Mode  ssn.DisplayMode
}

// FieldObserver receives field events from the host.
// Calls happen on the UI loop, one event at a time.
type FieldObserver interface {
	// OnChange is called after every accepted edit or mode toggle.
	OnChange(ctx context.Context, ev FieldEvent)

	// OnSubmit is called for the "done" action.
	OnSubmit(ctx context.Context, ev FieldEvent) error
}
