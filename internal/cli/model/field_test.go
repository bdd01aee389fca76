package model

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/ssnfield/internal/application/port"
	mock_port "github.com/bnema/ssnfield/internal/application/port/mocks"
	"github.com/bnema/ssnfield/internal/cli/styles"
	"github.com/bnema/ssnfield/internal/domain/ssn"
	"github.com/bnema/ssnfield/internal/infrastructure/config"
)

func newTestField(t *testing.T, cfg FieldModelConfig) FieldModel {
	t.Helper()
	if cfg.Zones == nil {
		cfg.Zones = zone.New()
		t.Cleanup(cfg.Zones.Close)
	}
	theme := styles.NewTheme(config.DefaultConfig())
	return NewFieldModel(context.Background(), theme, cfg)
}

func send(t *testing.T, m FieldModel, msg tea.Msg) (FieldModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	fm, ok := next.(FieldModel)
	require.True(t, ok)
	return fm, cmd
}

func typeText(t *testing.T, m FieldModel, text string) FieldModel {
	t.Helper()
	for _, r := range text {
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

// zoneOrigin renders m and waits for the zone manager to record name.
func zoneOrigin(t *testing.T, m FieldModel, name string) (int, int) {
	t.Helper()
	_ = m.View()

	id := m.zoneID(name)
	require.Eventually(t, func() bool {
		z := m.zones.Get(id)
		return z != nil && !z.IsZero()
	}, time.Second, 5*time.Millisecond)

	z := m.zones.Get(id)
	return z.StartX, z.StartY
}

func leftClick(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func keyOf(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func TestFieldModel_TypingFillsSlots(t *testing.T) {
	m := newTestField(t, FieldModelConfig{})

	m = typeText(t, m, "1234")
	assert.Equal(t, "1234", m.Value())
	assert.Equal(t, "123 - 4X - XXXX", m.Display())
	assert.Equal(t, 4, m.Caret())
	assert.Equal(t, 7, m.DisplayCaret())

	m = typeText(t, m, "a-5 6")
	assert.Equal(t, "123456", m.Value(), "non-digits are dropped")
}

func TestFieldModel_OverflowRejected(t *testing.T) {
	m := newTestField(t, FieldModelConfig{Value: "123456789"})

	m = typeText(t, m, "0")
	assert.Equal(t, "123456789", m.Value())
	assert.Equal(t, 9, m.Caret())
}

func TestFieldModel_BackspaceAndDelete(t *testing.T) {
	m := newTestField(t, FieldModelConfig{Value: "12345"})

	m, _ = send(t, m, keyOf(tea.KeyBackspace))
	assert.Equal(t, "1234", m.Value())

	m, _ = send(t, m, keyOf(tea.KeyHome))
	m, _ = send(t, m, keyOf(tea.KeyDelete))
	assert.Equal(t, "234", m.Value())
	assert.Equal(t, 0, m.Caret())

	m, _ = send(t, m, keyOf(tea.KeyBackspace))
	assert.Equal(t, "234", m.Value(), "backspace at start is a no-op")
}

func TestFieldModel_ToggleMasksAndRestores(t *testing.T) {
	m := newTestField(t, FieldModelConfig{Value: "123456789"})
	before := m.Display()

	m, _ = send(t, m, keyOf(tea.KeyCtrlT))
	assert.Equal(t, ssn.Masked, m.Mode())
	assert.Equal(t, "••• - •• - ••••", m.Display())
	assert.Equal(t, "123456789", m.Value(), "masking never changes the value")

	m, _ = send(t, m, keyOf(tea.KeyCtrlT))
	assert.Equal(t, ssn.Visible, m.Mode())
	assert.Equal(t, before, m.Display())
}

func TestFieldModel_StartMasked(t *testing.T) {
	m := newTestField(t, FieldModelConfig{Value: "12", Masked: true})
	assert.Equal(t, "••X - XX - XXXX", m.Display())
}

func TestFieldModel_ObserverNotifiedOnAcceptedEdits(t *testing.T) {
	ctrl := gomock.NewController(t)
	obs := mock_port.NewMockFieldObserver(ctrl)

	gomock.InOrder(
		obs.EXPECT().OnChange(gomock.Any(), port.FieldEvent{Value: "1", Caret: 1, Mode: ssn.Visible}),
		obs.EXPECT().OnChange(gomock.Any(), port.FieldEvent{Value: "12", Caret: 2, Mode: ssn.Visible}),
		obs.EXPECT().OnChange(gomock.Any(), port.FieldEvent{Value: "12", Caret: 2, Mode: ssn.Masked}),
	)

	m := newTestField(t, FieldModelConfig{Observer: obs})
	m = typeText(t, m, "1x2")
	_, _ = send(t, m, keyOf(tea.KeyCtrlT))
}

func TestFieldModel_SubmitQuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	obs := mock_port.NewMockFieldObserver(ctrl)
	obs.EXPECT().
		OnSubmit(gomock.Any(), port.FieldEvent{Value: "123456789", Caret: 9, Mode: ssn.Visible}).
		Return(nil)

	m := newTestField(t, FieldModelConfig{Value: "123456789", Observer: obs, QuitOnSubmit: true})
	m, cmd := send(t, m, keyOf(tea.KeyEnter))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.Submitted())
	assert.False(t, m.Cancelled())
}

func TestFieldModel_SubmitEmitsMessage(t *testing.T) {
	m := newTestField(t, FieldModelConfig{Value: "123"})
	m, cmd := send(t, m, keyOf(tea.KeyEnter))

	require.NotNil(t, cmd)
	msg, ok := cmd().(SubmittedMsg)
	require.True(t, ok)
	assert.Equal(t, "123", msg.Event.Value)
	assert.True(t, m.Submitted())
}

func TestFieldModel_SubmitRejectedByObserver(t *testing.T) {
	ctrl := gomock.NewController(t)
	obs := mock_port.NewMockFieldObserver(ctrl)
	obs.EXPECT().OnSubmit(gomock.Any(), gomock.Any()).Return(errors.New("incomplete"))

	m := newTestField(t, FieldModelConfig{Value: "12", Observer: obs, QuitOnSubmit: true})
	m, cmd := send(t, m, keyOf(tea.KeyEnter))

	assert.Nil(t, cmd)
	assert.False(t, m.Submitted())
	require.Error(t, m.Err())
	assert.Contains(t, ansi.Strip(m.View()), "incomplete")
}

func TestFieldModel_EscCancels(t *testing.T) {
	m := newTestField(t, FieldModelConfig{Value: "12"})
	m, cmd := send(t, m, keyOf(tea.KeyEsc))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.Cancelled())
}

func TestFieldModel_PasteFromClipboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	cb := mock_port.NewMockClipboard(ctrl)
	cb.EXPECT().ReadText(gomock.Any()).Return("987-65-4321", nil)

	m := newTestField(t, FieldModelConfig{Clipboard: cb})
	m, cmd := send(t, m, keyOf(tea.KeyCtrlV))
	require.NotNil(t, cmd)

	m, _ = send(t, m, cmd())
	assert.Equal(t, "987654321", m.Value())
	assert.Equal(t, 9, m.Caret())
}

func TestFieldModel_PasteOverflowRejected(t *testing.T) {
	m := newTestField(t, FieldModelConfig{Value: "12345678"})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1234567890"), Paste: true})
	assert.Equal(t, "12345678", m.Value())
}

func TestFieldModel_CopyWritesRawDigits(t *testing.T) {
	ctrl := gomock.NewController(t)
	cb := mock_port.NewMockClipboard(ctrl)
	cb.EXPECT().WriteText(gomock.Any(), "123456789").Return(nil)

	m := newTestField(t, FieldModelConfig{Value: "123456789", Masked: true, Clipboard: cb})
	m, cmd := send(t, m, keyOf(tea.KeyCtrlY))
	require.NotNil(t, cmd)

	m, _ = send(t, m, cmd())
	assert.NoError(t, m.Err())
	assert.Contains(t, ansi.Strip(m.View()), "copied")
}

func TestFieldModel_ClickMovesCaret(t *testing.T) {
	m := newTestField(t, FieldModelConfig{Value: "123456789"})
	x, y := zoneOrigin(t, m, zoneText)

	tests := []struct {
		col   int
		caret int
	}{
		{col: 0, caret: 0},
		{col: 2, caret: 1},
		{col: 7, caret: 2},
		{col: 12, caret: 4},
		{col: 15, caret: 4},
	}

	for _, tt := range tests {
		m, _ = send(t, m, leftClick(x+tt.col, y))
		assert.Equal(t, tt.caret, m.Caret(), "col %d", tt.col)
	}
}

func TestFieldModel_ClickClampsToValueLength(t *testing.T) {
	m := newTestField(t, FieldModelConfig{Value: "12"})
	x, y := zoneOrigin(t, m, zoneText)

	m, _ = send(t, m, leftClick(x+14, y))
	assert.Equal(t, 2, m.Caret())
}

func TestFieldModel_ClickOtherRowIgnored(t *testing.T) {
	m := newTestField(t, FieldModelConfig{Value: "123456789"})
	x, y := zoneOrigin(t, m, zoneText)

	m, _ = send(t, m, leftClick(x, y+1))
	assert.Equal(t, 9, m.Caret())
}

func TestFieldModel_ClickToggleLabel(t *testing.T) {
	m := newTestField(t, FieldModelConfig{Value: "123"})
	x, y := zoneOrigin(t, m, zoneToggle)

	m, _ = send(t, m, leftClick(x+1, y))
	assert.Equal(t, ssn.Masked, m.Mode())
	assert.Equal(t, 3, m.Caret(), "toggling keeps the caret")
}

func TestFieldModel_ExactMappingClick(t *testing.T) {
	m := newTestField(t, FieldModelConfig{Value: "123456789", Mapping: ssn.ExactMapping{}})
	x, y := zoneOrigin(t, m, zoneText)

	m, _ = send(t, m, leftClick(x+7, y))
	assert.Equal(t, 4, m.Caret())
	assert.Equal(t, 7, m.DisplayCaret())
}

func TestFieldModel_ViewShowsDisplayAndToggle(t *testing.T) {
	m := newTestField(t, FieldModelConfig{Value: "123456789"})
	view := ansi.Strip(m.View())
	assert.Contains(t, view, "123 - 45 - 6789")
	assert.Contains(t, view, toggleHideText)

	m, _ = send(t, m, keyOf(tea.KeyCtrlT))
	view = ansi.Strip(m.View())
	assert.Contains(t, view, "••• - •• - ••••")
	assert.NotContains(t, view, "6789")
	assert.Contains(t, view, toggleShowText)
}

func TestColumnToOffset(t *testing.T) {
	tests := []struct {
		name string
		s    string
		col  int
		want int
	}{
		{"negative", "123 - 45 - 6789", -3, 0},
		{"start", "123 - 45 - 6789", 0, 0},
		{"middle", "123 - 45 - 6789", 7, 7},
		{"past end", "123 - 45 - 6789", 40, 15},
		{"mask bullets", "••• - •• - ••••", 4, 4},
		{"wide runes", "世界", 3, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, columnToOffset(tt.s, tt.col))
		})
	}
}
