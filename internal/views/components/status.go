package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"
)

// StatusBar displays the last action and the inventory size
type StatusBar struct {
	container   *fyne.Container
	status      binding.String
	statusLabel *widget.Label
	countLabel  *widget.Label
}

// NewStatusBar shows status, which may also be updated from outside the view
func NewStatusBar(status binding.String) *StatusBar {
	sb := &StatusBar{status: status}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabelWithData(sb.status)
	sb.countLabel = widget.NewLabel(formatCount(0, 0, false))
}

func (sb *StatusBar) buildLayout() {
	sb.container = container.NewHBox(
		sb.statusLabel,
		widget.NewSeparator(),
		sb.countLabel,
	)
}

// SetStatus updates the main status message
func (sb *StatusBar) SetStatus(status string) {
	_ = sb.status.Set(status)
}

func (sb *StatusBar) GetStatus() string {
	status, _ := sb.status.Get()
	return status
}

// SetCounts shows how many rows are visible out of the whole inventory
func (sb *StatusBar) SetCounts(visible, total int, filtered bool) {
	fyne.Do(func() {
		sb.countLabel.SetText(formatCount(visible, total, filtered))
	})
}

func (sb *StatusBar) GetCounts() string {
	return sb.countLabel.Text
}

func formatCount(visible, total int, filtered bool) string {
	if filtered {
		return fmt.Sprintf("Items: %d of %d", visible, total)
	}
	return fmt.Sprintf("Items: %d", total)
}

func (sb *StatusBar) Reset() {
	sb.SetStatus("Ready")
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
