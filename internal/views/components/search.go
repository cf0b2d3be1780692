package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// SearchBar is the query entry with its field selector and search/reset buttons
type SearchBar struct {
	container    *fyne.Container
	entry        *widget.Entry
	modeRadio    *widget.RadioGroup
	searchButton *widget.Button
	resetButton  *widget.Button

	searchHandler     func()
	resetHandler      func()
	modeChangeHandler func(string)
}

// NewSearchBar binds the entry to query. modes are the radio labels; the
// first one starts selected.
func NewSearchBar(query binding.String, modes []string) *SearchBar {
	sb := &SearchBar{}

	sb.entry = widget.NewEntryWithData(query)
	sb.entry.SetPlaceHolder("Search...")
	sb.entry.OnSubmitted = func(string) { call(sb.searchHandler) }

	sb.modeRadio = widget.NewRadioGroup(modes, func(selected string) {
		if sb.modeChangeHandler != nil && selected != "" {
			sb.modeChangeHandler(selected)
		}
	})
	sb.modeRadio.Horizontal = true
	sb.modeRadio.Required = true
	if len(modes) > 0 {
		sb.modeRadio.Selected = modes[0]
	}

	sb.searchButton = widget.NewButtonWithIcon("Search", theme.SearchIcon(), func() { call(sb.searchHandler) })
	sb.resetButton = widget.NewButtonWithIcon("Reset", theme.ViewRefreshIcon(), func() { call(sb.resetHandler) })

	sb.container = container.NewBorder(
		nil, nil,
		sb.modeRadio,
		container.NewHBox(sb.searchButton, sb.resetButton),
		sb.entry,
	)
	return sb
}

func (sb *SearchBar) SetSearchHandler(handler func())           { sb.searchHandler = handler }
func (sb *SearchBar) SetResetHandler(handler func())            { sb.resetHandler = handler }
func (sb *SearchBar) SetModeChangeHandler(handler func(string)) { sb.modeChangeHandler = handler }

// SetMode selects a radio label without firing the change handler
func (sb *SearchBar) SetMode(label string) {
	fyne.Do(func() {
		sb.modeRadio.Selected = label
		sb.modeRadio.Refresh()
	})
}

func (sb *SearchBar) GetContainer() *fyne.Container {
	return sb.container
}
