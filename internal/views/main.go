package views

import (
	"inventory-manager/internal/models"
	"inventory-manager/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// Column headers of the inventory table, in display order
var columnHeaders = []string{"Serial Number", "Name", "Cost"}

// RowSource supplies the rows shown by the inventory table
type RowSource interface {
	RowCount() int
	Row(row int) (models.Item, bool)
}

// MainView is the inventory table screen
type MainView struct {
	window        fyne.Window
	rows          RowSource
	mainContainer *fyne.Container
	table         *widget.Table
	searchBar     *components.SearchBar
	toolbar       *components.Toolbar
	statusBar     *components.StatusBar

	selectHandler   func(int)
	unselectHandler func()
}

// NewMainView creates the table screen. query backs the search entry and
// status the status bar message.
func NewMainView(window fyne.Window, rows RowSource, query, status binding.String) *MainView {
	view := &MainView{
		window: window,
		rows:   rows,
	}

	view.initializeComponents(query, status)
	view.buildLayout()
	return view
}

func (mv *MainView) initializeComponents(query, status binding.String) {
	mv.searchBar = components.NewSearchBar(query, models.SearchModes())
	mv.toolbar = components.NewToolbar()
	mv.statusBar = components.NewStatusBar(status)
	mv.table = mv.createTable()
}

func (mv *MainView) createTable() *widget.Table {
	table := widget.NewTable(
		func() (int, int) {
			return mv.rows.RowCount(), len(columnHeaders)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.TableCellID, cell fyne.CanvasObject) {
			item, ok := mv.rows.Row(id.Row)
			if !ok {
				cell.(*widget.Label).SetText("")
				return
			}
			cell.(*widget.Label).SetText(cellText(item, id.Col))
		},
	)

	table.ShowHeaderRow = true
	table.CreateHeader = func() fyne.CanvasObject {
		label := widget.NewLabel("")
		label.TextStyle = fyne.TextStyle{Bold: true}
		return label
	}
	table.UpdateHeader = func(id widget.TableCellID, cell fyne.CanvasObject) {
		if id.Col >= 0 && id.Col < len(columnHeaders) {
			cell.(*widget.Label).SetText(columnHeaders[id.Col])
		}
	}

	table.SetColumnWidth(0, 200)
	table.SetColumnWidth(1, 320)
	table.SetColumnWidth(2, 120)

	table.OnSelected = func(id widget.TableCellID) {
		if mv.selectHandler != nil {
			mv.selectHandler(id.Row)
		}
	}
	table.OnUnselected = func(widget.TableCellID) {
		if mv.unselectHandler != nil {
			mv.unselectHandler()
		}
	}
	return table
}

func cellText(item models.Item, col int) string {
	switch col {
	case 0:
		return item.SerialNumber
	case 1:
		return item.Name
	case 2:
		return item.Cost
	default:
		return ""
	}
}

func (mv *MainView) buildLayout() {
	top := container.NewVBox(
		mv.searchBar.GetContainer(),
		mv.toolbar.GetContainer(),
	)

	mv.mainContainer = container.NewBorder(
		top,
		mv.statusBar.GetContainer(),
		nil,
		nil,
		mv.table,
	)
}

// Event handler setters - called by controller

func (mv *MainView) SetSearchHandler(handler func()) { mv.searchBar.SetSearchHandler(handler) }
func (mv *MainView) SetResetHandler(handler func())  { mv.searchBar.SetResetHandler(handler) }
func (mv *MainView) SetModeChangeHandler(handler func(string)) {
	mv.searchBar.SetModeChangeHandler(handler)
}
func (mv *MainView) SetCreateHandler(handler func())    { mv.toolbar.SetCreateHandler(handler) }
func (mv *MainView) SetEditHandler(handler func())      { mv.toolbar.SetEditHandler(handler) }
func (mv *MainView) SetDeleteHandler(handler func())    { mv.toolbar.SetDeleteHandler(handler) }
func (mv *MainView) SetDeleteAllHandler(handler func()) { mv.toolbar.SetDeleteAllHandler(handler) }
func (mv *MainView) SetSaveHandler(handler func())      { mv.toolbar.SetSaveHandler(handler) }
func (mv *MainView) SetLoadHandler(handler func())      { mv.toolbar.SetLoadHandler(handler) }

// SetSelectHandler sets the handler receiving the selected row
func (mv *MainView) SetSelectHandler(handler func(int)) {
	mv.selectHandler = handler
}

func (mv *MainView) SetUnselectHandler(handler func()) {
	mv.unselectHandler = handler
}

// UI update methods - called by controller

// RefreshRows redraws the table from the row source
func (mv *MainView) RefreshRows() {
	fyne.Do(func() {
		mv.table.Refresh()
	})
}

// ClearSelection removes the highlighted cell
func (mv *MainView) ClearSelection() {
	fyne.Do(func() {
		mv.table.UnselectAll()
	})
}

// SetSelectionActive enables or disables the edit and delete actions
func (mv *MainView) SetSelectionActive(active bool) {
	mv.toolbar.SetSelectionActive(active)
}

func (mv *MainView) SetSearchMode(label string) {
	mv.searchBar.SetMode(label)
}

func (mv *MainView) UpdateStatus(status string) {
	mv.statusBar.SetStatus(status)
}

func (mv *MainView) UpdateCounts(visible, total int, filtered bool) {
	mv.statusBar.SetCounts(visible, total, filtered)
}

// ShowError displays an error dialog
func (mv *MainView) ShowError(err error) {
	fyne.Do(func() {
		dialog.ShowError(err, mv.window)
	})
}

// ShowConfirm displays a confirmation dialog
func (mv *MainView) ShowConfirm(title, message string, callback func(bool)) {
	fyne.Do(func() {
		dialog.ShowConfirm(title, message, callback, mv.window)
	})
}

// GetContainer returns the main container
func (mv *MainView) GetContainer() *fyne.Container {
	return mv.mainContainer
}

func (mv *MainView) GetToolbar() *components.Toolbar {
	return mv.toolbar
}

func (mv *MainView) GetStatusBar() *components.StatusBar {
	return mv.statusBar
}
