package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Toolbar holds the inventory action buttons of the main screen
type Toolbar struct {
	container       *fyne.Container
	createButton    *widget.Button
	editButton      *widget.Button
	deleteButton    *widget.Button
	deleteAllButton *widget.Button
	saveButton      *widget.Button
	loadButton      *widget.Button

	createHandler    func()
	editHandler      func()
	deleteHandler    func()
	deleteAllHandler func()
	saveHandler      func()
	loadHandler      func()
}

func NewToolbar() *Toolbar {
	t := &Toolbar{}
	t.createComponents()
	t.buildLayout()
	return t
}

func (t *Toolbar) createComponents() {
	t.createButton = widget.NewButtonWithIcon("Create", theme.ContentAddIcon(), func() { call(t.createHandler) })
	t.createButton.Importance = widget.HighImportance

	t.editButton = widget.NewButtonWithIcon("Edit", theme.DocumentCreateIcon(), func() { call(t.editHandler) })
	t.editButton.Disable()

	t.deleteButton = widget.NewButtonWithIcon("Delete", theme.DeleteIcon(), func() { call(t.deleteHandler) })
	t.deleteButton.Disable()

	t.deleteAllButton = widget.NewButton("Delete All", func() { call(t.deleteAllHandler) })
	t.deleteAllButton.Importance = widget.DangerImportance

	t.saveButton = widget.NewButtonWithIcon("Save", theme.DocumentSaveIcon(), func() { call(t.saveHandler) })
	t.loadButton = widget.NewButtonWithIcon("Load", theme.FolderOpenIcon(), func() { call(t.loadHandler) })
}

func (t *Toolbar) buildLayout() {
	t.container = container.NewHBox(
		t.createButton,
		t.editButton,
		t.deleteButton,
		t.deleteAllButton,
		widget.NewSeparator(),
		t.saveButton,
		t.loadButton,
	)
}

func call(handler func()) {
	if handler != nil {
		handler()
	}
}

func (t *Toolbar) SetCreateHandler(handler func())    { t.createHandler = handler }
func (t *Toolbar) SetEditHandler(handler func())      { t.editHandler = handler }
func (t *Toolbar) SetDeleteHandler(handler func())    { t.deleteHandler = handler }
func (t *Toolbar) SetDeleteAllHandler(handler func()) { t.deleteAllHandler = handler }
func (t *Toolbar) SetSaveHandler(handler func())      { t.saveHandler = handler }
func (t *Toolbar) SetLoadHandler(handler func())      { t.loadHandler = handler }

// SetSelectionActive enables the buttons that act on the selected row
func (t *Toolbar) SetSelectionActive(active bool) {
	fyne.Do(func() {
		if active {
			t.editButton.Enable()
			t.deleteButton.Enable()
		} else {
			t.editButton.Disable()
			t.deleteButton.Disable()
		}
	})
}

// SelectionActive reports whether edit and delete are enabled
func (t *Toolbar) SelectionActive() bool {
	return !t.editButton.Disabled()
}

func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}
