package views

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// LoadView lets the user pick a previously exported file to load
type LoadView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	path          binding.String
	extensions    []string
	errorLabel    *widget.Label

	loadHandler   func()
	cancelHandler func()
}

// NewLoadView builds the screen. extensions restricts the file dialog.
func NewLoadView(window fyne.Window, path binding.String, errorVisible binding.Bool, extensions []string) *LoadView {
	view := &LoadView{
		window:     window,
		path:       path,
		extensions: extensions,
	}

	pathLabel := widget.NewLabelWithData(path)
	pathLabel.Truncation = fyne.TextTruncateEllipsis
	browse := widget.NewButtonWithIcon("Choose File", theme.FileIcon(), view.showFileDialog)

	view.errorLabel = widget.NewLabel("")
	view.errorLabel.Importance = widget.DangerImportance
	view.errorLabel.Hide()
	errorVisible.AddListener(binding.NewDataListener(func() {
		visible, _ := errorVisible.Get()
		fyne.Do(func() {
			if visible {
				view.errorLabel.Show()
			} else {
				view.errorLabel.Hide()
			}
		})
	}))

	load := widget.NewButtonWithIcon("Load", theme.FolderOpenIcon(), func() {
		if view.loadHandler != nil {
			view.loadHandler()
		}
	})
	load.Importance = widget.HighImportance
	cancel := widget.NewButton("Cancel", func() {
		if view.cancelHandler != nil {
			view.cancelHandler()
		}
	})

	warning := widget.NewLabel("Loading replaces every item in the inventory.")

	view.mainContainer = container.NewVBox(
		widget.NewForm(widget.NewFormItem("File", container.NewBorder(nil, nil, nil, browse, pathLabel))),
		warning,
		view.errorLabel,
		container.NewHBox(load, cancel),
	)
	return view
}

func (lv *LoadView) showFileDialog() {
	open := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()
		_ = lv.path.Set(path)
	}, lv.window)
	if len(lv.extensions) > 0 {
		open.SetFilter(storage.NewExtensionFileFilter(lv.extensions))
	}
	open.Show()
}

func (lv *LoadView) SetErrorMessage(message string) {
	fyne.Do(func() {
		lv.errorLabel.SetText(message)
	})
}

func (lv *LoadView) SetLoadHandler(handler func())   { lv.loadHandler = handler }
func (lv *LoadView) SetCancelHandler(handler func()) { lv.cancelHandler = handler }

func (lv *LoadView) ShowInfo(title, message string) {
	fyne.Do(func() {
		dialog.ShowInformation(title, message, lv.window)
	})
}

func (lv *LoadView) GetContainer() *fyne.Container {
	return lv.mainContainer
}
