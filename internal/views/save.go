package views

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// SaveView is the export screen: destination folder, file name, format and a
// red error label shown while the error flag is raised.
type SaveView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	directory     binding.String
	formatRadio   *widget.RadioGroup
	errorLabel    *widget.Label

	saveHandler         func()
	cancelHandler       func()
	formatChangeHandler func(string)
}

func NewSaveView(window fyne.Window, directory, filename binding.String, errorVisible binding.Bool, formats []string, selected string) *SaveView {
	view := &SaveView{
		window:    window,
		directory: directory,
	}

	dirLabel := widget.NewLabelWithData(directory)
	dirLabel.Truncation = fyne.TextTruncateEllipsis
	browse := widget.NewButtonWithIcon("Choose Folder", theme.FolderOpenIcon(), view.showFolderDialog)

	nameEntry := widget.NewEntryWithData(filename)
	nameEntry.SetPlaceHolder("File name without extension")

	view.formatRadio = widget.NewRadioGroup(formats, func(label string) {
		if view.formatChangeHandler != nil && label != "" {
			view.formatChangeHandler(label)
		}
	})
	view.formatRadio.Horizontal = true
	view.formatRadio.Required = true
	view.formatRadio.Selected = selected

	view.errorLabel = widget.NewLabel("")
	view.errorLabel.Importance = widget.DangerImportance
	view.errorLabel.Hide()
	errorVisible.AddListener(binding.NewDataListener(func() {
		visible, _ := errorVisible.Get()
		view.setErrorVisible(visible)
	}))

	save := widget.NewButtonWithIcon("Save", theme.DocumentSaveIcon(), func() {
		if view.saveHandler != nil {
			view.saveHandler()
		}
	})
	save.Importance = widget.HighImportance
	cancel := widget.NewButton("Cancel", func() {
		if view.cancelHandler != nil {
			view.cancelHandler()
		}
	})

	form := widget.NewForm(
		widget.NewFormItem("Directory", container.NewBorder(nil, nil, nil, browse, dirLabel)),
		widget.NewFormItem("File Name", nameEntry),
		widget.NewFormItem("Format", view.formatRadio),
	)

	view.mainContainer = container.NewVBox(
		form,
		view.errorLabel,
		container.NewHBox(save, cancel),
	)
	return view
}

func (sv *SaveView) showFolderDialog() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		_ = sv.directory.Set(uri.Path())
	}, sv.window)
}

func (sv *SaveView) setErrorVisible(visible bool) {
	fyne.Do(func() {
		if visible {
			sv.errorLabel.Show()
		} else {
			sv.errorLabel.Hide()
		}
	})
}

// SetErrorMessage sets the text of the error label
func (sv *SaveView) SetErrorMessage(message string) {
	fyne.Do(func() {
		sv.errorLabel.SetText(message)
	})
}

func (sv *SaveView) SetSaveHandler(handler func())               { sv.saveHandler = handler }
func (sv *SaveView) SetCancelHandler(handler func())             { sv.cancelHandler = handler }
func (sv *SaveView) SetFormatChangeHandler(handler func(string)) { sv.formatChangeHandler = handler }

func (sv *SaveView) ShowInfo(title, message string) {
	fyne.Do(func() {
		dialog.ShowInformation(title, message, sv.window)
	})
}

func (sv *SaveView) GetContainer() *fyne.Container {
	return sv.mainContainer
}
