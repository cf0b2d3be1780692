package views

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"
)

// ItemFields are the bindings edited by the item form
type ItemFields struct {
	Serial binding.String
	Name   binding.String
	Cost   binding.String
}

// ItemView is the create/edit form
type ItemView struct {
	mainContainer *fyne.Container
	form          *widget.Form
	errorLabel    *widget.Label

	submitHandler func()
	cancelHandler func()
}

func NewItemView(title string, fields ItemFields) *ItemView {
	view := &ItemView{}

	serial := widget.NewEntryWithData(fields.Serial)
	serial.SetPlaceHolder("Serial number")
	name := widget.NewEntryWithData(fields.Name)
	name.SetPlaceHolder("Name")
	cost := widget.NewEntryWithData(fields.Cost)
	cost.SetPlaceHolder("Cost")

	view.form = &widget.Form{
		Items: []*widget.FormItem{
			widget.NewFormItem("Serial Number", serial),
			widget.NewFormItem("Name", name),
			widget.NewFormItem("Cost", cost),
		},
		OnSubmit: func() {
			if view.submitHandler != nil {
				view.submitHandler()
			}
		},
		OnCancel: func() {
			if view.cancelHandler != nil {
				view.cancelHandler()
			}
		},
		SubmitText: "Save",
	}

	view.errorLabel = widget.NewLabel("")
	view.errorLabel.Importance = widget.DangerImportance
	view.errorLabel.Hide()

	heading := widget.NewLabel(title)
	heading.TextStyle = fyne.TextStyle{Bold: true}

	view.mainContainer = container.NewVBox(heading, view.form, view.errorLabel)
	return view
}

func (iv *ItemView) SetSubmitHandler(handler func()) { iv.submitHandler = handler }
func (iv *ItemView) SetCancelHandler(handler func()) { iv.cancelHandler = handler }

// ShowError displays message under the form; an empty message hides it
func (iv *ItemView) ShowError(message string) {
	fyne.Do(func() {
		iv.errorLabel.SetText(message)
		if message == "" {
			iv.errorLabel.Hide()
		} else {
			iv.errorLabel.Show()
		}
	})
}

func (iv *ItemView) GetContainer() *fyne.Container {
	return iv.mainContainer
}
