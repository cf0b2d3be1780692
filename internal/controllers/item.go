package controllers

import (
	"inventory-manager/internal/logger"
	"inventory-manager/internal/viewmodels"
	"inventory-manager/internal/views"
)

// ItemController handles the create/edit form
type ItemController struct {
	vm     *viewmodels.ItemViewModel
	view   *views.ItemView
	nav    Navigator
	logger logger.Logger
}

func NewItemController(vm *viewmodels.ItemViewModel, view *views.ItemView, nav Navigator, log logger.Logger) *ItemController {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	ic := &ItemController{vm: vm, view: view, nav: nav, logger: log}
	view.SetSubmitHandler(ic.Submit)
	view.SetCancelHandler(ic.Cancel)
	return ic
}

// Submit stores the form and returns to the previous screen
func (ic *ItemController) Submit() {
	if err := ic.vm.Commit(); err != nil {
		ic.logger.Warning("ItemController", "item rejected", map[string]interface{}{
			"error":   err.Error(),
			"editing": ic.vm.Editing(),
		})
		ic.view.ShowError(err.Error())
		return
	}
	ic.view.ShowError("")
	ic.back()
}

func (ic *ItemController) Cancel() {
	ic.back()
}

func (ic *ItemController) back() {
	if err := ic.nav.Back(); err != nil {
		ic.logger.Error("ItemController", err, nil)
	}
}
