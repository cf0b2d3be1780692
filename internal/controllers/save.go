package controllers

import (
	"context"
	"time"

	"inventory-manager/internal/logger"
	"inventory-manager/internal/viewmodels"
	"inventory-manager/internal/views"
)

const fileOperationTimeout = 30 * time.Second

// SaveController runs the export from the save screen
type SaveController struct {
	vm     *viewmodels.SaveViewModel
	view   *views.SaveView
	nav    Navigator
	logger logger.Logger
}

func NewSaveController(vm *viewmodels.SaveViewModel, view *views.SaveView, nav Navigator, log logger.Logger) *SaveController {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	sc := &SaveController{vm: vm, view: view, nav: nav, logger: log}
	view.SetSaveHandler(sc.Save)
	view.SetCancelHandler(sc.Cancel)
	view.SetFormatChangeHandler(vm.SetFormat)
	return sc
}

// Save exports the inventory. The screen stays open with the error label on failure.
func (sc *SaveController) Save() {
	ctx, cancel := context.WithTimeout(context.Background(), fileOperationTimeout)
	defer cancel()

	if !sc.vm.Save(ctx) {
		sc.logger.Warning("SaveController", "export failed", map[string]interface{}{
			"error": sc.vm.Err().Error(),
		})
		sc.view.SetErrorMessage(sc.vm.ErrorMessage())
		return
	}

	sc.logger.Info("SaveController", "inventory saved", map[string]interface{}{
		"path": sc.vm.LastPath(),
	})
	sc.back()
}

func (sc *SaveController) Cancel() {
	sc.back()
}

func (sc *SaveController) back() {
	if err := sc.nav.Back(); err != nil {
		sc.logger.Error("SaveController", err, nil)
	}
}
