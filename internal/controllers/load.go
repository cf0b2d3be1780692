package controllers

import (
	"context"

	"inventory-manager/internal/logger"
	"inventory-manager/internal/viewmodels"
	"inventory-manager/internal/views"
)

// LoadController runs the import from the load screen
type LoadController struct {
	vm     *viewmodels.LoadViewModel
	view   *views.LoadView
	nav    Navigator
	logger logger.Logger
}

func NewLoadController(vm *viewmodels.LoadViewModel, view *views.LoadView, nav Navigator, log logger.Logger) *LoadController {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	lc := &LoadController{vm: vm, view: view, nav: nav, logger: log}
	view.SetLoadHandler(lc.Load)
	view.SetCancelHandler(lc.Cancel)
	return lc
}

func (lc *LoadController) Load() {
	ctx, cancel := context.WithTimeout(context.Background(), fileOperationTimeout)
	defer cancel()

	if !lc.vm.Load(ctx) {
		lc.logger.Warning("LoadController", "import failed", map[string]interface{}{
			"error": lc.vm.Err().Error(),
		})
		lc.view.SetErrorMessage(lc.vm.ErrorMessage())
		return
	}

	lc.logger.Info("LoadController", "inventory loaded", map[string]interface{}{
		"items": lc.vm.Loaded(),
	})
	lc.back()
}

func (lc *LoadController) Cancel() {
	lc.back()
}

func (lc *LoadController) back() {
	if err := lc.nav.Back(); err != nil {
		lc.logger.Error("LoadController", err, nil)
	}
}
