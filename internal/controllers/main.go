package controllers

import (
	"errors"
	"fmt"

	"inventory-manager/internal/logger"
	"inventory-manager/internal/models"
	"inventory-manager/internal/router"
	"inventory-manager/internal/viewmodels"
	"inventory-manager/internal/views"
)

// Navigator switches between screens
type Navigator interface {
	Navigate(screen router.Screen, params router.Params) error
	Back() error
}

var errNoSelection = errors.New("select an item first")

// MainController connects the inventory table screen to its view-model
type MainController struct {
	vm       *viewmodels.MainViewModel
	mainView *views.MainView
	nav      Navigator
	logger   logger.Logger
}

func NewMainController(vm *viewmodels.MainViewModel, nav Navigator, log logger.Logger) *MainController {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &MainController{
		vm:     vm,
		nav:    nav,
		logger: log,
	}
}

// SetMainView associates the view with this controller and syncs it with the view-model
func (mc *MainController) SetMainView(view *views.MainView) {
	mc.mainView = view
	mc.vm.Unselect()
	mc.vm.SetOnChange(mc.syncView)
	mc.setupViewEventHandlers()

	view.SetSearchMode(mc.vm.Mode().String())
	mc.syncView()
}

func (mc *MainController) setupViewEventHandlers() {
	mc.mainView.SetSearchHandler(mc.Search)
	mc.mainView.SetResetHandler(mc.Reset)
	mc.mainView.SetModeChangeHandler(mc.vm.SetMode)
	mc.mainView.SetSelectHandler(mc.vm.Select)
	mc.mainView.SetUnselectHandler(mc.vm.Unselect)
	mc.mainView.SetCreateHandler(mc.CreateItem)
	mc.mainView.SetEditHandler(mc.EditItem)
	mc.mainView.SetDeleteHandler(mc.DeleteItem)
	mc.mainView.SetDeleteAllHandler(mc.DeleteAll)
	mc.mainView.SetSaveHandler(func() { mc.navigate(router.ScreenSave, nil) })
	mc.mainView.SetLoadHandler(func() { mc.navigate(router.ScreenLoad, nil) })
}

func (mc *MainController) syncView() {
	if mc.mainView == nil {
		return
	}
	mc.mainView.RefreshRows()
	mc.mainView.SetSelectionActive(mc.vm.ActionsEnabled())
	mc.mainView.UpdateCounts(mc.vm.RowCount(), mc.vm.ItemCount(), mc.vm.IsFiltered())
}

// Search filters the table by the current query and mode
func (mc *MainController) Search() {
	mc.mainView.ClearSelection()
	mc.vm.Search()
	mc.mainView.UpdateStatus(fmt.Sprintf("%d matching items", mc.vm.RowCount()))
}

// Reset shows the whole inventory again
func (mc *MainController) Reset() {
	mc.mainView.ClearSelection()
	mc.vm.Reset()
	mc.mainView.UpdateStatus("Ready")
}

func (mc *MainController) CreateItem() {
	mc.navigate(router.ScreenItem, nil)
}

// EditItem opens the form for the selected item
func (mc *MainController) EditItem() {
	index := mc.vm.EditIndex()
	if index == models.NotFound {
		mc.handleError("Edit failed", errNoSelection)
		return
	}
	mc.navigate(router.ScreenItem, router.Params{"index": index})
}

// DeleteItem removes the selected item
func (mc *MainController) DeleteItem() {
	item, ok := mc.vm.Selected()
	if !ok {
		mc.handleError("Delete failed", errNoSelection)
		return
	}

	mc.mainView.ClearSelection()
	if mc.vm.DeleteSelected() {
		mc.mainView.UpdateStatus(fmt.Sprintf("Deleted %s", item.SerialNumber))
	}
}

// DeleteAll empties the inventory after confirmation
func (mc *MainController) DeleteAll() {
	mc.mainView.ShowConfirm("Delete All Items", "Remove every item from the inventory?", func(confirmed bool) {
		if !confirmed {
			return
		}
		mc.mainView.ClearSelection()
		mc.vm.DeleteAll()
		mc.mainView.UpdateStatus("All items deleted")
	})
}

func (mc *MainController) navigate(screen router.Screen, params router.Params) {
	if err := mc.nav.Navigate(screen, params); err != nil {
		mc.handleError("Navigation failed", err)
	}
}

func (mc *MainController) handleError(message string, err error) {
	mc.logger.Error("MainController", err, map[string]interface{}{
		"context": message,
	})
	if mc.mainView != nil {
		mc.mainView.UpdateStatus(message)
		mc.mainView.ShowError(err)
	}
}
