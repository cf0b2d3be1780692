package viewmodels

import (
	"context"
	"errors"

	"fyne.io/fyne/v2/data/binding"

	"inventory-manager/internal/pipeline"
	"inventory-manager/internal/services"
)

// LoadViewModel backs the import screen
type LoadViewModel struct {
	service *services.InventoryService

	Path         binding.String
	ErrorVisible binding.Bool

	lastErr error
	loaded  int
}

func NewLoadViewModel(service *services.InventoryService) *LoadViewModel {
	return &LoadViewModel{
		service:      service,
		Path:         binding.NewString(),
		ErrorVisible: binding.NewBool(),
	}
}

// Load replaces the inventory with the selected file's contents
func (vm *LoadViewModel) Load(ctx context.Context) bool {
	path, _ := vm.Path.Get()

	n, err := vm.service.Import(ctx, path)
	vm.lastErr = err
	if err != nil {
		_ = vm.ErrorVisible.Set(true)
		return false
	}

	vm.loaded = n
	_ = vm.ErrorVisible.Set(false)
	return true
}

// Loaded returns the item count of the last successful Load
func (vm *LoadViewModel) Loaded() int {
	return vm.loaded
}

func (vm *LoadViewModel) Err() error {
	return vm.lastErr
}

func (vm *LoadViewModel) ErrorMessage() string {
	switch {
	case vm.lastErr == nil:
		return ""
	case errors.Is(vm.lastErr, pipeline.ErrFileOpen):
		return "The file could not be opened"
	case errors.Is(vm.lastErr, pipeline.ErrUnsupportedFormat):
		return "Only .txt, .json and .html files can be loaded"
	case errors.Is(vm.lastErr, pipeline.ErrMalformed):
		return "The file is not a valid inventory export"
	default:
		return "Loading failed"
	}
}
