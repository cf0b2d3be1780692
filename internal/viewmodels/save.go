package viewmodels

import (
	"context"
	"errors"

	"fyne.io/fyne/v2/data/binding"

	"inventory-manager/internal/pipeline"
	"inventory-manager/internal/services"
)

// SaveViewModel backs the export screen
type SaveViewModel struct {
	service *services.InventoryService
	format  pipeline.Format

	Directory    binding.String
	Filename     binding.String
	ErrorVisible binding.Bool

	lastErr  error
	lastPath string
}

func NewSaveViewModel(service *services.InventoryService, directory string, format pipeline.Format) *SaveViewModel {
	vm := &SaveViewModel{
		service:      service,
		format:       format,
		Directory:    binding.NewString(),
		Filename:     binding.NewString(),
		ErrorVisible: binding.NewBool(),
	}
	_ = vm.Directory.Set(directory)
	return vm
}

func (vm *SaveViewModel) Format() pipeline.Format {
	return vm.format
}

// SetFormat selects the output format from a radio label. Unknown labels are ignored.
func (vm *SaveViewModel) SetFormat(label string) {
	if f, err := pipeline.ParseFormat(label); err == nil {
		vm.format = f
	}
}

// Destination assembles the export target from the form
func (vm *SaveViewModel) Destination() pipeline.Destination {
	dir, _ := vm.Directory.Get()
	name, _ := vm.Filename.Get()
	return pipeline.Destination{Dir: dir, Name: name, Format: vm.format}
}

// Save exports the inventory. On failure the error flag is raised and false
// is returned.
func (vm *SaveViewModel) Save(ctx context.Context) bool {
	path, err := vm.service.Export(ctx, vm.Destination())
	vm.lastErr = err
	if err != nil {
		_ = vm.ErrorVisible.Set(true)
		return false
	}

	vm.lastPath = path
	_ = vm.ErrorVisible.Set(false)
	return true
}

func (vm *SaveViewModel) Err() error {
	return vm.lastErr
}

// LastPath returns the file written by the last successful Save
func (vm *SaveViewModel) LastPath() string {
	return vm.lastPath
}

// ErrorMessage describes the last failure for the error label
func (vm *SaveViewModel) ErrorMessage() string {
	switch {
	case vm.lastErr == nil:
		return ""
	case errors.Is(vm.lastErr, pipeline.ErrInvalidDestination):
		return "Please choose an existing directory and a file name"
	case errors.Is(vm.lastErr, pipeline.ErrFileCreate):
		return "The file could not be created"
	case errors.Is(vm.lastErr, pipeline.ErrWrite):
		return "Writing the file failed"
	default:
		return "Saving failed"
	}
}
