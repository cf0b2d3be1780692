package viewmodels

import (
	"fyne.io/fyne/v2/data/binding"

	"inventory-manager/internal/models"
	"inventory-manager/internal/services"
)

// ItemViewModel backs the create/edit form
type ItemViewModel struct {
	service *services.InventoryService
	index   int

	Serial binding.String
	Name   binding.String
	Cost   binding.String
}

// NewItemViewModel prepares the form. A negative index creates a new item,
// otherwise the fields are loaded from the item at index.
func NewItemViewModel(service *services.InventoryService, index int) (*ItemViewModel, error) {
	vm := &ItemViewModel{
		service: service,
		index:   models.NotFound,
		Serial:  binding.NewString(),
		Name:    binding.NewString(),
		Cost:    binding.NewString(),
	}
	if index < 0 {
		return vm, nil
	}

	item, err := service.Inventory().Get(index)
	if err != nil {
		return nil, err
	}
	vm.index = index
	_ = vm.Serial.Set(item.SerialNumber)
	_ = vm.Name.Set(item.Name)
	_ = vm.Cost.Set(item.Cost)
	return vm, nil
}

func (vm *ItemViewModel) Editing() bool {
	return vm.index >= 0
}

func (vm *ItemViewModel) Title() string {
	if vm.Editing() {
		return "Edit Item"
	}
	return "Create Item"
}

// Item returns the form contents
func (vm *ItemViewModel) Item() models.Item {
	serial, _ := vm.Serial.Get()
	name, _ := vm.Name.Get()
	cost, _ := vm.Cost.Get()
	return models.Item{SerialNumber: serial, Name: name, Cost: cost}
}

// Commit appends the new item or replaces the edited one
func (vm *ItemViewModel) Commit() error {
	item := vm.Item()
	if vm.Editing() {
		return vm.service.Update(vm.index, item)
	}
	return vm.service.Create(item)
}
