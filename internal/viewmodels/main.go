package viewmodels

import (
	"sync"

	"fyne.io/fyne/v2/data/binding"

	"inventory-manager/internal/models"
	"inventory-manager/internal/services"
)

const noSelection = -1

// MainViewModel holds the state of the inventory table screen: the rows on
// display, the search query and mode, and the selected row.
type MainViewModel struct {
	service *services.InventoryService

	Query  binding.String
	Status binding.String

	mu       sync.RWMutex
	mode     models.SearchMode
	rows     []models.Item
	filtered bool
	selected int
	onChange func()
}

func NewMainViewModel(service *services.InventoryService) *MainViewModel {
	vm := &MainViewModel{
		service:  service,
		Query:    binding.NewString(),
		Status:   binding.NewString(),
		mode:     models.SearchByName,
		rows:     service.Items(),
		selected: noSelection,
	}
	_ = vm.Status.Set("Ready")
	service.Inventory().OnChange(vm.Refresh)
	return vm
}

// SetOnChange sets the function run whenever the visible rows or selection
// change. The main screen is rebuilt on every visit, so the previous
// callback is replaced rather than kept.
func (vm *MainViewModel) SetOnChange(fn func()) {
	vm.mu.Lock()
	vm.onChange = fn
	vm.mu.Unlock()
}

func (vm *MainViewModel) changed() {
	vm.mu.RLock()
	fn := vm.onChange
	vm.mu.RUnlock()

	if fn != nil {
		fn()
	}
}

// Rows returns the items currently displayed
func (vm *MainViewModel) Rows() []models.Item {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return append([]models.Item(nil), vm.rows...)
}

func (vm *MainViewModel) RowCount() int {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return len(vm.rows)
}

// Row returns the displayed item at row
func (vm *MainViewModel) Row(row int) (models.Item, bool) {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	if row < 0 || row >= len(vm.rows) {
		return models.Item{}, false
	}
	return vm.rows[row], true
}

func (vm *MainViewModel) Mode() models.SearchMode {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.mode
}

// SetMode selects the search field from a radio label
func (vm *MainViewModel) SetMode(label string) {
	vm.mu.Lock()
	vm.mode = models.ParseSearchMode(label)
	vm.mu.Unlock()
}

// IsFiltered reports whether the rows are search results
func (vm *MainViewModel) IsFiltered() bool {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.filtered
}

// Search replaces the displayed rows with the items matching the query.
func (vm *MainViewModel) Search() {
	query, _ := vm.Query.Get()
	results := vm.service.Search(query, vm.Mode())

	vm.mu.Lock()
	vm.rows = results
	vm.filtered = true
	vm.selected = noSelection
	vm.mu.Unlock()

	vm.changed()
}

// Reset clears the query and shows the whole inventory again
func (vm *MainViewModel) Reset() {
	_ = vm.Query.Set("")

	vm.mu.Lock()
	vm.rows = vm.service.Items()
	vm.filtered = false
	vm.selected = noSelection
	vm.mu.Unlock()

	vm.changed()
}

// Refresh recomputes the rows after the inventory changed, keeping an active search.
func (vm *MainViewModel) Refresh() {
	vm.mu.RLock()
	filtered := vm.filtered
	mode := vm.mode
	vm.mu.RUnlock()

	var rows []models.Item
	if filtered {
		query, _ := vm.Query.Get()
		rows = vm.service.Search(query, mode)
	} else {
		rows = vm.service.Items()
	}

	vm.mu.Lock()
	vm.rows = rows
	if vm.selected >= len(rows) {
		vm.selected = noSelection
	}
	vm.mu.Unlock()

	vm.changed()
}

// Select marks row as selected. Out of range rows clear the selection.
func (vm *MainViewModel) Select(row int) {
	vm.mu.Lock()
	if row < 0 || row >= len(vm.rows) {
		row = noSelection
	}
	vm.selected = row
	vm.mu.Unlock()

	vm.changed()
}

func (vm *MainViewModel) Unselect() {
	vm.Select(noSelection)
}

// Selected returns the selected item
func (vm *MainViewModel) Selected() (models.Item, bool) {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	if vm.selected == noSelection {
		return models.Item{}, false
	}
	return vm.rows[vm.selected], true
}

// ActionsEnabled reports whether edit and delete apply, which needs a selection.
func (vm *MainViewModel) ActionsEnabled() bool {
	_, ok := vm.Selected()
	return ok
}

// DeleteSelected removes the selected item from the inventory
func (vm *MainViewModel) DeleteSelected() bool {
	item, ok := vm.Selected()
	if !ok {
		return false
	}
	vm.Unselect()
	return vm.service.Delete(item)
}

// DeleteAll empties the inventory
func (vm *MainViewModel) DeleteAll() {
	vm.service.DeleteAll()
	vm.Reset()
}

// EditIndex returns the inventory index of the selected item, found by serial
// number, or models.NotFound.
func (vm *MainViewModel) EditIndex() int {
	item, ok := vm.Selected()
	if !ok {
		return models.NotFound
	}
	return vm.service.IndexOf(item)
}

// ItemCount returns the size of the whole inventory
func (vm *MainViewModel) ItemCount() int {
	return vm.service.Inventory().Len()
}
