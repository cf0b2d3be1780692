package viewmodels

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-manager/internal/models"
	"inventory-manager/internal/pipeline"
	"inventory-manager/internal/services"
)

func newService(t *testing.T, items ...models.Item) *services.InventoryService {
	t.Helper()
	test.NewTempApp(t)
	return services.NewInventoryService(
		models.NewInventory(items...),
		pipeline.NewSaver(nil, nil, nil),
		pipeline.NewLoader(nil, nil, nil),
		nil,
	)
}

var sample = []models.Item{
	{SerialNumber: "A-1", Name: "Hammer", Cost: "12.50"},
	{SerialNumber: "B-2", Name: "Wrench", Cost: "8.00"},
	{SerialNumber: "A-3", Name: "Hammock", Cost: "40"},
}

func TestMainViewModel_SearchAndReset(t *testing.T) {
	vm := NewMainViewModel(newService(t, sample...))
	assert.Equal(t, 3, vm.RowCount())

	require.NoError(t, vm.Query.Set("Ham"))
	vm.Search()
	assert.True(t, vm.IsFiltered())
	assert.Equal(t, []models.Item{sample[0], sample[2]}, vm.Rows())

	vm.SetMode("Serial Number")
	require.NoError(t, vm.Query.Set("B-"))
	vm.Search()
	assert.Equal(t, []models.Item{sample[1]}, vm.Rows())

	vm.Reset()
	query, _ := vm.Query.Get()
	assert.Equal(t, "", query)
	assert.False(t, vm.IsFiltered())
	assert.Equal(t, 3, vm.RowCount())
}

func TestMainViewModel_SearchIsCaseSensitive(t *testing.T) {
	vm := NewMainViewModel(newService(t, sample...))

	require.NoError(t, vm.Query.Set("ham"))
	vm.Search()
	assert.Equal(t, 0, vm.RowCount())
	assert.NotNil(t, vm.Rows())
}

func TestMainViewModel_SelectionGatesActions(t *testing.T) {
	vm := NewMainViewModel(newService(t, sample...))
	changes := 0
	vm.SetOnChange(func() { changes++ })

	assert.False(t, vm.ActionsEnabled())
	assert.Equal(t, models.NotFound, vm.EditIndex())

	vm.Select(1)
	assert.True(t, vm.ActionsEnabled())
	assert.Equal(t, 1, vm.EditIndex())

	vm.Select(10)
	assert.False(t, vm.ActionsEnabled())
	assert.Equal(t, 2, changes)
}

func TestMainViewModel_EditIndexFromFilteredRow(t *testing.T) {
	vm := NewMainViewModel(newService(t, sample...))

	require.NoError(t, vm.Query.Set("Hammock"))
	vm.Search()
	vm.Select(0)

	assert.Equal(t, 2, vm.EditIndex())
}

func TestMainViewModel_DeleteSelectedKeepsSearch(t *testing.T) {
	svc := newService(t, sample...)
	vm := NewMainViewModel(svc)

	require.NoError(t, vm.Query.Set("Ham"))
	vm.Search()
	vm.Select(0)

	assert.True(t, vm.DeleteSelected())
	assert.Equal(t, []models.Item{sample[2]}, vm.Rows())
	assert.Equal(t, 2, svc.Inventory().Len())
	assert.False(t, vm.ActionsEnabled())
	assert.False(t, vm.DeleteSelected())
}

func TestMainViewModel_DeleteAll(t *testing.T) {
	svc := newService(t, sample...)
	vm := NewMainViewModel(svc)

	vm.DeleteAll()
	assert.Equal(t, 0, vm.RowCount())
	assert.Equal(t, 0, vm.ItemCount())
}

func TestItemViewModel_CreateAndEdit(t *testing.T) {
	svc := newService(t, sample...)

	create, err := NewItemViewModel(svc, -1)
	require.NoError(t, err)
	assert.False(t, create.Editing())
	assert.Equal(t, "Create Item", create.Title())
	require.NoError(t, create.Serial.Set("C-4"))
	require.NoError(t, create.Name.Set("Saw"))
	require.NoError(t, create.Cost.Set("15"))
	require.NoError(t, create.Commit())
	assert.Equal(t, 4, svc.Inventory().Len())

	edit, err := NewItemViewModel(svc, 1)
	require.NoError(t, err)
	assert.Equal(t, "Edit Item", edit.Title())
	assert.Equal(t, sample[1], edit.Item())
	require.NoError(t, edit.Cost.Set("9.00"))
	require.NoError(t, edit.Commit())

	got, err := svc.Inventory().Get(1)
	require.NoError(t, err)
	assert.Equal(t, "9.00", got.Cost)
}

func TestItemViewModel_Errors(t *testing.T) {
	svc := newService(t, sample...)

	_, err := NewItemViewModel(svc, 5)
	assert.ErrorIs(t, err, models.ErrIndexOutOfRange)

	vm, err := NewItemViewModel(svc, -1)
	require.NoError(t, err)
	assert.ErrorIs(t, vm.Commit(), models.ErrSerialRequired)
	assert.Equal(t, 3, svc.Inventory().Len())
}

func TestSaveViewModel_Save(t *testing.T) {
	dir := t.TempDir()
	vm := NewSaveViewModel(newService(t, sample...), dir, pipeline.FormatTSV)

	vm.SetFormat("HTML")
	vm.SetFormat("PDF")
	assert.Equal(t, pipeline.FormatHTML, vm.Format())

	require.NoError(t, vm.Filename.Set("stock"))
	assert.True(t, vm.Save(context.Background()))
	assert.Equal(t, filepath.Join(dir, "stock.html"), vm.LastPath())
	assert.FileExists(t, vm.LastPath())

	visible, _ := vm.ErrorVisible.Get()
	assert.False(t, visible)
	assert.Empty(t, vm.ErrorMessage())
}

func TestSaveViewModel_InvalidDestinationRaisesFlag(t *testing.T) {
	dir := t.TempDir()
	vm := NewSaveViewModel(newService(t, sample...), filepath.Join(dir, "missing"), pipeline.FormatJSON)
	require.NoError(t, vm.Filename.Set("stock"))

	assert.False(t, vm.Save(context.Background()))
	visible, _ := vm.ErrorVisible.Get()
	assert.True(t, visible)
	assert.ErrorIs(t, vm.Err(), pipeline.ErrInvalidDestination)
	assert.NotEmpty(t, vm.ErrorMessage())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	require.NoError(t, vm.Directory.Set(dir))
	assert.True(t, vm.Save(context.Background()))
	visible, _ = vm.ErrorVisible.Get()
	assert.False(t, visible)
}

func TestLoadViewModel_Load(t *testing.T) {
	dir := t.TempDir()
	svc := newService(t, sample...)
	path, err := svc.Export(context.Background(), pipeline.Destination{Dir: dir, Name: "stock", Format: pipeline.FormatTSV})
	require.NoError(t, err)
	svc.DeleteAll()

	vm := NewLoadViewModel(svc)
	require.NoError(t, vm.Path.Set(path))
	assert.True(t, vm.Load(context.Background()))
	assert.Equal(t, 3, vm.Loaded())
	assert.Equal(t, sample, svc.Items())
}

func TestLoadViewModel_Failure(t *testing.T) {
	vm := NewLoadViewModel(newService(t, sample...))

	require.NoError(t, vm.Path.Set(filepath.Join(t.TempDir(), "nope.json")))
	assert.False(t, vm.Load(context.Background()))
	visible, _ := vm.ErrorVisible.Get()
	assert.True(t, visible)
	assert.ErrorIs(t, vm.Err(), pipeline.ErrFileOpen)
	assert.Equal(t, "The file could not be opened", vm.ErrorMessage())
}
