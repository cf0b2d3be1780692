package pipeline

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-manager/internal/debug/filetracker"
	"inventory-manager/internal/debug/timing"
	"inventory-manager/internal/models"
)

var widgets = []models.Item{
	{SerialNumber: "001", Name: "Widget", Cost: "9.99"},
	{SerialNumber: "002", Name: "Gadget", Cost: "15.00"},
}

func newTestSaver() (*Saver, *filetracker.Tracker) {
	ft := filetracker.NewTracker(nil)
	return NewSaver(nil, ft, timing.NewTracker(nil)), ft
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestExport_TSV(t *testing.T) {
	dir := t.TempDir()
	saver, ft := newTestSaver()

	path, err := saver.Export(context.Background(), widgets[:1], Destination{Dir: dir, Name: "inventory", Format: FormatTSV})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "inventory.txt"), path)

	assert.Equal(t, "001\tWidget\t9.99"+LineSeparator, readFile(t, path))
	assert.Empty(t, ft.OpenFiles())
}

func TestExport_TSVMultipleItemsInOrder(t *testing.T) {
	dir := t.TempDir()
	saver, _ := newTestSaver()

	path, err := saver.Export(context.Background(), widgets, Destination{Dir: dir, Name: "inventory", Format: FormatTSV})
	require.NoError(t, err)

	want := "001\tWidget\t9.99" + LineSeparator + "002\tGadget\t15.00" + LineSeparator
	assert.Equal(t, want, readFile(t, path))
}

func TestExport_JSONConcatenatesObjects(t *testing.T) {
	dir := t.TempDir()
	saver, _ := newTestSaver()

	path, err := saver.Export(context.Background(), widgets, Destination{Dir: dir, Name: "inventory", Format: FormatJSON})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "inventory.json"), path)

	want := `{"serialNumber":"001","name":"Widget","cost":"9.99"}` +
		`{"serialNumber":"002","name":"Gadget","cost":"15.00"}`
	assert.Equal(t, want, readFile(t, path))
}

func TestExport_HTML(t *testing.T) {
	dir := t.TempDir()
	saver, _ := newTestSaver()

	path, err := saver.Export(context.Background(), widgets, Destination{Dir: dir, Name: "inventory", Format: FormatHTML})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "inventory.html"), path)

	out := readFile(t, path)
	assert.True(t, strings.HasPrefix(out, "<html><body><table>"))
	assert.True(t, strings.HasSuffix(out, "</table></body></html>"))
	assert.Equal(t, len(widgets)+1, strings.Count(out, "<tr>"))
	assert.Contains(t, out, "<tr><th>Serial Number\t</th><th>Name\t</th><th>Cost</th></tr>")

	first := strings.Index(out, "<tr><td>001</td><td>Widget</td><td>9.99</td></tr>")
	second := strings.Index(out, "<tr><td>002</td><td>Gadget</td><td>15.00</td></tr>")
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	assert.Less(t, first, second)
}

func TestExport_HTMLEscapesCells(t *testing.T) {
	dir := t.TempDir()
	saver, _ := newTestSaver()

	items := []models.Item{{SerialNumber: "<b>", Name: "Fish & Chips", Cost: "1"}}
	path, err := saver.Export(context.Background(), items, Destination{Dir: dir, Name: "x", Format: FormatHTML})
	require.NoError(t, err)

	out := readFile(t, path)
	assert.Contains(t, out, "<td>&lt;b&gt;</td>")
	assert.Contains(t, out, "<td>Fish &amp; Chips</td>")
}

func TestExport_EmptyInventory(t *testing.T) {
	dir := t.TempDir()
	saver, _ := newTestSaver()

	path, err := saver.Export(context.Background(), nil, Destination{Dir: dir, Name: "empty", Format: FormatTSV})
	require.NoError(t, err)
	assert.Empty(t, readFile(t, path))

	path, err = saver.Export(context.Background(), nil, Destination{Dir: dir, Name: "empty", Format: FormatHTML})
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(readFile(t, path), "<tr>"))
}

func TestExport_InvalidDestination(t *testing.T) {
	dir := t.TempDir()
	notADir := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(notADir, []byte("x"), 0o644))

	tests := []struct {
		name string
		dest Destination
	}{
		{"blank directory", Destination{Dir: "  ", Name: "inventory"}},
		{"missing directory", Destination{Dir: filepath.Join(dir, "missing"), Name: "inventory"}},
		{"directory is a file", Destination{Dir: notADir, Name: "inventory"}},
		{"blank name", Destination{Dir: dir, Name: ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			saver, ft := newTestSaver()

			path, err := saver.Export(context.Background(), widgets, tt.dest)
			require.Error(t, err)
			assert.Empty(t, path)
			assert.ErrorIs(t, err, ErrInvalidDestination)

			var exportErr *ExportError
			require.True(t, errors.As(err, &exportErr))

			opened, _ := ft.Counts()
			assert.Zero(t, opened)
		})
	}

	_, err := os.Stat(filepath.Join(dir, "missing", "inventory.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestExport_FileCreateFailure(t *testing.T) {
	dir := t.TempDir()
	// a directory already sits where the output file would go
	require.NoError(t, os.Mkdir(filepath.Join(dir, "inventory.json"), 0o755))

	saver, ft := newTestSaver()
	_, err := saver.Export(context.Background(), widgets, Destination{Dir: dir, Name: "inventory", Format: FormatJSON})
	assert.ErrorIs(t, err, ErrFileCreate)
	assert.Empty(t, ft.OpenFiles())
}

func TestExport_WriteFailureRemovesPartialFile(t *testing.T) {
	dir := t.TempDir()
	saver, ft := newTestSaver()

	boom := errors.New("boom")
	saver.RegisterEncoder(FormatJSON, EncoderFunc(func(w io.Writer, items []models.Item) error {
		if _, err := io.WriteString(w, `{"serialNumber":"001"`); err != nil {
			return err
		}
		return boom
	}))

	_, err := saver.Export(context.Background(), widgets, Destination{Dir: dir, Name: "partial", Format: FormatJSON})
	assert.ErrorIs(t, err, ErrWrite)
	assert.ErrorIs(t, err, boom)

	_, statErr := os.Stat(filepath.Join(dir, "partial.json"))
	assert.True(t, os.IsNotExist(statErr))

	assert.Empty(t, ft.OpenFiles())
	opened, closed := ft.Counts()
	assert.Equal(t, 1, opened)
	assert.Equal(t, 1, closed)
}

func TestExport_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	saver, _ := newTestSaver()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := saver.Export(ctx, widgets, Destination{Dir: dir, Name: "inventory", Format: FormatTSV})
	assert.ErrorIs(t, err, context.Canceled)

	_, statErr := os.Stat(filepath.Join(dir, "inventory.txt"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestExport_UnknownFormat(t *testing.T) {
	saver, _ := newTestSaver()
	_, err := saver.Export(context.Background(), widgets, Destination{Dir: t.TempDir(), Name: "x", Format: Format(42)})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExport_RecordsTiming(t *testing.T) {
	tt := timing.NewTracker(nil)
	saver := NewSaver(nil, nil, tt)

	_, err := saver.Export(context.Background(), widgets, Destination{Dir: t.TempDir(), Name: "x", Format: FormatHTML})
	require.NoError(t, err)
	assert.Len(t, tt.GetTimings("export_html"), 1)
}
