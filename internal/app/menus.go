package app

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"inventory-manager/internal/router"
)

func (a *Application) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Save Inventory...", func() {
			a.navigate(router.ScreenSave, nil)
		}),
		fyne.NewMenuItem("Load Inventory...", func() {
			a.navigate(router.ScreenLoad, nil)
		}),
	)

	itemMenu := fyne.NewMenu("Items",
		fyne.NewMenuItem("New Item...", func() {
			a.navigate(router.ScreenItem, nil)
		}),
		fyne.NewMenuItem("Show All", func() {
			a.mainVM.Reset()
			if err := a.router.Reset(router.ScreenMain, nil); err != nil {
				a.logger.Error("Application", err, nil)
			}
		}),
	)

	debugMenu := fyne.NewMenu("Debug",
		fyne.NewMenuItem("Session Report", func() {
			dialog.ShowInformation("Session Report", a.lifecycle.Report(), a.window)
		}),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, itemMenu, debugMenu))
}

func (a *Application) navigate(screen router.Screen, params router.Params) {
	if err := a.router.Navigate(screen, params); err != nil {
		a.logger.Error("Application", err, map[string]interface{}{
			"screen": string(screen),
		})
		dialog.ShowError(err, a.window)
	}
}

// Report summarizes inventory activity, operation timings and open file handles
func (l *Lifecycle) Report() string {
	var b strings.Builder

	stats := l.service.GetStats()
	fmt.Fprintf(&b, "Items: %d\n", stats.ItemCount)
	fmt.Fprintf(&b, "Exports: %d (%d failed)\n", stats.ExportCount, stats.FailedExports)
	fmt.Fprintf(&b, "Imports: %d\n", stats.ImportCount)
	if stats.LastExportPath != "" {
		fmt.Fprintf(&b, "Last export: %s at %s\n", stats.LastExportPath, stats.LastExportTime.Format("15:04:05"))
	}

	for _, op := range timedOperations {
		if avg := l.debugCoord.TimingTracker().GetAverageTime(op); avg > 0 {
			fmt.Fprintf(&b, "%s: %s avg\n", op, avg)
		}
	}

	opened, closed := l.debugCoord.FileTracker().Counts()
	fmt.Fprintf(&b, "Files opened: %d, closed: %d", opened, closed)
	return b.String()
}
