package filetracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker_OpenClose(t *testing.T) {
	ft := NewTracker(nil)

	ft.TrackOpen("/tmp/a.txt", 3, "write")
	ft.TrackOpen("/tmp/b.json", 4, "write")
	require.Len(t, ft.OpenFiles(), 2)

	ft.TrackClose("/tmp/a.txt", 3)
	open := ft.OpenFiles()
	require.Len(t, open, 1)
	assert.Equal(t, "/tmp/b.json", open[0].Path)
	assert.Equal(t, "write", open[0].Mode)

	opened, closed := ft.Counts()
	assert.Equal(t, 2, opened)
	assert.Equal(t, 1, closed)
}

func TestTracker_CloseWithWrongHandleIsIgnored(t *testing.T) {
	ft := NewTracker(nil)

	ft.TrackOpen("/tmp/a.txt", 3, "read")
	ft.TrackClose("/tmp/a.txt", 99)

	assert.Len(t, ft.OpenFiles(), 1)
}

func TestTracker_DetectLeaks(t *testing.T) {
	ft := NewTracker(nil)
	ft.TrackOpen("/tmp/a.txt", 3, "write")

	assert.Empty(t, ft.DetectLeaks(time.Hour))
	assert.Len(t, ft.DetectLeaks(0), 1)
}

func TestTracker_Disabled(t *testing.T) {
	ft := NewTracker(nil)
	ft.SetEnabled(false)

	ft.TrackOpen("/tmp/a.txt", 3, "write")
	assert.Empty(t, ft.OpenFiles())
}

func TestTracker_NilIsSafe(t *testing.T) {
	var ft *Tracker
	assert.NotPanics(t, func() {
		ft.TrackOpen("/tmp/a.txt", 1, "write")
		ft.TrackClose("/tmp/a.txt", 1)
	})
}
