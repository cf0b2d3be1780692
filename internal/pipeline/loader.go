package pipeline

import (
	"context"
	"errors"
	"os"
	"strings"

	"inventory-manager/internal/debug/filetracker"
	"inventory-manager/internal/debug/timing"
	"inventory-manager/internal/logger"
	"inventory-manager/internal/models"
)

// Loader reads inventories back from exported files.
type Loader struct {
	logger        logger.Logger
	fileTracker   *filetracker.Tracker
	timingTracker *timing.Tracker
	decoders      map[Format]Decoder
}

func NewLoader(log logger.Logger, ft *filetracker.Tracker, tt *timing.Tracker) *Loader {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Loader{
		logger:        log,
		fileTracker:   ft,
		timingTracker: tt,
		decoders: map[Format]Decoder{
			FormatTSV:  tsvDecoder{},
			FormatJSON: jsonDecoder{},
			FormatHTML: htmlDecoder{},
		},
	}
}

// Import reads the file at path. The format is taken from the extension.
func (l *Loader) Import(ctx context.Context, path string) ([]models.Item, error) {
	if strings.TrimSpace(path) == "" {
		return nil, &ImportError{Kind: ErrFileOpen, Err: errors.New("path is blank")}
	}

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, &ImportError{Kind: ErrUnsupportedFormat, Path: path}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	timed := l.timingTracker.StartTiming(ctx, "import_"+strings.ToLower(format.String()))
	defer l.timingTracker.EndTiming(timed)

	file, err := os.Open(path)
	if err != nil {
		importErr := &ImportError{Kind: ErrFileOpen, Path: path, Err: err}
		l.logger.Error("Loader", importErr, nil)
		return nil, importErr
	}

	handle := file.Fd()
	l.fileTracker.TrackOpen(path, handle, "read")
	defer func() {
		file.Close()
		l.fileTracker.TrackClose(path, handle)
	}()

	items, err := l.decoders[format].Decode(file)
	if err != nil {
		kind := ErrMalformed
		if errors.Is(err, ErrRead) {
			kind = ErrRead
		}
		importErr := &ImportError{Kind: kind, Path: path, Err: err}
		l.logger.Error("Loader", importErr, map[string]interface{}{
			"format": format.String(),
		})
		return nil, importErr
	}

	l.logger.Info("Loader", "inventory imported", map[string]interface{}{
		"path":   path,
		"format": format.String(),
		"items":  len(items),
	})
	return items, nil
}
