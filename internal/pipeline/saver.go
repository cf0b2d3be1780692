package pipeline

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"inventory-manager/internal/debug/filetracker"
	"inventory-manager/internal/debug/timing"
	"inventory-manager/internal/logger"
	"inventory-manager/internal/models"
)

// Destination names the file an export writes: <Dir>/<Name><extension>.
type Destination struct {
	Dir    string
	Name   string
	Format Format
}

// Path returns the full output path.
func (d Destination) Path() string {
	return filepath.Join(d.Dir, d.Name+d.Format.Extension())
}

// Validate checks that the directory exists and the file name is not blank.
func (d Destination) Validate() error {
	if strings.TrimSpace(d.Dir) == "" {
		return &ExportError{Kind: ErrInvalidDestination, Err: errors.New("directory is blank")}
	}
	info, err := os.Stat(d.Dir)
	if err != nil {
		return &ExportError{Kind: ErrInvalidDestination, Path: d.Dir, Err: err}
	}
	if !info.IsDir() {
		return &ExportError{Kind: ErrInvalidDestination, Path: d.Dir, Err: errors.New("not a directory")}
	}
	if strings.TrimSpace(d.Name) == "" {
		return &ExportError{Kind: ErrInvalidDestination, Path: d.Dir, Err: errors.New("file name is blank")}
	}
	return nil
}

// Saver exports inventories to disk.
type Saver struct {
	logger        logger.Logger
	fileTracker   *filetracker.Tracker
	timingTracker *timing.Tracker
	encoders      map[Format]Encoder
}

func NewSaver(log logger.Logger, ft *filetracker.Tracker, tt *timing.Tracker) *Saver {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Saver{
		logger:        log,
		fileTracker:   ft,
		timingTracker: tt,
		encoders: map[Format]Encoder{
			FormatTSV:  tsvEncoder{lineSeparator: LineSeparator},
			FormatJSON: jsonEncoder{},
			FormatHTML: htmlEncoder{},
		},
	}
}

// RegisterEncoder replaces the encoder used for format.
func (s *Saver) RegisterEncoder(format Format, enc Encoder) {
	s.encoders[format] = enc
}

// Export writes items to dest and returns the written path. The destination
// is validated before anything is created; on a write failure the partial
// file is removed.
func (s *Saver) Export(ctx context.Context, items []models.Item, dest Destination) (string, error) {
	enc, ok := s.encoders[dest.Format]
	if !ok {
		return "", &ExportError{Kind: ErrUnsupportedFormat, Err: fmt.Errorf("no encoder for %s", dest.Format)}
	}

	if err := dest.Validate(); err != nil {
		s.logger.Warning("Saver", "export rejected", map[string]interface{}{
			"dir":    dest.Dir,
			"name":   dest.Name,
			"reason": err.Error(),
		})
		return "", err
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	timed := s.timingTracker.StartTiming(ctx, "export_"+strings.ToLower(dest.Format.String()))
	defer s.timingTracker.EndTiming(timed)

	path := dest.Path()
	file, err := os.Create(path)
	if err != nil {
		exportErr := &ExportError{Kind: ErrFileCreate, Path: path, Err: err}
		s.logger.Error("Saver", exportErr, map[string]interface{}{
			"format": dest.Format.String(),
		})
		return "", exportErr
	}

	handle := file.Fd()
	s.fileTracker.TrackOpen(path, handle, "write")

	writeErr := s.write(file, enc, items)
	closeErr := file.Close()
	s.fileTracker.TrackClose(path, handle)

	if writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		// best effort, the write error is what gets reported
		_ = os.Remove(path)

		exportErr := &ExportError{Kind: ErrWrite, Path: path, Err: writeErr}
		s.logger.Error("Saver", exportErr, map[string]interface{}{
			"format": dest.Format.String(),
		})
		return "", exportErr
	}

	s.logger.Info("Saver", "inventory exported", map[string]interface{}{
		"path":   path,
		"format": dest.Format.String(),
		"items":  len(items),
	})
	return path, nil
}

func (s *Saver) write(file *os.File, enc Encoder, items []models.Item) error {
	w := bufio.NewWriter(file)
	if err := enc.Encode(w, items); err != nil {
		return err
	}
	return w.Flush()
}
