package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"inventory-manager/internal/debug/eventbus"
	"inventory-manager/internal/logger"
	"inventory-manager/internal/models"
	"inventory-manager/internal/pipeline"
)

// Exporter writes an inventory to a destination file
type Exporter interface {
	Export(ctx context.Context, items []models.Item, dest pipeline.Destination) (string, error)
}

// Importer reads an inventory from a previously exported file
type Importer interface {
	Import(ctx context.Context, path string) ([]models.Item, error)
}

// Event types published after successful operations
const (
	EventItemCreated       = "item.created"
	EventItemUpdated       = "item.updated"
	EventItemDeleted       = "item.deleted"
	EventInventoryCleared  = "inventory.cleared"
	EventInventoryExported = "inventory.exported"
	EventInventoryImported = "inventory.imported"
	EventExportFailed      = "inventory.export_failed"
)

type EventPublisher interface {
	Publish(event eventbus.Event)
}

// InventoryStats summarizes the activity of a session
type InventoryStats struct {
	ItemCount      int
	ExportCount    int
	ImportCount    int
	FailedExports  int
	LastExportPath string
	LastExportTime time.Time
}

// InventoryService is the single entry point for inventory mutations, search,
// export and import.
type InventoryService struct {
	inventory *models.Inventory
	exporter  Exporter
	importer  Importer
	logger    logger.Logger
	publisher EventPublisher

	mu    sync.Mutex
	stats InventoryStats
}

// NewInventoryService creates a new inventory service
func NewInventoryService(inv *models.Inventory, exp Exporter, imp Importer, log logger.Logger) *InventoryService {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &InventoryService{
		inventory: inv,
		exporter:  exp,
		importer:  imp,
		logger:    log,
	}
}

// SetPublisher sets where operation events are sent
func (s *InventoryService) SetPublisher(p EventPublisher) {
	s.publisher = p
}

func (s *InventoryService) publish(eventType string, data map[string]interface{}) {
	if s.publisher == nil {
		return
	}
	s.publisher.Publish(eventbus.Event{Type: eventType, Data: data})
}

// Inventory returns the shared store
func (s *InventoryService) Inventory() *models.Inventory {
	return s.inventory
}

// Items returns a snapshot of the inventory
func (s *InventoryService) Items() []models.Item {
	return s.inventory.Items()
}

// Create appends a new item
func (s *InventoryService) Create(item models.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	s.inventory.Add(item)
	s.publish(EventItemCreated, map[string]interface{}{"serial": item.SerialNumber})

	s.logger.Info("InventoryService", "item created", map[string]interface{}{
		"serial": item.SerialNumber,
		"count":  s.inventory.Len(),
	})
	return nil
}

// Update replaces the item at index
func (s *InventoryService) Update(index int, item models.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if err := s.inventory.Replace(index, item); err != nil {
		s.logger.Error("InventoryService", err, map[string]interface{}{
			"index": index,
		})
		return err
	}

	s.publish(EventItemUpdated, map[string]interface{}{"serial": item.SerialNumber, "index": index})
	s.logger.Info("InventoryService", "item updated", map[string]interface{}{
		"serial": item.SerialNumber,
		"index":  index,
	})
	return nil
}

// Delete removes item and reports whether it was present
func (s *InventoryService) Delete(item models.Item) bool {
	removed := s.inventory.Remove(item)
	if removed {
		s.publish(EventItemDeleted, map[string]interface{}{"serial": item.SerialNumber})
	}

	s.logger.Info("InventoryService", "item delete requested", map[string]interface{}{
		"serial":  item.SerialNumber,
		"removed": removed,
	})
	return removed
}

// DeleteAll empties the inventory
func (s *InventoryService) DeleteAll() {
	count := s.inventory.Len()
	s.inventory.Clear()
	s.publish(EventInventoryCleared, map[string]interface{}{"removed": count})

	s.logger.Info("InventoryService", "inventory cleared", map[string]interface{}{
		"removed": count,
	})
}

// Search filters the inventory without changing it
func (s *InventoryService) Search(query string, mode models.SearchMode) []models.Item {
	results := s.inventory.Filter(query, mode)

	s.logger.Debug("InventoryService", "search", map[string]interface{}{
		"query":   query,
		"mode":    mode.String(),
		"matches": len(results),
	})
	return results
}

// IndexOf locates item by serial number
func (s *InventoryService) IndexOf(item models.Item) int {
	return s.inventory.IndexOfSerial(item)
}

// Export writes the whole inventory to dest
func (s *InventoryService) Export(ctx context.Context, dest pipeline.Destination) (string, error) {
	items := s.inventory.Items()

	path, err := s.exporter.Export(ctx, items, dest)
	if err != nil {
		s.mu.Lock()
		s.stats.FailedExports++
		s.mu.Unlock()

		s.publish(EventExportFailed, map[string]interface{}{"error": err.Error()})
		return "", fmt.Errorf("export inventory: %w", err)
	}

	s.mu.Lock()
	s.stats.ExportCount++
	s.stats.LastExportPath = path
	s.stats.LastExportTime = time.Now()
	s.mu.Unlock()

	s.publish(EventInventoryExported, map[string]interface{}{
		"path":   path,
		"items":  len(items),
		"format": dest.Format.String(),
	})
	return path, nil
}

// Import replaces the inventory with the contents of the file at path and
// returns the number of items loaded. The inventory is untouched on error.
func (s *InventoryService) Import(ctx context.Context, path string) (int, error) {
	items, err := s.importer.Import(ctx, path)
	if err != nil {
		return 0, fmt.Errorf("import inventory: %w", err)
	}

	s.inventory.ReplaceAll(items)

	s.mu.Lock()
	s.stats.ImportCount++
	s.mu.Unlock()

	s.publish(EventInventoryImported, map[string]interface{}{"path": path, "items": len(items)})

	s.logger.Info("InventoryService", "inventory replaced from file", map[string]interface{}{
		"path":  path,
		"items": len(items),
	})
	return len(items), nil
}

// GetStats returns the session statistics
func (s *InventoryService) GetStats() InventoryStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := s.stats
	stats.ItemCount = s.inventory.Len()
	return stats
}
