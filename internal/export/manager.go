package export

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/handiism/inventory/internal/config"
	ioutils "github.com/handiism/inventory/internal/io"
	"github.com/handiism/inventory/internal/model"
	"github.com/handiism/inventory/internal/render"
	"golang.org/x/sync/errgroup"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents an export progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Manager coordinates catalog exports.
type Manager struct {
	dir            string
	fileNameFormat string
	limit          int
	formats        []render.Format
	opts           render.Options

	totalFiles   int32
	writtenFiles int32

	onProgress func(ProgressEvent)

	mu       sync.Mutex
	firstErr error
}

// NewManager creates a new export Manager from settings.
//
// onProgress may be nil. It is called from several goroutines at once during
// Export and must be safe for concurrent use.
//
// Returns an error if the settings name an unknown format or JSON style.
func NewManager(settings *config.Settings, onProgress func(ProgressEvent)) (*Manager, error) {
	formats, err := settings.ParsedFormats()
	if err != nil {
		return nil, err
	}
	opts, err := settings.RenderOptions()
	if err != nil {
		return nil, err
	}

	limit := settings.MaxConcurrentExports
	if limit < 1 {
		limit = 1
	}

	return &Manager{
		dir:            settings.ExportPath,
		fileNameFormat: settings.FileNameFormat,
		limit:          limit,
		formats:        formats,
		opts:           opts,
		onProgress:     onProgress,
	}, nil
}

// Export writes every item of catalog in every format into the export
// directory.
//
// All items are attempted. The first failure recorded, if any, is returned
// after the rest have finished.
func (m *Manager) Export(ctx context.Context, catalog *model.Catalog) error {
	if err := ioutils.EnsureDir(m.dir); err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error creating directory: %v", err), Level: LevelError})
		return err
	}

	items := catalog.Items()
	atomic.StoreInt32(&m.totalFiles, int32(len(items)*len(m.formats)))
	atomic.StoreInt32(&m.writtenFiles, 0)
	m.mu.Lock()
	m.firstErr = nil
	m.mu.Unlock()

	m.progress(ProgressEvent{Message: fmt.Sprintf("Exporting %d item(s) to %s", len(items), m.dir), Level: LevelInfo})

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.limit)

	for i, item := range items {
		item := item
		num := i + 1
		g.Go(func() error {
			if err := m.exportItem(ctx, num, item); err != nil {
				m.progress(ProgressEvent{Message: fmt.Sprintf("Error exporting item %d: %v", num, err), Level: LevelError})
				m.recordErr(err)
			}
			return nil // Continue with other items
		})
	}
	_ = g.Wait()

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.firstErr
}

// Progress returns the number of files written and expected so far.
func (m *Manager) Progress() (written, total int32) {
	return atomic.LoadInt32(&m.writtenFiles), atomic.LoadInt32(&m.totalFiles)
}

// Dir returns the export directory.
func (m *Manager) Dir() string {
	return m.dir
}

func (m *Manager) exportItem(ctx context.Context, num int, item model.Inventory) error {
	kind, name := model.Describe(item)
	base := m.fileName(num, kind, name)

	for _, f := range m.formats {
		data, err := render.Render(item, f, m.opts)
		if err != nil {
			return err
		}

		path := filepath.Join(m.dir, base+f.Extension())
		if err := ioutils.WriteFile(ctx, path, data); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}

		atomic.AddInt32(&m.writtenFiles, 1)
		m.progress(ProgressEvent{Message: fmt.Sprintf("Wrote: %s", filepath.Base(path)), Level: LevelVerbose})
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Exported %s %q", kind, name), Level: LevelSuccess})
	return nil
}

// fileName computes the base file name (without extension) for an item.
//
// Placeholders: {num} (2 digits, zero-padded), {name}, {kind}.
func (m *Manager) fileName(num int, kind model.Kind, name string) string {
	fileName := m.fileNameFormat
	fileName = strings.ReplaceAll(fileName, "{num}", fmt.Sprintf("%02d", num))
	fileName = strings.ReplaceAll(fileName, "{kind}", string(kind))
	fileName = strings.ReplaceAll(fileName, "{name}", name)
	fileName = ioutils.SanitizeFileName(fileName)

	if fileName == "" {
		fileName = fmt.Sprintf("%02d", num)
	}
	return fileName
}

func (m *Manager) recordErr(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.firstErr == nil {
		m.firstErr = err
	}
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
