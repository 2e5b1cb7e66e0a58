// Package tui provides a Bubble Tea terminal user interface for browsing and
// exporting an inventory catalog.
package tui

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/inventory/internal/config"
	"github.com/handiism/inventory/internal/export"
	"github.com/handiism/inventory/internal/model"
	"github.com/handiism/inventory/internal/render"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500")).
			Bold(true)
)

// maxLogs is how many progress messages stay on screen.
const maxLogs = 10

// State represents the current UI state.
type State int

const (
	StateBrowse State = iota
	StateExportPath
	StateExporting
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   export.ProgressLevel
}

// logSink collects progress events from export goroutines.
type logSink struct {
	mu      sync.Mutex
	entries []LogEntry
}

func (s *logSink) add(event export.ProgressEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, LogEntry{Message: event.Message, Level: event.Level})
	if len(s.entries) > maxLogs {
		s.entries = s.entries[len(s.entries)-maxLogs:]
	}
}

func (s *logSink) snapshot() []LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]LogEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	settings  *config.Settings
	catalog   *model.Catalog
	items     []model.Inventory
	err       error

	// Preview
	cursor    int
	formats   []render.Format
	formatIdx int
	opts      render.Options

	// Export context
	ctx    context.Context
	cancel context.CancelFunc

	manager *export.Manager
	sink    *logSink
	logs    []LogEntry

	writtenFiles int32
	totalFiles   int32

	width  int
	height int
}

// NewModel creates a new TUI model for catalog.
//
// Only text formats from settings are offered for preview; when settings
// name none, XML and JSON are used.
func NewModel(settings *config.Settings, catalog *model.Catalog) (Model, error) {
	opts, err := settings.RenderOptions()
	if err != nil {
		return Model{}, err
	}
	formats, err := settings.ParsedFormats()
	if err != nil {
		return Model{}, err
	}

	var preview []render.Format
	for _, f := range formats {
		if !f.Binary() {
			preview = append(preview, f)
		}
	}
	if len(preview) == 0 {
		preview = []render.Format{render.FormatXML, render.FormatJSON}
	}

	ti := textinput.New()
	ti.Placeholder = settings.ExportPath
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:     StateBrowse,
		textInput: ti,
		spinner:   sp,
		progress:  prog,
		settings:  settings,
		catalog:   catalog,
		items:     catalog.Items(),
		formats:   preview,
		opts:      opts,
		ctx:       ctx,
		cancel:    cancel,
	}, nil
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Message types
type (
	// ExportDoneMsg is sent when the export finishes.
	ExportDoneMsg struct {
		Written int32
		Total   int32
		Err     error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(max(msg.Width-20, 20), 80)
		return m, nil

	case tea.KeyMsg:
		if next, cmd, handled := m.handleKey(msg); handled {
			return next, cmd
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ExportDoneMsg:
		m.writtenFiles = msg.Written
		m.totalFiles = msg.Total
		if m.sink != nil {
			m.logs = m.sink.snapshot()
		}
		switch {
		case m.ctx.Err() != nil:
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		case msg.Err != nil:
			m.state = StateError
			m.err = msg.Err
		default:
			m.state = StateComplete
		}

	case TickMsg:
		if m.manager != nil && m.state == StateExporting {
			m.writtenFiles, m.totalFiles = m.manager.Progress()
			m.logs = m.sink.snapshot()

			var percent float64
			if m.totalFiles > 0 {
				percent = float64(m.writtenFiles) / float64(m.totalFiles)
			}
			cmds = append(cmds, m.progress.SetPercent(percent), m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	// Update text input
	if m.state == StateExportPath {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleKey processes key presses. handled is false when the key should
// fall through to the text input.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	key := msg.String()

	if key == "ctrl+c" {
		m.cancel()
		return m, tea.Quit, true
	}

	switch m.state {
	case StateBrowse:
		switch key {
		case "q", "esc":
			return m, tea.Quit, true
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "tab", "f":
			m.formatIdx = (m.formatIdx + 1) % len(m.formats)
		case "e":
			m.state = StateExportPath
			m.textInput.SetValue(m.settings.ExportPath)
			m.textInput.Focus()
			return m, textinput.Blink, true
		}
		return m, nil, true

	case StateExportPath:
		switch key {
		case "esc":
			m.textInput.Blur()
			m.state = StateBrowse
			return m, nil, true
		case "enter":
			if strings.TrimSpace(m.textInput.Value()) == "" {
				return m, nil, true
			}
			next, cmd := m.beginExport()
			return next, cmd, true
		}
		return m, nil, false

	case StateExporting:
		if key == "esc" {
			m.cancel()
		}
		return m, nil, true

	case StateComplete, StateError:
		switch key {
		case "q", "esc":
			return m, tea.Quit, true
		case "r":
			m.state = StateBrowse
			m.err = nil
			m.logs = nil
			m.manager = nil
			m.sink = nil
			m.writtenFiles, m.totalFiles = 0, 0
			m.ctx, m.cancel = context.WithCancel(context.Background())
		}
		return m, nil, true
	}

	return m, nil, false
}

// beginExport creates the manager and starts the export in the background.
func (m Model) beginExport() (Model, tea.Cmd) {
	settings := *m.settings
	settings.ExportPath = strings.TrimSpace(m.textInput.Value())

	sink := &logSink{}
	manager, err := export.NewManager(&settings, sink.add)
	if err != nil {
		m.state = StateError
		m.err = err
		return m, nil
	}

	m.textInput.Blur()
	m.manager = manager
	m.sink = sink
	m.state = StateExporting

	return m, tea.Batch(m.startExport(), m.tickProgress(), m.spinner.Tick)
}

// startExport runs the export and reports the result.
func (m Model) startExport() tea.Cmd {
	ctx, manager, catalog := m.ctx, m.manager, m.catalog
	return func() tea.Msg {
		err := manager.Export(ctx, catalog)
		written, total := manager.Progress()
		return ExportDoneMsg{Written: written, Total: total, Err: err}
	}
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("Inventory"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d item(s)", len(m.items))))
	b.WriteString("\n\n")

	switch m.state {
	case StateBrowse:
		b.WriteString(m.viewBrowse())
	case StateExportPath:
		b.WriteString(m.viewExportPath())
	case StateExporting:
		b.WriteString(m.viewExporting())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewBrowse() string {
	var b strings.Builder

	for i, item := range m.items {
		kind, name := model.Describe(item)
		line := fmt.Sprintf("%-9s %s", kind, name)
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("› " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(m.items) == 0 {
		b.WriteString(warningStyle.Render("Catalog is empty"))
		b.WriteString("\n")
		return b.String()
	}

	format := m.formats[m.formatIdx]
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("Preview (%s):", format)))
	b.WriteString("\n")
	b.WriteString(boxStyle.Render(m.preview(format)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) preview(format render.Format) string {
	out, err := render.Render(m.items[m.cursor], format, m.opts)
	if err != nil {
		return errorStyle.Render(err.Error())
	}
	return strings.TrimSuffix(string(out), "\n")
}

func (m Model) viewExportPath() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Export directory:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("Formats: %s", strings.Join(m.settings.Formats, ", "))))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewExporting() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("Exporting to %s...", m.manager.Dir())))
	b.WriteString("\n\n")

	var percent float64
	if m.totalFiles > 0 {
		percent = float64(m.writtenFiles) / float64(m.totalFiles)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("Files: %d/%d", m.writtenFiles, m.totalFiles)))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	b.WriteString(boxStyle.Render(fmt.Sprintf(
		"Export complete!\n\nItems: %d\nFiles: %d\nDirectory: %s",
		len(m.items),
		m.writtenFiles,
		m.manager.Dir(),
	)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
		b.WriteString("\n\n")
	}
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case export.LevelError:
			style = errorStyle
			prefix = "✗"
		case export.LevelWarning:
			style = warningStyle
			prefix = "!"
		case export.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case export.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateBrowse:
		return "↑/↓: select • tab: format • e: export • q: quit"
	case StateExportPath:
		return "enter: start • esc: back"
	case StateExporting:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: back to catalog • q: quit"
	}
	return ""
}

// Run starts the TUI application.
func Run(settings *config.Settings, catalog *model.Catalog) error {
	m, err := NewModel(settings, catalog)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
