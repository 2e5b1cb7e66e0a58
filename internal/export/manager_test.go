package export

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/handiism/inventory/internal/config"
	"github.com/handiism/inventory/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSettings(t *testing.T, formats ...string) *config.Settings {
	t.Helper()
	s := config.DefaultSettings()
	s.ExportPath = filepath.Join(t.TempDir(), "out")
	s.Formats = formats
	return s
}

type eventLog struct {
	mu     sync.Mutex
	events []ProgressEvent
}

func (l *eventLog) add(e ProgressEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, e)
}

func (l *eventLog) count(level ProgressLevel) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, e := range l.events {
		if e.Level == level {
			n++
		}
	}
	return n
}

func TestManager_ExportWritesOneFilePerItemAndFormat(t *testing.T) {
	s := testSettings(t, "xml", "json", "id3")
	log := &eventLog{}

	m, err := NewManager(s, log.add)
	require.NoError(t, err)
	require.NoError(t, m.Export(context.Background(), model.SampleCatalog()))

	entries, err := os.ReadDir(s.ExportPath)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)

	assert.Equal(t, []string{
		"01 Design Patterns_ Elements of Reusable Object-Oriented Software.id3",
		"01 Design Patterns_ Elements of Reusable Object-Oriented Software.json",
		"01 Design Patterns_ Elements of Reusable Object-Oriented Software.xml",
		"02 Complete Clapton.id3",
		"02 Complete Clapton.json",
		"02 Complete Clapton.xml",
	}, names)

	written, total := m.Progress()
	assert.Equal(t, int32(6), written)
	assert.Equal(t, int32(6), total)
	assert.Equal(t, 2, log.count(LevelSuccess))
	assert.Equal(t, 6, log.count(LevelVerbose))
}

func TestManager_ExportContent(t *testing.T) {
	s := testSettings(t, "json")
	s.FileNameFormat = "{kind}-{num}"

	m, err := NewManager(s, nil)
	require.NoError(t, err)
	require.NoError(t, m.Export(context.Background(), model.SampleCatalog()))

	data, err := os.ReadFile(filepath.Join(s.ExportPath, "audio_cd-02.json"))
	require.NoError(t, err)
	assert.Equal(t, `{"audio_cd": {"name": "Complete Clapton", "artist": "Eric Clapton", "disks": 2}}`+"\n", string(data))
}

func TestManager_ItemFailureDoesNotStopOthers(t *testing.T) {
	s := testSettings(t, "xml")
	s.MaxConcurrentExports = 1
	require.NoError(t, os.MkdirAll(filepath.Join(s.ExportPath, "01 Dune.xml"), 0755))
	log := &eventLog{}

	m, err := NewManager(s, log.add)
	require.NoError(t, err)

	catalog := model.NewCatalog(
		model.NewBook("Dune", "Frank Herbert", 412),
		model.NewAudioCD("Blue", "Joni Mitchell", 1),
	)
	err = m.Export(context.Background(), catalog)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "01 Dune.xml")

	_, statErr := os.Stat(filepath.Join(s.ExportPath, "02 Blue.xml"))
	assert.NoError(t, statErr)
	assert.Equal(t, 1, log.count(LevelError))
}

func TestManager_ExportPathIsFile(t *testing.T) {
	s := testSettings(t, "xml")
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(s.ExportPath), "out"), []byte("x"), 0644))

	m, err := NewManager(s, nil)
	require.NoError(t, err)
	assert.Error(t, m.Export(context.Background(), model.SampleCatalog()))
}

func TestManager_CancelledContext(t *testing.T) {
	s := testSettings(t, "xml")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m, err := NewManager(s, nil)
	require.NoError(t, err)
	assert.ErrorIs(t, m.Export(ctx, model.SampleCatalog()), context.Canceled)
}

func TestNewManager_InvalidSettings(t *testing.T) {
	_, err := NewManager(testSettings(t, "csv"), nil)
	assert.Error(t, err)

	s := testSettings(t, "json")
	s.JSONStyle = "pretty"
	_, err = NewManager(s, nil)
	assert.Error(t, err)
}

func TestManager_FileName(t *testing.T) {
	tests := []struct {
		format string
		num    int
		kind   model.Kind
		name   string
		want   string
	}{
		{"{num} {name}", 1, model.KindBook, "Dune", "01 Dune"},
		{"{kind}_{name}", 3, model.KindAudioCD, "AC/DC: Live", "audio_cd_AC_DC_ Live"},
		{"{name}", 7, model.KindBook, "", "07"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			m := &Manager{fileNameFormat: tt.format}
			assert.Equal(t, tt.want, m.fileName(tt.num, tt.kind, tt.name))
		})
	}
}
