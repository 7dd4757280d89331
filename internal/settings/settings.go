// Package settings supplies the engine's runtime settings from an
// external source, refreshed at the start of every cycle.
package settings

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"mltrading-systemv1/internal/model"
)

// Source loads the current engine settings.
type Source interface {
	Load(ctx context.Context) (model.EngineSettings, error)
}

// Static serves a fixed settings value. Used for tests and for running
// without a settings file.
type Static struct {
	mu       sync.RWMutex
	settings model.EngineSettings
}

// NewStatic creates a static source, normalizing the given settings.
func NewStatic(s model.EngineSettings) *Static {
	return &Static{settings: s.Normalize()}
}

func (s *Static) Load(context.Context) (model.EngineSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings, nil
}

// Set replaces the served settings.
func (s *Static) Set(settings model.EngineSettings) {
	s.mu.Lock()
	s.settings = settings.Normalize()
	s.mu.Unlock()
}

// FileSource reads settings from a YAML file. The parsed value is cached
// against the file's mtime so per-cycle refreshes stay cheap.
type FileSource struct {
	path string

	mu      sync.Mutex
	modTime time.Time
	cached  model.EngineSettings
	loaded  bool
}

// NewFileSource creates a file-backed source. The file is read lazily on
// the first Load.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (f *FileSource) Load(context.Context) (model.EngineSettings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	info, err := os.Stat(f.path)
	if err != nil {
		return model.EngineSettings{}, fmt.Errorf("settings: stat %s: %w", f.path, err)
	}
	if f.loaded && info.ModTime().Equal(f.modTime) {
		return f.cached, nil
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return model.EngineSettings{}, fmt.Errorf("settings: read %s: %w", f.path, err)
	}

	s := model.DefaultSettings()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return model.EngineSettings{}, fmt.Errorf("settings: parse %s: %w", f.path, err)
	}

	f.cached = s.Normalize()
	f.modTime = info.ModTime()
	f.loaded = true
	return f.cached, nil
}
