package extractors

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/sevigo/textkit/schema"
)

// ErrExtractorNotFound is returned when no extractor handles a format.
var ErrExtractorNotFound = errors.New("format extractor not found")

// registry implements the ExtractorRegistry interface
type registry struct {
	plugins    map[string]schema.ExtractorPlugin // Map of format name to plugin
	extensions map[string]schema.ExtractorPlugin // Map of file extension to plugin
	logger     *slog.Logger
	mu         sync.RWMutex
}

// NewRegistry creates a new format extractor registry
func NewRegistry(logger *slog.Logger) ExtractorRegistry {
	return &registry{
		plugins:    make(map[string]schema.ExtractorPlugin),
		extensions: make(map[string]schema.ExtractorPlugin),
		logger:     logger,
	}
}

// RegisterExtractor adds a format extractor to the registry
func (r *registry) RegisterExtractor(plugin schema.ExtractorPlugin) error {
	if plugin == nil {
		return errors.New("cannot register nil plugin")
	}

	name := plugin.Name()
	if name == "" {
		return errors.New("plugin must have a non-empty name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.plugins[name]; exists {
		return fmt.Errorf("plugin with name %q already registered", name)
	}

	r.plugins[name] = plugin

	for _, ext := range plugin.Extensions() {
		if ext == "" {
			continue
		}
		if ext[0] != '.' {
			ext = "." + ext
		}
		r.extensions[ext] = plugin
	}

	r.logger.Info("Registered format extractor", "format", name, "extensions", plugin.Extensions())
	return nil
}

// GetExtractor retrieves a plugin by format name
func (r *registry) GetExtractor(format string) (schema.ExtractorPlugin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	plugin, ok := r.plugins[format]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrExtractorNotFound, format)
	}
	return plugin, nil
}

// GetExtractorForFile returns the appropriate plugin for a file
func (r *registry) GetExtractorForFile(path string, info fs.FileInfo) (schema.ExtractorPlugin, error) {
	ext := filepath.Ext(path)
	if ext != "" {
		plugin, err := r.GetExtractorForExtension(ext)
		if err == nil {
			return plugin, nil
		}
	}

	// No extension match; fall back to each plugin's own CanHandle check.
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, plugin := range r.plugins {
		if plugin.CanHandle(path, info) {
			return plugin, nil
		}
	}

	return nil, fmt.Errorf("%w for file %s", ErrExtractorNotFound, path)
}

// GetExtractorForExtension returns a plugin for a file extension
func (r *registry) GetExtractorForExtension(ext string) (schema.ExtractorPlugin, error) {
	if ext == "" {
		return nil, fmt.Errorf("%w: empty extension", ErrExtractorNotFound)
	}

	if ext[0] != '.' {
		ext = "." + ext
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	plugin, ok := r.extensions[ext]
	if !ok {
		return nil, fmt.Errorf("%w for extension %s", ErrExtractorNotFound, ext)
	}

	return plugin, nil
}

// GetAllExtractors returns all registered plugins
func (r *registry) GetAllExtractors() []schema.ExtractorPlugin {
	r.mu.RLock()
	defer r.mu.RUnlock()

	plugins := make([]schema.ExtractorPlugin, 0, len(r.plugins))
	for _, plugin := range r.plugins {
		plugins = append(plugins, plugin)
	}

	return plugins
}
