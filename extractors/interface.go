package extractors

import (
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/sevigo/textkit/extractors/markdown"
	"github.com/sevigo/textkit/extractors/pdf"
	"github.com/sevigo/textkit/extractors/plaintext"
	"github.com/sevigo/textkit/schema"
)

// ExtractorRegistry tracks registered format extractors.
type ExtractorRegistry interface {
	RegisterExtractor(plugin schema.ExtractorPlugin) error
	GetExtractor(format string) (schema.ExtractorPlugin, error)
	GetExtractorForFile(path string, info fs.FileInfo) (schema.ExtractorPlugin, error)
	GetExtractorForExtension(ext string) (schema.ExtractorPlugin, error)
	GetAllExtractors() []schema.ExtractorPlugin
}

// RegisterExtractors initializes a registry populated with the built-in
// format extractors.
func RegisterExtractors(logger *slog.Logger) (ExtractorRegistry, error) {
	registry := NewRegistry(logger)

	pluginFactories := map[string]func(*slog.Logger) schema.ExtractorPlugin{
		"text":     plaintext.NewTextPlugin,
		"markdown": markdown.NewMarkdownPlugin,
		"pdf":      pdf.NewPDFPlugin,
	}

	for name, factory := range pluginFactories {
		plugin := factory(logger.With("extractor", name))
		if err := registry.RegisterExtractor(plugin); err != nil {
			return registry, fmt.Errorf("failed to register extractor %s: %w", name, err)
		}
	}

	logger.Info("Format extractors registered", "count", len(registry.GetAllExtractors()))
	return registry, nil
}
