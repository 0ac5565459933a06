// Package export renders resolved configuration views as JSON, YAML, or
// Markdown and writes them to disk.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"go.ccview.dev/ccview/internal/core/domain"
	"go.ccview.dev/ccview/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Exporter implements ports.Exporter.
type Exporter struct {
	Logger ports.Logger

	// now is swappable for tests.
	now func() time.Time
}

var _ ports.Exporter = (*Exporter)(nil)

// NewExporter creates a new exporter.
func NewExporter(logger ports.Logger) *Exporter {
	return &Exporter{
		Logger: logger,
		now:    time.Now,
	}
}

// document is the serialized shape of a resolved view. It exists so JSON
// and YAML output carry the same field names regardless of encoder
// defaults.
type document struct {
	Inherited       []classifiedEntry       `json:"inherited" yaml:"inherited"`
	Overridden      []classifiedEntry       `json:"overridden" yaml:"overridden"`
	ProjectSpecific []classifiedEntry       `json:"projectSpecific" yaml:"projectSpecific"`
	Chain           []chainEntry            `json:"chain" yaml:"chain"`
	Resolved        map[string]domain.Value `json:"resolved" yaml:"resolved"`
}

type classifiedEntry struct {
	Key           string       `json:"key" yaml:"key"`
	Value         domain.Value `json:"value" yaml:"value"`
	OriginalValue domain.Value `json:"originalValue,omitempty" yaml:"originalValue,omitempty"`
}

type chainEntry struct {
	Key   string       `json:"key" yaml:"key"`
	Value domain.Value `json:"value" yaml:"value"`
	Scope string       `json:"scope,omitempty" yaml:"scope,omitempty"`
	Path  string       `json:"path,omitempty" yaml:"path,omitempty"`
}

func buildDocument(view *domain.ResolvedView) document {
	doc := document{
		Inherited:       convertClassified(view.Classification.Inherited),
		Overridden:      convertClassified(view.Classification.Overridden),
		ProjectSpecific: convertClassified(view.Classification.ProjectSpecific),
	}
	if view.Chain != nil {
		doc.Resolved = view.Chain.Resolved
		doc.Chain = make([]chainEntry, 0, len(view.Chain.Entries))
		for _, entry := range view.Chain.Entries {
			ce := chainEntry{Key: entry.Key, Value: entry.Value}
			if entry.Source != nil {
				ce.Scope = string(entry.Source.Type)
				ce.Path = entry.Source.Path
			}
			doc.Chain = append(doc.Chain, ce)
		}
	}
	return doc
}

func convertClassified(entries []domain.ClassifiedEntry) []classifiedEntry {
	out := make([]classifiedEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, classifiedEntry{
			Key:           e.Key,
			Value:         e.Value,
			OriginalValue: e.OriginalValue,
		})
	}
	return out
}

// Render serializes the view in the given format.
func (e *Exporter) Render(view *domain.ResolvedView, format ports.ExportFormat) ([]byte, error) {
	if view == nil {
		return nil, domain.ErrEmptyExportContent
	}

	doc := buildDocument(view)

	switch format {
	case ports.FormatJSON:
		content, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, zerr.Wrap(err, "failed to serialize view as JSON")
		}
		return append(content, '\n'), nil

	case ports.FormatYAML:
		content, err := yaml.Marshal(doc)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to serialize view as YAML")
		}
		return content, nil

	case ports.FormatMarkdown:
		return renderMarkdown(doc), nil

	default:
		return nil, zerr.With(domain.ErrUnsupportedExportFormat, "format", string(format))
	}
}

// Export renders the view and writes it to path.
func (e *Exporter) Export(view *domain.ResolvedView, format ports.ExportFormat, path string) (ports.ExportResult, error) {
	start := e.now()

	if path == "" {
		return ports.ExportResult{}, domain.ErrEmptyExportFilename
	}

	content, err := e.Render(view, format)
	if err != nil {
		return ports.ExportResult{}, err
	}
	if len(content) == 0 {
		return ports.ExportResult{}, domain.ErrEmptyExportContent
	}

	if err := os.WriteFile(path, content, 0o644); err != nil {
		writeErr := zerr.Wrap(err, domain.ErrExportWriteFailed.Error())
		return ports.ExportResult{}, zerr.With(writeErr, "path", path)
	}

	result := ports.ExportResult{
		Path: path,
		Stats: ports.ExportStats{
			RecordCount: recordCount(view),
			FileSize:    int64(len(content)),
			Duration:    e.now().Sub(start),
		},
	}

	if e.Logger != nil {
		e.Logger.Info(fmt.Sprintf("exported %d records to %s (%d bytes)",
			result.Stats.RecordCount, path, result.Stats.FileSize))
	}
	return result, nil
}

// recordCount is the number of classified keys in the view.
func recordCount(view *domain.ResolvedView) int {
	c := view.Classification
	return len(c.Inherited) + len(c.Overridden) + len(c.ProjectSpecific)
}

func renderMarkdown(doc document) []byte {
	var b strings.Builder

	b.WriteString("# Configuration Resolution Report\n\n")

	writeClassifiedSection(&b, "Inherited", doc.Inherited)
	writeClassifiedSection(&b, "Overridden", doc.Overridden)
	writeClassifiedSection(&b, "Project-Specific", doc.ProjectSpecific)

	b.WriteString("## Resolved Values\n\n")
	if len(doc.Resolved) == 0 {
		b.WriteString("_No resolved values._\n")
		return []byte(b.String())
	}

	b.WriteString("| Key | Value |\n")
	b.WriteString("| --- | --- |\n")
	keys := make([]string, 0, len(doc.Resolved))
	for k := range doc.Resolved {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "| `%s` | `%s` |\n", k, formatValue(doc.Resolved[k]))
	}
	return []byte(b.String())
}

func writeClassifiedSection(b *strings.Builder, title string, entries []classifiedEntry) {
	fmt.Fprintf(b, "## %s (%d)\n\n", title, len(entries))
	if len(entries) == 0 {
		b.WriteString("_None._\n\n")
		return
	}
	for _, entry := range entries {
		fmt.Fprintf(b, "- `%s`: `%s`", entry.Key, formatValue(entry.Value))
		if entry.OriginalValue != nil {
			fmt.Fprintf(b, " (was `%s`)", formatValue(entry.OriginalValue))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

// formatValue renders a JSON value compactly for Markdown cells. Marshal
// cannot fail for values decoded from JSON in the first place.
func formatValue(v domain.Value) string {
	content, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(content)
}
