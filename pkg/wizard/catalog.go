package wizard

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-brandsocial/pkg/brand"
)

//go:embed catalog/*.yaml
var embeddedCatalog embed.FS

const defaultCatalogPath = "catalog/steps.yaml"

type catalogDocument struct {
	Steps []Step `yaml:"steps"`
}

// DefaultSteps returns the built-in five step catalogue. It panics only if the
// embedded file is broken, which tests guard against.
func DefaultSteps() []Step {
	steps, err := LoadCatalog(embeddedCatalog, defaultCatalogPath)
	if err != nil {
		panic(err)
	}
	return steps
}

// CatalogFS exposes the embedded catalogue so callers can copy and edit it.
func CatalogFS() fs.FS {
	return embeddedCatalog
}

// LoadCatalog reads a YAML step catalogue from fsys.
func LoadCatalog(fsys fs.FS, path string) ([]Step, error) {
	if fsys == nil {
		return nil, errors.New("wizard: catalogue filesystem is nil")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("wizard: read %s: %w", path, err)
	}
	return ParseCatalog(data, path)
}

// ParseCatalog decodes and checks a YAML step catalogue. The name is only used
// in error messages.
func ParseCatalog(data []byte, name string) ([]Step, error) {
	var doc catalogDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("wizard: parse %s: %w", name, err)
	}
	steps, err := normaliseSteps(doc.Steps, name)
	if err != nil {
		return nil, err
	}
	return steps, nil
}

func normaliseSteps(raw []Step, name string) ([]Step, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("wizard: file %s defines no steps", name)
	}
	seen := make(map[string]struct{}, len(raw))
	out := make([]Step, 0, len(raw))
	for i, step := range raw {
		step.ID = strings.TrimSpace(step.ID)
		if step.ID == "" {
			return nil, fmt.Errorf("wizard: file %s step %d has an empty id", name, i)
		}
		if _, dup := seen[step.ID]; dup {
			return nil, fmt.Errorf("wizard: duplicate step %q (file %s)", step.ID, name)
		}
		seen[step.ID] = struct{}{}

		fields := make([]FieldSpec, 0, len(step.Fields))
		for _, spec := range step.Fields {
			field, err := brand.ParseField(string(spec.Path))
			if err != nil {
				return nil, fmt.Errorf("wizard: step %q: %w", step.ID, err)
			}
			spec.Path = field
			if spec.Control == "" {
				spec.Control = ControlInput
			}
			if err := checkControl(spec); err != nil {
				return nil, fmt.Errorf("wizard: step %q: %w", step.ID, err)
			}
			fields = append(fields, spec)
		}
		step.Fields = fields
		out = append(out, step)
	}
	return out, nil
}

func checkControl(spec FieldSpec) error {
	switch spec.Control {
	case ControlInput, ControlTextArea:
		if spec.Path.IsList() {
			return fmt.Errorf("field %q is a list and needs control %q", spec.Path, ControlList)
		}
	case ControlList:
		if !spec.Path.IsList() {
			return fmt.Errorf("field %q is not a list", spec.Path)
		}
	default:
		return fmt.Errorf("field %q has unknown control %q", spec.Path, spec.Control)
	}
	return nil
}
