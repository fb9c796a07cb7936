package fortune

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type catalogFile struct {
	Questions []Question `yaml:"questions"`
}

// DefaultCatalog returns the built-in six-question catalog.
func DefaultCatalog() Catalog {
	c, err := ParseCatalog(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("fortune: embedded catalog: %v", err))
	}
	return c
}

// LoadCatalog reads a catalog from path, or returns the built-in one when
// path is empty.
func LoadCatalog(path string) (Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes and validates a YAML catalog document.
func ParseCatalog(data []byte) (Catalog, error) {
	var file catalogFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	catalog := make(Catalog, 0, len(file.Questions))
	var errs []error
	for i, q := range file.Questions {
		q.Prompt = strings.TrimSpace(q.Prompt)
		if q.Kind == "" {
			q.Kind = KindChoice
		}
		if err := validateQuestion(q); err != nil {
			errs = append(errs, fmt.Errorf("question %d: %w", i+1, err))
			continue
		}
		catalog = append(catalog, q)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	if len(catalog) == 0 {
		return nil, errors.New("catalog has no questions")
	}
	return catalog, nil
}

func validateQuestion(q Question) error {
	if q.Prompt == "" {
		return errors.New("prompt is required")
	}
	switch q.Kind {
	case KindChoice:
		if len(q.Options) == 0 {
			return errors.New("choice question needs at least one option")
		}
		for _, opt := range q.Options {
			if strings.TrimSpace(opt) == "" {
				return errors.New("options must not be blank")
			}
		}
	case KindColor:
		if len(q.Options) != 0 {
			return errors.New("color question must not list options")
		}
	default:
		return fmt.Errorf("unknown kind %q", q.Kind)
	}
	return nil
}
