package yaml

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/0xalexb/hjarta-cfg/tree"

	"github.com/goccy/go-yaml"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrNotMapping is returned when the top level of a YAML document is not a mapping.
var ErrNotMapping = errors.New("document is not a mapping")

// Parser implements config.Parser and config.Decoder for YAML data.
type Parser struct {
	strict bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithStrict makes Decode reject mapping keys that have no matching struct field. With
// DecodeView only the section's own keys are checked; inherited keys may be unknown.
func WithStrict() Option {
	return func(p *Parser) {
		p.strict = true
	}
}

// NewParser creates a new YAML parser instance.
func NewParser(opts ...Option) *Parser {
	parser := &Parser{strict: false}

	for _, apply := range opts {
		apply(parser)
	}

	return parser
}

// Parse parses a YAML document into a nested mapping. A document holding only comments or
// null yields an empty mapping.
func (p *Parser) Parse(data []byte) (map[string]any, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	var document any

	err := yaml.Unmarshal(data, &document)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	switch top := document.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return top, nil
	default:
		return nil, fmt.Errorf("%w: got %T", ErrNotMapping, document)
	}
}

// Decode decodes values into target by round-tripping through YAML, so target fields are
// matched with `yaml:"..."` struct tags.
func (p *Parser) Decode(values map[string]any, target any) error {
	return decode(values, target, p.strict)
}

// DecodeView decodes everything view sees into target. In strict mode the base node's own
// keys must all match struct fields, while inherited values only fill the fields that
// exist, since enclosing sections hold settings meant for other consumers.
func (p *Parser) DecodeView(view *tree.View, target any) error {
	if p.strict {
		targetType := reflect.TypeOf(target)
		if targetType == nil || targetType.Kind() != reflect.Pointer {
			return fmt.Errorf("unmarshal error: target must be a pointer, got %T", target)
		}

		check := reflect.New(targetType.Elem()).Interface()

		err := decode(view.BaseMap(), check, true)
		if err != nil {
			return err
		}
	}

	return decode(view.Map(), target, false)
}

func decode(values map[string]any, target any, strict bool) error {
	data, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	var opts []yaml.DecodeOption
	if strict {
		opts = append(opts, yaml.DisallowUnknownField())
	}

	err = yaml.UnmarshalWithOptions(data, target, opts...)
	if err != nil {
		return fmt.Errorf("unmarshal error: %w", err)
	}

	return nil
}
