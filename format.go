package pathier

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a structured text format Load and Dump know how to handle.
type Format int

const (
	FormatUnknown Format = iota
	FormatJSON
	FormatTOML
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// FormatOf maps a file extension (with its dot) to a Format. Matching is
// case-sensitive.
func FormatOf(ext string) (Format, error) {
	switch ext {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return FormatUnknown, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Format returns the structured format implied by p's extension.
func (p *Path) Format() (Format, error) {
	f, err := FormatOf(p.Ext())
	if err != nil {
		return f, fmt.Errorf("%s: %w", p, err)
	}
	return f, nil
}

// Load parses p according to its extension into plain values: maps become
// map[string]any, arrays []any, and scalars their natural Go type.
func (p *Path) Load(opts ...Option) (any, error) {
	format, data, err := p.readStructured(opts)
	if err != nil {
		return nil, err
	}

	var v any
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &v)
	case FormatTOML:
		var m map[string]any
		err = toml.Unmarshal(data, &m)
		v = m
	case FormatYAML:
		err = yaml.Unmarshal(data, &v)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s as %s: %w", p, format, err)
	}
	return v, nil
}

// LoadInto parses p according to its extension into v, which must be a pointer.
func (p *Path) LoadInto(v any, opts ...Option) error {
	format, data, err := p.readStructured(opts)
	if err != nil {
		return err
	}

	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, v)
	case FormatTOML:
		err = toml.Unmarshal(data, v)
	case FormatYAML:
		err = yaml.Unmarshal(data, v)
	}
	if err != nil {
		return fmt.Errorf("failed to parse %s as %s: %w", p, format, err)
	}
	return nil
}

func (p *Path) readStructured(opts []Option) (Format, []byte, error) {
	format, err := p.Format()
	if err != nil {
		return format, nil, err
	}

	text, err := p.ReadText(opts...)
	if err != nil {
		return format, nil, err
	}
	return format, []byte(text), nil
}

// Dump serialises v according to p's extension and writes it with WriteText,
// so missing parents are created unless NoParents is given. SortKeys orders
// keys and struct fields; Indent applies to JSON only.
func (p *Path) Dump(v any, opts ...Option) error {
	format, err := p.Format()
	if err != nil {
		return err
	}

	data, err := marshal(format, v, buildOptions(opts))
	if err != nil {
		return fmt.Errorf("failed to encode %s as %s: %w", p, format, err)
	}
	return p.WriteText(string(data), opts...)
}

func marshal(format Format, v any, o options) ([]byte, error) {
	switch format {
	case FormatJSON:
		return marshalJSON(v, o)
	case FormatTOML:
		return marshalTOML(v, o)
	case FormatYAML:
		return marshalYAML(v, o)
	default:
		return nil, ErrUnsupportedFormat
	}
}

func marshalJSON(v any, o options) ([]byte, error) {
	if o.sortKeys {
		// Maps already encode sorted; a generic round-trip sorts struct fields too.
		b, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		dec := json.NewDecoder(bytes.NewReader(b))
		dec.UseNumber()
		var generic any
		if err := dec.Decode(&generic); err != nil {
			return nil, err
		}
		v = generic
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if o.indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", o.indent))
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func marshalTOML(v any, o options) ([]byte, error) {
	if !isTable(v) {
		return nil, fmt.Errorf("%w, got %T", errTOMLNeedsTable, v)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	if !o.sortKeys {
		return buf.Bytes(), nil
	}

	var generic map[string]any
	if err := toml.Unmarshal(buf.Bytes(), &generic); err != nil {
		return nil, err
	}
	buf.Reset()
	if err := toml.NewEncoder(&buf).Encode(generic); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var errTOMLNeedsTable = errors.New("TOML requires a table at the top level")

// isTable reports whether v encodes as a TOML table: a map or a struct,
// possibly behind pointers or interfaces.
func isTable(v any) bool {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	return rv.Kind() == reflect.Map || rv.Kind() == reflect.Struct
}

func marshalYAML(v any, o options) ([]byte, error) {
	if o.sortKeys {
		b, err := yaml.Marshal(v)
		if err != nil {
			return nil, err
		}
		var generic any
		if err := yaml.Unmarshal(b, &generic); err != nil {
			return nil, err
		}
		v = generic
	}
	return yaml.Marshal(v)
}
