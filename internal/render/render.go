package render

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/iancoleman/strcase"
	"gopkg.in/yaml.v3"

	"github.com/mcncl/safejson"
	"github.com/mcncl/safejson/internal/config"
	apperrors "github.com/mcncl/safejson/internal/errors"
)

// Renderer turns a navigated value into JSON or YAML text
type Renderer struct {
	format  string
	indent  bool
	keyCase func(string) string
}

// NewRenderer creates a Renderer for the given output format and key case
func NewRenderer(format, keyCase string, indent bool) (*Renderer, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = config.FormatJSON
	}
	if format != config.FormatJSON && format != config.FormatYAML {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownFormat, format)
	}

	convert, err := keyConverter(keyCase)
	if err != nil {
		return nil, err
	}

	return &Renderer{
		format:  format,
		indent:  indent,
		keyCase: convert,
	}, nil
}

// keyConverter maps a key case name to a strcase conversion; nil means keys stay as-is
func keyConverter(keyCase string) (func(string) string, error) {
	switch strings.ToLower(strings.TrimSpace(keyCase)) {
	case "", config.KeyCaseNone:
		return nil, nil
	case config.KeyCaseSnake:
		return strcase.ToSnake, nil
	case config.KeyCaseCamel:
		return strcase.ToCamel, nil
	case config.KeyCaseLowerCamel:
		return strcase.ToLowerCamel, nil
	case config.KeyCaseKebab:
		return strcase.ToKebab, nil
	default:
		return nil, fmt.Errorf("unknown key case '%s'", keyCase)
	}
}

// Render returns v as text in the configured format, without a trailing newline
func (r *Renderer) Render(v safejson.Value) (string, error) {
	if r.keyCase != nil {
		v = r.renameKeys(v)
	}

	switch r.format {
	case config.FormatYAML:
		return r.renderYAML(v)
	default:
		return r.renderJSON(v)
	}
}

func (r *Renderer) renderJSON(v safejson.Value) (string, error) {
	text := v.String()
	if !r.indent {
		return text, nil
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(text), "", "  "); err != nil {
		return "", fmt.Errorf("failed to indent JSON: %w", err)
	}
	return buf.String(), nil
}

func (r *Renderer) renderYAML(v safejson.Value) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(yamlNode(v)); err != nil {
		return "", fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("failed to encode YAML: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// renameKeys rebuilds containers with converted object keys. When two keys
// convert to the same name the later value wins.
func (r *Renderer) renameKeys(v safejson.Value) safejson.Value {
	if obj, ok := v.AsObject(); ok {
		renamed := safejson.NewObject()
		for _, key := range obj.Keys() {
			child, _ := obj.Get(key)
			renamed.Put(r.keyCase(key), r.renameKeys(child))
		}
		return safejson.ObjectValue(renamed)
	}
	if arr, ok := v.AsArray(); ok {
		renamed := safejson.NewArray()
		for _, item := range arr.Values() {
			renamed.Append(r.renameKeys(item))
		}
		return safejson.ArrayValue(renamed)
	}
	return v
}

// yamlNode builds an ordered node tree so object keys keep document order
func yamlNode(v safejson.Value) *yaml.Node {
	switch v.Kind() {
	case safejson.KindObject:
		obj, _ := v.AsObject()
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, key := range obj.Keys() {
			child, _ := obj.Get(key)
			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
				yamlNode(child),
			)
		}
		return node
	case safejson.KindArray:
		arr, _ := v.AsArray()
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range arr.Values() {
			node.Content = append(node.Content, yamlNode(item))
		}
		return node
	case safejson.KindString:
		s, _ := v.AsString()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
	case safejson.KindBool:
		b, _ := v.AsBool()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(b)}
	case safejson.KindInt:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: v.String()}
	case safejson.KindFloat:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: v.String()}
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}
