package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
	"k8s.io/klog/v2"
)

// Format is a document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatOf picks a format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q (want .yaml, .yml or .toml)", ErrUnknownFormat, filepath.Base(path))
	}
}

// Load reads and decodes a document, choosing the format by extension.
func Load(path string) (*Document, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	doc, err := Decode(format, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	klog.V(2).InfoS("loaded document", "path", path, "format", format)
	return doc, nil
}

// Decode decodes data in the given format.
func Decode(format Format, data []byte) (*Document, error) {
	switch format {
	case FormatYAML:
		return DecodeYAML(data)
	case FormatTOML:
		return DecodeTOML(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// DecodeYAML decodes a YAML document. Unknown keys are rejected.
func DecodeYAML(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidNode)
		}
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	return &doc, nil
}

// DecodeTOML decodes a TOML document. Unknown keys are rejected.
func DecodeTOML(data []byte) (*Document, error) {
	var doc Document
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse toml: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("failed to parse toml: unknown keys %s", strings.Join(keys, ", "))
	}
	return &doc, nil
}
