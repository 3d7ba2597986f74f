package document

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-vflex/internal/layout"
)

// ValueSpec is a dimension as written in a document. It keeps the raw text so
// that parse errors can be reported with the node's path during Build.
type ValueSpec struct {
	raw string
}

// Dim returns a ValueSpec for raw, e.g. "fill", "25%" or "7".
func Dim(raw string) ValueSpec {
	return ValueSpec{raw: raw}
}

// IsSet reports whether the dimension was present in the document.
func (v ValueSpec) IsSet() bool {
	return v.raw != ""
}

func (v ValueSpec) String() string {
	return v.raw
}

// Value parses the dimension. An unset dimension is Auto.
func (v ValueSpec) Value() (layout.Value, error) {
	return ParseValue(v.raw)
}

// UnmarshalYAML accepts any scalar.
func (v *ValueSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: %w: dimension must be a scalar", node.Line, ErrInvalidStyle)
	}
	v.raw = strings.TrimSpace(node.Value)
	return nil
}

// UnmarshalTOML accepts strings, integers and floats.
func (v *ValueSpec) UnmarshalTOML(data any) error {
	switch d := data.(type) {
	case string:
		v.raw = strings.TrimSpace(d)
	case int64:
		v.raw = strconv.FormatInt(d, 10)
	case float64:
		v.raw = strconv.FormatFloat(d, 'f', -1, 64)
	default:
		return fmt.Errorf("%w: dimension must be a string or number, got %T", ErrInvalidStyle, data)
	}
	return nil
}

// ParseValue parses auto, fill, N% and N. Matching is case-insensitive and
// the empty string is auto. Absolute sizes must be non-negative integers.
// Percentages are taken as written, negative or above 100; the engine clamps
// what they resolve to.
func ParseValue(s string) (layout.Value, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "", "auto":
		return layout.Auto(), nil
	case "fill":
		return layout.Fill(), nil
	}

	if pct, ok := strings.CutSuffix(s, "%"); ok {
		p, err := strconv.ParseFloat(strings.TrimSpace(pct), 64)
		if err != nil || math.IsNaN(p) || math.IsInf(p, 0) {
			return layout.Value{}, fmt.Errorf("%w: bad percentage %q", ErrInvalidStyle, s)
		}
		return layout.Percent(p), nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return layout.Value{}, fmt.Errorf("%w: bad dimension %q (want auto, fill, N%% or N)", ErrInvalidStyle, s)
	}
	if n < 0 {
		return layout.Value{}, fmt.Errorf("%w: negative size %q", ErrInvalidStyle, s)
	}
	return layout.Absolute(n), nil
}
