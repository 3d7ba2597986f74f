package document

import (
	"fmt"
	"strings"

	"github.com/grindlemire/go-vflex/internal/layout"
)

// Document is a virtual-node tree with an optional viewport.
type Document struct {
	Viewport *SizeSpec `yaml:"viewport" toml:"viewport"`
	Root     NodeSpec  `yaml:"root" toml:"root"`
}

// SizeSpec is a viewport size in cells.
type SizeSpec struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// NodeSpec describes one node. A node with Text set is a text leaf, a node
// with Empty set is an empty leaf, and anything else is an element.
type NodeSpec struct {
	ID         string            `yaml:"id" toml:"id"`
	Tag        string            `yaml:"tag" toml:"tag"`
	Text       *string           `yaml:"text" toml:"text"`
	Empty      bool              `yaml:"empty" toml:"empty"`
	Style      StyleSpec         `yaml:"style" toml:"style"`
	Attributes map[string]string `yaml:"attributes" toml:"attributes"`
	Children   []NodeSpec        `yaml:"children" toml:"children"`
}

// StyleSpec is the textual form of layout.Style. Empty fields keep the
// layout defaults.
type StyleSpec struct {
	Display    string    `yaml:"display" toml:"display"`
	Direction  string    `yaml:"direction" toml:"direction"`
	Justify    string    `yaml:"justify" toml:"justify"`
	Align      string    `yaml:"align" toml:"align"`
	Width      ValueSpec `yaml:"width" toml:"width"`
	Height     ValueSpec `yaml:"height" toml:"height"`
	Background string    `yaml:"background" toml:"background"`
}

// IsZero reports whether no style field is set.
func (s StyleSpec) IsZero() bool {
	return s.Display == "" && s.Direction == "" && s.Justify == "" && s.Align == "" &&
		!s.Width.IsSet() && !s.Height.IsSet() && s.Background == ""
}

// ViewportSize returns the document viewport, if one is given.
func (d *Document) ViewportSize() (layout.Size, bool, error) {
	if d.Viewport == nil {
		return layout.Size{}, false, nil
	}
	if d.Viewport.Width < 0 || d.Viewport.Height < 0 {
		return layout.Size{}, false, fmt.Errorf("viewport: %w: %dx%d", ErrInvalidViewport, d.Viewport.Width, d.Viewport.Height)
	}
	return layout.Size{Width: d.Viewport.Width, Height: d.Viewport.Height}, true, nil
}

// Build creates a layout tree from the document. Nodes are created in
// pre-order, so NodeIDs match traversal order. The returned map holds every
// node that declared an id.
func (d *Document) Build() (*layout.Tree, map[string]layout.NodeID, error) {
	if _, _, err := d.ViewportSize(); err != nil {
		return nil, nil, err
	}
	b := builder{tree: layout.NewTree(), ids: make(map[string]layout.NodeID)}
	root, err := b.build(&d.Root, "root")
	if err != nil {
		return nil, nil, err
	}
	b.tree.SetRoot(root)
	return b.tree, b.ids, nil
}

type builder struct {
	tree *layout.Tree
	ids  map[string]layout.NodeID
}

func (b *builder) build(n *NodeSpec, path string) (layout.NodeID, error) {
	var id layout.NodeID
	switch {
	case n.Text != nil && n.Empty:
		return layout.NoNode, fmt.Errorf("%s: %w: text and empty are exclusive", path, ErrInvalidNode)
	case n.Text != nil || n.Empty:
		if err := checkLeaf(n, path); err != nil {
			return layout.NoNode, err
		}
		if n.Empty {
			id = b.tree.Empty()
		} else {
			id = b.tree.Text(*n.Text)
		}
	default:
		style, err := n.Style.build(path + ".style")
		if err != nil {
			return layout.NoNode, err
		}
		id = b.tree.Element(n.Tag, style)
	}

	if n.ID != "" {
		if prev, ok := b.ids[n.ID]; ok {
			return layout.NoNode, fmt.Errorf("%s: %w: duplicate id %q (first used by node %d)", path, ErrInvalidNode, n.ID, prev)
		}
		b.ids[n.ID] = id
	}
	for k, v := range n.Attributes {
		b.tree.SetAttr(id, k, v)
	}

	for i := range n.Children {
		child, err := b.build(&n.Children[i], fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return layout.NoNode, err
		}
		b.tree.AppendChild(id, child)
	}
	return id, nil
}

func checkLeaf(n *NodeSpec, path string) error {
	switch {
	case len(n.Children) > 0:
		return fmt.Errorf("%s: %w: leaf nodes cannot have children", path, ErrInvalidNode)
	case n.Tag != "":
		return fmt.Errorf("%s: %w: leaf nodes cannot have a tag", path, ErrInvalidNode)
	case !n.Style.IsZero():
		return fmt.Errorf("%s.style: %w: leaf nodes cannot be styled", path, ErrInvalidStyle)
	}
	return nil
}

func (s StyleSpec) build(path string) (layout.Style, error) {
	var opts []layout.StyleOption

	if s.Display != "" {
		v, err := parseEnum(s.Display, displays)
		if err != nil {
			return layout.Style{}, fmt.Errorf("%s.display: %w", path, err)
		}
		opts = append(opts, layout.WithDisplay(v))
	}
	if s.Direction != "" {
		v, err := parseEnum(s.Direction, directions)
		if err != nil {
			return layout.Style{}, fmt.Errorf("%s.direction: %w", path, err)
		}
		opts = append(opts, layout.WithDirection(v))
	}
	if s.Justify != "" {
		v, err := parseEnum(s.Justify, justifies)
		if err != nil {
			return layout.Style{}, fmt.Errorf("%s.justify: %w", path, err)
		}
		opts = append(opts, layout.WithJustify(v))
	}
	if s.Align != "" {
		v, err := parseEnum(s.Align, aligns)
		if err != nil {
			return layout.Style{}, fmt.Errorf("%s.align: %w", path, err)
		}
		opts = append(opts, layout.WithAlign(v))
	}

	width, err := s.Width.Value()
	if err != nil {
		return layout.Style{}, fmt.Errorf("%s.width: %w", path, err)
	}
	height, err := s.Height.Value()
	if err != nil {
		return layout.Style{}, fmt.Errorf("%s.height: %w", path, err)
	}
	opts = append(opts, layout.WithSize(width, height))

	if s.Background != "" {
		opts = append(opts, layout.WithBackground(s.Background))
	}
	return layout.NewStyle(opts...), nil
}

var (
	displays   = []layout.Display{layout.DisplayFlex, layout.DisplayNone}
	directions = []layout.Direction{layout.Row, layout.Column}
	justifies  = []layout.Justify{
		layout.JustifyStart, layout.JustifyEnd, layout.JustifyCenter,
		layout.JustifySpaceBetween, layout.JustifySpaceAround, layout.JustifySpaceEvenly,
	}
	aligns = []layout.Align{layout.AlignStart, layout.AlignEnd, layout.AlignCenter, layout.AlignStretch}
)

// parseEnum matches s against the String form of each candidate, ignoring
// case and treating underscores as hyphens.
func parseEnum[T fmt.Stringer](s string, candidates []T) (T, error) {
	want := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	names := make([]string, len(candidates))
	for i, c := range candidates {
		if c.String() == want {
			return c, nil
		}
		names[i] = c.String()
	}
	var zero T
	return zero, fmt.Errorf("%w: unknown value %q (want one of %s)", ErrInvalidStyle, s, strings.Join(names, ", "))
}
