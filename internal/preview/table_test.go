package preview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grindlemire/go-vflex/internal/layout"
)

func TestTable(t *testing.T) {
	tree := layout.NewTree()
	title := tree.Text("title")
	gap := tree.Empty()
	side := tree.Element("nav", layout.NewStyle(layout.WithWidth(layout.Percent(25))))
	root := tree.Element("", layout.NewStyle(layout.WithSize(layout.Fill(), layout.Fill())), title, gap, side)
	tree.SetRoot(root)

	res := layout.Compute(tree, layout.Size{Width: 20, Height: 3})
	out := Table(tree, res, Names(map[string]layout.NodeID{"sidebar": side}))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)

	want := [][]string{
		{"ID", "KIND", "TAG", "X", "Y", "W", "H"},
		{"#3", "element", "-", "0", "0", "20", "3"},
		{"#0", "text", `"title"`, "0", "0", "5", "3"},
		{"#1", "empty", "-", "5", "0", "0", "3"},
		{"sidebar", "element", "nav", "5", "0", "5", "3"},
	}
	for i, fields := range want {
		assert.Equal(t, fields, strings.Fields(lines[i]), "line %d", i)
	}
}

func TestTruncate(t *testing.T) {
	tests := map[string]struct {
		in   string
		n    int
		want string
	}{
		"short":     {"abc", 5, "abc"},
		"exact":     {"abcde", 5, "abcde"},
		"long":      {"abcdefgh", 5, "abcd…"},
		"graphemes": {"ééé", 2, "é…"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, truncate(tt.in, tt.n))
		})
	}
}
