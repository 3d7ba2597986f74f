package preview

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/rivo/uniseg"

	"github.com/grindlemire/go-vflex/internal/layout"
)

// maxLabel is the number of graphemes of text content shown in a table.
const maxLabel = 16

// Table lists every entry of result in traversal order, one line each:
// id, kind, tag, x, y, width, height. Nodes named in names are shown by
// name; text nodes show a quoted prefix of their content as the tag.
func Table(tree *layout.Tree, result *layout.Result, names map[layout.NodeID]string) string {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tTAG\tX\tY\tW\tH")
	for id, r := range result.All() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%d\n", nodeName(id, names), tree.Kind(id), label(tree, id), r.X, r.Y, r.Width, r.Height)
	}
	w.Flush()
	return sb.String()
}

func nodeName(id layout.NodeID, names map[layout.NodeID]string) string {
	if name, ok := names[id]; ok {
		return name
	}
	return "#" + strconv.Itoa(int(id))
}

func label(tree *layout.Tree, id layout.NodeID) string {
	switch tree.Kind(id) {
	case layout.KindText:
		return strconv.Quote(truncate(tree.Content(id), maxLabel))
	case layout.KindEmpty:
		return "-"
	}
	if tag := tree.Tag(id); tag != "" {
		return tag
	}
	return "-"
}

func truncate(s string, n int) string {
	if uniseg.GraphemeClusterCount(s) <= n {
		return s
	}
	var sb strings.Builder
	gr := uniseg.NewGraphemes(s)
	for i := 0; i < n-1 && gr.Next(); i++ {
		sb.WriteString(gr.Str())
	}
	sb.WriteString("…")
	return sb.String()
}

// Names inverts a document id map for Table.
func Names(ids map[string]layout.NodeID) map[layout.NodeID]string {
	names := make(map[layout.NodeID]string, len(ids))
	for name, id := range ids {
		names[id] = name
	}
	return names
}
