package style

import (
	"pxrem/utils/debug"
)

// Dump renders node as an indented tree for debug logging.
func Dump(node *Node) string {
	tw := debug.NewTreeWriter()
	dumpNode(tw, 0, node)
	return tw.String()
}

func dumpNode(tw *debug.TreeWriter, depth int, node *Node) {
	for key, value := range node.All() {
		switch v := value.(type) {
		case string:
			tw.Text(depth, key, v)
		case float64:
			tw.Number(depth, key, FormatNumber(v))
		case *Node:
			tw.Line(depth, "%q: (%d)", key, v.Len())
			dumpNode(tw, depth+1, v)
		}
	}
}
