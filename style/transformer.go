package style

// Transformer rewrites a single style node. Implementations must not modify
// the node they receive, a new node is returned instead (it may be the same
// node when nothing changed).
type Transformer interface {
	Visit(node *Node) *Node
}

// TransformerFunc is a [Transformer] represented by its Visit function.
type TransformerFunc func(node *Node) *Node

// Visit satisfies [Transformer].
func (fn TransformerFunc) Visit(node *Node) *Node { return fn(node) }

// Chain composes transformers left to right: each one receives output of the
// previous one.
func Chain(transformers ...Transformer) Transformer {
	return TransformerFunc(func(node *Node) *Node {
		for _, t := range transformers {
			node = t.Visit(node)
		}
		return node
	})
}

// Walk applies t to node and then to every nested node of the result, depth
// first. Nodes of the original tree are never modified.
func Walk(node *Node, t Transformer) *Node {
	if node == nil {
		return nil
	}
	out := t.Visit(node)

	var nested []string
	for key, value := range out.All() {
		if _, ok := value.(*Node); ok {
			nested = append(nested, key)
		}
	}

	copied := out != node
	for _, key := range nested {
		value, _ := out.Get(key)
		child := value.(*Node)
		walked := Walk(child, t)
		if walked == child {
			continue
		}
		if !copied {
			out, copied = out.Clone(), true
		}
		out.Set(key, walked)
	}
	return out
}
