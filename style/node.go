// Package style defines the style tree handled by transformers: an ordered
// string-keyed node whose values are CSS value strings, bare numbers or nested
// nodes.
package style

import (
	"fmt"
	"iter"

	"github.com/elliotchance/orderedmap/v3"
)

// Node is a single style object. Entries keep insertion order. Values are
// always one of string, float64 or *Node.
//
// The zero value is an empty node ready to use.
type Node struct {
	entries *orderedmap.OrderedMap[string, any]
}

// NewNode creates an empty node.
func NewNode() *Node {
	return &Node{entries: orderedmap.NewOrderedMap[string, any]()}
}

func (n *Node) init() {
	if n.entries == nil {
		n.entries = orderedmap.NewOrderedMap[string, any]()
	}
}

// Set stores value under key. Existing keys keep their position, new keys are
// appended. Integer values are widened to float64. Any other type panics.
func (n *Node) Set(key string, value any) {
	n.init()
	n.entries.Set(key, normalize(value))
}

func normalize(value any) any {
	switch v := value.(type) {
	case string, float64, *Node:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case uint32:
		return float64(v)
	case uint64:
		return float64(v)
	default:
		// this should never happen
		panic(fmt.Sprintf("style: unsupported value type %T", value))
	}
}

// Get returns value stored under key.
func (n *Node) Get(key string) (any, bool) {
	if n.entries == nil {
		return nil, false
	}
	return n.entries.Get(key)
}

// Has reports whether key is present.
func (n *Node) Has(key string) bool {
	return n.entries != nil && n.entries.Has(key)
}

// Delete removes key and reports whether it was present.
func (n *Node) Delete(key string) bool {
	if n.entries == nil {
		return false
	}
	return n.entries.Delete(key)
}

// Rename moves value stored under oldKey to newKey and removes oldKey. When
// newKey does not exist yet it is appended at the end, otherwise its value is
// replaced in place. Renaming a key to itself is a no-op.
func (n *Node) Rename(oldKey, newKey string) bool {
	value, ok := n.Get(oldKey)
	if !ok {
		return false
	}
	if oldKey == newKey {
		return true
	}
	n.entries.Set(newKey, value)
	n.entries.Delete(oldKey)
	return true
}

// Len returns number of entries.
func (n *Node) Len() int {
	if n == nil || n.entries == nil {
		return 0
	}
	return n.entries.Len()
}

// Keys iterates over keys in order.
func (n *Node) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for k := range n.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// All iterates over entries in order.
func (n *Node) All() iter.Seq2[string, any] {
	if n == nil || n.entries == nil {
		return func(func(string, any) bool) {}
	}
	return n.entries.AllFromFront()
}

// Clone returns a shallow copy: order is kept and nested nodes are shared.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	if n.entries == nil {
		return NewNode()
	}
	return &Node{entries: n.entries.Copy()}
}
