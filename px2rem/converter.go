package px2rem

import (
	"strings"

	"pxrem/style"
)

// UnitlessSet tells which properties take bare numbers that are not lengths.
// Lookups are by exact key, a miss means the property is a length.
type UnitlessSet interface {
	Has(key string) bool
}

// UnitlessFunc adapts function to UnitlessSet.
type UnitlessFunc func(key string) bool

// Has satisfies UnitlessSet.
func (fn UnitlessFunc) Has(key string) bool { return fn(key) }

// Converter rewrites pixel values of style nodes. It is immutable and safe for
// concurrent use.
type Converter struct {
	opts     Options
	unitless UnitlessSet
}

// New creates converter. Nil unitless set means every bare number is a length.
func New(unitless UnitlessSet, options ...Option) *Converter {
	opts := DefaultOptions()
	for _, apply := range options {
		apply(&opts)
	}
	return &Converter{opts: opts, unitless: unitless}
}

// Options returns effective options.
func (c *Converter) Options() Options {
	return c.opts
}

// Visit satisfies style.Transformer.
func (c *Converter) Visit(node *style.Node) *style.Node {
	return c.Rewrite(node)
}

// Rewrite returns a shallow copy of node with pixel values converted. Input
// node is never modified, entries which do not change are shared with it.
func (c *Converter) Rewrite(node *style.Node) *style.Node {
	if node == nil {
		return nil
	}

	out := node.Clone()
	for key, value := range node.All() {
		switch v := value.(type) {
		case string:
			if strings.Contains(v, "px") {
				out.Set(key, c.ConvertValue(v))
			}
		case float64:
			if v != 0 && !c.isUnitless(key) {
				out.Set(key, c.replacePixels(style.FormatNumber(v)+"px", false))
			}
		}

		if c.opts.MediaQuery && isAtRuleKey(key) {
			out.Rename(key, c.replacePixels(key, false))
		}
	}
	return out
}

// ConvertValue converts pixel tokens in a single CSS value.
func (c *Converter) ConvertValue(value string) string {
	calc := c.opts.CalcZeroRem && strings.HasPrefix(strings.TrimSpace(value), "calc")
	return c.replacePixels(value, calc)
}

func (c *Converter) isUnitless(key string) bool {
	return c.unitless != nil && c.unitless.Has(key)
}

func isAtRuleKey(key string) bool {
	return strings.HasPrefix(strings.TrimSpace(key), "@") && strings.Contains(key, "px")
}
