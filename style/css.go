package style

import (
	"fmt"
	"io"
	"strings"
	"unicode"
)

// WriteCSS writes node as CSS text using selector for its own declarations.
// Declarations come first, nested nodes follow in order: keys starting with
// '@' become at-rule blocks around the current selector, other keys are
// nested selectors where '&' stands for the parent selector (descendant
// combinator is assumed when '&' is absent).
func WriteCSS(w io.Writer, selector string, node *Node) (int64, error) {
	cw := &cssWriter{w: w}
	cw.block(0, selector, node)
	return cw.total, cw.err
}

// CSS returns the CSS text of node.
func CSS(selector string, node *Node) string {
	var sb strings.Builder
	WriteCSS(&sb, selector, node) //nolint:errcheck
	return sb.String()
}

type cssWriter struct {
	w     io.Writer
	total int64
	err   error
}

func (cw *cssWriter) printf(depth int, format string, args ...any) {
	if cw.err != nil {
		return
	}
	n, err := fmt.Fprintf(cw.w, "%s"+format, append([]any{strings.Repeat("  ", depth)}, args...)...)
	cw.total += int64(n)
	cw.err = err
}

func (cw *cssWriter) block(depth int, selector string, node *Node) {
	var (
		decls  [][2]string
		nested []string
	)
	for key, value := range node.All() {
		switch v := value.(type) {
		case string:
			decls = append(decls, [2]string{PropertyName(key), v})
		case float64:
			decls = append(decls, [2]string{PropertyName(key), FormatNumber(v)})
		case *Node:
			nested = append(nested, key)
		}
	}

	if len(decls) > 0 {
		if selector == "" {
			for _, d := range decls {
				cw.printf(depth, "%s: %s;\n", d[0], d[1])
			}
		} else {
			cw.printf(depth, "%s {\n", selector)
			for _, d := range decls {
				cw.printf(depth+1, "%s: %s;\n", d[0], d[1])
			}
			cw.printf(depth, "}\n")
		}
	}

	for _, key := range nested {
		value, _ := node.Get(key)
		child := value.(*Node)
		if strings.HasPrefix(strings.TrimSpace(key), "@") {
			cw.printf(depth, "%s {\n", strings.TrimSpace(key))
			cw.block(depth+1, selector, child)
			cw.printf(depth, "}\n")
			continue
		}
		cw.block(depth, NestSelector(selector, key), child)
	}
}

// NestSelector combines parent selector with nested one. Both may be comma
// separated lists, every combination is produced.
func NestSelector(parent, nested string) string {
	var parents []string
	for p := range strings.SplitSeq(parent, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parents = append(parents, p)
		}
	}

	var out []string
	for n := range strings.SplitSeq(nested, ",") {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if len(parents) == 0 {
			out = append(out, strings.ReplaceAll(n, "&", ""))
			continue
		}
		for _, p := range parents {
			if strings.Contains(n, "&") {
				out = append(out, strings.ReplaceAll(n, "&", p))
			} else {
				out = append(out, p+" "+n)
			}
		}
	}
	return strings.Join(out, ", ")
}

// PropertyName converts camelCase style key into CSS property name:
// "fontSize" becomes "font-size", vendor prefixes "WebkitBoxFlex" and
// "msGridRow" become "-webkit-box-flex" and "-ms-grid-row". Custom properties
// and names which are already hyphenated are returned as is.
func PropertyName(key string) string {
	if strings.HasPrefix(key, "--") || strings.ContainsRune(key, '-') {
		return key
	}
	var sb strings.Builder
	sb.Grow(len(key) + 4)
	if strings.HasPrefix(key, "ms") && len(key) > 2 && unicode.IsUpper(rune(key[2])) {
		sb.WriteByte('-')
	}
	for _, r := range key {
		if unicode.IsUpper(r) {
			sb.WriteByte('-')
			sb.WriteRune(unicode.ToLower(r))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
