package convert

import (
	"bytes"
	"encoding/json"
	"fmt"

	yaml "gopkg.in/yaml.v3"

	"pxrem/config"
	"pxrem/style"
)

// encode serializes converted style node in requested format. Selector is
// only used for css output.
func encode(node *style.Node, format config.OutputFmt, selector string) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case config.OutputFmtCss:
		if _, err := style.WriteCSS(&buf, selector, node); err != nil {
			return nil, fmt.Errorf("unable to write css: %w", err)
		}
	case config.OutputFmtYaml:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(node); err != nil {
			return nil, fmt.Errorf("unable to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("unable to encode yaml: %w", err)
		}
	case config.OutputFmtJson:
		data, err := node.MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("unable to encode json: %w", err)
		}
		if err := json.Indent(&buf, data, "", "  "); err != nil {
			return nil, fmt.Errorf("unable to indent json: %w", err)
		}
		buf.WriteByte('\n')
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
	return buf.Bytes(), nil
}
