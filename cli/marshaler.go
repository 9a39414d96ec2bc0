package cli

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

// marshalYAML keeps the key order of ordered maps, which encode themselves
// as YAML mapping nodes.
func marshalYAML(v any) ([]byte, error) {
	var bs bytes.Buffer
	enc := yaml.NewEncoder(&bs)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return bs.Bytes(), nil
}
