package swagger

import (
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi2"
	"gopkg.in/yaml.v3"
)

// MarshalJSON renders the document as indented JSON.
func MarshalJSON(doc *openapi2.T) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("swagger: marshal json: %w", err)
	}
	return data, nil
}

// MarshalYAML renders the document as YAML. The document is round-tripped
// through its JSON form first so kin-openapi's marshaling rules (extension
// placement, omitted empties) apply to the YAML output as well.
func MarshalYAML(doc *openapi2.T) ([]byte, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("swagger: marshal yaml: %w", err)
	}
	var tree map[string]any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("swagger: marshal yaml: %w", err)
	}
	out, err := yaml.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("swagger: marshal yaml: %w", err)
	}
	return out, nil
}
