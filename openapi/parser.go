// Package openapi previews which operations of an OpenAPI document would be
// exposed as MCP tools by an automatic converter.
package openapi

import (
	"fmt"
	"net/url"

	"github.com/getkin/kin-openapi/openapi3"
)

// LoadSpec loads the OpenAPI specification from a file path or URL.
// The document is not validated; only its paths are read. References to
// other files or URLs are rejected so nothing beyond path is fetched.
func LoadSpec(path string) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.IsExternalRefsAllowed = false

	u, err := url.Parse(path)
	var doc *openapi3.T
	if err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		doc, err = loader.LoadFromURI(u)
	} else {
		doc, err = loader.LoadFromFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("loading spec %s: %w", path, err)
	}

	return doc, nil
}
