// Package schemadoc decodes contract schema files into domain documents.
package schemadoc

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/contractgate/contractgate/internal/domain"
)

// Decoder implements domain.SchemaDecoder. Every document is first compiled
// with the jsonschema compiler so a broken contract file fails the run with
// a compiler message instead of silently classifying garbage.
type Decoder struct{}

func New() *Decoder {
	return &Decoder{}
}

func (d *Decoder) Decode(data []byte) (domain.Document, error) {
	const resource = "contract-schema.json"

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(resource, bytes.NewReader(data)); err != nil {
		return domain.Document{}, fmt.Errorf("reading schema: %w", err)
	}
	if _, err := compiler.Compile(resource); err != nil {
		return domain.Document{}, fmt.Errorf("compiling schema: %w", err)
	}

	var doc domain.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return domain.Document{}, fmt.Errorf("decoding schema: %w", err)
	}
	return doc, nil
}
