// internal/domain/models/material.go
package models

import (
	"path"
	"strings"
)

// Material type values, inferred from the stored object key when the
// document does not carry an explicit type.
const (
	MaterialPDF   = "pdf"
	MaterialDoc   = "doc"
	MaterialImage = "image"
	MaterialOther = "other"
)

// Material is a named pointer to an externally stored file attached to a
// lesson, exam, or homework. It is never addressable on its own; it only
// exists embedded in a parent document's materials/student_works lists.
// URL holds the opaque object-store key, not a fetchable URL — minting one
// is a separate, fallible step per material.
type Material struct {
	Name string `bson:"name" json:"name"`
	URL  string `bson:"url" json:"url"`
	Type string `bson:"type,omitempty" json:"type,omitempty"`
}

// Kind returns the material's explicit type when present, otherwise the
// type inferred from its name (falling back to the stored key).
func (m Material) Kind() string {
	if m.Type != "" {
		return m.Type
	}
	name := m.Name
	if name == "" {
		name = m.URL
	}
	return InferMaterialType(name)
}

// InferMaterialType classifies a file name or object key by extension.
func InferMaterialType(name string) string {
	switch strings.ToLower(strings.TrimPrefix(path.Ext(name), ".")) {
	case "pdf":
		return MaterialPDF
	case "doc", "docx":
		return MaterialDoc
	case "png", "jpg", "jpeg", "gif", "webp":
		return MaterialImage
	default:
		return MaterialOther
	}
}
