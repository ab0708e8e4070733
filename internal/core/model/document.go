package model

// Document is one unit of extraction work: a text passage plus metadata.
// The metadata map is opaque to the pipeline; it is attached as-is to every
// edge extracted from the document.
type Document struct {
	Text     string                 `json:"text"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}
