package model

// ExtractedNode mirrors the node objects the model is asked to emit.
type ExtractedNode struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

// ExtractedTriple is one (node_1, relationship, node_2) item from the
// model's response.
type ExtractedTriple struct {
	Node1        ExtractedNode `json:"node_1"`
	Node2        ExtractedNode `json:"node_2"`
	Relationship string        `json:"relationship"`
}

// ExtractedTriples is the top-level response shape requested from the model.
type ExtractedTriples struct {
	Triples []ExtractedTriple `json:"triples"`
}

// DocumentError records a document whose extraction produced no edges
// because the model call or the response parse failed.
type DocumentError struct {
	Index int    `json:"index"` // position in the input slice
	Stage string `json:"stage"` // "generate" or "parse"
	Err   error  `json:"-"`
	Msg   string `json:"error"`
}

func (e DocumentError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Msg
}
