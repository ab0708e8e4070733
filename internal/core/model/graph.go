package model

// Node is an extracted entity. Identity for persistence is (Name, Label);
// two edges may reference structurally equal nodes without sharing storage.
type Node struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

// Edge is one extracted fact: two nodes, the relation between them, the
// originating document's metadata, and the 0-based position of the triple
// within that document's response.
type Edge struct {
	Node1        Node                   `json:"node_1"`
	Node2        Node                   `json:"node_2"`
	Relationship string                 `json:"relationship"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
	Order        int                    `json:"order"`
}
