package model

import (
	"fmt"
	"strings"
)

// MiscellaneousLabel is the fallback for entities the model labels outside
// the declared set. Repair only happens when the ontology declares it.
const MiscellaneousLabel = "Miscellaneous"

// Label is an allowed node type. Guidance is advisory text embedded in
// extraction prompts; it is never validated against model output.
type Label struct {
	Name     string `json:"name"`
	Guidance string `json:"guidance,omitempty"`
}

// Ontology is the closed vocabulary handed to the extractor: the node labels
// it may emit and a free-text description of the relationship vocabulary.
type Ontology struct {
	Labels        []Label  `json:"labels"`
	Relationships []string `json:"relationships"`
}

func NewOntology(labels []Label, relationships []string) (Ontology, error) {
	seen := make(map[string]bool, len(labels))
	for _, l := range labels {
		if l.Name == "" {
			return Ontology{}, fmt.Errorf("ontology label with empty name")
		}
		if seen[l.Name] {
			return Ontology{}, fmt.Errorf("duplicate ontology label %q", l.Name)
		}
		seen[l.Name] = true
	}
	return Ontology{Labels: labels, Relationships: relationships}, nil
}

// Contains reports whether name is a declared label.
func (o Ontology) Contains(name string) bool {
	for _, l := range o.Labels {
		if l.Name == name {
			return true
		}
	}
	return false
}

// PromptLabels renders the label vocabulary for inclusion in a prompt,
// one label per line with guidance where present.
func (o Ontology) PromptLabels() string {
	var b strings.Builder
	for _, l := range o.Labels {
		if l.Guidance != "" {
			fmt.Fprintf(&b, "- %s: %s\n", l.Name, l.Guidance)
		} else {
			fmt.Fprintf(&b, "- %s\n", l.Name)
		}
	}
	return b.String()
}

// PromptRelationships renders the relationship vocabulary for a prompt.
func (o Ontology) PromptRelationships() string {
	var b strings.Builder
	for _, r := range o.Relationships {
		fmt.Fprintf(&b, "- %s\n", r)
	}
	return b.String()
}
