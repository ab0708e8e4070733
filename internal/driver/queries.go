package driver

const (
	// Nodes are keyed by (name, label). Re-saving the same edge slice
	// matches the existing nodes and creates nothing.
	SaveNodeQuery = `
		MERGE (n:Entity {name: $name, label: $label})
		RETURN n.name AS name
	`

	// Relationships are keyed by the two endpoints plus the relationship
	// text (upsert-by-triple, not append). Metadata and order are
	// refreshed on re-save.
	SaveEdgeQuery = `
		MATCH (a:Entity {name: $node_1_name, label: $node_1_label})
		MATCH (b:Entity {name: $node_2_name, label: $node_2_label})
		MERGE (a)-[r:RELATES_TO {relationship: $relationship}]->(b)
		SET r.metadata = $metadata,
			r.order = $order
		RETURN r.relationship AS relationship
	`

	CountNodesQuery = `
		MATCH (n:Entity)
		RETURN count(n) AS count
	`

	CountEdgesQuery = `
		MATCH (:Entity)-[r:RELATES_TO]->(:Entity)
		RETURN count(r) AS count
	`
)

// Lookup indices over the node natural key, issued before the first upsert
// when index creation is requested.
var indexQueries = []string{
	"CREATE INDEX entity_name IF NOT EXISTS FOR (n:Entity) ON (n.name)",
	"CREATE INDEX entity_label IF NOT EXISTS FOR (n:Entity) ON (n.label)",
}
