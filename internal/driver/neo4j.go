package driver

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/vincent623/graphmaker/internal/core/model"
)

type Neo4jDriver struct {
	Driver neo4j.DriverWithContext
}

func NewNeo4jDriver(ctx context.Context, uri, username, password string) (*Neo4jDriver, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, err
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		return nil, err
	}

	log.Println("Connected to Neo4j")
	return &Neo4jDriver{Driver: driver}, nil
}

func (d *Neo4jDriver) Close(ctx context.Context) error {
	return d.Driver.Close(ctx)
}

func (d *Neo4jDriver) ExecuteQuery(ctx context.Context, query string, params map[string]interface{}) (neo4j.EagerResult, error) {
	result, err := neo4j.ExecuteQuery(ctx, d.Driver, query, params, neo4j.EagerResultTransformer)
	if err != nil {
		return neo4j.EagerResult{}, fmt.Errorf("failed to execute query: %w", err)
	}
	return *result, nil
}

func (d *Neo4jDriver) BuildIndices(ctx context.Context) error {
	for _, q := range indexQueries {
		if _, err := d.ExecuteQuery(ctx, q, nil); err != nil {
			// Index may already exist on servers that reject IF NOT EXISTS.
			log.Printf("Warning: failed to create index '%s': %v", q, err)
		}
	}
	return nil
}

// Save upserts the edge slice: every distinct (name, label) node first, then
// every relationship keyed by its triple. Write failures surface to the
// caller; nothing is swallowed here.
func (d *Neo4jDriver) Save(ctx context.Context, edges []model.Edge, createIndices bool) error {
	if createIndices {
		if err := d.BuildIndices(ctx); err != nil {
			return err
		}
	}

	for _, edge := range edges {
		for _, node := range []model.Node{edge.Node1, edge.Node2} {
			params := map[string]interface{}{
				"name":  node.Name,
				"label": node.Label,
			}
			if _, err := d.ExecuteQuery(ctx, SaveNodeQuery, params); err != nil {
				return fmt.Errorf("failed to save node %s:%s: %w", node.Label, node.Name, err)
			}
		}

		// Property values must be scalars, so metadata goes in as JSON.
		metadata, err := json.Marshal(edge.Metadata)
		if err != nil {
			return fmt.Errorf("failed to marshal edge metadata: %w", err)
		}

		params := map[string]interface{}{
			"node_1_name":  edge.Node1.Name,
			"node_1_label": edge.Node1.Label,
			"node_2_name":  edge.Node2.Name,
			"node_2_label": edge.Node2.Label,
			"relationship": edge.Relationship,
			"metadata":     string(metadata),
			"order":        edge.Order,
		}
		if _, err := d.ExecuteQuery(ctx, SaveEdgeQuery, params); err != nil {
			return fmt.Errorf("failed to save edge %s -[%s]-> %s: %w",
				edge.Node1.Name, edge.Relationship, edge.Node2.Name, err)
		}
	}

	return nil
}
