//go:build integration

package integration

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vincent623/graphmaker/internal/core/model"
	"github.com/vincent623/graphmaker/internal/driver"
)

func requireNeo4j(t *testing.T) *driver.Neo4jDriver {
	t.Helper()
	_ = godotenv.Load("../../.env")

	uri := os.Getenv("NEO4J_URI")
	if uri == "" {
		t.Skip("Skipping integration test: NEO4J_URI not set")
	}

	d, err := driver.NewNeo4jDriver(context.Background(), uri,
		os.Getenv("NEO4J_USER"), os.Getenv("NEO4J_PASSWORD"))
	require.NoError(t, err)
	t.Cleanup(func() { d.Close(context.Background()) })
	return d
}

func countByName(t *testing.T, d *driver.Neo4jDriver, name string) int64 {
	t.Helper()
	res, err := d.ExecuteQuery(context.Background(),
		"MATCH (n:Entity {name: $name}) RETURN count(n) AS count",
		map[string]interface{}{"name": name})
	require.NoError(t, err)
	require.NotEmpty(t, res.Records)
	count, _ := res.Records[0].Get("count")
	return count.(int64)
}

// Saving the same edge slice twice must not duplicate nodes or
// relationships: both are MERGEd by their natural keys.
func TestSaveIsIdempotent(t *testing.T) {
	d := requireNeo4j(t)
	ctx := context.Background()

	// Unique names per run keep reruns against a shared database honest.
	suffix := fmt.Sprintf("it-%d", time.Now().UnixNano())
	edges := []model.Edge{
		{
			Node1:        model.Node{Name: "Frodo-" + suffix, Label: "Person"},
			Node2:        model.Node{Name: "Rivendell-" + suffix, Label: "Place"},
			Relationship: "traveled to",
			Metadata:     map[string]interface{}{"summary": "journey"},
			Order:        0,
		},
	}

	require.NoError(t, d.Save(ctx, edges, true))
	require.NoError(t, d.Save(ctx, edges, false))

	assert.EqualValues(t, 1, countByName(t, d, "Frodo-"+suffix))
	assert.EqualValues(t, 1, countByName(t, d, "Rivendell-"+suffix))

	res, err := d.ExecuteQuery(ctx,
		`MATCH (:Entity {name: $a})-[r:RELATES_TO]->(:Entity {name: $b}) RETURN count(r) AS count`,
		map[string]interface{}{"a": "Frodo-" + suffix, "b": "Rivendell-" + suffix})
	require.NoError(t, err)
	count, _ := res.Records[0].Get("count")
	assert.EqualValues(t, 1, count)
}
