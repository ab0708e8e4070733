package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/vincent623/graphmaker/internal/config"
	"github.com/vincent623/graphmaker/internal/core"
	"github.com/vincent623/graphmaker/internal/core/extraction"
	"github.com/vincent623/graphmaker/internal/core/model"
	"github.com/vincent623/graphmaker/internal/driver"
	"github.com/vincent623/graphmaker/internal/llm"
)

// defaultOntology covers narrative prose, with Miscellaneous as the
// catch-all for entities that fit no other label.
func defaultOntology() model.Ontology {
	ontology, err := model.NewOntology(
		[]model.Label{
			{Name: "Person", Guidance: "Person name without any adjectives. Remember a person may be referenced by their name or using a pronoun"},
			{Name: "Object", Guidance: "Do not add the definite article 'the' in the object name"},
			{Name: "Event", Guidance: "Event involving multiple people. Do not include qualifiers or verbs like gives, leaves, works etc."},
			{Name: "Place"},
			{Name: "Document"},
			{Name: "Organisation"},
			{Name: "Action"},
			{Name: "Miscellaneous", Guidance: "Any important concept that can not be categorised with any other given label"},
		},
		[]string{"Relation between any pair of Entities"},
	)
	if err != nil {
		log.Fatalf("invalid default ontology: %v", err)
	}
	return ontology
}

// readChunks splits the input file into blank-line-separated text chunks.
func readChunks(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var chunks []string
	for _, block := range strings.Split(string(data), "\n\n") {
		block = strings.TrimSpace(block)
		if block != "" {
			chunks = append(chunks, block)
		}
	}
	return chunks, nil
}

func main() {
	configPath := flag.String("config", "config/config.toml", "path to TOML config")
	inputPath := flag.String("input", "", "text file of blank-line-separated chunks")
	delay := flag.Duration("delay", 0, "pause between per-document model calls")
	workers := flag.Int("workers", 0, "worker pool size (0 uses config, 1 is sequential)")
	createIndices := flag.Bool("create-indices", false, "create node indices before saving")
	skipSummaries := flag.Bool("skip-summaries", false, "skip summary metadata enrichment")
	dryRun := flag.Bool("dry-run", false, "extract and print, do not persist")
	flag.Parse()

	if *inputPath == "" {
		log.Fatal("missing -input")
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("Could not load %s: %v. Using defaults", *configPath, err)
		cfg = config.Default()
	}
	cfg.ApplyEnv()

	if *delay > 0 {
		cfg.Pipeline.DelayMS = int(delay.Milliseconds())
	}
	if *workers > 0 {
		cfg.Pipeline.Workers = *workers
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	chunks, err := readChunks(*inputPath)
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}
	log.Printf("Loaded %d text chunks from %s", len(chunks), *inputPath)

	llmClient, err := llm.NewClient(ctx, cfg.LLM)
	if err != nil {
		log.Fatalf("Failed to initialize LLM client: %v", err)
	}

	var d driver.GraphDriver
	if !*dryRun {
		nd, err := driver.NewNeo4jDriver(ctx, cfg.Neo4j.URI, cfg.Neo4j.User, cfg.Neo4j.Password)
		if err != nil {
			log.Fatalf("Failed to connect to Neo4j: %v", err)
		}
		defer nd.Close(context.Background())
		d = nd
	}

	maker := core.NewGraphMaker(d, llmClient, defaultOntology(), core.Prompts{
		Extraction: cfg.Prompts.Extraction,
		Summary:    cfg.Prompts.Summary,
	})

	start := time.Now()
	docs := maker.MakeDocuments(ctx, chunks, !*skipSummaries)
	result, err := maker.BuildGraph(ctx, docs, extraction.Options{
		Delay:   cfg.Pipeline.Delay(),
		Workers: cfg.Pipeline.Workers,
	})
	if err != nil {
		log.Fatalf("Extraction aborted: %v", err)
	}

	log.Printf("Total number of edges: %d (%d documents failed, took %s)",
		len(result.Edges), len(result.Failures), time.Since(start).Round(time.Millisecond))
	for _, f := range result.Failures {
		log.Printf("  document %d failed at %s: %s", f.Index, f.Stage, f.Msg)
	}

	if *dryRun {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		for _, edge := range result.Edges {
			if err := enc.Encode(edge); err != nil {
				log.Fatalf("Failed to print edge: %v", err)
			}
		}
		return
	}

	if err := maker.SaveGraph(ctx, result.Edges, *createIndices || cfg.Pipeline.CreateIndices); err != nil {
		log.Fatalf("Failed to save graph: %v", err)
	}
	log.Printf("Graph saved to %s", cfg.Neo4j.URI)
}
