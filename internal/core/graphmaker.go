package core

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/vincent623/graphmaker/internal/core/extraction"
	"github.com/vincent623/graphmaker/internal/core/model"
	"github.com/vincent623/graphmaker/internal/core/summary"
	"github.com/vincent623/graphmaker/internal/driver"
	"github.com/vincent623/graphmaker/internal/llm"
)

// GraphMaker wires the extraction engine, the optional summary enrichment,
// and graph persistence into one pipeline.
type GraphMaker struct {
	Driver     driver.GraphDriver
	LLM        llm.Client
	Extractor  *extraction.Extractor
	Summarizer *summary.Summarizer
}

// Prompts are optional template overrides; empty strings select the
// compiled-in defaults.
type Prompts struct {
	Extraction string
	Summary    string
}

func NewGraphMaker(d driver.GraphDriver, llmClient llm.Client, ontology model.Ontology, prompts Prompts) *GraphMaker {
	return &GraphMaker{
		Driver:     d,
		LLM:        llmClient,
		Extractor:  extraction.NewExtractor(llmClient, ontology, prompts.Extraction),
		Summarizer: summary.NewSummarizer(llmClient, prompts.Summary),
	}
}

// MakeDocuments turns raw text chunks into documents stamped with a shared
// run id and timestamp. When summarize is true each document also gets a
// model-written summary; a failed summary is logged and left empty rather
// than failing the batch.
func (g *GraphMaker) MakeDocuments(ctx context.Context, texts []string, summarize bool) []model.Document {
	runID := uuid.New().String()
	generatedAt := time.Now().UTC().Format(time.RFC3339)

	docs := make([]model.Document, 0, len(texts))
	for i, text := range texts {
		metadata := map[string]interface{}{
			"run_id":       runID,
			"generated_at": generatedAt,
		}
		if summarize {
			s, err := g.Summarizer.Summarize(ctx, text)
			if err != nil {
				log.Printf("summary for document %d failed, continuing without: %v", i, err)
			}
			metadata["summary"] = s
		}
		docs = append(docs, model.Document{Text: text, Metadata: metadata})
	}
	return docs
}

// BuildGraph runs extraction over the documents.
func (g *GraphMaker) BuildGraph(ctx context.Context, docs []model.Document, opts extraction.Options) (*extraction.Result, error) {
	return g.Extractor.FromDocuments(ctx, docs, opts)
}

// SaveGraph persists the extracted edges.
func (g *GraphMaker) SaveGraph(ctx context.Context, edges []model.Edge, createIndices bool) error {
	return g.Driver.Save(ctx, edges, createIndices)
}
