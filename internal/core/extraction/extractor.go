package extraction

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/vincent623/graphmaker/internal/core/common"
	"github.com/vincent623/graphmaker/internal/core/model"
	"github.com/vincent623/graphmaker/internal/llm"
)

// Options tunes a FromDocuments run.
//
// Delay is the pause between per-document model calls; it exists to respect
// provider rate limits, not for correctness. Workers > 1 switches to a
// bounded worker pool where Delay feeds a shared rate limiter instead.
type Options struct {
	Delay   time.Duration
	Workers int
}

// Result is the outcome of one batch. Edges are ordered by document
// position, then by triple position within each document. Failures lists
// the documents that produced zero edges because their model call or
// response parse failed; a failed document never aborts the batch.
type Result struct {
	Edges    []model.Edge
	Failures []model.DocumentError
}

// Extractor turns documents into typed graph edges by prompting a language
// model per document and validating the structured response against an
// ontology.
type Extractor struct {
	LLM      llm.Client
	Ontology model.Ontology
	Prompt   string // fmt template: labels, relationships, text
}

func NewExtractor(llmClient llm.Client, ontology model.Ontology, prompt string) *Extractor {
	if prompt == "" {
		prompt = DefaultPrompt
	}
	return &Extractor{
		LLM:      llmClient,
		Ontology: ontology,
		Prompt:   prompt,
	}
}

// FromDocuments extracts edges from every document in order. The returned
// error is non-nil only when ctx is cancelled; per-document failures are
// recorded on the Result instead.
func (e *Extractor) FromDocuments(ctx context.Context, docs []model.Document, opts Options) (*Result, error) {
	if len(docs) == 0 {
		return &Result{}, nil
	}
	if opts.Workers > 1 {
		return e.fromDocumentsPooled(ctx, docs, opts)
	}
	return e.fromDocumentsSequential(ctx, docs, opts)
}

func (e *Extractor) fromDocumentsSequential(ctx context.Context, docs []model.Document, opts Options) (*Result, error) {
	result := &Result{}
	for i, doc := range docs {
		if i > 0 && opts.Delay > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(opts.Delay):
			}
		}

		edges, docErr := e.extractOne(ctx, i, doc)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if docErr != nil {
			log.Printf("document %d: %s failed: %v", i, docErr.Stage, docErr.Err)
			result.Failures = append(result.Failures, *docErr)
			continue
		}
		result.Edges = append(result.Edges, edges...)
	}
	return result, nil
}

// fromDocumentsPooled runs a bounded worker pool over the documents while
// preserving the sequential contract: results are written into a slice
// indexed by document position and flattened in order afterwards.
func (e *Extractor) fromDocumentsPooled(ctx context.Context, docs []model.Document, opts Options) (*Result, error) {
	var limiter *rate.Limiter
	if opts.Delay > 0 {
		limiter = rate.NewLimiter(rate.Every(opts.Delay), 1)
	}

	perDoc := make([][]model.Edge, len(docs))
	perDocErr := make([]*model.DocumentError, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	for i, doc := range docs {
		i, doc := i, doc
		g.Go(func() error {
			if limiter != nil {
				if err := limiter.Wait(gctx); err != nil {
					return err
				}
			}
			edges, docErr := e.extractOne(gctx, i, doc)
			if err := gctx.Err(); err != nil {
				return err
			}
			if docErr != nil {
				log.Printf("document %d: %s failed: %v", i, docErr.Stage, docErr.Err)
				perDocErr[i] = docErr
				return nil
			}
			perDoc[i] = edges
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{}
	for i := range docs {
		if perDocErr[i] != nil {
			result.Failures = append(result.Failures, *perDocErr[i])
			continue
		}
		result.Edges = append(result.Edges, perDoc[i]...)
	}
	return result, nil
}

func (e *Extractor) extractOne(ctx context.Context, index int, doc model.Document) ([]model.Edge, *model.DocumentError) {
	prompt := fmt.Sprintf(e.Prompt, e.Ontology.PromptLabels(), e.Ontology.PromptRelationships(), doc.Text)

	response, err := e.LLM.Generate(ctx, prompt, "")
	if err != nil {
		return nil, &model.DocumentError{
			Index: index,
			Stage: "generate",
			Err:   err,
			Msg:   err.Error(),
		}
	}

	parsed, err := common.ParseJSON[model.ExtractedTriples](response)
	if err != nil {
		return nil, &model.DocumentError{
			Index: index,
			Stage: "parse",
			Err:   err,
			Msg:   err.Error(),
		}
	}

	var edges []model.Edge
	for _, triple := range parsed.Triples {
		edge, ok := e.repairTriple(triple)
		if !ok {
			continue
		}
		edge.Metadata = doc.Metadata
		edge.Order = len(edges)
		edges = append(edges, edge)
	}
	return edges, nil
}

// repairTriple validates a parsed triple against the ontology. A node whose
// label is undeclared is remapped to Miscellaneous when the ontology
// declares that label; otherwise the whole triple is dropped. Triples with
// empty node names are always dropped.
func (e *Extractor) repairTriple(t model.ExtractedTriple) (model.Edge, bool) {
	n1, ok := e.repairNode(t.Node1)
	if !ok {
		return model.Edge{}, false
	}
	n2, ok := e.repairNode(t.Node2)
	if !ok {
		return model.Edge{}, false
	}
	return model.Edge{
		Node1:        n1,
		Node2:        n2,
		Relationship: t.Relationship,
	}, true
}

func (e *Extractor) repairNode(n model.ExtractedNode) (model.Node, bool) {
	if n.Name == "" {
		return model.Node{}, false
	}
	label := n.Label
	if !e.Ontology.Contains(label) {
		if !e.Ontology.Contains(model.MiscellaneousLabel) {
			return model.Node{}, false
		}
		label = model.MiscellaneousLabel
	}
	return model.Node{Name: n.Name, Label: label}, true
}
