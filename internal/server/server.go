package server

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/vincent623/graphmaker/internal/config"
	"github.com/vincent623/graphmaker/internal/core"
	"github.com/vincent623/graphmaker/internal/core/extraction"
	"github.com/vincent623/graphmaker/internal/core/model"
	"github.com/vincent623/graphmaker/internal/driver"
	"github.com/vincent623/graphmaker/internal/llm"
)

type Server struct {
	Config *config.Config
	Driver driver.GraphDriver
	LLM    llm.Client
}

func NewServer() *Server {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("Could not load %s: %v. Using defaults", cfgPath, err)
		cfg = config.Default()
	}
	cfg.ApplyEnv()

	d, err := driver.NewNeo4jDriver(context.Background(), cfg.Neo4j.URI, cfg.Neo4j.User, cfg.Neo4j.Password)
	if err != nil {
		log.Fatalf("Failed to connect to Neo4j: %v", err)
	}

	llmClient, err := llm.NewClient(context.Background(), cfg.LLM)
	if err != nil {
		log.Fatalf("Failed to initialize LLM client: %v", err)
	}

	return &Server{
		Config: cfg,
		Driver: d,
		LLM:    llmClient,
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.POST("/extract", s.Extract)
	r.POST("/graphs", s.CreateGraph)

	return r
}

type OntologyRequest struct {
	Labels        []model.Label `json:"labels"`
	Relationships []string      `json:"relationships"`
}

type ExtractRequest struct {
	Texts    []string        `json:"texts"`
	Ontology OntologyRequest `json:"ontology"`
}

type CreateGraphRequest struct {
	Texts         []string        `json:"texts"`
	Ontology      OntologyRequest `json:"ontology"`
	CreateIndices bool            `json:"create_indices"`
	Summarize     bool            `json:"summarize"`
}

func (s *Server) maker(req OntologyRequest) (*core.GraphMaker, error) {
	ontology, err := model.NewOntology(req.Labels, req.Relationships)
	if err != nil {
		return nil, err
	}
	return core.NewGraphMaker(s.Driver, s.LLM, ontology, core.Prompts{
		Extraction: s.Config.Prompts.Extraction,
		Summary:    s.Config.Prompts.Summary,
	}), nil
}

func (s *Server) extractionOptions() extraction.Options {
	return extraction.Options{
		Delay:   s.Config.Pipeline.Delay(),
		Workers: s.Config.Pipeline.Workers,
	}
}

// Extract runs extraction only and returns the edges without persisting.
func (s *Server) Extract(c *gin.Context) {
	var req ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	maker, err := s.maker(req.Ontology)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	docs := maker.MakeDocuments(c.Request.Context(), req.Texts, false)
	result, err := maker.BuildGraph(c.Request.Context(), docs, s.extractionOptions())
	if err != nil {
		log.Printf("Extraction aborted: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Extraction aborted"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"edges":    result.Edges,
		"failures": result.Failures,
	})
}

// CreateGraph extracts and persists in one call.
func (s *Server) CreateGraph(c *gin.Context) {
	var req CreateGraphRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	maker, err := s.maker(req.Ontology)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	docs := maker.MakeDocuments(c.Request.Context(), req.Texts, req.Summarize)
	result, err := maker.BuildGraph(c.Request.Context(), docs, s.extractionOptions())
	if err != nil {
		log.Printf("Extraction aborted: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Extraction aborted"})
		return
	}

	if err := maker.SaveGraph(c.Request.Context(), result.Edges, req.CreateIndices); err != nil {
		log.Printf("Failed to save graph: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save graph"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"edge_count": len(result.Edges),
		"failures":   result.Failures,
	})
}
