package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/skallerud/splatvault/pkg/assets"
	"github.com/skallerud/splatvault/pkg/ply"
	"github.com/skallerud/splatvault/pkg/splat"
)

// Server holds the API server state
type Server struct {
	store   IAssetStore
	config  ServerConfig
	metrics *Metrics
}

// NewServer creates a new API server
func NewServer(store IAssetStore, config ServerConfig, metrics *Metrics) *Server {
	return &Server{
		store:   store,
		config:  config,
		metrics: metrics,
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	sendSuccess(w, map[string]string{"status": "healthy"})
}

// handleUpload streams the request body through the PLY parser,
// assembles a splat cloud and stores it. The body is never buffered
// whole; chunk boundaries fall wherever the network puts them.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		name = "untitled"
	}

	start := time.Now()
	parser := ply.NewParser(ply.ParserConfig{
		Filter:         splat.PropertyFilter(),
		MaxHeaderBytes: s.config.MaxHeaderBytes,
	})
	schema, err := parser.Parse(r.Context(), ply.NewReaderSource(r.Body, s.config.ChunkBytes))
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordParse(false, 0, 0, time.Since(start))
		}
		sendLoadFailure(w, err)
		return
	}

	cloud, err := splat.FromSchema(schema)
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordParse(false, 0, 0, time.Since(start))
		}
		sendLoadFailure(w, err)
		return
	}
	if s.metrics != nil {
		s.metrics.RecordParse(true, cloud.Count, schema.DataSize(), time.Since(start))
	}

	meta, err := s.store.Put(name, cloud)
	if err != nil {
		sendError(w, "Failed to store asset: "+err.Error(), http.StatusInternalServerError)
		return
	}

	sendSuccess(w, meta)
}

// handleInspect parses the request body with a reject-all filter: the
// full payload is consumed and validated but no columns are
// materialized, and only the schema description is returned.
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	parser := ply.NewParser(ply.ParserConfig{
		Filter:         func(string) bool { return false },
		MaxHeaderBytes: s.config.MaxHeaderBytes,
	})
	schema, err := parser.Parse(r.Context(), ply.NewReaderSource(r.Body, s.config.ChunkBytes))
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordParse(false, 0, 0, time.Since(start))
		}
		sendLoadFailure(w, err)
		return
	}
	if s.metrics != nil {
		s.metrics.RecordParse(true, 0, schema.DataSize(), time.Since(start))
	}

	sendSuccess(w, describeSchema(schema))
}

func (s *Server) handleListAssets(w http.ResponseWriter, r *http.Request) {
	metas, err := s.store.List()
	if err != nil {
		sendError(w, "Failed to list assets: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if metas == nil {
		metas = []assets.AssetMeta{}
	}
	sendSuccess(w, metas)
}

func (s *Server) handleGetAsset(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	meta, err := s.store.Meta(id)
	if err != nil {
		sendError(w, err.Error(), http.StatusNotFound)
		return
	}
	sendSuccess(w, meta)
}

func (s *Server) handleDeleteAsset(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.store.Delete(id); err != nil {
		sendError(w, err.Error(), http.StatusNotFound)
		return
	}
	sendSuccess(w, map[string]string{"deleted": id})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.store.Stats()
	if err != nil {
		sendError(w, "Failed to compute stats: "+err.Error(), http.StatusInternalServerError)
		return
	}
	sendSuccess(w, stats)
}

func describeSchema(schema *ply.Schema) SchemaDescription {
	desc := SchemaDescription{DataSize: schema.DataSize()}
	for _, element := range schema.Elements {
		ed := ElementDescription{Name: element.Name, Count: element.Count}
		for _, property := range element.Properties {
			ed.Properties = append(ed.Properties, PropertyDescription{
				Name: property.Name,
				Type: property.Type.String(),
				Size: property.Type.Size(),
			})
		}
		desc.Elements = append(desc.Elements, ed)
	}
	return desc
}
