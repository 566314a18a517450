package api

//go:generate mockgen -destination=./mock_store.go -package=api . IAssetStore

import (
	"github.com/skallerud/splatvault/pkg/assets"
	"github.com/skallerud/splatvault/pkg/splat"
)

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// SchemaDescription is the response body of the inspect endpoint.
type SchemaDescription struct {
	Elements []ElementDescription `json:"elements"`
	DataSize int64                `json:"data_size_bytes"`
}

// ElementDescription describes one element of an inspected file.
type ElementDescription struct {
	Name       string                `json:"name"`
	Count      int                   `json:"count"`
	Properties []PropertyDescription `json:"properties"`
}

// PropertyDescription describes one property of an inspected element.
type PropertyDescription struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Size int    `json:"size_bytes"`
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Port           int
	Bind           string
	APIKey         string
	MaxHeaderBytes int // header accumulation cap handed to the parser
	ChunkBytes     int // read size for streaming request bodies
}

// IAssetStore defines the asset store operations the API depends on
type IAssetStore interface {
	Put(name string, cloud *splat.Cloud) (*assets.AssetMeta, error)
	Get(id string) (*splat.Cloud, *assets.AssetMeta, error)
	Meta(id string) (*assets.AssetMeta, error)
	List() ([]assets.AssetMeta, error)
	Delete(id string) error
	Stats() (*assets.StoreStats, error)
}
