// Package api provides interfaces for dependency injection
package api

import "github.com/skallerud/splatvault/pkg/assets"

// ServerStarter defines the interface for starting the API server
type ServerStarter interface {
	// StartServer starts the API server with the given configuration
	StartServer(store *assets.AssetStore, config ServerConfig) error
}

// ServerFactory creates server instances
type ServerFactory interface {
	// CreateServerStarter creates a server starter
	CreateServerStarter() ServerStarter
}
