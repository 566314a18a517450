// Package di provides dependency injection container
package di

import (
	"github.com/skallerud/splatvault/pkg/api" //nolint:depguard
)

// Container holds all the dependencies for the application
type Container struct {
	serverFactory api.ServerFactory
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	return &Container{
		serverFactory: api.NewServerFactory(),
	}
}

// GetServerFactory returns the server factory
func (c *Container) GetServerFactory() api.ServerFactory {
	return c.serverFactory
}

// SetServerFactory allows overriding the server factory (for testing)
func (c *Container) SetServerFactory(factory api.ServerFactory) {
	c.serverFactory = factory
}
