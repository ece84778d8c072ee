// Package sqlite provides the public API for the SQLite schema repository.
// It exposes the factory for creating backends while keeping the storage
// implementation internal.
package sqlite

import (
	"github.com/mesh-intelligence/nodetypes/internal/sqlite"
	"github.com/mesh-intelligence/nodetypes/pkg/types"
)

// Backend is an attachable schema repository.
type Backend interface {
	types.Repository

	Attach(config types.Config) error
	Detach() error
	Import(nodeTypes []*types.NodeType, namespaces []types.Namespace) error
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
//
// Example:
//
//	backend := sqlite.NewBackend()
//	err := backend.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".nodetypes-db",
//	})
//	defer backend.Detach()
func NewBackend() Backend {
	return sqlite.NewBackend()
}
