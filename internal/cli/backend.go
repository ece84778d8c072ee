package cli

import (
	"fmt"

	"github.com/mesh-intelligence/nodetypes/internal/paths"
	"github.com/mesh-intelligence/nodetypes/internal/sqlite"
	"github.com/mesh-intelligence/nodetypes/pkg/types"
)

// resolveDataDir applies: --data-dir flag > config.yaml data_dir >
// NODETYPES_DATA_DIR env > $(CWD)/.nodetypes-db.
func (o *rootOptions) resolveDataDir() (string, error) {
	return paths.ResolveDataDir(o.dataDir, o.config.GetString(cfgKeyDataDir))
}

// attachBackend resolves the data directory, creates a SQLite backend, and
// attaches it. The caller must defer backend.Detach(). Configuration
// problems are user errors; anything else is a system error.
func (o *rootOptions) attachBackend() (*sqlite.Backend, error) {
	dataDir, err := o.resolveDataDir()
	if err != nil {
		return nil, sysError(fmt.Errorf("resolve data dir: %w", err))
	}

	cfg := types.Config{
		Backend: o.config.GetString(cfgKeyBackend),
		DataDir: dataDir,
	}
	if err := cfg.Validate(); err != nil {
		return nil, userError(fmt.Errorf("%w: %q", err, cfg.Backend))
	}

	backend := sqlite.NewBackend()
	if err := backend.Attach(cfg); err != nil {
		return nil, sysError(fmt.Errorf("attach backend: %w", err))
	}
	return backend, nil
}
