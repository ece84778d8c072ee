package sqlite

import (
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/mesh-intelligence/nodetypes/pkg/types"
)

// Import merges node types and namespaces into the repository. A node type
// replaces any stored type of the same name in place; new types are appended.
// Namespaces merge by prefix the same way. The JSONL files are rewritten and
// the tables reloaded before Import returns.
//
// Returns ErrInvalidName for an empty name or prefix-less URI, and
// ErrDuplicateName when the batch itself repeats a name.
func (b *Backend) Import(nodeTypes []*types.NodeType, namespaces []types.Namespace) error {
	if err := validateImport(nodeTypes, namespaces); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrRepositoryDetached
	}

	stored, err := readRecords[types.NodeType](b.dataDir, nodeTypesJSONL)
	if err != nil {
		return err
	}
	storedTypes := make([]*types.NodeType, len(stored))
	for i := range stored {
		storedTypes[i] = &stored[i]
	}
	mergedTypes := mergeByKey(storedTypes, nodeTypes, func(nt *types.NodeType) string { return nt.Name })

	storedNamespaces, err := readRecords[types.Namespace](b.dataDir, namespacesJSONL)
	if err != nil {
		return err
	}
	mergedNamespaces := mergeByKey(storedNamespaces, namespaces, func(ns types.Namespace) string { return ns.Prefix })

	typeRecords, err := encodeRecords(mergedTypes)
	if err != nil {
		return fmt.Errorf("encoding node types: %w", err)
	}
	if err := writeJSONL(filepath.Join(b.dataDir, nodeTypesJSONL), typeRecords); err != nil {
		return fmt.Errorf("writing %s: %w", nodeTypesJSONL, err)
	}
	nsRecords, err := encodeRecords(mergedNamespaces)
	if err != nil {
		return fmt.Errorf("encoding namespaces: %w", err)
	}
	if err := writeJSONL(filepath.Join(b.dataDir, namespacesJSONL), nsRecords); err != nil {
		return fmt.Errorf("writing %s: %w", namespacesJSONL, err)
	}

	if err := loadAllJSONL(b.db, b.dataDir); err != nil {
		return fmt.Errorf("reload JSONL: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"node_types": len(nodeTypes),
		"namespaces": len(namespaces),
	}).Info("imported schema")
	return nil
}

func validateImport(nodeTypes []*types.NodeType, namespaces []types.Namespace) error {
	seen := make(map[string]bool, len(nodeTypes))
	for _, nt := range nodeTypes {
		if nt == nil || nt.Name == "" {
			return fmt.Errorf("%w: node type name is empty", types.ErrInvalidName)
		}
		if seen[nt.Name] {
			return fmt.Errorf("%w: node type %q", types.ErrDuplicateName, nt.Name)
		}
		seen[nt.Name] = true
	}

	seen = make(map[string]bool, len(namespaces))
	for _, ns := range namespaces {
		if ns.Prefix == "" && ns.URI != "" {
			return fmt.Errorf("%w: empty prefix cannot map %q", types.ErrInvalidName, ns.URI)
		}
		if seen[ns.Prefix] {
			return fmt.Errorf("%w: namespace prefix %q", types.ErrDuplicateName, ns.Prefix)
		}
		seen[ns.Prefix] = true
	}
	return nil
}

// mergeByKey returns stored with each incoming value replacing the stored
// value of the same key, and unmatched incoming values appended in order.
func mergeByKey[T any](stored, incoming []T, key func(T) string) []T {
	index := make(map[string]int, len(stored))
	merged := make([]T, 0, len(stored)+len(incoming))
	for _, v := range stored {
		k := key(v)
		if _, dup := index[k]; dup {
			continue
		}
		index[k] = len(merged)
		merged = append(merged, v)
	}
	for _, v := range incoming {
		if i, ok := index[key(v)]; ok {
			merged[i] = v
			continue
		}
		index[key(v)] = len(merged)
		merged = append(merged, v)
	}
	return merged
}
