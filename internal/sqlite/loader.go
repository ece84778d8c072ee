package sqlite

import (
	"database/sql"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/mesh-intelligence/nodetypes/pkg/types"
)

// loadAllJSONL replaces the contents of every table with the records in the
// JSONL files. Loading is transactional: on error the tables keep their
// previous contents. Malformed lines and records that violate a constraint
// (an empty or duplicate name) are skipped.
func loadAllJSONL(db *sql.DB, dataDir string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning load transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range dataTables {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	nodeTypes, err := readRecords[types.NodeType](dataDir, nodeTypesJSONL)
	if err != nil {
		return err
	}
	loaded := 0
	for i := range nodeTypes {
		ok, err := insertNodeType(tx, &nodeTypes[i], i)
		if err != nil {
			return fmt.Errorf("loading node type %q: %w", nodeTypes[i].Name, err)
		}
		if ok {
			loaded++
		}
	}

	namespaces, err := readRecords[types.Namespace](dataDir, namespacesJSONL)
	if err != nil {
		return err
	}
	for _, ns := range namespaces {
		if _, err := tx.Exec(
			"INSERT OR IGNORE INTO namespaces (prefix, uri, global) VALUES (?, ?, ?)",
			ns.Prefix, ns.URI, ns.Global,
		); err != nil {
			return fmt.Errorf("loading namespace %q: %w", ns.Prefix, err)
		}
	}

	descriptors, err := readRecords[descriptorJSON](dataDir, descriptorsJSONL)
	if err != nil {
		return err
	}
	for i, d := range descriptors {
		if d.Key == "" {
			continue
		}
		if _, err := tx.Exec(
			"INSERT OR IGNORE INTO descriptors (key, value, position) VALUES (?, ?, ?)",
			d.Key, d.Value, i,
		); err != nil {
			return fmt.Errorf("loading descriptor %q: %w", d.Key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing load transaction: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"node_types":  loaded,
		"namespaces":  len(namespaces),
		"descriptors": len(descriptors),
	}).Debug("loaded schema from JSONL")
	return nil
}

// readRecords reads and decodes one JSONL file from the data directory.
func readRecords[T any](dataDir, file string) ([]T, error) {
	records, err := readJSONL(filepath.Join(dataDir, file))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", file, err)
	}
	return decodeRecords[T](records), nil
}

// insertNodeType writes one node type and its facets. It returns false when
// the record is skipped because its name is empty or already loaded.
func insertNodeType(tx *sql.Tx, nt *types.NodeType, position int) (bool, error) {
	if nt.Name == "" {
		return false, nil
	}
	var exists int
	err := tx.QueryRow("SELECT 1 FROM node_types WHERE name = ?", nt.Name).Scan(&exists)
	if err == nil {
		return false, nil
	}
	if err != sql.ErrNoRows {
		return false, fmt.Errorf("checking name: %w", err)
	}

	id := newID()
	var primaryItem sql.NullString
	if nt.PrimaryItem != "" {
		primaryItem = sql.NullString{String: nt.PrimaryItem, Valid: true}
	}
	if _, err := tx.Exec(
		"INSERT INTO node_types (node_type_id, name, orderable, mixin, primary_item, position) VALUES (?, ?, ?, ?, ?, ?)",
		id, nt.Name, nt.Orderable, nt.Mixin, primaryItem, position,
	); err != nil {
		return false, fmt.Errorf("inserting node type: %w", err)
	}

	for i, name := range nt.Supertypes {
		if _, err := tx.Exec(
			"INSERT INTO supertypes (node_type_id, ordinal, name) VALUES (?, ?, ?)",
			id, i, name,
		); err != nil {
			return false, fmt.Errorf("inserting supertype %q: %w", name, err)
		}
	}

	for i, prop := range nt.Properties {
		if prop == nil {
			continue
		}
		defaults, err := encodeList(prop.DefaultValues)
		if err != nil {
			return false, err
		}
		constraints, err := encodeList(prop.ValueConstraints)
		if err != nil {
			return false, err
		}
		if _, err := tx.Exec(
			`INSERT INTO property_definitions (definition_id, node_type_id, ordinal, name, multiple, mandatory,
                auto_created, protected, on_parent_version, default_values, value_constraints)
             VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			newID(), id, i, prop.Name, prop.Multiple, prop.Mandatory,
			prop.AutoCreated, prop.Protected, prop.OnParentVersion, defaults, constraints,
		); err != nil {
			return false, fmt.Errorf("inserting property definition %q: %w", prop.Name, err)
		}
	}

	for i, child := range nt.ChildNodes {
		if child == nil {
			continue
		}
		required, err := encodeList(child.RequiredPrimaryTypes)
		if err != nil {
			return false, err
		}
		var defaultType sql.NullString
		if child.DefaultPrimaryType != "" {
			defaultType = sql.NullString{String: child.DefaultPrimaryType, Valid: true}
		}
		if _, err := tx.Exec(
			`INSERT INTO child_node_definitions (definition_id, node_type_id, ordinal, name, mandatory,
                auto_created, protected, same_name_siblings, required_primary_types, default_primary_type,
                on_parent_version)
             VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			newID(), id, i, child.Name, child.Mandatory,
			child.AutoCreated, child.Protected, child.SameNameSiblings, required, defaultType,
			child.OnParentVersion,
		); err != nil {
			return false, fmt.Errorf("inserting child node definition %q: %w", child.Name, err)
		}
	}

	return true, nil
}

// newID generates a UUID v7 row id, falling back to v4.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
