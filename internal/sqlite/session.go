package sqlite

import (
	"context"
	"database/sql"
	"iter"

	"github.com/pkg/errors"

	"github.com/mesh-intelligence/nodetypes/pkg/types"
)

var _ types.Session = (*session)(nil)

// session is a read-only handle holding one pooled connection. Errors are
// returned with a stack trace attached so reports can show where a read
// failed.
type session struct {
	// ctx is the Login context; it bounds every query the session runs.
	ctx    context.Context
	conn   *sql.Conn
	closed bool
}

// nodeTypeRow is a node_types row before its facets are loaded.
type nodeTypeRow struct {
	id string
	nt *types.NodeType
}

// NodeTypes reads every type header first, then loads each type's facets as
// the caller advances.
func (s *session) NodeTypes() iter.Seq2[*types.NodeType, error] {
	return func(yield func(*types.NodeType, error) bool) {
		if s.closed {
			yield(nil, errors.WithStack(types.ErrSessionClosed))
			return
		}
		rows, err := s.nodeTypeRows()
		if err != nil {
			yield(nil, err)
			return
		}
		for _, row := range rows {
			if err := s.loadFacets(row); err != nil {
				yield(nil, err)
				return
			}
			if !yield(row.nt, nil) {
				return
			}
		}
	}
}

func (s *session) nodeTypeRows() ([]nodeTypeRow, error) {
	rows, err := s.conn.QueryContext(s.ctx,
		"SELECT node_type_id, name, orderable, mixin, primary_item FROM node_types ORDER BY position")
	if err != nil {
		return nil, errors.Wrap(err, "querying node types")
	}
	defer rows.Close()

	var result []nodeTypeRow
	for rows.Next() {
		var row nodeTypeRow
		var primaryItem sql.NullString
		nt := &types.NodeType{}
		if err := rows.Scan(&row.id, &nt.Name, &nt.Orderable, &nt.Mixin, &primaryItem); err != nil {
			return nil, errors.Wrap(err, "scanning node type")
		}
		nt.PrimaryItem = primaryItem.String
		row.nt = nt
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "reading node types")
	}
	return result, nil
}

func (s *session) loadFacets(row nodeTypeRow) error {
	var err error
	if row.nt.Supertypes, err = s.supertypes(row.id); err != nil {
		return errors.Wrapf(err, "reading supertypes of %s", row.nt.Name)
	}
	if row.nt.Properties, err = s.propertyDefinitions(row.id); err != nil {
		return errors.Wrapf(err, "reading property definitions of %s", row.nt.Name)
	}
	if row.nt.ChildNodes, err = s.childNodeDefinitions(row.id); err != nil {
		return errors.Wrapf(err, "reading child node definitions of %s", row.nt.Name)
	}
	return nil
}

func (s *session) supertypes(id string) ([]string, error) {
	rows, err := s.conn.QueryContext(s.ctx,
		"SELECT name FROM supertypes WHERE node_type_id = ? ORDER BY ordinal", id)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, errors.WithStack(err)
		}
		names = append(names, name)
	}
	return names, errors.WithStack(rows.Err())
}

func (s *session) propertyDefinitions(id string) ([]*types.PropertyDefinition, error) {
	rows, err := s.conn.QueryContext(s.ctx,
		`SELECT name, multiple, mandatory, auto_created, protected, on_parent_version,
                default_values, value_constraints
         FROM property_definitions WHERE node_type_id = ? ORDER BY ordinal`, id)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer rows.Close()

	var defs []*types.PropertyDefinition
	for rows.Next() {
		var def types.PropertyDefinition
		var defaults, constraints string
		if err := rows.Scan(&def.Name, &def.Multiple, &def.Mandatory, &def.AutoCreated,
			&def.Protected, &def.OnParentVersion, &defaults, &constraints); err != nil {
			return nil, errors.WithStack(err)
		}
		if def.DefaultValues, err = decodeList(defaults); err != nil {
			return nil, errors.Wrapf(err, "decoding default values of %s", def.Name)
		}
		if def.ValueConstraints, err = decodeList(constraints); err != nil {
			return nil, errors.Wrapf(err, "decoding value constraints of %s", def.Name)
		}
		defs = append(defs, &def)
	}
	return defs, errors.WithStack(rows.Err())
}

func (s *session) childNodeDefinitions(id string) ([]*types.ChildNodeDefinition, error) {
	rows, err := s.conn.QueryContext(s.ctx,
		`SELECT name, mandatory, auto_created, protected, same_name_siblings,
                required_primary_types, default_primary_type, on_parent_version
         FROM child_node_definitions WHERE node_type_id = ? ORDER BY ordinal`, id)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer rows.Close()

	var defs []*types.ChildNodeDefinition
	for rows.Next() {
		var def types.ChildNodeDefinition
		var required string
		var defaultType sql.NullString
		if err := rows.Scan(&def.Name, &def.Mandatory, &def.AutoCreated, &def.Protected,
			&def.SameNameSiblings, &required, &defaultType, &def.OnParentVersion); err != nil {
			return nil, errors.WithStack(err)
		}
		if def.RequiredPrimaryTypes, err = decodeList(required); err != nil {
			return nil, errors.Wrapf(err, "decoding required primary types of %s", def.Name)
		}
		def.DefaultPrimaryType = defaultType.String
		defs = append(defs, &def)
	}
	return defs, errors.WithStack(rows.Err())
}

// NamespacePrefixes returns every prefix known to the repository, in prefix
// order.
func (s *session) NamespacePrefixes() ([]string, error) {
	return s.prefixes("SELECT prefix FROM namespaces ORDER BY prefix")
}

// RegistryPrefixes returns the globally registered prefixes.
func (s *session) RegistryPrefixes() ([]string, error) {
	return s.prefixes("SELECT prefix FROM namespaces WHERE global = 1 ORDER BY prefix")
}

func (s *session) prefixes(query string) ([]string, error) {
	if s.closed {
		return nil, errors.WithStack(types.ErrSessionClosed)
	}
	rows, err := s.conn.QueryContext(s.ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "querying namespaces")
	}
	defer rows.Close()

	var prefixes []string
	for rows.Next() {
		var prefix string
		if err := rows.Scan(&prefix); err != nil {
			return nil, errors.Wrap(err, "scanning namespace")
		}
		prefixes = append(prefixes, prefix)
	}
	return prefixes, errors.WithStack(rows.Err())
}

func (s *session) NamespaceURI(prefix string) (string, error) {
	if s.closed {
		return "", errors.WithStack(types.ErrSessionClosed)
	}
	var uri string
	err := s.conn.QueryRowContext(s.ctx, "SELECT uri FROM namespaces WHERE prefix = ?", prefix).Scan(&uri)
	if err == sql.ErrNoRows {
		return "", errors.Wrapf(types.ErrNamespaceNotFound, "prefix %q", prefix)
	}
	if err != nil {
		return "", errors.Wrapf(err, "resolving prefix %q", prefix)
	}
	return uri, nil
}

// Logout returns the connection to the pool.
func (s *session) Logout() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.conn.Close()
}
