// Package sqlite implements a schema repository backed by SQLite, with JSONL
// files in the data directory as the source of truth.
package sqlite

// Schema DDL for all tables. List-valued columns hold a JSON array, or JSON
// null when the facet is absent.
const (
	createNodeTypes = `CREATE TABLE node_types (
    node_type_id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    orderable INTEGER NOT NULL,
    mixin INTEGER NOT NULL,
    primary_item TEXT,
    position INTEGER NOT NULL
);`

	createSupertypes = `CREATE TABLE supertypes (
    node_type_id TEXT NOT NULL,
    ordinal INTEGER NOT NULL,
    name TEXT NOT NULL,
    PRIMARY KEY (node_type_id, ordinal),
    FOREIGN KEY (node_type_id) REFERENCES node_types(node_type_id) ON DELETE CASCADE
);`

	createPropertyDefinitions = `CREATE TABLE property_definitions (
    definition_id TEXT PRIMARY KEY,
    node_type_id TEXT NOT NULL,
    ordinal INTEGER NOT NULL,
    name TEXT NOT NULL,
    multiple INTEGER NOT NULL,
    mandatory INTEGER NOT NULL,
    auto_created INTEGER NOT NULL,
    protected INTEGER NOT NULL,
    on_parent_version INTEGER NOT NULL,
    default_values TEXT NOT NULL,
    value_constraints TEXT NOT NULL,
    FOREIGN KEY (node_type_id) REFERENCES node_types(node_type_id) ON DELETE CASCADE
);`

	createChildNodeDefinitions = `CREATE TABLE child_node_definitions (
    definition_id TEXT PRIMARY KEY,
    node_type_id TEXT NOT NULL,
    ordinal INTEGER NOT NULL,
    name TEXT NOT NULL,
    mandatory INTEGER NOT NULL,
    auto_created INTEGER NOT NULL,
    protected INTEGER NOT NULL,
    same_name_siblings INTEGER NOT NULL,
    required_primary_types TEXT NOT NULL,
    default_primary_type TEXT,
    on_parent_version INTEGER NOT NULL,
    FOREIGN KEY (node_type_id) REFERENCES node_types(node_type_id) ON DELETE CASCADE
);`

	createNamespaces = `CREATE TABLE namespaces (
    prefix TEXT PRIMARY KEY,
    uri TEXT NOT NULL,
    global INTEGER NOT NULL
);`

	createDescriptors = `CREATE TABLE descriptors (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    position INTEGER NOT NULL
);`
)

// Index DDL for the per-type facet lookups.
const (
	idxSupertypesType      = `CREATE INDEX idx_supertypes_type ON supertypes(node_type_id, ordinal);`
	idxPropertyDefsType    = `CREATE INDEX idx_property_definitions_type ON property_definitions(node_type_id, ordinal);`
	idxChildNodeDefsType   = `CREATE INDEX idx_child_node_definitions_type ON child_node_definitions(node_type_id, ordinal);`
	idxNodeTypesPosition   = `CREATE INDEX idx_node_types_position ON node_types(position);`
	idxDescriptorsPosition = `CREATE INDEX idx_descriptors_position ON descriptors(position);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createNodeTypes,
	createSupertypes,
	createPropertyDefinitions,
	createChildNodeDefinitions,
	createNamespaces,
	createDescriptors,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxSupertypesType,
	idxPropertyDefsType,
	idxChildNodeDefsType,
	idxNodeTypesPosition,
	idxDescriptorsPosition,
}

// dataTables lists the tables cleared before a reload, children first.
var dataTables = []string{
	"supertypes",
	"property_definitions",
	"child_node_definitions",
	"node_types",
	"namespaces",
	"descriptors",
}
