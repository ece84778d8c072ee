package types

// WildcardName is the item name that matches any property or child node name.
const WildcardName = "*"

// NodeType is a read-only snapshot of one node type definition as reported by
// a schema store. Supertypes and required primary types refer to other node
// types by name only.
type NodeType struct {
	Name        string                 `json:"name"`
	Supertypes  []string               `json:"supertypes,omitempty"`
	Orderable   bool                   `json:"orderable,omitempty"`
	Mixin       bool                   `json:"mixin,omitempty"`
	PrimaryItem string                 `json:"primary_item,omitempty"`
	Properties  []*PropertyDefinition  `json:"properties,omitempty"`
	ChildNodes  []*ChildNodeDefinition `json:"child_nodes,omitempty"`
}

// PropertyDefinition describes one property a node of the owning type may carry.
// OnParentVersion holds the numeric action code; see NameFromValue.
type PropertyDefinition struct {
	Name             string   `json:"name"`
	Multiple         bool     `json:"multiple,omitempty"`
	Mandatory        bool     `json:"mandatory,omitempty"`
	AutoCreated      bool     `json:"auto_created,omitempty"`
	Protected        bool     `json:"protected,omitempty"`
	OnParentVersion  int      `json:"on_parent_version"`
	DefaultValues    []string `json:"default_values,omitempty"`
	ValueConstraints []string `json:"value_constraints,omitempty"`
}

// ChildNodeDefinition describes one child node a node of the owning type may
// carry. An empty DefaultPrimaryType means none is declared.
type ChildNodeDefinition struct {
	Name                 string   `json:"name"`
	Mandatory            bool     `json:"mandatory,omitempty"`
	AutoCreated          bool     `json:"auto_created,omitempty"`
	Protected            bool     `json:"protected,omitempty"`
	SameNameSiblings     bool     `json:"same_name_siblings,omitempty"`
	RequiredPrimaryTypes []string `json:"required_primary_types,omitempty"`
	DefaultPrimaryType   string   `json:"default_primary_type,omitempty"`
	OnParentVersion      int      `json:"on_parent_version"`
}

// IsPrimaryItem reports whether prop is the type's primary item for the
// purposes of an inventory report. The name must match the declared primary
// item and the property must declare at least one default value.
func (nt *NodeType) IsPrimaryItem(prop *PropertyDefinition) bool {
	if nt.PrimaryItem == "" || len(prop.DefaultValues) == 0 {
		return false
	}
	return prop.Name == nt.PrimaryItem
}

// Namespace maps a prefix to a namespace URI. Global namespaces are
// registered repository wide; the rest are local to sessions.
type Namespace struct {
	Prefix string `json:"prefix" yaml:"prefix"`
	URI    string `json:"uri" yaml:"uri"`
	Global bool   `json:"global" yaml:"global"`
}
