package sqlite

import (
	"fmt"
	"path/filepath"

	"github.com/mesh-intelligence/nodetypes/pkg/nodetypes"
	"github.com/mesh-intelligence/nodetypes/pkg/types"
)

// builtInNamespaces are registered on first run.
var builtInNamespaces = []types.Namespace{
	{Prefix: "", URI: "", Global: true},
	{Prefix: "jcr", URI: "http://www.jcp.org/jcr/1.0", Global: true},
	{Prefix: "nt", URI: "http://www.jcp.org/jcr/nt/1.0", Global: true},
	{Prefix: "mix", URI: "http://www.jcp.org/jcr/mix/1.0", Global: true},
	{Prefix: "xml", URI: "http://www.w3.org/XML/1998/namespace", Global: true},
}

// builtInDescriptors are stored on first run, in display order.
var builtInDescriptors = []descriptorJSON{
	{Key: "jcr.specification.version", Value: "2.0"},
	{Key: "jcr.specification.name", Value: "Content Repository for Java Technology API"},
	{Key: "jcr.repository.vendor", Value: "mesh-intelligence"},
	{Key: "jcr.repository.name", Value: "nodetypes"},
	{Key: "jcr.repository.version", Value: nodetypes.Version},
	{Key: "option.node.type.management.supported", Value: "true"},
	{Key: "option.versioning.supported", Value: "false"},
	{Key: "query.languages", Value: ""},
}

// builtInNodeTypes is a subset of the standard JCR 2.0 node types.
var builtInNodeTypes = []*types.NodeType{
	{
		Name: "nt:base",
		Properties: []*types.PropertyDefinition{
			{Name: "jcr:primaryType", Mandatory: true, AutoCreated: true, Protected: true, OnParentVersion: types.OnParentVersionCompute},
			{Name: "jcr:mixinTypes", Protected: true, Multiple: true, OnParentVersion: types.OnParentVersionCompute},
		},
	},
	{
		Name:  "mix:created",
		Mixin: true,
		Properties: []*types.PropertyDefinition{
			{Name: "jcr:created", AutoCreated: true, Protected: true, OnParentVersion: types.OnParentVersionCopy},
			{Name: "jcr:createdBy", AutoCreated: true, Protected: true, OnParentVersion: types.OnParentVersionCopy},
		},
	},
	{
		Name:  "mix:referenceable",
		Mixin: true,
		Properties: []*types.PropertyDefinition{
			{Name: "jcr:uuid", Mandatory: true, AutoCreated: true, Protected: true, OnParentVersion: types.OnParentVersionInitialize},
		},
	},
	{
		Name:  "mix:title",
		Mixin: true,
		Properties: []*types.PropertyDefinition{
			{Name: "jcr:title", OnParentVersion: types.OnParentVersionCopy},
			{Name: "jcr:description", OnParentVersion: types.OnParentVersionCopy},
		},
	},
	{
		Name:       "nt:hierarchyNode",
		Supertypes: []string{"mix:created"},
	},
	{
		Name:       "nt:folder",
		Supertypes: []string{"nt:hierarchyNode"},
		ChildNodes: []*types.ChildNodeDefinition{
			{Name: types.WildcardName, RequiredPrimaryTypes: []string{"nt:hierarchyNode"}, OnParentVersion: types.OnParentVersionVersion},
		},
	},
	{
		Name:        "nt:file",
		Supertypes:  []string{"nt:hierarchyNode"},
		PrimaryItem: "jcr:content",
		ChildNodes: []*types.ChildNodeDefinition{
			{Name: "jcr:content", RequiredPrimaryTypes: []string{"nt:base"}, Mandatory: true, OnParentVersion: types.OnParentVersionCopy},
		},
	},
	{
		Name:        "nt:resource",
		Supertypes:  []string{"nt:base", "mix:referenceable"},
		PrimaryItem: "jcr:data",
		Properties: []*types.PropertyDefinition{
			{Name: "jcr:encoding", OnParentVersion: types.OnParentVersionCopy},
			{Name: "jcr:mimeType", Mandatory: true, OnParentVersion: types.OnParentVersionCopy},
			{Name: "jcr:data", Mandatory: true, OnParentVersion: types.OnParentVersionCopy},
			{Name: "jcr:lastModified", Mandatory: true, OnParentVersion: types.OnParentVersionIgnore},
		},
	},
	{
		Name:       "nt:unstructured",
		Supertypes: []string{"nt:base"},
		Orderable:  true,
		Properties: []*types.PropertyDefinition{
			{Name: types.WildcardName, Multiple: true, OnParentVersion: types.OnParentVersionCopy},
			{Name: types.WildcardName, OnParentVersion: types.OnParentVersionCopy},
		},
		ChildNodes: []*types.ChildNodeDefinition{
			{Name: types.WildcardName, DefaultPrimaryType: "nt:unstructured", SameNameSiblings: true, OnParentVersion: types.OnParentVersionVersion},
		},
	},
}

// seedBuiltIns writes the built-in node types, namespaces, and descriptors to
// their JSONL files. It runs only when every JSONL file was empty on attach.
func seedBuiltIns(dataDir string) error {
	nodeTypes, err := encodeRecords(builtInNodeTypes)
	if err != nil {
		return fmt.Errorf("encoding node types: %w", err)
	}
	if err := writeJSONL(filepath.Join(dataDir, nodeTypesJSONL), nodeTypes); err != nil {
		return fmt.Errorf("writing %s: %w", nodeTypesJSONL, err)
	}

	namespaces, err := encodeRecords(builtInNamespaces)
	if err != nil {
		return fmt.Errorf("encoding namespaces: %w", err)
	}
	if err := writeJSONL(filepath.Join(dataDir, namespacesJSONL), namespaces); err != nil {
		return fmt.Errorf("writing %s: %w", namespacesJSONL, err)
	}

	descriptors, err := encodeRecords(builtInDescriptors)
	if err != nil {
		return fmt.Errorf("encoding descriptors: %w", err)
	}
	if err := writeJSONL(filepath.Join(dataDir, descriptorsJSONL), descriptors); err != nil {
		return fmt.Errorf("writing %s: %w", descriptorsJSONL, err)
	}
	return nil
}
