package inventory

import (
	"bytes"
	"context"
	"io"
	"iter"
	"slices"
	"strings"

	"github.com/mesh-intelligence/nodetypes/pkg/types"
)

const nodeTypesFailure = "Unable to output node type definitions."

// NodeTypePrinter renders every node type of a repository in name order.
// Each type becomes one block:
//
//	[name] > super1, super2 orderable mixin
//	- prop = d1, d2 primary mandatory autocreated protected multiple COPY < c1, c2
//	+ child (req1, req2) = default mandatory autocreated protected multiple VERSION
//	<blank line>
//
// Optional parts appear only when set. Properties and child nodes keep store
// order.
type NodeTypePrinter struct{}

func (NodeTypePrinter) Name() string  { return "node-types" }
func (NodeTypePrinter) Title() string { return "Node Types" }

// Print renders the report. When the store faults, the blocks rendered so far
// are kept, the faulted block is dropped, and a failure notice follows.
func (NodeTypePrinter) Print(ctx context.Context, w io.Writer, repo types.Repository) error {
	out := &reportWriter{w: w}

	session, err := repo.Login(ctx)
	if err != nil {
		out.fail(nodeTypesFailure, err)
		return out.err
	}
	defer logout(session)

	nodeTypes, err := collectNodeTypes(session.NodeTypes())
	if err != nil {
		out.fail(nodeTypesFailure, err)
		return out.err
	}

	var block bytes.Buffer
	for _, nt := range nodeTypes {
		block.Reset()
		if err := writeNodeType(&block, nt); err != nil {
			out.fail(nodeTypesFailure, err)
			return out.err
		}
		out.write(block.Bytes())
	}
	return out.err
}

// collectNodeTypes drains seq and sorts the result by name, comparing bytes.
// Types sharing a name keep enumeration order. The first error stops
// collection and nothing is returned with it.
func collectNodeTypes(seq iter.Seq2[*types.NodeType, error]) ([]*types.NodeType, error) {
	var nodeTypes []*types.NodeType
	for nt, err := range seq {
		if err != nil {
			return nil, err
		}
		if nt == nil {
			continue
		}
		nodeTypes = append(nodeTypes, nt)
	}
	slices.SortStableFunc(nodeTypes, func(a, b *types.NodeType) int {
		return strings.Compare(a.Name, b.Name)
	})
	return nodeTypes, nil
}

func writeNodeType(buf *bytes.Buffer, nt *types.NodeType) error {
	buf.WriteString("[")
	buf.WriteString(nt.Name)
	buf.WriteString("]")
	formatSupertypes(buf, nt.Supertypes)
	formatFlag(buf, nt.Orderable, "orderable")
	formatFlag(buf, nt.Mixin, "mixin")
	buf.WriteByte('\n')

	for _, prop := range nt.Properties {
		if prop == nil {
			continue
		}
		if err := writeProperty(buf, nt, prop); err != nil {
			return err
		}
	}
	for _, child := range nt.ChildNodes {
		if child == nil {
			continue
		}
		if err := writeChildNode(buf, child); err != nil {
			return err
		}
	}
	buf.WriteByte('\n')
	return nil
}

func writeProperty(buf *bytes.Buffer, nt *types.NodeType, prop *types.PropertyDefinition) error {
	onVersion, err := types.NameFromValue(prop.OnParentVersion)
	if err != nil {
		return err
	}
	buf.WriteString("- ")
	buf.WriteString(prop.Name)
	formatDefaultValues(buf, prop.DefaultValues)
	formatFlag(buf, nt.IsPrimaryItem(prop), "primary")
	formatFlag(buf, prop.Mandatory, "mandatory")
	formatFlag(buf, prop.AutoCreated, "autocreated")
	formatFlag(buf, prop.Protected, "protected")
	formatFlag(buf, prop.Multiple, "multiple")
	buf.WriteByte(' ')
	buf.WriteString(onVersion)
	formatConstraints(buf, prop.ValueConstraints)
	buf.WriteByte('\n')
	return nil
}

func writeChildNode(buf *bytes.Buffer, child *types.ChildNodeDefinition) error {
	onVersion, err := types.NameFromValue(child.OnParentVersion)
	if err != nil {
		return err
	}
	buf.WriteString("+ ")
	buf.WriteString(child.Name)
	formatRequiredTypes(buf, child.RequiredPrimaryTypes)
	if child.DefaultPrimaryType != "" {
		buf.WriteString(" = ")
		buf.WriteString(child.DefaultPrimaryType)
	}
	formatFlag(buf, child.Mandatory, "mandatory")
	formatFlag(buf, child.AutoCreated, "autocreated")
	formatFlag(buf, child.Protected, "protected")
	formatFlag(buf, child.SameNameSiblings, "multiple")
	buf.WriteByte(' ')
	buf.WriteString(onVersion)
	buf.WriteByte('\n')
	return nil
}
