// Package schemafile reads node type and namespace definitions from YAML
// documents for import into a repository.
//
// A document looks like:
//
//	namespaces:
//	  - prefix: app
//	    uri: http://example.com/app
//	nodeTypes:
//	  - name: app:page
//	    supertypes: [nt:base]
//	    orderable: true
//	    primaryItem: app:body
//	    properties:
//	      - name: app:title
//	        mandatory: true
//	        onParentVersion: COPY
//	    childNodes:
//	      - name: "*"
//	        requiredPrimaryTypes: [nt:base]
//	        defaultPrimaryType: nt:unstructured
//	        sameNameSiblings: true
//	        onParentVersion: VERSION
//
// onParentVersion defaults to COPY when omitted.
package schemafile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/nodetypes/pkg/types"
)

// Schema is the decoded content of a schema document.
type Schema struct {
	NodeTypes  []*types.NodeType
	Namespaces []types.Namespace
}

type document struct {
	Namespaces []types.Namespace `yaml:"namespaces"`
	NodeTypes  []nodeTypeDoc     `yaml:"nodeTypes"`
}

type nodeTypeDoc struct {
	Name        string         `yaml:"name"`
	Supertypes  []string       `yaml:"supertypes"`
	Orderable   bool           `yaml:"orderable"`
	Mixin       bool           `yaml:"mixin"`
	PrimaryItem string         `yaml:"primaryItem"`
	Properties  []propertyDoc  `yaml:"properties"`
	ChildNodes  []childNodeDoc `yaml:"childNodes"`
}

type propertyDoc struct {
	Name             string   `yaml:"name"`
	Multiple         bool     `yaml:"multiple"`
	Mandatory        bool     `yaml:"mandatory"`
	AutoCreated      bool     `yaml:"autoCreated"`
	Protected        bool     `yaml:"protected"`
	OnParentVersion  string   `yaml:"onParentVersion"`
	DefaultValues    []string `yaml:"defaultValues"`
	ValueConstraints []string `yaml:"valueConstraints"`
}

type childNodeDoc struct {
	Name                 string   `yaml:"name"`
	Mandatory            bool     `yaml:"mandatory"`
	AutoCreated          bool     `yaml:"autoCreated"`
	Protected            bool     `yaml:"protected"`
	SameNameSiblings     bool     `yaml:"sameNameSiblings"`
	RequiredPrimaryTypes []string `yaml:"requiredPrimaryTypes"`
	DefaultPrimaryType   string   `yaml:"defaultPrimaryType"`
	OnParentVersion      string   `yaml:"onParentVersion"`
}

// ErrEmptyDocument is returned when the input holds no YAML document.
var ErrEmptyDocument = errors.New("schema document is empty")

// LoadFile reads a schema document from path.
func LoadFile(path string) (*Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	schema, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return schema, nil
}

// Load decodes one schema document. Unknown keys are rejected so that a
// misspelt flag is not silently dropped.
func Load(r io.Reader) (*Schema, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("decoding schema: %w", err)
	}

	schema := &Schema{Namespaces: doc.Namespaces}
	for _, d := range doc.NodeTypes {
		nt, err := d.nodeType()
		if err != nil {
			return nil, err
		}
		schema.NodeTypes = append(schema.NodeTypes, nt)
	}
	return schema, nil
}

func (d nodeTypeDoc) nodeType() (*types.NodeType, error) {
	if d.Name == "" {
		return nil, fmt.Errorf("%w: node type without a name", types.ErrInvalidName)
	}
	nt := &types.NodeType{
		Name:        d.Name,
		Supertypes:  d.Supertypes,
		Orderable:   d.Orderable,
		Mixin:       d.Mixin,
		PrimaryItem: d.PrimaryItem,
	}
	for _, p := range d.Properties {
		action, err := onParentVersion(p.OnParentVersion)
		if err != nil {
			return nil, fmt.Errorf("node type %s, property %s: %w", d.Name, p.Name, err)
		}
		nt.Properties = append(nt.Properties, &types.PropertyDefinition{
			Name:             p.Name,
			Multiple:         p.Multiple,
			Mandatory:        p.Mandatory,
			AutoCreated:      p.AutoCreated,
			Protected:        p.Protected,
			OnParentVersion:  action,
			DefaultValues:    p.DefaultValues,
			ValueConstraints: p.ValueConstraints,
		})
	}
	for _, c := range d.ChildNodes {
		action, err := onParentVersion(c.OnParentVersion)
		if err != nil {
			return nil, fmt.Errorf("node type %s, child node %s: %w", d.Name, c.Name, err)
		}
		nt.ChildNodes = append(nt.ChildNodes, &types.ChildNodeDefinition{
			Name:                 c.Name,
			Mandatory:            c.Mandatory,
			AutoCreated:          c.AutoCreated,
			Protected:            c.Protected,
			SameNameSiblings:     c.SameNameSiblings,
			RequiredPrimaryTypes: c.RequiredPrimaryTypes,
			DefaultPrimaryType:   c.DefaultPrimaryType,
			OnParentVersion:      action,
		})
	}
	return nt, nil
}

func onParentVersion(name string) (int, error) {
	if name == "" {
		return types.OnParentVersionCopy, nil
	}
	return types.ValueFromName(name)
}
