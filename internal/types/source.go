package types

import (
	"errors"

	"gopkg.in/yaml.v3"
)

var errAliasCycle = errors.New("yaml alias refers to itself")

// Records decoded from the master files keep their source mapping node.
// Encoding re-emits that node so keys stay in file order, with only the
// filtered list key replaced. Records built in code have no source and
// encode from their fields.

// documentContent unwraps a document node to its single root
func documentContent(node *yaml.Node) *yaml.Node {
	if node != nil && node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		return node.Content[0]
	}
	return node
}

// DecodePassthrough decodes content into a node that re-encodes in source order
func DecodePassthrough(content []byte) (*yaml.Node, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(content, &node); err != nil {
		return nil, err
	}
	return expandAliases(documentContent(&node), map[*yaml.Node]bool{})
}

// DecodeSource decodes content into a section struct whose records keep
// alias-free source nodes, so filtering out an anchor cannot orphan an alias
func DecodeSource(content []byte, into any) error {
	root, err := DecodePassthrough(content)
	if err != nil {
		return err
	}
	return root.Decode(into)
}

// expandAliases returns a copy of node with every alias replaced by a copy of
// its target and anchors cleared
func expandAliases(node *yaml.Node, visiting map[*yaml.Node]bool) (*yaml.Node, error) {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		if visiting[node.Alias] {
			return nil, errAliasCycle
		}
		visiting[node.Alias] = true
		defer delete(visiting, node.Alias)
		return expandAliases(node.Alias, visiting)
	}

	out := *node
	out.Anchor = ""
	if len(node.Content) > 0 {
		out.Content = make([]*yaml.Node, len(node.Content))
		for i, child := range node.Content {
			expanded, err := expandAliases(child, visiting)
			if err != nil {
				return nil, err
			}
			out.Content[i] = expanded
		}
	}
	return &out, nil
}

// withList returns a copy of source with key set to list.
// A key missing from source is appended when always is set or count > 0.
func withList(source *yaml.Node, key string, list any, count int, always bool) (*yaml.Node, error) {
	if source.Kind != yaml.MappingNode {
		return source, nil
	}

	var value yaml.Node
	if err := value.Encode(list); err != nil {
		return nil, err
	}

	out := *source
	out.Content = make([]*yaml.Node, 0, len(source.Content)+2)
	found := false
	for i := 0; i+1 < len(source.Content); i += 2 {
		k, v := source.Content[i], source.Content[i+1]
		if k.Value == key {
			v = &value
			found = true
		}
		out.Content = append(out.Content, k, v)
	}
	if !found && (always || count > 0) {
		out.Content = append(out.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			&value,
		)
	}
	return &out, nil
}
