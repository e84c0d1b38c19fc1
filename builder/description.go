package builder

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DefaultArcCost is applied to every edge spec that does not set Cost.
const DefaultArcCost = 1.0

// Description is a declarative recipe for a graph: the node set first,
// then the arcs between them. It decodes directly from YAML.
type Description struct {
	Nodes []NodeSpec `yaml:"nodes"`
	Edges []EdgeSpec `yaml:"edges"`
}

// NodeSpec declares one node: a unique identifier and an optional payload.
// When Value is absent the identifier doubles as the payload.
type NodeSpec struct {
	ID    any `yaml:"id"`
	Value any `yaml:"value,omitempty"`
}

// EdgeSpec declares arcs from one source to one or more targets.
// Cost defaults to DefaultArcCost when unset; Mutual wires both directions.
type EdgeSpec struct {
	From   any        `yaml:"from"`
	To     TargetList `yaml:"to"`
	Cost   *float64   `yaml:"cost,omitempty"`
	Mutual bool       `yaml:"mutual,omitempty"`
}

// TargetList holds the targets of one edge spec. It accepts either a
// single YAML scalar or a sequence, so `to: B` and `to: [B, C]` both
// decode.
type TargetList []any

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *TargetList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	switch node.Kind {
	case yaml.ScalarNode:
		var single any
		if err := node.Decode(&single); err != nil {
			return err
		}
		*t = TargetList{single}
		return nil
	case yaml.SequenceNode:
		var many []any
		if err := node.Decode(&many); err != nil {
			return err
		}
		*t = TargetList(many)
		return nil
	default:
		return fmt.Errorf("builder: line %d: targets must be a scalar or a sequence", node.Line)
	}
}
