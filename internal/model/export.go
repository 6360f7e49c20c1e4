package model

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is an export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Formats lists the supported export formats.
var Formats = []Format{FormatJSON, FormatYAML, FormatTOML}

// ParseFormat parses a format name, case-insensitively. "yml" is accepted.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("unknown format %q (expected json, yaml or toml)", s)
}

// tomlDocument wraps the list because TOML has no top-level arrays.
type tomlDocument struct {
	Tasks List `toml:"tasks"`
}

// Export writes l to w in the given format.
func Export(w io.Writer, l List, f Format) error {
	if l == nil {
		l = List{}
	}

	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(l); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
	case FormatYAML:
		data, err := yaml.Marshal(buildListNode(l))
		if err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		if _, err := w.Write(data); err != nil {
			return err
		}
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(tomlDocument{Tasks: l}); err != nil {
			return fmt.Errorf("failed to encode toml: %w", err)
		}
	default:
		return fmt.Errorf("unknown format %q", f)
	}
	return nil
}

// buildListNode creates a yaml.Node tree so fields keep their declared
// order and types regardless of content ("true", "123" stay strings).
func buildListNode(l List) *yaml.Node {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, t := range l {
		node := &yaml.Node{Kind: yaml.MappingNode}
		addScalar(node, "id", strconv.FormatInt(t.ID, 10), "!!int")
		addScalar(node, "text", t.Text, "!!str")
		addScalar(node, "done", strconv.FormatBool(t.Done), "!!bool")
		seq.Content = append(seq.Content, node)
	}
	if len(seq.Content) == 0 {
		seq.Style = yaml.FlowStyle
	}
	return seq
}

func addScalar(node *yaml.Node, key, value, tag string) {
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Value: value, Tag: tag},
	)
}
