// Package yamlfile loads program graph snapshots from YAML documents.
//
// A graph file lists nodes with a loose params map, edges, and optional
// playback configuration:
//
//	nodes:
//	  - id: start
//	    type: start
//	  - id: side
//	    type: move
//	    params:
//	      distance: 50
//	edges:
//	  - from: start
//	    to: side
//	config:
//	  speed_level: 5
package yamlfile

import (
	"fmt"
	"io"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/tortugraph/tortuga/pkg/domain"
	"github.com/tortugraph/tortuga/pkg/ports"
)

// Source is a parsed graph file. It satisfies ports.GraphSource.
type Source struct {
	nodes  []domain.Node
	edges  []domain.Edge
	config domain.RunConfig
}

var _ ports.GraphSource = (*Source)(nil)

// Snapshot returns the parsed node/edge lists.
func (s *Source) Snapshot() ([]domain.Node, []domain.Edge, error) {
	return s.nodes, s.edges, nil
}

// Config returns the playback settings from the file's config block,
// falling back to defaults for the whole block when absent.
func (s *Source) Config() domain.RunConfig {
	return s.config
}

// Load reads and parses a graph file from disk.
func Load(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open graph file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes a graph document from r.
func Parse(r io.Reader) (*Source, error) {
	var raw rawFile
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode graph yaml: %w", err)
	}

	src := &Source{config: domain.DefaultRunConfig()}

	for i, rn := range raw.Nodes {
		if rn.ID == "" {
			return nil, fmt.Errorf("node %d: missing id", i)
		}
		node := domain.Node{
			ID:    rn.ID,
			Kind:  rn.Type,
			Muted: rn.Muted,
		}
		if len(rn.Params) > 0 {
			if err := decodeParams(rn.Params, &node); err != nil {
				return nil, fmt.Errorf("node %s: %w", rn.ID, err)
			}
		}
		src.nodes = append(src.nodes, node)
	}

	for i, re := range raw.Edges {
		if re.From == "" || re.To == "" {
			return nil, fmt.Errorf("edge %d: missing endpoint", i)
		}
		port := re.Port
		if port == "" {
			port = domain.PortDefault
		}
		src.edges = append(src.edges, domain.Edge{From: re.From, To: re.To, Port: port})
	}

	if len(raw.Config) > 0 {
		if err := mapstructure.WeakDecode(raw.Config, &src.config); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	}

	return src, nil
}

// decodeParams maps the loose params block onto the node's typed fields.
// WeaklyTypedInput tolerates YAML's int/float ambiguity.
func decodeParams(params map[string]any, node *domain.Node) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           node,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(params); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}
	return nil
}

type rawFile struct {
	Nodes  []rawNode      `yaml:"nodes"`
	Edges  []rawEdge      `yaml:"edges"`
	Config map[string]any `yaml:"config"`
}

type rawNode struct {
	ID     string         `yaml:"id"`
	Type   string         `yaml:"type"`
	Muted  bool           `yaml:"muted"`
	Params map[string]any `yaml:"params"`
}

type rawEdge struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
	Port string `yaml:"port"`
}
