package world

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// FileType classifies what a node file is for.
type FileType string

const (
	FileText   FileType = "text"
	FileScript FileType = "script"
	FileItem   FileType = "item"
)

// File is a readable entry inside a node. Script and item files carry the
// id of the thing they grant when downloaded.
type File struct {
	Type         FileType `yaml:"type"`
	Content      string   `yaml:"content"`
	Cipher       bool     `yaml:"cipher,omitempty"`
	ScriptID     string   `yaml:"script_id,omitempty"`
	ItemID       string   `yaml:"item_id,omitempty"`
	Downloadable bool     `yaml:"downloadable,omitempty"`
}

// Entry is the gate guarding a node. Order of the requirement lists is
// significant: missing requirements are reported in declared order.
type Entry struct {
	Items []string `yaml:"items"`
	Flags []string `yaml:"flags"`
}

// Node is a location in the narrative graph.
type Node struct {
	Title string          `yaml:"title"`
	Desc  string          `yaml:"desc"`
	Entry Entry           `yaml:"entry"`
	Links []string        `yaml:"links"`
	Files map[string]File `yaml:"files"`
}

// World is the static narrative graph. It is immutable after Load.
type World struct {
	Start   string            `yaml:"start"`
	Nodes   map[string]Node   `yaml:"nodes"`
	Items   map[string]string `yaml:"items"`
	Scripts map[string]string `yaml:"scripts"`
}

//go:embed world.yaml
var defaultWorld []byte

// Default returns the shipped drift world.
func Default() (*World, error) {
	return Load(defaultWorld)
}

// Load parses a world definition and validates its internal references.
func Load(data []byte) (*World, error) {
	var w World
	if err := yaml.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("world definition: %w", err)
	}
	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("world definition: %w", err)
	}
	return &w, nil
}

// Node returns the node for id, if defined.
func (w *World) Node(id string) (Node, bool) {
	n, ok := w.Nodes[id]
	return n, ok
}

// Validate checks that the graph is internally consistent: the start node
// exists, every link targets a defined node, and script/item files carry
// their ids.
func (w *World) Validate() error {
	if w.Start == "" {
		return fmt.Errorf("no start node")
	}
	if _, ok := w.Nodes[w.Start]; !ok {
		return fmt.Errorf("start node %q is not defined", w.Start)
	}
	for id, node := range w.Nodes {
		for _, link := range node.Links {
			if _, ok := w.Nodes[link]; !ok {
				return fmt.Errorf("node %q links to undefined node %q", id, link)
			}
		}
		for name, f := range node.Files {
			switch f.Type {
			case FileText:
			case FileScript:
				if f.ScriptID == "" {
					return fmt.Errorf("script file %q in node %q has no script_id", name, id)
				}
			case FileItem:
				if f.ItemID == "" {
					return fmt.Errorf("item file %q in node %q has no item_id", name, id)
				}
			default:
				return fmt.Errorf("file %q in node %q has unknown type %q", name, id, f.Type)
			}
		}
	}
	return nil
}
