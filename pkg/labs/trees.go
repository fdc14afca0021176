package labs

import (
	"slices"
	"sort"

	"github.com/labex-labs/skilltag/pkg/skills"
	"github.com/pkg/errors"
)

// ErrUnknownTree is returned for a skill tree with no fence markers.
var ErrUnknownTree = errors.New("unknown skill tree")

// builtinMarkers maps each skill tree to the fence markers its lesson code
// is written under.
var builtinMarkers = map[string][]string{
	"python":     {"py", "python"},
	"pandas":     {"py", "python"},
	"numpy":      {"py", "python"},
	"matplotlib": {"py", "python"},
	"sklearn":    {"py", "python"},
	"ml":         {"py", "python"},
	"opencv":     {"py", "python"},
	"django":     {"py", "python"},
	"flask":      {"py", "python"},
	"pygame":     {"py", "python"},
	"tkinter":    {"py", "python"},
	"linux":      {"bash", "shell"},
	"shell":      {"bash", "shell"},
	"kubernetes": {"bash", "shell"},
	"docker":     {"bash", "shell"},
	"git":        {"bash", "shell"},
	"ansible":    {"bash", "shell"},
	"jenkins":    {"bash", "shell"},
	"html":       {"html"},
	"css":        {"css"},
	"javascript": {"js", "javascript"},
	"react":      {"js", "javascript"},
	"jquery":     {"js", "javascript"},
	"java":       {"java"},
	"c":          {"c"},
	"cpp":        {"cpp"},
	"go":         {"go"},
	"rust":       {"rust"},
	"mysql":      {"sql"},
}

// Tree is a skill tree resolved against the marker table and the engine.
type Tree struct {
	Name       string
	Markers    []string
	Technology skills.Technology
	// Supported is false when the engine has no rule-set for the tree.
	Supported bool
}

// markerTable merges extra markers into the built-in table. Extra entries
// add markers to a tree; they never remove built-ins.
func markerTable(extra map[string][]string) map[string][]string {
	table := make(map[string][]string, len(builtinMarkers)+len(extra))
	for name, markers := range builtinMarkers {
		table[name] = append([]string(nil), markers...)
	}
	for name, markers := range extra {
		for _, m := range markers {
			if !slices.Contains(table[name], m) {
				table[name] = append(table[name], m)
			}
		}
	}
	return table
}

// LookupTree resolves name. It fails with ErrUnknownTree when the tree has
// no markers and with a skills.UnsupportedTechnologyError when the engine
// cannot classify it.
func LookupTree(name string, extra map[string][]string) (Tree, error) {
	markers, ok := markerTable(extra)[name]
	if !ok {
		return Tree{}, errors.Wrapf(ErrUnknownTree, "%q", name)
	}
	tech, err := skills.ParseTechnology(name)
	if err != nil {
		return Tree{}, errors.Wrapf(err, "skill tree %q", name)
	}
	return Tree{Name: name, Markers: markers, Technology: tech, Supported: true}, nil
}

// Trees lists every known tree, sorted by name, marking which ones the
// engine supports.
func Trees(extra map[string][]string) []Tree {
	table := markerTable(extra)
	trees := make([]Tree, 0, len(table))
	for name, markers := range table {
		tree := Tree{Name: name, Markers: markers}
		if tech, err := skills.ParseTechnology(name); err == nil {
			tree.Technology = tech
			tree.Supported = true
		}
		trees = append(trees, tree)
	}
	sort.Slice(trees, func(i, j int) bool { return trees[i].Name < trees[j].Name })
	return trees
}
