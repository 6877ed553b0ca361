package model

// KindSet is a set of fully-qualified kind names designated as
// transparent: such nodes are omitted from output and their children
// promoted to the omitted node's position.
type KindSet map[string]struct{}

// NewKindSet builds a KindSet from the given kind names.
func NewKindSet(kinds ...string) KindSet {
	s := make(KindSet, len(kinds))
	for _, k := range kinds {
		s[k] = struct{}{}
	}
	return s
}

// Contains reports whether kind is in the set.
func (s KindSet) Contains(kind string) bool {
	_, ok := s[kind]
	return ok
}

// Add inserts additional kind names into the set.
func (s KindSet) Add(kinds ...string) {
	for _, k := range kinds {
		s[k] = struct{}{}
	}
}

// LogicalChildren returns the children of n after collapsing transparent
// nodes: a transparent child is replaced, in place, by its own logical
// children, so chains of transparent nodes collapse fully. The relative
// pre-order position of every retained descendant is preserved. The
// function is pure and never modifies the source tree.
func LogicalChildren(n Node, transparent KindSet) []Node {
	var out []Node
	for _, c := range n.Children {
		if transparent.Contains(c.Kind) {
			out = append(out, LogicalChildren(c, transparent)...)
		} else {
			out = append(out, c)
		}
	}
	return out
}

// SyntheticRootKind is the qualifiedName of the container node created
// when a transparent export root promotes more than one logical child.
const SyntheticRootKind = "<root>"

// PromoteRoot resolves the export root when the root node itself is
// transparent. Flattening is defined over children, so a transparent root
// needs an explicit policy:
//
//   - root not transparent: root is emitted as-is
//   - transparent with no logical children: nothing to emit (ok=false)
//   - transparent with one logical child: that child becomes the root
//   - transparent with several logical children: they are wrapped in a
//     synthetic container so the document still has a single hierarchy
func PromoteRoot(root Node, transparent KindSet) (Node, bool) {
	if !transparent.Contains(root.Kind) {
		return root, true
	}
	kids := LogicalChildren(root, transparent)
	switch len(kids) {
	case 0:
		return Node{}, false
	case 1:
		return kids[0], true
	default:
		return Node{ID: 0, Kind: SyntheticRootKind, Children: kids}, true
	}
}
