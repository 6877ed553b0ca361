package model

import "strconv"

// Family distinguishes which subsystem a node came from. It only affects
// the key under which the node's collected data is emitted: native view
// nodes use "properties", compose nodes use "composeParameters".
type Family int

const (
	FamilyView Family = iota
	FamilyCompose
)

// Rect is an integer rectangle in layout units.
type Rect struct {
	X, Y, Width, Height int
}

// RectF is a floating-point rectangle. Render bounds arrive as floats and
// are truncated toward zero when emitted.
type RectF struct {
	X, Y, Width, Height float64
}

// Truncate converts r to an integer Rect, truncating each coordinate
// toward zero.
func (r RectF) Truncate() Rect {
	return Rect{X: int(r.X), Y: int(r.Y), Width: int(r.Width), Height: int(r.Height)}
}

// Node is a read-only view of one node in the source UI tree. Instances
// are supplied by the source for the duration of a single export and must
// not be retained afterward.
type Node struct {
	ID           int64
	Kind         string // fully-qualified type/class name
	LayoutBounds Rect
	RenderBounds RectF
	Text         string // omitted from output when empty
	ResourceRef  string // emitted as "viewId" when present
	LayoutRef    string // emitted as "layout" when present
	Family       Family
	Children     []Node // source traversal order, preserved verbatim
}

// IDString returns the string form of the node identifier as it appears
// in the output document.
func (n Node) IDString() string {
	return strconv.FormatInt(n.ID, 10)
}

// Window describes one window of the inspected process.
type Window struct {
	ID          string
	DisplayName string
	Visible     bool
}
