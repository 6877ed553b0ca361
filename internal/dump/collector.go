package dump

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/leo-benz/ComposeLayoutDumper/internal/model"
)

// PropertyResult is the settled outcome of one property request.
type PropertyResult struct {
	Items []model.PropertyItem
	Err   error
}

// PropertyProvider resolves property data for individual nodes. The
// returned channel delivers exactly one result. Requests may fail per
// node; a failure never aborts the surrounding export.
type PropertyProvider interface {
	RequestProperties(ctx context.Context, node model.Node) <-chan PropertyResult
}

// DefaultMaxPropertyDepth bounds property-group nesting. Payloads deeper
// than this are recorded as a per-entry error and surface in the
// document as propertiesError.
const DefaultMaxPropertyDepth = 64

// Collector walks the source tree and fills a PropertyTable, one
// provider request in flight at a time. Transparent nodes are skipped
// (they never own an entry) but their subtrees are still collected, so
// the table ends up indexed exactly the way the serializer reads it.
type Collector struct {
	Provider    PropertyProvider
	Transparent model.KindSet

	// Guard, when set, is the source tree owner's read lock. It is held
	// only while copying a node's children and is always released before
	// awaiting the provider.
	Guard sync.Locker

	// MaxDepth overrides DefaultMaxPropertyDepth when positive.
	MaxDepth int

	Logger *log.Logger
}

// Collect performs a pre-order walk from root and returns the populated
// table. It never fails as a whole: provider errors are logged and
// recorded as absence, malformed payloads as per-entry errors.
func (c *Collector) Collect(ctx context.Context, root model.Node) *model.PropertyTable {
	table := model.NewPropertyTable()
	c.collectNode(ctx, root, table)
	return table
}

func (c *Collector) collectNode(ctx context.Context, n model.Node, table *model.PropertyTable) {
	if !c.Transparent.Contains(n.Kind) {
		// The branch suspends here: children and siblings wait until
		// this node's request settles.
		res := <-c.Provider.RequestProperties(ctx, n)
		switch {
		case res.Err != nil:
			c.logger().Warn("property request failed", "node", n.IDString(), "kind", n.Kind, "err", res.Err)
		case itemDepth(res.Items) > c.maxDepth():
			table.PutError(n.ID, fmt.Errorf("property nesting exceeds %d levels", c.maxDepth()))
		default:
			table.Put(n.ID, res.Items)
		}
	}
	for _, child := range c.children(n) {
		c.collectNode(ctx, child, table)
	}
}

// children copies n's children under the source tree's read guard. The
// copy is what lets the guard be released before the next await.
func (c *Collector) children(n model.Node) []model.Node {
	if c.Guard == nil {
		return n.Children
	}
	c.Guard.Lock()
	kids := make([]model.Node, len(n.Children))
	copy(kids, n.Children)
	c.Guard.Unlock()
	return kids
}

func (c *Collector) maxDepth() int {
	if c.MaxDepth > 0 {
		return c.MaxDepth
	}
	return DefaultMaxPropertyDepth
}

func (c *Collector) logger() *log.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return log.Default()
}

// itemDepth returns the deepest nesting level across items; a flat list
// of leaves has depth 1.
func itemDepth(items []model.PropertyItem) int {
	depth := 0
	for _, item := range items {
		d := 1 + itemDepth(item.Children)
		if d > depth {
			depth = d
		}
	}
	return depth
}
