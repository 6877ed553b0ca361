package dump

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/leo-benz/ComposeLayoutDumper/internal/model"
)

// Request carries everything one export needs. Root may be nil when the
// source tree is unavailable; the document then gets a null
// viewHierarchy. The provider is threaded explicitly; the exporter
// holds no ambient handles.
type Request struct {
	Root     *model.Node
	Provider PropertyProvider
	Meta     Metadata
	Windows  []model.Window
	Device   DeviceConfiguration
}

// Exporter runs the collect-then-serialize pipeline for one export at a
// time. The property table it builds is owned by the single call and
// discarded with it.
type Exporter struct {
	Transparent model.KindSet

	// Guard is the source tree owner's read lock, passed through to the
	// collector.
	Guard sync.Locker

	MaxPropertyDepth int

	Logger *log.Logger
}

// Export runs the full pipeline and returns the document text. The
// collection pass and the serialization pass traverse the same pre-order
// and re-check the same transparent set, so serialization never observes
// a table entry it does not expect.
func (e *Exporter) Export(ctx context.Context, req Request) string {
	if req.Root == nil {
		return Assemble(req.Meta, req.Windows, "", req.Device)
	}
	root := *req.Root

	collector := &Collector{
		Provider:    req.Provider,
		Transparent: e.Transparent,
		Guard:       e.Guard,
		MaxDepth:    e.MaxPropertyDepth,
		Logger:      e.Logger,
	}
	table := collector.Collect(ctx, root)

	emitRoot, ok := model.PromoteRoot(root, e.Transparent)
	if !ok {
		return Assemble(req.Meta, req.Windows, "", req.Device)
	}

	ser := &Serializer{Transparent: e.Transparent, Table: table}
	fragment := ser.SerializeNode(emitRoot, 1)
	return Assemble(req.Meta, req.Windows, fragment, req.Device)
}
