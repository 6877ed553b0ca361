// Package source loads previously captured UI trees from disk and plays
// them back through the exporter's provider interfaces. A capture file
// is the offline stand-in for the live inspection transport: it carries
// the node tree, the per-node property payloads, the window list, and
// the device info of one inspection session.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/leo-benz/ComposeLayoutDumper/internal/dump"
	"github.com/leo-benz/ComposeLayoutDumper/internal/model"
)

// captureFile is the on-disk shape of a capture.
type captureFile struct {
	Process        string          `json:"process"`
	Note           string          `json:"note"`
	APILevel       int             `json:"apiLevel"`
	ResourceLookup bool            `json:"resourceLookup"`
	Windows        []captureWindow `json:"windows"`
	Root           *captureNode    `json:"root"`
}

type captureWindow struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Visible     bool   `json:"visible"`
}

type captureNode struct {
	ID           int64           `json:"id"`
	Kind         string          `json:"kind"`
	LayoutBounds [4]int          `json:"layoutBounds"`
	RenderBounds [4]float64      `json:"renderBounds"`
	Text         string          `json:"text"`
	ViewID       string          `json:"viewId"`
	Layout       string          `json:"layout"`
	Compose      bool            `json:"compose"`
	Properties   json.RawMessage `json:"properties"`
	Children     []captureNode   `json:"children"`
}

// captureProperty mirrors one property entry in a node payload. A
// present "group" key (even an empty one) marks the group variant; an
// absent "value" distills to the string "null".
type captureProperty struct {
	Name  string             `json:"name"`
	Value *string            `json:"value"`
	Group *[]captureProperty `json:"group"`
}

// Source is one loaded capture. It supplies the root node, the window
// list, and implements dump.PropertyProvider by decoding each node's
// stored payload when the collector asks for it, so malformed payloads
// surface as ordinary per-node provider failures.
type Source struct {
	process        string
	note           string
	apiLevel       int
	resourceLookup bool
	windows        []model.Window
	root           *model.Node
	payloads       map[int64]json.RawMessage

	mu sync.Mutex // read guard handed to the collector
}

// Load reads and parses a capture file.
func Load(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read capture: %w", err)
	}
	return Parse(data)
}

// Parse decodes capture data. Node property payloads are kept raw and
// decoded lazily per request.
func Parse(data []byte) (*Source, error) {
	var cf captureFile
	if err := json.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parse capture: %w", err)
	}

	s := &Source{
		process:        cf.Process,
		note:           cf.Note,
		apiLevel:       cf.APILevel,
		resourceLookup: cf.ResourceLookup,
		payloads:       make(map[int64]json.RawMessage),
	}
	for _, w := range cf.Windows {
		s.windows = append(s.windows, model.Window{ID: w.ID, DisplayName: w.DisplayName, Visible: w.Visible})
	}
	if cf.Root != nil {
		root := s.buildNode(*cf.Root)
		s.root = &root
	}
	return s, nil
}

// buildNode converts a capture node into a model.Node and registers its
// raw property payload under its id.
func (s *Source) buildNode(cn captureNode) model.Node {
	n := model.Node{
		ID:   cn.ID,
		Kind: cn.Kind,
		LayoutBounds: model.Rect{
			X: cn.LayoutBounds[0], Y: cn.LayoutBounds[1],
			Width: cn.LayoutBounds[2], Height: cn.LayoutBounds[3],
		},
		RenderBounds: model.RectF{
			X: cn.RenderBounds[0], Y: cn.RenderBounds[1],
			Width: cn.RenderBounds[2], Height: cn.RenderBounds[3],
		},
		Text:        cn.Text,
		ResourceRef: cn.ViewID,
		LayoutRef:   cn.Layout,
	}
	if cn.Compose {
		n.Family = model.FamilyCompose
	}
	if len(cn.Properties) > 0 {
		s.payloads[cn.ID] = cn.Properties
	}
	for _, c := range cn.Children {
		n.Children = append(n.Children, s.buildNode(c))
	}
	return n
}

// Root returns the capture's root node, or nil when the capture carried
// no tree.
func (s *Source) Root() *model.Node {
	return s.root
}

// Windows returns the capture's window list.
func (s *Source) Windows() []model.Window {
	return s.windows
}

// Process returns the captured process name.
func (s *Source) Process() string {
	return s.process
}

// Note returns the capture's free-form note.
func (s *Source) Note() string {
	return s.note
}

// Device returns the capture's device section.
func (s *Source) Device() dump.DeviceConfiguration {
	return dump.DeviceConfiguration{APILevel: s.apiLevel, ResourceLookup: s.resourceLookup}
}

// Guard returns the read lock the collector must hold while reading
// children.
func (s *Source) Guard() sync.Locker {
	return &s.mu
}

// RequestProperties decodes the stored payload for node and delivers the
// result on a single-use channel. A node without a payload resolves to
// an empty item list; a payload that fails to decode resolves to an
// error.
func (s *Source) RequestProperties(ctx context.Context, node model.Node) <-chan dump.PropertyResult {
	ch := make(chan dump.PropertyResult, 1)
	go func() {
		if err := ctx.Err(); err != nil {
			ch <- dump.PropertyResult{Err: err}
			return
		}
		raw, ok := s.payloads[node.ID]
		if !ok {
			ch <- dump.PropertyResult{}
			return
		}
		var entries []captureProperty
		if err := json.Unmarshal(raw, &entries); err != nil {
			ch <- dump.PropertyResult{Err: fmt.Errorf("decode properties for node %d: %w", node.ID, err)}
			return
		}
		ch <- dump.PropertyResult{Items: convertProperties(entries)}
	}()
	return ch
}

func convertProperties(entries []captureProperty) []model.PropertyItem {
	items := make([]model.PropertyItem, 0, len(entries))
	for _, e := range entries {
		if e.Group != nil {
			items = append(items, model.PropertyItem{
				Name:     e.Name,
				Group:    true,
				Children: convertProperties(*e.Group),
			})
			continue
		}
		value := "null"
		if e.Value != nil {
			value = *e.Value
		}
		items = append(items, model.Simple(e.Name, value))
	}
	return items
}
