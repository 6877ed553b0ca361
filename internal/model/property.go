package model

// PropertyItem is one named datum attached to a node. Items are a tagged
// union of two shapes: a simple leaf {name, value} or a group {name,
// children}. Both the native-view grouped properties and the compose
// parameter groups map onto the same Group shape; nothing downstream may
// branch on which family produced an item, only on whether it has
// children.
type PropertyItem struct {
	Name     string
	Value    string
	Group    bool
	Children []PropertyItem
}

// Simple builds a leaf property item.
func Simple(name, value string) PropertyItem {
	return PropertyItem{Name: name, Value: value}
}

// GroupOf builds a group property item with the given children.
func GroupOf(name string, children ...PropertyItem) PropertyItem {
	return PropertyItem{Name: name, Group: true, Children: children}
}

// tableEntry holds either a collected item sequence or a deferred error
// surfaced when the entry is looked up during serialization.
type tableEntry struct {
	items []PropertyItem
	err   error
}

// PropertyTable maps node identifiers to their collected property items.
// A table is created fresh for one export, populated by the collector,
// read by the serializer, and discarded. Absence of an entry is a normal
// state: the node's properties object is emitted empty.
type PropertyTable struct {
	entries map[int64]tableEntry
}

// NewPropertyTable returns an empty table.
func NewPropertyTable() *PropertyTable {
	return &PropertyTable{entries: make(map[int64]tableEntry)}
}

// Put records the collected items for a node, replacing any previous
// entry so a node never owns more than one.
func (t *PropertyTable) Put(id int64, items []PropertyItem) {
	t.entries[id] = tableEntry{items: items}
}

// PutError records a per-node failure that should surface at
// serialization time as a propertiesError field rather than as absence.
func (t *PropertyTable) PutError(id int64, err error) {
	t.entries[id] = tableEntry{err: err}
}

// Lookup returns the items collected for id. A missing entry yields
// (nil, nil); an entry recorded with PutError yields its error.
func (t *PropertyTable) Lookup(id int64) ([]PropertyItem, error) {
	e, ok := t.entries[id]
	if !ok {
		return nil, nil
	}
	if e.err != nil {
		return nil, e.err
	}
	return e.items, nil
}

// Has reports whether the table holds an entry (items or error) for id.
func (t *PropertyTable) Has(id int64) bool {
	_, ok := t.entries[id]
	return ok
}

// Len returns the number of entries in the table.
func (t *PropertyTable) Len() int {
	return len(t.entries)
}
