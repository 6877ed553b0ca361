package dump

import (
	"fmt"
	"strings"

	"github.com/leo-benz/ComposeLayoutDumper/internal/model"
)

// indentUnit is the per-level indentation of the output document.
const indentUnit = "  "

func indent(level int) string {
	return strings.Repeat(indentUnit, level)
}

// writeItem emits one property item at the given indent level. An item
// nests if and only if it actually has children: a group that arrived
// empty is emitted as a leaf with the value "null", exactly like a
// simple item with no value. The trailing comma is suppressed on the
// last item of each object.
func writeItem(b *strings.Builder, item model.PropertyItem, level int, last bool) {
	in := indent(level)
	if len(item.Children) > 0 {
		fmt.Fprintf(b, "%s\"%s\": {\n", in, Escape(item.Name))
		for i, c := range item.Children {
			writeItem(b, c, level+1, i == len(item.Children)-1)
		}
		fmt.Fprintf(b, "%s}", in)
	} else {
		v := item.Value
		if item.Group || v == "" {
			v = "null"
		}
		fmt.Fprintf(b, "%s\"%s\": \"%s\"", in, Escape(item.Name), Escape(v))
	}
	if !last {
		b.WriteString(",")
	}
	b.WriteString("\n")
}

// SerializeItem renders a single property item as text. Used directly by
// tests and by the hierarchy serializer via writeItem.
func SerializeItem(item model.PropertyItem, level int) string {
	var b strings.Builder
	writeItem(&b, item, level, true)
	return b.String()
}

// writeItems emits a property object under key: either "{}" when items
// is empty or a multi-line object with one entry per item, in the order
// the provider returned them. The trailing comma after the closing brace
// is the caller's concern.
func writeItems(b *strings.Builder, key string, items []model.PropertyItem, level int) {
	in := indent(level)
	if len(items) == 0 {
		fmt.Fprintf(b, "%s\"%s\": {}", in, key)
		return
	}
	fmt.Fprintf(b, "%s\"%s\": {\n", in, key)
	for i, item := range items {
		writeItem(b, item, level+1, i == len(items)-1)
	}
	fmt.Fprintf(b, "%s}", in)
}
