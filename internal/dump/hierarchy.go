package dump

import (
	"fmt"
	"strings"

	"github.com/leo-benz/ComposeLayoutDumper/internal/model"
)

// Serializer renders the flattened node hierarchy as the viewHierarchy
// fragment of the output document. It reads the property table populated
// by the collector; both sides apply the same transparent-kind check, so
// a node the serializer emits either owns exactly one table entry or
// none.
type Serializer struct {
	Transparent model.KindSet
	Table       *model.PropertyTable
}

// SerializeNode renders n and its logical descendants at the given
// indent level. The opening brace lands at the caller's current
// position; the closing brace is indented at level.
func (s *Serializer) SerializeNode(n model.Node, level int) string {
	var b strings.Builder
	s.writeNode(&b, n, level)
	return b.String()
}

func (s *Serializer) writeNode(b *strings.Builder, n model.Node, level int) {
	in := indent(level + 1)
	b.WriteString("{\n")

	fmt.Fprintf(b, "%s\"id\": \"%s\",\n", in, Escape(n.IDString()))
	fmt.Fprintf(b, "%s\"qualifiedName\": \"%s\",\n", in, Escape(n.Kind))
	writeRect(b, "layoutBounds", n.LayoutBounds, level+1)
	b.WriteString(",\n")
	writeRect(b, "renderBounds", n.RenderBounds.Truncate(), level+1)
	b.WriteString(",\n")

	if n.Text != "" {
		fmt.Fprintf(b, "%s\"textValue\": \"%s\",\n", in, Escape(n.Text))
	}
	if n.ResourceRef != "" {
		fmt.Fprintf(b, "%s\"viewId\": \"%s\",\n", in, Escape(n.ResourceRef))
	}
	if n.LayoutRef != "" {
		fmt.Fprintf(b, "%s\"layout\": \"%s\",\n", in, Escape(n.LayoutRef))
	}

	s.writeProperties(b, n, level+1)
	b.WriteString(",\n")

	kids := model.LogicalChildren(n, s.Transparent)
	if len(kids) == 0 {
		fmt.Fprintf(b, "%s\"children\": []\n", in)
	} else {
		fmt.Fprintf(b, "%s\"children\": [\n", in)
		for i, k := range kids {
			b.WriteString(indent(level + 2))
			s.writeNode(b, k, level+2)
			if i < len(kids)-1 {
				b.WriteString(",")
			}
			b.WriteString("\n")
		}
		fmt.Fprintf(b, "%s]\n", in)
	}

	b.WriteString(indent(level) + "}")
}

// writeProperties emits the node's property object, keyed
// "composeParameters" for compose nodes and "properties" otherwise. A
// failed table lookup degrades to a propertiesError field carrying the
// message; the node and its children are still emitted.
func (s *Serializer) writeProperties(b *strings.Builder, n model.Node, level int) {
	key := "properties"
	if n.Family == model.FamilyCompose {
		key = "composeParameters"
	}
	items, err := s.Table.Lookup(n.ID)
	if err != nil {
		fmt.Fprintf(b, "%s\"propertiesError\": \"%s\"", indent(level), Escape(err.Error()))
		return
	}
	writeItems(b, key, items, level)
}

// writeRect emits a {x,y,width,height} object under name. No trailing
// comma; the caller places it.
func writeRect(b *strings.Builder, name string, r model.Rect, level int) {
	in := indent(level)
	fmt.Fprintf(b, "%s\"%s\": {\n", in, name)
	fmt.Fprintf(b, "%s\"x\": %d,\n", in+indentUnit, r.X)
	fmt.Fprintf(b, "%s\"y\": %d,\n", in+indentUnit, r.Y)
	fmt.Fprintf(b, "%s\"width\": %d,\n", in+indentUnit, r.Width)
	fmt.Fprintf(b, "%s\"height\": %d\n", in+indentUnit, r.Height)
	fmt.Fprintf(b, "%s}", in)
}
