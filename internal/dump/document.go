package dump

import (
	"fmt"
	"strings"

	"github.com/leo-benz/ComposeLayoutDumper/internal/model"
)

// FormatName identifies the document layout for consumers.
const FormatName = "inspector_model_with_properties"

// Metadata is the document's metadata section.
type Metadata struct {
	Timestamp   int64 // epoch millis
	ProcessName string
	Note        string
}

// DeviceConfiguration is the document's trailing device section.
type DeviceConfiguration struct {
	APILevel       int
	ResourceLookup bool
}

// Assemble wraps an already-serialized hierarchy fragment with the
// metadata, windows, and device sections into the final document text.
// It performs no traversal. hierarchy is the fragment produced by
// Serializer.SerializeNode at level 1; pass "" to emit a null
// viewHierarchy.
func Assemble(meta Metadata, windows []model.Window, hierarchy string, device DeviceConfiguration) string {
	var b strings.Builder
	b.WriteString("{\n")

	b.WriteString("  \"metadata\": {\n")
	fmt.Fprintf(&b, "    \"timestamp\": %d,\n", meta.Timestamp)
	fmt.Fprintf(&b, "    \"format\": \"%s\",\n", FormatName)
	fmt.Fprintf(&b, "    \"processName\": \"%s\",\n", Escape(meta.ProcessName))
	fmt.Fprintf(&b, "    \"note\": \"%s\"\n", Escape(meta.Note))
	b.WriteString("  },\n")

	if len(windows) == 0 {
		b.WriteString("  \"windows\": [],\n")
	} else {
		b.WriteString("  \"windows\": [\n")
		for i, w := range windows {
			b.WriteString("    {\n")
			fmt.Fprintf(&b, "      \"id\": \"%s\",\n", Escape(w.ID))
			fmt.Fprintf(&b, "      \"displayName\": \"%s\",\n", Escape(w.DisplayName))
			fmt.Fprintf(&b, "      \"isVisible\": %t\n", w.Visible)
			b.WriteString("    }")
			if i < len(windows)-1 {
				b.WriteString(",")
			}
			b.WriteString("\n")
		}
		b.WriteString("  ],\n")
	}

	if hierarchy == "" {
		b.WriteString("  \"viewHierarchy\": null,\n")
	} else {
		fmt.Fprintf(&b, "  \"viewHierarchy\": %s,\n", hierarchy)
	}

	b.WriteString("  \"deviceConfiguration\": {\n")
	fmt.Fprintf(&b, "    \"apiLevel\": %d,\n", device.APILevel)
	fmt.Fprintf(&b, "    \"resourceLookup\": \"%t\"\n", device.ResourceLookup)
	b.WriteString("  }\n")
	b.WriteString("}\n")
	return b.String()
}

// FallbackDocument is the minimal document written when the export
// fails as a whole. It is always syntactically valid JSON so the caller
// still succeeds at writing something readable.
func FallbackDocument(timestamp int64, err error) string {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	var b strings.Builder
	b.WriteString("{\n")
	b.WriteString("  \"metadata\": {\n")
	fmt.Fprintf(&b, "    \"timestamp\": %d,\n", timestamp)
	fmt.Fprintf(&b, "    \"error\": \"%s\"\n", Escape(msg))
	b.WriteString("  },\n")
	b.WriteString("  \"layout\": null\n")
	b.WriteString("}\n")
	return b.String()
}
