package dump

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/leo-benz/ComposeLayoutDumper/internal/model"
)

func TestAssemble_FullDocument(t *testing.T) {
	meta := Metadata{Timestamp: 1700000000000, ProcessName: "com.example.app", Note: "captured on demand"}
	windows := []model.Window{
		{ID: "w1", DisplayName: "Main", Visible: true},
		{ID: "w2", DisplayName: "Overlay", Visible: false},
	}
	device := DeviceConfiguration{APILevel: 34, ResourceLookup: true}

	table := model.NewPropertyTable()
	s := &Serializer{Transparent: model.NewKindSet(), Table: table}
	fragment := s.SerializeNode(model.Node{ID: 1, Kind: "Root"}, 1)

	doc := Assemble(meta, windows, fragment, device)

	want := "{\n" +
		"  \"metadata\": {\n" +
		"    \"timestamp\": 1700000000000,\n" +
		"    \"format\": \"inspector_model_with_properties\",\n" +
		"    \"processName\": \"com.example.app\",\n" +
		"    \"note\": \"captured on demand\"\n" +
		"  },\n" +
		"  \"windows\": [\n" +
		"    {\n" +
		"      \"id\": \"w1\",\n" +
		"      \"displayName\": \"Main\",\n" +
		"      \"isVisible\": true\n" +
		"    },\n" +
		"    {\n" +
		"      \"id\": \"w2\",\n" +
		"      \"displayName\": \"Overlay\",\n" +
		"      \"isVisible\": false\n" +
		"    }\n" +
		"  ],\n" +
		"  \"viewHierarchy\": " + fragment + ",\n" +
		"  \"deviceConfiguration\": {\n" +
		"    \"apiLevel\": 34,\n" +
		"    \"resourceLookup\": \"true\"\n" +
		"  }\n" +
		"}\n"
	if doc != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, doc)
	}
	if !json.Valid([]byte(doc)) {
		t.Error("assembled document is not valid JSON")
	}
}

func TestAssemble_NullHierarchy(t *testing.T) {
	doc := Assemble(Metadata{Timestamp: 1}, nil, "", DeviceConfiguration{})
	if !strings.Contains(doc, "\"viewHierarchy\": null,") {
		t.Errorf("expected null viewHierarchy, got:\n%s", doc)
	}
	if !strings.Contains(doc, "\"windows\": [],") {
		t.Errorf("expected empty windows array, got:\n%s", doc)
	}
	if !json.Valid([]byte(doc)) {
		t.Error("document is not valid JSON")
	}
}

func TestAssemble_KeyOrder(t *testing.T) {
	doc := Assemble(Metadata{Timestamp: 1}, nil, "", DeviceConfiguration{})
	positions := []int{
		strings.Index(doc, "\"metadata\""),
		strings.Index(doc, "\"windows\""),
		strings.Index(doc, "\"viewHierarchy\""),
		strings.Index(doc, "\"deviceConfiguration\""),
	}
	for i, p := range positions {
		if p < 0 {
			t.Fatalf("top-level key %d missing:\n%s", i, doc)
		}
		if i > 0 && positions[i-1] > p {
			t.Errorf("top-level keys out of order:\n%s", doc)
		}
	}
}

func TestFallbackDocument_Shape(t *testing.T) {
	doc := FallbackDocument(42, errors.New("root unreachable"))
	if !json.Valid([]byte(doc)) {
		t.Fatalf("fallback document is not valid JSON:\n%s", doc)
	}

	var parsed struct {
		Metadata struct {
			Timestamp int64  `json:"timestamp"`
			Error     string `json:"error"`
		} `json:"metadata"`
		Layout *json.RawMessage `json:"layout"`
	}
	if err := json.Unmarshal([]byte(doc), &parsed); err != nil {
		t.Fatalf("unmarshal fallback: %v", err)
	}
	if parsed.Metadata.Timestamp != 42 {
		t.Errorf("expected timestamp 42, got %d", parsed.Metadata.Timestamp)
	}
	if parsed.Metadata.Error == "" {
		t.Error("expected a non-empty error message")
	}
	if !strings.Contains(doc, "\"layout\": null") {
		t.Errorf("expected layout null, got:\n%s", doc)
	}
}

func TestFallbackDocument_EscapesMessage(t *testing.T) {
	doc := FallbackDocument(1, errors.New("read \"capture\"\nfailed"))
	if !json.Valid([]byte(doc)) {
		t.Fatalf("fallback with control characters is not valid JSON:\n%s", doc)
	}
}
