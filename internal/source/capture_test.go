package source

import (
	"context"
	"testing"

	"github.com/leo-benz/ComposeLayoutDumper/internal/model"
)

const sampleCapture = `{
  "process": "com.example.app",
  "note": "demo",
  "apiLevel": 34,
  "resourceLookup": true,
  "windows": [
    {"id": "w1", "displayName": "Main", "visible": true}
  ],
  "root": {
    "id": 1,
    "kind": "android.widget.FrameLayout",
    "layoutBounds": [0, 0, 1080, 1920],
    "renderBounds": [0.0, 0.0, 1080.5, 1920.9],
    "viewId": "@id/content",
    "properties": [{"name": "visibility", "value": "VISIBLE"}],
    "children": [
      {
        "id": 2,
        "kind": "androidx.compose.material3.Text",
        "layoutBounds": [10, 10, 200, 40],
        "renderBounds": [10.0, 10.0, 200.0, 40.0],
        "text": "Hello",
        "compose": true,
        "properties": [
          {"name": "text", "value": "Hello"},
          {"name": "style", "group": [{"name": "fontSize", "value": "14.0.sp"}]}
        ]
      }
    ]
  }
}`

func TestParse_Tree(t *testing.T) {
	src, err := Parse([]byte(sampleCapture))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	root := src.Root()
	if root == nil {
		t.Fatal("expected a root node")
	}
	if root.ID != 1 || root.Kind != "android.widget.FrameLayout" {
		t.Errorf("unexpected root: %+v", root)
	}
	if root.LayoutBounds != (model.Rect{X: 0, Y: 0, Width: 1080, Height: 1920}) {
		t.Errorf("unexpected layout bounds: %+v", root.LayoutBounds)
	}
	if root.ResourceRef != "@id/content" {
		t.Errorf("unexpected viewId: %q", root.ResourceRef)
	}
	if len(root.Children) != 1 {
		t.Fatalf("expected 1 child, got %d", len(root.Children))
	}
	child := root.Children[0]
	if child.Family != model.FamilyCompose {
		t.Error("expected child to be a compose node")
	}
	if child.Text != "Hello" {
		t.Errorf("unexpected text: %q", child.Text)
	}
}

func TestParse_MetaAndWindows(t *testing.T) {
	src, err := Parse([]byte(sampleCapture))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if src.Process() != "com.example.app" || src.Note() != "demo" {
		t.Errorf("unexpected meta: %q %q", src.Process(), src.Note())
	}
	dev := src.Device()
	if dev.APILevel != 34 || !dev.ResourceLookup {
		t.Errorf("unexpected device: %+v", dev)
	}
	ws := src.Windows()
	if len(ws) != 1 || ws[0].ID != "w1" || !ws[0].Visible {
		t.Errorf("unexpected windows: %+v", ws)
	}
}

func TestRequestProperties_Success(t *testing.T) {
	src, err := Parse([]byte(sampleCapture))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	res := <-src.RequestProperties(context.Background(), *src.Root())
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if len(res.Items) != 1 || res.Items[0].Name != "visibility" || res.Items[0].Value != "VISIBLE" {
		t.Errorf("unexpected items: %+v", res.Items)
	}
}

func TestRequestProperties_GroupAndMissingValue(t *testing.T) {
	src, err := Parse([]byte(sampleCapture))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	child := src.Root().Children[0]
	res := <-src.RequestProperties(context.Background(), child)
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if len(res.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(res.Items))
	}
	style := res.Items[1]
	if !style.Group || len(style.Children) != 1 || style.Children[0].Name != "fontSize" {
		t.Errorf("unexpected group item: %+v", style)
	}
}

func TestRequestProperties_NoPayload(t *testing.T) {
	src, err := Parse([]byte(sampleCapture))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	res := <-src.RequestProperties(context.Background(), model.Node{ID: 99})
	if res.Err != nil {
		t.Fatalf("missing payload must resolve empty, got error: %v", res.Err)
	}
	if len(res.Items) != 0 {
		t.Errorf("expected no items, got %+v", res.Items)
	}
}

func TestRequestProperties_MalformedPayload(t *testing.T) {
	capture := `{
  "process": "p",
  "root": {"id": 1, "kind": "K", "layoutBounds": [0,0,1,1], "renderBounds": [0,0,1,1],
           "properties": {"not": "an array"}}
}`
	src, err := Parse([]byte(capture))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	res := <-src.RequestProperties(context.Background(), *src.Root())
	if res.Err == nil {
		t.Error("expected a decode error for the malformed payload")
	}
}

func TestRequestProperties_MissingValueBecomesNull(t *testing.T) {
	capture := `{
  "root": {"id": 1, "kind": "K", "layoutBounds": [0,0,1,1], "renderBounds": [0,0,1,1],
           "properties": [{"name": "elevation"}]}
}`
	src, err := Parse([]byte(capture))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	res := <-src.RequestProperties(context.Background(), *src.Root())
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if len(res.Items) != 1 || res.Items[0].Value != "null" {
		t.Errorf("expected value distilled to \"null\", got %+v", res.Items)
	}
}

func TestParse_NoRoot(t *testing.T) {
	src, err := Parse([]byte(`{"process": "p"}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if src.Root() != nil {
		t.Error("expected nil root for a capture without a tree")
	}
}
