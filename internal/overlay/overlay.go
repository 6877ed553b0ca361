// Package overlay renders the flattened node hierarchy as a wireframe
// image: one rectangle per node's layout bounds, optionally labeled with
// the node id.
package overlay

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/leo-benz/ComposeLayoutDumper/internal/model"
)

// LabelMode controls what text is drawn on each node box.
type LabelMode int

const (
	// LabelNone draws boxes only.
	LabelNone LabelMode = iota
	// LabelIDs draws "[id]" at each box center.
	LabelIDs
)

// Options configures rendering.
type Options struct {
	Transparent model.KindSet
	Labels      LabelMode
}

// Render draws root and its logical descendants onto a white canvas the
// size of the root's layout bounds. Transparent nodes contribute no box;
// their promoted children are drawn in their place, mirroring the
// exported document.
func Render(root model.Node, opts Options) (image.Image, error) {
	w := root.LayoutBounds.Width
	h := root.LayoutBounds.Height
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("root has empty layout bounds %dx%d", w, h)
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	offX, offY := root.LayoutBounds.X, root.LayoutBounds.Y
	drawNode(img, root, offX, offY, opts)
	return img, nil
}

func drawNode(img *image.RGBA, n model.Node, offX, offY int, opts Options) {
	b := n.LayoutBounds
	x, y := b.X-offX, b.Y-offY
	drawRectangle(img, x, y, x+b.Width, y+b.Height, color.RGBA{R: 255, A: 255})

	if opts.Labels == LabelIDs {
		label := fmt.Sprintf("[%s]", n.IDString())
		drawTextWithOutline(img, label, x+b.Width/2, y+b.Height/2,
			color.RGBA{R: 255, G: 255, B: 255, A: 255},
			color.RGBA{A: 200})
	}

	for _, c := range model.LogicalChildren(n, opts.Transparent) {
		drawNode(img, c, offX, offY, opts)
	}
}

// isWithinBounds checks if a point is within the image bounds
func isWithinBounds(bounds image.Rectangle, x, y int) bool {
	return x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y
}

// drawRectangle draws a rectangle outline on the image
func drawRectangle(img *image.RGBA, x1, y1, x2, y2 int, c color.Color) {
	bounds := img.Bounds()

	// Clamp to image bounds
	if x1 < bounds.Min.X {
		x1 = bounds.Min.X
	}
	if y1 < bounds.Min.Y {
		y1 = bounds.Min.Y
	}
	if x2 > bounds.Max.X {
		x2 = bounds.Max.X
	}
	if y2 > bounds.Max.Y {
		y2 = bounds.Max.Y
	}

	if x2 <= x1 || y2 <= y1 {
		return // Empty rectangle
	}

	// Draw top and bottom lines
	for x := x1; x < x2; x++ {
		if isWithinBounds(bounds, x, y1) {
			img.Set(x, y1, c)
		}
		if isWithinBounds(bounds, x, y2-1) {
			img.Set(x, y2-1, c)
		}
	}

	// Draw left and right lines
	for y := y1; y < y2; y++ {
		if isWithinBounds(bounds, x1, y) {
			img.Set(x1, y, c)
		}
		if isWithinBounds(bounds, x2-1, y) {
			img.Set(x2-1, y, c)
		}
	}
}

// drawTextWithOutline draws text with an outline for better visibility
func drawTextWithOutline(img *image.RGBA, text string, x, y int, textColor, outlineColor color.Color) {
	// basicfont.Face7x13 is 7 pixels wide and 13 high per character
	textWidth := len(text) * 7
	textHeight := 13

	offsetX := x - textWidth/2
	offsetY := y - textHeight/2

	// Draw outline around the text
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			p := fixed.Point26_6{
				X: fixed.Int26_6((offsetX + dx) * 64),
				Y: fixed.Int26_6((offsetY + dy) * 64),
			}
			d := &font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(outlineColor),
				Face: basicfont.Face7x13,
				Dot:  p,
			}
			d.DrawString(text)
		}
	}

	point := fixed.Point26_6{
		X: fixed.Int26_6(offsetX * 64),
		Y: fixed.Int26_6(offsetY * 64),
	}
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(textColor),
		Face: basicfont.Face7x13,
		Dot:  point,
	}
	d.DrawString(text)
}
