package model

import (
	"fmt"
	"image"
	"math"
)

// Point represents a 2D point
type Point struct {
	X, Y float64
}

// Distance calculates the Euclidean distance to another point
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// BBox represents a bounding box in page space
type BBox struct {
	X      float64 // Left
	Y      float64 // Bottom (page coordinate system, y increases upward)
	Width  float64
	Height float64
}

// NewBBox creates a bounding box from coordinates
func NewBBox(x, y, width, height float64) BBox {
	return BBox{X: x, Y: y, Width: width, Height: height}
}

// Left returns the left edge X coordinate
func (b BBox) Left() float64 {
	return b.X
}

// Right returns the right edge X coordinate
func (b BBox) Right() float64 {
	return b.X + b.Width
}

// Bottom returns the bottom edge Y coordinate
func (b BBox) Bottom() float64 {
	return b.Y
}

// Top returns the top edge Y coordinate
func (b BBox) Top() float64 {
	return b.Y + b.Height
}

// Contains checks if a point is inside the bounding box
func (b BBox) Contains(p Point) bool {
	return p.X >= b.Left() && p.X <= b.Right() &&
		p.Y >= b.Bottom() && p.Y <= b.Top()
}

// Intersects checks if two bounding boxes intersect
func (b BBox) Intersects(other BBox) bool {
	return !(b.Right() < other.Left() ||
		b.Left() > other.Right() ||
		b.Top() < other.Bottom() ||
		b.Bottom() > other.Top())
}

// Union returns the union of two bounding boxes
func (b BBox) Union(other BBox) BBox {
	x := math.Min(b.Left(), other.Left())
	y := math.Min(b.Bottom(), other.Bottom())
	right := math.Max(b.Right(), other.Right())
	top := math.Max(b.Top(), other.Top())

	return BBox{
		X:      x,
		Y:      y,
		Width:  right - x,
		Height: top - y,
	}
}

// Area returns the area of the bounding box
func (b BBox) Area() float64 {
	return b.Width * b.Height
}

// IsValid returns true if the bounding box has positive dimensions
func (b BBox) IsValid() bool {
	return b.Width > 0 && b.Height > 0
}

// Region is a candidate table area in page space: origin bottom-left,
// y increasing upward. X1,Y1 is the top-left corner and X2,Y2 the
// bottom-right corner, the convention structured table extractors expect.
type Region struct {
	X1 float64 // left edge
	Y1 float64 // top edge, measured from the page bottom
	X2 float64 // right edge
	Y2 float64 // bottom edge, measured from the page bottom
}

// RegionFromImageRect converts a detected image-space rectangle (origin
// top-left, y increasing downward) to a page-space Region. imageHeight is the
// pixel height of the rasterized page the rectangle was detected on:
//
//	pageY1 = imageHeight - (y + h)
//	pageY2 = imageHeight - y
//
// The region spans x1..x1+w horizontally and pageY1..pageY2 vertically. No
// pixel-to-point rescaling is applied; consumers that need it scale by their
// render DPI.
func RegionFromImageRect(r image.Rectangle, imageHeight int) Region {
	x, y := float64(r.Min.X), float64(r.Min.Y)
	w, h := float64(r.Dx()), float64(r.Dy())
	ih := float64(imageHeight)

	return Region{
		X1: x,
		Y1: ih - y,
		X2: x + w,
		Y2: ih - (y + h),
	}
}

// String renders the region in the "x1,y1,x2,y2" wire form, with y1 the top
// edge and y2 the bottom edge. Coordinates are truncated to integers, matching
// the pixel-derived values they come from.
func (r Region) String() string {
	return fmt.Sprintf("%d,%d,%d,%d", int(r.X1), int(r.Y1), int(r.X2), int(r.Y2))
}

// Width returns the horizontal extent of the region.
func (r Region) Width() float64 {
	return r.X2 - r.X1
}

// Height returns the vertical extent of the region.
func (r Region) Height() float64 {
	return r.Y1 - r.Y2
}

// ContainsPoint reports whether the page-space point (x, y) lies inside the
// region, inclusive of edges.
func (r Region) ContainsPoint(x, y float64) bool {
	return x >= r.X1 && x <= r.X2 && y >= r.Y2 && y <= r.Y1
}
