package svgdraw

// BoundingBox is an axis aligned rectangle in user space,
// used to aggregate the extents of rendered content.
type BoundingBox struct {
	MinX, MinY, MaxX, MaxY float64
	Valid                  bool // false for the empty box
}

// Union returns the smallest box containing both boxes.
// The empty box is the neutral element.
func (b BoundingBox) Union(o BoundingBox) BoundingBox {
	if !b.Valid {
		return o
	}
	if !o.Valid {
		return b
	}
	if o.MinX < b.MinX {
		b.MinX = o.MinX
	}
	if o.MinY < b.MinY {
		b.MinY = o.MinY
	}
	if o.MaxX > b.MaxX {
		b.MaxX = o.MaxX
	}
	if o.MaxY > b.MaxY {
		b.MaxY = o.MaxY
	}
	return b
}

// NewBoundingBox builds a valid box from its extent.
func NewBoundingBox(minX, minY, maxX, maxY float64) BoundingBox {
	return BoundingBox{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY, Valid: true}
}

// Width returns the horizontal extent, zero for the empty box.
func (b BoundingBox) Width() float64 {
	if !b.Valid {
		return 0
	}
	return b.MaxX - b.MinX
}

// Height returns the vertical extent, zero for the empty box.
func (b BoundingBox) Height() float64 {
	if !b.Valid {
		return 0
	}
	return b.MaxY - b.MinY
}
