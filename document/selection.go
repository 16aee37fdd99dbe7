package document

// Selection is a rectangular region plus an optional packed mask. A nil
// Mask means "every cell in the rectangle is selected" (a pure rectangle);
// a non-nil Mask has one byte per cell of the rectangle, row-major,
// nonzero meaning selected.
type Selection struct {
	X, Y, W, H int
	Mask       []byte
}

// Empty reports whether the selection covers no area at all.
func (s Selection) Empty() bool {
	return s.W <= 0 || s.H <= 0
}

// At reports whether local rectangle coordinate (lx,ly) is selected.
func (s Selection) At(lx, ly int) bool {
	if lx < 0 || ly < 0 || lx >= s.W || ly >= s.H {
		return false
	}
	if s.Mask == nil {
		return true
	}
	return s.Mask[ly*s.W+lx] != 0
}

// Clone deep-copies the selection, in particular its mask, so two
// selections never alias each other's storage.
func (s Selection) Clone() Selection {
	out := s
	if s.Mask != nil {
		out.Mask = append([]byte(nil), s.Mask...)
	}
	return out
}

// rect returns a full-rectangle (nil-mask) selection.
func rect(x, y, w, h int) Selection {
	return Selection{X: x, Y: y, W: w, H: h}
}

// densify returns s's mask, or a fully set mask covering its rectangle
// when s has none, so bit-level algebra can always index a mask.
func densify(s Selection) []byte {
	if s.Mask != nil {
		return s.Mask
	}
	mask := make([]byte, s.W*s.H)
	for i := range mask {
		mask[i] = 1
	}
	return mask
}

// unionBounds returns the minimum bounding rectangle covering both a and b.
func unionBounds(a, b Selection) (x, y, w, h int) {
	if a.Empty() {
		return b.X, b.Y, b.W, b.H
	}
	if b.Empty() {
		return a.X, a.Y, a.W, a.H
	}
	x0 := minInt(a.X, b.X)
	y0 := minInt(a.Y, b.Y)
	x1 := maxInt(a.X+a.W, b.X+b.W)
	y1 := maxInt(a.Y+a.H, b.Y+b.H)
	return x0, y0, x1 - x0, y1 - y0
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// globalAt reports whether world coordinate (gx,gy) is selected under s.
func globalAt(s Selection, gx, gy int) bool {
	return s.At(gx-s.X, gy-s.Y)
}

// CombineSelections implements the replace/union/intersect/subtract/invert
// algebra. invert ignores next and inverts cur within bounds (w,h); every
// other op combines cur with next. The result always collapses to the
// minimum bounding rectangle of the set pixels, with a packed mask unless
// the result is a pure filled rectangle.
func CombineSelections(op string, cur, next Selection, bounds [2]int) Selection {
	if op == "replace" {
		return next.Clone()
	}
	if op == "invert" {
		w, h := bounds[0], bounds[1]
		mask := make([]byte, w*h)
		count := 0
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if !globalAt(cur, x, y) {
					mask[y*w+x] = 1
					count++
				}
			}
		}
		if count == 0 {
			return Selection{}
		}
		return cropToBounds(mask, w, h)
	}

	x0, y0, w, h := unionBounds(cur, next)
	if w <= 0 || h <= 0 {
		return Selection{}
	}
	mask := make([]byte, w*h)
	count := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			gx, gy := x0+x, y0+y
			inCur := globalAt(cur, gx, gy)
			inNext := globalAt(next, gx, gy)
			var set bool
			switch op {
			case "union":
				set = inCur || inNext
			case "intersect":
				set = inCur && inNext
			case "subtract":
				set = inCur && !inNext
			default:
				set = inNext
			}
			if set {
				mask[y*w+x] = 1
				count++
			}
		}
	}
	if count == 0 {
		return Selection{}
	}
	out := cropToBounds(mask, w, h)
	out.X += x0
	out.Y += y0
	return out
}

// cropToBounds finds the minimum bounding rectangle of the set bits in a
// w×h mask and returns a selection local to that rectangle (X,Y relative
// to the mask's own origin, i.e. the caller must add the mask's own
// offset afterward if it has one).
func cropToBounds(mask []byte, w, h int) Selection {
	minX, minY, maxX, maxY := w, h, -1, -1
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if mask[y*w+x] != 0 {
				if x < minX {
					minX = x
				}
				if y < minY {
					minY = y
				}
				if x > maxX {
					maxX = x
				}
				if y > maxY {
					maxY = y
				}
			}
		}
	}
	if maxX < 0 {
		return Selection{}
	}
	rw, rh := maxX-minX+1, maxY-minY+1
	cropped := make([]byte, rw*rh)
	full := true
	for y := 0; y < rh; y++ {
		for x := 0; x < rw; x++ {
			v := mask[(minY+y)*w+(minX+x)]
			cropped[y*rw+x] = v
			if v == 0 {
				full = false
			}
		}
	}
	if full {
		return Selection{X: minX, Y: minY, W: rw, H: rh}
	}
	return Selection{X: minX, Y: minY, W: rw, H: rh, Mask: cropped}
}
