package document

import "vxsim/grid"

// BrushShape names the three brush footprints tools can paint with.
type BrushShape string

const (
	BrushSquare  BrushShape = "square"
	BrushCircle  BrushShape = "circle"
	BrushDiamond BrushShape = "diamond"
)

// ClampBrushSize clips a requested brush size to the documented [1,64]
// range.
func ClampBrushSize(size int) int {
	if size < 1 {
		return 1
	}
	if size > 64 {
		return 64
	}
	return size
}

// BrushOffsets returns the (dx,dy) offsets, relative to a center cell,
// covered by a brush of the given shape and size. Odd sizes center on a
// cell; even sizes extend one cell further toward -x/-y than toward +x/+y.
func BrushOffsets(shape BrushShape, size int) [][2]int {
	size = ClampBrushSize(size)
	half := size / 2
	var out [][2]int
	for dy := -half; dy < size-half; dy++ {
		for dx := -half; dx < size-half; dx++ {
			switch shape {
			case BrushCircle:
				r := float64(size) / 2
				fx, fy := float64(dx)+0.5, float64(dy)+0.5
				if fx*fx+fy*fy > r*r {
					continue
				}
			case BrushDiamond:
				if abs(dx)+abs(dy) > half {
					continue
				}
			}
			out = append(out, [2]int{dx, dy})
		}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// BresenhamLine returns every integer point on the line from (x0,y0) to
// (x1,y1) inclusive.
func BresenhamLine(x0, y0, x1, y1 int) [][2]int {
	var pts [][2]int
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	x, y := x0, y0
	for {
		pts = append(pts, [2]int{x, y})
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
	return pts
}

// RectOutline returns the perimeter points of the w×h rectangle anchored
// at (x,y).
func RectOutline(x, y, w, h int) [][2]int {
	if w <= 0 || h <= 0 {
		return nil
	}
	var pts [][2]int
	x1, y1 := x+w-1, y+h-1
	for xx := x; xx <= x1; xx++ {
		pts = append(pts, [2]int{xx, y}, [2]int{xx, y1})
	}
	for yy := y + 1; yy < y1; yy++ {
		pts = append(pts, [2]int{x, yy}, [2]int{x1, yy})
	}
	return pts
}

// RectFill returns every point inside the w×h rectangle anchored at (x,y).
func RectFill(x, y, w, h int) [][2]int {
	if w <= 0 || h <= 0 {
		return nil
	}
	var pts [][2]int
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			pts = append(pts, [2]int{xx, yy})
		}
	}
	return pts
}

// EllipseOutline traces a midpoint ellipse with semi-axes rx,ry centered
// at (cx,cy), four-way mirrored.
func EllipseOutline(cx, cy, rx, ry int) [][2]int {
	if rx <= 0 || ry <= 0 {
		return nil
	}
	seen := make(map[[2]int]bool)
	var pts [][2]int
	emit := func(x, y int) {
		p := [2]int{x, y}
		if !seen[p] {
			seen[p] = true
			pts = append(pts, p)
		}
	}
	x, y := 0, ry
	rx2, ry2 := rx*rx, ry*ry
	d1 := float64(ry2) - float64(rx2*ry) + 0.25*float64(rx2)
	dx, dy := 2*ry2*x, 2*rx2*y

	for dx < dy {
		emit(cx+x, cy+y)
		emit(cx-x, cy+y)
		emit(cx+x, cy-y)
		emit(cx-x, cy-y)
		if d1 < 0 {
			x++
			dx += 2 * ry2
			d1 += float64(dx) + float64(ry2)
		} else {
			x++
			y--
			dx += 2 * ry2
			dy -= 2 * rx2
			d1 += float64(dx) - float64(dy) + float64(ry2)
		}
	}

	d2 := float64(ry2)*(float64(x)+0.5)*(float64(x)+0.5) + float64(rx2)*float64(y-1)*float64(y-1) - float64(rx2*ry2)
	for y >= 0 {
		emit(cx+x, cy+y)
		emit(cx-x, cy+y)
		emit(cx+x, cy-y)
		emit(cx-x, cy-y)
		if d2 > 0 {
			y--
			dy -= 2 * rx2
			d2 += float64(rx2) - float64(dy)
		} else {
			y--
			x++
			dx += 2 * ry2
			dy -= 2 * rx2
			d2 += float64(dx) - float64(dy) + float64(rx2)
		}
	}
	return pts
}

// EllipseFill returns every point on or inside the axis-aligned ellipse
// with semi-axes rx,ry centered at (cx,cy).
func EllipseFill(cx, cy, rx, ry int) [][2]int {
	if rx <= 0 || ry <= 0 {
		return nil
	}
	var pts [][2]int
	for yy := -ry; yy <= ry; yy++ {
		fy := float64(yy) / float64(ry)
		for xx := -rx; xx <= rx; xx++ {
			fx := float64(xx) / float64(rx)
			if fx*fx+fy*fy <= 1.0 {
				pts = append(pts, [2]int{cx + xx, cy + yy})
			}
		}
	}
	return pts
}

// FloodFill walks an explicit stack from (x,y) over cells whose material
// byte matches the start cell within tolerance (0 means exact match),
// bounded by w,h, and returns every visited point. get reads the material
// id at a point (callers pass a closure over the layer/grid being
// flooded).
func FloodFill(w, h, x, y int, get func(x, y int) grid.MaterialID, tolerance int) [][2]int {
	if x < 0 || y < 0 || x >= w || y >= h {
		return nil
	}
	target := int(get(x, y))
	visited := make([]bool, w*h)
	type pt struct{ x, y int }
	stack := []pt{{x, y}}
	visited[y*w+x] = true
	var pts [][2]int
	matches := func(xx, yy int) bool {
		m := int(get(xx, yy))
		d := m - target
		if d < 0 {
			d = -d
		}
		return d <= tolerance
	}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		pts = append(pts, [2]int{cur.x, cur.y})
		for _, d := range cardinals4Doc {
			nx, ny := cur.x+d[0], cur.y+d[1]
			if nx < 0 || ny < 0 || nx >= w || ny >= h {
				continue
			}
			idx := ny*w + nx
			if visited[idx] {
				continue
			}
			if !matches(nx, ny) {
				continue
			}
			visited[idx] = true
			stack = append(stack, pt{nx, ny})
		}
	}
	return pts
}

var cardinals4Doc = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// MagicWandSelect runs FloodFill from (x,y) and packs the result into a
// Selection whose bounding box is the minimum rectangle covering the
// flooded points.
func MagicWandSelect(w, h, x, y int, get func(x, y int) grid.MaterialID, tolerance int) Selection {
	pts := FloodFill(w, h, x, y, get, tolerance)
	if len(pts) == 0 {
		return Selection{}
	}
	minX, minY, maxX, maxY := pts[0][0], pts[0][1], pts[0][0], pts[0][1]
	for _, p := range pts {
		if p[0] < minX {
			minX = p[0]
		}
		if p[0] > maxX {
			maxX = p[0]
		}
		if p[1] < minY {
			minY = p[1]
		}
		if p[1] > maxY {
			maxY = p[1]
		}
	}
	rw, rh := maxX-minX+1, maxY-minY+1
	mask := make([]byte, rw*rh)
	for _, p := range pts {
		mask[(p[1]-minY)*rw+(p[0]-minX)] = 1
	}
	return Selection{X: minX, Y: minY, W: rw, H: rh, Mask: mask}
}
