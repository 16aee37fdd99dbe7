package sim

import "vxsim/material"

// groundedFrom answers whether (x,y) is connected, through a chain of
// Wood/Leaf cells, to a solid cell (the "ground" or a trunk rooted in it)
// or to the world floor itself. The top and side borders are not support:
// the Rock sentinel ReadCell hands out there only blocks motion, so this
// walks the grid directly with explicit bounds checks. Results are
// memoized per frame in Simulator.groundCache, capped at 200 visited cells
// so a large canopy cannot blow the per-tick budget.
func (s *Simulator) groundedFrom(x, y int) bool {
	if v, ok := s.groundCache[[2]int{x, y}]; ok {
		return v
	}

	type pt struct{ x, y int }
	start := pt{x, y}
	visited := map[pt]bool{start: true}
	stack := []pt{start}
	grounded := false

	for len(stack) > 0 && len(visited) <= 200 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, d := range neighbors8 {
			nx, ny := cur.x+d[0], cur.y+d[1]
			if ny >= s.Grid.H {
				grounded = true
				break
			}
			if !s.Grid.InBounds(nx, ny) {
				continue
			}
			nm := s.Grid.GetUnchecked(nx, ny).MaterialOf()
			if material.IsSolid(nm) && nm != material.Wood && nm != material.Leaf {
				grounded = true
				break
			}
			if nm == material.Wood || nm == material.Leaf {
				np := pt{nx, ny}
				if !visited[np] {
					visited[np] = true
					stack = append(stack, np)
				}
			}
		}
		if grounded {
			break
		}
	}

	for p := range visited {
		s.groundCache[[2]int{p.x, p.y}] = grounded
	}
	return grounded
}
