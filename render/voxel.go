package render

import (
	"sort"

	"vxsim/grid"
)

// VisibleVoxel is one voxel surviving face culling, ready to draw.
type VisibleVoxel struct {
	X, Y, Z int
	Cell    grid.Cell
}

// CullAndSortVoxels culls voxels fully occluded by their +X/+Y/+Z neighbor
// (a voxel with non-empty neighbors on all three of those faces can never
// show any face to an iso/3D camera looking from the +X/+Y/+Z octant) and
// sorts the rest by (z ascending, x+y ascending, x ascending) so draw
// order matches the iso camera's depth axis.
func CullAndSortVoxels(v *grid.VoxelGrid3D) []VisibleVoxel {
	var out []VisibleVoxel
	for z := 0; z < v.D; z++ {
		for y := 0; y < v.H; y++ {
			for x := 0; x < v.W; x++ {
				c := v.Get(x, y, z)
				if c.IsEmpty() {
					continue
				}
				if voxelOccluded(v, x, y, z) {
					continue
				}
				out = append(out, VisibleVoxel{X: x, Y: y, Z: z, Cell: c})
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Z != b.Z {
			return a.Z < b.Z
		}
		sa, sb := a.X+a.Y, b.X+b.Y
		if sa != sb {
			return sa < sb
		}
		return a.X < b.X
	})
	return out
}

func voxelOccluded(v *grid.VoxelGrid3D, x, y, z int) bool {
	return !v.Get(x+1, y, z).IsEmpty() &&
		!v.Get(x, y+1, z).IsEmpty() &&
		!v.Get(x, y, z+1).IsEmpty()
}
