package geometry

import "sort"

// Outline computes the exposed edges of a group of absolute cells.
// Every cell starts with all four edges set; an edge is cleared whenever the
// neighbor across it (honoring wrap) is also in the group. The result maps
// each group cell to its remaining edge mask. Cells whose edges are all
// internal map to None.
func Outline(group []int, wrap bool, m Mapper) map[int]Direction {
	members := make(map[int]struct{}, len(group))
	for _, cell := range group {
		members[cell] = struct{}{}
	}

	masks := make(map[int]Direction, len(members))
	for cell := range members {
		mask := AllDirections
		for _, dir := range Directions {
			nb := m.Adjacent(cell, dir, wrap)
			if nb == NoNeighbor {
				continue
			}
			if _, ok := members[nb]; ok {
				mask &^= dir
			}
		}
		masks[cell] = mask
	}
	return masks
}

// OutlineRelative converts a group of relative cells to absolute indices and
// computes its outline.
func OutlineRelative(group []int, wrap bool, m Mapper) map[int]Direction {
	abs := make([]int, len(group))
	for i, rel := range group {
		abs[i] = m.ToAbsolute(rel)
	}
	return Outline(abs, wrap, m)
}

// Segments flattens an outline into line segments ordered by cell,
// dropping cells with no exposed edge.
func Segments(masks map[int]Direction) []LineSegment {
	segs := make([]LineSegment, 0, len(masks))
	for cell, mask := range masks {
		if mask == None {
			continue
		}
		segs = append(segs, LineSegment{Cell: cell, Directions: mask})
	}
	sort.Slice(segs, func(i, j int) bool {
		return segs[i].Cell < segs[j].Cell
	})
	return segs
}
