package regions

import (
	"image"
)

// component is a connected group of mask pixels.
type component struct {
	id   int32
	bbox image.Rectangle
	area int
}

// findComponents labels 8-connected components of the mask and returns them
// together with the per-pixel label grid. Label 0 means background.
func findComponents(m *mask) ([]component, []int32) {
	labels := make([]int32, m.w*m.h)
	var comps []component
	var next int32 = 1

	stack := make([]int, 0, 1024)
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			idx := y*m.w + x
			if m.bits[idx] == 0 || labels[idx] != 0 {
				continue
			}

			id := next
			next++
			c := component{id: id, bbox: image.Rect(x, y, x+1, y+1)}

			labels[idx] = id
			stack = append(stack[:0], idx)
			for len(stack) > 0 {
				cur := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				cx, cy := cur%m.w, cur/m.w

				c.area++
				if cx < c.bbox.Min.X {
					c.bbox.Min.X = cx
				}
				if cy < c.bbox.Min.Y {
					c.bbox.Min.Y = cy
				}
				if cx+1 > c.bbox.Max.X {
					c.bbox.Max.X = cx + 1
				}
				if cy+1 > c.bbox.Max.Y {
					c.bbox.Max.Y = cy + 1
				}

				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if dx == 0 && dy == 0 {
							continue
						}
						nx, ny := cx+dx, cy+dy
						if nx < 0 || ny < 0 || nx >= m.w || ny >= m.h {
							continue
						}
						nidx := ny*m.w + nx
						if m.bits[nidx] != 0 && labels[nidx] == 0 {
							labels[nidx] = id
							stack = append(stack, nidx)
						}
					}
				}
			}
			comps = append(comps, c)
		}
	}
	return comps, labels
}

// borderCoverage reports the fraction of the component's bounding-box
// perimeter occupied by the component's own pixels. A drawn rectangle
// scores near 1.0.
func borderCoverage(labels []int32, w int, c component) float64 {
	b := c.bbox
	total, covered := 0, 0

	for x := b.Min.X; x < b.Max.X; x++ {
		total += 2
		if labels[b.Min.Y*w+x] == c.id {
			covered++
		}
		if labels[(b.Max.Y-1)*w+x] == c.id {
			covered++
		}
	}
	for y := b.Min.Y + 1; y < b.Max.Y-1; y++ {
		total += 2
		if labels[y*w+b.Min.X] == c.id {
			covered++
		}
		if labels[y*w+b.Max.X-1] == c.id {
			covered++
		}
	}

	if total == 0 {
		return 0
	}
	return float64(covered) / float64(total)
}
