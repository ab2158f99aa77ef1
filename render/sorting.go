package render

// sortingTriangle is used specifically for sorting triangles when rendering. Less data means more data fits in cache,
// which means sorting is faster.
type sortingTriangle struct {
	TriangleID int
	depth      float32
}

type sortingTriangleBin struct {
	triangles []sortingTriangle
}

// sortingTriangleBucket sorts triangles approximately by depth by dropping them into evenly sized depth bins. Triangles within a bin
// keep the order they were added in.
type sortingTriangleBucket struct {
	bins      []sortingTriangleBin
	unsetTris []sortingTriangle
}

func newSortingTriangleBucket(binCount int) *sortingTriangleBucket {
	if binCount < 1 {
		binCount = 1
	}
	return &sortingTriangleBucket{
		bins: make([]sortingTriangleBin, binCount),
	}
}

func (s *sortingTriangleBucket) AddTriangle(triID int, depth float32) {
	s.unsetTris = append(s.unsetTris, sortingTriangle{TriangleID: triID, depth: depth})
}

// Sort distributes the added triangles into the bins, with minRange and maxRange being the nearest and furthest depth.
func (s *sortingTriangleBucket) Sort(minRange, maxRange float32) {

	binCount := len(s.bins)
	rangeDiff := maxRange - minRange

	if rangeDiff == 0 {
		rangeDiff = 0.001
	}

	for _, tri := range s.unsetTris {

		targetBin := 0

		if binCount > 1 {
			depth := (tri.depth - minRange) / rangeDiff * float32(binCount)
			targetBin = int(clamp(depth, 0, float32(binCount-1)))
		}

		s.bins[targetBin].triangles = append(s.bins[targetBin].triangles, tri)

	}

}

func (s *sortingTriangleBucket) Clear() {
	for i := range s.bins {
		s.bins[i].triangles = s.bins[i].triangles[:0]
	}
	s.unsetTris = s.unsetTris[:0]
}

// ForEach calls the function given for each sorted triangle, furthest first.
func (s *sortingTriangleBucket) ForEach(forEach func(triIndex, triID int)) {

	triIndex := 0

	for binIndex := len(s.bins) - 1; binIndex >= 0; binIndex-- {
		for _, tri := range s.bins[binIndex].triangles {
			forEach(triIndex, tri.TriangleID)
			triIndex++
		}
	}

}

func (s *sortingTriangleBucket) IsEmpty() bool {
	return len(s.unsetTris) == 0
}

func clamp(value, min, max float32) float32 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
