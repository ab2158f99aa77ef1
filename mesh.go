package slideview

// Mesh is a set of triangles from a loaded model, with its vertices already transformed into the model's space
// (i.e. every glTF node transform above it has been applied).
type Mesh struct {
	Name     string
	Vertices []Vector
	Indices  []int // Three indices per triangle
	Color    Color // Base color of the mesh's material
	bounds   BoundingBox
}

// NewMesh creates a new, empty Mesh with the given name, colored white.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:   name,
		Color:  NewColor(1, 1, 1, 1),
		bounds: NewBoundingBox(),
	}
}

// AddTriangles adds the vertices and indices given to the Mesh. Indices are relative to the vertices passed in this call, and are
// truncated to a multiple of three.
func (mesh *Mesh) AddTriangles(vertices []Vector, indices []int) {

	start := len(mesh.Vertices)

	mesh.Vertices = append(mesh.Vertices, vertices...)

	for _, v := range vertices {
		mesh.bounds = mesh.bounds.Extend(v)
	}

	indices = indices[:len(indices)-len(indices)%3]
	for _, i := range indices {
		mesh.Indices = append(mesh.Indices, start+i)
	}

}

// TriangleCount returns the number of triangles in the Mesh.
func (mesh *Mesh) TriangleCount() int {
	return len(mesh.Indices) / 3
}

// Bounds returns the bounding box of the Mesh's vertices.
func (mesh *Mesh) Bounds() BoundingBox {
	return mesh.bounds
}

// Asset is a loaded model: a collection of Meshes, their combined bounding box, and the transform used to display it normalized
// (centered on the origin horizontally, resting on y = 0, and scaled to a target size).
type Asset struct {
	Name      string
	Meshes    []*Mesh
	Bounds    BoundingBox
	Scale     float64 // Uniform display scale, as set by Normalize(); 1 by default
	Transform Matrix4 // Display transform, as set by Normalize(); identity by default
}

// NewAsset creates a new, empty Asset.
func NewAsset(name string) *Asset {
	return &Asset{
		Name:      name,
		Bounds:    NewBoundingBox(),
		Scale:     1,
		Transform: NewMatrix4(),
	}
}

// AddMesh adds a Mesh to the Asset, growing the Asset's bounding box to fit it.
func (asset *Asset) AddMesh(mesh *Mesh) {
	asset.Meshes = append(asset.Meshes, mesh)
	asset.Bounds = asset.Bounds.Union(mesh.Bounds())
}

// TriangleCount returns the total number of triangles in the Asset.
func (asset *Asset) TriangleCount() int {
	count := 0
	for _, m := range asset.Meshes {
		count += m.TriangleCount()
	}
	return count
}

// NormalizedScale returns the uniform scale that makes the Asset's largest dimension equal to targetSize.
// Degenerate assets (with a largest dimension below DefaultFramingEpsilon) get a scale of 1.
func (asset *Asset) NormalizedScale(targetSize float64) float64 {
	maxDim := asset.Bounds.MaxDimension()
	if targetSize <= 0 || !(maxDim >= DefaultFramingEpsilon) {
		return 1
	}
	return targetSize / maxDim
}

// Normalize sets the Asset's display Scale and Transform so that it's centered horizontally on the origin, rests on y = 0,
// and has a largest dimension of targetSize. It returns the scale.
func (asset *Asset) Normalize(targetSize float64) float64 {

	asset.Scale = asset.NormalizedScale(targetSize)

	if asset.Bounds.IsEmpty() {
		asset.Transform = NewMatrix4Scale(asset.Scale, asset.Scale, asset.Scale)
		return asset.Scale
	}

	center := asset.Bounds.Center()

	asset.Transform = NewMatrix4Translate(-center.X, -asset.Bounds.Min.Y, -center.Z).
		Mult(NewMatrix4Scale(asset.Scale, asset.Scale, asset.Scale))

	return asset.Scale

}

// DisplayBounds returns the Asset's bounding box after its display Transform is applied.
func (asset *Asset) DisplayBounds() BoundingBox {
	return asset.Bounds.Transform(asset.Transform)
}
