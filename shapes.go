package slideview

import (
	"bytes"
	"math"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// shapeBuilder accumulates triangles for one glTF mesh.
type shapeBuilder struct {
	positions [][3]float32
	indices   []uint32
}

func (sb *shapeBuilder) vertex(v Vector) uint32 {
	sb.positions = append(sb.positions, [3]float32{float32(v.X), float32(v.Y), float32(v.Z)})
	return uint32(len(sb.positions) - 1)
}

func (sb *shapeBuilder) quad(a, b, c, d Vector) {
	ia, ib, ic, id := sb.vertex(a), sb.vertex(b), sb.vertex(c), sb.vertex(d)
	sb.indices = append(sb.indices, ia, ib, ic, ia, ic, id)
}

// box adds an axis-aligned box, centered on center, with outward-facing counter-clockwise triangles.
func (sb *shapeBuilder) box(center, size Vector) {

	half := size.Scale(0.5)
	min := center.Sub(half)

	start := uint32(len(sb.positions))

	for i := 0; i < 8; i++ {
		sb.vertex(Vector{
			X: min.X + size.X*float64(i&1),
			Y: min.Y + size.Y*float64((i>>1)&1),
			Z: min.Z + size.Z*float64((i>>2)&1),
		})
	}

	faces := []uint32{
		1, 3, 7, 1, 7, 5, // +X
		0, 4, 6, 0, 6, 2, // -X
		2, 6, 7, 2, 7, 3, // +Y
		0, 1, 5, 0, 5, 4, // -Y
		4, 5, 7, 4, 7, 6, // +Z
		0, 2, 3, 0, 3, 1, // -Z
	}

	for _, f := range faces {
		sb.indices = append(sb.indices, start+f)
	}

}

// trough adds an open, U-shaped channel following the path given.
func (sb *shapeBuilder) trough(path []Vector, width, depth float64) {

	if len(path) < 2 {
		return
	}

	sections := make([][4]Vector, len(path))

	for i, p := range path {

		var tangent Vector
		if i < len(path)-1 {
			tangent = path[i+1].Sub(p)
		} else {
			tangent = p.Sub(path[i-1])
		}

		side := tangent.Cross(WorldUp).Unit().Scale(width / 2)
		up := WorldUp.Scale(depth)

		sections[i] = [4]Vector{
			p.Sub(side).Add(up),    // left lip
			p.Sub(side.Scale(0.6)), // left floor
			p.Add(side.Scale(0.6)), // right floor
			p.Add(side).Add(up),    // right lip
		}

	}

	for i := 0; i < len(sections)-1; i++ {
		a, b := sections[i], sections[i+1]
		for edge := 0; edge < 3; edge++ {
			sb.quad(a[edge], a[edge+1], b[edge+1], b[edge])
		}
	}

}

// slidePath returns the centerline of the demo slide: a short first drop off the tower, a descending helix, and a straight run-out.
func slidePath() []Vector {

	path := []Vector{
		{2.4, 8.3, -1.6},
		{2.2, 6.2, -0.4},
	}

	radius := 2.2
	turns := 2.25
	steps := 48
	startAngle := math.Atan2(-0.4, 2.2)

	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		angle := startAngle + t*turns*2*math.Pi
		path = append(path, Vector{
			X: radius * math.Cos(angle),
			Y: 6.0 - 5.0*t,
			Z: radius * math.Sin(angle),
		})
	}

	last := path[len(path)-1]
	prev := path[len(path)-2]
	dir := last.Sub(prev)
	dir.Y = 0
	dir = dir.Unit()

	for i := 1; i <= 4; i++ {
		p := last.Add(dir.Scale(float64(i)))
		p.Y = last.Y - 0.1*float64(i)
		path = append(path, p)
	}

	return path

}

// NewWaterSlideDocument builds the demo water slide as a glTF document: a tower with a launch platform, a slide that drops into
// a helix, and a splash pool at the end of the run-out. Each part is its own mesh, node, and material.
func NewWaterSlideDocument() *gltf.Document {

	doc := gltf.NewDocument()

	if len(doc.Scenes) == 0 {
		doc.Scenes = append(doc.Scenes, &gltf.Scene{})
		doc.Scene = gltf.Index(0)
	}
	doc.Scenes[0].Name = "WaterSlide"

	addPart := func(name string, color [4]float64, translation Vector, sb *shapeBuilder) {

		doc.Materials = append(doc.Materials, &gltf.Material{
			Name: name,
			PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
				BaseColorFactor: &[4]float64{color[0], color[1], color[2], color[3]},
			},
		})

		doc.Meshes = append(doc.Meshes, &gltf.Mesh{
			Name: name,
			Primitives: []*gltf.Primitive{{
				Indices: gltf.Index(modeler.WriteIndices(doc, sb.indices)),
				Attributes: gltf.PrimitiveAttributes{
					gltf.POSITION: modeler.WritePosition(doc, sb.positions),
				},
				Material: gltf.Index(len(doc.Materials) - 1),
			}},
		})

		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name:        name,
			Mesh:        gltf.Index(len(doc.Meshes) - 1),
			Translation: [3]float64{translation.X, translation.Y, translation.Z},
			Rotation:    [4]float64{0, 0, 0, 1},
			Scale:       [3]float64{1, 1, 1},
		})

		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)

	}

	tower := &shapeBuilder{}
	tower.box(Vector{0, 4, 0}, Vector{1.4, 8, 1.4})
	tower.box(Vector{0, 8.1, 0.2}, Vector{2.2, 0.2, 2.2})
	addPart("Tower", [4]float64{0.45, 0.47, 0.52, 1}, Vector{2.6, 0, -2.2}, tower)

	slide := &shapeBuilder{}
	path := slidePath()
	slide.trough(path, 0.9, 0.35)
	addPart("Slide", [4]float64{1, 0.35, 0.05, 1}, Vector{}, slide)

	end := path[len(path)-1]
	pool := &shapeBuilder{}
	pool.box(Vector{}, Vector{3.2, 0.5, 3.2})
	addPart("SplashPool", [4]float64{0.05, 0.45, 0.85, 1}, Vector{end.X, 0.25, end.Z}, pool)

	return doc

}

// NewWaterSlideGLB returns the demo water slide encoded as binary glTF (.glb) data.
func NewWaterSlideGLB() ([]byte, error) {
	buf := &bytes.Buffer{}
	encoder := gltf.NewEncoder(buf)
	encoder.AsBinary = true
	if err := encoder.Encode(NewWaterSlideDocument()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// NewWaterSlideAsset returns the demo water slide as a loaded Asset.
func NewWaterSlideAsset() (*Asset, error) {
	return LoadGLTFDocument(NewWaterSlideDocument(), nil)
}
