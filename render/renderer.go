package render

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/slideview"
)

// maxBatchVertices is the most vertices a single DrawTriangles call can address with uint16 indices.
const maxBatchVertices = math.MaxUint16 - 3

// DebugInfo holds information about the Renderer's last frame.
type DebugInfo struct {
	FrameTime time.Duration // CPU time spent transforming, sorting, and submitting triangles
	TotalTris int           // Total number of triangles in the asset
	DrawnTris int           // Triangles that weren't culled
	DrawCalls int
}

type preparedTriangle struct {
	verts [3]slideview.Vector // Screen-space positions
	color slideview.Color
}

// Renderer draws an Asset's triangles with flat shading, back to front (the painter's algorithm).
type Renderer struct {
	// LightDirection is the direction light travels in world space; both faces of a triangle are lit.
	LightDirection slideview.Vector
	// Ambient is the minimum light level, from 0 to 1.
	Ambient float32
	// BackfaceCulling skips triangles facing away from the camera. The built-in slide is open, so it defaults to false.
	BackfaceCulling bool

	DebugInfo DebugInfo

	triangles  []preparedTriangle
	sorter     *sortingTriangleBucket
	vertexList []ebiten.Vertex
	indexList  []uint16
	srcImage   *ebiten.Image
}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{
		LightDirection: slideview.NewVector(-0.4, -1, -0.6).Unit(),
		Ambient:        0.35,
		sorter:         newSortingTriangleBucket(512),
	}
}

// prepare transforms, culls, shades, and depth-sorts the Asset's triangles for the Camera, filling the vertex and index lists.
func (renderer *Renderer) prepare(camera *Camera, asset *slideview.Asset) {

	renderer.triangles = renderer.triangles[:0]
	renderer.sorter.Clear()
	renderer.DebugInfo.TotalTris = 0
	renderer.DebugInfo.DrawnTris = 0

	vpMatrix := camera.ViewMatrix().Mult(camera.Projection())
	mvpMatrix := asset.Transform.Mult(vpMatrix)

	light := renderer.LightDirection.Unit()
	camPos := camera.Pose().Position

	minDepth := float32(math.MaxFloat32)
	maxDepth := float32(-math.MaxFloat32)

	for _, mesh := range asset.Meshes {

		for i := 0; i+2 < len(mesh.Indices); i += 3 {

			renderer.DebugInfo.TotalTris++

			var world [3]slideview.Vector
			var screen [3]slideview.Vector
			visible := true
			depth := 0.0

			for v := 0; v < 3; v++ {
				vert := mesh.Vertices[mesh.Indices[i+v]]
				world[v] = asset.Transform.MultVec(vert)
				clip, w := mvpMatrix.MultVecW(vert)
				// No clipping; triangles crossing the near plane are dropped.
				if w < camera.Near() || w > camera.Far() {
					visible = false
					break
				}
				screen[v] = camera.clipToScreen(clip, w)
				depth += w
			}

			if !visible {
				continue
			}

			normal := world[1].Sub(world[0]).Cross(world[2].Sub(world[0]))
			if normal.IsZero() {
				continue
			}
			normal = normal.Unit()

			if renderer.BackfaceCulling {
				center := world[0].Add(world[1]).Add(world[2]).Scale(1.0 / 3.0)
				if camPos.Sub(center).Dot(normal) < 0 {
					continue
				}
			}

			shade := renderer.Ambient + (1-renderer.Ambient)*float32(math.Abs(normal.Dot(light)))

			d := float32(depth / 3)
			if d < minDepth {
				minDepth = d
			}
			if d > maxDepth {
				maxDepth = d
			}

			renderer.sorter.AddTriangle(len(renderer.triangles), d)
			renderer.triangles = append(renderer.triangles, preparedTriangle{
				verts: screen,
				color: mesh.Color.Scale(shade),
			})

		}

	}

	renderer.DebugInfo.DrawnTris = len(renderer.triangles)

	renderer.vertexList = renderer.vertexList[:0]

	if renderer.sorter.IsEmpty() {
		return
	}

	renderer.sorter.Sort(minDepth, maxDepth)

	renderer.sorter.ForEach(func(triIndex, triID int) {
		tri := renderer.triangles[triID]
		for _, v := range tri.verts {
			renderer.vertexList = append(renderer.vertexList, ebiten.Vertex{
				DstX:   float32(v.X),
				DstY:   float32(v.Y),
				SrcX:   1,
				SrcY:   1,
				ColorR: tri.color.R,
				ColorG: tri.color.G,
				ColorB: tri.color.B,
				ColorA: tri.color.A,
			})
		}
	})

}

// Render draws the Asset to the Camera's color texture, using the Asset's display transform.
func (renderer *Renderer) Render(camera *Camera, asset *slideview.Asset) {

	t := time.Now()

	renderer.DebugInfo.DrawCalls = 0

	renderer.prepare(camera, asset)

	if renderer.srcImage == nil {
		renderer.srcImage = ebiten.NewImage(3, 3)
		renderer.srcImage.Fill(slideview.NewColor(1, 1, 1, 1).ToNRGBA64())
	}

	dst := camera.ColorTexture()

	for start := 0; start < len(renderer.vertexList); start += maxBatchVertices {

		end := start + maxBatchVertices
		if end > len(renderer.vertexList) {
			end = len(renderer.vertexList)
		}

		batch := renderer.vertexList[start:end]

		renderer.indexList = renderer.indexList[:0]
		for i := range batch {
			renderer.indexList = append(renderer.indexList, uint16(i))
		}

		dst.DrawTriangles(batch, renderer.indexList, renderer.srcImage, nil)
		renderer.DebugInfo.DrawCalls++

	}

	renderer.DebugInfo.FrameTime = time.Since(t)

}
