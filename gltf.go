package slideview

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// ErrNoGeometry is returned when a glTF file doesn't contain any triangles to display.
var ErrNoGeometry = errors.New("no triangle geometry")

// GLTFLoadOptions alters how a glTF file is turned into an Asset.
type GLTFLoadOptions struct {
	// Scene is the index of the scene to load; if negative, the file's default scene is used (or the first scene if there's no default).
	Scene int
	// DefaultColor is the color given to meshes without a material.
	DefaultColor Color
	// ConvertTosRGB converts linear material colors to sRGB for display.
	ConvertTosRGB bool
}

// DefaultGLTFLoadOptions creates an instance of GLTFLoadOptions with some sensible defaults.
func DefaultGLTFLoadOptions() *GLTFLoadOptions {
	return &GLTFLoadOptions{
		Scene:         -1,
		DefaultColor:  NewColor(0.8, 0.8, 0.8, 1),
		ConvertTosRGB: true,
	}
}

// LoadGLTFFile loads a .gltf or .glb file from the filepath given, using a provided GLTFLoadOptions struct to alter how the file is loaded.
// Passing nil for loadOptions will load the file using default load options.
func LoadGLTFFile(path string, loadOptions *GLTFLoadOptions) (*Asset, error) {

	fileData, err := os.ReadFile(path)

	if err != nil {
		return nil, fmt.Errorf("slideview: read %s: %w", path, err)
	}

	asset, err := LoadGLTFData(fileData, loadOptions)
	if err != nil {
		return nil, fmt.Errorf("slideview: load %s: %w", path, err)
	}

	return asset, nil

}

// LoadGLTFData loads .gltf or .glb data from the byte slice given. Passing nil for loadOptions will load the data using default load options.
// Only triangle primitives are loaded; every node transform in the scene is applied, so the returned Asset's Bounds are in model space.
func LoadGLTFData(data []byte, loadOptions *GLTFLoadOptions) (*Asset, error) {

	decoder := gltf.NewDecoder(bytes.NewReader(data))

	doc := gltf.NewDocument()

	if err := decoder.Decode(doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	return LoadGLTFDocument(doc, loadOptions)

}

// LoadGLTFDocument turns an already-decoded (or generated) glTF document into an Asset.
func LoadGLTFDocument(doc *gltf.Document, loadOptions *GLTFLoadOptions) (*Asset, error) {

	if loadOptions == nil {
		loadOptions = DefaultGLTFLoadOptions()
	}

	name := "Asset"

	roots := []int{}

	sceneIndex := loadOptions.Scene
	if sceneIndex < 0 && doc.Scene != nil {
		sceneIndex = int(*doc.Scene)
	}
	if sceneIndex < 0 {
		sceneIndex = 0
	}

	if sceneIndex < len(doc.Scenes) {
		scene := doc.Scenes[sceneIndex]
		if scene.Name != "" {
			name = scene.Name
		}
		for _, n := range scene.Nodes {
			roots = append(roots, int(n))
		}
	} else if len(doc.Scenes) > 0 {
		return nil, fmt.Errorf("scene %d doesn't exist (file has %d)", sceneIndex, len(doc.Scenes))
	} else {
		// No scenes; every node that isn't a child of another node is a root.
		isChild := make([]bool, len(doc.Nodes))
		for _, node := range doc.Nodes {
			for _, c := range node.Children {
				if int(c) < len(isChild) {
					isChild[int(c)] = true
				}
			}
		}
		for i := range doc.Nodes {
			if !isChild[i] {
				roots = append(roots, i)
			}
		}
	}

	asset := NewAsset(name)

	visited := make([]bool, len(doc.Nodes))

	var loadNode func(index int, parent Matrix4) error

	loadNode = func(index int, parent Matrix4) error {

		if index < 0 || index >= len(doc.Nodes) {
			return fmt.Errorf("node %d doesn't exist", index)
		}

		if visited[index] {
			return fmt.Errorf("node %d is reachable more than once", index)
		}
		visited[index] = true

		node := doc.Nodes[index]

		transform := nodeTransform(node).Mult(parent)

		if node.Mesh != nil {
			meshes, err := loadMesh(doc, int(*node.Mesh), transform, loadOptions)
			if err != nil {
				return fmt.Errorf("node %q: %w", node.Name, err)
			}
			for _, m := range meshes {
				if m.TriangleCount() > 0 {
					asset.AddMesh(m)
				}
			}
		}

		for _, child := range node.Children {
			if err := loadNode(int(child), transform); err != nil {
				return err
			}
		}

		return nil

	}

	for _, r := range roots {
		if err := loadNode(r, NewMatrix4()); err != nil {
			return nil, err
		}
	}

	if len(asset.Meshes) == 0 {
		return nil, ErrNoGeometry
	}

	return asset, nil

}

// nodeTransform returns the local transform of a glTF node. Nodes either store a matrix or separate translation, rotation, and scale;
// unset (zero) rotation and scale values mean the identity.
func nodeTransform(node *gltf.Node) Matrix4 {

	var mtData [16]float64
	allZero := true
	for i, v := range node.Matrix {
		mtData[i] = float64(v)
		if v != 0 {
			allZero = false
		}
	}

	if !allZero {
		matrix := NewMatrix4FromFloats(mtData)
		if !matrix.IsIdentity() {
			return matrix
		}
	}

	translation := [3]float64{float64(node.Translation[0]), float64(node.Translation[1]), float64(node.Translation[2])}
	rotation := [4]float64{float64(node.Rotation[0]), float64(node.Rotation[1]), float64(node.Rotation[2]), float64(node.Rotation[3])}
	scale := [3]float64{float64(node.Scale[0]), float64(node.Scale[1]), float64(node.Scale[2])}

	if rotation == [4]float64{} {
		rotation[3] = 1
	}

	if scale == [3]float64{} {
		scale = [3]float64{1, 1, 1}
	}

	return NewMatrix4TRS(translation, rotation, scale)

}

func loadMesh(doc *gltf.Document, meshIndex int, transform Matrix4, loadOptions *GLTFLoadOptions) ([]*Mesh, error) {

	if meshIndex < 0 || meshIndex >= len(doc.Meshes) {
		return nil, fmt.Errorf("mesh %d doesn't exist", meshIndex)
	}

	gltfMesh := doc.Meshes[meshIndex]

	meshes := make([]*Mesh, 0, len(gltfMesh.Primitives))

	for pi, v := range gltfMesh.Primitives {

		if v.Mode != gltf.PrimitiveTriangles {
			continue
		}

		posAccessor, exists := v.Attributes[gltf.POSITION]
		if !exists {
			continue
		}

		posBuffer := [][3]float32{}
		vertPos, err := modeler.ReadPosition(doc, doc.Accessors[posAccessor], posBuffer)

		if err != nil {
			return nil, fmt.Errorf("mesh %q positions: %w", gltfMesh.Name, err)
		}

		vertices := make([]Vector, len(vertPos))

		for i, p := range vertPos {
			vertices[i] = transform.MultVec(Vector{float64(p[0]), float64(p[1]), float64(p[2])})
		}

		var indices []int

		if v.Indices != nil {

			indexBuffer := []uint32{}

			readIndices, err := modeler.ReadIndices(doc, doc.Accessors[*v.Indices], indexBuffer)

			if err != nil {
				return nil, fmt.Errorf("mesh %q indices: %w", gltfMesh.Name, err)
			}

			indices = make([]int, len(readIndices))

			for i, j := range readIndices {
				if int(j) >= len(vertices) {
					return nil, fmt.Errorf("mesh %q: index %d out of range (%d vertices)", gltfMesh.Name, j, len(vertices))
				}
				indices[i] = int(j)
			}

		} else {

			indices = make([]int, len(vertices))
			for i := range indices {
				indices[i] = i
			}

		}

		name := gltfMesh.Name
		if len(gltfMesh.Primitives) > 1 {
			name = fmt.Sprintf("%s.%d", gltfMesh.Name, pi)
		}

		mesh := NewMesh(name)
		mesh.Color = materialColor(doc, v.Material, loadOptions)
		mesh.AddTriangles(vertices, indices)

		meshes = append(meshes, mesh)

	}

	return meshes, nil

}

func materialColor(doc *gltf.Document, material *int, loadOptions *GLTFLoadOptions) Color {

	if material == nil || int(*material) >= len(doc.Materials) {
		return loadOptions.DefaultColor
	}

	gltfMat := doc.Materials[int(*material)]

	if gltfMat.PBRMetallicRoughness == nil || gltfMat.PBRMetallicRoughness.BaseColorFactor == nil {
		// The glTF default base color is opaque white.
		return NewColor(1, 1, 1, 1)
	}

	c := gltfMat.PBRMetallicRoughness.BaseColorFactor

	color := NewColor(float32(c[0]), float32(c[1]), float32(c[2]), float32(c[3]))

	if loadOptions.ConvertTosRGB {
		color = color.ConvertTosRGB()
	}

	return color

}
