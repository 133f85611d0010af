package main

// Interleaved vertex layout shared with the fixed-function draw calls:
// 8 float32 per vertex, color rgb at 0, position xyz at 3, texcoord uv at 6.
const (
	vertexStride   = 8
	colorOffset    = 0
	positionOffset = 3
	texcoordOffset = 6

	verticesPerFace = 6
	skyboxFaces     = 6
	skyboxVertices  = skyboxFaces * verticesPerFace
)

// Face-selection groups. The four side faces share one bit so a box can
// shade its bottom, top and sides independently but never emit a single
// side wall on its own.
const (
	FaceBottom uint32 = 1 << iota
	FaceTop
	FaceSides

	FaceAll = FaceBottom | FaceTop | FaceSides
)

// A face is emitted as two triangles over four quad corners. For each
// corner, the recipe records whether to sample the min (0) or max (1)
// element of the box's x/y/z extent pairs. Horizontal faces are "caps":
// their shade and texcoords come from the third tint/texcoord element
// instead of the second, so rooftops can be lit differently from walls.
type faceRecipe struct {
	group   uint32
	cap     bool
	x, y, z [4]int
}

// Faces are listed in skybox texture order: bottom, top, left, right,
// back, front. The render pass relies on this when it binds one texture
// per 6-vertex group of the skybox region.
var faceTable = [6]faceRecipe{
	{group: FaceBottom, cap: true, x: [4]int{0, 1, 1, 0}, y: [4]int{0, 0, 0, 0}, z: [4]int{1, 1, 0, 0}},
	{group: FaceTop, cap: true, x: [4]int{1, 0, 0, 1}, y: [4]int{1, 1, 1, 1}, z: [4]int{1, 1, 0, 0}},
	{group: FaceSides, x: [4]int{1, 1, 0, 0}, y: [4]int{0, 1, 1, 0}, z: [4]int{0, 0, 0, 0}},
	{group: FaceSides, x: [4]int{0, 0, 1, 1}, y: [4]int{0, 1, 1, 0}, z: [4]int{1, 1, 1, 1}},
	{group: FaceSides, x: [4]int{0, 0, 0, 0}, y: [4]int{0, 1, 1, 0}, z: [4]int{0, 0, 1, 1}},
	{group: FaceSides, x: [4]int{1, 1, 1, 1}, y: [4]int{0, 1, 1, 0}, z: [4]int{1, 1, 0, 0}},
}

// Corner order for the two triangles of a quad; together with the
// per-face corner selections above this fixes the winding.
var quadCorners = [verticesPerFace]int{3, 0, 1, 1, 2, 3}

// Texcoord min/max selection per quad corner, identical on every face.
var (
	quadU = [4]int{1, 1, 0, 0}
	quadV = [4]int{1, 0, 0, 1}
)

// Mesh is a flat append-only buffer of interleaved vertices, owned by the
// render loop and read in place by the client-array draw calls.
type Mesh struct {
	data []float32
}

func (m *Mesh) Data() []float32 { return m.data }

func (m *Mesh) VertexCount() int { return len(m.data) / vertexStride }

// WorldRegion is everything after the skybox: the part of the buffer the
// dissolve effect is allowed to mutate.
func (m *Mesh) WorldRegion() []float32 { return m.data[skyboxVertices*vertexStride:] }

// AddBox appends the selected faces of an axis-aligned box as triangles.
// x, z and y are min/max extent pairs (y is the vertical axis). tint holds
// the bottom, top and cap shades, applied as grays; u and v hold min, max
// and cap-max texture coordinates. Degenerate extents are legal and mask
// bits outside the face groups select nothing. Every call appends; nothing
// is deduplicated.
func (m *Mesh) AddBox(mask uint32, x, z, y [2]float32, tint, u, v [3]float32) {
	for _, f := range faceTable {
		if mask&f.group == 0 {
			continue
		}
		capShift := 0
		if f.cap {
			capShift = 1
		}
		for _, corner := range quadCorners {
			// The vertical selection doubles as the shade selection:
			// side-face vertices fade from the bottom shade to the top
			// shade, while cap faces take the bottom or cap shade whole.
			shade := tint[f.y[corner]<<capShift]
			m.data = append(m.data,
				shade, shade, shade,
				x[f.x[corner]], y[f.y[corner]], z[f.z[corner]],
				u[quadU[corner]<<capShift], v[quadV[corner]<<capShift],
			)
		}
	}
}
