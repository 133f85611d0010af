package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addTestBox(m *Mesh, mask uint32) {
	m.AddBox(mask,
		[2]float32{-1, 1}, [2]float32{-1, 1}, [2]float32{0, 2},
		[3]float32{0.25, 0.5, 0.75}, [3]float32{0, 1, 1}, [3]float32{0, 2, 1})
}

func TestAddBoxVertexCounts(t *testing.T) {
	cases := []struct {
		name  string
		mask  uint32
		faces int
	}{
		{"none", 0, 0},
		{"bottom", FaceBottom, 1},
		{"top", FaceTop, 1},
		{"sides", FaceSides, 4},
		{"building", FaceTop | FaceSides, 5},
		{"all", FaceAll, 6},
		{"unknown bit", 1 << 5, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := &Mesh{}
			addTestBox(m, tc.mask)
			assert.Equal(t, tc.faces*verticesPerFace, m.VertexCount())
			for _, v := range m.Data() {
				require.False(t, math.IsNaN(float64(v)) || math.IsInf(float64(v), 0))
			}
		})
	}
}

func TestAddBoxPositionsSpanExtents(t *testing.T) {
	m := &Mesh{}
	addTestBox(m, FaceAll)
	data := m.Data()

	corners := map[[3]float32]bool{}
	for i := 0; i < len(data); i += vertexStride {
		x := data[i+positionOffset]
		y := data[i+positionOffset+1]
		z := data[i+positionOffset+2]
		assert.Contains(t, []float32{-1, 1}, x)
		assert.Contains(t, []float32{0, 2}, y)
		assert.Contains(t, []float32{-1, 1}, z)
		corners[[3]float32{x, y, z}] = true
	}
	// A full box touches all eight corners and nothing else.
	assert.Len(t, corners, 8)
}

func TestAddBoxAppendsEveryCall(t *testing.T) {
	m := &Mesh{}
	addTestBox(m, FaceAll)
	first := append([]float32(nil), m.Data()...)

	addTestBox(m, FaceAll)
	require.Equal(t, 2*len(first), len(m.Data()))
	assert.Equal(t, first, m.Data()[:len(first)])
	assert.Equal(t, first, m.Data()[len(first):])
}

func TestAddBoxShades(t *testing.T) {
	m := &Mesh{}
	addTestBox(m, FaceAll)
	data := m.Data()

	// Colors are always grays.
	for i := 0; i < len(data); i += vertexStride {
		assert.Equal(t, data[i], data[i+1])
		assert.Equal(t, data[i+1], data[i+2])
	}

	// Bottom face takes the bottom shade whole, top face the cap shade.
	for v := 0; v < verticesPerFace; v++ {
		assert.Equal(t, float32(0.25), data[v*vertexStride])
		assert.Equal(t, float32(0.75), data[(verticesPerFace+v)*vertexStride])
	}

	// Side faces fade with height.
	for i := 2 * verticesPerFace * vertexStride; i < len(data); i += vertexStride {
		want := float32(0.25)
		if data[i+positionOffset+1] == 2 {
			want = 0.5
		}
		assert.Equal(t, want, data[i])
	}
}
