package main

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipeRunPrefix(t *testing.T) {
	// 'l' carries bit 3 and lands in the extended alphabet: 8 + 414.
	want := []int{422, 5, 0, 6, 1, 4, 2, 4, 2, 4, 4}
	for i, run := range want {
		assert.Equal(t, run, nextRun(i), "run %d", i)
	}
}

func TestRecipeCoversGrid(t *testing.T) {
	cells := (gridMaxZ - gridMinZ) * (gridMaxX - gridMinX)
	remaining, cursor := 0, 0
	for cell := 0; cell < cells; cell++ {
		if remaining == 0 {
			require.Less(t, cursor, len(layoutRecipe), "recipe exhausted at cell %d", cell)
			remaining = nextRun(cursor)
			cursor++
		} else {
			remaining--
		}
	}
}

func TestBuildWorldDeterministic(t *testing.T) {
	build := func() []float32 {
		m := &Mesh{}
		BuildWorld(m, rand.New(rand.NewSource(7)))
		return m.Data()
	}
	assert.Equal(t, build(), build())
}

func TestBuildWorldRegions(t *testing.T) {
	m := &Mesh{}
	BuildWorld(m, rand.New(rand.NewSource(1)))
	require.Greater(t, m.VertexCount(), skyboxVertices)

	// Skybox region: exactly 36 vertices on the +-10 cube.
	sky := m.Data()[:skyboxVertices*vertexStride]
	for i := 0; i < len(sky); i += vertexStride {
		for _, p := range sky[i+positionOffset : i+positionOffset+3] {
			assert.Contains(t, []float32{-10, 10}, p)
		}
	}

	// World region: the floor's single face followed by whole building
	// boxes of five faces each.
	world := m.WorldRegion()
	require.Equal(t, 0, (len(world)/vertexStride-verticesPerFace)%(5*verticesPerFace))

	// Heights stay inside the rubble and tower distributions.
	for i := verticesPerFace * vertexStride; i < len(world); i += vertexStride {
		y := world[i+positionOffset+1]
		assert.GreaterOrEqual(t, y, float32(0))
		assert.LessOrEqual(t, y, float32(8.8))
	}
}
