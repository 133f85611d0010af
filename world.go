package main

import "math/rand"

// City grid bounds, in building-site cells.
const (
	gridMinX, gridMaxX = -21, 21
	gridMinZ, gridMaxZ = -14, 15
)

// layoutRecipe run-length encodes the city plan: alternating runs of empty
// and built cells, scanned row-major across the grid. Each character is a
// run length relative to 'd'; lengths with bit 3 set belong to a second,
// extended alphabet and gain 414, covering the long gaps between blocks.
// The decode position's parity picks the height distribution for the run's
// cells, so the exact character sequence is load-bearing.
const layoutRecipe = "lidjehfhfhhideiefedefedefekedeiefedefedefejfdeiefedefedefejeeieefed" +
	"efedefeiekedefedefedefeiekedefedefedefeiefefedefedefedefeieghfhfhfhm"

// nextRun decodes the run length at the given recipe position.
func nextRun(pos int) int {
	run := int(layoutRecipe[pos]) - 'd'
	if run&8 != 0 {
		run += 414
	}
	return run
}

// BuildWorld fills the mesh: the skybox first (the fixed 36-vertex region
// the renderer binds one texture per face), then the floor plane and the
// recipe-driven building grid. The rng drives building heights and tints
// only; the same seed reproduces the same city.
func BuildWorld(m *Mesh, rng *rand.Rand) {
	// Skybox: a perfect cube around the origin. Its size is mostly
	// irrelevant as long as it clears the near plane, though the distance
	// still shows up in how strongly fog tints it.
	m.AddBox(FaceAll,
		[2]float32{-10, 10}, [2]float32{-10, 10}, [2]float32{-10, 10},
		[3]float32{1, 1, 1}, [3]float32{0, 1, 1}, [3]float32{0, 1, 1})

	// Floor plane, with the wall texture tiled 60 times across.
	m.AddBox(FaceBottom,
		[2]float32{-30, 30}, [2]float32{-30, 30}, [2]float32{0, 10},
		[3]float32{0.3, 0.3, 0.4}, [3]float32{0, 0, 60}, [3]float32{0, 0, 60})

	const halfWidth = 0.5
	remaining, cursor := 0, 0
	for z := gridMinZ; z < gridMaxZ; z++ {
		for x := gridMinX; x < gridMaxX; x++ {
			if remaining == 0 {
				remaining = nextRun(cursor)
				cursor++
			} else {
				remaining--
			}

			// Odd cursor positions hold rubble (mostly empty, at most
			// ankle high), even ones a tall tower. One draw per cell
			// keeps the stream aligned regardless of what is built.
			var h float32
			if cursor&1 == 1 {
				h = float32(rng.Intn(2)) * 0.05
			} else {
				h = 0.8 * float32(4+rng.Intn(8))
			}
			if h == 0 {
				continue
			}

			capShade := float32(0.4)
			if h > 0.1 {
				// Saturates to full white on tall roofs.
				capShade = 1.4
			}
			m.AddBox(FaceTop|FaceSides,
				[2]float32{float32(x) - halfWidth, float32(x) + halfWidth},
				[2]float32{float32(z) - halfWidth, float32(z) + halfWidth},
				[2]float32{0, h},
				[3]float32{0.2 + float32(rng.Intn(1000))*0.4e-3, 1, capShade},
				[3]float32{0, 1, 1},
				[3]float32{0, h, 1})
		}
	}
}
