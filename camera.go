package main

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Intents are one frame's worth of boolean controls, Descent-style: look
// keys turn, Q/E roll, A/Z thrust, and Alt reroutes the look keys into
// slides. Dissolve is the held fade-out trigger.
type Intents struct {
	TurnUp, TurnDown      bool
	TurnLeft, TurnRight   bool
	RollLeft, RollRight   bool
	Forward, Back         bool
	SlideLeft, SlideRight bool
	SlideUp, SlideDown    bool
	Alt                   bool
	Dissolve              bool
}

const (
	turnSmoothing = 0.8
	moveSmoothing = 0.9
	turnThreshold = 1e-3
	turnRate      = 0.03
	moveSpeed     = 0.07
	dissolveDecay = 0.95
	dissolveFloor = 0.1
)

// Camera is the free-look state: a unit orientation quaternion, the
// rotation part of the view transform derived from it, the position, and
// the damped turn/move vectors that give the controls their inertia. It
// also owns the fog scalar and a mutable view over the mesh's world
// region, which the dissolve effect sinks in place.
type Camera struct {
	orientation mgl32.Quat
	view        mgl32.Mat4
	position    mgl32.Vec3
	turn        mgl32.Vec3
	move        mgl32.Vec3
	fog         float32
	world       []float32
}

// NewCamera starts at the demo's fixed viewpoint, outside the city looking
// in. The starting quaternion is deliberately not the identity: it pitches
// the camera so the initial view direction is level with the ground.
func NewCamera(world []float32) *Camera {
	c := &Camera{
		orientation: mgl32.Quat{W: 0.7071, V: mgl32.Vec3{0.7071, 0, 0}},
		position:    mgl32.Vec3{0, -20, 0.5},
		fog:         1,
		world:       world,
	}
	c.view = mgl32.Ident4()
	c.refreshView()
	return c
}

func (c *Camera) Position() mgl32.Vec3 { return c.position }
func (c *Camera) Fog() float32         { return c.fog }

// View returns the rotation part of the view transform. Translation by the
// camera position is applied separately, after the skybox pass.
func (c *Camera) View() mgl32.Mat4 { return c.view }

// refreshView rewrites the 3x3 rotation block from the orientation
// quaternion. The fourth row and column stay homogeneous identity padding.
func (c *Camera) refreshView() {
	w, x, y, z := c.orientation.W, c.orientation.V[0], c.orientation.V[1], c.orientation.V[2]
	c.view[0] = 1 - 2*(y*y+z*z)
	c.view[1] = 2 * (x*y + w*z)
	c.view[2] = 2 * (x*z - w*y)
	c.view[4] = 2 * (x*y - w*z)
	c.view[5] = 1 - 2*(x*x+z*z)
	c.view[6] = 2 * (y*z + w*x)
	c.view[8] = 2 * (x*z + w*y)
	c.view[9] = 2 * (y*z - w*x)
	c.view[10] = 1 - 2*(x*x+y*y)
}

func buttonAxis(pos, neg bool) float32 {
	var v float32
	if pos {
		v++
	}
	if neg {
		v--
	}
	return v
}

// Update advances the camera by one frame of input. Integration is per
// frame, not per elapsed second: the loop runs vsync-locked, so one update
// is one displayed frame and turn/move speeds track the refresh rate.
func (c *Camera) Update(in Intents) {
	// Damp the turn rate toward the raw input. Pitch and yaw are gated
	// off while Alt repurposes the look keys as slides; roll is not.
	look := float32(1)
	if in.Alt {
		look = 0
	}
	c.turn[0] = c.turn[0]*turnSmoothing + (1-turnSmoothing)*buttonAxis(in.TurnUp, in.TurnDown)*look
	c.turn[1] = c.turn[1]*turnSmoothing + (1-turnSmoothing)*buttonAxis(in.TurnRight, in.TurnLeft)*look
	c.turn[2] = c.turn[2]*turnSmoothing + (1-turnSmoothing)*buttonAxis(in.RollRight, in.RollLeft)

	if rate := c.turn.Len(); rate > turnThreshold {
		// Small-angle rotation about the damped rate vector expressed in
		// the camera's own frame, composed onto the current orientation.
		theta := rate * turnRate
		cos := float32(math.Cos(float64(theta) * 0.5))
		sin := float32(math.Sin(float64(theta)*0.5)) / rate
		delta := mgl32.Quat{W: cos, V: mgl32.Vec3{
			sin * (c.view[0]*c.turn[0] + c.view[1]*c.turn[1] + c.view[2]*c.turn[2]),
			sin * (c.view[4]*c.turn[0] + c.view[5]*c.turn[1] + c.view[6]*c.turn[2]),
			sin * (c.view[8]*c.turn[0] + c.view[9]*c.turn[1] + c.view[10]*c.turn[2]),
		}}
		// The delta multiplies on the right; together with the view-row
		// axis above, turning stays about the screen axes no matter how
		// the camera is oriented. Renormalize after every product: the
		// drift is tiny per frame but left alone it eventually skews
		// the whole view.
		c.orientation = c.orientation.Mul(delta).Normalize()
		c.refreshView()
	}

	// Desired motion in camera space. Slides come from their own keys or
	// from Alt plus the matching look key.
	mx := buttonAxis(in.SlideLeft || (in.Alt && in.TurnLeft), in.SlideRight || (in.Alt && in.TurnRight))
	my := buttonAxis(in.SlideDown || (in.Alt && in.TurnDown), in.SlideUp || (in.Alt && in.TurnUp))
	mz := buttonAxis(in.Forward, in.Back)

	// Normalize so diagonals are no faster than a single axis, clamping
	// the divisor when nothing is held.
	norm := float32(math.Sqrt(float64(mx*mx+my*my+mz*mz))) / moveSpeed
	if norm < 1e-3 {
		norm = 1
	}
	c.move[0] = c.move[0]*moveSmoothing + (1-moveSmoothing)*(c.view[0]*mx+c.view[1]*my+c.view[2]*mz)/norm
	c.move[1] = c.move[1]*moveSmoothing + (1-moveSmoothing)*(c.view[4]*mx+c.view[5]*my+c.view[6]*mz)/norm
	c.move[2] = c.move[2]*moveSmoothing + (1-moveSmoothing)*(c.view[8]*mx+c.view[9]*my+c.view[10]*mz)/norm

	// One velocity unit per frame. No clipping: the player passes freely
	// through walls and floors.
	c.position = c.position.Add(c.move)

	c.dissolve(in.Dissolve)
}

// dissolve applies one frame of the fade-out effect while its trigger is
// held: fog thins and every world-region vertex still above the height
// floor sinks by the same factor. The skybox region is never touched, and
// a released trigger leaves both the buffer and the fog scalar alone.
func (c *Camera) dissolve(active bool) {
	if !active {
		return
	}
	for i := positionOffset + 1; i < len(c.world); i += vertexStride {
		if c.world[i] > dissolveFloor {
			c.world[i] *= dissolveDecay
		}
	}
	c.fog *= dissolveDecay
}
