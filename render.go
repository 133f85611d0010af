package main

import (
	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"cubecity/config"
)

// renderer owns the GL side of the demo: the textures and the client-array
// pointers into the mesh. The mesh never grows after setup, so the
// pointers stay valid and dissolve writes are picked up on the next draw
// without any re-upload.
type renderer struct {
	mesh   *Mesh
	skybox [skyboxFaces]uint32
	wall   uint32
}

func initGL() {
	if err := gl.Init(); err != nil {
		panic(err)
	}
	gl.EnableClientState(gl.VERTEX_ARRAY)
	gl.EnableClientState(gl.COLOR_ARRAY)
	gl.EnableClientState(gl.TEXTURE_COORD_ARRAY)
	gl.Enable(gl.TEXTURE_2D)
	gl.Enable(gl.DEPTH_TEST)
	gl.ClearDepth(1)
}

func newRenderer(mesh *Mesh) *renderer {
	r := &renderer{mesh: mesh}

	// Skybox texture order must match the face order in the mesh.
	for i, name := range [skyboxFaces]string{"bottom.jpg", "top.jpg", "left.jpg", "right.jpg", "back.jpg", "front.jpg"} {
		r.skybox[i] = loadTexture(name, false)
	}
	r.wall = loadTexture("wall3.jpg", true)

	data := mesh.Data()
	stride := int32(vertexStride * 4)
	gl.ColorPointer(3, gl.FLOAT, stride, gl.Ptr(&data[colorOffset]))
	gl.VertexPointer(3, gl.FLOAT, stride, gl.Ptr(&data[positionOffset]))
	gl.TexCoordPointer(2, gl.FLOAT, stride, gl.Ptr(&data[texcoordOffset]))
	return r
}

// drawFrame renders one frame: skybox without depth writes while the view
// is still at the origin, then the world translated by the camera position.
func (r *renderer) drawFrame(window *glfw.Window, cam *Camera) {
	width, height := window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(width), int32(height))

	// Frustum from the live window size, every frame.
	gl.MatrixMode(gl.PROJECTION)
	gl.LoadIdentity()
	near, far := float64(config.NearPlane), float64(config.FarPlane)
	ratio := near * float64(width) / float64(height)
	gl.Frustum(-ratio, ratio, -near, near, near, far)

	gl.Enable(gl.FOG)
	gl.Fogi(gl.FOG_MODE, gl.EXP)
	gl.Fogfv(gl.FOG_COLOR, &config.FogColor[0])
	gl.Fogf(gl.FOG_DENSITY, cam.Fog()/config.FarPlane)

	view := cam.View()
	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadMatrixf(&view[0])

	// The skybox covers everything, so only depth needs clearing.
	gl.Clear(gl.DEPTH_BUFFER_BIT)
	gl.DepthMask(false)
	for i, tex := range r.skybox {
		gl.BindTexture(gl.TEXTURE_2D, tex)
		gl.DrawArrays(gl.TRIANGLES, int32(i*verticesPerFace), verticesPerFace)
	}

	pos := cam.Position()
	gl.Translatef(pos[0], pos[1], pos[2])
	gl.DepthMask(true)

	gl.BindTexture(gl.TEXTURE_2D, r.wall)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.DrawArrays(gl.TRIANGLES, skyboxVertices, int32(r.mesh.VertexCount()-skyboxVertices))
}
