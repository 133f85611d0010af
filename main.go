package main

import (
	"fmt"
	"math/rand"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl64"

	"cubecity/config"
)

type app struct {
	window   *glfw.Window
	camera   *Camera
	renderer *renderer
	hud      *hud

	showDebug bool
	monitor   *glfw.Monitor

	fpsString  string
	frameCount int
	fpsFlushed time.Time
}

func (a *app) updateFPS() {
	elapsed := time.Since(a.fpsFlushed)
	if elapsed >= 100*time.Millisecond {
		fps := float64(a.frameCount) / elapsed.Seconds()
		a.fpsString = "FPS: " + strconv.FormatFloat(mgl64.Round(fps, 1), 'f', -1, 64)
		a.frameCount = 0
		a.fpsFlushed = time.Now()
	}
}

func main() {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	// Fixed-function pipeline: ask for a legacy 2.1 context.
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.DepthBits, 24)
	window, err := glfw.CreateWindow(config.WindowWidth, config.WindowHeight, "Cuboid City", nil, nil)
	if err != nil {
		panic(err)
	}
	window.MakeContextCurrent()
	if config.Vsync {
		glfw.SwapInterval(1)
	}
	initGL()

	buildStart := time.Now()
	mesh := &Mesh{}
	BuildWorld(mesh, rand.New(rand.NewSource(config.Seed)))
	fmt.Printf("world: %d vertices in %.2fs\n", mesh.VertexCount(), time.Since(buildStart).Seconds())

	a := &app{
		window:     window,
		camera:     NewCamera(mesh.WorldRegion()),
		renderer:   newRenderer(mesh),
		hud:        newHUD(),
		fpsFlushed: time.Now(),
	}
	window.SetKeyCallback(a.onKey)

	for !window.ShouldClose() {
		glfw.PollEvents()

		a.camera.Update(pollIntents(window))
		a.renderer.drawFrame(window, a.camera)

		if a.showDebug {
			a.updateFPS()
			pos := a.camera.Position()
			a.hud.setLines(
				a.fpsString,
				fmt.Sprintf("Position: %.2f, %.2f, %.2f", pos[0], pos[1], pos[2]),
				fmt.Sprintf("Fog: %.3f", a.camera.Fog()),
			)
			width, height := window.GetFramebufferSize()
			a.hud.draw(width, height)
		}

		window.SwapBuffers()
		a.frameCount++
	}
}
