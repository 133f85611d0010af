package main

import (
	"image"
	"os"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/golang/freetype"

	"cubecity/config"
)

const (
	hudCanvasSize = 512
	hudFontSize   = 18
	hudLineHeight = 22
)

// hud renders debug text through a freetype canvas that is re-rasterized
// and re-uploaded whenever the lines change.
type hud struct {
	ctx     *freetype.Context
	canvas  *image.RGBA
	texture uint32
	lines   []string
}

func newHUD() *hud {
	fontData, err := os.ReadFile(config.FontPath)
	if err != nil {
		panic(err)
	}
	font, err := freetype.ParseFont(fontData)
	if err != nil {
		panic(err)
	}

	canvas := image.NewRGBA(image.Rect(0, 0, hudCanvasSize, hudCanvasSize))
	ctx := freetype.NewContext()
	ctx.SetFont(font)
	ctx.SetFontSize(hudFontSize)
	ctx.SetDst(canvas)
	ctx.SetClip(canvas.Bounds())
	ctx.SetSrc(image.White)
	ctx.SetHinting(2) // For sharp text

	h := &hud{ctx: ctx, canvas: canvas}
	gl.GenTextures(1, &h.texture)
	gl.BindTexture(gl.TEXTURE_2D, h.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	return h
}

func (h *hud) setLines(lines ...string) {
	if len(lines) == len(h.lines) {
		same := true
		for i := range lines {
			if lines[i] != h.lines[i] {
				same = false
				break
			}
		}
		if same {
			return
		}
	}
	h.lines = append(h.lines[:0], lines...)

	for i := range h.canvas.Pix {
		h.canvas.Pix[i] = 0
	}
	for i, line := range lines {
		if _, err := h.ctx.DrawString(line, freetype.Pt(10, hudLineHeight*(i+1))); err != nil {
			panic(err)
		}
	}
	gl.BindTexture(gl.TEXTURE_2D, h.texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		hudCanvasSize, hudCanvasSize,
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(h.canvas.Pix))
}

// draw blends the text canvas over the top-left corner of the frame using
// a throwaway orthographic projection.
func (h *hud) draw(width, height int) {
	gl.MatrixMode(gl.PROJECTION)
	gl.PushMatrix()
	gl.LoadIdentity()
	gl.Ortho(0, float64(width), float64(height), 0, -1, 1)
	gl.MatrixMode(gl.MODELVIEW)
	gl.PushMatrix()
	gl.LoadIdentity()

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.FOG)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.BindTexture(gl.TEXTURE_2D, h.texture)
	gl.Begin(gl.QUADS)
	gl.Color3f(1, 1, 1)
	gl.TexCoord2f(0, 0)
	gl.Vertex2f(0, 0)
	gl.TexCoord2f(1, 0)
	gl.Vertex2f(hudCanvasSize, 0)
	gl.TexCoord2f(1, 1)
	gl.Vertex2f(hudCanvasSize, hudCanvasSize)
	gl.TexCoord2f(0, 1)
	gl.Vertex2f(0, hudCanvasSize)
	gl.End()

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
	gl.MatrixMode(gl.PROJECTION)
	gl.PopMatrix()
	gl.MatrixMode(gl.MODELVIEW)
	gl.PopMatrix()
}
