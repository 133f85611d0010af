package main

import (
	"path/filepath"

	"github.com/go-gl/gl/v2.1/gl"
	"neilpa.me/go-stbi"

	"cubecity/config"
)

// loadTexture decodes an image from the asset directory and uploads it as
// a GL texture. Missing assets are a startup failure, not a runtime one.
// Mipmapped textures have the driver build the chain as the base level is
// uploaded.
func loadTexture(name string, mipmap bool) uint32 {
	rgba, err := stbi.Load(filepath.Join(config.AssetDir, name))
	if err != nil {
		panic(err)
	}

	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	if mipmap {
		gl.TexParameteri(gl.TEXTURE_2D, gl.GENERATE_MIPMAP, gl.TRUE)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	} else {
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(rgba.Rect.Dx()), int32(rgba.Rect.Dy()),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	return texture
}
