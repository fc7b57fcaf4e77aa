package gallery

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Uniform names shared by planeShaderSrc and Plane.Uniforms.
const (
	UniformPlaneSizes    = "PlaneSizes"
	UniformImageSizes    = "ImageSizes"
	UniformViewportSizes = "ViewportSizes"
	UniformPlaneOffset   = "PlaneOffset"
	UniformAlpha         = "Alpha"
)

// planeShaderSrc fits the texture over the plane like CSS background-size:
// cover and fades planes as they move toward the top or bottom edge.
// Ebitengine uses premultiplied alpha, so every channel is scaled.
const planeShaderSrc = `//kage:unit pixels
package main

var PlaneSizes vec2
var ImageSizes vec2
var ViewportSizes vec2
var PlaneOffset vec2
var Alpha float

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	origin := imageSrc0Origin()
	size := imageSrc0Size()
	uv := (src - origin) / size

	ratio := vec2(
		min((PlaneSizes.x/PlaneSizes.y)/(ImageSizes.x/ImageSizes.y), 1.0),
		min((PlaneSizes.y/PlaneSizes.x)/(ImageSizes.y/ImageSizes.x), 1.0),
	)
	uv = uv*ratio + (vec2(1.0)-ratio)*0.5

	edge := 1.0 - smoothstep(0.35, 0.6, abs(PlaneOffset.y)/ViewportSizes.y)

	c := imageSrc0At(uv*size + origin)
	return c * color.a * Alpha * edge
}
`

// --- Shader singleton (no sync.Once, the scene is single-threaded) ---

var planeShader *ebiten.Shader

// ensurePlaneShader compiles planeShaderSrc on first use.
func ensurePlaneShader() (*ebiten.Shader, error) {
	if planeShader != nil {
		return planeShader, nil
	}
	s, err := ebiten.NewShader([]byte(planeShaderSrc))
	if err != nil {
		return nil, fmt.Errorf("gallery: compile plane shader: %w", err)
	}
	planeShader = s
	return s, nil
}
