package gallery

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// maxGeometryVertices is the largest vertex count addressable by uint16
// indices.
const maxGeometryVertices = 1 << 16

// planeGeometry is a unit quad centered on the origin, subdivided into a grid.
// Local DstX/DstY span [-0.5, 0.5] with Y up; SrcX/SrcY hold UVs in [0, 1]
// with V down.
type planeGeometry struct {
	vertices    []ebiten.Vertex
	indices     []uint16
	transformed []ebiten.Vertex // preallocated projection buffer
}

// newPlaneGeometry builds the grid. Panics if either segment count is below 1
// or the grid exceeds uint16 indexing.
func newPlaneGeometry(widthSegments, heightSegments int) *planeGeometry {
	if widthSegments < 1 || heightSegments < 1 {
		panic(fmt.Sprintf("gallery: plane segments must be >= 1, got %dx%d", widthSegments, heightSegments))
	}
	cols := widthSegments + 1
	rows := heightSegments + 1
	if cols*rows > maxGeometryVertices {
		panic(fmt.Sprintf("gallery: plane grid %dx%d exceeds %d vertices", widthSegments, heightSegments, maxGeometryVertices))
	}

	g := &planeGeometry{
		vertices:    make([]ebiten.Vertex, 0, cols*rows),
		indices:     make([]uint16, 0, widthSegments*heightSegments*6),
		transformed: make([]ebiten.Vertex, cols*rows),
	}
	for row := 0; row < rows; row++ {
		v := float32(row) / float32(heightSegments)
		for col := 0; col < cols; col++ {
			u := float32(col) / float32(widthSegments)
			g.vertices = append(g.vertices, ebiten.Vertex{
				DstX:   u - 0.5,
				DstY:   0.5 - v,
				SrcX:   u,
				SrcY:   v,
				ColorR: 1,
				ColorG: 1,
				ColorB: 1,
				ColorA: 1,
			})
		}
	}
	for row := 0; row < heightSegments; row++ {
		for col := 0; col < widthSegments; col++ {
			tl := uint16(row*cols + col)
			tr := tl + 1
			bl := tl + uint16(cols)
			br := bl + 1
			g.indices = append(g.indices, tl, bl, tr, tr, bl, br)
		}
	}
	return g
}

// project transforms the local grid into screen space for a plane at
// position with the given world scale, and maps UVs onto a texture of
// texW x texH pixels. The returned slice aliases an internal buffer that is
// overwritten on the next call.
func (g *planeGeometry) project(cam *Camera, position, scale Vec2, texW, texH float64) []ebiten.Vertex {
	for i := range g.vertices {
		s := &g.vertices[i]
		wx := position.X + float64(s.DstX)*scale.X
		wy := position.Y + float64(s.DstY)*scale.Y
		sx, sy := cam.WorldToScreen(wx, wy)
		g.transformed[i] = ebiten.Vertex{
			DstX:   float32(sx),
			DstY:   float32(sy),
			SrcX:   s.SrcX * float32(texW),
			SrcY:   s.SrcY * float32(texH),
			ColorR: s.ColorR,
			ColorG: s.ColorG,
			ColorB: s.ColorB,
			ColorA: s.ColorA,
		}
	}
	return g.transformed
}
