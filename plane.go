package gallery

import (
	"fmt"
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// Plane is one gallery item: a subdivided quad textured with one image. It
// owns its geometry, texture and uniforms exclusively. Layout and scrolling
// are pure state; the only side effects are uniform refreshes and, in Draw,
// GPU submission.
type Plane struct {
	// Identity, fixed at creation.
	Index int
	Total int
	Src   string
	Title string

	// World-space size and center. Position.Y follows the scroll offset.
	Scale    Vec2
	Position Vec2

	// Active is true exactly when Position.Y is 0.
	Active bool
	// Hovering dims the plane while the pointer is over it.
	Hovering bool
	// Alpha is the focus fade value, animated between Config.IdleAlpha and
	// Config.FocusAlpha.
	Alpha float64

	scroll   *ScrollController
	focus    *Timeline
	hoverDim float64
	padding  float64
	content  func(pixelHeight float64) Vec2

	viewport Viewport
	uniforms map[string]any
	geometry *planeGeometry

	texture      *ebiten.Image
	textureState TextureState
	imageSize    Vec2
	pending      <-chan textureResult

	drawOp ebiten.DrawTrianglesShaderOptions
}

// NewPlane creates the plane for manifest entry e at index of total. The
// plane has no size until Resize is called and no texture until an image is
// loaded.
func NewPlane(index, total int, e Entry, cfg Config) *Plane {
	if total < 1 || index < 0 || index >= total {
		panic(fmt.Sprintf("gallery: plane index %d out of range for %d planes", index, total))
	}
	p := &Plane{
		Index:    index,
		Total:    total,
		Src:      e.Src,
		Title:    e.Title,
		Alpha:    cfg.IdleAlpha,
		scroll:   newScrollController(index, total, cfg),
		focus:    NewTimeline(),
		hoverDim: cfg.HoverDim,
		padding:  cfg.Padding,
		content:  cfg.contentSize,
		geometry: newPlaneGeometry(cfg.WidthSegments, cfg.HeightSegments),
		uniforms: map[string]any{
			UniformPlaneSizes:    []float32{0, 0},
			UniformImageSizes:    []float32{0, 0},
			UniformViewportSizes: []float32{0, 0},
			UniformPlaneOffset:   []float32{0, 0},
			UniformAlpha:         float32(cfg.IdleAlpha),
		},
	}
	p.focus.To(&p.Alpha, cfg.FocusAlpha, cfg.FocusDuration, 0, ease.InCirc)
	return p
}

// Resize lays the plane out for a new viewport: scale from the item's pixel
// footprint, refreshed size uniforms, then new slot height and boundaries.
func (p *Plane) Resize(vp Viewport) {
	p.viewport = vp
	p.Scale, p.Position = Layout(vp, p.content(vp.PixelHeight))

	p.uniforms[UniformPlaneSizes] = []float32{float32(p.Scale.X), float32(p.Scale.Y)}
	p.uniforms[UniformViewportSizes] = []float32{float32(vp.Width), float32(vp.Height)}

	p.scroll.SetSlotHeight(p.Scale.Y + p.padding)
	p.Position.Y = p.scroll.State.Next
	p.syncOffsetUniform()
}

// Scroll forwards one wheel step to the scroll controller.
func (p *Plane) Scroll(speed float64, dir Direction, dt float64) {
	p.scroll.Scroll(speed, dir, dt)
}

// Update advances the snap and focus animations by dt seconds, commits the
// scroll offset as the plane's vertical position and refreshes Active.
func (p *Plane) Update(dt float64) {
	p.Position.Y = p.scroll.Update(dt)

	if p.Position.Y == 0 {
		p.Active = true
		p.focus.Play()
	} else {
		p.Active = false
		p.focus.Reverse()
	}
	p.focus.Update(float32(dt))

	p.uniforms[UniformAlpha] = float32(p.EffectiveAlpha())
	p.syncOffsetUniform()
}

func (p *Plane) syncOffsetUniform() {
	p.uniforms[UniformPlaneOffset] = []float32{float32(p.Position.X), float32(p.Position.Y)}
}

// EffectiveAlpha returns the alpha the shader receives: the focus fade,
// dimmed while hovered.
func (p *Plane) EffectiveAlpha() float64 {
	a := p.Alpha
	if p.Hovering {
		a *= p.hoverDim
	}
	return clamp01(a)
}

// SetHovering sets the hover flag. The alpha uniform picks it up on the next
// Update.
func (p *Plane) SetHovering(hovering bool) {
	p.Hovering = hovering
}

// ScrollState returns a copy of the scroll offsets.
func (p *Plane) ScrollState() ScrollState {
	return p.scroll.State
}

// Bounds returns the plane's travel limits.
func (p *Plane) Bounds() Boundaries {
	return p.scroll.Bounds()
}

// SlotHeight returns the vertical spacing shared by all planes.
func (p *Plane) SlotHeight() float64 {
	return p.scroll.SlotHeight()
}

// Controller returns the plane's scroll controller.
func (p *Plane) Controller() *ScrollController {
	return p.scroll
}

// Focus returns the focus fade timeline.
func (p *Plane) Focus() *Timeline {
	return p.focus
}

// Viewport returns the viewport of the last Resize.
func (p *Plane) Viewport() Viewport {
	return p.viewport
}

// Uniforms returns the shader uniform bag. The returned map MUST NOT be
// mutated by the caller.
func (p *Plane) Uniforms() map[string]any {
	return p.uniforms
}

// --- Texture ---

// TextureState reports whether the plane's image has been uploaded.
func (p *Plane) TextureState() TextureState {
	return p.textureState
}

// Texture returns the uploaded image, or nil while empty.
func (p *Plane) Texture() *ebiten.Image {
	return p.texture
}

// ImageSize returns the natural pixel size of the loaded image.
func (p *Plane) ImageSize() Vec2 {
	return p.imageSize
}

// setPending registers an in-flight load. Its result is applied by
// applyPending at the start of a later tick.
func (p *Plane) setPending(ch <-chan textureResult) {
	p.pending = ch
}

// applyPending performs the Empty -> Loaded transition if the background load
// has finished. It never blocks. A failed load is returned once and leaves the
// plane empty.
func (p *Plane) applyPending() (loaded bool, err error) {
	if p.pending == nil {
		return false, nil
	}
	select {
	case res := <-p.pending:
		p.pending = nil
		if res.err != nil {
			return false, fmt.Errorf("gallery: plane %d: %w", p.Index, res.err)
		}
		p.SetImage(res.img)
		return true, nil
	default:
		return false, nil
	}
}

// SetImage uploads img as the plane texture and records its natural size.
func (p *Plane) SetImage(img image.Image) {
	if p.texture != nil {
		p.texture.Deallocate()
	}
	b := img.Bounds()
	p.texture = ebiten.NewImageFromImage(img)
	p.imageSize = Vec2{X: float64(b.Dx()), Y: float64(b.Dy())}
	p.uniforms[UniformImageSizes] = []float32{float32(p.imageSize.X), float32(p.imageSize.Y)}
	p.textureState = TextureLoaded
}

// --- Rendering ---

// contains reports whether the world point (wx, wy) lies on the plane.
func (p *Plane) contains(wx, wy float64) bool {
	return math.Abs(wx-p.Position.X) <= p.Scale.X/2 &&
		math.Abs(wy-p.Position.Y) <= p.Scale.Y/2
}

// draw submits the plane to screen. Empty and off-screen planes are skipped.
// Returns whether a draw call was issued.
func (p *Plane) draw(screen *ebiten.Image, cam *Camera, shader *ebiten.Shader) bool {
	if p.textureState != TextureLoaded || shader == nil {
		return false
	}
	if cam.shouldCull(p.Position, p.Scale) {
		return false
	}
	verts := p.geometry.project(cam, p.Position, p.Scale, p.imageSize.X, p.imageSize.Y)
	p.drawOp.Images[0] = p.texture
	p.drawOp.Uniforms = p.uniforms
	screen.DrawTrianglesShader(verts, p.geometry.indices, shader, &p.drawOp)
	return true
}
