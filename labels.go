package gallery

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// LabelRenderer receives one title per plane, in manifest order, when the
// scene is built. Implementations that also provide SetActive(int) are told
// which plane is centered after every tick, and those that provide
// Draw(*ebiten.Image) are drawn above the planes.
type LabelRenderer interface {
	Add(title string)
}

type activeLabeler interface {
	SetActive(index int)
}

type labelDrawer interface {
	Draw(screen *ebiten.Image)
}

// TitleList is a LabelRenderer that draws every title in a column anchored to
// the left edge of the window and highlights the active one.
type TitleList struct {
	// Margin is the offset of the first line from the top-left corner.
	Margin Vec2
	// Color is used for inactive titles, ActiveColor for the centered one.
	Color       Color
	ActiveColor Color

	face   *text.GoTextFace
	lh     float64
	titles []string
	active int
}

// NewTitleList loads a TrueType font from raw TTF/OTF data at the given size.
func NewTitleList(ttfData []byte, size float64) (*TitleList, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("gallery: failed to parse TTF data: %w", err)
	}
	face := &text.GoTextFace{Source: source, Size: size}
	m := face.Metrics()
	return &TitleList{
		Margin:      Vec2{X: 32, Y: 32},
		Color:       Color{R: 1, G: 1, B: 1, A: 0.35},
		ActiveColor: Color{R: 1, G: 1, B: 1, A: 1},
		face:        face,
		lh:          m.HAscent + m.HDescent + m.HLineGap,
		active:      -1,
	}, nil
}

// Add appends a title.
func (l *TitleList) Add(title string) {
	l.titles = append(l.titles, title)
}

// SetActive highlights the title at index; -1 clears the highlight.
func (l *TitleList) SetActive(index int) {
	if index < -1 || index >= len(l.titles) {
		index = -1
	}
	l.active = index
}

// Active returns the highlighted index, or -1.
func (l *TitleList) Active() int {
	return l.active
}

// Titles returns the titles in insertion order. The returned slice MUST NOT be
// mutated.
func (l *TitleList) Titles() []string {
	return l.titles
}

// LineHeight returns the vertical distance between baselines.
func (l *TitleList) LineHeight() float64 {
	return l.lh
}

// Draw renders the title column onto screen.
func (l *TitleList) Draw(screen *ebiten.Image) {
	if l.face == nil {
		return
	}
	for i, title := range l.titles {
		op := &text.DrawOptions{}
		op.GeoM.Translate(l.Margin.X, l.Margin.Y+float64(i)*l.lh)
		c := l.Color
		if i == l.active {
			c = l.ActiveColor
		}
		op.ColorScale.ScaleWithColor(c.toRGBA())
		text.Draw(screen, title, l.face, op)
	}
}
