// Package ebiten shows generated layouts in a window. R regenerates the
// house, Escape quits and hovering a room shows its chore.
package ebiten

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chosenoffset.com/chorehouse/internal/render"
	"chosenoffset.com/chorehouse/internal/world/layout"
)

const (
	margin      = 16
	statusLines = 3
	lineHeight  = 16
)

var (
	background = color.RGBA{0x1e, 0x1e, 0x24, 0xff}
	openFill   = color.RGBA{0x33, 0x33, 0x3d, 0xff}
	wallColor  = color.RGBA{0x10, 0x10, 0x10, 0xff}
	doorColor  = color.RGBA{0xf5, 0xf5, 0xdc, 0xff}
)

// GenerateFunc produces a new layout each time it is called
type GenerateFunc func() (*layout.Layout, error)

// Viewer implements ebiten.Game for a sequence of generated layouts
type Viewer struct {
	generate GenerateFunc
	cellSize int
	layout   *layout.Layout
	scene    render.Scene
	err      error
	hover    string
}

// NewViewer creates a viewer and generates its first layout
func NewViewer(generate GenerateFunc, cellSize int) *Viewer {
	v := &Viewer{generate: generate, cellSize: cellSize}
	v.regenerate()
	return v
}

func (v *Viewer) regenerate() {
	l, err := v.generate()
	if err != nil {
		v.err = err
		return
	}
	v.err = nil
	v.layout = l
	v.scene = render.BuildScene(l, v.cellSize)
}

// Update implements ebiten.Game.
func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		v.regenerate()
	}

	v.hover = ""
	x, y := ebiten.CursorPosition()
	px, py := float32(x-margin), float32(y-margin-statusLines*lineHeight)
	for _, shape := range v.scene.Rooms {
		if shape.Bounds.Contains(px, py) {
			r := v.layout.Room(shape.ID)
			v.hover = fmt.Sprintf("%s (%s)", r.Name, r.Kind)
			if len(r.Chores) > 0 {
				v.hover += ": " + r.Chores[0]
			}
			break
		}
	}
	return nil
}

// Draw implements ebiten.Game.
func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	if v.err != nil {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("generation failed: %v", v.err), margin, margin)
		ebitenutil.DebugPrintAt(screen, "R: retry  Esc: quit", margin, margin+lineHeight)
		return
	}
	if v.layout == nil {
		return
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  seed %d  %d rooms", v.layout.ID, v.layout.Seed, v.layout.Rooms.Len()), margin, margin)
	ebitenutil.DebugPrintAt(screen, "R: regenerate  Esc: quit", margin, margin+lineHeight)
	ebitenutil.DebugPrintAt(screen, v.hover, margin, margin+2*lineHeight)

	ox, oy := float32(margin), float32(margin+statusLines*lineHeight)
	for _, o := range v.scene.Open {
		b := o.Bounds
		vector.FillRect(screen, ox+b.X+1, oy+b.Y+1, b.W-2, b.H-2, openFill, false)
		ebitenutil.DebugPrintAt(screen, o.Label, int(ox+b.X+b.W/2)-3, int(oy+b.Y+b.H/2)-8)
	}
	for _, shape := range v.scene.Rooms {
		b := shape.Bounds
		vector.FillRect(screen, ox+b.X, oy+b.Y, b.W, b.H, shape.Color, false)
		vector.StrokeRect(screen, ox+b.X, oy+b.Y, b.W, b.H, 2, wallColor, false)
		ebitenutil.DebugPrintAt(screen, shape.Label, int(ox+b.X)+4, int(oy+b.Y)+2)
	}
	for _, d := range v.scene.Doors {
		b := d.Bounds
		vector.FillRect(screen, ox+b.X, oy+b.Y, b.W, b.H, doorColor, false)
	}
}

// Layout implements ebiten.Game.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Run opens a window and blocks until it is closed or Escape is pressed
func Run(title string, width, height int, viewer *Viewer) error {
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(viewer)
}
