// Package gui is the windowed frontend: an ebiten.Game driving a
// game.Session with the mouse and a handful of keys.
package gui

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/hersh/go1010/internal/game"
	"github.com/hersh/go1010/internal/gui/layout"
	"github.com/hersh/go1010/internal/view"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// ErrQuit is returned from Update to end ebiten.RunGame cleanly.
var ErrQuit = errors.New("quit")

var (
	bgColor      = color.RGBA{0x1e, 0x1f, 0x26, 0xff}
	panelColor   = color.RGBA{0x2a, 0x2c, 0x36, 0xff}
	textColor    = color.RGBA{0xe8, 0xe8, 0xf0, 0xff}
	softColor    = color.RGBA{0x9a, 0x9c, 0xaa, 0xff}
	accentColor  = color.RGBA{0xff, 0xd1, 0x47, 0xff}
	overlayColor = color.RGBA{0x00, 0x00, 0x00, 0xb0}

	markColors = map[view.Mark]color.RGBA{
		view.MarkEmpty:    {0x38, 0x3a, 0x46, 0xff},
		view.MarkFilled:   {0x5b, 0x8d, 0xef, 0xff},
		view.MarkPreview:  {0x5b, 0xd6, 0xc0, 0xff},
		view.MarkConflict: {0xe5, 0x48, 0x4d, 0xff},
		view.MarkClearing: {0xff, 0xd1, 0x47, 0xff},
	}

	// indexed by game.ShapeKind.Color
	pieceColors = []color.RGBA{
		{0x00, 0x00, 0x00, 0xff},
		{0xe5, 0x48, 0x4d, 0xff},
		{0x4c, 0xc2, 0x6a, 0xff},
		{0xff, 0xd1, 0x47, 0xff},
		{0x5b, 0x8d, 0xef, 0xff},
		{0xd0, 0x6b, 0xd6, 0xff},
		{0x5b, 0xd6, 0xc0, 0xff},
		{0xf2, 0x8c, 0x38, 0xff},
	}

	slotKeys = []ebiten.Key{
		ebiten.Key1, ebiten.Key2, ebiten.Key3,
		ebiten.Key4, ebiten.Key5, ebiten.Key6,
		ebiten.Key7, ebiten.Key8, ebiten.Key9,
	}
)

type Game struct {
	session *game.Session
	geom    layout.Geometry
	font    font.Face

	hover    game.Position
	hovering bool
	flash    string
}

func New(session *game.Session) *Game {
	return &Game{
		session: session,
		geom:    layout.New(session.Rules()),
		font:    basicfont.Face7x13,
	}
}

// WindowSize is the size the window should open at.
func (g *Game) WindowSize() (int, int) {
	return g.geom.Size()
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.geom.Size()
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ErrQuit
	}

	switch g.session.State() {
	case game.StateMenu:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			g.start()
		}
	case game.StatePlaying:
		g.updatePlaying()
	case game.StatePaused:
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyP), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
			g.session.Resume()
		case inpututil.IsKeyJustPressed(ebiten.KeyN):
			g.start()
		case inpututil.IsKeyJustPressed(ebiten.KeyM):
			g.session.ReturnToMenu()
		}
	case game.StateGameOver:
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeyN):
			g.start()
		case inpututil.IsKeyJustPressed(ebiten.KeyM):
			g.session.ReturnToMenu()
		}
	}
	return nil
}

func (g *Game) start() {
	g.session.Start()
	g.flash = ""
	if g.session.State() == game.StatePlaying {
		_ = g.session.SelectIndex(0)
	}
}

func (g *Game) updatePlaying() {
	g.session.Tick(time.Second / time.Duration(ebiten.TPS()))

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyP), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.session.Pause()
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		g.start()
		return
	}

	for i, k := range slotKeys {
		if inpututil.IsKeyJustPressed(k) {
			if err := g.session.SelectIndex(i); err != nil {
				g.flash = fmt.Sprintf("no piece %d", i+1)
			}
		}
	}

	mx, my := ebiten.CursorPosition()
	g.hover, g.hovering = g.geom.CellAt(mx, my)

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	if i, ok := g.geom.SlotAt(mx, my); ok {
		if err := g.session.SelectIndex(i); err == nil {
			g.flash = ""
		}
		return
	}
	if g.hovering {
		g.place()
	}
}

func (g *Game) place() {
	res, err := g.session.PlaceSelected(g.hover)
	switch {
	case errors.Is(err, game.ErrNoSelection):
		g.flash = "pick a piece first"
		return
	case errors.Is(err, game.ErrIllegalPlacement):
		g.flash = "it doesn't fit there"
		return
	case err != nil:
		g.flash = err.Error()
		return
	}

	g.flash = ""
	if res.Lines > 0 {
		g.flash = fmt.Sprintf("+%d  (%d lines)", res.Points, res.Lines)
	}
	if !res.GameOver && g.session.Selected() == "" {
		_ = g.session.SelectIndex(0)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(bgColor)
	snap := g.session.Snapshot()

	if snap.State == game.StateMenu {
		g.drawPanel(screen, "GO 1010", []string{
			fmt.Sprintf("Best score: %d", snap.Stats.HighScore),
			"",
			"Click or press Enter to start",
			"Q to quit",
		})
		return
	}

	g.drawHeader(screen, snap.Stats)

	var hovered *game.Piece
	if snap.State == game.StatePlaying && g.hovering {
		hovered = snap.Piece(snap.Selected)
	}
	g.drawBoard(screen, view.Project(snap.Board, hovered, g.hover))
	g.drawTray(screen, snap.Pieces, snap.Selected)

	_, h := g.geom.Size()
	text.Draw(screen, g.flash, g.font, layout.Padding, h-8, accentColor)

	switch snap.State {
	case game.StatePaused:
		g.drawPanel(screen, "PAUSED", []string{
			fmt.Sprintf("Score: %d", snap.Stats.Score),
			"",
			"P/Esc resume   N new game   M menu",
		})
	case game.StateGameOver:
		lines := []string{
			fmt.Sprintf("Score: %d   Lines: %d   Level: %d", snap.Stats.Score, snap.Stats.Lines, snap.Stats.Level),
			fmt.Sprintf("Best:  %d", snap.Stats.HighScore),
		}
		if snap.Stats.NewRecord {
			lines = append(lines, "NEW RECORD!")
		}
		lines = append(lines, "", "Enter/N play again   M menu")
		g.drawPanel(screen, "GAME OVER", lines)
	}
}

func (g *Game) drawHeader(screen *ebiten.Image, st game.Stats) {
	w, _ := g.geom.Size()
	vector.DrawFilledRect(screen, 0, 0, float32(w), layout.HeaderHeight-12, panelColor, false)
	secs := int(st.PlayTime / time.Second)
	text.Draw(screen, fmt.Sprintf("Score %d   Best %d", st.Score, st.HighScore), g.font, layout.Padding, 20, textColor)
	text.Draw(screen, fmt.Sprintf("Level %d   Lines %d   %d:%02d", st.Level, st.Lines, secs/60, secs%60), g.font, layout.Padding, 36, softColor)
}

func (g *Game) drawBoard(screen *ebiten.Image, grid view.Grid) {
	for r, row := range grid {
		for c, mark := range row {
			rect := g.geom.CellRect(game.Position{Row: r, Col: c})
			fillRect(screen, rect.Inset(1), markColors[mark])
		}
	}
}

func (g *Game) drawTray(screen *ebiten.Image, pieces []*game.Piece, selected string) {
	for i, p := range pieces {
		slot := g.geom.SlotRect(i)
		fillRect(screen, slot.Inset(2), panelColor)
		if p.ID == selected {
			r := slot.Inset(2)
			vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 2, accentColor, false)
		}
		text.Draw(screen, fmt.Sprintf("%d", i+1), g.font, slot.Min.X+6, slot.Min.Y+16, softColor)

		clr := pieceColors[len(pieceColors)-1]
		if c := p.Color(); c > 0 && c < len(pieceColors) {
			clr = pieceColors[c]
		}
		o := g.geom.PieceOrigin(i, p)
		for _, cell := range p.Cells() {
			tl := o.Add(image.Pt(cell.Col*layout.TrayCellSize, cell.Row*layout.TrayCellSize))
			fillRect(screen, image.Rectangle{Min: tl, Max: tl.Add(image.Pt(layout.TrayCellSize, layout.TrayCellSize))}.Inset(1), clr)
		}
	}
}

func (g *Game) drawPanel(screen *ebiten.Image, title string, lines []string) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), overlayColor, false)
	pw := min(320, w-24)
	ph := min(60+len(lines)*20, h-24)
	px, py := (w-pw)/2, (h-ph)/2
	fillRect(screen, image.Rect(px, py, px+pw, py+ph), panelColor)

	text.Draw(screen, title, g.font, px+16, py+24, accentColor)
	y := py + 50
	for _, ln := range lines {
		text.Draw(screen, ln, g.font, px+16, y, textColor)
		y += 20
	}
}

func fillRect(screen *ebiten.Image, r image.Rectangle, clr color.Color) {
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), clr, false)
}
