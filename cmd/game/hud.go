package main

import (
	"image"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

const (
	healthBarX      = 8
	healthBarY      = 32
	healthBarWidth  = 120
	healthBarHeight = 8
)

var (
	healthBarBack = color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xc0}
	healthBarFill = color.NRGBA{R: 0xd0, G: 0x30, B: 0x30, A: 0xff}
)

// HUD shows the resource line and health bar at all times and the pause menu while the
// scheduler is stopped.
type HUD struct {
	game   *Game
	status *widget.Text
	hud    *ebitenui.UI
	pause  *ebitenui.UI
}

func NewHUD(g *Game) *HUD {
	h := &HUD{game: g}

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	h.status = widget.NewText(
		widget.TextOpts.Text(g.session.Status(), &face, white),
	)
	bar := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(color.NRGBA{A: 160})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 6, Bottom: 6, Left: 8, Right: 8}),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionStart,
			VerticalPosition:   widget.AnchorLayoutPositionStart,
		})),
	)
	bar.AddChild(h.status)
	hudRoot := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	hudRoot.AddChild(bar)
	h.hud = &ebitenui.UI{Container: hudRoot}

	h.pause = newPauseUI(g, &face)
	return h
}

func newPauseUI(g *Game, face *ebtext.Face) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255})
	btnTextColor := &widget.ButtonTextColor{Idle: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	button := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: btnHover, Pressed: btnImg}),
			widget.ButtonOpts.Text(label, face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(center),
			widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) { onClick() }),
		)
	}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(screenWidth/3, screenHeight/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	panel.AddChild(widget.NewText(
		widget.TextOpts.Text("Paused", face, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}),
		widget.TextOpts.WidgetOpts(center),
	))
	panel.AddChild(button("Resume", g.session.TogglePause))
	panel.AddChild(button("Restart", func() {
		if err := g.session.Restart(); err != nil {
			g.log.Error().Err(err).Msg("restart failed")
		}
	}))
	panel.AddChild(button("Quit", func() { g.quit = true }))

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}

// Refresh rewrites the status line.
func (h *HUD) Refresh() {
	h.status.Label = h.game.session.Status()
}

func (h *HUD) Update() {
	h.hud.Update()
	if !h.game.session.Scheduler.Running() {
		h.pause.Update()
	}
}

func (h *HUD) Draw(screen *ebiten.Image) {
	h.hud.Draw(screen)
	h.drawHealthBar(screen)
	if !h.game.session.Scheduler.Running() {
		h.pause.Draw(screen)
	}
}

func (h *HUD) drawHealthBar(screen *ebiten.Image) {
	back := image.Rect(healthBarX, healthBarY, healthBarX+healthBarWidth, healthBarY+healthBarHeight)
	screen.SubImage(back).(*ebiten.Image).Fill(healthBarBack)
	if fill := h.game.session.HealthFill(healthBarWidth); fill > 0 {
		r := image.Rect(healthBarX, healthBarY, healthBarX+fill, healthBarY+healthBarHeight)
		screen.SubImage(r).(*ebiten.Image).Fill(healthBarFill)
	}
}
