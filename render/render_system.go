package render

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"dicewalk/components"
	"dicewalk/config"
	"dicewalk/ecs"
	"dicewalk/iso"
	"dicewalk/systems"
)

var (
	whiteOnce     sync.Once
	whiteSubImage *ebiten.Image
)

// solid returns a 1x1 white source image for DrawTriangles
func solid() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSubImage
}

// Palette
var (
	backgroundColor = color.RGBA{0, 0, 0, 255}
	tileColor       = color.RGBA{28, 28, 36, 255}
	gridLineColor   = color.RGBA{255, 255, 255, 255}
	edgeColor       = color.RGBA{0, 200, 255, 255}
	barrierColor    = color.RGBA{90, 90, 100, 255}
	previewColor    = color.RGBA{255, 60, 60, 90}
	hpBackColor     = color.RGBA{60, 0, 0, 255}
	hpFillColor     = color.RGBA{220, 40, 40, 255}
	hudColor        = color.RGBA{200, 200, 200, 255}
)

// Side faces are drawn a little darker than the top
var faceShade = map[components.Face]float32{
	components.FaceTop:    1.0,
	components.FaceSouth:  0.8,
	components.FaceWest:   0.7,
	components.FaceNorth:  0.6,
	components.FaceEast:   0.6,
	components.FaceBottom: 0.5,
}

const barrierScale = 0.9

// RenderSystem draws the board, the dice and the HUD
type RenderSystem struct {
	// Show where planned moves will strike
	ShowPreview bool
	vertices    []ebiten.Vertex
	indices     []uint16
}

// NewRenderSystem creates a new rendering system
func NewRenderSystem() *RenderSystem {
	return &RenderSystem{ShowPreview: true}
}

// Draw renders the world. Nothing is drawn without grid geometry.
func (s *RenderSystem) Draw(world *ecs.World, screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	geom, ok := ecs.GetResource[components.GridGeometryComponent](world)
	if !ok {
		return
	}
	p := iso.NewProjector(geom, float64(screen.Bounds().Dy()))

	s.drawBoard(screen, p, geom.Size)
	if s.ShowPreview {
		s.drawPreview(world, screen, p, geom)
	}
	s.drawEntities(world, screen, p, geom)
	s.drawHUD(world, screen)
}

func (s *RenderSystem) drawBoard(screen *ebiten.Image, p iso.Projector, size int) {
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			s.fillPolygon(screen, p.TileCorners(i, j), tileColor, 1)
		}
	}
	n := float64(size)
	for k := 0; k <= size; k++ {
		f := float64(k)
		x0, y0 := p.Point(f, 0, 0)
		x1, y1 := p.Point(f, n, 0)
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, gridLineColor, true)
		x0, y0 = p.Point(0, f, 0)
		x1, y1 = p.Point(n, f, 0)
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, gridLineColor, true)
	}
}

func (s *RenderSystem) drawPreview(world *ecs.World, screen *ebiten.Image, p iso.Projector, geom *components.GridGeometryComponent) {
	ts, ok := ecs.GetResource[components.TurnStateComponent](world)
	if !ok || ts.Phase != components.PhasePlanning || ts.GameOver {
		return
	}
	seen := make(map[systems.Tile]bool)
	for _, target := range systems.AttackPreview(world, nil) {
		if seen[target.Tile] || !geom.InBounds(target.I, target.J) {
			continue
		}
		seen[target.Tile] = true
		s.fillPolygon(screen, p.TileCorners(target.I, target.J), previewColor, 1)
	}
}

// drawEntities paints barriers and dice far to near
func (s *RenderSystem) drawEntities(world *ecs.World, screen *ebiten.Image, p iso.Projector, geom *components.GridGeometryComponent) {
	entities := world.EntitiesWith(components.Renderable.ID(), components.Position.ID())
	sprites := make([]iso.Sprite, 0, len(entities))
	for k, e := range entities {
		pos, _ := components.Position.Get(world, e)
		r, _ := components.Renderable.Get(world, e)
		sprites = append(sprites, iso.Sprite{I: pos.I, J: pos.J, Layer: r.Layer, ZBias: r.ZBias, Ref: k})
	}
	iso.SortSprites(sprites)

	for _, sp := range sprites {
		e := entities[sp.Ref]
		r, _ := components.Renderable.Get(world, e)
		switch r.Kind {
		case components.RenderKindBarrier:
			// The boundary ring sits off the board
			if geom.InBounds(sp.I, sp.J) {
				for _, q := range p.Cube(sp.I, sp.J, barrierScale) {
					s.drawQuad(screen, q, barrierColor)
				}
			}
		case components.RenderKindDice:
			s.drawDie(world, screen, p, e, sp.I, sp.J)
		}
	}
}

func (s *RenderSystem) drawDie(world *ecs.World, screen *ebiten.Image, p iso.Projector, e ecs.Entity, i, j int) {
	faces, ok := components.DieFaces.Get(world, e)
	if !ok {
		return
	}
	scale := components.DefaultCubeScale
	if cube, ok := components.RenderCube.Get(world, e); ok {
		scale = cube.Scale
	}

	sides := faces.Sides
	var quads []iso.Quad
	if anim, ok := components.TumbleAnim.Get(world, e); ok {
		if anim.HasSnapshot {
			sides = anim.FacesSnapshot
		}
		quads = p.TumblingCube(anim)
	} else {
		quads = p.Cube(i, j, scale)
	}
	for _, q := range quads {
		s.drawQuad(screen, q, sides[q.Face].Color)
	}
	s.drawHP(world, screen, p, e, i, j, scale)
}

func (s *RenderSystem) drawHP(world *ecs.World, screen *ebiten.Image, p iso.Projector, e ecs.Entity, i, j int, scale float64) {
	hp, ok := components.HP.Get(world, e)
	if !ok || hp.Max <= 0 {
		return
	}
	x, y := p.Point(float64(i)+0.5, float64(j)+0.5, scale+0.35)
	w := float32(p.TileWidth * 0.4)
	h := float32(4)
	left := float32(x) - w/2
	top := float32(y)
	filled := w * float32(hp.Current) / float32(hp.Max)
	vector.DrawFilledRect(screen, left, top, w, h, hpBackColor, false)
	vector.DrawFilledRect(screen, left, top, filled, h, hpFillColor, false)
}

func (s *RenderSystem) drawHUD(world *ecs.World, screen *ebiten.Image) {
	status := "Arrows or WASD: roll  R: restart  H: help  F1: log"
	if ts, ok := ecs.GetResource[components.TurnStateComponent](world); ok {
		status = fmt.Sprintf("Turn %d  %s  |  %s", ts.Turn+1, phaseLabel(ts), status)
	}
	ebitenutil.DebugPrintAt(screen, status, config.HUDMargin, config.HUDMargin)

	if e, hp, ok := playerHP(world); ok {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("HP %d/%d", hp.Current, hp.Max), config.HUDMargin, config.HUDMargin+config.LineHeight)
		if faces, ok := components.DieFaces.Get(world, e); ok {
			ebitenutil.DebugPrintAt(screen, "Top: "+faces.Top().FaceID, config.HUDMargin, config.HUDMargin+2*config.LineHeight)
		}
	}

	top := config.MessagePanelTop(screen.Bounds().Dy())
	messages := systems.GetMessageLog(world).RecentMessages(config.MessageLines)
	for k := len(messages) - 1; k >= 0; k-- {
		y := top + (len(messages)-1-k)*config.LineHeight
		vector.DrawFilledRect(screen, float32(config.HUDMargin), float32(y+4), 6, 6, messages[k].GetColor(), false)
		ebitenutil.DebugPrintAt(screen, messages[k].Text, config.HUDMargin+12, y)
	}
}

func phaseLabel(ts *components.TurnStateComponent) string {
	switch {
	case ts.GameOver:
		return "game over"
	case ts.Phase == components.PhaseExecuting:
		return "rolling"
	default:
		return "your move"
	}
}

func playerHP(world *ecs.World) (ecs.Entity, *components.HPComponent, bool) {
	e, _, ok := components.Player.Store(world).First()
	if !ok {
		return ecs.NilEntity, nil, false
	}
	hp, ok := components.HP.Get(world, e)
	return e, hp, ok
}

func (s *RenderSystem) drawQuad(screen *ebiten.Image, q iso.Quad, clr color.RGBA) {
	s.fillPolygon(screen, q.Points, clr, faceShade[q.Face])
	for k := 0; k < 4; k++ {
		a, b := q.Points[k], q.Points[(k+1)%4]
		vector.StrokeLine(screen, float32(a[0]), float32(a[1]), float32(b[0]), float32(b[1]), 2, edgeColor, true)
	}
}

// fillPolygon fills a convex quad with a flat colour scaled by shade
func (s *RenderSystem) fillPolygon(screen *ebiten.Image, pts [4][2]float64, clr color.RGBA, shade float32) {
	r := float32(clr.R) / 0xff * shade
	g := float32(clr.G) / 0xff * shade
	b := float32(clr.B) / 0xff * shade
	a := float32(clr.A) / 0xff

	s.vertices = s.vertices[:0]
	for _, pt := range pts {
		s.vertices = append(s.vertices, ebiten.Vertex{
			DstX: float32(pt[0]), DstY: float32(pt[1]),
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		})
	}
	s.indices = append(s.indices[:0], 0, 1, 2, 0, 2, 3)
	screen.DrawTriangles(s.vertices, s.indices, solid(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
