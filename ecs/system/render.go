package system

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/cityfolio/ecs"
	"github.com/milk9111/cityfolio/ecs/component"
	"github.com/milk9111/cityfolio/grid"
	"github.com/milk9111/cityfolio/iso"
	"github.com/milk9111/cityfolio/tileset"
)

// RenderSystem paints the scene: ground diamonds back to front, the hover
// highlight, then buildings and riders interleaved by depth so the rider
// passes behind tall blocks correctly.
type RenderSystem struct {
	tiles *tileset.Set
}

func NewRenderSystem(tiles *tileset.Set) *RenderSystem {
	return &RenderSystem{tiles: tiles}
}

// SetTileset swaps the image set, used by live reload.
func (r *RenderSystem) SetTileset(tiles *tileset.Set) {
	if r == nil || tiles == nil {
		return
	}
	r.tiles = tiles
}

type drawItem struct {
	depth float64
	draw  func(screen *ebiten.Image)
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || r.tiles == nil || w == nil || screen == nil {
		return
	}

	_, city, ok := ecs.First(w, component.CityComponent)
	if !ok || city.Grid == nil {
		return
	}

	r.drawGround(city, screen)
	r.drawHighlight(w, city, screen)

	items := r.collectBlocks(city)
	items = append(items, r.collectRiders(w)...)
	sort.SliceStable(items, func(i, j int) bool { return items[i].depth < items[j].depth })
	for _, item := range items {
		item.draw(screen)
	}
}

func (r *RenderSystem) drawGround(city *component.City, screen *ebiten.Image) {
	size := city.Grid.Size()
	halfW := float64(r.tiles.TileW) / 2
	halfH := float64(r.tiles.TileH) / 2

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			tile, _ := city.Grid.At(x, y)
			img, ok := r.tiles.Ground[tile.Building]
			if !ok {
				// Extruded buildings sit on plain grass.
				img = r.tiles.Ground[grid.BuildingNone]
			}
			cx, cy := city.Proj.Cell(x, y)
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(cx-halfW, cy-halfH)
			screen.DrawImage(img, op)
		}
	}
}

func (r *RenderSystem) drawHighlight(w *ecs.World, city *component.City, screen *ebiten.Image) {
	_, cur, ok := ecs.First(w, component.CursorComponent)
	if !ok || !cur.OnGrid {
		return
	}
	_, belt, ok := ecs.First(w, component.ToolbeltComponent)
	if !ok {
		return
	}

	img := r.tiles.Highlight
	if !toolAllowed(city, belt.Active, cur.TileX, cur.TileY) {
		img = r.tiles.Blocked
	}

	cx, cy := city.Proj.Cell(cur.TileX, cur.TileY)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(cx-float64(r.tiles.TileW)/2, cy-float64(r.tiles.TileH)/2)
	screen.DrawImage(img, op)
}

// toolAllowed mirrors the grid edit rules for hover feedback only; the build
// system still goes through the real rules.
func toolAllowed(city *component.City, tool component.Tool, x, y int) bool {
	switch tool {
	case component.ToolInspect:
		return true
	case component.ToolBulldoze:
		tile, ok := city.Grid.At(x, y)
		return ok && !city.Grid.OnRoute(x, y) && tile.Building != grid.BuildingNone
	default:
		tile, ok := city.Grid.At(x, y)
		return ok && !city.Grid.OnRoute(x, y) && tile.Building == grid.BuildingNone
	}
}

func (r *RenderSystem) collectBlocks(city *component.City) []drawItem {
	size := city.Grid.Size()
	halfW := float64(r.tiles.TileW) / 2
	halfH := float64(r.tiles.TileH) / 2

	var items []drawItem
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			tile, _ := city.Grid.At(x, y)
			img, ok := r.tiles.Block[tile.Building]
			if !ok {
				continue
			}
			rise := float64(r.tiles.BlockRise[tile.Building])
			cx, cy := city.Proj.Cell(x, y)
			items = append(items, drawItem{
				depth: iso.Depth(float64(x), float64(y)),
				draw: func(screen *ebiten.Image) {
					op := &ebiten.DrawImageOptions{}
					op.GeoM.Translate(cx-halfW, cy-halfH-rise)
					screen.DrawImage(img, op)
				},
			})
		}
	}
	return items
}

func (r *RenderSystem) collectRiders(w *ecs.World) []drawItem {
	var items []drawItem
	ecs.ForEach2(w, component.RiderComponent, component.TransformComponent,
		func(e ecs.Entity, rider *component.Rider, t *component.Transform) {
			sp, ok := ecs.Get(w, e, component.SpriteComponent)
			if !ok || sp.Image == nil {
				return
			}
			x, y := t.X, t.Y
			flip := sp.FlipX
			items = append(items, drawItem{
				// Nudge above same-cell blocks so the rider wins ties on
				// the road it travels.
				depth: iso.Depth(rider.GridX, rider.GridY) + 0.01,
				draw: func(screen *ebiten.Image) {
					op := &ebiten.DrawImageOptions{}
					op.GeoM.Translate(-sp.OriginX, -sp.OriginY)
					if flip {
						op.GeoM.Scale(-1, 1)
					}
					op.GeoM.Translate(x, y)
					screen.DrawImage(sp.Image, op)
				},
			})
		})
	return items
}
