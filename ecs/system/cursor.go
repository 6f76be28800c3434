package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/cityfolio/ecs"
	"github.com/milk9111/cityfolio/ecs/component"
)

// CursorSystem resolves the pointer to a grid cell once per tick. Overlays
// (toolbar strip, open card) block grid interaction via Cursor.UIBlocked,
// which the game sets before the world updates.
type CursorSystem struct{}

func NewCursorSystem() *CursorSystem {
	return &CursorSystem{}
}

func (c *CursorSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	_, city, ok := ecs.First(w, component.CityComponent)
	if !ok {
		return
	}

	mx, my := ebiten.CursorPosition()
	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	ecs.ForEach(w, component.CursorComponent, func(_ ecs.Entity, cur *component.Cursor) {
		if cur.UIBlocked {
			cur.OnGrid = false
			cur.Clicked = false
			return
		}
		tx, ty := city.Proj.Pick(float64(mx), float64(my))
		cur.TileX = tx
		cur.TileY = ty
		cur.OnGrid = city.Grid.InBounds(tx, ty)
		cur.Clicked = clicked && cur.OnGrid
	})
}
