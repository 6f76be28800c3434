package component

import "github.com/hajimehoshi/ebiten/v2"

// Sprite is a drawable image anchored at its origin point.
type Sprite struct {
	Image   *ebiten.Image
	OriginX float64
	OriginY float64
	FlipX   bool
}

var SpriteComponent = NewComponent[Sprite]()
