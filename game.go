package main

import (
	"fmt"
	"image/color"
	"log"
	"math/rand/v2"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.design/x/clipboard"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/cityfolio/common"
	"github.com/milk9111/cityfolio/ecs"
	"github.com/milk9111/cityfolio/ecs/component"
	"github.com/milk9111/cityfolio/ecs/entity"
	"github.com/milk9111/cityfolio/ecs/system"
	"github.com/milk9111/cityfolio/prefabs"
	"github.com/milk9111/cityfolio/script"
	"github.com/milk9111/cityfolio/tileset"
)

type Game struct {
	world  *ecs.World
	render *system.RenderSystem

	citySpec  *prefabs.CitySpec
	riderSpec *prefabs.RiderSpec
	portfolio *prefabs.PortfolioSpec
	hooks     *script.Runtime

	toolbar *ToolBar
	card    *CardUI

	watcher *prefabs.Watcher

	face    ebtext.Face
	caption string

	riderEnt ecs.Entity

	clipboardOK bool
	debug       bool
}

func NewGame(seed uint64, debug, watch bool) (*Game, error) {
	citySpec, err := prefabs.LoadCitySpec()
	if err != nil {
		return nil, err
	}
	riderSpec, err := prefabs.LoadRiderSpec()
	if err != nil {
		return nil, err
	}
	portfolio, err := prefabs.LoadPortfolioSpec()
	if err != nil {
		return nil, err
	}

	g := &Game{
		world:     ecs.NewWorld(),
		citySpec:  citySpec,
		riderSpec: riderSpec,
		portfolio: portfolio,
		face:      ebtext.NewGoXFace(basicfont.Face7x13),
		debug:     debug,
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	_, err = entity.BuildCity(g.world, citySpec, rng, common.BaseWidth, common.BaseHeight, toolbarHeight)
	if err != nil {
		return nil, err
	}
	_, city, ok := ecs.First(g.world, component.CityComponent)
	if !ok {
		return nil, fmt.Errorf("game: city entity missing after build")
	}

	tiles := tileset.New(citySpec.Grid.TileWidth, citySpec.Grid.TileHeight, citySpec.TilePalette())
	g.render = system.NewRenderSystem(tiles)

	g.riderEnt, err = entity.BuildRider(g.world, riderSpec, city, tiles)
	if err != nil {
		return nil, err
	}
	if _, err := entity.BuildSession(g.world); err != nil {
		return nil, err
	}

	g.world.AddSystem(system.NewCursorSystem())
	g.world.AddSystem(system.NewBuildSystem())
	g.world.AddSystem(system.NewPathFollowSystem(float64(ebiten.TPS())))
	g.world.AddSystem(system.NewDaySystem())

	g.toolbar = NewToolBarUI(func(tool component.Tool) {
		if _, belt, ok := ecs.First(g.world, component.ToolbeltComponent); ok {
			belt.Active = tool
		}
	})

	if hooks, err := script.Load(script.DefaultScript); err != nil {
		log.Printf("game: caption hooks disabled: %v", err)
	} else {
		g.hooks = hooks
	}
	g.caption = g.dayCaption(1)

	if err := clipboard.Init(); err != nil {
		log.Printf("game: clipboard unavailable: %v", err)
	} else {
		g.clipboardOK = true
	}

	if watch {
		watcher, err := prefabs.NewWatcher("prefabs", filepath.Join("prefabs", "scripts"))
		if err != nil {
			log.Printf("game: prefab watch disabled: %v", err)
		} else {
			g.watcher = watcher
		}
	}

	return g, nil
}

func (g *Game) Update() error {
	g.drainWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.requestReset()
	}

	_, my := ebiten.CursorPosition()
	blocked := g.card != nil || my < toolbarHeight
	if _, cur, ok := ecs.First(g.world, component.CursorComponent); ok {
		cur.UIBlocked = blocked
	}

	if g.card != nil {
		g.card.Update()
	} else {
		g.toolbar.Update()
	}

	g.world.Update()
	g.dispatchEvents()

	return nil
}

func (g *Game) dispatchEvents() {
	for _, ev := range g.world.Events().Drain() {
		switch ev.Type {
		case component.EventCheckpointReached:
			data, ok := ev.Data.(component.CheckpointReached)
			if !ok {
				continue
			}
			card := g.portfolio.Card(data.Ordinal)
			g.showCard(card, false)
			g.caption = g.checkpointCaption(data.Ordinal, card.Title)
		case component.EventTourFinished:
			g.showCard(g.portfolio.Finish, true)
			g.caption = g.finishCaption(g.day())
		case component.EventTourReset:
			g.card = nil
			g.caption = g.dayCaption(g.day())
		case component.EventDayAdvanced:
			if data, ok := ev.Data.(component.DayAdvanced); ok {
				g.caption = g.dayCaption(data.Day)
			}
		case component.EventBuildingPlaced:
			if g.debug {
				log.Printf("game: placed %v", ev.Data)
			}
		case component.EventBuildingRemoved:
			if g.debug {
				log.Printf("game: bulldozed %v", ev.Data)
			}
		}
	}
}

func (g *Game) showCard(card prefabs.CardSpec, finish bool) {
	var onCopy func(string)
	if g.clipboardOK {
		onCopy = func(link string) {
			clipboard.Write(clipboard.FmtText, []byte(link))
		}
	}
	onContinue := func() {
		g.card = nil
		if rider, ok := ecs.Get(g.world, g.riderEnt, component.RiderComponent); ok {
			if finish {
				rider.ResetRequested = true
			} else {
				rider.ResumeRequested = true
			}
		}
	}
	g.card = NewCardUI(card, finish, onContinue, onCopy)
}

func (g *Game) requestReset() {
	g.card = nil
	if rider, ok := ecs.Get(g.world, g.riderEnt, component.RiderComponent); ok {
		rider.ResetRequested = true
	}
}

func (g *Game) day() int {
	if _, cal, ok := ecs.First(g.world, component.CalendarComponent); ok {
		return cal.Day
	}
	return 1
}

func (g *Game) dayCaption(day int) string {
	if g.hooks != nil {
		if s, err := g.hooks.OnDay(day); err == nil && s != "" {
			return s
		} else if err != nil {
			log.Printf("game: on_day hook: %v", err)
		}
	}
	return fmt.Sprintf("Day %d", day)
}

func (g *Game) checkpointCaption(ordinal int, title string) string {
	if g.hooks != nil {
		if s, err := g.hooks.OnCheckpoint(ordinal, title); err == nil && s != "" {
			return s
		} else if err != nil {
			log.Printf("game: on_checkpoint hook: %v", err)
		}
	}
	return fmt.Sprintf("Stop %d: %s", ordinal+1, title)
}

func (g *Game) finishCaption(day int) string {
	if g.hooks != nil {
		if s, err := g.hooks.OnFinish(day); err == nil && s != "" {
			return s
		} else if err != nil {
			log.Printf("game: on_finish hook: %v", err)
		}
	}
	return "Tour finished. Press R to ride again."
}

// drainWatcher applies any pending hot-reload events. Grid size and route
// changes need a restart; everything else applies live.
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	dirty := false
	for {
		select {
		case _, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			dirty = true
		case err := <-g.watcher.Errors:
			log.Printf("game: prefab watch: %v", err)
		default:
			if dirty {
				g.reload()
			}
			return
		}
	}
}

func (g *Game) reload() {
	if citySpec, err := prefabs.LoadCitySpec(); err != nil {
		log.Printf("game: reload city.yaml: %v", err)
	} else {
		g.citySpec = citySpec
		tiles := tileset.New(citySpec.Grid.TileWidth, citySpec.Grid.TileHeight, citySpec.TilePalette())
		g.render.SetTileset(tiles)
		if sp, ok := ecs.Get(g.world, g.riderEnt, component.SpriteComponent); ok && tiles.Rider != nil {
			bounds := tiles.Rider.Bounds()
			sp.Image = tiles.Rider
			sp.OriginX = float64(bounds.Dx()) / 2
			sp.OriginY = float64(bounds.Dy()) - float64(tiles.TileH)/4
		}
	}

	if riderSpec, err := prefabs.LoadRiderSpec(); err != nil {
		log.Printf("game: reload rider.yaml: %v", err)
	} else {
		g.riderSpec = riderSpec
		if rider, ok := ecs.Get(g.world, g.riderEnt, component.RiderComponent); ok {
			rider.Speed = riderSpec.Speed
		}
	}

	if portfolio, err := prefabs.LoadPortfolioSpec(); err != nil {
		log.Printf("game: reload portfolio.yaml: %v", err)
	} else {
		g.portfolio = portfolio
	}

	if hooks, err := script.Load(script.DefaultScript); err != nil {
		log.Printf("game: reload hooks: %v", err)
	} else {
		g.hooks = hooks
	}

	log.Printf("game: prefabs reloaded")
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.NRGBA{R: 0x17, G: 0x1d, B: 0x23, A: 0xff})

	g.render.Draw(g.world, screen)
	g.toolbar.Draw(screen)
	g.card.Draw(screen)
	g.drawHUD(screen)

	if g.debug {
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("FPS: %.1f  TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()),
			4, common.BaseHeight-32)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	dayLabel := fmt.Sprintf("Day %d", g.day())
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(common.BaseWidth-90, 20)
	op.ColorScale.ScaleWithColor(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	ebtext.Draw(screen, dayLabel, g.face, op)

	if g.caption != "" {
		op := &ebtext.DrawOptions{}
		op.GeoM.Translate(12, common.BaseHeight-20)
		op.ColorScale.ScaleWithColor(color.NRGBA{R: 0xe8, G: 0xe8, B: 0xe8, A: 0xff})
		ebtext.Draw(screen, g.caption, g.face, op)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
