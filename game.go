package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/rocketboost/config"
	"github.com/milk9111/rocketboost/ecs"
	"github.com/milk9111/rocketboost/ecs/component"
	"github.com/milk9111/rocketboost/ecs/entity"
	"github.com/milk9111/rocketboost/ecs/system"
	"github.com/milk9111/rocketboost/levels"
	"github.com/milk9111/rocketboost/prefabs"
	"github.com/milk9111/rocketboost/rocket"
	"github.com/rs/zerolog"
)

// Game owns the world for the loaded level and acts as the rocket's scene
// manager. A scene change is requested during the tick and applied once every
// system has run.
type Game struct {
	settings config.Settings
	log      zerolog.Logger
	players  entity.PlayerLoader

	clock     *ecs.Clock
	timeline  *ecs.Timeline
	world     *ecs.World
	scheduler *ecs.Scheduler
	physics   *system.PhysicsSystem
	render    *system.RenderSystem
	watcher   *prefabs.Watcher

	spec       prefabs.RocketSpec
	rocket     ecs.Entity
	level      int
	levelName  string
	debugFlags rocket.DebugFlags
}

func NewGame(settings config.Settings, log zerolog.Logger, players entity.PlayerLoader) (*Game, error) {
	spec, err := prefabs.LoadRocketSpec()
	if err != nil {
		return nil, err
	}
	if levels.Count() == 0 {
		return nil, errors.New("no levels embedded")
	}

	clock := ecs.NewClock(ebiten.DefaultTPS)
	g := &Game{
		settings: settings,
		log:      log,
		players:  players,
		clock:    clock,
		timeline: ecs.NewTimeline(clock),
		physics:  system.NewPhysicsSystem(clock, log.With().Str("system", "physics").Logger()),
		render:   system.NewRenderSystem(),
		spec:     spec,
	}
	g.scheduler = ecs.NewScheduler(
		system.NewInputSystem(),
		system.NewRocketSystem(),
		system.NewOscillatorSystem(clock),
		g.physics,
		system.NewRocketCollisionSystem(log),
		system.NewEmitterSystem(),
		system.NewAudioSystem(settings.Audio.Volume, log),
	)

	if settings.Debug {
		g.startWatcher()
	}

	if err := g.loadLevel(settings.StartLevel); err != nil {
		g.Close()
		return nil, err
	}
	return g, nil
}

func (g *Game) Update() error {
	g.clock.Tick()
	g.scheduler.Update(g.world)
	g.timeline.Advance()
	g.applyLevelChange()
	g.reloadChangedPrefabs()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)
	if g.settings.Debug {
		g.physics.DrawPhysicsDebug(screen)
	}

	lines := []string{
		fmt.Sprintf("level %d/%d  %s", g.level+1, g.SceneCount(), g.levelName),
	}
	if ctrl := g.controller(); ctrl != nil {
		lines = append(lines, "rocket: "+ctrl.State().String())
		if g.settings.Debug {
			collisions := "on"
			if ctrl.CollisionsDisabled() {
				collisions = "off"
			}
			lines = append(lines,
				fmt.Sprintf("collisions %s [C]  skip level [L]", collisions),
				fmt.Sprintf("fps %.1f  pending calls %d", ebiten.ActualFPS(), g.timeline.Pending()),
			)
		}
	}
	g.render.DrawHUD(screen, lines...)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.settings.Window.Width, g.settings.Window.Height
}

// LoadScene requests a change to the level at index. The world is rebuilt at
// the end of the current tick.
func (g *Game) LoadScene(index int) {
	if index < 0 || index >= g.SceneCount() {
		g.log.Error().Int("index", index).Int("count", g.SceneCount()).Msg("scene: index out of range")
		return
	}
	req := ecs.CreateEntity(g.world)
	if err := ecs.Add(g.world, req, component.LevelChangeRequestComponent.Kind(), &component.LevelChangeRequest{Index: index}); err != nil {
		g.log.Error().Err(err).Msg("scene: request level change")
	}
}

func (g *Game) ActiveSceneIndex() int {
	return g.level
}

func (g *Game) SceneCount() int {
	return levels.Count()
}

// Close releases audio players and the prefab watcher.
func (g *Game) Close() {
	g.closeWorld()
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			g.log.Warn().Err(err).Msg("prefabs: close watcher")
		}
		g.watcher = nil
	}
}

func (g *Game) controller() *rocket.Controller {
	rc, ok := ecs.Get(g.world, g.rocket, component.RocketComponent.Kind())
	if !ok {
		return nil
	}
	return rc.Controller
}

func (g *Game) applyLevelChange() {
	e, ok := ecs.First(g.world, component.LevelChangeRequestComponent.Kind())
	if !ok {
		return
	}
	req, _ := ecs.Get(g.world, e, component.LevelChangeRequestComponent.Kind())
	if err := g.loadLevel(req.Index); err != nil {
		g.log.Error().Err(err).Int("index", req.Index).Msg("scene: load failed")
		ecs.DestroyEntity(g.world, e)
	}
}

// loadLevel replaces the world with a fresh one built from level index. The
// old world is kept if the new one fails to build. Callbacks still pending on
// the timeline belong to the old level and are dropped.
func (g *Game) loadLevel(index int) error {
	lvl, err := levels.Load(index)
	if err != nil {
		return err
	}

	if ctrl := g.controller(); ctrl != nil {
		g.debugFlags = ctrl.DebugFlags()
	}

	world := ecs.NewWorld()
	rocketEntity, err := entity.LoadLevel(world, lvl, g.spec, entity.Runtime{
		Clock:      g.clock,
		Timer:      g.timeline,
		Scenes:     g,
		Players:    g.players,
		Debug:      g.settings.Debug,
		DebugFlags: g.debugFlags,
		Logger:     g.log,
	})
	if err != nil {
		return err
	}

	g.closeWorld()
	g.timeline.Reset()
	g.physics.Reset()
	g.world = world
	g.rocket = rocketEntity
	g.level = index
	g.levelName = lvl.Name
	g.log.Info().Int("index", index).Str("name", lvl.Name).Int("blocks", len(lvl.Blocks)).Msg("scene: level loaded")
	return nil
}

func (g *Game) closeWorld() {
	if g.world == nil {
		return
	}
	ecs.ForEach(g.world, component.AudioComponent.Kind(), func(_ ecs.Entity, a *component.Audio) {
		for _, p := range a.Players {
			if p == nil {
				continue
			}
			if err := p.Close(); err != nil {
				g.log.Warn().Err(err).Msg("audio: close player")
			}
		}
	})
	g.world = nil
}

func (g *Game) startWatcher() {
	if _, err := os.Stat(prefabs.Dir); err != nil {
		g.log.Debug().Str("dir", prefabs.Dir).Msg("prefabs: no directory to watch")
		return
	}
	w, err := prefabs.NewWatcher(prefabs.Dir)
	if err != nil {
		g.log.Warn().Err(err).Msg("prefabs: watch")
		return
	}
	g.watcher = w
	g.log.Info().Str("dir", prefabs.Dir).Msg("prefabs: watching for changes")
}

// reloadChangedPrefabs rebuilds the current level when the rocket prefab
// changes on disk. A spec that fails to load keeps the previous one.
func (g *Game) reloadChangedPrefabs() {
	if g.watcher == nil {
		return
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			g.log.Warn().Err(err).Msg("prefabs: watcher")
		}
	default:
	}

	changed := false
	for _, name := range g.watcher.Changed() {
		if name == prefabs.RocketFile {
			changed = true
		}
	}
	if !changed {
		return
	}

	spec, err := prefabs.LoadRocketSpec()
	if err != nil {
		g.log.Error().Err(err).Msg("prefabs: reload")
		return
	}
	g.spec = spec
	g.log.Info().Str("file", prefabs.RocketFile).Msg("prefabs: reloaded")
	g.LoadScene(g.level)
}
