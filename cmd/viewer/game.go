package main

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/orbitcam/controls"
	"github.com/milk9111/orbitcam/ecs"
	"github.com/milk9111/orbitcam/ecs/component"
	"github.com/milk9111/orbitcam/ecs/entity"
	"github.com/milk9111/orbitcam/ecs/system"
	"github.com/milk9111/orbitcam/prefabs"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

// Game hosts one orbit camera over a wireframe scene. The world runs the
// input sampler and the orbit controller each tick; Draw projects the scene
// through the camera's transform.
type Game struct {
	world   *ecs.World
	cfg     *controls.Config
	camera  ecs.Entity
	scene   *scene
	watcher *prefabs.Watcher
	status  string
}

func NewGame(watch bool) (*Game, error) {
	cfg, err := prefabs.LoadControlsConfig()
	if err != nil {
		log.Printf("viewer: falling back to default controls: %v", err)
		cfg = controls.Default()
	}

	world := ecs.NewWorld()
	world.AddSystem(system.NewInputSystem(cfg))
	world.AddSystem(system.NewOrbitSystem(cfg))

	camera, err := entity.NewOrbitCamera(world)
	if err != nil {
		return nil, fmt.Errorf("viewer: spawn camera: %w", err)
	}

	g := &Game{
		world:  world,
		cfg:    cfg,
		camera: camera,
		scene:  newScene(),
	}

	if watch {
		w, err := prefabs.NewWatcher("prefabs")
		if err != nil {
			log.Printf("viewer: prefab watch disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.pollWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.resetCamera()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		if o, ok := ecs.Get(g.world, g.camera, component.OrbitComponent); ok {
			o.Frozen = !o.Frozen
			g.status = fmt.Sprintf("frozen: %v", o.Frozen)
		}
	}

	g.world.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if tr, ok := ecs.Get(g.world, g.camera, component.TransformComponent); ok {
		g.scene.draw(screen, *tr)
	}

	hud := "LMB drag: rotate   RMB drag: pan   wheel: zoom   Q/E: roll   R: reset   F: freeze"
	if o, ok := ecs.Get(g.world, g.camera, component.OrbitComponent); ok {
		hud = fmt.Sprintf("radius %.2f  yaw %.2f  pitch %.2f  roll %.2f\n%s",
			o.Radius, o.Yaw, o.Pitch, o.Roll, hud)
	}
	if g.status != "" {
		hud += "\n" + g.status
	}
	ebitenutil.DebugPrint(screen, hud)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(name)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("viewer: watch: %v", err)
		default:
			return
		}
	}
}

func (g *Game) reload(name string) {
	switch filepath.Base(name) {
	case "controls.yaml":
		cfg, err := prefabs.LoadControlsConfig()
		if err != nil {
			log.Printf("viewer: reload controls: %v", err)
			return
		}
		// Systems hold the pointer; swap contents between frames.
		*g.cfg = *cfg
		g.status = "controls reloaded"
	case "camera.yaml":
		g.resetCamera()
	}
}

func (g *Game) resetCamera() {
	spec, err := prefabs.LoadCameraSpec()
	if err != nil {
		log.Printf("viewer: reload camera: %v", err)
		return
	}
	o, ok := ecs.Get(g.world, g.camera, component.OrbitComponent)
	if !ok {
		return
	}
	fresh := component.NewOrbit(
		mgl64.Vec3{spec.Pivot.X, spec.Pivot.Y, spec.Pivot.Z},
		spec.Radius, spec.Yaw, spec.Pitch, spec.Roll,
	)
	fresh.MinZoom = spec.MinZoom
	fresh.MaxZoom = spec.MaxZoom
	fresh.ApplyDelta(0, 0, 0, 0, mgl64.Vec3{})
	fresh.Frozen = o.Frozen
	*o = *fresh
	g.status = "camera reset"
}
