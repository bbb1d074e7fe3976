package main

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/orbitcam/ecs/component"
)

const (
	fovY = math.Pi / 3
	near = 0.1
)

type line struct {
	a, b mgl64.Vec3
	col  color.Color
}

// scene is a fixed wireframe: a ground grid, a cube at the origin, and the
// world axes.
type scene struct {
	lines []line
}

func newScene() *scene {
	s := &scene{}

	grid := colornames.Dimgray
	for i := -5; i <= 5; i++ {
		f := float64(i)
		s.add(mgl64.Vec3{f, 0, -5}, mgl64.Vec3{f, 0, 5}, grid)
		s.add(mgl64.Vec3{-5, 0, f}, mgl64.Vec3{5, 0, f}, grid)
	}

	c := colornames.Lightgrey
	v := func(x, y, z float64) mgl64.Vec3 { return mgl64.Vec3{x, y + 1, z} }
	corners := []mgl64.Vec3{
		v(-1, -1, -1), v(1, -1, -1), v(1, -1, 1), v(-1, -1, 1),
		v(-1, 1, -1), v(1, 1, -1), v(1, 1, 1), v(-1, 1, 1),
	}
	edges := [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	for _, e := range edges {
		s.add(corners[e[0]], corners[e[1]], c)
	}

	s.add(mgl64.Vec3{}, mgl64.Vec3{2, 0, 0}, colornames.Red)
	s.add(mgl64.Vec3{}, mgl64.Vec3{0, 2, 0}, colornames.Green)
	s.add(mgl64.Vec3{}, mgl64.Vec3{0, 0, 2}, colornames.Blue)

	return s
}

func (s *scene) add(a, b mgl64.Vec3, col color.Color) {
	s.lines = append(s.lines, line{a: a, b: b, col: col})
}

func (s *scene) draw(screen *ebiten.Image, tr component.Transform) {
	bounds := screen.Bounds()
	w := float64(bounds.Dx())
	h := float64(bounds.Dy())
	focal := (h / 2) / math.Tan(fovY/2)
	inv := tr.Rotation.Inverse()

	for _, l := range s.lines {
		ax, ay, aok := project(inv, tr.Position, l.a, w, h, focal)
		bx, by, bok := project(inv, tr.Position, l.b, w, h, focal)
		if !aok || !bok {
			// Segments crossing the near plane are dropped rather than
			// clipped; good enough for a debug scene.
			continue
		}
		vector.StrokeLine(screen, float32(ax), float32(ay), float32(bx), float32(by), 1, l.col, true)
	}
}

// project maps a world point into screen space through the camera's inverse
// rotation. The camera looks down -Z in view space.
func project(inv mgl64.Quat, eye, p mgl64.Vec3, w, h, focal float64) (x, y float64, ok bool) {
	v := inv.Rotate(p.Sub(eye))
	if v.Z() >= -near {
		return 0, 0, false
	}
	d := -v.Z()
	return w/2 + focal*v.X()/d, h/2 - focal*v.Y()/d, true
}
