package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/echoknight/common"
	"github.com/milk9111/echoknight/ecs"
	"github.com/milk9111/echoknight/ecs/component"
	"github.com/milk9111/echoknight/ecs/entity"
)

func TestBulletExpiresAfterTTL(t *testing.T) {
	spec := testSpec()
	w := ecs.NewWorld()
	bullet, err := entity.SpawnBullet(w, spec, cp.Vector{X: 300, Y: 200}, cp.Vector{X: 0.5, Y: 0.5})
	if err != nil {
		t.Fatalf("spawn bullet: %v", err)
	}
	sys := NewBulletSystem(spec)

	// 180 ticks at 60Hz is exactly 3000ms, which is not yet past the TTL.
	for i := 0; i < 180; i++ {
		sys.Update(w)
	}
	if !ecs.IsAlive(w, bullet) {
		t.Fatalf("bullet expired at exactly the ttl")
	}
	sys.Update(w)
	if ecs.IsAlive(w, bullet) {
		t.Fatalf("bullet still alive after ttl")
	}
}

func TestBulletLeavesPlayfield(t *testing.T) {
	spec := testSpec()
	w := ecs.NewWorld()
	bullet, err := entity.SpawnBullet(w, spec, cp.Vector{X: 994, Y: 250}, cp.Vector{X: 5, Y: 5})
	if err != nil {
		t.Fatalf("spawn bullet: %v", err)
	}
	sys := NewBulletSystem(spec)

	sys.Update(w)
	if !ecs.IsAlive(w, bullet) {
		t.Fatalf("bullet removed while still overlapping the playfield")
	}
	for i := 0; i < 3; i++ {
		sys.Update(w)
	}
	if ecs.IsAlive(w, bullet) {
		t.Fatalf("bullet outside the playfield should be removed")
	}
}

func TestBulletReflectsButNeverAmplifies(t *testing.T) {
	for _, surface := range []component.Surface{component.SurfaceNormal, component.SurfaceAmplifying, component.SurfaceAbsorbing} {
		t.Run(surface.String(), func(t *testing.T) {
			spec := testSpec()
			w := ecs.NewWorld()
			if _, err := entity.NewWall(w, surface, 100, 0, 50); err != nil {
				t.Fatalf("new wall: %v", err)
			}
			bullet, err := entity.SpawnBullet(w, spec, cp.Vector{X: 91, Y: 25}, cp.Vector{X: 5, Y: -5})
			if err != nil {
				t.Fatalf("spawn bullet: %v", err)
			}

			NewBulletSystem(spec).Update(w)

			if !ecs.IsAlive(w, bullet) {
				t.Fatalf("bullet destroyed by wall")
			}
			if got := velocityOf(t, w, bullet); got.X != -5 || got.Y != -5 {
				t.Fatalf("velocity = %v, want (-5,-5)", got)
			}
		})
	}
}

func TestReflectAxes(t *testing.T) {
	wall := common.NewRect(100, 100, 50, 50)
	tests := []struct {
		name         string
		box          [4]float64
		flipX, flipY bool
	}{
		{name: "left face", box: [4]float64{95, 120, 10, 10}, flipX: true},
		{name: "right face", box: [4]float64{145, 120, 10, 10}, flipX: true},
		{name: "top face", box: [4]float64{120, 95, 10, 10}, flipY: true},
		{name: "bottom face", box: [4]float64{120, 145, 10, 10}, flipY: true},
		{name: "corner", box: [4]float64{95, 95, 10, 10}, flipX: true, flipY: true},
		{name: "deep inside", box: [4]float64{115, 115, 20, 20}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fx, fy := reflectAxes(common.NewRect(tc.box[0], tc.box[1], tc.box[2], tc.box[3]), wall, 10)
			if fx != tc.flipX || fy != tc.flipY {
				t.Fatalf("flip = (%v,%v), want (%v,%v)", fx, fy, tc.flipX, tc.flipY)
			}
		})
	}
}
