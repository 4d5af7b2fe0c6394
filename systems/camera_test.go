package systems

import (
	"testing"

	"github.com/automoto/walkabout/components"
	"github.com/yohamta/donburi/features/math"
)

func TestFollowCamera(t *testing.T) {
	tests := []struct {
		name      string
		camera    components.CameraData
		smoothing float64
		want      math.Vec2
	}{
		{"snap", components.CameraData{Target: math.NewVec2(10, 20), Snap: true}, 0.2, math.NewVec2(10, 20)},
		{"no smoothing", components.CameraData{Target: math.NewVec2(10, 20)}, 1, math.NewVec2(10, 20)},
		{"eased", components.CameraData{Target: math.NewVec2(10, 20)}, 0.5, math.NewVec2(5, 10)},
		{"at rest", components.CameraData{Position: math.NewVec2(3, 3), Target: math.NewVec2(3, 3)}, 0.2, math.NewVec2(3, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.camera
			followCamera(&c, tt.smoothing)
			if c.Position != tt.want {
				t.Errorf("Position = %v, want %v", c.Position, tt.want)
			}
			if c.Snap {
				t.Error("Snap should be cleared")
			}
		})
	}
}

func TestWorldOffsetCentersCamera(t *testing.T) {
	camera := &components.CameraData{Position: math.NewVec2(100, 50)}
	x, y := WorldOffset(camera, 640, 360)
	if x != 220 || y != 130 {
		t.Errorf("WorldOffset = (%v,%v), want (220,130)", x, y)
	}
}
