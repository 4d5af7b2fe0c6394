package systems

import (
	"github.com/automoto/walkabout/components"
	"github.com/automoto/walkabout/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the camera toward the last resolved hero position.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	followCamera(components.Camera.Get(cameraEntry), config.Camera.FollowSmoothing)
}

func followCamera(camera *components.CameraData, smoothing float64) {
	if camera.Snap || smoothing >= 1 {
		camera.Position = camera.Target
		camera.Snap = false
		return
	}
	camera.Position.X += (camera.Target.X - camera.Position.X) * smoothing
	camera.Position.Y += (camera.Target.Y - camera.Position.Y) * smoothing
}

// WorldOffset is the translation applied to everything drawn in world space:
// the camera position ends up at the center of the screen.
func WorldOffset(camera *components.CameraData, screenWidth, screenHeight int) (float64, float64) {
	return -camera.Position.X + float64(screenWidth)/2, -camera.Position.Y + float64(screenHeight)/2
}
