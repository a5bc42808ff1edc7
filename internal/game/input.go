package game

import (
	"chosenoffset.com/outbreak/internal/render"
	"chosenoffset.com/outbreak/internal/simulation"
)

// IntentFromInput reduces the held keys to one tick of player intent.
// WASD and the arrow keys move, Space fires the shockwave and J swings.
func IntentFromInput(in render.InputManager) simulation.Intent {
	var intent simulation.Intent
	if in.IsKeyPressed(render.KeyA) || in.IsKeyPressed(render.KeyLeft) {
		intent.MoveX--
	}
	if in.IsKeyPressed(render.KeyD) || in.IsKeyPressed(render.KeyRight) {
		intent.MoveX++
	}
	if in.IsKeyPressed(render.KeyW) || in.IsKeyPressed(render.KeyUp) {
		intent.MoveY--
	}
	if in.IsKeyPressed(render.KeyS) || in.IsKeyPressed(render.KeyDown) {
		intent.MoveY++
	}
	intent.Shockwave = in.IsKeyPressed(render.KeySpace)
	intent.Attack = in.IsKeyPressed(render.KeyJ)
	return intent
}
