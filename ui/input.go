package ui

import (
	"snake-duel/game"
	"snake-duel/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var turnKeys = []struct {
	keys []int32
	dir  types.Point
}{
	{[]int32{rl.KeyUp, rl.KeyW}, types.Up},
	{[]int32{rl.KeyDown, rl.KeyS}, types.Down},
	{[]int32{rl.KeyLeft, rl.KeyA}, types.Left},
	{[]int32{rl.KeyRight, rl.KeyD}, types.Right},
}

func anyPressed(keys ...int32) bool {
	for _, k := range keys {
		if rl.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// ReadInput collects this frame's key presses from the window.
func ReadInput() game.Command {
	var cmd game.Command
	for _, t := range turnKeys {
		if anyPressed(t.keys...) {
			cmd.Direction = t.dir
		}
	}
	cmd.TogglePause = anyPressed(rl.KeyP, rl.KeySpace)
	cmd.Reset = anyPressed(rl.KeyR)
	cmd.ToggleWrap = anyPressed(rl.KeyT)
	cmd.Quit = anyPressed(rl.KeyQ) || rl.WindowShouldClose()
	return cmd
}
