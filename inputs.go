package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"cubecity/config"
)

// pollIntents samples the held keys into one frame of control intents.
// Bindings follow the Descent scheme: arrows or numpad 8/2/4/6 to look,
// Q/E or numpad 7/9 to roll, A/Z to thrust, numpad 1/3 and keypad +/- to
// slide, Alt to slide with the look keys, V to dissolve the city.
func pollIntents(window *glfw.Window) Intents {
	held := func(keys ...glfw.Key) bool {
		for _, key := range keys {
			if window.GetKey(key) == glfw.Press {
				return true
			}
		}
		return false
	}
	return Intents{
		TurnUp:     held(glfw.KeyUp, glfw.KeyKP8),
		TurnDown:   held(glfw.KeyDown, glfw.KeyKP2),
		TurnLeft:   held(glfw.KeyLeft, glfw.KeyKP4),
		TurnRight:  held(glfw.KeyRight, glfw.KeyKP6),
		RollLeft:   held(glfw.KeyQ, glfw.KeyKP7),
		RollRight:  held(glfw.KeyE, glfw.KeyKP9),
		Forward:    held(glfw.KeyA),
		Back:       held(glfw.KeyZ),
		SlideLeft:  held(glfw.KeyKP1),
		SlideRight: held(glfw.KeyKP3),
		SlideUp:    held(glfw.KeyKPSubtract),
		SlideDown:  held(glfw.KeyKPAdd),
		Alt:        held(glfw.KeyLeftAlt, glfw.KeyRightAlt),
		Dissolve:   held(glfw.KeyV),
	}
}

// onKey handles the one-shot toggles; held movement keys are polled each
// frame instead for fast response.
func (a *app) onKey(window *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	switch key {
	case glfw.KeyEscape:
		window.SetShouldClose(true)
	case glfw.KeyF3:
		a.showDebug = !a.showDebug
	case glfw.KeyF11:
		if a.monitor == nil {
			//set to fullscreen
			a.monitor = glfw.GetPrimaryMonitor()
			mode := a.monitor.GetVideoMode()
			window.SetMonitor(a.monitor, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
		} else {
			//set to windowed
			oX, oY := a.monitor.GetVideoMode().Width, a.monitor.GetVideoMode().Height
			a.monitor = nil
			window.SetMonitor(nil, (oX/2)-(config.WindowWidth/2), (oY/2)-(config.WindowHeight/2), config.WindowWidth, config.WindowHeight, 0)
		}
	}
}
