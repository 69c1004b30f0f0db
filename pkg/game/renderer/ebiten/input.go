package ebiten

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	log "github.com/sirupsen/logrus"

	engineinput "mazeescape/pkg/engine/input"
)

// repeatKeys are held-key movement bindings; the value is the raw code
// handed to the binding layer.
var repeatKeys = []struct {
	key  ebiten.Key
	code string
}{
	{ebiten.KeyArrowUp, "arrow_up"},
	{ebiten.KeyArrowDown, "arrow_down"},
	{ebiten.KeyArrowLeft, "arrow_left"},
	{ebiten.KeyArrowRight, "arrow_right"},
	{ebiten.KeyW, "w"},
	{ebiten.KeyS, "s"},
	{ebiten.KeyA, "a"},
	{ebiten.KeyD, "d"},
	{ebiten.KeyK, "k"},
	{ebiten.KeyJ, "j"},
	{ebiten.KeyH, "h"},
	{ebiten.KeyL, "l"},
}

// pressKeys fire once per press
var pressKeys = []struct {
	key  ebiten.Key
	code string
}{
	{ebiten.KeyQ, "q"},
	{ebiten.KeyEscape, "escape"},
	{ebiten.KeyF8, "f8"},
	{ebiten.KeyM, "m"},
}

// dpadButtons maps the D-pad on common XInput-style controllers
var dpadButtons = []struct {
	button ebiten.GamepadButton
	code   string
}{
	{ebiten.GamepadButton11, "gamepad_dpad_up"},
	{ebiten.GamepadButton12, "gamepad_dpad_right"},
	{ebiten.GamepadButton13, "gamepad_dpad_down"},
	{ebiten.GamepadButton14, "gamepad_dpad_left"},
}

// Update handles input (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	if e.closed.Load() {
		return ebiten.Termination
	}

	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.WithFields(log.Fields{"width": w, "height": h}).Info("Main window opened")
	}

	e.handleZoom()

	now := time.Now().UnixMilli()

	// Check for gamepad input first, then fall back to keyboard (raw layer)
	if intent := e.checkGamepadInput(now); intent.Action != engineinput.ActionNone {
		e.push(intent)
	} else if intent := e.checkInput(now); intent.Action != engineinput.ActionNone {
		e.push(intent)
	}

	return nil
}

func (e *EbitenRenderer) push(intent engineinput.Intent) {
	if e.intents == nil {
		return
	}
	if !e.intents.Push(intent) {
		log.WithFields(log.Fields{"action": engineinput.ActionName(intent.Action)}).Debug("Intent queue full, input dropped")
	}
}

func toIntent(device engineinput.Device, code string) engineinput.Intent {
	return engineinput.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
		Device:    device,
		Code:      code,
		Timestamp: time.Now(),
	}))
}

// handleZoom handles =/- for tile size adjustment
func (e *EbitenRenderer) handleZoom() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd):
		e.setTileSize(e.tileSize + tileSizeStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract):
		e.setTileSize(e.tileSize - tileSizeStep)
	case inpututil.IsKeyJustPressed(ebiten.Key0) || inpututil.IsKeyJustPressed(ebiten.KeyNumpad0):
		e.setTileSize(e.defaultTileSize)
	}
}

func (e *EbitenRenderer) setTileSize(size int) {
	if size < minTileSize || size > maxTileSize || size == e.tileSize {
		return
	}
	e.tileSize = size
	e.invalidateFontCache()
}

// shouldRepeatKey checks if a key/button should trigger (initial press or repeat)
func (e *EbitenRenderer) shouldRepeatKey(pressed bool, code string, now int64) bool {
	state, exists := e.keyRepeatState[code]

	if !pressed {
		// Key released - clean up state
		delete(e.keyRepeatState, code)
		return false
	}

	if !exists {
		// First press - record it and trigger immediately
		e.keyRepeatState[code] = keyRepeatInfo{
			firstPressed: now,
			lastRepeat:   now,
		}
		return true
	}

	// Key is held - check if we should repeat
	if now-state.firstPressed >= keyRepeatInitialDelay && now-state.lastRepeat >= keyRepeatInterval {
		state.lastRepeat = now
		e.keyRepeatState[code] = state
		return true
	}
	return false
}

// checkGamepadInput checks for controller/gamepad input and returns the corresponding Intent.
// NOTE: Button indices here are tuned for common XInput-style controllers on Linux;
// mappings may vary between devices/platforms.
func (e *EbitenRenderer) checkGamepadInput(now int64) engineinput.Intent {
	var ids []ebiten.GamepadID
	ids = ebiten.AppendGamepadIDs(ids)

	for _, id := range ids {
		// Left stick: axis 0 is X, axis 1 is Y
		const deadZone = 0.5
		stickX := ebiten.GamepadAxisValue(id, 0)
		stickY := ebiten.GamepadAxisValue(id, 1)

		sticks := []struct {
			held bool
			dir  string
			code string
		}{
			{stickX < -deadZone, "left", "gamepad_dpad_left"},
			{stickX > deadZone, "right", "gamepad_dpad_right"},
			{stickY < -deadZone, "up", "gamepad_dpad_up"},
			{stickY > deadZone, "down", "gamepad_dpad_down"},
		}
		for _, s := range sticks {
			if e.shouldRepeatKey(s.held, fmt.Sprintf("gamepad_%d_stick_%s", id, s.dir), now) {
				return toIntent(engineinput.DeviceGamepad, s.code)
			}
		}

		for _, b := range dpadButtons {
			pressed := ebiten.IsGamepadButtonPressed(id, b.button)
			if e.shouldRepeatKey(pressed, fmt.Sprintf("gamepad_%d_%d", id, b.button), now) {
				return toIntent(engineinput.DeviceGamepad, b.code)
			}
		}

		// B / Circle quits
		if inpututil.IsGamepadButtonJustPressed(id, ebiten.GamepadButton1) {
			return toIntent(engineinput.DeviceGamepad, "gamepad_b")
		}
	}

	return engineinput.Intent{Action: engineinput.ActionNone}
}

// checkInput checks for keyboard input and returns the corresponding Intent.
func (e *EbitenRenderer) checkInput(now int64) engineinput.Intent {
	for _, k := range repeatKeys {
		if e.shouldRepeatKey(ebiten.IsKeyPressed(k.key), "key_"+k.code, now) {
			return toIntent(engineinput.DeviceKeyboard, k.code)
		}
	}

	for _, k := range pressKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			return toIntent(engineinput.DeviceKeyboard, k.code)
		}
	}

	return engineinput.Intent{Action: engineinput.ActionNone}
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.windowWidth = outsideWidth
	e.windowHeight = outsideHeight
	return outsideWidth, outsideHeight
}
