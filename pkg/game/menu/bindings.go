package menu

import (
	"fmt"
	"io"
	"strings"

	"github.com/leonelquinteros/gotext"

	engineinput "mazeescape/pkg/engine/input"
)

// BindingMenuItem represents a menu item for a key binding.
type BindingMenuItem struct {
	Action engineinput.Action
}

// GetLabel returns the action name and the keys bound to it.
func (b *BindingMenuItem) GetLabel() string {
	codes := engineinput.GetBindingsByAction()[b.Action]
	codeText := strings.Join(codes, ", ")
	if codeText == "" {
		codeText = gotext.Get("CONTROLS_UNBOUND")
	}
	return fmt.Sprintf("%s: %s", engineinput.ActionName(b.Action), codeText)
}

// IsSelectable returns false; the list is informational.
func (b *BindingMenuItem) IsSelectable() bool {
	return false
}

// GetHelpText returns nothing.
func (b *BindingMenuItem) GetHelpText() string {
	return ""
}

// ControlsItems lists the bindings a player needs during a level.
func ControlsItems() []MenuItem {
	actions := []engineinput.Action{
		engineinput.ActionMoveNorth,
		engineinput.ActionMoveSouth,
		engineinput.ActionMoveWest,
		engineinput.ActionMoveEast,
		engineinput.ActionQuit,
		engineinput.ActionDebugMapDump,
	}

	items := make([]MenuItem, 0, len(actions))
	for _, act := range actions {
		items = append(items, &BindingMenuItem{Action: act})
	}
	return items
}

// WriteControls prints the controls list
func WriteControls(w io.Writer, newline string) {
	writeMenu(w, gotext.Get("CONTROLS_TITLE"), ControlsItems(), newline)
}
