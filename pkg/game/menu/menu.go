// Package menu provides the console prompts shown between levels: the
// difficulty menu, the continue question and the controls list.
package menu

import (
	"fmt"
	"io"

	"github.com/gookit/color"

	"mazeescape/pkg/game/tier"
)

// MenuItem represents a single item in a menu.
type MenuItem interface {
	// GetLabel returns the display label for this menu item.
	GetLabel() string
	// IsSelectable returns whether this item can be selected.
	IsSelectable() bool
	// GetHelpText returns optional help text for this item.
	GetHelpText() string
}

var (
	colorTitle    = color.Style{color.FgMagenta, color.OpBold}
	colorShortcut = color.Style{color.FgGreen, color.OpBold}
	colorHelp     = color.Style{color.FgGray}
)

// TierItem is a difficulty menu entry
type TierItem struct {
	Tier     tier.Tier
	Shortcut string
}

// GetLabel returns the translated tier name with its maze size
func (t *TierItem) GetLabel() string {
	return fmt.Sprintf("%s (%dx%d)", t.Tier.DisplayName(), t.Tier.Cols, t.Tier.Rows)
}

// IsSelectable returns true; every tier can be chosen
func (t *TierItem) IsSelectable() bool {
	return true
}

// GetHelpText returns nothing; tiers need no explanation
func (t *TierItem) GetHelpText() string {
	return ""
}

// DifficultyItems returns one item per tier in ladder order
func DifficultyItems() []MenuItem {
	items := make([]MenuItem, 0, tier.Total)
	for i, t := range tier.Ladder {
		items = append(items, &TierItem{Tier: t, Shortcut: fmt.Sprint(i + 1)})
	}
	return items
}

// writeMenu prints a titled list. Items with a shortcut get it as a prefix.
func writeMenu(w io.Writer, title string, items []MenuItem, newline string) {
	fmt.Fprint(w, colorTitle.Sprint(title)+newline)
	for _, item := range items {
		prefix := "- "
		if s, ok := item.(*TierItem); ok {
			prefix = colorShortcut.Sprint(s.Shortcut) + ") "
		}
		line := prefix + item.GetLabel()
		if help := item.GetHelpText(); help != "" {
			line += " " + colorHelp.Sprint(help)
		}
		fmt.Fprint(w, line+newline)
	}
}
