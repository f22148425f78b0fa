// Package menu provides a generic numbered menu for the terminal.
package menu

import (
	"fmt"
	"strconv"
	"strings"

	"riftrewind/pkg/game/i18n"
	"riftrewind/pkg/game/renderer"
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

// MenuHandler handles menu item activation.
type MenuHandler interface {
	// OnActivate is called when an item is chosen.
	// Returns true if the menu should close, and any help text to display.
	OnActivate(item MenuItem, index int) (shouldClose bool, helpText string)
	// OnExit is called when the menu is left with q.
	OnExit()
	// GetTitle returns the menu title.
	GetTitle() string
	// GetInstructions returns the line printed under the items.
	GetInstructions() string
}

// RunMenu prints items, numbering the selectable ones, and reads choices
// until the handler closes the menu or the user quits. Input errors end the
// menu and are returned.
func RunMenu(console renderer.Console, items []MenuItem, handler MenuHandler) error {
	helpText := ""
	for {
		numbered := printMenu(console, items, helpText, handler)
		helpText = ""

		answer, err := console.Prompt("> ")
		if err != nil {
			return err
		}

		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer == "q" || answer == "quit" {
			handler.OnExit()
			return nil
		}

		n, err := strconv.Atoi(answer)
		if err != nil || n < 1 || n > len(numbered) {
			helpText = console.StyleText(i18n.T("MENU_INVALID", answer), renderer.StyleError)
			continue
		}

		index := numbered[n-1]
		shouldClose, newHelpText := handler.OnActivate(items[index], index)
		if shouldClose {
			return nil
		}
		helpText = newHelpText
	}
}

// printMenu returns the item index behind each printed number.
func printMenu(console renderer.Console, items []MenuItem, helpText string, handler MenuHandler) []int {
	console.ShowMessage("")
	console.ShowMessage(console.StyleText("=== "+handler.GetTitle()+" ===", renderer.StyleTitle))

	var numbered []int
	for i, item := range items {
		if !item.IsSelectable() {
			console.ShowMessage("   " + console.StyleText(item.GetLabel(), renderer.StyleSubtle))
			continue
		}
		numbered = append(numbered, i)
		line := fmt.Sprintf("%s %s", console.StyleText(fmt.Sprintf("%d.", len(numbered)), renderer.StyleAccent), item.GetLabel())
		if help := item.GetHelpText(); help != "" {
			line += "  " + console.StyleText(help, renderer.StyleSubtle)
		}
		console.ShowMessage(line)
	}

	if instructions := handler.GetInstructions(); instructions != "" {
		console.ShowMessage(console.StyleText(instructions, renderer.StyleSubtle))
	}
	if helpText != "" {
		console.ShowMessage(helpText)
	}
	return numbered
}
