package menu

import (
	"fmt"
	"strings"

	engineinput "riftrewind/pkg/engine/input"
	"riftrewind/pkg/game/i18n"
	"riftrewind/pkg/game/renderer"
)

// mapActions is the order controls are listed in.
var mapActions = []engineinput.Action{
	engineinput.ActionMoveTo,
	engineinput.ActionMoveNorth,
	engineinput.ActionMoveSouth,
	engineinput.ActionMoveWest,
	engineinput.ActionMoveEast,
	engineinput.ActionMoveRandom,
	engineinput.ActionZoom,
	engineinput.ActionCloseModal,
	engineinput.ActionRefresh,
	engineinput.ActionBack,
}

// BindingLines returns one "Action: codes" line per map action.
func BindingLines() []string {
	byAction := engineinput.GetBindingsByAction()
	lines := make([]string, 0, len(mapActions))
	for _, act := range mapActions {
		codeText := strings.Join(byAction[act], ", ")
		if codeText == "" {
			codeText = "(unbound)"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", engineinput.ActionName(act), codeText))
	}
	return lines
}

// ShowBindings prints the map window controls.
func ShowBindings(console renderer.Console) {
	console.ShowMessage("")
	console.ShowMessage(console.StyleText(i18n.T("MENU_CONTROLS"), renderer.StyleAccent))
	for _, line := range BindingLines() {
		name, codes, _ := strings.Cut(line, ": ")
		console.ShowMessage("  " + console.StyleText(name+":", renderer.StyleLabel) + " " + console.StyleText(codes, renderer.StyleValue))
	}
}
