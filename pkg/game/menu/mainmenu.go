package menu

import (
	"riftrewind/pkg/game/i18n"
	"riftrewind/pkg/game/renderer"
)

// MainMenuAction represents the action type for main menu items.
type MainMenuAction int

const (
	MainMenuActionStart MainMenuAction = iota
	MainMenuActionStories
	MainMenuActionControls
	MainMenuActionQuit
)

// MainMenuItem represents a menu item in the main menu.
type MainMenuItem struct {
	Label    string
	Action   MainMenuAction
	Disabled bool
}

// GetLabel returns the display label for this menu item.
func (m *MainMenuItem) GetLabel() string {
	return m.Label
}

// IsSelectable returns whether this item can be selected.
func (m *MainMenuItem) IsSelectable() bool {
	return !m.Disabled
}

// GetHelpText returns help text for this menu item.
func (m *MainMenuItem) GetHelpText() string {
	switch m.Action {
	case MainMenuActionStart:
		return i18n.T("MENU_START_HELP")
	case MainMenuActionStories:
		return i18n.T("MENU_STORIES_HELP")
	case MainMenuActionControls:
		return i18n.T("MENU_CONTROLS_HELP")
	default:
		return ""
	}
}

// MainMenuHandler handles the main menu.
type MainMenuHandler struct {
	hasData        bool
	selectedAction MainMenuAction
}

// NewMainMenuHandler creates a main menu handler. Without stored data the
// stories entry is shown but cannot be chosen.
func NewMainMenuHandler(hasData bool) *MainMenuHandler {
	return &MainMenuHandler{hasData: hasData, selectedAction: MainMenuActionQuit}
}

// GetTitle returns the menu title.
func (h *MainMenuHandler) GetTitle() string {
	return i18n.T("APP_TITLE")
}

// GetInstructions returns the menu instructions.
func (h *MainMenuHandler) GetInstructions() string {
	return i18n.T("MENU_INSTRUCTIONS")
}

// OnActivate is called when an item is activated.
func (h *MainMenuHandler) OnActivate(item MenuItem, index int) (shouldClose bool, helpText string) {
	mainItem, ok := item.(*MainMenuItem)
	if !ok {
		return false, ""
	}
	h.selectedAction = mainItem.Action
	return true, ""
}

// OnExit is called when the menu is exited.
func (h *MainMenuHandler) OnExit() {
	h.selectedAction = MainMenuActionQuit
}

// GetSelectedAction returns the selected action.
func (h *MainMenuHandler) GetSelectedAction() MainMenuAction {
	return h.selectedAction
}

// GetMenuItems returns the menu items for the main menu.
func (h *MainMenuHandler) GetMenuItems() []MenuItem {
	return []MenuItem{
		&MainMenuItem{Label: i18n.T("MENU_START"), Action: MainMenuActionStart},
		&MainMenuItem{Label: i18n.T("MENU_STORIES"), Action: MainMenuActionStories, Disabled: !h.hasData},
		&MainMenuItem{Label: i18n.T("MENU_CONTROLS"), Action: MainMenuActionControls},
		&MainMenuItem{Label: i18n.T("MENU_QUIT"), Action: MainMenuActionQuit},
	}
}

// RunMainMenu runs the main menu and returns the selected action.
func RunMainMenu(console renderer.Console, hasData bool) (MainMenuAction, error) {
	handler := NewMainMenuHandler(hasData)
	if err := RunMenu(console, handler.GetMenuItems(), handler); err != nil {
		return MainMenuActionQuit, err
	}
	return handler.GetSelectedAction(), nil
}
