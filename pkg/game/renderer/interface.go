package renderer

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleTitle
	StyleAccent
	StyleLabel
	StyleValue
	StyleError
	StyleSuccess
	StyleSubtle
)

// Console defines the interface for terminal-facing output: the landing
// flow, the story command and the legacy rewind command all print through it.
type Console interface {
	// Init initializes the console (colors, etc.)
	Init()

	// Clear clears the display
	Clear()

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// FormatText formats a message with the console's markup system
	FormatText(msg string, args ...any) string

	// ShowMessage displays a message to the user
	ShowMessage(msg string)

	// Prompt shows a question and waits for an answer.
	Prompt(question string) (string, error)

	// StartSpinner shows a busy indicator until the returned func is called.
	StartSpinner(label string) (stop func())
}

// Current holds the active console instance
var Current Console

// SetConsole sets the active console
func SetConsole(c Console) {
	Current = c
}

// ShowMessage displays a message using the current console
func ShowMessage(msg string) {
	if Current != nil {
		Current.ShowMessage(msg)
	}
}

// StyleText applies a style to text
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return text
}

// FormatText formats a message with markup
func FormatText(msg string, args ...any) string {
	if Current != nil {
		return Current.FormatText(msg, args...)
	}
	return msg
}
