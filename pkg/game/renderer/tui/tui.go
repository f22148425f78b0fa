package tui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gookit/color"

	"riftrewind/pkg/engine/input"
	"riftrewind/pkg/engine/terminal"
	"riftrewind/pkg/game/i18n"
	"riftrewind/pkg/game/renderer"
	"riftrewind/pkg/game/state"
	"riftrewind/pkg/game/story"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 100 * time.Millisecond

// TUIRenderer is the terminal console implementation
type TUIRenderer struct {
	Out io.Writer
	In  *input.LineReader

	// Animate enables the spinner; when false the label is printed once.
	Animate bool

	colorTitle   color.Style
	colorAccent  color.Style
	colorLabel   color.Style
	colorValue   color.Style
	colorError   color.Style
	colorSuccess color.Style
	colorSubtle  color.Style

	regexpStringFunctions *regexp.Regexp
}

// New creates a console bound to stdin and stdout.
func New() *TUIRenderer {
	return &TUIRenderer{
		Out:     os.Stdout,
		In:      input.Stdin(),
		Animate: terminal.IsInteractive(),
	}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorTitle = color.Style{color.FgMagenta, color.OpBold}
	t.colorAccent = color.Style{color.FgCyan, color.OpBold}
	t.colorLabel = color.Style{color.FgGray}
	t.colorValue = color.Style{color.FgMagenta}
	t.colorError = color.Style{color.FgRed, color.OpBold}
	t.colorSuccess = color.Style{color.FgGreen, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}

	t.regexpStringFunctions = regexp.MustCompile(`([A-Z_]+)\{([^{}]*)\}`)
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	if t.Out != os.Stdout {
		return
	}
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleTitle:
		return t.colorTitle.Sprint(text)
	case renderer.StyleAccent:
		return t.colorAccent.Sprint(text)
	case renderer.StyleLabel:
		return t.colorLabel.Sprint(text)
	case renderer.StyleValue:
		return t.colorValue.Sprint(text)
	case renderer.StyleError:
		return t.colorError.Sprint(text)
	case renderer.StyleSuccess:
		return t.colorSuccess.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system:
// GT{KEY} translates, TITLE{..}, ACCENT{..}, VALUE{..}, ERROR{..} and
// SUBTLE{..} apply styles.
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	ret := msg
	if len(args) > 0 {
		ret = fmt.Sprintf(msg, args...)
	}

	return t.regexpStringFunctions.ReplaceAllStringFunc(ret, func(m string) string {
		match := t.regexpStringFunctions.FindStringSubmatch(m)
		function, operand := match[1], match[2]

		switch function {
		case "GT":
			return i18n.T(operand)
		case "TITLE":
			return t.colorTitle.Sprint(operand)
		case "ACCENT":
			return t.colorAccent.Sprint(operand)
		case "VALUE":
			return t.colorValue.Sprint(operand)
		case "ERROR":
			return t.colorError.Sprint(operand)
		case "SUBTLE":
			return t.colorSubtle.Sprint(operand)
		default:
			return m
		}
	})
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.Out, msg)
}

// Prompt prints question and reads one line.
func (t *TUIRenderer) Prompt(question string) (string, error) {
	fmt.Fprint(t.Out, t.colorAccent.Sprint(question))
	line, err := t.In.ReadLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// StartSpinner animates label until stop is called.
func (t *TUIRenderer) StartSpinner(label string) func() {
	if !t.Animate {
		fmt.Fprintln(t.Out, t.colorSubtle.Sprint(label+"..."))
		return func() {}
	}

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(spinnerInterval)
		defer ticker.Stop()
		for i := 0; ; i++ {
			frame := spinnerFrames[i%len(spinnerFrames)]
			fmt.Fprintf(t.Out, "\r%s %s", t.colorAccent.Sprint(frame), t.colorSubtle.Sprint(label))
			select {
			case <-done:
				fmt.Fprintf(t.Out, "\r%s\r", strings.Repeat(" ", len([]rune(label))+2))
				return
			case <-ticker.C:
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
			wg.Wait()
		})
	}
}

// PrintBanner prints the app title and tagline.
func (t *TUIRenderer) PrintBanner() {
	width := terminal.GetWidth()
	title := i18n.T("APP_TITLE")
	fmt.Fprintln(t.Out)
	fmt.Fprintln(t.Out, t.centered(t.colorTitle.Sprint(title), len([]rune(title)), width))
	tagline := i18n.T("LANDING_TAGLINE")
	fmt.Fprintln(t.Out, t.centered(t.colorSubtle.Sprint(tagline), len([]rune(tagline)), width))
	fmt.Fprintln(t.Out)
}

func (t *TUIRenderer) centered(styled string, visible, width int) string {
	pad := (width - visible) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + styled
}

// PrintError prints an error line.
func (t *TUIRenderer) PrintError(msg string) {
	fmt.Fprintln(t.Out, t.colorError.Sprint(msg))
}

// PrintSuccess prints a success line.
func (t *TUIRenderer) PrintSuccess(msg string) {
	fmt.Fprintln(t.Out, t.colorSuccess.Sprint(msg))
}

// PrintStory prints a zone's story wrapped to the terminal width, followed
// by its stats when there are any.
func (t *TUIRenderer) PrintStory(c story.Content) {
	width := terminal.GetWidth()
	if width > 100 {
		width = 100
	}

	fmt.Fprintln(t.Out, t.colorTitle.Sprint(c.Title))
	fmt.Fprintln(t.Out, t.colorSubtle.Sprint(strings.Repeat("─", len([]rune(c.Title)))))
	for _, line := range terminal.Wrap(c.Body, width) {
		fmt.Fprintln(t.Out, line)
	}

	if c.HasStats() {
		fmt.Fprintln(t.Out)
		fmt.Fprintln(t.Out, t.colorAccent.Sprint(i18n.T("STATS_HEADING")))
		for _, st := range c.Stats {
			fmt.Fprintf(t.Out, "  %s %s\n", t.colorLabel.Sprint(st.Label+":"), t.colorValue.Sprint(st.Value))
		}
	}
	fmt.Fprintln(t.Out)
}

// PrintZoneList prints the stored zones sorted by id.
func (t *TUIRenderer) PrintZoneList(data *state.PlayerData) {
	fmt.Fprintln(t.Out, t.colorAccent.Sprint(data.PlayerInfo.HeaderText()))
	fmt.Fprintln(t.Out, t.colorSubtle.Sprint(data.Metadata.Summary(time.Now())))
	fmt.Fprintln(t.Out)

	if len(data.Zones) == 0 {
		fmt.Fprintln(t.Out, i18n.T("STORY_NO_ZONES"))
		return
	}

	ids := make([]string, 0, len(data.Zones))
	for id := range data.Zones {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Fprintln(t.Out, i18n.T("STORY_LIST_HEADING"))
	for _, id := range ids {
		fmt.Fprintf(t.Out, "- %s %s\n", t.colorValue.Sprint(id), t.colorLabel.Sprint("("+data.Zones[id].ZoneName+")"))
	}
}
