// Package landing is the terminal flow that submits a player to the backend
// and stores the resulting rewind for the map window.
package landing

import (
	"regexp"
	"slices"
	"strings"

	"riftrewind/pkg/game/i18n"
)

// DefaultPlatform is used when the platform prompt is left empty.
const DefaultPlatform = "na1"

// Platforms lists the regions the backend accepts.
var Platforms = []string{
	"euw1", "eune1", "tr1", "ru", "me1",
	"na1", "br1", "la1", "la2",
	"kr", "jp1", "oc1", "sg2", "tw2", "vn2",
}

var (
	gameNamePattern = regexp.MustCompile(`^[a-zA-Z0-9\s\-_.]{3,16}$`)
	tagLinePattern  = regexp.MustCompile(`^[a-zA-Z0-9]{3,5}$`)
)

// Form holds what the user typed.
type Form struct {
	GameName string
	TagLine  string
	Platform string
}

// ValidationError names the field that failed and a message ready to show.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Normalize trims the fields, drops a leading '#' from the tag line and
// fills in the default platform.
func (f Form) Normalize() Form {
	f.GameName = strings.TrimSpace(f.GameName)
	f.TagLine = strings.TrimPrefix(strings.TrimSpace(f.TagLine), "#")
	f.Platform = strings.ToLower(strings.TrimSpace(f.Platform))
	if f.Platform == "" {
		f.Platform = DefaultPlatform
	}
	return f
}

// Validate checks the form before it is submitted.
func (f Form) Validate() error {
	if !gameNamePattern.MatchString(f.GameName) {
		return &ValidationError{Field: "gameName", Message: i18n.T("INVALID_GAME_NAME")}
	}
	if !tagLinePattern.MatchString(f.TagLine) {
		return &ValidationError{Field: "tagLine", Message: i18n.T("INVALID_TAG_LINE")}
	}
	if !slices.Contains(Platforms, f.Platform) {
		return &ValidationError{Field: "platform", Message: i18n.T("INVALID_PLATFORM", f.Platform)}
	}
	return nil
}

// Complete reports whether every field has a value.
func (f Form) Complete() bool {
	return f.GameName != "" && f.TagLine != "" && f.Platform != ""
}
