package mockbackend

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// Platforms lists the regions accepted by /api/analyze.
var Platforms = []string{
	"euw1", "eune1", "tr1", "ru", "me1",
	"na1", "br1", "la1", "la2",
	"kr", "jp1", "oc1", "sg2", "tw2", "vn2",
}

const (
	minMatchCount = 5
	maxMatchCount = 50
)

var (
	gameNamePattern = regexp.MustCompile(`^[a-zA-Z0-9\s\-_.]{3,16}$`)
	tagLinePattern  = regexp.MustCompile(`^[a-zA-Z0-9]{3,5}$`)
	platformPattern = regexp.MustCompile(`^[a-z0-9]{2,5}$`)
)

// analyzeRequest is the body of POST /api/analyze.
type analyzeRequest struct {
	GameName   string `json:"gameName"`
	TagLine    string `json:"tagLine"`
	Platform   string `json:"platform"`
	MatchCount *int   `json:"matchCount"`
}

func validateGameName(s string) error {
	switch {
	case s == "":
		return errors.New("gameName must be a string")
	case len(s) < 3 || len(s) > 16:
		return errors.New("gameName must be 3-16 characters")
	case !gameNamePattern.MatchString(s):
		return errors.New("gameName contains invalid characters")
	}
	return nil
}

func validateTagLine(s string) error {
	switch {
	case s == "":
		return errors.New("tagLine must be a string")
	case len(s) < 3 || len(s) > 5:
		return errors.New("tagLine must be 3-5 characters")
	case !tagLinePattern.MatchString(s):
		return errors.New("tagLine must be alphanumeric only")
	}
	return nil
}

func validatePlatform(s string) error {
	switch {
	case s == "":
		return errors.New("platform must be a string")
	case !platformPattern.MatchString(s):
		return errors.New("platform contains invalid characters")
	case !slices.Contains(Platforms, s):
		return fmt.Errorf("Invalid platform. Must be one of: %s", strings.Join(Platforms, ", "))
	}
	return nil
}

// validate checks the request and returns the match count to use.
func (r analyzeRequest) validate() (int, error) {
	if err := validateGameName(r.GameName); err != nil {
		return 0, err
	}
	if err := validateTagLine(r.TagLine); err != nil {
		return 0, err
	}
	if err := validatePlatform(r.Platform); err != nil {
		return 0, err
	}
	count := 20
	if r.MatchCount != nil {
		count = *r.MatchCount
		if count < minMatchCount || count > maxMatchCount {
			return 0, fmt.Errorf("matchCount must be between %d and %d", minMatchCount, maxMatchCount)
		}
	}
	return count, nil
}
