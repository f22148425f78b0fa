package landing

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"riftrewind/pkg/game/api"
	"riftrewind/pkg/game/i18n"
	"riftrewind/pkg/game/renderer"
	"riftrewind/pkg/game/state"
	"riftrewind/pkg/game/storage"
)

// Analyzer submits a player for analysis.
type Analyzer interface {
	Analyze(ctx context.Context, req api.AnalyzeRequest) (*api.RewindResponse, error)
}

// Flow runs the landing prompts until a rewind is stored or input ends.
type Flow struct {
	Console renderer.Console
	Client  Analyzer
	Store   *storage.Store

	// Prefill is used for the first attempt; fields left empty are prompted.
	Prefill Form

	// SkipPrevious disables the "view previous rewind" question. A Prefill
	// naming a player skips it too, and its platform defaults to na1.
	SkipPrevious bool
}

// Run returns the player data the map window should show. An input error
// (EOF included) ends the flow and is returned as is.
func (f *Flow) Run(ctx context.Context) (*state.PlayerData, error) {
	prefill := f.Prefill
	if named := prefill.Normalize(); named.Complete() {
		prefill = named
	} else if !f.SkipPrevious {
		data, err := f.offerPrevious()
		if err != nil || data != nil {
			return data, err
		}
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		form, err := f.ask(prefill)
		prefill = Form{}
		if err != nil {
			return nil, err
		}

		form = form.Normalize()
		if err := form.Validate(); err != nil {
			f.showError(err.Error())
			continue
		}

		data, err := f.Submit(ctx, form)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			f.showError(SubmitErrorMessage(err))
			continue
		}

		f.Console.ShowMessage(f.Console.StyleText(i18n.T("REWIND_READY", data.PlayerInfo.DisplayName()), renderer.StyleSuccess))
		return data, nil
	}
}

// Submit sends the form to the backend and stores the result with its
// session token.
func (f *Flow) Submit(ctx context.Context, form Form) (*state.PlayerData, error) {
	stop := f.Console.StartSpinner(i18n.T("LOADING"))
	resp, err := f.Client.Analyze(ctx, api.AnalyzeRequest{
		GameName:   form.GameName,
		TagLine:    form.TagLine,
		Platform:   form.Platform,
		MatchCount: api.DefaultMatchCount,
	})
	stop()
	if err != nil {
		log.Printf("Analyze %s#%s failed: %v", form.GameName, form.TagLine, err)
		return nil, err
	}

	data, err := resp.PlayerData(form.GameName, form.TagLine, true)
	if err != nil {
		return nil, fmt.Errorf("decode player: %w", err)
	}
	if err := f.Store.SavePlayerData(data); err != nil {
		return nil, fmt.Errorf("save rewind: %w", err)
	}
	return data, nil
}

// SubmitErrorMessage turns a submit failure into the line shown to the user.
func SubmitErrorMessage(err error) string {
	var apiErr *api.APIError
	switch {
	case errors.As(err, &apiErr):
		return i18n.T("ERROR_OOPS", apiErr.Message)
	case errors.Is(err, api.ErrUnreachable):
		return i18n.T("ERROR_CONNECTION", err.Error())
	default:
		return i18n.T("ERROR_OOPS", err.Error())
	}
}

func (f *Flow) offerPrevious() (*state.PlayerData, error) {
	if f.Store == nil {
		return nil, nil
	}
	data, err := f.Store.LoadPlayerData()
	if err != nil {
		if !errors.Is(err, storage.ErrNoData) {
			log.Printf("Ignoring stored rewind: %v", err)
		}
		return nil, nil
	}

	answer, err := f.Console.Prompt(i18n.T("PROMPT_VIEW_PREVIOUS", data.PlayerInfo.DisplayName()))
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return data, nil
	}
	return nil, nil
}

func (f *Flow) ask(prefill Form) (Form, error) {
	form := prefill
	var err error
	if form.GameName == "" {
		if form.GameName, err = f.Console.Prompt(i18n.T("PROMPT_GAME_NAME")); err != nil {
			return form, err
		}
	}
	if form.TagLine == "" {
		if form.TagLine, err = f.Console.Prompt(i18n.T("PROMPT_TAG_LINE")); err != nil {
			return form, err
		}
	}
	if form.Platform == "" {
		if form.Platform, err = f.Console.Prompt(i18n.T("PROMPT_PLATFORM", DefaultPlatform)); err != nil {
			return form, err
		}
	}
	return form, nil
}

func (f *Flow) showError(msg string) {
	f.Console.ShowMessage(f.Console.StyleText(msg, renderer.StyleError))
}
