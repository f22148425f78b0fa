package landing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"riftrewind/pkg/game/api"
	"riftrewind/pkg/game/renderer"
	"riftrewind/pkg/game/state"
	"riftrewind/pkg/game/storage"
)

type scriptedConsole struct {
	answers []string
	asked   []string
	shown   []string
	spins   int
}

func (c *scriptedConsole) Init()  {}
func (c *scriptedConsole) Clear() {}
func (c *scriptedConsole) StyleText(text string, style renderer.TextStyle) string {
	return text
}
func (c *scriptedConsole) FormatText(msg string, args ...any) string {
	return fmt.Sprintf(msg, args...)
}
func (c *scriptedConsole) ShowMessage(msg string) { c.shown = append(c.shown, msg) }
func (c *scriptedConsole) Prompt(q string) (string, error) {
	c.asked = append(c.asked, q)
	if len(c.answers) == 0 {
		return "", io.EOF
	}
	a := c.answers[0]
	c.answers = c.answers[1:]
	return a, nil
}
func (c *scriptedConsole) StartSpinner(label string) func() {
	c.spins++
	return func() {}
}

type fakeAnalyzer struct {
	errs     []error
	requests []api.AnalyzeRequest
}

func (a *fakeAnalyzer) Analyze(ctx context.Context, req api.AnalyzeRequest) (*api.RewindResponse, error) {
	a.requests = append(a.requests, req)
	if len(a.errs) > 0 {
		err := a.errs[0]
		a.errs = a.errs[1:]
		if err != nil {
			return nil, err
		}
	}
	return &api.RewindResponse{
		Player: json.RawMessage(`{"summoner_name": "Hide on bush", "level": 30}`),
		Zones: map[string]state.ZoneEntry{
			"intro": {ZoneName: "Overview", Story: "Welcome back."},
		},
		SessionToken: "tok-1",
	}, nil
}

func newStore(t *testing.T) *storage.Store {
	t.Helper()
	return storage.New(filepath.Join(t.TempDir(), "storage.json"))
}

func TestFormValidate(t *testing.T) {
	tests := []struct {
		name  string
		form  Form
		field string
	}{
		{"valid", Form{GameName: "Faker", TagLine: "KR1", Platform: "kr"}, ""},
		{"spaces and dots", Form{GameName: "Mr. Big_One-2", TagLine: "EUW", Platform: "euw1"}, ""},
		{"name too short", Form{GameName: "ab", TagLine: "NA1", Platform: "na1"}, "gameName"},
		{"name too long", Form{GameName: strings.Repeat("a", 17), TagLine: "NA1", Platform: "na1"}, "gameName"},
		{"name bad char", Form{GameName: "bad!name", TagLine: "NA1", Platform: "na1"}, "gameName"},
		{"tag too short", Form{GameName: "Faker", TagLine: "K1", Platform: "kr"}, "tagLine"},
		{"tag too long", Form{GameName: "Faker", TagLine: "KR1234", Platform: "kr"}, "tagLine"},
		{"unknown platform", Form{GameName: "Faker", TagLine: "KR1", Platform: "mars1"}, "platform"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.form.Validate()
			if tt.field == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			verr, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("Validate() = %v, want *ValidationError", err)
			}
			if verr.Field != tt.field {
				t.Errorf("Field = %q, want %q", verr.Field, tt.field)
			}
		})
	}
}

func TestFormNormalize(t *testing.T) {
	got := Form{GameName: "  Faker ", TagLine: " #KR1", Platform: ""}.Normalize()
	want := Form{GameName: "Faker", TagLine: "KR1", Platform: DefaultPlatform}
	if got != want {
		t.Errorf("Normalize() = %+v, want %+v", got, want)
	}
}

func TestRun_SubmitsAndStores(t *testing.T) {
	console := &scriptedConsole{answers: []string{"Faker", "KR1", "kr"}}
	client := &fakeAnalyzer{}
	store := newStore(t)
	flow := &Flow{Console: console, Client: client, Store: store}

	data, err := flow.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(client.requests) != 1 {
		t.Fatalf("requests = %d, want 1", len(client.requests))
	}
	req := client.requests[0]
	if req.GameName != "Faker" || req.TagLine != "KR1" || req.Platform != "kr" || req.MatchCount != 30 {
		t.Errorf("request = %+v", req)
	}
	if data.PlayerInfo.SummonerName != "Hide on bush" || data.PlayerInfo.GameName != "Faker" {
		t.Errorf("player = %+v", data.PlayerInfo)
	}

	stored, err := store.LoadPlayerData()
	if err != nil {
		t.Fatalf("LoadPlayerData() error = %v", err)
	}
	if stored.SessionToken != "tok-1" {
		t.Errorf("SessionToken = %q, want tok-1", stored.SessionToken)
	}
	if console.spins != 1 {
		t.Errorf("spinner started %d times, want 1", console.spins)
	}
}

func TestRun_RepromptsAfterValidationError(t *testing.T) {
	console := &scriptedConsole{answers: []string{"x", "KR1", "", "Faker", "KR1", ""}}
	client := &fakeAnalyzer{}
	flow := &Flow{Console: console, Client: client, Store: newStore(t)}

	if _, err := flow.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(client.requests) != 1 {
		t.Errorf("requests = %d, want 1 (invalid form must not be sent)", len(client.requests))
	}
	if client.requests[0].Platform != DefaultPlatform {
		t.Errorf("Platform = %q, want default", client.requests[0].Platform)
	}
	if len(console.shown) == 0 || !strings.Contains(console.shown[0], "Game name must be") {
		t.Errorf("shown = %q", console.shown)
	}
}

func TestRun_BackendErrorShowsOops(t *testing.T) {
	console := &scriptedConsole{answers: []string{"Faker", "KR1", "kr", "Faker", "KR1", "kr"}}
	client := &fakeAnalyzer{errs: []error{&api.APIError{Status: 404, Message: "Player not found"}}}
	flow := &Flow{Console: console, Client: client, Store: newStore(t)}

	if _, err := flow.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(client.requests) != 2 {
		t.Errorf("requests = %d, want 2", len(client.requests))
	}
	if console.shown[0] != "💥 Oops! Player not found. Try again!" {
		t.Errorf("shown[0] = %q", console.shown[0])
	}
}

func TestRun_PrefillSkipsPrompts(t *testing.T) {
	console := &scriptedConsole{}
	client := &fakeAnalyzer{}
	flow := &Flow{
		Console:      console,
		Client:       client,
		Store:        newStore(t),
		Prefill:      Form{GameName: "Faker", TagLine: "KR1", Platform: "kr"},
		SkipPrevious: true,
	}

	if _, err := flow.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(console.asked) != 0 {
		t.Errorf("asked = %q, want no prompts", console.asked)
	}
}

func TestRun_EOFEndsFlow(t *testing.T) {
	flow := &Flow{Console: &scriptedConsole{}, Client: &fakeAnalyzer{}, Store: newStore(t)}
	if _, err := flow.Run(context.Background()); err != io.EOF {
		t.Errorf("Run() error = %v, want io.EOF", err)
	}
}

func TestRun_OffersPreviousRewind(t *testing.T) {
	store := newStore(t)
	prev := &state.PlayerData{
		PlayerInfo: state.PlayerInfo{GameName: "Old", TagLine: "EUW"},
		Zones:      map[string]state.ZoneEntry{},
	}
	if err := store.SavePlayerData(prev); err != nil {
		t.Fatal(err)
	}

	console := &scriptedConsole{answers: []string{"y"}}
	client := &fakeAnalyzer{}
	flow := &Flow{Console: console, Client: client, Store: store}

	data, err := flow.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if data.PlayerInfo.GameName != "Old" {
		t.Errorf("GameName = %q, want Old", data.PlayerInfo.GameName)
	}
	if len(client.requests) != 0 {
		t.Errorf("requests = %d, want 0", len(client.requests))
	}
	if !strings.Contains(console.asked[0], "Old#EUW") {
		t.Errorf("asked[0] = %q", console.asked[0])
	}
}

func TestRun_CompletePrefillSkipsPreviousRewind(t *testing.T) {
	store := newStore(t)
	prev := &state.PlayerData{
		PlayerInfo: state.PlayerInfo{GameName: "Old", TagLine: "EUW"},
		Zones:      map[string]state.ZoneEntry{},
	}
	if err := store.SavePlayerData(prev); err != nil {
		t.Fatal(err)
	}

	console := &scriptedConsole{}
	client := &fakeAnalyzer{}
	flow := &Flow{
		Console: console,
		Client:  client,
		Store:   store,
		Prefill: Form{GameName: "Faker", TagLine: "KR1"},
	}
	data, err := flow.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(console.asked) != 0 {
		t.Errorf("asked = %q, want no prompts", console.asked)
	}
	if len(client.requests) != 1 || client.requests[0].Platform != DefaultPlatform {
		t.Errorf("requests = %+v, want one for %s", client.requests, DefaultPlatform)
	}
	if data.PlayerInfo.GameName != "Faker" {
		t.Errorf("GameName = %q, want Faker", data.PlayerInfo.GameName)
	}
}

func TestFormComplete(t *testing.T) {
	if (Form{GameName: "Faker"}).Normalize().Complete() {
		t.Error("form without a tag line reported complete")
	}
	if !(Form{GameName: "Faker", TagLine: "#KR1"}).Normalize().Complete() {
		t.Error("normalized form with name and tag not complete")
	}
}

func TestSubmitErrorMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&api.APIError{Status: 400, Message: "Invalid tag line"}, "💥 Oops! Invalid tag line. Try again!"},
		{fmt.Errorf("%w: dial tcp: refused", api.ErrUnreachable), "Connection error: backend unreachable: dial tcp: refused"},
	}
	for _, tt := range tests {
		if got := SubmitErrorMessage(tt.err); got != tt.want {
			t.Errorf("SubmitErrorMessage(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

type fakeRefresher struct {
	riotID string
	err    error
}

func (r *fakeRefresher) Refresh(ctx context.Context, riotID string) (*api.RewindResponse, error) {
	r.riotID = riotID
	if r.err != nil {
		return nil, r.err
	}
	return &api.RewindResponse{
		Player:       json.RawMessage(`{"level": 99}`),
		Zones:        map[string]state.ZoneEntry{"river": {ZoneName: "River Control"}},
		SessionToken: "ignored",
	}, nil
}

func TestRefresh_StoresWithoutSession(t *testing.T) {
	store := newStore(t)
	client := &fakeRefresher{}
	info := state.PlayerInfo{GameName: "Foo", TagLine: "NA1"}

	data, err := Refresh(context.Background(), client, store, info)
	if err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	if client.riotID != "Foo-NA1" {
		t.Errorf("riotID = %q, want Foo-NA1", client.riotID)
	}
	if data.PlayerInfo.Level != 99 || data.PlayerInfo.GameName != "Foo" {
		t.Errorf("player = %+v", data.PlayerInfo)
	}

	stored, err := store.LoadPlayerData()
	if err != nil {
		t.Fatalf("LoadPlayerData() error = %v", err)
	}
	if stored.SessionToken != "" {
		t.Errorf("SessionToken = %q, want empty", stored.SessionToken)
	}
	if _, ok := stored.Zones["river"]; !ok {
		t.Errorf("zones = %v", stored.Zones)
	}
}

func TestRefresh_ErrorKeepsStoredData(t *testing.T) {
	store := newStore(t)
	prev := &state.PlayerData{PlayerInfo: state.PlayerInfo{GameName: "Foo", TagLine: "NA1"}, Zones: map[string]state.ZoneEntry{}}
	if err := store.SavePlayerData(prev); err != nil {
		t.Fatal(err)
	}

	_, err := Refresh(context.Background(), &fakeRefresher{err: &api.APIError{Status: 404, Message: "Player not found"}}, store, prev.PlayerInfo)
	if err == nil {
		t.Fatal("Refresh() error = nil")
	}
	if !store.HasPlayerData() {
		t.Error("stored data was removed by a failed refresh")
	}
}
