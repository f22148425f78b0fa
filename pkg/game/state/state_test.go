package state

import (
	"encoding/json"
	"testing"
	"time"
)

func TestStats_PreservesOrder(t *testing.T) {
	in := `{"zeta": 1, "alpha": "two", "mid_value": 3.5}`
	var s Stats
	if err := json.Unmarshal([]byte(in), &s); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	wantKeys := []string{"zeta", "alpha", "mid_value"}
	if len(s) != len(wantKeys) {
		t.Fatalf("len = %d, want %d", len(s), len(wantKeys))
	}
	for i, k := range wantKeys {
		if s[i].Key != k {
			t.Errorf("key %d = %q, want %q", i, s[i].Key, k)
		}
	}
	if v, _ := s.Get("zeta"); v != 1.0 {
		t.Errorf("zeta = %#v, want float64 1", v)
	}
	if v, _ := s.Get("alpha"); v != "two" {
		t.Errorf("alpha = %#v, want \"two\"", v)
	}

	out, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	if string(out) != `{"zeta":1,"alpha":"two","mid_value":3.5}` {
		t.Errorf("Marshal = %s", out)
	}
}

func TestStats_DuplicateKeyKeepsFirstPosition(t *testing.T) {
	var s Stats
	if err := json.Unmarshal([]byte(`{"a":1,"b":2,"a":3}`), &s); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if len(s) != 2 || s[0].Key != "a" || s[0].Value != 3.0 {
		t.Errorf("stats = %+v", s)
	}
}

func TestStats_RejectsNonObject(t *testing.T) {
	var s Stats
	if err := json.Unmarshal([]byte(`[1,2]`), &s); err == nil {
		t.Error("Unmarshal([1,2]) error = nil, want error")
	}
}

func TestZoneMap_DropsNullEntries(t *testing.T) {
	var z ZoneMap
	if err := json.Unmarshal([]byte(`{"baron_pit": null, "river": {"zone_name": "River", "story": "Wet."}}`), &z); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if _, ok := z["baron_pit"]; ok {
		t.Error("null entry decoded as present")
	}
	if z["river"].ZoneName != "River" {
		t.Errorf("river = %+v", z["river"])
	}

	var none ZoneMap
	if err := json.Unmarshal([]byte(`null`), &none); err != nil || none != nil {
		t.Errorf("Unmarshal(null) = %v, %v; want nil map", none, err)
	}
}

func TestMergePlayerInfo_BackendWins(t *testing.T) {
	player := json.RawMessage(`{"gameName":"Faker","summoner_name":"Hide on bush","level":512,"rank":{"tier":"CHALLENGER","rank":"I"}}`)
	info, err := MergePlayerInfo("faker", "KR1", player)
	if err != nil {
		t.Fatalf("MergePlayerInfo error = %v", err)
	}
	if info.GameName != "Faker" || info.TagLine != "KR1" || info.SummonerName != "Hide on bush" || info.Level != 512 {
		t.Errorf("info = %+v", info)
	}
	if got := info.HeaderText(); got != "Hide on bush Level 512 CHALLENGER I" {
		t.Errorf("HeaderText() = %q", got)
	}
}

func TestMergePlayerInfo_NoPlayer(t *testing.T) {
	info, err := MergePlayerInfo("Foo", "NA1", nil)
	if err != nil || info.GameName != "Foo" || info.TagLine != "NA1" {
		t.Errorf("MergePlayerInfo(nil) = %+v, %v", info, err)
	}
	if got := info.HeaderText(); got != "Foo#NA1" {
		t.Errorf("HeaderText() = %q, want %q", got, "Foo#NA1")
	}
}

func TestRefreshID(t *testing.T) {
	tests := []struct {
		info PlayerInfo
		want string
	}{
		{PlayerInfo{GameName: "Foo", TagLine: "NA1"}, "Foo-NA1"},
		{PlayerInfo{GameName: "x", TagLine: "y", RiotID: "Foo#NA1"}, "Foo-NA1"},
		{PlayerInfo{RiotID: "A#B#C"}, "A-B#C"},
	}
	for _, tt := range tests {
		if got := tt.info.RefreshID(); got != tt.want {
			t.Errorf("RefreshID(%+v) = %q, want %q", tt.info, got, tt.want)
		}
	}
}

func TestTimeAgo(t *testing.T) {
	tests := []struct {
		elapsed time.Duration
		want    string
	}{
		{10 * time.Second, "Just now"},
		{90 * time.Second, "1 minute ago"},
		{3 * time.Hour, "3 hours ago"},
		{24 * time.Hour, "1 day ago"},
		{15 * 24 * time.Hour, "2 weeks ago"},
		{400 * 24 * time.Hour, "1 year ago"},
	}
	for _, tt := range tests {
		if got := TimeAgo(tt.elapsed); got != tt.want {
			t.Errorf("TimeAgo(%v) = %q, want %q", tt.elapsed, got, tt.want)
		}
	}
}

func TestMetadataSummary(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	m := Metadata{MatchesAnalyzed: 30, Cached: true, GeneratedAt: float64(now.Add(-2 * time.Hour).Unix())}
	if got := m.Summary(now); got != "30 matches · Cached · 2 hours ago" {
		t.Errorf("Summary() = %q", got)
	}
	if got := (Metadata{}).Summary(now); got != "30 matches · Fresh" {
		t.Errorf("empty Summary() = %q", got)
	}
}

func TestValidate(t *testing.T) {
	d := PlayerData{PlayerInfo: PlayerInfo{GameName: "Foo", TagLine: "NA1"}}
	if err := d.Validate(); err == nil {
		t.Error("Validate() without zones = nil, want error")
	}
	d.Zones = map[string]ZoneEntry{}
	if err := d.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}
