package ranking

import (
	"reflect"
	"testing"

	"github.com/watchthefall/wtf-worldcup/internal/models"
)

func ptr(f float64) *float64 { return &f }

func TestDecode(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantRegions []string
		wantUpdated string
	}{
		{
			name:        "Array no topo",
			input:       `[{"region":"ScotlandWTF"},{"region":"WalesWTF"}]`,
			wantRegions: []string{"ScotlandWTF", "WalesWTF"},
		},
		{
			name:        "Objeto com regions e last_updated",
			input:       `{"last_updated":"2025-10-01","regions":[{"region":"EnglandWTF"}]}`,
			wantRegions: []string{"EnglandWTF"},
			wantUpdated: "2025-10-01",
		},
		{
			name:        "Objeto sem regions",
			input:       `{"ScotlandWTF":{"region":"ScotlandWTF"}}`,
			wantRegions: []string{},
		},
		{
			name:        "regions não é array",
			input:       `{"regions":{"region":"ScotlandWTF"}}`,
			wantRegions: []string{},
		},
		{
			name:        "JSON inválido",
			input:       `{"regions":[`,
			wantRegions: []string{},
		},
		{
			name:        "Documento vazio",
			input:       ``,
			wantRegions: []string{},
		},
		{
			name:        "Registros inválidos são ignorados",
			input:       `[1,"x",null,{"region":""},{"followers":{}},{"region":"IrelandWTF"}]`,
			wantRegions: []string{"IrelandWTF"},
		},
		{
			name:        "Region duplicada mantém a primeira",
			input:       `[{"region":"SpainWTF","points":10},{"region":"SpainWTF","points":99}]`,
			wantRegions: []string{"SpainWTF"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := Decode([]byte(tt.input))
			regions := make([]string, 0, len(ds.Records))
			for _, r := range ds.Records {
				regions = append(regions, r.Region)
			}
			if !reflect.DeepEqual(regions, tt.wantRegions) {
				t.Errorf("regions = %v, want %v", regions, tt.wantRegions)
			}
			if ds.LastUpdated != tt.wantUpdated {
				t.Errorf("LastUpdated = %q, want %q", ds.LastUpdated, tt.wantUpdated)
			}
		})
	}

	t.Run("Duplicada preserva points da primeira", func(t *testing.T) {
		ds := Decode([]byte(`[{"region":"SpainWTF","points":10},{"region":"SpainWTF","points":99}]`))
		if got := ComputeMetricValue(ds.Records[0], models.MetricPoints); got != 10 {
			t.Errorf("points = %v, want 10", got)
		}
	})
}

func TestCoercion(t *testing.T) {
	input := `[{
		"region": "FranceWTF",
		"followers": {"tiktok": -50, "instagram": "1200", "youtube": "abc", "x": true},
		"previous": {"tiktok": null, "instagram": "-7"}
	}]`
	ds := Decode([]byte(input))
	if len(ds.Records) != 1 {
		t.Fatalf("len = %d, want 1", len(ds.Records))
	}
	r := ds.Records[0]

	want := models.Followers{TikTok: 0, Instagram: 1200, YouTube: 0, X: 0}
	if r.Followers != want {
		t.Errorf("Followers = %+v, want %+v", r.Followers, want)
	}
	if r.Previous != (models.Followers{}) {
		t.Errorf("Previous = %+v, want zero", r.Previous)
	}
	if r.HasPoints() {
		t.Error("points ausente não deveria ser marcado como presente")
	}
}

func TestCoercionInvalidJSONNumber(t *testing.T) {
	// 1e400 estoura float64 e o json.Unmarshal falha: dataset vazio
	ds := Decode([]byte(`[{"region":"A","followers":{"tiktok":1e400}}]`))
	if len(ds.Records) != 0 {
		t.Errorf("len = %d, want 0", len(ds.Records))
	}
}

func TestPointsPresence(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantPoints float64
		wantStored bool
	}{
		{"Points explícito", `[{"region":"A","points":50,"followers":{"tiktok":1000}}]`, 50, true},
		{"Points zero explícito", `[{"region":"A","points":0,"followers":{"tiktok":1000}}]`, 0, true},
		{"Points negativo vira zero", `[{"region":"A","points":-3,"followers":{"tiktok":1000}}]`, 0, true},
		{"Points ausente", `[{"region":"A","followers":{"tiktok":1000}}]`, 400, false},
		{"Points string usa fallback", `[{"region":"A","points":"50","followers":{"tiktok":1000}}]`, 400, false},
		{"Points null usa fallback", `[{"region":"A","points":null,"followers":{"tiktok":10}}]`, 4, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Decode([]byte(tt.input)).Records[0]
			if got := ComputeMetricValue(r, models.MetricPoints); got != tt.wantPoints {
				t.Errorf("points = %v, want %v", got, tt.wantPoints)
			}
			if r.HasPoints() != tt.wantStored {
				t.Errorf("HasPoints = %v, want %v", r.HasPoints(), tt.wantStored)
			}
		})
	}
}

func TestLoadRecordsShapes(t *testing.T) {
	t.Run("Slice de maps", func(t *testing.T) {
		records := LoadRecords([]map[string]any{{"region": "A"}, {"region": "B"}})
		if len(records) != 2 {
			t.Errorf("len = %d, want 2", len(records))
		}
	})

	t.Run("Tipos desconhecidos", func(t *testing.T) {
		for _, raw := range []any{nil, 42, "regions", true} {
			if records := LoadRecords(raw); len(records) != 0 {
				t.Errorf("LoadRecords(%v) len = %d, want 0", raw, len(records))
			}
		}
	})
}

func TestComputeMetricValue(t *testing.T) {
	r := models.RegionRecord{
		Region:    "ScotlandWTF",
		Followers: models.Followers{TikTok: 1000, Instagram: 200, YouTube: 30, X: 4},
	}

	tests := []struct {
		metric models.Metric
		want   float64
	}{
		{models.MetricPoints, 400},
		{models.MetricFollowers, 1234},
		{models.MetricTikTok, 1000},
		{models.MetricInstagram, 200},
		{models.MetricYouTube, 30},
		{models.MetricX, 4},
		{models.Metric("desconhecida"), 400},
		{models.Metric(""), 400},
	}

	for _, tt := range tests {
		t.Run(string(tt.metric), func(t *testing.T) {
			if got := ComputeMetricValue(r, tt.metric); got != tt.want {
				t.Errorf("ComputeMetricValue(%q) = %v, want %v", tt.metric, got, tt.want)
			}
		})
	}

	t.Run("Points explícito é usado sem alteração", func(t *testing.T) {
		withPoints := r
		withPoints.Points = ptr(12.5)
		if got := ComputeMetricValue(withPoints, models.MetricPoints); got != 12.5 {
			t.Errorf("points = %v, want 12.5", got)
		}
	})
}

func TestComputeDelta(t *testing.T) {
	base := models.RegionRecord{
		Region:    "EnglandWTF",
		Followers: models.Followers{TikTok: 1500, Instagram: 300, YouTube: 50, X: 10},
		Previous:  models.Followers{TikTok: 1000, Instagram: 400, YouTube: 50, X: 0},
	}

	tests := []struct {
		name   string
		record models.RegionRecord
		metric models.Metric
		want   float64
	}{
		{"Points derivado", base, models.MetricPoints, 600 - 400},
		{"Points explícito contra previous re-derivado", func() models.RegionRecord {
			r := base
			r.Points = ptr(1000)
			return r
		}(), models.MetricPoints, 1000 - 400},
		{"Followers", base, models.MetricFollowers, 1860 - 1450},
		{"TikTok", base, models.MetricTikTok, 500},
		{"Instagram negativo", base, models.MetricInstagram, -100},
		{"YouTube estável", base, models.MetricYouTube, 0},
		{"X", base, models.MetricX, 10},
		{"Métrica desconhecida usa points", base, models.Metric("likes"), 200},
		{"Sem previous retorna o valor atual", models.RegionRecord{
			Region:    "WalesWTF",
			Followers: models.Followers{TikTok: 250, Instagram: 5},
		}, models.MetricFollowers, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeDelta(tt.record, tt.metric); got != tt.want {
				t.Errorf("ComputeDelta = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRank(t *testing.T) {
	t.Run("Cenário points derivado vs explícito", func(t *testing.T) {
		records := Decode([]byte(`[
			{"region":"A","followers":{"tiktok":1000,"instagram":0,"youtube":0,"x":0}},
			{"region":"B","points":50,"followers":{"tiktok":0,"instagram":0,"youtube":0,"x":0}}
		]`)).Records

		got := Rank(records, models.MetricPoints)
		if len(got) != 2 {
			t.Fatalf("len = %d, want 2", len(got))
		}
		if got[0].Record.Region != "A" || got[0].Rank != 1 || got[0].Value != 400 {
			t.Errorf("primeiro = %s/%d/%v, want A/1/400", got[0].Record.Region, got[0].Rank, got[0].Value)
		}
		if got[1].Record.Region != "B" || got[1].Rank != 2 || got[1].Value != 50 {
			t.Errorf("segundo = %s/%d/%v, want B/2/50", got[1].Record.Region, got[1].Rank, got[1].Value)
		}
	})

	t.Run("Empates preservam ordem de entrada", func(t *testing.T) {
		records := []models.RegionRecord{
			{Region: "C", Points: ptr(10)},
			{Region: "A", Points: ptr(20)},
			{Region: "B", Points: ptr(10)},
			{Region: "D", Points: ptr(10)},
		}
		got := regionsOf(Rank(records, models.MetricPoints))
		want := []string{"A", "C", "B", "D"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("ordem = %v, want %v", got, want)
		}
	})

	t.Run("Ranks contíguos 1..N", func(t *testing.T) {
		records := []models.RegionRecord{
			{Region: "A"}, {Region: "B"}, {Region: "C"}, {Region: "D"}, {Region: "E"},
		}
		for _, metric := range models.Metrics {
			entries := Rank(records, metric)
			if len(entries) != len(records) {
				t.Fatalf("%s: len = %d, want %d", metric, len(entries), len(records))
			}
			for i, e := range entries {
				if e.Rank != i+1 {
					t.Errorf("%s: entries[%d].Rank = %d, want %d", metric, i, e.Rank, i+1)
				}
			}
		}
	})

	t.Run("Idempotente e sem mutar entrada", func(t *testing.T) {
		records := []models.RegionRecord{
			{Region: "A", Followers: models.Followers{Instagram: 5}},
			{Region: "B", Followers: models.Followers{Instagram: 50}},
			{Region: "C", Followers: models.Followers{Instagram: 500}},
		}
		first := Rank(records, models.MetricInstagram)
		second := Rank(records, models.MetricInstagram)
		if !reflect.DeepEqual(first, second) {
			t.Error("Rank não é idempotente")
		}
		if records[0].Region != "A" || records[2].Region != "C" {
			t.Error("Rank modificou a fatia de entrada")
		}
	})

	t.Run("Troca de métrica re-ordena", func(t *testing.T) {
		records := []models.RegionRecord{
			{Region: "A", Followers: models.Followers{TikTok: 100, YouTube: 1}},
			{Region: "B", Followers: models.Followers{TikTok: 1, YouTube: 100}},
		}
		if got := regionsOf(Rank(records, models.MetricTikTok)); got[0] != "A" {
			t.Errorf("tiktok: %v", got)
		}
		if got := regionsOf(Rank(records, models.MetricYouTube)); got[0] != "B" {
			t.Errorf("youtube: %v", got)
		}
	})

	t.Run("Entrada vazia", func(t *testing.T) {
		if got := Rank(nil, models.MetricPoints); len(got) != 0 {
			t.Errorf("len = %d, want 0", len(got))
		}
	})
}

func TestTop(t *testing.T) {
	entries := Rank([]models.RegionRecord{{Region: "A"}, {Region: "B"}, {Region: "C"}}, models.MetricPoints)
	if got := len(Top(entries, 2)); got != 2 {
		t.Errorf("Top(2) len = %d", got)
	}
	if got := len(Top(entries, 0)); got != 3 {
		t.Errorf("Top(0) len = %d", got)
	}
	if got := len(Top(entries, 10)); got != 3 {
		t.Errorf("Top(10) len = %d", got)
	}
}

func TestFollowersAllZero(t *testing.T) {
	if !FollowersAllZero(nil) {
		t.Error("dataset vazio deveria ser all-zero")
	}
	zero := []models.RegionRecord{{Region: "A", Points: ptr(10)}, {Region: "B"}}
	if !FollowersAllZero(zero) {
		t.Error("esperado all-zero")
	}
	some := append(zero, models.RegionRecord{Region: "C", Followers: models.Followers{X: 1}})
	if FollowersAllZero(some) {
		t.Error("não esperado all-zero")
	}
}

func regionsOf(entries []models.RankedEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Record.Region
	}
	return out
}
