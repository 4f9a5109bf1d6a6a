package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/watchthefall/wtf-worldcup/internal/models"
)

func writeFeed(t *testing.T, dir, name string, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal %s: %v", name, err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func items(prefix string, n int) []map[string]string {
	out := make([]map[string]string, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, map[string]string{"url": fmt.Sprintf("https://%s/video/%d", prefix, i)})
	}
	return out
}

func newConsoleFixture(t *testing.T, dataset string) *ConsoleService {
	t.Helper()
	dir := t.TempDir()

	writeFeed(t, dir, FeedContent, map[string]any{
		"tiktok": map[string]any{"regional": map[string]any{
			"scotland": items("www.tiktok.com/@scotlandwtf", 20),
			"england":  items("www.tiktok.com/@englandwtf", 2),
		}},
		"instagram": map[string]any{"regional": map[string]any{
			"scotland": []any{"not-an-object", map[string]string{"url": ""}, map[string]string{"url": "https://instagram.com/p/1"}},
		}},
	})
	writeFeed(t, dir, FeedYouTube, map[string]any{
		"scotland": []map[string]string{{"url": "https://youtube.com/embed/a", "title": "Highlights"}},
	})
	// x.json e threads.json ausentes: listas vazias

	src := &stubSource{}
	src.set(dataset, nil)
	lb := NewLeaderboardService(src, nil)
	if err := lb.Reload(context.Background()); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	svc, err := NewConsoleService(lb, DirectoryFeeds(dir, 0, nil), nil)
	if err != nil {
		t.Fatalf("NewConsoleService: %v", err)
	}
	return svc
}

func TestConsoleTierS(t *testing.T) {
	svc := newConsoleFixture(t, sampleDataset)

	resp := svc.Console(context.Background(), "/regional/pages/scotland.html")
	if resp.Region != "scotland" || resp.Empty {
		t.Fatalf("resposta inesperada: %+v", resp)
	}
	if !resp.Tier.Matched || resp.Tier.Rank != 1 || resp.Tier.Policy.Tier != models.TierS {
		t.Fatalf("tier = %+v", resp.Tier)
	}
	if resp.DefaultPlatform != models.PlatformTikTok {
		t.Errorf("default_platform = %s", resp.DefaultPlatform)
	}

	got := map[models.Platform]models.PlatformConsole{}
	for _, p := range resp.Platforms {
		got[p.Platform] = p
	}
	if len(got) != 3 {
		t.Fatalf("plataformas = %d, want tiktok/instagram/youtube", len(got))
	}

	tiktok := got[models.PlatformTikTok]
	if len(tiktok.Slots) != 15 || tiktok.ItemCount != 13 {
		t.Fatalf("tiktok slots = %d items = %d", len(tiktok.Slots), tiktok.ItemCount)
	}
	if tiktok.Slots[5].Kind != models.SlotAd || tiktok.Slots[12].Kind != models.SlotAd {
		t.Error("posições 6 e 13 deveriam ser anúncios")
	}
	if first := tiktok.Slots[0]; first.Item == nil || first.Item.VideoID != "1" || !first.Preload {
		t.Errorf("primeiro slot = %+v", first)
	}

	instagram := got[models.PlatformInstagram]
	if instagram.ItemCount != 1 {
		t.Errorf("instagram deveria ignorar entradas inválidas, items = %d", instagram.ItemCount)
	}
	if instagram.Slots[1].Kind != models.SlotPlaceholder {
		t.Errorf("slot 2 do instagram = %s, want placeholder", instagram.Slots[1].Kind)
	}
	if instagram.Slots[0].Item.VideoID != "" {
		t.Error("video_id só é extraído para TikTok")
	}

	youtube := got[models.PlatformYouTube]
	if len(youtube.Slots) != 1 || youtube.Slots[0].Item.Title != "Highlights" {
		t.Errorf("youtube = %+v", youtube.Slots)
	}
}

func TestConsoleUnrankedRegionFallsBackToTierC(t *testing.T) {
	svc := newConsoleFixture(t, `[]`)

	resp := svc.Console(context.Background(), "scotland")
	if resp.Tier.Matched || resp.Tier.Policy.Tier != models.TierC {
		t.Fatalf("tier = %+v, want C sem correspondência", resp.Tier)
	}
	for _, p := range resp.Platforms {
		if p.Platform == models.PlatformTikTok && (len(p.Slots) != 6 || p.ItemCount != 5) {
			t.Errorf("tiktok na faixa C: slots %d items %d", len(p.Slots), p.ItemCount)
		}
	}
}

func TestConsoleEmptyRegion(t *testing.T) {
	svc := newConsoleFixture(t, sampleDataset)

	resp := svc.Console(context.Background(), "/regional/pages/wales.html")
	if !resp.Empty || len(resp.Platforms) != 0 || resp.DefaultPlatform != "" {
		t.Errorf("wales não tem conteúdo: %+v", resp)
	}

	resp = svc.Console(context.Background(), "")
	if resp.Region != "global" || !resp.Empty {
		t.Errorf("região vazia deveria virar global: %+v", resp)
	}
}
