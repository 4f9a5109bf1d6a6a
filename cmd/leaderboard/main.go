package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"

	"github.com/watchthefall/wtf-worldcup/internal/config"
	"github.com/watchthefall/wtf-worldcup/internal/logger"
	"github.com/watchthefall/wtf-worldcup/internal/models"
	"github.com/watchthefall/wtf-worldcup/internal/services"
	"github.com/watchthefall/wtf-worldcup/internal/typesense"
	"github.com/watchthefall/wtf-worldcup/internal/worldcup/source"
)

type cliConfig struct {
	Source  string
	Metric  models.Metric
	JSON    bool
	Top     int
	Publish bool
	Timeout time.Duration
}

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()

	src := flag.String("source", cfg.DataSource, "Arquivo ou URL do worldcup.json")
	metric := flag.String("metric", string(models.MetricPoints), "Métrica: points, followers, tiktok, instagram, youtube, x")
	asJSON := flag.Bool("json", false, "Imprimir JSON em vez de tabela")
	top := flag.Int("top", 0, "Mostrar apenas os N primeiros (0 = todos)")
	publish := flag.Bool("publish", false, "Publicar o ranking por points no Typesense")
	timeout := flag.Duration("timeout", cfg.FetchTimeout(), "Timeout do fetch")

	flag.Parse()

	cli := cliConfig{
		Source:  *src,
		Metric:  models.ParseMetric(*metric),
		JSON:    *asJSON,
		Top:     *top,
		Publish: *publish,
		Timeout: *timeout,
	}

	if err := run(context.Background(), cfg, cli, os.Stdout); err != nil {
		log.Fatalf("Erro: %v", err)
	}
}

func run(ctx context.Context, cfg *config.Config, cli cliConfig, out io.Writer) error {
	zlog, err := logger.NewWithOutput(cfg.LogLevel, "stderr")
	if err != nil {
		return fmt.Errorf("erro ao criar logger: %w", err)
	}
	defer func() { _ = zlog.Sync() }()

	dataSource, err := source.New(cli.Source, cli.Timeout)
	if err != nil {
		return err
	}

	svc := services.NewLeaderboardService(dataSource, zlog, services.WithSiteBaseURL(cfg.SiteBaseURL))
	if err := svc.Reload(ctx); err != nil {
		return fmt.Errorf("erro ao carregar %s: %w", cli.Source, err)
	}

	resp := svc.Leaderboard(cli.Metric, cli.Top)

	if cli.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(resp); err != nil {
			return err
		}
	} else {
		if err := printTable(out, resp); err != nil {
			return err
		}
	}

	if !cli.Publish {
		return nil
	}
	index := typesense.NewClient(cfg, zlog)
	if index == nil {
		return typesense.ErrIndexDisabled
	}
	return index.Publish(ctx, svc.Ranked(models.MetricPoints))
}

func printTable(out io.Writer, resp *models.LeaderboardResponse) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "World Cup · %s", resp.MetricLabel)
	if resp.LastUpdated != "" {
		fmt.Fprintf(w, " · %s", resp.LastUpdated)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "RANK\t\tHUB\tTIER\tVALUE\tCHANGE")

	if len(resp.Rows) == 0 {
		fmt.Fprintln(w, "-\t\tsem dados\t\t\t")
	}
	for _, row := range resp.Rows {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			row.Rank, row.Badge, row.Region, row.Tier, row.DisplayValue, row.DisplayDelta)
	}
	return w.Flush()
}
