package cli

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/gogotex/docstore/internal/config"
	"github.com/gogotex/docstore/internal/document"
	"github.com/gogotex/docstore/internal/document/seed"
	"github.com/gogotex/docstore/internal/document/service"
	"github.com/gogotex/docstore/pkg/logger"
	"github.com/gogotex/docstore/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

type searchFlags struct {
	seedFile      string
	metricsFile   string
	titlePrefixes []string
	contains      []string
	authorIDs     []string
	createdFrom   string
	createdTo     string
}

func newSearchCommand(cfg func() *config.Config) *cobra.Command {
	var f searchFlags

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Seed a store and print the documents matching the given filters as JSON",
		Example: `  docstore search --seed docs.yaml --title-prefix Alpha
  docstore search --seed docs.yaml --author 1 --author 2 --created-from 2024-01-01T00:00:00Z`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := cfg()
			if !cmd.Flags().Changed("seed") {
				f.seedFile = c.Store.SeedFile
			}
			if !cmd.Flags().Changed("metrics-file") {
				f.metricsFile = c.Metrics.File
			}
			return runSearch(cmd, f)
		},
	}

	cmd.Flags().StringVar(&f.seedFile, "seed", "", "YAML seed file (env DOCSTORE_SEED_FILE)")
	cmd.Flags().StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus metrics to this file (env DOCSTORE_METRICS_FILE)")
	cmd.Flags().StringSliceVar(&f.titlePrefixes, "title-prefix", nil, "match titles starting with any of these prefixes")
	cmd.Flags().StringSliceVar(&f.contains, "contains", nil, "match content containing any of these substrings")
	cmd.Flags().StringSliceVar(&f.authorIDs, "author", nil, "match any of these author ids")
	cmd.Flags().StringVar(&f.createdFrom, "created-from", "", "match documents created strictly after this RFC 3339 time")
	cmd.Flags().StringVar(&f.createdTo, "created-to", "", "match documents created strictly before this RFC 3339 time")
	return cmd
}

func runSearch(cmd *cobra.Command, f searchFlags) error {
	req, err := f.request()
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	metrics.RegisterCollectors(reg)

	svc := service.NewMemoryService()
	if f.seedFile != "" {
		docs, err := seed.LoadFile(f.seedFile)
		if err != nil {
			return err
		}
		for _, d := range docs {
			if _, err := svc.Save(d); err != nil {
				return fmt.Errorf("seed document: %w", err)
			}
		}
		logger.Infof("seeded %d documents from %s", svc.Count(), f.seedFile)
	} else {
		logger.Warnf("no seed file configured; searching an empty store")
	}

	found := svc.Search(req)
	sort.Slice(found, func(i, j int) bool { return found[i].ID < found[j].ID })

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(found); err != nil {
		return fmt.Errorf("encode results: %w", err)
	}

	if f.metricsFile != "" {
		if err := prometheus.WriteToTextfile(f.metricsFile, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}

// request returns nil when no filter flag was given.
func (f searchFlags) request() (*document.SearchRequest, error) {
	req := &document.SearchRequest{
		TitlePrefixes:    f.titlePrefixes,
		ContainsContents: f.contains,
		AuthorIDs:        f.authorIDs,
	}
	var err error
	if req.CreatedFrom, err = parseTime("created-from", f.createdFrom); err != nil {
		return nil, err
	}
	if req.CreatedTo, err = parseTime("created-to", f.createdTo); err != nil {
		return nil, err
	}
	if req.IsEmpty() {
		return nil, nil
	}
	return req, nil
}

func parseTime(flag, v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	ts, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", flag, err)
	}
	return &ts, nil
}
