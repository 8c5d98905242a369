package schedule

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/tsawler/examtable/config"
	"github.com/tsawler/examtable/model"
)

// PageReader supplies page content by 0-based index
type PageReader interface {
	Page(index int) (model.PageContent, error)
}

// Aggregate parses the given pages with at most cfg.Workers pages in
// flight and returns their results in the order of pages. The first read
// error cancels the remaining work and is returned.
func Aggregate(ctx context.Context, src PageReader, pages []int, cfg config.Config) ([]PageResult, error) {
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	results := make([]PageResult, len(pages))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, index := range pages {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			content, err := src.Page(index)
			if err != nil {
				return fmt.Errorf("page %d: %w", index+1, err)
			}
			results[i] = ParsePage(content, cfg)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Concat joins the rows of page results in the order given
func Concat(results []PageResult) []model.Row {
	var t model.Table
	for _, r := range results {
		t.Extend(r.Rows)
	}
	return t.Rows
}
