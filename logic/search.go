package logic

import (
	"context"
	"sync"

	"post_sentinel/shared"
)

// SearchResult is an on-demand keyword match, enriched but never persisted.
type SearchResult struct {
	Post       *RawPost
	Enrichment *Enrichment
}

type ISearcher interface {
	// Search runs a keyword query against the gateway and enriches every
	// match. A query with no matches yields an empty slice, not an error.
	Search(ctx context.Context, query string, maxCount int) ([]*SearchResult, error)
}

type searcher struct {
	cfg      *shared.Config
	logger   shared.ILogger
	fetcher  IContentFetcher
	enricher IEnricher
}

func NewSearcher(
	cfg *shared.Config,
	logger shared.ILogger,
	fetcher IContentFetcher,
	enricher IEnricher,
) ISearcher {
	return &searcher{
		cfg:      cfg,
		logger:   logger,
		fetcher:  fetcher,
		enricher: enricher,
	}
}

func (s *searcher) Search(ctx context.Context, query string, maxCount int) ([]*SearchResult, error) {

	if maxCount < 1 || maxCount > s.cfg.SearchMaxResults {
		maxCount = s.cfg.SearchMaxResults
	}

	posts, err := s.fetcher.FetchKeyword(ctx, query, maxCount)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return []*SearchResult{}, nil
	}
	s.logger.Infof("Keyword search '%s' matched %d post(s)", query, len(posts))

	// Enrich matches concurrently; order of the gateway's response is kept.
	res := make([]*SearchResult, len(posts))
	var wg sync.WaitGroup
	for i, rp := range posts {
		wg.Add(1)
		go func(ix int, post *RawPost) {
			defer wg.Done()
			e := s.enricher.Enrich(ctx, post.Handle, post.Text)
			res[ix] = &SearchResult{Post: post, Enrichment: e}
		}(i, rp)
	}
	wg.Wait()

	return res, nil
}
