package test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"post_sentinel/logic"
	"post_sentinel/shared"
	"post_sentinel/test/mocks"
)

type searchHarness struct {
	cfg          *shared.Config
	mockLogger   *mocks.MockILogger
	mockFetcher  *mocks.MockIContentFetcher
	mockEnricher *mocks.MockIEnricher
}

func setupSearchTest(t *testing.T) (*gomock.Controller, *searchHarness, logic.ISearcher) {

	ctrl := gomock.NewController(t)

	h := &searchHarness{
		cfg:          &shared.Config{SearchMaxResults: 25},
		mockLogger:   mocks.NewMockILogger(ctrl),
		mockFetcher:  mocks.NewMockIContentFetcher(ctrl),
		mockEnricher: mocks.NewMockIEnricher(ctrl),
	}
	stubLogger(h.mockLogger)

	s := logic.NewSearcher(h.cfg, h.mockLogger, h.mockFetcher, h.mockEnricher)
	return ctrl, h, s
}

func TestSearch_EnrichesMatchesInOrder(t *testing.T) {

	ctrl, h, s := setupSearchTest(t)
	defer ctrl.Finish()

	now := time.Now().UTC()
	rawPosts := []*logic.RawPost{
		makeRawPost(3, "someone", now),
		makeRawPost(2, "someone_else", now.Add(-time.Minute)),
		makeRawPost(1, "third_user", now.Add(-2*time.Minute)),
	}
	h.mockFetcher.EXPECT().FetchKeyword(gomock.Any(), gomock.Eq("pothole"), gomock.Eq(10)).
		Return(rawPosts, nil).Times(1)
	h.mockEnricher.EXPECT().Enrich(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(makeEnrichment("GRIEVANCE", 3)).Times(3)

	results, err := s.Search(context.Background(), "pothole", 10)
	assert.Nil(t, err)
	assert.Len(t, results, 3)
	for i, r := range results {
		assert.Equal(t, rawPosts[i].PostId, r.Post.PostId)
		assert.Equal(t, "GRIEVANCE", r.Enrichment.Category)
	}
}

func TestSearch_NoMatchesYieldsEmptySlice(t *testing.T) {

	ctrl, h, s := setupSearchTest(t)
	defer ctrl.Finish()

	h.mockFetcher.EXPECT().FetchKeyword(gomock.Any(), gomock.Eq("quiet topic"), gomock.Eq(25)).
		Return([]*logic.RawPost{}, nil).Times(1)

	results, err := s.Search(context.Background(), "quiet topic", 0)
	assert.Nil(t, err)
	assert.NotNil(t, results)
	assert.Len(t, results, 0)
}

func TestSearch_MaxCountCappedByConfig(t *testing.T) {

	ctrl, h, s := setupSearchTest(t)
	defer ctrl.Finish()

	h.mockFetcher.EXPECT().FetchKeyword(gomock.Any(), gomock.Any(), gomock.Eq(25)).
		Return([]*logic.RawPost{}, nil).Times(1)

	_, err := s.Search(context.Background(), "pothole", 500)
	assert.Nil(t, err)
}
