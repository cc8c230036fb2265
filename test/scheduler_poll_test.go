package test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"post_sentinel/dal"
	"post_sentinel/logic"
	"post_sentinel/shared"
	"post_sentinel/test/mocks"
)

type schedulerHarness struct {
	cfg            *shared.Config
	mockLogger     *mocks.MockILogger
	mockRepo       *mocks.MockIRepo
	mockFetcher    *mocks.MockIContentFetcher
	mockEnricher   *mocks.MockIEnricher
	mockDispatcher *mocks.MockIAlertDispatcher
	mockMetrics    *mocks.MockIMetrics
}

func setupSchedulerTest(t *testing.T) (*gomock.Controller, *schedulerHarness, logic.IPollScheduler) {

	ctrl := gomock.NewController(t)

	h := &schedulerHarness{
		cfg: &shared.Config{
			PollIntervalSec:   3600,
			EnrichWorkers:     1,
			UrgencyThreshold:  4,
			AlertCategories:   []string{"ATTACK"},
			ReconcileGraceMin: 10,
		},
		mockLogger:     mocks.NewMockILogger(ctrl),
		mockRepo:       mocks.NewMockIRepo(ctrl),
		mockFetcher:    mocks.NewMockIContentFetcher(ctrl),
		mockEnricher:   mocks.NewMockIEnricher(ctrl),
		mockDispatcher: mocks.NewMockIAlertDispatcher(ctrl),
		mockMetrics:    mocks.NewMockIMetrics(ctrl),
	}
	stubLogger(h.mockLogger)
	stubMetrics(h.mockMetrics)

	ps := logic.NewPollScheduler(h.cfg, h.mockLogger, h.mockRepo, h.mockFetcher,
		h.mockEnricher, h.mockDispatcher, h.mockMetrics)

	return ctrl, h, ps
}

func TestScheduler_EarlyStopAtFirstKnownPost(t *testing.T) {

	ctrl, h, ps := setupSchedulerTest(t)
	defer ctrl.Finish()

	lastChecked := time.Now().UTC().Add(-time.Hour)
	acct := &dal.Account{Id: 1, Handle: "mayor_office", IsActive: true, LastChecked: lastChecked}

	// Newest first; the third post is already known, the fourth must never be touched
	rawPosts := []*logic.RawPost{
		makeRawPost(4, "mayor_office", lastChecked.Add(40*time.Minute)),
		makeRawPost(3, "mayor_office", lastChecked.Add(30*time.Minute)),
		makeRawPost(2, "mayor_office", lastChecked.Add(20*time.Minute)),
		makeRawPost(1, "mayor_office", lastChecked.Add(10*time.Minute)),
	}

	h.mockRepo.EXPECT().GetPostsMissingEnrichment(gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)
	h.mockRepo.EXPECT().GetAccounts(gomock.Eq(true)).Return([]*dal.Account{acct}, nil).AnyTimes()
	h.mockFetcher.EXPECT().FetchTimeline(gomock.Any(), gomock.Eq("mayor_office")).
		Return(rawPosts, nil).AnyTimes()
	h.mockRepo.EXPECT().UpdateAccountChecked(gomock.Eq("mayor_office"), gomock.Any()).Return(nil).AnyTimes()

	var storeCalls int32
	h.mockRepo.EXPECT().AddPostIfNew(gomock.Any()).
		DoAndReturn(func(post *dal.Post) (bool, error) {
			atomic.AddInt32(&storeCalls, 1)
			switch post.PostId {
			case "170004", "170003":
				return true, nil
			case "170002":
				return false, nil
			}
			t.Errorf("unexpected store of post %s after first known post", post.PostId)
			return false, nil
		}).AnyTimes()

	h.mockEnricher.EXPECT().Enrich(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(makeEnrichment("NEUTRAL", 1)).AnyTimes()
	var enriched int32
	h.mockRepo.EXPECT().UpdatePostEnrichment(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(postId, summary, category string, urgency int, sentiment float64) error {
			atomic.AddInt32(&enriched, 1)
			return nil
		}).AnyTimes()

	ps.Start()
	defer ps.Stop()

	require.Eventually(t, func() bool { return atomic.LoadInt32(&enriched) == 2 },
		5*time.Second, 10*time.Millisecond)
	assert.Equal(t, int32(3), atomic.LoadInt32(&storeCalls))
}

func TestScheduler_ThrottledAccountStillAdvancesWatermark(t *testing.T) {

	ctrl, h, ps := setupSchedulerTest(t)
	defer ctrl.Finish()

	acct := &dal.Account{Id: 1, Handle: "mayor_office", IsActive: true}

	h.mockRepo.EXPECT().GetPostsMissingEnrichment(gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)
	h.mockRepo.EXPECT().GetAccounts(gomock.Eq(true)).Return([]*dal.Account{acct}, nil).AnyTimes()
	h.mockFetcher.EXPECT().FetchTimeline(gomock.Any(), gomock.Any()).
		Return(nil, logic.ErrThrottled).AnyTimes()

	// No AddPostIfNew expectation: a throttled fetch must not touch the store
	var checked int32
	h.mockRepo.EXPECT().UpdateAccountChecked(gomock.Eq("mayor_office"), gomock.Any()).
		DoAndReturn(func(handle string, when time.Time) error {
			atomic.AddInt32(&checked, 1)
			return nil
		}).AnyTimes()

	ps.Start()
	defer ps.Stop()

	require.Eventually(t, func() bool { return atomic.LoadInt32(&checked) >= 1 },
		5*time.Second, 10*time.Millisecond)
}

func TestScheduler_StoresPostsPredatingLastChecked(t *testing.T) {

	ctrl, h, ps := setupSchedulerTest(t)
	defer ctrl.Finish()

	// The account was last visited after these posts went up, e.g. because the
	// visit was a throttled skip. The posts must still land in the store: the
	// id dedup, not the last_checked timestamp, decides what is new.
	lastChecked := time.Now().UTC().Add(-time.Minute)
	acct := &dal.Account{Id: 1, Handle: "mayor_office", IsActive: true, LastChecked: lastChecked}
	rawPosts := []*logic.RawPost{
		makeRawPost(2, "mayor_office", lastChecked.Add(-10*time.Minute)),
		makeRawPost(1, "mayor_office", lastChecked.Add(-20*time.Minute)),
	}

	h.mockRepo.EXPECT().GetPostsMissingEnrichment(gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)
	h.mockRepo.EXPECT().GetAccounts(gomock.Eq(true)).Return([]*dal.Account{acct}, nil).AnyTimes()
	h.mockFetcher.EXPECT().FetchTimeline(gomock.Any(), gomock.Eq("mayor_office")).
		Return(rawPosts, nil).AnyTimes()
	h.mockRepo.EXPECT().UpdateAccountChecked(gomock.Eq("mayor_office"), gomock.Any()).Return(nil).AnyTimes()

	var stored int32
	h.mockRepo.EXPECT().AddPostIfNew(gomock.Any()).
		DoAndReturn(func(post *dal.Post) (bool, error) {
			atomic.AddInt32(&stored, 1)
			return true, nil
		}).AnyTimes()
	h.mockEnricher.EXPECT().Enrich(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(makeEnrichment("NEUTRAL", 1)).AnyTimes()
	h.mockRepo.EXPECT().UpdatePostEnrichment(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).AnyTimes()

	ps.Start()
	defer ps.Stop()

	require.Eventually(t, func() bool { return atomic.LoadInt32(&stored) >= 2 },
		5*time.Second, 10*time.Millisecond)
}

func TestScheduler_ShutdownMidEnrichmentSkipsPersist(t *testing.T) {

	ctrl, h, ps := setupSchedulerTest(t)
	defer ctrl.Finish()

	acct := &dal.Account{Id: 1, Handle: "mayor_office", IsActive: true}
	rawPosts := []*logic.RawPost{makeRawPost(1, "mayor_office", time.Now().UTC())}

	h.mockRepo.EXPECT().GetPostsMissingEnrichment(gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)
	h.mockRepo.EXPECT().GetAccounts(gomock.Eq(true)).Return([]*dal.Account{acct}, nil).AnyTimes()
	h.mockFetcher.EXPECT().FetchTimeline(gomock.Any(), gomock.Eq("mayor_office")).
		Return(rawPosts, nil).AnyTimes()
	h.mockRepo.EXPECT().UpdateAccountChecked(gomock.Eq("mayor_office"), gomock.Any()).Return(nil).AnyTimes()
	h.mockRepo.EXPECT().AddPostIfNew(gomock.Any()).Return(true, nil).AnyTimes()

	// The enrichment blocks until shutdown cancels it, then hands back the
	// degraded fallback. No UpdatePostEnrichment expectation: persisting the
	// fallback would hide the post from the startup reconciliation pass.
	entered := make(chan struct{})
	h.mockEnricher.EXPECT().Enrich(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, handle, text string) *logic.Enrichment {
			close(entered)
			<-ctx.Done()
			return makeEnrichment("NEUTRAL", 1)
		}).Times(1)

	ps.Start()
	select {
	case <-entered:
	case <-time.After(5 * time.Second):
		t.Fatal("enrichment never started")
	}
	ps.Stop()
}

func TestScheduler_SeedsConfiguredAccounts(t *testing.T) {

	ctrl, h, ps := setupSchedulerTest(t)
	defer ctrl.Finish()

	h.cfg.SeedAccounts = []string{"@Mayor_Office", "not a handle!"}

	var seeded int32
	h.mockRepo.EXPECT().AddAccountIfNotExist(gomock.Eq("mayor_office"), gomock.Eq("")).
		DoAndReturn(func(handle, displayName string) (bool, error) {
			atomic.AddInt32(&seeded, 1)
			return true, nil
		}).Times(1)
	h.mockRepo.EXPECT().GetPostsMissingEnrichment(gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)
	h.mockRepo.EXPECT().GetAccounts(gomock.Eq(true)).Return(nil, nil).AnyTimes()

	ps.Start()
	defer ps.Stop()

	// The invalid handle is skipped; only one account gets registered
	require.Eventually(t, func() bool { return atomic.LoadInt32(&seeded) == 1 },
		5*time.Second, 10*time.Millisecond)
}
