package logic

import (
	"context"
	"errors"
	"sync"
	"time"

	"post_sentinel/dal"
	"post_sentinel/shared"
)

const (
	interAccountPauseSec = 2
	enrichQueueSize      = 256
	reconcileBatchSize   = 100
)

const (
	OutcomeOk          = "ok"
	OutcomeThrottled   = "throttled"
	OutcomeUnavailable = "unavailable"
	OutcomeAuthFailed  = "auth_failed"
	OutcomeError       = "error"
)

// AccountStatus is one account's view of the last poll cycle.
type AccountStatus struct {
	Handle     string    `json:"handle"`
	LastPolled time.Time `json:"last_polled"`
	Outcome    string    `json:"outcome"`
}

type PipelineStatus struct {
	Running        bool            `json:"running"`
	LastCycleStart time.Time       `json:"last_cycle_start"`
	LastCycleEnd   time.Time       `json:"last_cycle_end"`
	LastCycleOk    bool            `json:"last_cycle_ok"`
	Accounts       []AccountStatus `json:"accounts"`
}

type IPollScheduler interface {
	Start()
	Stop()
	Status() PipelineStatus
}

type pollScheduler struct {
	cfg        *shared.Config
	logger     shared.ILogger
	repo       dal.IRepo
	fetcher    IContentFetcher
	enricher   IEnricher
	dispatcher IAlertDispatcher
	metrics    IMetrics

	cancel  context.CancelFunc
	wg      sync.WaitGroup
	jobs    chan *dal.Post
	muState sync.Mutex
	status  PipelineStatus
}

func NewPollScheduler(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	fetcher IContentFetcher,
	enricher IEnricher,
	dispatcher IAlertDispatcher,
	metrics IMetrics,
) IPollScheduler {
	return &pollScheduler{
		cfg:        cfg,
		logger:     logger,
		repo:       repo,
		fetcher:    fetcher,
		enricher:   enricher,
		dispatcher: dispatcher,
		metrics:    metrics,
		jobs:       make(chan *dal.Post, enrichQueueSize),
	}
}

func (ps *pollScheduler) Start() {

	ctx, cancel := context.WithCancel(context.Background())
	ps.cancel = cancel

	workers := ps.cfg.EnrichWorkers
	if workers < 1 {
		workers = 1
	}
	for i := 0; i < workers; i++ {
		ps.wg.Add(1)
		go ps.enrichWorker(ctx)
	}

	ps.wg.Add(1)
	go ps.run(ctx)

	ps.muState.Lock()
	ps.status.Running = true
	ps.muState.Unlock()
}

func (ps *pollScheduler) Stop() {
	if ps.cancel != nil {
		ps.cancel()
	}
	ps.wg.Wait()
	ps.muState.Lock()
	ps.status.Running = false
	ps.muState.Unlock()
}

func (ps *pollScheduler) Status() PipelineStatus {
	ps.muState.Lock()
	defer ps.muState.Unlock()
	res := ps.status
	res.Accounts = append([]AccountStatus(nil), ps.status.Accounts...)
	return res
}

func (ps *pollScheduler) run(ctx context.Context) {

	defer ps.wg.Done()

	ps.seedAccounts()
	ps.reconcileUnenriched(ctx)

	interval := time.Duration(ps.cfg.PollIntervalSec) * time.Second
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	ps.runCycle(ctx)
	for {
		select {
		case <-ctx.Done():
			ps.logger.Printf("Poll scheduler shutting down")
			return
		case <-ticker.C:
			ps.runCycle(ctx)
		}
	}
}

// seedAccounts registers accounts listed in config that the store does not know
// yet. Registration never reactivates a deliberately deactivated account.
func (ps *pollScheduler) seedAccounts() {
	for _, raw := range ps.cfg.SeedAccounts {
		handle := shared.NormalizeHandle(raw)
		if err := shared.ValidateHandle(handle); err != nil {
			ps.logger.Warnf("Skipping invalid seed account '%s': %v", raw, err)
			continue
		}
		isNew, err := ps.repo.AddAccountIfNotExist(handle, "")
		if err != nil {
			ps.logger.Errorf("Failed to seed account '%s': %v", handle, err)
			continue
		}
		if isNew {
			ps.logger.Infof("Added monitored account from config: @%s", handle)
		}
	}
}

// reconcileUnenriched re-queues posts whose enrichment never landed, e.g.
// because a previous run was cut short mid-cycle.
func (ps *pollScheduler) reconcileUnenriched(ctx context.Context) {

	grace := time.Duration(ps.cfg.ReconcileGraceMin) * time.Minute
	olderThan := time.Now().UTC().Add(-grace)
	posts, err := ps.repo.GetPostsMissingEnrichment(olderThan, reconcileBatchSize)
	if err != nil {
		ps.logger.Errorf("Failed to query posts missing enrichment: %v", err)
		return
	}
	if len(posts) == 0 {
		return
	}
	ps.logger.Infof("Re-queuing %d post(s) with missing enrichment", len(posts))
	for _, post := range posts {
		ps.enqueue(ctx, post)
	}
}

func (ps *pollScheduler) runCycle(ctx context.Context) {

	defer func() {
		if r := recover(); r != nil {
			ps.logger.Errorf("Poll cycle panicked: %v", r)
		}
	}()

	cycleStart := time.Now().UTC()
	ps.logger.Infof("Starting poll cycle")

	accounts, err := ps.repo.GetAccounts(true)
	if err != nil {
		ps.logger.Errorf("Failed to list monitored accounts: %v", err)
		ps.finishCycle(cycleStart, false, nil)
		return
	}
	ps.metrics.MonitoredAccounts(len(accounts))
	if len(accounts) == 0 {
		ps.logger.Warn("No active monitored accounts")
		ps.finishCycle(cycleStart, true, nil)
		return
	}

	cycleOk := true
	statuses := make([]AccountStatus, 0, len(accounts))
	for i, acct := range accounts {
		if ctx.Err() != nil {
			return
		}
		outcome := ps.pollAccount(ctx, acct, cycleStart)
		ps.metrics.AccountPolled(outcome)
		if outcome != OutcomeOk {
			cycleOk = false
		}
		statuses = append(statuses, AccountStatus{
			Handle:     acct.Handle,
			LastPolled: cycleStart,
			Outcome:    outcome,
		})
		// Brief pause between accounts keeps the gateway happier
		if i != len(accounts)-1 {
			select {
			case <-ctx.Done():
				return
			case <-time.After(interAccountPauseSec * time.Second):
			}
		}
	}

	ps.sweepOldPosts()
	ps.metrics.PollCycleCompleted()
	ps.finishCycle(cycleStart, cycleOk, statuses)
	ps.logger.Infof("Poll cycle completed; next in %d seconds", ps.cfg.PollIntervalSec)
}

func (ps *pollScheduler) pollAccount(ctx context.Context, acct *dal.Account, cycleStart time.Time) string {

	ps.logger.Infof("Polling @%s", acct.Handle)

	posts, err := ps.fetcher.FetchTimeline(ctx, acct.Handle)
	outcome := OutcomeOk
	if err != nil {
		switch {
		case errors.Is(err, ErrThrottled):
			// Session manager's cool-down governs pacing; skip until next tick.
			ps.logger.Warnf("Skipping @%s until next cycle: throttled", acct.Handle)
			outcome = OutcomeThrottled
		case errors.Is(err, ErrUnavailable):
			ps.logger.Warnf("Skipping @%s until next cycle: %v", acct.Handle, err)
			outcome = OutcomeUnavailable
		case errors.Is(err, ErrAuthFailed):
			ps.logger.Errorf("Authentication failed; fix gateway credentials")
			outcome = OutcomeAuthFailed
		default:
			ps.logger.Errorf("Error polling @%s: %v", acct.Handle, err)
			outcome = OutcomeError
		}
	} else {
		ps.processTimeline(ctx, acct, posts, cycleStart)
	}

	// last_checked records the visit on success and skip alike. It is status
	// bookkeeping only; dedup is by post id, so a skipped cycle loses nothing.
	if err = ps.repo.UpdateAccountChecked(acct.Handle, cycleStart); err != nil {
		ps.logger.Errorf("Failed to update watermark for @%s: %v", acct.Handle, err)
	}
	return outcome
}

// processTimeline walks the page in the platform's newest-first order. With
// early-stop enabled the scan ends at the first already-known post; the feed's
// recency ordering bounds the work per cycle.
func (ps *pollScheduler) processTimeline(ctx context.Context, acct *dal.Account, posts []*RawPost, cycleStart time.Time) {

	newCount := 0
	for _, rp := range posts {
		post := &dal.Post{
			PostId:    rp.PostId,
			Handle:    rp.Handle,
			Text:      rp.Text,
			Link:      rp.Link,
			PostedAt:  rp.PostedAt,
			ScrapedAt: cycleStart,
		}
		isNew, err := ps.repo.AddPostIfNew(post)
		if err != nil {
			ps.logger.Errorf("Failed to store post %s from @%s: %v", rp.PostId, acct.Handle, err)
			continue
		}
		if !isNew {
			if !ps.cfg.FullRescan {
				break
			}
			continue
		}
		newCount++
		ps.metrics.NewPostSaved()
		ps.enqueue(ctx, post)
	}

	if newCount > 0 {
		ps.logger.Infof("Found %d new post(s) from @%s", newCount, acct.Handle)
	} else {
		ps.logger.Debugf("No new posts from @%s", acct.Handle)
	}
}

func (ps *pollScheduler) enqueue(ctx context.Context, post *dal.Post) {
	select {
	case <-ctx.Done():
	case ps.jobs <- post:
		ps.metrics.EnrichQueueLength(len(ps.jobs))
	}
}

func (ps *pollScheduler) enrichWorker(ctx context.Context) {

	defer ps.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case post := <-ps.jobs:
			ps.metrics.EnrichQueueLength(len(ps.jobs))
			ps.processPost(ctx, post)
		}
	}
}

func (ps *pollScheduler) processPost(ctx context.Context, post *dal.Post) {

	e := ps.enricher.Enrich(ctx, post.Handle, post.Text)
	if ctx.Err() != nil {
		// Shutdown cut the enrichment short. Don't persist the instant
		// fallback; a NULL summary gets re-queued on next startup.
		return
	}
	err := ps.repo.UpdatePostEnrichment(post.PostId, e.Summary, e.Category, e.Urgency, e.Sentiment)
	if err != nil {
		// A post with NULL summary gets picked up again on next startup
		ps.logger.Errorf("Failed to persist enrichment for post %s: %v", post.PostId, err)
		return
	}

	if !ShouldAlert(ps.cfg, e) {
		ps.logger.Debugf("No alert for post %s (%s, urgency %d)", post.PostId, e.Category, e.Urgency)
		return
	}
	if err = ps.dispatcher.DispatchAlert(ctx, post, e); err != nil {
		ps.logger.Errorf("Alert dispatch for post %s gave up: %v", post.PostId, err)
	}
}

func (ps *pollScheduler) sweepOldPosts() {
	if ps.cfg.RetentionHours <= 0 {
		return
	}
	cutoff := time.Now().UTC().Add(-time.Duration(ps.cfg.RetentionHours) * time.Hour)
	n, err := ps.repo.DeletePostsScrapedBefore(cutoff)
	if err != nil {
		ps.logger.Errorf("Retention sweep failed: %v", err)
		return
	}
	if n > 0 {
		ps.logger.Infof("Retention sweep deleted %d old post(s)", n)
	}
}

func (ps *pollScheduler) finishCycle(cycleStart time.Time, ok bool, accounts []AccountStatus) {
	ps.muState.Lock()
	defer ps.muState.Unlock()
	ps.status.LastCycleStart = cycleStart
	ps.status.LastCycleEnd = time.Now().UTC()
	ps.status.LastCycleOk = ok
	if accounts != nil {
		ps.status.Accounts = accounts
	}
}
