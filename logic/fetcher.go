package logic

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"
	"github.com/spaolacci/murmur3"

	"post_sentinel/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_fetcher.go -package mocks post_sentinel/logic IContentFetcher

const (
	fetchTimeoutSec   = 10
	fetchRetryCount   = 2
	fetchRetryPauseMs = 1500
)

// RawPost is one candidate post as it comes off the gateway, before dedup and
// enrichment.
type RawPost struct {
	PostId      string
	Handle      string
	DisplayName string
	Text        string
	Link        string
	PostedAt    time.Time // UTC
}

type IContentFetcher interface {
	// FetchTimeline returns one page of an account's posts, newest first. The
	// whole page comes back; dedup against the store is by post id, so posts
	// published during a skipped cycle are never lost.
	FetchTimeline(ctx context.Context, handle string) ([]*RawPost, error)
	// FetchKeyword returns up to maxCount posts matching the query, newest first.
	FetchKeyword(ctx context.Context, query string, maxCount int) ([]*RawPost, error)
}

type contentFetcher struct {
	cfg       *shared.Config
	logger    shared.ILogger
	userAgent shared.IUserAgent
	sessions  ISessionManager
	client    *http.Client
	sanitizer *bluemonday.Policy
	reStatus  *regexp.Regexp
}

func NewContentFetcher(
	cfg *shared.Config,
	logger shared.ILogger,
	userAgent shared.IUserAgent,
	sessions ISessionManager,
) IContentFetcher {
	return &contentFetcher{
		cfg:       cfg,
		logger:    logger,
		userAgent: userAgent,
		sessions:  sessions,
		client:    &http.Client{Timeout: fetchTimeoutSec * time.Second},
		sanitizer: bluemonday.StrictPolicy(),
		reStatus:  regexp.MustCompile(`/status(?:es)?/([0-9]+)`),
	}
}

func (cf *contentFetcher) FetchTimeline(ctx context.Context, handle string) ([]*RawPost, error) {

	handle = shared.NormalizeHandle(handle)
	feedUrl := fmt.Sprintf("%s/%s/rss?limit=%d", cf.cfg.GatewayUrl, url.PathEscape(handle), cf.cfg.TimelinePageSize)

	feed, err := cf.fetchParseFeed(ctx, feedUrl)
	if err != nil {
		return nil, err
	}

	res := make([]*RawPost, 0, len(feed.Items))
	for _, itm := range feed.Items {
		res = append(res, cf.parseItem(itm, handle))
	}
	return res, nil
}

func (cf *contentFetcher) FetchKeyword(ctx context.Context, query string, maxCount int) ([]*RawPost, error) {

	feedUrl := fmt.Sprintf("%s/search/rss?q=%s&limit=%d", cf.cfg.GatewayUrl, url.QueryEscape(query), maxCount)

	feed, err := cf.fetchParseFeed(ctx, feedUrl)
	if err != nil {
		return nil, err
	}

	res := make([]*RawPost, 0, len(feed.Items))
	for _, itm := range feed.Items {
		if len(res) == maxCount {
			break
		}
		res = append(res, cf.parseItem(itm, ""))
	}
	return res, nil
}

func (cf *contentFetcher) fetchParseFeed(ctx context.Context, feedUrl string) (*gofeed.Feed, error) {

	session, err := cf.sessions.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 0; attempt <= fetchRetryCount; attempt++ {
		if attempt != 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt*fetchRetryPauseMs) * time.Millisecond):
			}
		}

		feed, retriable, err := cf.fetchOnce(ctx, feedUrl, session)
		if err == nil {
			cf.sessions.ReportSuccess()
			return feed, nil
		}
		if !retriable {
			return nil, err
		}
		lastErr = err
		cf.logger.Warnf("Transient fetch failure (attempt %d/%d): %s: %v",
			attempt+1, fetchRetryCount+1, feedUrl, err)
	}
	return nil, fmt.Errorf("%w: %v", ErrUnavailable, lastErr)
}

func (cf *contentFetcher) fetchOnce(ctx context.Context, feedUrl string, session *Session) (feed *gofeed.Feed, retriable bool, err error) {

	var req *http.Request
	if req, err = http.NewRequestWithContext(ctx, "GET", feedUrl, nil); err != nil {
		return nil, false, err
	}
	cf.userAgent.AddUserAgent(req)
	req.Header.Set("Authorization", "Bearer "+session.Token)

	var resp *http.Response
	if resp, err = cf.client.Do(req); err != nil {
		return nil, true, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode == http.StatusForbidden:
		// Retry policy on throttling belongs to the scheduler, not here.
		cf.sessions.Invalidate(session)
		cf.sessions.ReportThrottled()
		return nil, false, ErrThrottled
	case resp.StatusCode == http.StatusUnauthorized:
		cf.sessions.Invalidate(session)
		return nil, false, ErrAuthFailed
	case resp.StatusCode >= 500:
		return nil, true, fmt.Errorf("request failed with status %d", resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, false, fmt.Errorf("%w: request failed with status %d", ErrUnavailable, resp.StatusCode)
	}

	fp := gofeed.NewParser()
	if feed, err = fp.Parse(resp.Body); err != nil {
		return nil, true, err
	}
	return feed, false, nil
}

func (cf *contentFetcher) parseItem(itm *gofeed.Item, fallbackHandle string) *RawPost {

	handle, displayName := itemAuthor(itm, fallbackHandle)

	postedAt := time.Now().UTC()
	if itm.PublishedParsed != nil {
		postedAt = itm.PublishedParsed.UTC()
	} else if itm.UpdatedParsed != nil {
		postedAt = itm.UpdatedParsed.UTC()
	}

	return &RawPost{
		PostId:      cf.itemPostId(itm),
		Handle:      handle,
		DisplayName: displayName,
		Text:        cf.stripHtml(itemText(itm)),
		Link:        itm.Link,
		PostedAt:    postedAt,
	}
}

// itemPostId extracts the platform status id from the item's GUID or permalink.
// Items that carry neither get a stable murmur3 key so dedup still holds.
func (cf *contentFetcher) itemPostId(itm *gofeed.Item) string {
	for _, candidate := range []string{itm.GUID, itm.Link} {
		if groups := cf.reStatus.FindStringSubmatch(candidate); groups != nil {
			return groups[1]
		}
	}
	hasher := murmur3.New64()
	_, _ = hasher.Write([]byte(itm.GUID + "\t" + itm.Link + "\t" + itm.Title))
	return fmt.Sprintf("h%d", hasher.Sum64())
}

func itemAuthor(itm *gofeed.Item, fallback string) (handle, displayName string) {
	handle = fallback
	if len(itm.Authors) != 0 && itm.Authors[0].Name != "" {
		displayName = itm.Authors[0].Name
		handle = shared.NormalizeHandle(itm.Authors[0].Name)
	} else if itm.Author != nil && itm.Author.Name != "" {
		displayName = itm.Author.Name
		handle = shared.NormalizeHandle(itm.Author.Name)
	}
	if displayName == "" {
		displayName = fallback
	}
	return
}

func itemText(itm *gofeed.Item) string {
	if itm.Description != "" {
		return itm.Description
	}
	return itm.Title
}

func (cf *contentFetcher) stripHtml(htm string) string {
	plain := cf.sanitizer.Sanitize(htm)
	plain = html.UnescapeString(plain)
	return strings.TrimSpace(plain)
}
