package logic

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"post_sentinel/dal"
	"post_sentinel/shared"
	"post_sentinel/texts"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_alerts.go -package mocks post_sentinel/logic IAlertDispatcher

const dispatchRetryPauseSec = 2

// ShouldAlert decides purely from the classification whether a post warrants a
// push notification. Categories in the configured alert set always alert;
// SUPPORT never alerts on urgency alone; anything else alerts at or above the
// urgency threshold.
func ShouldAlert(cfg *shared.Config, e *Enrichment) bool {
	for _, cat := range cfg.AlertCategories {
		if e.Category == cat {
			return true
		}
	}
	if e.Category == CategorySupport {
		return false
	}
	return e.Urgency >= cfg.UrgencyThreshold
}

type IAlertDispatcher interface {
	// DispatchAlert reserves the post's alert-sent flag and pushes the alert to
	// every configured recipient. Losing the reservation to a concurrent caller
	// is a silent no-op. If no recipient accepts after bounded retries, the
	// reservation is rolled back so a manual resend stays possible.
	DispatchAlert(ctx context.Context, post *dal.Post, e *Enrichment) error
}

type alertDispatcher struct {
	cfg      *shared.Config
	logger   shared.ILogger
	repo     dal.IRepo
	notifier INotifier
	txt      texts.ITexts
	timeFmt  shared.ITimeFormatter
	metrics  IMetrics
}

func NewAlertDispatcher(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	notifier INotifier,
	txt texts.ITexts,
	timeFmt shared.ITimeFormatter,
	metrics IMetrics,
) IAlertDispatcher {
	return &alertDispatcher{
		cfg:      cfg,
		logger:   logger,
		repo:     repo,
		notifier: notifier,
		txt:      txt,
		timeFmt:  timeFmt,
		metrics:  metrics,
	}
}

func (ad *alertDispatcher) DispatchAlert(ctx context.Context, post *dal.Post, e *Enrichment) error {

	// Reserve before sending: at most one duplicate, never a silent miss.
	reserved, err := ad.repo.TryReserveAlert(post.PostId)
	if err != nil {
		return err
	}
	if !reserved {
		ad.logger.Debugf("Alert for post %s already reserved elsewhere; skipping", post.PostId)
		return nil
	}

	msg := ad.formatMessage(post, e)

	anySent := false
	for _, chatId := range ad.cfg.Secrets.TelegramChatIds {
		if ad.sendWithRetries(ctx, chatId, msg, post.PostId) {
			anySent = true
		}
	}

	if !anySent {
		ad.metrics.AlertFailed()
		ad.logger.Errorf("Alert for post %s failed for every recipient; releasing reservation", post.PostId)
		if err = ad.repo.ClearAlertReservation(post.PostId); err != nil {
			return fmt.Errorf("failed to release alert reservation for post %s: %w", post.PostId, err)
		}
		return fmt.Errorf("alert dispatch failed for post %s", post.PostId)
	}

	ad.metrics.AlertSent()
	ad.logger.Infof("Alert sent for post %s by @%s (%s, urgency %d)",
		post.PostId, post.Handle, e.Category, e.Urgency)
	return nil
}

func (ad *alertDispatcher) sendWithRetries(ctx context.Context, chatId int64, msg, postId string) bool {

	retries := ad.cfg.DispatchRetries
	if retries < 1 {
		retries = 1
	}
	for attempt := 1; attempt <= retries; attempt++ {
		err := ad.notifier.SendMessage(ctx, chatId, msg)
		if err == nil {
			return true
		}
		ad.logger.Warnf("Failed to send alert for post %s to chat %d (attempt %d/%d): %v",
			postId, chatId, attempt, retries, err)
		if attempt == retries {
			break
		}
		select {
		case <-ctx.Done():
			return false
		case <-time.After(time.Duration(attempt*dispatchRetryPauseSec) * time.Second):
		}
	}
	return false
}

func (ad *alertDispatcher) formatMessage(post *dal.Post, e *Enrichment) string {

	headline := "Mention"
	switch e.Category {
	case CategoryAttack:
		headline = "Attack detected"
	case CategoryGrievance:
		headline = "Citizen grievance"
	case CategorySupport:
		headline = "Support message"
	}

	return ad.txt.WithVals("alert_post.txt", map[string]string{
		"headline": headline,
		"handle":   post.Handle,
		"excerpt":  shared.TruncateWithEllipsis(post.Text, shared.MaxExcerptLen),
		"category": e.Category,
		"urgency":  strconv.Itoa(e.Urgency),
		"summary":  e.Summary,
		"posted":   ad.timeFmt.Format(post.PostedAt),
		"link":     post.Link,
	})
}
