package test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"post_sentinel/logic"
	"post_sentinel/shared"
	"post_sentinel/test/mocks"
)

type alertHarness struct {
	cfg          *shared.Config
	mockLogger   *mocks.MockILogger
	mockRepo     *mocks.MockIRepo
	mockNotifier *mocks.MockINotifier
	mockTexts    *mocks.MockITexts
	mockMetrics  *mocks.MockIMetrics
}

func setupAlertTest(t *testing.T) (*gomock.Controller, *alertHarness, logic.IAlertDispatcher) {

	ctrl := gomock.NewController(t)

	h := &alertHarness{
		cfg: &shared.Config{
			UrgencyThreshold: 4,
			AlertCategories:  []string{"ATTACK"},
			DispatchRetries:  1,
		},
		mockLogger:   mocks.NewMockILogger(ctrl),
		mockRepo:     mocks.NewMockIRepo(ctrl),
		mockNotifier: mocks.NewMockINotifier(ctrl),
		mockTexts:    mocks.NewMockITexts(ctrl),
		mockMetrics:  mocks.NewMockIMetrics(ctrl),
	}
	h.cfg.Secrets.TelegramChatIds = []int64{100, 200}

	stubLogger(h.mockLogger)
	stubMetrics(h.mockMetrics)
	stubTexts(h.mockTexts)

	ad := logic.NewAlertDispatcher(h.cfg, h.mockLogger, h.mockRepo, h.mockNotifier,
		h.mockTexts, shared.NewTimeFormatter(h.cfg), h.mockMetrics)

	return ctrl, h, ad
}

func makeEnrichment(category string, urgency int) *logic.Enrichment {
	return &logic.Enrichment{
		Summary:   "Short summary of the post.",
		Category:  category,
		Urgency:   urgency,
		Sentiment: -0.4,
	}
}

func TestDispatchAlert_SendsToAllRecipients(t *testing.T) {

	ctrl, h, ad := setupAlertTest(t)
	defer ctrl.Finish()

	post := makePost(1, "mayor_office", time.Now().UTC())
	h.mockRepo.EXPECT().TryReserveAlert(gomock.Eq(post.PostId)).Return(true, nil).Times(1)
	h.mockNotifier.EXPECT().SendMessage(gomock.Any(), gomock.Eq(int64(100)), gomock.Any()).Return(nil).Times(1)
	h.mockNotifier.EXPECT().SendMessage(gomock.Any(), gomock.Eq(int64(200)), gomock.Any()).Return(nil).Times(1)

	err := ad.DispatchAlert(context.Background(), post, makeEnrichment("ATTACK", 5))
	assert.Nil(t, err)
}

func TestDispatchAlert_SkipsWhenAlreadyReserved(t *testing.T) {

	ctrl, h, ad := setupAlertTest(t)
	defer ctrl.Finish()

	// No SendMessage expectations: losing the reservation must be a no-op
	post := makePost(2, "mayor_office", time.Now().UTC())
	h.mockRepo.EXPECT().TryReserveAlert(gomock.Eq(post.PostId)).Return(false, nil).Times(1)

	err := ad.DispatchAlert(context.Background(), post, makeEnrichment("ATTACK", 5))
	assert.Nil(t, err)
}

func TestDispatchAlert_RollsBackWhenAllSendsFail(t *testing.T) {

	ctrl, h, ad := setupAlertTest(t)
	defer ctrl.Finish()

	post := makePost(3, "mayor_office", time.Now().UTC())
	sendErr := fmt.Errorf("telegram says no")
	h.mockRepo.EXPECT().TryReserveAlert(gomock.Eq(post.PostId)).Return(true, nil).Times(1)
	h.mockNotifier.EXPECT().SendMessage(gomock.Any(), gomock.Any(), gomock.Any()).Return(sendErr).Times(2)
	h.mockRepo.EXPECT().ClearAlertReservation(gomock.Eq(post.PostId)).Return(nil).Times(1)

	err := ad.DispatchAlert(context.Background(), post, makeEnrichment("ATTACK", 5))
	assert.NotNil(t, err)
}

func TestDispatchAlert_PartialDeliverySucceeds(t *testing.T) {

	ctrl, h, ad := setupAlertTest(t)
	defer ctrl.Finish()

	post := makePost(4, "mayor_office", time.Now().UTC())
	h.mockNotifier.EXPECT().SendMessage(gomock.Any(), gomock.Eq(int64(100)), gomock.Any()).
		Return(fmt.Errorf("chat gone")).Times(1)
	h.mockNotifier.EXPECT().SendMessage(gomock.Any(), gomock.Eq(int64(200)), gomock.Any()).Return(nil).Times(1)
	h.mockRepo.EXPECT().TryReserveAlert(gomock.Eq(post.PostId)).Return(true, nil).Times(1)

	err := ad.DispatchAlert(context.Background(), post, makeEnrichment("ATTACK", 5))
	assert.Nil(t, err)
}

func TestShouldAlert(t *testing.T) {

	cfg := &shared.Config{
		UrgencyThreshold: 4,
		AlertCategories:  []string{"ATTACK", "GRIEVANCE"},
	}

	tests := []struct {
		category string
		urgency  int
		want     bool
	}{
		{"ATTACK", 2, true},
		{"ATTACK", 5, true},
		{"GRIEVANCE", 1, true},
		{"NEUTRAL", 3, false},
		{"NEUTRAL", 5, true},
		{"SUPPORT", 5, false},
		{"SUPPORT", 1, false},
	}
	for _, tc := range tests {
		got := logic.ShouldAlert(cfg, makeEnrichment(tc.category, tc.urgency))
		assert.Equal(t, tc.want, got, "category %s urgency %d", tc.category, tc.urgency)
	}
}
