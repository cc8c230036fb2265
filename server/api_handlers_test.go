package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"post_sentinel/dal"
	"post_sentinel/logic"
	"post_sentinel/shared"
	"post_sentinel/test/mocks"
)

type nopLogger struct{}

func (nopLogger) Debug(msg interface{}, keyvals ...interface{}) {}
func (nopLogger) Debugf(format string, args ...interface{})    {}
func (nopLogger) Info(msg interface{}, keyvals ...interface{}) {}
func (nopLogger) Infof(format string, args ...interface{})     {}
func (nopLogger) Warn(msg interface{}, keyvals ...interface{}) {}
func (nopLogger) Warnf(format string, args ...interface{})     {}
func (nopLogger) Error(msg interface{}, keyvals ...interface{}) {}
func (nopLogger) Errorf(format string, args ...interface{})    {}
func (nopLogger) Printf(format string, args ...interface{})    {}

type nopSearcher struct{}

func (nopSearcher) Search(ctx context.Context, query string, maxCount int) ([]*logic.SearchResult, error) {
	return []*logic.SearchResult{}, nil
}

type nopScheduler struct{}

func (nopScheduler) Start()                       {}
func (nopScheduler) Stop()                        {}
func (nopScheduler) Status() logic.PipelineStatus { return logic.PipelineStatus{} }

func makeApiHandlerGroup(t *testing.T) (*gomock.Controller, *mocks.MockIRepo, *apiHandlerGroup) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockIRepo(ctrl)
	cfg := &shared.Config{Timezone: "UTC"}
	hg := NewApiHandlerGroup(cfg, nopLogger{}, mockRepo, nopSearcher{}, nopScheduler{},
		shared.NewTimeFormatter(cfg)).(*apiHandlerGroup)
	return ctrl, mockRepo, hg
}

func TestPostAccountsCreatedResponse(t *testing.T) {

	ctrl, mockRepo, hg := makeApiHandlerGroup(t)
	defer ctrl.Finish()

	mockRepo.EXPECT().AddAccountIfNotExist(gomock.Eq("city_hall"), gomock.Eq("")).Return(true, nil)
	mockRepo.EXPECT().GetAccount(gomock.Eq("city_hall")).
		Return(&dal.Account{Id: 1, Handle: "city_hall", IsActive: true}, nil)

	req := httptest.NewRequest("POST", "/api/accounts",
		strings.NewReader(`{"handle": "@City_Hall"}`))
	rec := httptest.NewRecorder()
	hg.postAccounts(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	// The status must not preempt the content type
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	assert.Contains(t, rec.Body.String(), `"city_hall"`)
}

func TestPostAccountsExistingResponse(t *testing.T) {

	ctrl, mockRepo, hg := makeApiHandlerGroup(t)
	defer ctrl.Finish()

	mockRepo.EXPECT().AddAccountIfNotExist(gomock.Eq("city_hall"), gomock.Eq("")).Return(false, nil)
	mockRepo.EXPECT().GetAccount(gomock.Eq("city_hall")).
		Return(&dal.Account{Id: 1, Handle: "city_hall", IsActive: true}, nil)

	req := httptest.NewRequest("POST", "/api/accounts",
		strings.NewReader(`{"handle": "city_hall"}`))
	rec := httptest.NewRecorder()
	hg.postAccounts(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
}
