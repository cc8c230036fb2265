package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"post_sentinel/dal"
	"post_sentinel/dto"
	"post_sentinel/logic"
	"post_sentinel/shared"
)

const (
	healthPath         = "/api/health"
	defaultRecentHours = 72
)

type apiHandlerGroup struct {
	cfg       *shared.Config
	logger    shared.ILogger
	repo      dal.IRepo
	searcher  logic.ISearcher
	scheduler logic.IPollScheduler
	timeFmt   shared.ITimeFormatter
}

func NewApiHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	searcher logic.ISearcher,
	scheduler logic.IPollScheduler,
	timeFmt shared.ITimeFormatter,
) IHandlerGroup {
	res := apiHandlerGroup{
		cfg:       cfg,
		logger:    logger,
		repo:      repo,
		searcher:  searcher,
		scheduler: scheduler,
		timeFmt:   timeFmt,
	}
	return &res
}

func (hg *apiHandlerGroup) Prefix() string {
	return "/api"
}

func (hg *apiHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"GET", "/posts/recent", func(w http.ResponseWriter, r *http.Request) { hg.getRecentPosts(w, r) }},
		{"GET", "/accounts", func(w http.ResponseWriter, r *http.Request) { hg.getAccounts(w, r) }},
		{"POST", "/accounts", func(w http.ResponseWriter, r *http.Request) { hg.postAccounts(w, r) }},
		{"DELETE", "/accounts/{handle}", func(w http.ResponseWriter, r *http.Request) { hg.deleteAccount(w, r) }},
		{"POST", "/search", func(w http.ResponseWriter, r *http.Request) { hg.postSearch(w, r) }},
		{"GET", "/health", func(w http.ResponseWriter, r *http.Request) { hg.getHealth(w, r) }},
	}
}

func (hg *apiHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return hg.authMW(next)
	}
}

func (hg *apiHandlerGroup) authMW(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Health is a liveness probe; it stays open.
		if r.URL.Path == healthPath {
			next.ServeHTTP(w, r)
			return
		}
		var apiKey = r.Header.Get(apiKeyHeader)
		found := false
		for _, key := range hg.cfg.Secrets.ApiKeys {
			if apiKey == key {
				found = true
			}
		}
		if !found {
			keyPart := apiKey
			if len(apiKey) > 4 {
				keyPart = apiKey[:4] + "..."
			}
			hg.logger.Warnf("API request with missing or invalid key '%s': %s", keyPart, r.URL.Path)
			writeErrorResponse(w, badApiKeyStr, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (hg *apiHandlerGroup) getRecentPosts(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling GET %s", r.URL.Path)

	hours := hg.cfg.RetentionHours
	if hours <= 0 {
		hours = defaultRecentHours
	}
	if hoursStr := r.URL.Query().Get("hours"); hoursStr != "" {
		val, err := strconv.Atoi(hoursStr)
		if err != nil || val < 1 {
			writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
			return
		}
		hours = val
	}
	handle := shared.NormalizeHandle(r.URL.Query().Get("handle"))

	posts, err := hg.repo.GetRecentPosts(hours, handle)
	if err != nil {
		hg.logger.Errorf("Failed to get recent posts: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	resp := make([]dto.Post, 0, len(posts))
	for _, p := range posts {
		resp = append(resp, hg.convertPost(p))
	}
	writeJsonResponse(hg.logger, w, resp)
}

func (hg *apiHandlerGroup) getAccounts(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling GET %s", r.URL.Path)

	activeOnly := r.URL.Query().Get("active_only") == "true"
	accounts, err := hg.repo.GetAccounts(activeOnly)
	if err != nil {
		hg.logger.Errorf("Failed to get accounts: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	resp := make([]dto.Account, 0, len(accounts))
	for _, a := range accounts {
		resp = append(resp, dto.Account{
			Handle:      a.Handle,
			DisplayName: a.DisplayName,
			IsActive:    a.IsActive,
			LastChecked: a.LastChecked,
			CreatedAt:   a.CreatedAt,
		})
	}
	writeJsonResponse(hg.logger, w, resp)
}

func (hg *apiHandlerGroup) postAccounts(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling POST %s", r.URL.Path)

	body := readBody(hg.logger, w, r)
	if body == nil {
		return
	}
	var req dto.AddAccount
	if err := json.Unmarshal(body, &req); err != nil {
		hg.logger.Warnf("Failed to parse account request: %v", err)
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	handle := shared.NormalizeHandle(req.Handle)
	if err := shared.ValidateHandle(handle); err != nil {
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}

	isNew, err := hg.repo.AddAccountIfNotExist(handle, req.DisplayName)
	if err != nil {
		hg.logger.Errorf("Failed to add account @%s: %v", handle, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	status := http.StatusOK
	if isNew {
		hg.logger.Infof("Added monitored account @%s", handle)
		status = http.StatusCreated
	}

	acct, err := hg.repo.GetAccount(handle)
	if err != nil || acct == nil {
		hg.logger.Errorf("Failed to read back account @%s: %v", handle, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	writeJsonResponseStatus(hg.logger, w, status, dto.Account{
		Handle:      acct.Handle,
		DisplayName: acct.DisplayName,
		IsActive:    acct.IsActive,
		LastChecked: acct.LastChecked,
		CreatedAt:   acct.CreatedAt,
	})
}

func (hg *apiHandlerGroup) deleteAccount(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling DELETE %s", r.URL.Path)

	handle := shared.NormalizeHandle(mux.Vars(r)["handle"])
	acct, err := hg.repo.GetAccount(handle)
	if err != nil {
		hg.logger.Errorf("Failed to get account @%s: %v", handle, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if acct == nil {
		writeErrorResponse(w, notFoundStr, http.StatusNotFound)
		return
	}

	// Deactivate, don't delete: the account's posts stay queryable.
	if err = hg.repo.SetAccountActive(handle, false); err != nil {
		hg.logger.Errorf("Failed to deactivate account @%s: %v", handle, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	hg.logger.Infof("Deactivated monitored account @%s", handle)
	w.WriteHeader(http.StatusNoContent)
}

func (hg *apiHandlerGroup) postSearch(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling POST %s", r.URL.Path)

	body := readBody(hg.logger, w, r)
	if body == nil {
		return
	}
	var req dto.SearchRequest
	if err := json.Unmarshal(body, &req); err != nil || req.Query == "" {
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}

	results, err := hg.searcher.Search(r.Context(), req.Query, req.MaxCount)
	if err != nil {
		hg.logger.Errorf("Keyword search '%s' failed: %v", req.Query, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}

	resp := dto.SearchResponse{Query: req.Query, Results: make([]dto.SearchResult, 0, len(results))}
	for _, sr := range results {
		resp.Results = append(resp.Results, dto.SearchResult{
			PostId:    sr.Post.PostId,
			Handle:    sr.Post.Handle,
			Text:      sr.Post.Text,
			Link:      sr.Post.Link,
			PostedAt:  hg.timeFmt.Format(sr.Post.PostedAt),
			Summary:   sr.Enrichment.Summary,
			Category:  sr.Enrichment.Category,
			Urgency:   sr.Enrichment.Urgency,
			Sentiment: sr.Enrichment.Sentiment,
			Degraded:  sr.Enrichment.Degraded,
		})
	}
	writeJsonResponse(hg.logger, w, resp)
}

func (hg *apiHandlerGroup) getHealth(w http.ResponseWriter, r *http.Request) {

	st := hg.scheduler.Status()
	status := "ok"
	if !st.Running || !st.LastCycleOk {
		status = "degraded"
	}
	resp := dto.Health{
		Status:         status,
		Running:        st.Running,
		LastCycleStart: hg.formatIfSet(st.LastCycleStart),
		LastCycleEnd:   hg.formatIfSet(st.LastCycleEnd),
		LastCycleOk:    st.LastCycleOk,
		Accounts:       make([]dto.AccountHealth, 0, len(st.Accounts)),
	}
	for _, as := range st.Accounts {
		resp.Accounts = append(resp.Accounts, dto.AccountHealth{
			Handle:     as.Handle,
			LastPolled: hg.formatIfSet(as.LastPolled),
			Outcome:    as.Outcome,
		})
	}
	writeJsonResponse(hg.logger, w, resp)
}

func (hg *apiHandlerGroup) formatIfSet(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return hg.timeFmt.Format(t)
}

func (hg *apiHandlerGroup) convertPost(p *dal.Post) dto.Post {
	return dto.Post{
		PostId:    p.PostId,
		Handle:    p.Handle,
		Text:      p.Text,
		Link:      p.Link,
		PostedAt:  hg.timeFmt.Format(p.PostedAt),
		PostedRel: hg.timeFmt.Relative(p.PostedAt),
		Enriched:  p.Enriched,
		Summary:   p.Summary,
		Category:  p.Category,
		Urgency:   p.Urgency,
		Sentiment: p.Sentiment,
		AlertSent: p.AlertSent,
	}
}
