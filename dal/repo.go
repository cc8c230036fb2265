package dal

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mattn/go-sqlite3"

	"post_sentinel/shared"
)

const schemaVer = 1

//go:embed scripts/*
var scripts embed.FS

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_repo.go -package mocks post_sentinel/dal IRepo

type IRepo interface {
	InitUpdateDb()
	AddAccountIfNotExist(handle, displayName string) (isNew bool, err error)
	GetAccount(handle string) (*Account, error)
	GetAccounts(activeOnly bool) ([]*Account, error)
	SetAccountActive(handle string, active bool) error
	UpdateAccountChecked(handle string, when time.Time) error
	AddPostIfNew(post *Post) (isNew bool, err error)
	IsPostKnown(postId string) (bool, error)
	UpdatePostEnrichment(postId, summary, category string, urgency int, sentiment float64) error
	GetRecentPosts(hours int, handle string) ([]*Post, error)
	GetPostsMissingEnrichment(olderThan time.Time, maxCount int) ([]*Post, error)
	TryReserveAlert(postId string) (reserved bool, err error)
	ClearAlertReservation(postId string) error
	MarkAlertSent(postId string) error
	DeletePostsScrapedBefore(cutoff time.Time) (int, error)
}

type Repo struct {
	cfg    *shared.Config
	logger shared.ILogger
	db     *sql.DB
	muDb   sync.RWMutex
}

func NewRepo(cfg *shared.Config, logger shared.ILogger) IRepo {

	var err error
	var db *sql.DB

	// https://phiresky.github.io/blog/2020/sqlite-performance-tuning/
	// _synchronous=1 is "normal"
	cstr := "file:%s?cache=shared&mode=rwc&_journal_mode=WAL&_synchronous=1&_busy_timeout=5000"
	db, err = sql.Open("sqlite3", fmt.Sprintf(cstr, cfg.DbFile))
	if err != nil {
		logger.Errorf("Failed to open/create DB file: %s: %v", cfg.DbFile, err)
		panic(err)
	}

	repo := Repo{
		cfg:    cfg,
		logger: logger,
		db:     db,
	}

	return &repo
}

func (repo *Repo) InitUpdateDb() {

	dbVer := 0
	sysParamsExists := false
	var err error
	var rows *sql.Rows

	rows, err = repo.db.Query("SELECT name FROM sqlite_master WHERE type='table' AND name='sys_params'")
	if err != nil {
		repo.logger.Errorf("Failed to check if 'sys_params' table exists: %v", err)
		panic(err)
	}
	for rows.Next() {
		sysParamsExists = true
	}
	_ = rows.Close()
	if !sysParamsExists {
		repo.logger.Printf("Database appears to be empty; current schema version is %d", schemaVer)
	} else {
		row := repo.db.QueryRow("SELECT val FROM sys_params WHERE name='schema_ver'")
		if err = row.Scan(&dbVer); err != nil {
			repo.logger.Errorf("Failed to query schema version: %v", err)
			panic(err)
		}
		repo.logger.Printf("Database is at version %d; current schema version is %d", dbVer, schemaVer)
	}
	for i := dbVer; i < schemaVer; i += 1 {
		nextVer := i + 1
		fn := fmt.Sprintf("scripts/create-%02d.sql", nextVer)
		repo.logger.Printf("Running %s", fn)
		var sqlBytes []byte
		if sqlBytes, err = scripts.ReadFile(fn); err != nil {
			repo.logger.Errorf("Failed to read init script %s: %v", fn, err)
			panic(err)
		}
		sqlStr := string(sqlBytes)
		if _, err = repo.db.Exec(sqlStr); err != nil {
			repo.logger.Errorf("Failed to execute init script %s: %v", fn, err)
			panic(err)
		}
		_, err = repo.db.Exec("UPDATE sys_params SET val=? WHERE name='schema_ver'", nextVer)
		if err != nil {
			repo.logger.Errorf("Failed to update schema_ver to %d: %v", nextVer, err)
			panic(err)
		}
	}
}

func (repo *Repo) AddAccountIfNotExist(handle, displayName string) (isNew bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	if displayName == "" {
		displayName = handle
	}

	isNew = true
	_, err = repo.db.Exec(`INSERT INTO accounts (handle, display_name, is_active, created_at)
		VALUES(?, ?, 1, ?)`,
		shared.NormalizeHandle(handle), displayName, time.Now().UTC())
	if err == nil {
		return
	}
	// Duplicate key: account with this handle already exists
	if sqliteErr, ok := err.(sqlite3.Error); ok {
		if sqliteErr.Code == 19 && sqliteErr.ExtendedCode == 2067 {
			isNew = false
			err = nil
			return
		}
	}
	return
}

func (repo *Repo) GetAccount(handle string) (*Account, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	return repo.getAccount(handle)
}

func (repo *Repo) getAccount(handle string) (*Account, error) {

	row := repo.db.QueryRow(
		`SELECT id, handle, display_name, is_active, last_checked, created_at
		FROM accounts WHERE handle=?`, shared.NormalizeHandle(handle))
	var err error
	var res Account
	var lastChecked sql.NullTime
	err = row.Scan(&res.Id, &res.Handle, &res.DisplayName, &res.IsActive, &lastChecked, &res.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		} else {
			return nil, err
		}
	}
	if lastChecked.Valid {
		res.LastChecked = lastChecked.Time
	}
	return &res, nil
}

func (repo *Repo) GetAccounts(activeOnly bool) ([]*Account, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	query := `SELECT id, handle, display_name, is_active, last_checked, created_at FROM accounts`
	if activeOnly {
		query += ` WHERE is_active=1`
	}
	query += ` ORDER BY handle ASC`
	rows, err := repo.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]*Account, 0)
	for rows.Next() {
		a := Account{}
		var lastChecked sql.NullTime
		err = rows.Scan(&a.Id, &a.Handle, &a.DisplayName, &a.IsActive, &lastChecked, &a.CreatedAt)
		if err != nil {
			return nil, err
		}
		if lastChecked.Valid {
			a.LastChecked = lastChecked.Time
		}
		res = append(res, &a)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func (repo *Repo) SetAccountActive(handle string, active bool) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	res, err := repo.db.Exec(`UPDATE accounts SET is_active=? WHERE handle=?`,
		active, shared.NormalizeHandle(handle))
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("no such account: %s", handle)
	}
	return nil
}

func (repo *Repo) UpdateAccountChecked(handle string, when time.Time) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE accounts SET last_checked=? WHERE handle=?`,
		when.UTC(), shared.NormalizeHandle(handle))
	return err
}

// AddPostIfNew inserts the post; the unique constraint on post_id is the dedup
// authority. A duplicate insert reports isNew=false with no error.
func (repo *Repo) AddPostIfNew(post *Post) (isNew bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	isNew = true
	_, err = repo.db.Exec(`INSERT INTO posts
		(post_id, handle, txt, link, posted_at, scraped_at, alert_sent)
		VALUES (?, ?, ?, ?, ?, ?, 0)`,
		post.PostId, shared.NormalizeHandle(post.Handle), post.Text, post.Link,
		post.PostedAt.UTC(), post.ScrapedAt.UTC())

	if err == nil {
		return
	}

	// Duplicate key: post with this platform id already exists
	if sqliteErr, ok := err.(sqlite3.Error); ok {
		if sqliteErr.Code == 19 && sqliteErr.ExtendedCode == 2067 {
			isNew = false
			err = nil
			return
		}
	}

	return
}

// IsPostKnown is an advisory pre-check only; callers must still treat
// AddPostIfNew as the authority under concurrency.
func (repo *Repo) IsPostKnown(postId string) (bool, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT COUNT(*) FROM posts WHERE post_id=?`, postId)
	var count int
	if err := row.Scan(&count); err != nil {
		return false, err
	}
	return count != 0, nil
}

func (repo *Repo) UpdatePostEnrichment(postId, summary, category string, urgency int, sentiment float64) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE posts SET summary=?, category=?, urgency=?, sentiment=?
		WHERE post_id=?`, summary, category, urgency, sentiment, postId)
	return err
}

func (repo *Repo) GetRecentPosts(hours int, handle string) ([]*Post, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	cutoff := time.Now().UTC().Add(-time.Duration(hours) * time.Hour)
	query := `SELECT id, post_id, handle, txt, link, posted_at, scraped_at,
			summary, category, urgency, sentiment, alert_sent
		FROM posts WHERE scraped_at>=?`
	args := []any{cutoff}
	if handle != "" {
		query += ` AND handle=?`
		args = append(args, shared.NormalizeHandle(handle))
	}
	query += ` ORDER BY posted_at DESC`
	rows, err := repo.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return readPosts(rows)
}

func (repo *Repo) GetPostsMissingEnrichment(olderThan time.Time, maxCount int) ([]*Post, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT id, post_id, handle, txt, link, posted_at, scraped_at,
			summary, category, urgency, sentiment, alert_sent
		FROM posts WHERE summary IS NULL AND scraped_at<? ORDER BY scraped_at ASC LIMIT ?`,
		olderThan.UTC(), maxCount)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return readPosts(rows)
}

func readPosts(rows *sql.Rows) ([]*Post, error) {
	var err error
	res := make([]*Post, 0)
	for rows.Next() {
		p := Post{}
		var summary, category sql.NullString
		var urgency sql.NullInt64
		var sentiment sql.NullFloat64
		err = rows.Scan(&p.Id, &p.PostId, &p.Handle, &p.Text, &p.Link, &p.PostedAt, &p.ScrapedAt,
			&summary, &category, &urgency, &sentiment, &p.AlertSent)
		if err != nil {
			return nil, err
		}
		if summary.Valid {
			p.Enriched = true
			p.Summary = summary.String
			p.Category = category.String
			p.Urgency = int(urgency.Int64)
			p.Sentiment = sentiment.Float64
		}
		res = append(res, &p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// TryReserveAlert flips alert_sent 0->1; under concurrent callers for the same
// post exactly one sees reserved=true.
func (repo *Repo) TryReserveAlert(postId string) (reserved bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	res, err := repo.db.Exec(`UPDATE posts SET alert_sent=1 WHERE post_id=? AND alert_sent=0`, postId)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

func (repo *Repo) ClearAlertReservation(postId string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE posts SET alert_sent=0 WHERE post_id=?`, postId)
	return err
}

// MarkAlertSent is idempotent; marking an already-marked post is a no-op.
func (repo *Repo) MarkAlertSent(postId string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE posts SET alert_sent=1 WHERE post_id=?`, postId)
	return err
}

func (repo *Repo) DeletePostsScrapedBefore(cutoff time.Time) (int, error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	res, err := repo.db.Exec(`DELETE FROM posts WHERE scraped_at<?`, cutoff.UTC())
	if err != nil {
		return 0, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(affected), nil
}
