package dal

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/mattn/go-sqlite3"
	"wren/shared"
)

const schemaVer = 1

//go:embed scripts/*
var scripts embed.FS

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_repo.go -package mocks wren/dal IRepo

type IRepo interface {
	InitUpdateDb()
	GetNextId() uint64

	AddUser(handle, pubKey, privKey string) (*User, error)
	GetUserByHandle(handle string) (*User, error)
	GetPrivKey(handle string) (string, error)

	AddLocalActor(actor *Actor, evt *Event) error
	AddRemoteActorIfNew(actor *Actor, evt *Event) (isNew bool, err error)
	UpdateActorLogo(actorId int64, logoUri string, evt *Event) error
	GetActorByUri(uri string) (*Actor, error)
	GetActorByUserId(userId int64) (*Actor, error)
	GetActorById(id int64) (*Actor, error)

	AddPostIfNew(post *Post, images []*PostImage, ti *TimelineItem, evt *Event) (isNew bool, err error)
	GetPostByUri(uri string) (*Post, error)
	GetPostById(id int64) (*Post, error)
	GetPostImages(postId int64) ([]*PostImage, error)
	GetPostCount(userId int64) (uint, error)

	AddFollowIfNew(follow *Follow, evt *Event) (isNew bool, err error)
	RemoveFollow(followerId, followingId int64, evt *Event) (removed bool, err error)
	GetFollowerCount(actorId int64) (uint, error)

	AddLikeIfNew(like *Like, evt *Event) (isNew bool, err error)
	GetLikeByActivityUri(activityUri string) (*Like, error)
	RemoveLikeByActivityUri(activityUri string, evt *Event) (removed bool, err error)

	AddRepostIfNew(repost *Repost, ti *TimelineItem, evt *Event) (isNew bool, err error)
	GetRepostByActivityUri(activityUri string) (*Repost, error)
	RemoveRepostByActivityUri(activityUri string, evt *Event) (removed bool, err error)

	AddReactionIfNew(reaction *Reaction, evt *Event) (isNew bool, err error)
	GetReactionByActivityUri(activityUri string) (*Reaction, error)

	AddNotification(notif *Notification, evt *Event) error
	GetNotificationsPage(userId int64, offset, limit int) ([]*Notification, int, error)
	MarkNotificationRead(id int64) error

	AddPushSubscription(sub *PushSubscription) error
	RemovePushSubscription(id int64) error
	GetPushSubscriptions(userId int64) ([]*PushSubscription, error)

	GetTimelinePage(offset, limit int) ([]*TimelineItem, error)
}

type Repo struct {
	cfg    *shared.Config
	logger shared.ILogger
	db     *sql.DB
	muDb   sync.RWMutex
	muId   sync.Mutex
	nextId uint64
}

func NewRepo(cfg *shared.Config, logger shared.ILogger) IRepo {

	var err error
	var db *sql.DB

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
		nextId: uint64(time.Now().UnixNano()),
	}

	return &repo
}

func (repo *Repo) GetNextId() uint64 {
	repo.muId.Lock()
	res := repo.nextId + 1
	repo.nextId = res
	repo.muId.Unlock()
	return res
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

// A unique or primary key violation means someone already applied this
// logical change; callers treat it as success, not failure.
func isDupErr(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		if sqliteErr.Code == 19 && (sqliteErr.ExtendedCode == 2067 || sqliteErr.ExtendedCode == 1555) {
			return true
		}
	}
	return false
}

func nullIfEmpty(str string) any {
	if str == "" {
		return nil
	}
	return str
}

func nullIfZero(val int64) any {
	if val == 0 {
		return nil
	}
	return val
}

func appendEvent(tx *sql.Tx, evt *Event, aggregateId int64, state any) error {
	if evt == nil {
		return nil
	}
	evt.AggregateId = strconv.FormatInt(aggregateId, 10)
	evt.AggregateState = marshalOrEmpty(state)
	_, err := tx.Exec(`INSERT INTO events
		(event_id, aggregate_name, aggregate_id, event_name, aggregate_state, event_payload, occurred_at)
		VALUES(?, ?, ?, ?, ?, ?, ?)`,
		evt.EventId, evt.AggregateName, evt.AggregateId, evt.EventName,
		evt.AggregateState, evt.EventPayload, evt.OccurredAt)
	return err
}

func (repo *Repo) AddUser(handle, pubKey, privKey string) (*User, error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	user := User{Handle: handle, CreatedAt: time.Now().UTC(), PubKey: pubKey}
	res, err := repo.db.Exec(`INSERT INTO users (handle, created_at, pubkey, privkey)
		VALUES(?, ?, ?, ?)`,
		user.Handle, user.CreatedAt, pubKey, privKey)
	if err != nil {
		return nil, err
	}
	user.Id, _ = res.LastInsertId()
	return &user, nil
}

func (repo *Repo) GetUserByHandle(handle string) (*User, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT id, handle, created_at, pubkey FROM users WHERE handle=?`, handle)
	return scanUser(row)
}

func scanUser(row *sql.Row) (*User, error) {
	var res User
	err := row.Scan(&res.Id, &res.Handle, &res.CreatedAt, &res.PubKey)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &res, nil
}

func (repo *Repo) GetPrivKey(handle string) (string, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT privkey FROM users WHERE handle=?`, handle)
	var err error
	var res string
	err = row.Scan(&res)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", err
	}
	return res, nil
}

func (repo *Repo) AddLocalActor(actor *Actor, evt *Event) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	tx, err := repo.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`INSERT INTO actors (uri, inbox_url, logo_uri, kind, user_id, url, username)
		VALUES(?, ?, ?, ?, ?, ?, ?)`,
		actor.Uri, actor.InboxUrl, actor.LogoUri, ActorLocal, actor.UserId, actor.Url, actor.Username)
	if err != nil {
		return err
	}
	actor.Id, _ = res.LastInsertId()
	actor.Kind = ActorLocal
	if err = appendEvent(tx, evt, actor.Id, actor); err != nil {
		return err
	}
	return tx.Commit()
}

func (repo *Repo) AddRemoteActorIfNew(actor *Actor, evt *Event) (isNew bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	tx, err := repo.db.Begin()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	var res sql.Result
	res, err = tx.Exec(`INSERT INTO actors (uri, inbox_url, logo_uri, kind, user_id, url, username)
		VALUES(?, ?, ?, ?, NULL, ?, ?)`,
		actor.Uri, actor.InboxUrl, actor.LogoUri, ActorRemote, actor.Url, actor.Username)
	if err != nil {
		if isDupErr(err) {
			return false, nil
		}
		return false, err
	}
	actor.Id, _ = res.LastInsertId()
	actor.Kind = ActorRemote
	if err = appendEvent(tx, evt, actor.Id, actor); err != nil {
		return false, err
	}
	return true, tx.Commit()
}

func (repo *Repo) UpdateActorLogo(actorId int64, logoUri string, evt *Event) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	tx, err := repo.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err = tx.Exec(`UPDATE actors SET logo_uri=? WHERE id=?`, logoUri, actorId); err != nil {
		return err
	}
	if err = appendEvent(tx, evt, actorId, map[string]string{"logoUri": logoUri}); err != nil {
		return err
	}
	return tx.Commit()
}

const actorCols = `id, uri, inbox_url, logo_uri, kind, user_id, url, username`

func (repo *Repo) GetActorByUri(uri string) (*Actor, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT `+actorCols+` FROM actors WHERE uri=?`, uri)
	return scanActor(row)
}

func (repo *Repo) GetActorByUserId(userId int64) (*Actor, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT `+actorCols+` FROM actors WHERE user_id=?`, userId)
	return scanActor(row)
}

func (repo *Repo) GetActorById(id int64) (*Actor, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT `+actorCols+` FROM actors WHERE id=?`, id)
	return scanActor(row)
}

func scanActor(row *sql.Row) (*Actor, error) {
	var res Actor
	var userId sql.NullInt64
	err := row.Scan(&res.Id, &res.Uri, &res.InboxUrl, &res.LogoUri, &res.Kind, &userId, &res.Url, &res.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	res.UserId = userId.Int64
	return &res, nil
}

func (repo *Repo) AddPostIfNew(post *Post, images []*PostImage, ti *TimelineItem, evt *Event) (isNew bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	tx, err := repo.db.Begin()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	var res sql.Result
	res, err = tx.Exec(`INSERT INTO posts (uri, actor_id, user_id, kind, content, in_reply_to_uri, created_at)
		VALUES(?, ?, ?, ?, ?, ?, ?)`,
		nullIfEmpty(post.Uri), post.ActorId, nullIfZero(post.UserId), post.Kind,
		post.Content, post.InReplyToUri, post.CreatedAt)
	if err != nil {
		if isDupErr(err) {
			return false, nil
		}
		return false, err
	}
	post.Id, _ = res.LastInsertId()

	for _, img := range images {
		img.PostId = post.Id
		res, err = tx.Exec(`INSERT INTO post_images (post_id, url, alt) VALUES(?, ?, ?)`,
			img.PostId, img.Url, img.Alt)
		if err != nil {
			return false, err
		}
		img.Id, _ = res.LastInsertId()
	}

	if ti != nil {
		ti.PostId = post.Id
		res, err = tx.Exec(`INSERT INTO timeline_items (kind, actor_id, post_id, repost_id, created_at)
			VALUES(?, ?, ?, NULL, ?)`,
			TimelinePost, ti.ActorId, ti.PostId, ti.CreatedAt)
		if err != nil {
			return false, err
		}
		ti.Id, _ = res.LastInsertId()
		ti.Kind = TimelinePost
	}

	if err = appendEvent(tx, evt, post.Id, post); err != nil {
		return false, err
	}
	return true, tx.Commit()
}

const postCols = `id, uri, actor_id, user_id, kind, content, in_reply_to_uri, created_at`

func (repo *Repo) GetPostByUri(uri string) (*Post, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT `+postCols+` FROM posts WHERE uri=?`, uri)
	return scanPost(row)
}

func (repo *Repo) GetPostById(id int64) (*Post, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT `+postCols+` FROM posts WHERE id=?`, id)
	return scanPost(row)
}

func scanPost(row *sql.Row) (*Post, error) {
	var res Post
	var uri sql.NullString
	var userId sql.NullInt64
	err := row.Scan(&res.Id, &uri, &res.ActorId, &userId, &res.Kind, &res.Content,
		&res.InReplyToUri, &res.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	res.Uri = uri.String
	res.UserId = userId.Int64
	return &res, nil
}

func (repo *Repo) GetPostImages(postId int64) ([]*PostImage, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT id, post_id, url, alt FROM post_images WHERE post_id=? ORDER BY id`, postId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := make([]*PostImage, 0)
	for rows.Next() {
		img := PostImage{}
		if err = rows.Scan(&img.Id, &img.PostId, &img.Url, &img.Alt); err != nil {
			return nil, err
		}
		res = append(res, &img)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func (repo *Repo) GetPostCount(userId int64) (uint, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT COUNT(*) FROM posts WHERE user_id=?`, userId)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return uint(count), nil
}

func (repo *Repo) AddFollowIfNew(follow *Follow, evt *Event) (isNew bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	tx, err := repo.db.Begin()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO follows (follower_id, following_id, activity_uri, created_at)
		VALUES(?, ?, ?, ?)`,
		follow.FollowerId, follow.FollowingId, follow.ActivityUri, follow.CreatedAt)
	if err != nil {
		if isDupErr(err) {
			return false, nil
		}
		return false, err
	}
	if err = appendEvent(tx, evt, follow.FollowerId, follow); err != nil {
		return false, err
	}
	return true, tx.Commit()
}

func (repo *Repo) RemoveFollow(followerId, followingId int64, evt *Event) (removed bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	tx, err := repo.db.Begin()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`DELETE FROM follows WHERE follower_id=? AND following_id=?`,
		followerId, followingId)
	if err != nil {
		return false, err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		// Nothing to undo; fine under out-of-order delivery
		return false, nil
	}
	if err = appendEvent(tx, evt, followerId, nil); err != nil {
		return false, err
	}
	return true, tx.Commit()
}

func (repo *Repo) GetFollowerCount(actorId int64) (uint, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT COUNT(*) FROM follows WHERE following_id=?`, actorId)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return uint(count), nil
}

func (repo *Repo) AddLikeIfNew(like *Like, evt *Event) (isNew bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	tx, err := repo.db.Begin()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	var res sql.Result
	res, err = tx.Exec(`INSERT INTO likes (actor_id, post_id, activity_uri, created_at)
		VALUES(?, ?, ?, ?)`,
		like.ActorId, like.PostId, nullIfEmpty(like.ActivityUri), like.CreatedAt)
	if err != nil {
		if isDupErr(err) {
			return false, nil
		}
		return false, err
	}
	like.Id, _ = res.LastInsertId()
	if err = appendEvent(tx, evt, like.Id, like); err != nil {
		return false, err
	}
	return true, tx.Commit()
}

func (repo *Repo) GetLikeByActivityUri(activityUri string) (*Like, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT id, actor_id, post_id, activity_uri, created_at
		FROM likes WHERE activity_uri=?`, activityUri)
	var res Like
	var uri sql.NullString
	err := row.Scan(&res.Id, &res.ActorId, &res.PostId, &uri, &res.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	res.ActivityUri = uri.String
	return &res, nil
}

func (repo *Repo) RemoveLikeByActivityUri(activityUri string, evt *Event) (removed bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	tx, err := repo.db.Begin()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`DELETE FROM likes WHERE activity_uri=?`, activityUri)
	if err != nil {
		return false, err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return false, nil
	}
	if err = appendEvent(tx, evt, 0, nil); err != nil {
		return false, err
	}
	return true, tx.Commit()
}

func (repo *Repo) AddRepostIfNew(repost *Repost, ti *TimelineItem, evt *Event) (isNew bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	tx, err := repo.db.Begin()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	var res sql.Result
	res, err = tx.Exec(`INSERT INTO reposts (actor_id, post_id, activity_uri, created_at)
		VALUES(?, ?, ?, ?)`,
		repost.ActorId, repost.PostId, nullIfEmpty(repost.ActivityUri), repost.CreatedAt)
	if err != nil {
		if isDupErr(err) {
			return false, nil
		}
		return false, err
	}
	repost.Id, _ = res.LastInsertId()

	if ti != nil {
		ti.RepostId = repost.Id
		ti.PostId = repost.PostId
		res, err = tx.Exec(`INSERT INTO timeline_items (kind, actor_id, post_id, repost_id, created_at)
			VALUES(?, ?, ?, ?, ?)`,
			TimelineRepost, ti.ActorId, ti.PostId, ti.RepostId, ti.CreatedAt)
		if err != nil {
			return false, err
		}
		ti.Id, _ = res.LastInsertId()
		ti.Kind = TimelineRepost
	}

	if err = appendEvent(tx, evt, repost.Id, repost); err != nil {
		return false, err
	}
	return true, tx.Commit()
}

func (repo *Repo) GetRepostByActivityUri(activityUri string) (*Repost, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT id, actor_id, post_id, activity_uri, created_at
		FROM reposts WHERE activity_uri=?`, activityUri)
	var res Repost
	var uri sql.NullString
	err := row.Scan(&res.Id, &res.ActorId, &res.PostId, &uri, &res.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	res.ActivityUri = uri.String
	return &res, nil
}

func (repo *Repo) RemoveRepostByActivityUri(activityUri string, evt *Event) (removed bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	tx, err := repo.db.Begin()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	row := tx.QueryRow(`SELECT id FROM reposts WHERE activity_uri=?`, activityUri)
	var repostId int64
	if err = row.Scan(&repostId); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	if _, err = tx.Exec(`DELETE FROM reposts WHERE id=?`, repostId); err != nil {
		return false, err
	}
	// The repost's timeline item goes with it
	if _, err = tx.Exec(`DELETE FROM timeline_items WHERE repost_id=?`, repostId); err != nil {
		return false, err
	}
	if err = appendEvent(tx, evt, repostId, nil); err != nil {
		return false, err
	}
	return true, tx.Commit()
}

func (repo *Repo) AddReactionIfNew(reaction *Reaction, evt *Event) (isNew bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	tx, err := repo.db.Begin()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	var res sql.Result
	res, err = tx.Exec(`INSERT INTO reactions (actor_id, post_id, emoji, image_url, activity_uri, created_at)
		VALUES(?, ?, ?, ?, ?, ?)`,
		reaction.ActorId, reaction.PostId, reaction.Emoji, reaction.ImageUrl,
		nullIfEmpty(reaction.ActivityUri), reaction.CreatedAt)
	if err != nil {
		if isDupErr(err) {
			return false, nil
		}
		return false, err
	}
	reaction.Id, _ = res.LastInsertId()
	if err = appendEvent(tx, evt, reaction.Id, reaction); err != nil {
		return false, err
	}
	return true, tx.Commit()
}

func (repo *Repo) GetReactionByActivityUri(activityUri string) (*Reaction, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT id, actor_id, post_id, emoji, image_url, activity_uri, created_at
		FROM reactions WHERE activity_uri=?`, activityUri)
	var res Reaction
	var uri sql.NullString
	err := row.Scan(&res.Id, &res.ActorId, &res.PostId, &res.Emoji, &res.ImageUrl, &uri, &res.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	res.ActivityUri = uri.String
	return &res, nil
}

func (repo *Repo) AddNotification(notif *Notification, evt *Event) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	tx, err := repo.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`INSERT INTO notifications
		(recipient_user_id, kind, actor_id, post_id, preview, is_read, created_at)
		VALUES(?, ?, ?, ?, ?, 0, ?)`,
		notif.RecipientUserId, notif.Kind, notif.ActorId, nullIfZero(notif.PostId),
		notif.Preview, notif.CreatedAt)
	if err != nil {
		return err
	}
	notif.Id, _ = res.LastInsertId()
	if err = appendEvent(tx, evt, notif.Id, notif); err != nil {
		return err
	}
	return tx.Commit()
}

func (repo *Repo) GetNotificationsPage(userId int64, offset, limit int) ([]*Notification, int, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	var total int
	row := repo.db.QueryRow(`SELECT COUNT(*) FROM notifications WHERE recipient_user_id=?`, userId)
	if err := row.Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := repo.db.Query(`SELECT id, recipient_user_id, kind, actor_id, post_id, preview, is_read, created_at
		FROM notifications WHERE recipient_user_id=? ORDER BY id DESC LIMIT ? OFFSET ?`,
		userId, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	res := make([]*Notification, 0)
	for rows.Next() {
		n := Notification{}
		var postId sql.NullInt64
		err = rows.Scan(&n.Id, &n.RecipientUserId, &n.Kind, &n.ActorId, &postId, &n.Preview, &n.IsRead, &n.CreatedAt)
		if err != nil {
			return nil, 0, err
		}
		n.PostId = postId.Int64
		res = append(res, &n)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}
	return res, total, nil
}

func (repo *Repo) MarkNotificationRead(id int64) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE notifications SET is_read=1 WHERE id=?`, id)
	return err
}

func (repo *Repo) AddPushSubscription(sub *PushSubscription) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	res, err := repo.db.Exec(`INSERT INTO push_subscriptions (user_id, endpoint, key_p256dh, key_auth)
		VALUES(?, ?, ?, ?)
		ON CONFLICT(endpoint) DO UPDATE SET user_id=excluded.user_id,
			key_p256dh=excluded.key_p256dh, key_auth=excluded.key_auth`,
		sub.UserId, sub.Endpoint, sub.P256dh, sub.Auth)
	if err != nil {
		return err
	}
	sub.Id, _ = res.LastInsertId()
	return nil
}

func (repo *Repo) RemovePushSubscription(id int64) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`DELETE FROM push_subscriptions WHERE id=?`, id)
	return err
}

func (repo *Repo) GetPushSubscriptions(userId int64) ([]*PushSubscription, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT id, user_id, endpoint, key_p256dh, key_auth
		FROM push_subscriptions WHERE user_id=?`, userId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := make([]*PushSubscription, 0)
	for rows.Next() {
		s := PushSubscription{}
		if err = rows.Scan(&s.Id, &s.UserId, &s.Endpoint, &s.P256dh, &s.Auth); err != nil {
			return nil, err
		}
		res = append(res, &s)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func (repo *Repo) GetTimelinePage(offset, limit int) ([]*TimelineItem, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT id, kind, actor_id, post_id, repost_id, created_at
		FROM timeline_items ORDER BY id DESC LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := make([]*TimelineItem, 0)
	for rows.Next() {
		ti := TimelineItem{}
		var repostId sql.NullInt64
		if err = rows.Scan(&ti.Id, &ti.Kind, &ti.ActorId, &ti.PostId, &repostId, &ti.CreatedAt); err != nil {
			return nil, err
		}
		ti.RepostId = repostId.Int64
		res = append(res, &ti)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}
