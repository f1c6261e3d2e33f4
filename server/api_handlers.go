package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"wren/dal"
	"wren/dto"
	"wren/logic"
	"wren/shared"
)

const defaultPageSize = 20

type apiHandlerGroup struct {
	cfg    *shared.Config
	logger shared.ILogger
	repo   dal.IRepo
	udir   logic.IUserDirectory
}

func NewApiHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	udir logic.IUserDirectory,
) IHandlerGroup {
	res := apiHandlerGroup{
		cfg:    cfg,
		logger: logger,
		repo:   repo,
		udir:   udir,
	}
	return &res
}

func (hg *apiHandlerGroup) Prefix() string {
	return "/api"
}

func (hg *apiHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"POST", "/users", func(w http.ResponseWriter, r *http.Request) { hg.postUsers(w, r) }},
		{"GET", "/users/{user}/notifications", func(w http.ResponseWriter, r *http.Request) { hg.getNotifications(w, r) }},
		{"POST", "/notifications/{id}/read", func(w http.ResponseWriter, r *http.Request) { hg.postNotificationRead(w, r) }},
		{"GET", "/timeline", func(w http.ResponseWriter, r *http.Request) { hg.getTimeline(w, r) }},
		{"POST", "/users/{user}/push-subscriptions", func(w http.ResponseWriter, r *http.Request) { hg.postPushSubscription(w, r) }},
		{"DELETE", "/push-subscriptions/{id}", func(w http.ResponseWriter, r *http.Request) { hg.deletePushSubscription(w, r) }},
	}
}

func (hg *apiHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return hg.authMW(next)
	}
}

func (hg *apiHandlerGroup) authMW(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
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

func (hg *apiHandlerGroup) postUsers(w http.ResponseWriter, r *http.Request) {

	hg.logger.Info("POST /api/users: Request received")

	bodyBytes := readBody(hg.logger, w, r)
	if bodyBytes == nil {
		return
	}
	var req dto.NewUserReq
	if err := json.Unmarshal(bodyBytes, &req); err != nil || req.Handle == "" {
		writeErrorResponse(w, "Body must be JSON with a non-empty 'handle'", http.StatusBadRequest)
		return
	}

	user, err := hg.udir.CreateUser(req.Handle)
	if err != nil {
		hg.logger.Errorf("Failed to create user '%s': %v", req.Handle, err)
		writeErrorResponse(w, err.Error(), http.StatusConflict)
		return
	}

	resp := dto.UserResp{
		Id:        user.Id,
		Handle:    user.Handle,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
	writeJsonResponse(hg.logger, w, &resp)
}

func (hg *apiHandlerGroup) getNotifications(w http.ResponseWriter, r *http.Request) {

	userName := mux.Vars(r)["user"]
	user, err := hg.repo.GetUserByHandle(userName)
	if err != nil {
		hg.logger.Errorf("Failed to look up user '%s': %v", userName, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if user == nil {
		writeErrorResponse(w, "No such user", http.StatusNotFound)
		return
	}

	offset, limit := getPaging(r)
	notifs, total, err := hg.repo.GetNotificationsPage(user.Id, offset, limit)
	if err != nil {
		hg.logger.Errorf("Failed to get notifications of '%s': %v", userName, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}

	resp := dto.NotificationsPageResp{Total: total, Notifications: []*dto.NotificationResp{}}
	for _, n := range notifs {
		// Moniker of the actor who triggered the notification, if we still
		// have the actor on record
		actorMoniker := ""
		if actor, actorErr := hg.repo.GetActorById(n.ActorId); actorErr == nil && actor != nil {
			actorMoniker = logic.ActorMoniker(actor)
		}
		resp.Notifications = append(resp.Notifications, &dto.NotificationResp{
			Id:        n.Id,
			Kind:      n.Kind,
			ActorId:   n.ActorId,
			Actor:     actorMoniker,
			PostId:    n.PostId,
			Preview:   n.Preview,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt.Format(time.RFC3339),
		})
	}
	writeJsonResponse(hg.logger, w, &resp)
}

func (hg *apiHandlerGroup) postNotificationRead(w http.ResponseWriter, r *http.Request) {

	id, convErr := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if convErr != nil {
		writeErrorResponse(w, "Invalid notification id", http.StatusBadRequest)
		return
	}
	if err := hg.repo.MarkNotificationRead(id); err != nil {
		hg.logger.Errorf("Failed to mark notification %d read: %v", id, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	writeJsonResponse(hg.logger, w, "OK")
}

func (hg *apiHandlerGroup) getTimeline(w http.ResponseWriter, r *http.Request) {

	offset, limit := getPaging(r)
	items, err := hg.repo.GetTimelinePage(offset, limit)
	if err != nil {
		hg.logger.Errorf("Failed to get timeline page: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}

	resp := []*dto.TimelineItemResp{}
	for _, ti := range items {
		resp = append(resp, &dto.TimelineItemResp{
			Id:        ti.Id,
			Kind:      ti.Kind,
			ActorId:   ti.ActorId,
			PostId:    ti.PostId,
			RepostId:  ti.RepostId,
			CreatedAt: ti.CreatedAt.Format(time.RFC3339),
		})
	}
	writeJsonResponse(hg.logger, w, resp)
}

func (hg *apiHandlerGroup) postPushSubscription(w http.ResponseWriter, r *http.Request) {

	userName := mux.Vars(r)["user"]
	user, err := hg.repo.GetUserByHandle(userName)
	if err != nil {
		hg.logger.Errorf("Failed to look up user '%s': %v", userName, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if user == nil {
		writeErrorResponse(w, "No such user", http.StatusNotFound)
		return
	}

	bodyBytes := readBody(hg.logger, w, r)
	if bodyBytes == nil {
		return
	}
	var req dto.PushSubscriptionReq
	if err = json.Unmarshal(bodyBytes, &req); err != nil ||
		req.Endpoint == "" || req.P256dh == "" || req.Auth == "" {
		writeErrorResponse(w, "Body must be JSON with 'endpoint', 'p256dh' and 'auth'", http.StatusBadRequest)
		return
	}

	sub := dal.PushSubscription{
		UserId:   user.Id,
		Endpoint: req.Endpoint,
		P256dh:   req.P256dh,
		Auth:     req.Auth,
	}
	if err = hg.repo.AddPushSubscription(&sub); err != nil {
		hg.logger.Errorf("Failed to store push subscription for '%s': %v", userName, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	writeJsonResponse(hg.logger, w, "OK")
}

func (hg *apiHandlerGroup) deletePushSubscription(w http.ResponseWriter, r *http.Request) {

	id, convErr := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if convErr != nil {
		writeErrorResponse(w, "Invalid subscription id", http.StatusBadRequest)
		return
	}
	if err := hg.repo.RemovePushSubscription(id); err != nil {
		hg.logger.Errorf("Failed to remove push subscription %d: %v", id, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	writeJsonResponse(hg.logger, w, "OK")
}

func getPaging(r *http.Request) (offset, limit int) {
	offset = 0
	limit = defaultPageSize
	if str := r.URL.Query().Get("offset"); str != "" {
		if val, err := strconv.Atoi(str); err == nil && val >= 0 {
			offset = val
		}
	}
	if str := r.URL.Query().Get("limit"); str != "" {
		if val, err := strconv.Atoi(str); err == nil && val > 0 && val <= 100 {
			limit = val
		}
	}
	return
}
