package test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"wren/dal"
	"wren/server"
	"wren/shared"
	"wren/test/mocks"
)

const testApiKey = "test-api-key"

type apiHarness struct {
	mockRepo *mocks.MockIRepo
	mockUdir *mocks.MockIUserDirectory
	router   *mux.Router
}

func setupApiTest(t *testing.T) (*gomock.Controller, *apiHarness) {

	ctrl := gomock.NewController(t)

	cfg := &shared.Config{
		Host:    localHost,
		Secrets: shared.Secrets{ApiKeys: []string{testApiKey}},
	}
	mockLogger := mocks.NewMockILogger(ctrl)
	setupDummyLogger(mockLogger)

	h := &apiHarness{
		mockRepo: mocks.NewMockIRepo(ctrl),
		mockUdir: mocks.NewMockIUserDirectory(ctrl),
	}
	group := server.NewApiHandlerGroup(cfg, mockLogger, h.mockRepo, h.mockUdir)
	h.router = server.NewMux([]server.IHandlerGroup{group})

	return ctrl, h
}

func (h *apiHarness) serve(method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("X-API-KEY", testApiKey)
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

func TestApi_NotificationsCarryActorMoniker(t *testing.T) {

	ctrl, h := setupApiTest(t)
	defer ctrl.Finish()

	user := &dal.User{Id: 1, Handle: localName}
	notif := &dal.Notification{
		Id:              3,
		RecipientUserId: user.Id,
		Kind:            "like",
		ActorId:         20,
		PostId:          42,
		CreatedAt:       time.Now().UTC(),
	}
	actor := &dal.Actor{
		Id:       20,
		Uri:      callerUrl,
		Kind:     dal.ActorRemote,
		Username: callerName,
	}

	h.mockRepo.EXPECT().GetUserByHandle(localName).Return(user, nil)
	h.mockRepo.EXPECT().GetNotificationsPage(user.Id, 0, 20).
		Return([]*dal.Notification{notif}, 1, nil)
	h.mockRepo.EXPECT().GetActorById(notif.ActorId).Return(actor, nil)

	w := h.serve("GET", "/api/users/"+localName+"/notifications")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"actor":"@`+callerName+`@`+callerHost+`"`)
}

func TestApi_NotificationsSurviveForgottenActor(t *testing.T) {

	ctrl, h := setupApiTest(t)
	defer ctrl.Finish()

	user := &dal.User{Id: 1, Handle: localName}
	notif := &dal.Notification{
		Id:              4,
		RecipientUserId: user.Id,
		Kind:            "follow",
		ActorId:         99,
		CreatedAt:       time.Now().UTC(),
	}

	h.mockRepo.EXPECT().GetUserByHandle(localName).Return(user, nil)
	h.mockRepo.EXPECT().GetNotificationsPage(user.Id, 0, 20).
		Return([]*dal.Notification{notif}, 1, nil)
	h.mockRepo.EXPECT().GetActorById(notif.ActorId).Return(nil, nil)

	w := h.serve("GET", "/api/users/"+localName+"/notifications")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"kind":"follow"`)
}

func TestApi_MissingKeyRejected(t *testing.T) {

	ctrl, h := setupApiTest(t)
	defer ctrl.Finish()

	req := httptest.NewRequest("GET", "/api/users/"+localName+"/notifications", nil)
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "401"))
}
