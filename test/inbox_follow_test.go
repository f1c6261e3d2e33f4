package test

import (
	"crypto/rand"
	"crypto/rsa"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"wren/dal"
	"wren/dto"
)

func makeFollowBody(activityId string) []byte {
	body := `{
		"@context": "https://www.w3.org/ns/activitystreams",
		"id": "%s",
		"type": "Follow",
		"actor": "%s",
		"object": "https://%s/u/%s"
	}`
	return []byte(fmt.Sprintf(body, activityId, callerUrl, localHost, localName))
}

func TestFollow_NewFollowerAccepted(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	activityId := "https://" + callerHost + "/act/follow-1"
	privKey, _ := rsa.GenerateKey(rand.Reader, 2048)

	h.expectLocalUserLookup()
	h.expectUpsertSender()

	followMatcher := gomock.Cond(func(follow *dal.Follow) bool {
		return follow.FollowerId == h.senderActor.Id &&
			follow.FollowingId == h.localActor.Id &&
			follow.ActivityUri == activityId
	})
	h.mockRepo.EXPECT().AddFollowIfNew(followMatcher, checkEvent(dal.EvFollowAccepted)).
		Return(true, nil)
	h.mockFanout.EXPECT().NotifyFollow(h.localUser.Id, h.senderActor).Return(nil)
	h.mockRepo.EXPECT().GetFollowerCount(h.localActor.Id).Return(uint(1), nil)
	h.mockMetrics.EXPECT().TotalFollowers(1)

	// The Accept goes back to the new follower's inbox
	h.mockKeyStore.EXPECT().GetPrivKey(localName).Return(privKey, nil)
	h.mockRepo.EXPECT().GetNextId().Return(uint64(777))
	acceptMatcher := gomock.Cond(func(act *dto.ActivityOut) bool {
		if act.Type != "Accept" || act.Actor != h.localUserUrl {
			return false
		}
		obj, ok := act.Object.(dto.ActivityOut)
		return ok && obj.Type == "Follow" && obj.Id == activityId && obj.Actor == callerUrl
	})
	h.mockSender.EXPECT().Send(privKey, localName, callerInbox, acceptMatcher).Return(nil)

	reqProblem, err := inbox.HandleFollow(h.sender, makeFollowBody(activityId))

	assert.Nil(t, err)
	assert.Empty(t, reqProblem)
}

func TestFollow_RedeliveredIsNoOp(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	activityId := "https://" + callerHost + "/act/follow-1"

	h.expectLocalUserLookup()
	h.expectUpsertSender()
	h.mockRepo.EXPECT().AddFollowIfNew(gomock.Any(), gomock.Any()).Return(false, nil)

	// No notification, no Accept: redelivery must not repeat side effects

	reqProblem, err := inbox.HandleFollow(h.sender, makeFollowBody(activityId))

	assert.Nil(t, err)
	assert.Empty(t, reqProblem)
}

func TestFollow_ForeignObjectDropped(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	body := []byte(`{
		"id": "https://genart.social/act/follow-2",
		"type": "Follow",
		"actor": "` + callerUrl + `",
		"object": "https://elsewhere.example/u/bob"
	}`)

	reqProblem, err := inbox.HandleFollow(h.sender, body)

	assert.Nil(t, err)
	assert.NotEmpty(t, reqProblem)
}

func TestFollow_MissingIdDropped(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	body := []byte(`{
		"type": "Follow",
		"actor": "` + callerUrl + `",
		"object": "https://` + localHost + `/u/` + localName + `"
	}`)

	reqProblem, err := inbox.HandleFollow(h.sender, body)

	assert.Nil(t, err)
	assert.NotEmpty(t, reqProblem)
}
