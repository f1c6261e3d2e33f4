package test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"wren/dal"
	"wren/dto"
)

func makeReactBody(activityId, objectUri, content, tagJson string) []byte {
	body := `{
		"@context": "https://www.w3.org/ns/activitystreams",
		"id": "%s",
		"type": "EmojiReact",
		"actor": "%s",
		"content": "%s",
		"object": "%s"%s
	}`
	return []byte(fmt.Sprintf(body, activityId, callerUrl, content, objectUri, tagJson))
}

func makeReactActBase(t *testing.T, bodyBytes []byte) dto.ActivityInBase {
	var actBase dto.ActivityInBase
	err := actBase.UnmarshalJSON(bodyBytes)
	assert.Nil(t, err)
	return actBase
}

func TestEmojiReact_UnicodeEmoji(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	activityId := "https://" + callerHost + "/act/react-1"
	postUrl := fmt.Sprintf("https://%s/u/%s/status/42", localHost, localName)
	post := &dal.Post{Id: 42, ActorId: h.localActor.Id, UserId: h.localUser.Id, Kind: dal.PostLocal}
	body := makeReactBody(activityId, postUrl, "🔥", "")

	h.mockRepo.EXPECT().GetPostById(int64(42)).Return(post, nil)
	h.mockRepo.EXPECT().GetReactionByActivityUri(activityId).Return(nil, nil)
	h.expectUpsertSender()

	reactionMatcher := gomock.Cond(func(reaction *dal.Reaction) bool {
		return reaction.ActorId == h.senderActor.Id &&
			reaction.PostId == post.Id &&
			reaction.Emoji == "🔥" &&
			reaction.ImageUrl == "" &&
			reaction.ActivityUri == activityId
	})
	h.mockRepo.EXPECT().AddReactionIfNew(reactionMatcher, checkEvent(dal.EvReactionCreated)).
		Return(true, nil)
	h.mockFanout.EXPECT().NotifyReaction(post, h.senderActor, "🔥").Return(nil)

	reqProblem, err := inbox.HandleEmojiReact(makeReactActBase(t, body), h.sender, body)

	assert.Nil(t, err)
	assert.Empty(t, reqProblem)
}

func TestEmojiReact_CustomEmojiKeepsImage(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	activityId := "https://" + callerHost + "/act/react-2"
	postUrl := fmt.Sprintf("https://%s/u/%s/status/42", localHost, localName)
	post := &dal.Post{Id: 42, ActorId: h.localActor.Id, UserId: h.localUser.Id, Kind: dal.PostLocal}
	emojiImage := "https://" + callerHost + "/emoji/blobcat.png"
	tagJson := `,
		"tag": [{
			"type": "Emoji",
			"name": ":blobcat:",
			"icon": {"type": "Image", "url": "` + emojiImage + `"}
		}]`
	body := makeReactBody(activityId, postUrl, ":blobcat:", tagJson)

	h.mockRepo.EXPECT().GetPostById(int64(42)).Return(post, nil)
	h.mockRepo.EXPECT().GetReactionByActivityUri(activityId).Return(nil, nil)
	h.expectUpsertSender()

	reactionMatcher := gomock.Cond(func(reaction *dal.Reaction) bool {
		return reaction.Emoji == ":blobcat:" && reaction.ImageUrl == emojiImage
	})
	h.mockRepo.EXPECT().AddReactionIfNew(reactionMatcher, checkEvent(dal.EvReactionCreated)).
		Return(true, nil)
	h.mockFanout.EXPECT().NotifyReaction(post, h.senderActor, ":blobcat:").Return(nil)

	reqProblem, err := inbox.HandleEmojiReact(makeReactActBase(t, body), h.sender, body)

	assert.Nil(t, err)
	assert.Empty(t, reqProblem)
}

func TestEmojiReact_RedeliveredIsNoOp(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	activityId := "https://" + callerHost + "/act/react-1"
	postUrl := fmt.Sprintf("https://%s/u/%s/status/42", localHost, localName)
	post := &dal.Post{Id: 42, ActorId: h.localActor.Id, UserId: h.localUser.Id, Kind: dal.PostLocal}
	body := makeReactBody(activityId, postUrl, "🔥", "")

	h.mockRepo.EXPECT().GetPostById(int64(42)).Return(post, nil)

	// The reaction is already on record: no upsert, no insert, no notification
	h.mockRepo.EXPECT().
		GetReactionByActivityUri(activityId).
		Return(&dal.Reaction{Id: 5, ActivityUri: activityId}, nil)

	reqProblem, err := inbox.HandleEmojiReact(makeReactActBase(t, body), h.sender, body)

	assert.Nil(t, err)
	assert.Empty(t, reqProblem)
}

func TestEmojiReact_MissingContentDropped(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	postUrl := fmt.Sprintf("https://%s/u/%s/status/42", localHost, localName)
	body := []byte(`{
		"id": "https://` + callerHost + `/act/react-3",
		"type": "EmojiReact",
		"actor": "` + callerUrl + `",
		"object": "` + postUrl + `"
	}`)

	// Rejected before anything touches the store

	reqProblem, err := inbox.HandleEmojiReact(makeReactActBase(t, body), h.sender, body)

	assert.Nil(t, err)
	assert.NotEmpty(t, reqProblem)
}

func TestEmojiReact_OnForeignObjectDropped(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	body := makeReactBody(
		"https://"+callerHost+"/act/react-4",
		"https://elsewhere.example/users/bob/statuses/9",
		"🔥", "")

	reqProblem, err := inbox.HandleEmojiReact(makeReactActBase(t, body), h.sender, body)

	assert.Nil(t, err)
	assert.Empty(t, reqProblem)
}
