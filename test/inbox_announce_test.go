package test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"wren/dal"
	"wren/dto"
)

func makeAnnounceBody(activityId, objectUri string) []byte {
	body := `{
		"@context": "https://www.w3.org/ns/activitystreams",
		"id": "%s",
		"type": "Announce",
		"actor": "%s",
		"object": "%s"
	}`
	return []byte(fmt.Sprintf(body, activityId, callerUrl, objectUri))
}

func TestAnnounce_OfLocalPost(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	activityId := "https://" + callerHost + "/act/boost-1"
	postUrl := fmt.Sprintf("https://%s/u/%s/status/42", localHost, localName)
	post := &dal.Post{Id: 42, ActorId: h.localActor.Id, UserId: h.localUser.Id, Kind: dal.PostLocal}

	h.mockRepo.EXPECT().GetRepostByActivityUri(activityId).Return(nil, nil)
	h.expectUpsertSender()
	h.mockRepo.EXPECT().GetPostById(int64(42)).Return(post, nil)

	repostMatcher := gomock.Cond(func(repost *dal.Repost) bool {
		return repost.ActorId == h.senderActor.Id &&
			repost.PostId == post.Id &&
			repost.ActivityUri == activityId
	})
	tiMatcher := gomock.Cond(func(ti *dal.TimelineItem) bool {
		return ti != nil && ti.ActorId == h.senderActor.Id
	})
	h.mockRepo.EXPECT().
		AddRepostIfNew(repostMatcher, tiMatcher, checkEvent(dal.EvRepostCreated)).
		Return(true, nil)

	reqProblem, err := inbox.HandleAnnounce(h.sender, makeAnnounceBody(activityId, postUrl))

	assert.Nil(t, err)
	assert.Empty(t, reqProblem)
}

func TestAnnounce_FetchesUnknownNote(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	activityId := "https://" + callerHost + "/act/boost-2"
	remoteNoteUri := "https://pix.example/users/clara/statuses/99"
	authorUri := "https://pix.example/users/clara"
	authorActor := &dal.Actor{Id: 30, Uri: authorUri, Kind: dal.ActorRemote, Username: "clara"}

	h.mockRepo.EXPECT().GetRepostByActivityUri(activityId).Return(nil, nil)
	h.expectUpsertSender()
	h.mockRepo.EXPECT().GetPostByUri(remoteNoteUri).Return(nil, nil)
	h.mockFetcher.EXPECT().FetchNote(remoteNoteUri).Return(&dto.Note{
		Id:           remoteNoteUri,
		Type:         "Note",
		AttributedTo: authorUri,
		Content:      "<p>Plotter piece no. 99</p>",
	}, nil)
	h.mockResolver.EXPECT().ResolveOrFetchRemote(authorUri).Return(authorActor, nil)

	// The boosted post gets no timeline item of its own; the repost's item
	// is the one that lands in the timeline
	postMatcher := gomock.Cond(func(post *dal.Post) bool {
		return post.Uri == remoteNoteUri && post.ActorId == authorActor.Id
	})
	h.mockRepo.EXPECT().
		AddPostIfNew(postMatcher, gomock.Nil(), gomock.Nil(), checkEvent(dal.EvPostCreated)).
		Return(true, nil)
	h.mockRepo.EXPECT().
		AddRepostIfNew(gomock.Any(), gomock.Not(gomock.Nil()), checkEvent(dal.EvRepostCreated)).
		Return(true, nil)

	reqProblem, err := inbox.HandleAnnounce(h.sender, makeAnnounceBody(activityId, remoteNoteUri))

	assert.Nil(t, err)
	assert.Empty(t, reqProblem)
}

func TestAnnounce_RedeliveredIsNoOp(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	activityId := "https://" + callerHost + "/act/boost-1"
	postUrl := fmt.Sprintf("https://%s/u/%s/status/42", localHost, localName)

	// The repost is already on record: no upsert, no fetch, no insert
	h.mockRepo.EXPECT().
		GetRepostByActivityUri(activityId).
		Return(&dal.Repost{Id: 9, ActivityUri: activityId}, nil)

	reqProblem, err := inbox.HandleAnnounce(h.sender, makeAnnounceBody(activityId, postUrl))

	assert.Nil(t, err)
	assert.Empty(t, reqProblem)
}

func TestAnnounce_UnfetchableObjectDropped(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	activityId := "https://" + callerHost + "/act/boost-3"
	remoteNoteUri := "https://gone.example/users/x/statuses/1"

	h.mockRepo.EXPECT().GetRepostByActivityUri(activityId).Return(nil, nil)
	h.expectUpsertSender()
	h.mockRepo.EXPECT().GetPostByUri(remoteNoteUri).Return(nil, nil)
	h.mockFetcher.EXPECT().FetchNote(remoteNoteUri).Return(nil, errors.New("410 gone"))

	// Unfetchable boost is dropped, not answered with an error: redelivery
	// would fail the same way

	reqProblem, err := inbox.HandleAnnounce(h.sender, makeAnnounceBody(activityId, remoteNoteUri))

	assert.Nil(t, err)
	assert.NotEmpty(t, reqProblem)
}

func TestAnnounce_MissingObjectDropped(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	body := []byte(`{
		"id": "https://` + callerHost + `/act/boost-4",
		"type": "Announce",
		"actor": "` + callerUrl + `"
	}`)

	reqProblem, err := inbox.HandleAnnounce(h.sender, body)

	assert.Nil(t, err)
	assert.NotEmpty(t, reqProblem)
}
