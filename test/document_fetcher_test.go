package test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"wren/logic"
	"wren/shared"
)

func TestDocumentFetcher_FetchActor(t *testing.T) {

	actorJson := `{
		"id": "%s",
		"type": "Person",
		"preferredUsername": "clara",
		"inbox": "%s/inbox"
	}`
	var actorUrl string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("Accept"), "application/activity+json")
		w.Header().Set("Content-Type", "application/activity+json")
		fmt.Fprintf(w, actorJson, actorUrl, actorUrl)
	}))
	defer ts.Close()
	actorUrl = ts.URL + "/users/clara"

	fetcher := logic.NewDocumentFetcher(&shared.Config{FetchTimeoutSec: 5})
	info, err := fetcher.FetchActor(actorUrl)

	assert.Nil(t, err)
	assert.Equal(t, actorUrl, info.Id)
	assert.Equal(t, "clara", info.PreferredUserName)
}

func TestDocumentFetcher_RejectsErrorStatus(t *testing.T) {

	// The error response carries a body too; the fetcher must close it and
	// report the status, not try to parse it
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone for good", http.StatusGone)
	}))
	defer ts.Close()

	fetcher := logic.NewDocumentFetcher(&shared.Config{FetchTimeoutSec: 5})
	info, err := fetcher.FetchActor(ts.URL + "/users/nobody")

	assert.Nil(t, info)
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "410")
}

func TestDocumentFetcher_FetchNoteRejectsOtherTypes(t *testing.T) {

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/activity+json")
		fmt.Fprint(w, `{"id": "x", "type": "Person"}`)
	}))
	defer ts.Close()

	fetcher := logic.NewDocumentFetcher(&shared.Config{FetchTimeoutSec: 5})
	note, err := fetcher.FetchNote(ts.URL + "/objects/1")

	assert.Nil(t, note)
	assert.NotNil(t, err)
}
