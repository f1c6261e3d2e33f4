package shared

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func Test_IdBuilder(t *testing.T) {
	idb := IdBuilder{"wren.example"}
	assert.Equal(t, "https://wren.example", idb.SiteUrl())
	assert.Equal(t, "https://wren.example/inbox", idb.SharedInbox())
	assert.Equal(t, "https://wren.example/u/kestrel", idb.UserUrl("kestrel"))
	assert.Equal(t, "https://wren.example/u/kestrel#main-key", idb.UserKeyId("kestrel"))
	assert.Equal(t, "https://wren.example/u/kestrel/inbox", idb.UserInbox("kestrel"))
	assert.Equal(t, "https://wren.example/u/kestrel/status/42", idb.UserStatus("kestrel", 42))
}

func Test_GetHostName(t *testing.T) {
	host, err := GetHostName("https://remote.example/users/alice")
	assert.Nil(t, err)
	assert.Equal(t, "remote.example", host)
}

func Test_TruncateWithEllipsis(t *testing.T) {
	assert.Equal(t, "short", TruncateWithEllipsis("short", 40))
	long := "the quick brown fox jumps over the lazy dog"
	res := TruncateWithEllipsis(long, 20)
	assert.True(t, len([]rune(res)) <= 21)
	assert.Equal(t, "…", string([]rune(res)[len([]rune(res))-1]))
}
