package keys

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRedisKey(t *testing.T) {
	req := require.New(t)
	req.Equal("lock:auction:7", RedisKey(PfxLock, PfxAuction, "7"))
	req.Equal("{lock:asset}", RedisLuaKey(PfxLock, PfxAsset))
	req.Equal("a/b", CustomKey("/", "a", "b"))
}
