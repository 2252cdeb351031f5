package util

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNetErrorChecks(t *testing.T) {
	lsnr, lerr := net.Listen("tcp", "localhost:0")
	assert.NoError(t, lerr)

	t.Log("listening " + lsnr.Addr().String())

	go func() {
		cconn, cerr := net.Dial("tcp", lsnr.Addr().String())
		assert.NoError(t, cerr)

		cconn.Close()
	}()

	sconn, serr := lsnr.Accept()
	assert.NoError(t, serr)

	t.Run("closed connection", func(tt *testing.T) {
		sconn.Close()
		_, err := sconn.Write([]byte("Hi"))
		if assert.Error(tt, err) {
			assert.True(tt, IsNetworkError(err))
			assert.True(tt, IsNetworkClosed(err))
			assert.False(tt, IsNetworkTimeout(err))
		}
	})

	t.Run("non-network error", func(tt *testing.T) {
		assert.False(tt, IsNetworkError(assert.AnError))
		assert.False(tt, IsNetworkClosed(assert.AnError))
	})
}
