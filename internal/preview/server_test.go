package preview

import (
	"image"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawWithoutClients(t *testing.T) {
	s := NewServer(16, 8, zerolog.Nop())
	img := image.NewGray(image.Rect(0, 0, 16, 8))
	require.NoError(t, s.Draw(img))
	require.NoError(t, s.Draw(img))
	assert.Equal(t, 0, s.ClientCount())
}

func TestHealth(t *testing.T) {
	s := NewServer(16, 8, zerolog.Nop())
	rec := httptest.NewRecorder()
	s.HandleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

func TestFrameBroadcast(t *testing.T) {
	s := NewServer(2, 1, zerolog.Nop())
	srv := httptest.NewServer(http.HandlerFunc(s.HandleWS))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	// Wait for the handshake to register the client.
	require.Eventually(t, func() bool { return s.ClientCount() == 1 },
		time.Second, 10*time.Millisecond)

	img := image.NewGray(image.Rect(0, 0, 2, 1))
	img.Pix[1] = 0xFF
	require.NoError(t, s.Draw(img))

	var msg frameMsg
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, 2, msg.W)
	assert.Equal(t, 1, msg.H)
	assert.Equal(t, []int{0, 1}, msg.Pixels)
}
