package net

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"LocalMeasure/internal/geometry"
	"LocalMeasure/internal/store"
	"LocalMeasure/internal/store/kv"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feedRecord(id string) store.Record {
	return store.NewRecord(id,
		geometry.Rectangle{Width: 100, Height: 100},
		geometry.Rectangle{X: 100, Y: 100, Width: 100, Height: 100},
		time.Date(2025, 1, 16, 9, 0, 0, 0, time.UTC))
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg Message
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestHubSnapshotAndBroadcast(t *testing.T) {
	st := store.New(kv.NewMemory(), "")
	require.NoError(t, st.Save(feedRecord("first")))

	hub := NewHub(st)
	srv := httptest.NewServer(hub.Router())
	defer srv.Close()
	defer hub.Close()

	conn := dial(t, srv)
	snap := readMessage(t, conn)
	assert.Equal(t, TypeSnapshot, snap.Type)
	require.Len(t, snap.Records, 1)
	assert.Equal(t, "first", snap.Records[0].ID)
	assert.Equal(t, 1, hub.Count())

	hub.RecordSaved(feedRecord("second"))
	saved := readMessage(t, conn)
	assert.Equal(t, TypeSaved, saved.Type)
	require.NotNil(t, saved.Record)
	assert.Equal(t, "second", saved.Record.ID)
	assert.InDelta(t, 141.42, saved.Record.Distance, 0.01)

	hub.RecordDeleted("first")
	deleted := readMessage(t, conn)
	assert.Equal(t, TypeDeleted, deleted.Type)
	assert.Equal(t, "first", deleted.ID)

	hub.RecordsCleared()
	assert.Equal(t, TypeCleared, readMessage(t, conn).Type)
}

func TestHubRecordsEndpoint(t *testing.T) {
	st := store.New(kv.NewMemory(), "")
	require.NoError(t, st.Save(feedRecord("a")))
	require.NoError(t, st.Save(feedRecord("b")))

	srv := httptest.NewServer(NewHub(st).Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/records")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var records []store.Record
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&records))
	require.Len(t, records, 2)
	assert.Equal(t, "a", records[0].ID)
	assert.Equal(t, "b", records[1].ID)

	post, err := http.Post(srv.URL+"/records", "application/json", strings.NewReader("[]"))
	require.NoError(t, err)
	post.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, post.StatusCode)
}

func TestHubForgetsClosedViewer(t *testing.T) {
	hub := NewHub(store.New(kv.NewMemory(), ""))
	srv := httptest.NewServer(hub.Router())
	defer srv.Close()

	conn := dial(t, srv)
	readMessage(t, conn)
	require.Equal(t, 1, hub.Count())

	conn.Close()
	assert.Eventually(t, func() bool { return hub.Count() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestShareURL(t *testing.T) {
	assert.Regexp(t, `^ws://\d+\.\d+\.\d+\.\d+:8888/ws$`, ShareURL(8888))
}

func TestHubRegistersViewerBeforeSnapshot(t *testing.T) {
	hub := NewHub(store.New(kv.NewMemory(), ""))
	srv := httptest.NewServer(hub.Router())
	defer srv.Close()
	defer hub.Close()

	conn := dial(t, srv)
	require.Equal(t, TypeSnapshot, readMessage(t, conn).Type)

	// Once the snapshot arrives the viewer is already subscribed.
	require.Equal(t, 1, hub.Count())
	hub.RecordSaved(feedRecord("late"))

	msg := readMessage(t, conn)
	assert.Equal(t, TypeSaved, msg.Type)
	require.NotNil(t, msg.Record)
	assert.Equal(t, "late", msg.Record.ID)
}
