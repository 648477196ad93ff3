package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"adresses/config"
	"adresses/internal/domain/constants"
	"adresses/internal/domain/entity"
	"adresses/internal/domain/service"
	"adresses/internal/errors"
	"adresses/internal/infra/pubsub"
	"adresses/internal/infra/storage"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
	"google.golang.org/api/idtoken"
)

type countingRecorder struct {
	mu     sync.Mutex
	counts map[string]int
}

func (r *countingRecorder) EventProcessed(eventType, outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.counts == nil {
		r.counts = make(map[string]int)
	}
	r.counts[eventType+"/"+outcome]++
}

type failingDeleteStore struct {
	service.ObjectStore
}

func (failingDeleteStore) Delete(context.Context, string) error {
	return errors.New("storage unavailable")
}

func newTestHandler(t *testing.T, cfg *config.Config, wrap func(service.ObjectStore) service.ObjectStore) (*EventHandler, service.ObjectStore, *countingRecorder) {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	store := storage.NewBlobStore(bucket, "/media")
	handlerStore := store
	if wrap != nil {
		handlerStore = wrap(store)
	}
	if cfg == nil {
		cfg = &config.Config{}
		cfg.Env.Env = constants.EnvDevelop
	}

	recorder := &countingRecorder{}
	h := NewEventHandler(EventHandlerParams{
		Config:      cfg,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		ObjectStore: handlerStore,
		Recorder:    recorder,
	})

	return h, store, recorder
}

func pushBody(t *testing.T, event *entity.AddressEvent) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg pubsub.PushMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = event.ID
	msg.Message.Attributes = map[string]string{"request_id": "req-1"}
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func doPush(t *testing.T, h *EventHandler, body string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, h.HandlePush(c))

	return rec
}

func TestEventHandler_DeletedAddressSweepsImages(t *testing.T) {
	h, store, recorder := newTestHandler(t, nil, nil)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "addresses/a1/1.jpg", []byte("x"), "image/jpeg"))
	require.NoError(t, store.Put(ctx, "addresses/a1/2.jpg", []byte("y"), "image/jpeg"))
	require.NoError(t, store.Put(ctx, "addresses/a10/1.jpg", []byte("z"), "image/jpeg"))

	rec := doPush(t, h, pushBody(t, &entity.AddressEvent{ID: "e1", Type: entity.AddressDeleted, AddressID: "a1"}), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	left, err := store.List(ctx, "addresses/")
	require.NoError(t, err)
	assert.Equal(t, []string{"addresses/a10/1.jpg"}, left)
	assert.Equal(t, 1, recorder.counts["address.deleted/ok"])
}

func TestEventHandler_StorageFailureAsksForRedelivery(t *testing.T) {
	h, store, recorder := newTestHandler(t, nil, func(s service.ObjectStore) service.ObjectStore {
		return failingDeleteStore{ObjectStore: s}
	})
	require.NoError(t, store.Put(context.Background(), "addresses/a1/1.jpg", []byte("x"), "image/jpeg"))

	rec := doPush(t, h, pushBody(t, &entity.AddressEvent{ID: "e1", Type: entity.AddressDeleted, AddressID: "a1"}), nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, 1, recorder.counts["address.deleted/retry"])
}

func TestEventHandler_OtherEventsAreAcknowledged(t *testing.T) {
	h, _, recorder := newTestHandler(t, nil, nil)

	rec := doPush(t, h, pushBody(t, &entity.AddressEvent{ID: "e2", Type: entity.AddressRated, AddressID: "a1", Stars: 4}), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, recorder.counts["address.rated/ok"])
}

func TestEventHandler_MalformedMessages(t *testing.T) {
	h, _, recorder := newTestHandler(t, nil, nil)

	rec := doPush(t, h, `{"message":{"data":"%%%"}}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doPush(t, h, `{"message":{"data":"`+base64.StdEncoding.EncodeToString([]byte("not json"))+`"}}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, recorder.counts["unknown/dropped"])

	rec = doPush(t, h, pushBody(t, &entity.AddressEvent{ID: "e3", Type: entity.AddressDeleted, AddressID: "../etc"}), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, recorder.counts["address.deleted/dropped"])
}

func TestEventHandler_VerifiesPushToken(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvProduction
	h, _, _ := newTestHandler(t, cfg, nil)
	require.True(t, h.verifyPushAuth)

	var audience string
	h.validate = func(_ context.Context, token, aud string) (*idtoken.Payload, error) {
		audience = aud
		if token != "good" {
			return nil, errors.New("bad signature")
		}

		return &idtoken.Payload{Issuer: "https://accounts.google.com"}, nil
	}
	body := pushBody(t, &entity.AddressEvent{ID: "e4", Type: entity.AddressCreated, AddressID: "a1"})

	rec := doPush(t, h, body, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doPush(t, h, body, http.Header{"Authorization": {"Bearer bad"}})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doPush(t, h, body, http.Header{"Authorization": {"Bearer good"}})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://example.com/push", audience)
}
