package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"adresses/internal/infra/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestMediaHandler_Serve(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	store := storage.NewBlobStore(bucket, "/media")
	require.NoError(t, store.Put(context.Background(), "addresses/a1/1_ab.png", []byte("png-bytes"), "image/png"))

	h := NewMediaHandler(MediaHandlerParams{ObjectStore: store, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})

	serve := func(key string) (int, string, string) {
		c, rec := newContext(http.MethodGet, "/media/"+key, nil, "")
		c.SetParamNames("*")
		c.SetParamValues(key)
		require.NoError(t, h.Serve(c))

		return rec.Code, rec.Header().Get("Content-Type"), rec.Body.String()
	}

	code, contentType, body := serve("addresses/a1/1_ab.png")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "image/png", contentType)
	assert.Equal(t, "png-bytes", body)

	code, _, _ = serve("addresses/a1/missing.png")
	assert.Equal(t, http.StatusNotFound, code)

	code, _, _ = serve("../secret")
	assert.Equal(t, http.StatusNotFound, code)
}
