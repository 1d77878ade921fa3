package algolia_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	algolia "github.com/britto/algolia-go"
)

func TestDeleteObject_RejectsEmptyIDWithoutNetwork(t *testing.T) {
	t.Parallel()

	client, resolved := newOfflineClient(t)
	_, err := client.Index("movies").DeleteObject(context.Background(), "")

	assert.ErrorIs(t, err, algolia.ErrEmptyObjectID)
	assert.Zero(t, resolved.Load(), "validation must not touch the network")
}

func TestDeleteObject(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/1/indexes/movies/tt0468569", r.URL.Path)
		w.Write([]byte(`{"deletedAt":"2026-08-31T00:00:00Z","taskID":7}`))
	}))

	res, err := client.Index("movies").DeleteObject(context.Background(), "tt0468569")
	require.NoError(t, err)
	assert.Equal(t, "movies", res["indexName"])
	assert.Equal(t, float64(7), res["taskID"])
}

func TestSaveObject(t *testing.T) {
	t.Parallel()

	t.Run("puts at the object route", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/1/indexes/movies/tt0468569", r.URL.Path)

			payload, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			assert.JSONEq(t, `{"objectID":"tt0468569","title":"The Dark Knight"}`, string(payload))

			w.Write([]byte(`{"updatedAt":"2026-08-31T00:00:00Z","taskID":9}`))
		}))

		res, err := client.Index("movies").SaveObject(context.Background(), map[string]any{
			"objectID": "tt0468569",
			"title":    "The Dark Knight",
		})
		require.NoError(t, err)
		assert.Equal(t, "movies", res["indexName"])
	})

	t.Run("numeric objectID", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/1/indexes/movies/42", r.URL.Path)
			w.Write([]byte(`{"taskID":1}`))
		}))

		_, err := client.Index("movies").SaveObject(context.Background(), map[string]any{
			"objectID": float64(42),
		})
		require.NoError(t, err)
	})

	t.Run("missing objectID rejected locally", func(t *testing.T) {
		t.Parallel()

		client, resolved := newOfflineClient(t)
		_, err := client.Index("movies").SaveObject(context.Background(), map[string]any{"title": "nameless"})

		assert.ErrorIs(t, err, algolia.ErrMissingObjectID)
		assert.Zero(t, resolved.Load())
	})

	t.Run("empty objectID rejected locally", func(t *testing.T) {
		t.Parallel()

		client, resolved := newOfflineClient(t)
		_, err := client.Index("movies").SaveObject(context.Background(), map[string]any{"objectID": ""})

		assert.ErrorIs(t, err, algolia.ErrEmptyObjectID)
		assert.Zero(t, resolved.Load())
	})
}

func TestAddObject(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/1/indexes/movies", r.URL.Path)
		w.Write([]byte(`{"createdAt":"2026-08-31T00:00:00Z","taskID":3,"objectID":"server-assigned"}`))
	}))

	res, err := client.Index("movies").AddObject(context.Background(), map[string]any{"title": "Heat"})
	require.NoError(t, err)
	assert.Equal(t, "server-assigned", res["objectID"])
	assert.Equal(t, "movies", res["indexName"])
}

func TestGetObject(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/1/indexes/movies/tt0468569", r.URL.Path)
		assert.Equal(t, "title,year", r.URL.Query().Get("attributes"))
		w.Write([]byte(`{"objectID":"tt0468569","title":"The Dark Knight"}`))
	}))

	obj, err := client.Index("movies").GetObject(context.Background(), "tt0468569", "title", "year")
	require.NoError(t, err)
	assert.Equal(t, "The Dark Knight", obj["title"])
}

func TestGetObjects(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/1/indexes/*/objects", r.URL.Path)

		payload, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var envelope struct {
			Requests []map[string]string `json:"requests"`
		}
		require.NoError(t, json.Unmarshal(payload, &envelope))
		require.Len(t, envelope.Requests, 2)
		assert.Equal(t, "movies", envelope.Requests[0]["indexName"])
		assert.Equal(t, "a", envelope.Requests[0]["objectID"])

		w.Write([]byte(`{"results":[{"objectID":"a"},{"objectID":"b"}]}`))
	}))

	res, err := client.Index("movies").GetObjects(context.Background(), []string{"a", "b"})
	require.NoError(t, err)
	assert.Len(t, res["results"], 2)
}

func TestPartialUpdateObject(t *testing.T) {
	t.Parallel()

	t.Run("default creates missing objects", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/1/indexes/movies/tt0468569/partial", r.URL.Path)
			assert.Empty(t, r.URL.Query().Get("createIfNotExists"))
			w.Write([]byte(`{"taskID":5}`))
		}))

		_, err := client.Index("movies").PartialUpdateObject(context.Background(), map[string]any{
			"objectID": "tt0468569",
			"year":     2008,
		}, true)
		require.NoError(t, err)
	})

	t.Run("no-create flag", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "false", r.URL.Query().Get("createIfNotExists"))
			w.Write([]byte(`{"taskID":5}`))
		}))

		_, err := client.Index("movies").PartialUpdateObject(context.Background(), map[string]any{
			"objectID": "tt0468569",
			"year":     2008,
		}, false)
		require.NoError(t, err)
	})
}

func TestDeleteBy(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/1/indexes/movies/deleteByQuery", r.URL.Path)

		payload, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var body map[string]string
		require.NoError(t, json.Unmarshal(payload, &body))
		assert.Contains(t, body["params"], "filters=year+%3C+1990")

		w.Write([]byte(`{"taskID":11}`))
	}))

	res, err := client.Index("movies").DeleteBy(context.Background(), algolia.Params{"filters": "year < 1990"})
	require.NoError(t, err)
	assert.Equal(t, "movies", res["indexName"])
}

func TestIndex_EmptyNameRejected(t *testing.T) {
	t.Parallel()

	client, resolved := newOfflineClient(t)
	_, err := client.Index("").GetSettings(context.Background())

	assert.ErrorIs(t, err, algolia.ErrEmptyIndexName)
	assert.Zero(t, resolved.Load())
}
