package algolia_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	algolia "github.com/britto/algolia-go"
)

func TestBuildBatch_PreservesOrder(t *testing.T) {
	t.Parallel()

	objects := []map[string]any{
		{"objectID": "1", "title": "first"},
		{"title": "second"},
		{"objectID": "3", "title": "third"},
	}

	batch := algolia.BuildBatch(objects, algolia.ActionAddObject)

	require.Len(t, batch.Requests, 3)
	for i, obj := range objects {
		assert.Equal(t, obj, batch.Requests[i].Body)
		assert.Equal(t, algolia.ActionAddObject, batch.Requests[i].Action)
	}
}

func TestBuildBatch_ObjectIDLifting(t *testing.T) {
	t.Parallel()

	batch := algolia.BuildBatch([]map[string]any{
		{"objectID": "42", "a": 1},
		{"a": 2},
		{"objectID": nil, "a": 3},
	}, algolia.ActionUpdateObject)

	require.Len(t, batch.Requests, 3)
	assert.Equal(t, "42", batch.Requests[0].ObjectID)
	assert.Nil(t, batch.Requests[1].ObjectID, "absent objectID stays absent")
	assert.Nil(t, batch.Requests[2].ObjectID, "nil objectID counts as absent")
}

func TestBuildBatch_JSONOmitsAbsentObjectID(t *testing.T) {
	t.Parallel()

	batch := algolia.BuildBatch([]map[string]any{{"a": 1}}, algolia.ActionAddObject)
	encoded, err := json.Marshal(batch)
	require.NoError(t, err)

	assert.NotContains(t, string(encoded), "objectID")
}

func TestBuildBatch_Properties(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		count := rapid.IntRange(0, 20).Draw(rt, "count")

		objects := make([]map[string]any, 0, count)
		for n := 0; n < count; n++ {
			obj := map[string]any{"n": n}
			if rapid.Bool().Draw(rt, fmt.Sprintf("hasID-%d", n)) {
				obj["objectID"] = rapid.StringMatching(`[a-z0-9]{1,8}`).Draw(rt, fmt.Sprintf("id-%d", n))
			}
			objects = append(objects, obj)
		}

		batch := algolia.BuildBatch(objects, algolia.ActionUpdateObject)

		if len(batch.Requests) != len(objects) {
			rt.Fatalf("want %d requests, got %d", len(objects), len(batch.Requests))
		}
		for i, obj := range objects {
			op := batch.Requests[i]
			if op.Body["n"] != obj["n"] {
				rt.Fatalf("request %d out of order", i)
			}
			id, present := obj["objectID"]
			if present && op.ObjectID != id {
				rt.Fatalf("request %d lost its objectID", i)
			}
			if !present && op.ObjectID != nil {
				rt.Fatalf("request %d grew an objectID", i)
			}
		}
	})
}

func TestSendBatch(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/1/indexes/movies/batch", r.URL.Path)

		payload, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var envelope struct {
			Requests []map[string]any `json:"requests"`
		}
		require.NoError(t, json.Unmarshal(payload, &envelope))
		require.Len(t, envelope.Requests, 2)
		assert.Equal(t, "deleteObject", envelope.Requests[0]["action"])
		assert.Equal(t, "a", envelope.Requests[0]["objectID"])
		assert.Equal(t, "b", envelope.Requests[1]["objectID"])

		w.Write([]byte(`{"taskID":100}`))
	}))

	res, err := client.Index("movies").DeleteObjects(context.Background(), []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, "movies", res["indexName"], "write results carry the index name")
}

func TestSaveObjects_RequiresObjectIDs(t *testing.T) {
	t.Parallel()

	client, resolved := newOfflineClient(t)
	_, err := client.Index("movies").SaveObjects(context.Background(), []map[string]any{
		{"objectID": "ok"},
		{"title": "no id"},
	})

	assert.ErrorIs(t, err, algolia.ErrMissingObjectID)
	assert.Zero(t, resolved.Load())
}

func TestDeleteObjects_RejectsEmptyID(t *testing.T) {
	t.Parallel()

	client, resolved := newOfflineClient(t)
	_, err := client.Index("movies").DeleteObjects(context.Background(), []string{"a", ""})

	assert.ErrorIs(t, err, algolia.ErrEmptyObjectID)
	assert.Zero(t, resolved.Load())
}
