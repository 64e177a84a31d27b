package qdrant_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/spu-coder/my-ai-advisor/pkg/qdrant"
)

func TestQdrantClient(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		path := r.URL.Path

		switch {
		case r.Method == http.MethodGet && path == "/collections/official_documents":
			w.Write([]byte(`{"result":{"status":"green"}}`))
		case r.Method == http.MethodGet && strings.HasPrefix(path, "/collections/"):
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"status":{"error":"Not found"}}`))

		case r.Method == http.MethodPut && strings.HasSuffix(path, "/points"):
			if r.URL.Query().Get("wait") != "true" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			var req qdrant.UpsertPointsRequest
			json.NewDecoder(r.Body).Decode(&req)
			if len(req.Points) > 0 {
				if val, ok := req.Points[0].Payload["cause_500"]; ok && val == true {
					w.WriteHeader(http.StatusInternalServerError)
					return
				}
			}
			w.WriteHeader(http.StatusOK)

		case r.Method == http.MethodPut && strings.HasPrefix(path, "/collections/"):
			var req qdrant.CreateCollectionRequest
			json.NewDecoder(r.Body).Decode(&req)
			if req.Vectors.Size != 1024 || req.Vectors.Distance != qdrant.DistanceCosine {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			w.WriteHeader(http.StatusCreated)

		case r.Method == http.MethodPost && strings.HasSuffix(path, "/points/search"):
			var req qdrant.SearchRequest
			json.NewDecoder(r.Body).Decode(&req)
			if req.Limit == 999 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if req.ScoreThreshold == nil || *req.ScoreThreshold != 0.3 {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			w.Write([]byte(`{
				"result": [
					{"id": "6f1c0a52-3f7d-5a4e-9a51-3c8b1f0f2a10", "score": 0.95, "payload": {"title": "لائحة الدراسة"}}
				],
				"status": "ok",
				"time": 0.05
			}`))

		case r.Method == http.MethodPost && strings.HasSuffix(path, "/points/delete"):
			var req qdrant.DeletePointsRequest
			json.NewDecoder(r.Body).Decode(&req)
			if len(req.Points) > 0 && req.Points[0] == "cause_500" {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusOK)

		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer ts.Close()

	client := qdrant.NewClient(ts.URL + "/")
	threshold := 0.3

	t.Run("CollectionExists", func(t *testing.T) {
		ok, err := client.CollectionExists(context.Background(), "official_documents")
		if err != nil || !ok {
			t.Fatalf("expected existing collection, got %v %v", ok, err)
		}
		ok, err = client.CollectionExists(context.Background(), "missing")
		if err != nil || ok {
			t.Fatalf("expected missing collection, got %v %v", ok, err)
		}
	})

	t.Run("CreateCollection", func(t *testing.T) {
		err := client.CreateCollection(context.Background(), qdrant.CreateCollectionRequest{
			Name:    "test_col",
			Vectors: qdrant.VectorConfig{Size: 1024, Distance: qdrant.DistanceCosine},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("UpsertPoints Success", func(t *testing.T) {
		err := client.UpsertPoints(context.Background(), "test_col", qdrant.UpsertPointsRequest{
			Points: []qdrant.Point{{ID: "123", Payload: map[string]interface{}{"key": "val"}, Vector: []float32{0.1, 0.2}}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("UpsertPoints Error", func(t *testing.T) {
		err := client.UpsertPoints(context.Background(), "test_col", qdrant.UpsertPointsRequest{
			Points: []qdrant.Point{{ID: "123", Payload: map[string]interface{}{"cause_500": true}, Vector: []float32{0.1, 0.2}}},
		})
		var apiErr *qdrant.APIError
		if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusInternalServerError {
			t.Fatalf("expected 500 APIError, got %v", err)
		}
	})

	t.Run("SearchPoints Success", func(t *testing.T) {
		resp, err := client.SearchPoints(context.Background(), "test_col", qdrant.SearchRequest{
			Limit:          4,
			WithPayload:    true,
			ScoreThreshold: &threshold,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Result) != 1 || resp.Result[0].Payload["title"] != "لائحة الدراسة" {
			t.Errorf("unexpected search results: %v", resp)
		}
	})

	t.Run("SearchPoints Error", func(t *testing.T) {
		_, err := client.SearchPoints(context.Background(), "test_col", qdrant.SearchRequest{Limit: 999, ScoreThreshold: &threshold})
		if err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})

	t.Run("DeletePoints", func(t *testing.T) {
		if err := client.DeletePoints(context.Background(), "test_col", []string{"123", "456"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := client.DeletePoints(context.Background(), "test_col", []string{"cause_500"}); err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})

	t.Run("Context Cancelation Error", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if err := client.CreateCollection(ctx, qdrant.CreateCollectionRequest{Name: "test"}); err == nil {
			t.Errorf("expected error on canceled context")
		}
		if _, err := client.SearchPoints(ctx, "test", qdrant.SearchRequest{}); err == nil {
			t.Errorf("expected error on canceled context")
		}
	})
}
