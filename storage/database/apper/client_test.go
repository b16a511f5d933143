package apperdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/juntaeschool/backend/core"
	"github.com/juntaeschool/backend/core/content"
	"github.com/juntaeschool/backend/tests"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	conf := testutil.NewConfig()
	conf.Apper = core.ApperConfig{
		BaseURL:   srv.URL,
		ProjectID: "proj1",
		APIKey:    "key1",
		Timeout:   5 * time.Second,
	}
	return NewClient(conf, testutil.Logger{}), srv
}

func fetchResponse(records ...interface{}) string {
	data, _ := json.Marshal(map[string]interface{}{"success": true, "data": records})
	return string(data)
}

func TestClient_requestShape(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]interface{}

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		fmt.Fprint(w, fetchResponse())
	})
	repo := NewContentRepository(client)

	if _, err := repo.QueryAllContent(context.Background()); err != nil {
		t.Fatalf("QueryAllContent() failed: %v", err)
	}

	if gotPath != "/api/v1/projects/proj1/tables/content/fetch" {
		t.Errorf("path = %s", gotPath)
	}
	if gotAuth != "Bearer key1" {
		t.Errorf("auth = %s", gotAuth)
	}
	if _, ok := gotBody["fields"]; !ok {
		t.Errorf("request body missing fields: %v", gotBody)
	}
	if _, ok := gotBody["orderBy"]; !ok {
		t.Errorf("request body missing orderBy: %v", gotBody)
	}
}

func TestClient_listDegradesToEmpty(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "remote reports failure",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"success":false,"message":"table unavailable"}`)
			},
		},
		{
			name: "http error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, "{not json")
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, tt.handler)
			repo := NewContentRepository(client)

			items, err := repo.QueryAllContent(context.Background())
			if err != nil {
				t.Fatalf("QueryAllContent() failed: %v", err)
			}
			if items == nil || len(items) != 0 {
				t.Errorf("items = %v; want empty non-nil slice", items)
			}
		})
	}
}

func TestContentRepository_GetContentByID(t *testing.T) {
	record := map[string]interface{}{
		"Id": 3, "type": "lesson", "title": "한국어 문법 기초",
		"likes": 31, "created_at": "2025-04-01T10:00:00Z",
	}
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var params map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&params)
		where, _ := params["where"].([]interface{})
		if len(where) == 0 {
			t.Error("detail fetch sent no where clause")
		}
		fmt.Fprint(w, fetchResponse(record))
	})
	repo := NewContentRepository(client)

	item, err := repo.GetContentByID(context.Background(), 3)
	if err != nil {
		t.Fatalf("GetContentByID() failed: %v", err)
	}
	if item.ID != 3 || item.Type != content.TypeLesson || item.Likes != 31 {
		t.Errorf("item = %+v", item)
	}
	want := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	if !item.CreatedAt.Equal(want) {
		t.Errorf("CreatedAt = %v; want %v", item.CreatedAt, want)
	}
}

func TestContentRepository_GetContentByID_notFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, fetchResponse())
	})
	repo := NewContentRepository(client)

	if _, err := repo.GetContentByID(context.Background(), 99); err != content.ErrNotFound {
		t.Errorf("GetContentByID() error = %v; want %v", err, content.ErrNotFound)
	}
}

func TestContentRepository_GetContentByID_remoteFailure(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"success":false,"message":"nope"}`)
	})
	repo := NewContentRepository(client)

	_, err := repo.GetContentByID(context.Background(), 1)
	if err == nil {
		t.Fatal("GetContentByID() did not fail")
	}
	if _, ok := err.(*core.RemoteError); !ok {
		t.Errorf("error = %T; want *core.RemoteError", err)
	}
}

func TestContentRepository_CreateContent(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/create") {
			t.Errorf("path = %s; want create op", r.URL.Path)
		}
		var payload struct {
			Records []map[string]interface{} `json:"records"`
		}
		_ = json.NewDecoder(r.Body).Decode(&payload)
		if len(payload.Records) != 1 {
			t.Fatalf("records = %d; want 1", len(payload.Records))
		}
		if _, ok := payload.Records[0]["Id"]; ok {
			t.Error("create sent a caller-chosen identity")
		}

		stored := payload.Records[0]
		stored["Id"] = 9
		res, _ := json.Marshal(map[string]interface{}{
			"success": true,
			"results": []map[string]interface{}{{"success": true, "data": stored}},
		})
		w.Write(res)
	})
	repo := NewContentRepository(client)

	item, err := repo.CreateContent(context.Background(), content.Content{
		Type: content.TypePost, Title: "새 글", CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("CreateContent() failed: %v", err)
	}
	if item.ID != 9 {
		t.Errorf("ID = %d; want 9", item.ID)
	}
}

func TestContentRepository_DeleteContent(t *testing.T) {
	var deletedIDs []interface{}
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/fetch"):
			fmt.Fprint(w, fetchResponse(map[string]interface{}{
				"Id": 4, "type": "post", "title": "스터디 모집합니다", "created_at": "2025-05-01",
			}))
		case strings.HasSuffix(r.URL.Path, "/delete"):
			var payload struct {
				RecordIDs []interface{} `json:"RecordIds"`
			}
			_ = json.NewDecoder(r.Body).Decode(&payload)
			deletedIDs = payload.RecordIDs
			fmt.Fprint(w, `{"success":true,"results":[{"success":true}]}`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})
	repo := NewContentRepository(client)

	item, err := repo.DeleteContent(context.Background(), 4)
	if err != nil {
		t.Fatalf("DeleteContent() failed: %v", err)
	}
	if item.Title != "스터디 모집합니다" {
		t.Errorf("DeleteContent() = %+v; want the removed copy", item)
	}
	if len(deletedIDs) != 1 {
		t.Errorf("RecordIds = %v; want one id", deletedIDs)
	}
}

func TestApperTime_lenient(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantZero bool
	}{
		{name: "rfc3339", raw: `"2025-04-01T10:00:00Z"`},
		{name: "no zone", raw: `"2025-04-01T10:00:00"`},
		{name: "date only", raw: `"2025-04-01"`},
		{name: "malformed", raw: `"yesterday"`, wantZero: true},
		{name: "null", raw: `null`, wantZero: true},
		{name: "number", raw: `12345`, wantZero: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var at apperTime
			if err := json.Unmarshal([]byte(tt.raw), &at); err != nil {
				t.Fatalf("Unmarshal(%s) failed: %v", tt.raw, err)
			}
			if at.IsZero() != tt.wantZero {
				t.Errorf("IsZero() = %v; want %v", at.IsZero(), tt.wantZero)
			}
		})
	}
}
