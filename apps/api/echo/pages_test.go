package echoapi

import (
	"net/http"
	"testing"

	"github.com/juntaeschool/backend/core/content"
	"github.com/juntaeschool/backend/core/event"
	"github.com/juntaeschool/backend/core/space"
	"github.com/juntaeschool/backend/core/user"
)

func TestPageAPI_home(t *testing.T) {
	server := setup(t)

	req, rec := newRequest(http.MethodGet, "/v1/pages/home")
	server.ServeHTTP(rec, req)
	checkCode(t, rec, http.StatusOK)

	var page struct {
		Feed             []content.Content        `json:"feed"`
		Spaces           []space.Space            `json:"spaces"`
		UpcomingEvents   []event.Event            `json:"upcoming_events"`
		RecentActivities []map[string]interface{} `json:"recent_activities"`
		Overview         map[string]interface{}   `json:"overview"`
		User             user.User                `json:"user"`
	}
	decodeBody(t, rec, &page)

	if len(page.Feed) != 8 {
		t.Errorf("feed = %d items; want 8", len(page.Feed))
	}
	if len(page.Spaces) != 5 {
		t.Errorf("spaces = %d; want 5", len(page.Spaces))
	}
	if len(page.UpcomingEvents) != 3 { // fixtures hold 3 future events
		t.Errorf("upcoming = %d; want 3", len(page.UpcomingEvents))
	}
	if page.User.ID != 1 || page.User.DisplayName != "준태 학습자" {
		t.Errorf("user = %+v; want the session user", page.User)
	}
	if len(page.RecentActivities) == 0 {
		t.Error("no recent activities")
	} else if _, ok := page.RecentActivities[0]["display"]; !ok {
		t.Error("activity entries carry no display info")
	}
	if page.Overview["totalMembers"] != float64(4) {
		t.Errorf("totalMembers = %v; want 4", page.Overview["totalMembers"])
	}
}

func TestPageAPI_home_filtered(t *testing.T) {
	server := setup(t)

	req, rec := newRequest(http.MethodGet, "/v1/pages/home?type=resource")
	server.ServeHTTP(rec, req)
	checkCode(t, rec, http.StatusOK)

	var page struct {
		Feed []content.Content `json:"feed"`
	}
	decodeBody(t, rec, &page)
	if len(page.Feed) != 2 {
		t.Fatalf("feed = %d items; want the 2 resources", len(page.Feed))
	}
	for _, item := range page.Feed {
		if item.Type != content.TypeResource {
			t.Errorf("item %d type = %s; want resource", item.ID, item.Type)
		}
	}
}

func TestPageAPI_space(t *testing.T) {
	server := setup(t)

	req, rec := newRequest(http.MethodGet, "/v1/pages/spaces/courses")
	server.ServeHTTP(rec, req)
	checkCode(t, rec, http.StatusOK)

	var page struct {
		Space space.Space            `json:"space"`
		Feed  []content.Content      `json:"feed"`
		Stats map[string]interface{} `json:"stats"`
	}
	decodeBody(t, rec, &page)

	if page.Space.ID != "courses" {
		t.Errorf("space = %+v", page.Space)
	}
	for _, item := range page.Feed {
		if item.Type != content.TypeLesson {
			t.Errorf("item %d type = %s; a course space holds lessons only", item.ID, item.Type)
		}
	}
	if page.Stats["totalContent"] != float64(len(page.Feed)) {
		t.Errorf("totalContent = %v; want %d", page.Stats["totalContent"], len(page.Feed))
	}
}

func TestPageAPI_space_notFound(t *testing.T) {
	server := setup(t)

	req, rec := newRequest(http.MethodGet, "/v1/pages/spaces/nope")
	server.ServeHTTP(rec, req)
	checkCode(t, rec, http.StatusNotFound)

	var body map[string]string
	decodeBody(t, rec, &body)
	if body["error"] != "스페이스를 찾을 수 없습니다." {
		t.Errorf("error = %q; want the product message", body["error"])
	}
}

func TestPageAPI_profile(t *testing.T) {
	server := setup(t)

	req, rec := newRequest(http.MethodGet, "/v1/pages/profile")
	server.ServeHTTP(rec, req)
	checkCode(t, rec, http.StatusOK)

	var page struct {
		User       user.User                `json:"user"`
		Stats      map[string]interface{}   `json:"stats"`
		Activities []map[string]interface{} `json:"activities"`
	}
	decodeBody(t, rec, &page)

	if page.User.ID != 1 {
		t.Errorf("user = %+v; want the session user", page.User)
	}
	if len(page.Activities) == 0 {
		t.Error("no activities for the session user")
	}
	if page.Stats["completedLessons"] != float64(1) { // one lesson_completed fixture
		t.Errorf("completedLessons = %v; want 1", page.Stats["completedLessons"])
	}
}

func TestPageAPI_settingsRoundTrip(t *testing.T) {
	server := setup(t)

	settings := user.DefaultSettings()
	settings.Preferences.Theme = "dark"
	settings.Notifications.Comments = true

	req, rec := newRequest(http.MethodPut, "/v1/pages/settings", marshallObj(t, settings))
	server.ServeHTTP(rec, req)
	checkCode(t, rec, http.StatusOK)

	var saved struct {
		Message  string        `json:"message"`
		Settings user.Settings `json:"settings"`
	}
	decodeBody(t, rec, &saved)
	if saved.Message != "설정이 저장되었습니다!" {
		t.Errorf("message = %q; want the save toast", saved.Message)
	}

	// persisted on the session user
	req, rec = newRequest(http.MethodGet, "/v1/pages/settings")
	server.ServeHTTP(rec, req)
	checkCode(t, rec, http.StatusOK)

	var got user.Settings
	decodeBody(t, rec, &got)
	if got.Preferences.Theme != "dark" || !got.Notifications.Comments {
		t.Errorf("settings = %+v; want the saved values", got)
	}
}

func TestPageAPI_saveProfile(t *testing.T) {
	server := setup(t)

	req, rec := newRequest(http.MethodPut, "/v1/pages/profile", []byte(`{"display_name":"준태","bio":"새 소개"}`))
	server.ServeHTTP(rec, req)
	checkCode(t, rec, http.StatusOK)

	var saved struct {
		Message string    `json:"message"`
		User    user.User `json:"user"`
	}
	decodeBody(t, rec, &saved)
	if saved.Message != "프로필이 업데이트되었습니다!" {
		t.Errorf("message = %q; want the update toast", saved.Message)
	}
	if saved.User.DisplayName != "준태" || saved.User.Bio != "새 소개" {
		t.Errorf("user = %+v", saved.User)
	}
	// untouched fields survive
	if saved.User.Email != "juntae@example.com" {
		t.Errorf("Email = %q; partial update clobbered it", saved.User.Email)
	}
}
