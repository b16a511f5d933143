package user

import (
	"testing"

	"github.com/volatiletech/null/v8"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if !s.Notifications.Email || !s.Notifications.Push || !s.Notifications.Events {
		t.Errorf("Notifications = %+v; email, push and events default on", s.Notifications)
	}
	if s.Notifications.Comments {
		t.Error("Notifications.Comments defaults off")
	}
	if !s.Privacy.ShowProfile || s.Privacy.ShowActivity || !s.Privacy.AllowMessages {
		t.Errorf("Privacy = %+v; want show_profile and allow_messages only", s.Privacy)
	}
	if s.Preferences.Language != "ko" || s.Preferences.Theme != "light" || s.Preferences.Timezone != "Asia/Seoul" {
		t.Errorf("Preferences = %+v; want ko/light/Asia/Seoul", s.Preferences)
	}
}

func TestUpdateUser_Merge(t *testing.T) {
	usr := User{
		ID:          1,
		DisplayName: "준태 학습자",
		Email:       "juntae@example.com",
		Bio:         "안녕하세요",
		Settings:    DefaultSettings(),
	}

	settings := DefaultSettings()
	settings.Preferences.Theme = "dark"

	merged := UpdateUser{
		DisplayName: null.StringFrom("준태"),
		Settings:    &settings,
	}.Merge(usr)

	if merged.DisplayName != "준태" {
		t.Errorf("DisplayName = %q; want %q", merged.DisplayName, "준태")
	}
	if merged.Settings.Preferences.Theme != "dark" {
		t.Errorf("Theme = %q; want dark", merged.Settings.Preferences.Theme)
	}
	// untouched fields survive
	if merged.Email != usr.Email || merged.Bio != usr.Bio || merged.ID != 1 {
		t.Errorf("Merge() clobbered untouched fields: %+v", merged)
	}
}

func TestUser_Ref(t *testing.T) {
	usr := User{
		ID:           7,
		DisplayName:  "김개발",
		PhotoURL:     "https://example.com/p.png",
		ExpertiseTag: "백엔드",
		Bio:          "not part of the ref",
	}

	ref := usr.Ref()
	want := Ref{UserID: 7, DisplayName: "김개발", PhotoURL: "https://example.com/p.png", ExpertiseTag: "백엔드"}
	if ref != want {
		t.Errorf("Ref() = %+v; want %+v", ref, want)
	}
}
