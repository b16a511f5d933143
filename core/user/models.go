package user

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// Ref is a lightweight user back-reference embedded in content and
// activities for display purposes. Lookup only; carries no ownership.
type Ref struct {
	UserID       int    `json:"user_id"`
	DisplayName  string `json:"display_name"`
	PhotoURL     string `json:"photo_url,omitempty"`
	ExpertiseTag string `json:"expertise_tag,omitempty"`
}

type (
	NotificationSettings struct {
		Email    bool `json:"email"`
		Push     bool `json:"push"`
		Events   bool `json:"events"`
		Comments bool `json:"comments"`
	}

	PrivacySettings struct {
		ShowProfile   bool `json:"showProfile"`
		ShowActivity  bool `json:"showActivity"`
		AllowMessages bool `json:"allowMessages"`
	}

	Preferences struct {
		Language string `json:"language"`
		Theme    string `json:"theme"`
		Timezone string `json:"timezone"`
	}

	Settings struct {
		Notifications NotificationSettings `json:"notifications"`
		Privacy       PrivacySettings      `json:"privacy"`
		Preferences   Preferences          `json:"preferences"`
	}
)

// DefaultSettings are applied to users created without explicit settings.
func DefaultSettings() Settings {
	return Settings{
		Notifications: NotificationSettings{Email: true, Push: true, Events: true, Comments: false},
		Privacy:       PrivacySettings{ShowProfile: true, ShowActivity: false, AllowMessages: true},
		Preferences:   Preferences{Language: "ko", Theme: "light", Timezone: "Asia/Seoul"},
	}
}

type User struct {
	ID           int       `json:"user_id"`
	DisplayName  string    `json:"display_name"`
	Email        string    `json:"email,omitempty"`
	PhotoURL     string    `json:"photo_url,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	ExpertiseTag string    `json:"expertise_tag,omitempty"`
	Settings     Settings  `json:"settings"`
	CreatedAt    time.Time `json:"created_at"`
}

func (u User) Ref() Ref {
	return Ref{
		UserID:       u.ID,
		DisplayName:  u.DisplayName,
		PhotoURL:     u.PhotoURL,
		ExpertiseTag: u.ExpertiseTag,
	}
}

// NewUser contains information needed to create a new User.
type NewUser struct {
	DisplayName  string `json:"display_name" validate:"required"`
	Email        string `json:"email" validate:"omitempty,email"`
	PhotoURL     string `json:"photo_url"`
	Bio          string `json:"bio"`
	ExpertiseTag string `json:"expertise_tag"`
}

// UpdateUser defines what information may be provided to modify an existing
// User. Absent fields are left untouched.
type UpdateUser struct {
	DisplayName  null.String `json:"display_name"`
	Email        null.String `json:"email"`
	PhotoURL     null.String `json:"photo_url"`
	Bio          null.String `json:"bio"`
	ExpertiseTag null.String `json:"expertise_tag"`
	Settings     *Settings   `json:"settings"`
}

// Merge applies the provided fields onto usr.
func (uu UpdateUser) Merge(usr User) User {
	if uu.DisplayName.Valid {
		usr.DisplayName = uu.DisplayName.String
	}
	if uu.Email.Valid {
		usr.Email = uu.Email.String
	}
	if uu.PhotoURL.Valid {
		usr.PhotoURL = uu.PhotoURL.String
	}
	if uu.Bio.Valid {
		usr.Bio = uu.Bio.String
	}
	if uu.ExpertiseTag.Valid {
		usr.ExpertiseTag = uu.ExpertiseTag.String
	}
	if uu.Settings != nil {
		usr.Settings = *uu.Settings
	}
	return usr
}
