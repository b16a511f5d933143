package activity

import (
	"sort"
	"time"

	"github.com/juntaeschool/backend/core/user"
)

// Type classifies an activity entry.
type Type string

const (
	TypePostCreated        Type = "post_created"
	TypeLessonCompleted    Type = "lesson_completed"
	TypeEventJoined        Type = "event_joined"
	TypeResourceDownloaded Type = "resource_downloaded"
	TypeCommentAdded       Type = "comment_added"
	TypeLikeAdded          Type = "like_added"
)

// Fixed display lookups. Unknown types fall back to a generic entry
// instead of failing.
var (
	labels = map[Type]string{
		TypePostCreated:        "새 게시글을 작성했습니다",
		TypeLessonCompleted:    "강의를 완료했습니다",
		TypeEventJoined:        "이벤트에 참여했습니다",
		TypeResourceDownloaded: "자료를 다운로드했습니다",
		TypeCommentAdded:       "댓글을 작성했습니다",
		TypeLikeAdded:          "좋아요를 눌렀습니다",
	}

	icons = map[Type]string{
		TypePostCreated:        "FileText",
		TypeLessonCompleted:    "CheckCircle",
		TypeEventJoined:        "Calendar",
		TypeResourceDownloaded: "Download",
		TypeCommentAdded:       "MessageCircle",
		TypeLikeAdded:          "Heart",
	}

	badgeColors = map[Type]string{
		TypePostCreated:        "primary",
		TypeLessonCompleted:    "success",
		TypeEventJoined:        "accent",
		TypeResourceDownloaded: "secondary",
		TypeCommentAdded:       "default",
		TypeLikeAdded:          "error",
	}
)

func (t Type) Label() string {
	if s, ok := labels[t]; ok {
		return s
	}
	return "활동했습니다"
}

func (t Type) Icon() string {
	if s, ok := icons[t]; ok {
		return s
	}
	return "Activity"
}

func (t Type) BadgeColor() string {
	if s, ok := badgeColors[t]; ok {
		return s
	}
	return "default"
}

type Activity struct {
	ID           int       `json:"Id"`
	Type         Type      `json:"type"`
	User         user.Ref  `json:"user"`
	ContentTitle string    `json:"content_title,omitempty"`
	SpaceName    string    `json:"space_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Display returns the derived feed-entry presentation for the activity.
func (a Activity) Display() DisplayInfo {
	return DisplayInfo{
		Label:      a.Type.Label(),
		Icon:       a.Type.Icon(),
		BadgeColor: a.Type.BadgeColor(),
	}
}

type DisplayInfo struct {
	Label      string `json:"label"`
	Icon       string `json:"icon"`
	BadgeColor string `json:"badge_color"`
}

// NewActivity contains information needed to record a new Activity.
type NewActivity struct {
	Type         Type   `json:"type" validate:"required"`
	UserID       int    `json:"user_id" validate:"required"`
	ContentTitle string `json:"content_title"`
	SpaceName    string `json:"space_name"`
}

// SortRecent orders activities most recent first, truncated to limit.
// Equal timestamps keep their original relative order.
func SortRecent(activities []Activity, limit int) []Activity {
	out := make([]Activity, len(activities))
	copy(out, activities)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
