package activity

import (
	"reflect"
	"testing"
	"time"
)

func TestType_display(t *testing.T) {
	tests := []struct {
		typ       Type
		wantLabel string
		wantIcon  string
		wantBadge string
	}{
		{TypePostCreated, "새 게시글을 작성했습니다", "FileText", "primary"},
		{TypeLessonCompleted, "강의를 완료했습니다", "CheckCircle", "success"},
		{TypeLikeAdded, "좋아요를 눌렀습니다", "Heart", "error"},
		// unknown types degrade to generic display values
		{Type("unknown_thing"), "활동했습니다", "Activity", "default"},
	}
	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			if got := tt.typ.Label(); got != tt.wantLabel {
				t.Errorf("Label() = %q; want %q", got, tt.wantLabel)
			}
			if got := tt.typ.Icon(); got != tt.wantIcon {
				t.Errorf("Icon() = %q; want %q", got, tt.wantIcon)
			}
			if got := tt.typ.BadgeColor(); got != tt.wantBadge {
				t.Errorf("BadgeColor() = %q; want %q", got, tt.wantBadge)
			}
		})
	}
}

func TestSortRecent(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	activities := []Activity{
		{ID: 1, CreatedAt: base.Add(-3 * time.Hour)},
		{ID: 2, CreatedAt: base.Add(-1 * time.Hour)},
		{ID: 3, CreatedAt: base.Add(-2 * time.Hour)},
	}

	tests := []struct {
		name  string
		limit int
		want  []int
	}{
		{name: "newest first", limit: 0, want: []int{2, 3, 1}},
		{name: "truncated", limit: 2, want: []int{2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SortRecent(activities, tt.limit)
			gotIDs := make([]int, 0, len(got))
			for _, a := range got {
				gotIDs = append(gotIDs, a.ID)
			}
			if !reflect.DeepEqual(gotIDs, tt.want) {
				t.Errorf("SortRecent() = %v; want %v", gotIDs, tt.want)
			}
		})
	}

	// input untouched
	if activities[0].ID != 1 {
		t.Error("SortRecent() mutated its input")
	}
}
