package event

import (
	"reflect"
	"testing"
	"time"
)

func TestSelectUpcoming(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	events := []Event{
		{ID: 1, Title: "지난 세미나", StartsAt: now.Add(-24 * time.Hour)},
		{ID: 2, Title: "다음 주 워크샵", StartsAt: now.Add(7 * 24 * time.Hour)},
		{ID: 3, Title: "내일 스터디", StartsAt: now.Add(24 * time.Hour)},
		{ID: 4, Title: "지금 시작", StartsAt: now}, // not strictly future
		{ID: 5, Title: "다음 달 모임", StartsAt: now.Add(30 * 24 * time.Hour)},
	}

	tests := []struct {
		name  string
		limit int
		want  []int
	}{
		{name: "nearest first", limit: 10, want: []int{3, 2, 5}},
		{name: "truncated to limit", limit: 2, want: []int{3, 2}},
		{name: "zero limit keeps all", limit: 0, want: []int{3, 2, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectUpcoming(events, now, tt.limit)
			gotIDs := make([]int, 0, len(got))
			for _, ev := range got {
				gotIDs = append(gotIDs, ev.ID)
			}
			if !reflect.DeepEqual(gotIDs, tt.want) {
				t.Errorf("SelectUpcoming() = %v; want %v", gotIDs, tt.want)
			}
		})
	}
}

func TestSelectUpcoming_empty(t *testing.T) {
	now := time.Now()
	got := SelectUpcoming([]Event{{ID: 1, StartsAt: now.Add(-time.Hour)}}, now, 10)
	if got == nil || len(got) != 0 {
		t.Errorf("SelectUpcoming() = %v; want empty non-nil slice", got)
	}
}
