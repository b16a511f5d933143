package stats

import (
	"context"
	"time"

	"github.com/juntaeschool/backend/core/activity"
	"github.com/juntaeschool/backend/core/content"
	"github.com/juntaeschool/backend/core/event"
	"github.com/juntaeschool/backend/core/space"
	"github.com/juntaeschool/backend/core/user"
)

// Display-only product figures the stores do not track.
const (
	satisfactionScore = 4.8
	growthPercent     = 15.2
	hoursPerLesson    = 4
)

// Service computes the derived, denormalized aggregates shown on the
// dashboard, space headers and profile page. Figures are display hints,
// never authoritative.
type Service struct {
	contentRepo  content.Repository
	spaceRepo    space.Repository
	eventRepo    event.Repository
	userRepo     user.Repository
	activityRepo activity.Repository
}

func NewService(
	contentRepo content.Repository,
	spaceRepo space.Repository,
	eventRepo event.Repository,
	userRepo user.Repository,
	activityRepo activity.Repository,
) *Service {
	return &Service{
		contentRepo:  contentRepo,
		spaceRepo:    spaceRepo,
		eventRepo:    eventRepo,
		userRepo:     userRepo,
		activityRepo: activityRepo,
	}
}

func (svc *Service) Overview(ctx context.Context) (Overview, error) {
	users, err := svc.userRepo.QueryAllUsers(ctx)
	if err != nil {
		return Overview{}, err
	}
	items, err := svc.contentRepo.QueryAllContent(ctx)
	if err != nil {
		return Overview{}, err
	}
	events, err := svc.eventRepo.QueryAllEvents(ctx)
	if err != nil {
		return Overview{}, err
	}
	activities, err := svc.activityRepo.QueryAllActivities(ctx)
	if err != nil {
		return Overview{}, err
	}

	now := time.Now()
	weekAgo := now.AddDate(0, 0, -7)

	var lessons, resources int
	completed := make(map[string]bool)
	for _, item := range items {
		switch item.Type {
		case content.TypeLesson:
			lessons++
		case content.TypeResource:
			resources++
		}
	}

	var monthly int
	for _, ev := range events {
		if ev.StartsAt.Year() == now.Year() && ev.StartsAt.Month() == now.Month() {
			monthly++
		}
	}

	weeklyUsers := make(map[int]bool)
	for _, a := range activities {
		if a.CreatedAt.After(weekAgo) {
			weeklyUsers[a.User.UserID] = true
		}
		if a.Type == activity.TypeLessonCompleted && a.ContentTitle != "" {
			completed[a.ContentTitle] = true
		}
	}

	var completionRate int
	if lessons > 0 {
		completionRate = len(completed) * 100 / lessons
		if completionRate > 100 {
			completionRate = 100
		}
	}

	return Overview{
		TotalMembers:   len(users),
		ActiveLessons:  lessons,
		MonthlyEvents:  monthly,
		TotalResources: resources,
		WeeklyActive:   len(weeklyUsers),
		CompletionRate: completionRate,
		Satisfaction:   satisfactionScore,
		Growth:         growthPercent,
	}, nil
}

// Space computes a space's header aggregates from its scoped content and
// the activities attributed to it.
func (svc *Service) Space(ctx context.Context, spaceID string) (space.Stats, error) {
	sp, err := svc.spaceRepo.GetSpaceByID(ctx, spaceID)
	if err != nil {
		return space.Stats{}, err
	}
	items, err := svc.contentRepo.QueryContentBySpace(ctx, spaceID)
	if err != nil {
		return space.Stats{}, err
	}
	activities, err := svc.activityRepo.QueryAllActivities(ctx)
	if err != nil {
		return space.Stats{}, err
	}

	weekAgo := time.Now().AddDate(0, 0, -7)

	var thisWeek, engaged int
	for _, item := range items {
		if item.CreatedAt.After(weekAgo) {
			thisWeek++
		}
		if item.Likes > 0 || item.Comments > 0 {
			engaged++
		}
	}

	members := make(map[int]bool)
	for _, a := range activities {
		if a.SpaceName == sp.Name {
			members[a.User.UserID] = true
		}
	}

	var engagement int
	if len(items) > 0 {
		engagement = engaged * 100 / len(items)
	}

	return space.Stats{
		TotalContent:  len(items),
		ActiveMembers: len(members),
		ThisWeek:      thisWeek,
		Engagement:    engagement,
	}, nil
}

// User computes a member's profile aggregates from their activity stream
// and authored content.
func (svc *Service) User(ctx context.Context, userID int) (UserStats, error) {
	usr, err := svc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return UserStats{}, err
	}
	activities, err := svc.activityRepo.QueryActivitiesByUser(ctx, userID)
	if err != nil {
		return UserStats{}, err
	}
	items, err := svc.contentRepo.QueryAllContent(ctx)
	if err != nil {
		return UserStats{}, err
	}

	var st UserStats
	st.JoinDate = usr.CreatedAt

	for _, a := range activities {
		switch a.Type {
		case activity.TypeLessonCompleted:
			st.CompletedLessons++
		case activity.TypePostCreated:
			st.Posts++
		case activity.TypeCommentAdded:
			st.Comments++
		case activity.TypeEventJoined:
			st.Events++
		case activity.TypeResourceDownloaded:
			st.Downloads++
		}
	}

	var lessons int
	for _, item := range items {
		if item.Type == content.TypeLesson {
			lessons++
		}
		if item.Author.UserID == userID {
			st.Likes += item.Likes
		}
	}

	st.StudyHours = st.CompletedLessons * hoursPerLesson
	if lessons > 0 {
		st.Progress = st.CompletedLessons * 100 / lessons
		if st.Progress > 100 {
			st.Progress = 100
		}
	}
	return st, nil
}
