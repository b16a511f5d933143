package inmemdb

import (
	"time"

	"github.com/juntaeschool/backend/core/activity"
	"github.com/juntaeschool/backend/core/content"
	"github.com/juntaeschool/backend/core/event"
	"github.com/juntaeschool/backend/core/space"
	"github.com/juntaeschool/backend/core/user"
)

// seed loads the community fixtures. Timestamps are relative to the
// process start so upcoming/recent windows stay meaningful.
func seed(db *DB) {
	now := time.Now().UTC()

	db.spaces = []space.Space{
		{ID: "home", Name: "홈", Icon: "Home", SpaceType: space.TypeHome, SortOrder: 0},
		{ID: "courses", Name: "강의", Icon: "BookOpen", SpaceType: space.TypeCourse, SortOrder: 1},
		{ID: "forums", Name: "커뮤니티", Icon: "MessageSquare", SpaceType: space.TypeForum, SortOrder: 2},
		{ID: "events", Name: "이벤트", Icon: "Calendar", SpaceType: space.TypeEvent, SortOrder: 3},
		{ID: "resources", Name: "자료실", Icon: "FolderOpen", SpaceType: space.TypeResource, SortOrder: 4},
	}

	db.users = []user.User{
		{
			ID: 1, DisplayName: "준태 학습자", Email: "juntae@example.com",
			Bio: "Korean language enthusiast", ExpertiseTag: "Korean Learner",
			Settings: user.DefaultSettings(), CreatedAt: now.AddDate(0, -8, 0),
		},
		{
			ID: 2, DisplayName: "김선생", Email: "kim@example.com",
			Bio: "10년차 한국어 강사입니다.", ExpertiseTag: "한국어 강사",
			Settings: user.DefaultSettings(), CreatedAt: now.AddDate(-1, 0, 0),
		},
		{
			ID: 3, DisplayName: "이하나", Email: "hana@example.com",
			Bio: "함께 공부해요!", ExpertiseTag: "중급 학습자",
			Settings: user.DefaultSettings(), CreatedAt: now.AddDate(0, -3, 0),
		},
		{
			ID: 4, DisplayName: "박민수",
			Bio: "이제 막 시작했습니다.", ExpertiseTag: "입문",
			Settings: user.DefaultSettings(), CreatedAt: now.AddDate(0, -1, 0),
		},
	}

	teacher := db.users[1].Ref()
	hana := db.users[2].Ref()
	juntae := db.users[0].Ref()

	db.content = []content.Content{
		{
			ID: 1, Type: content.TypePost, Title: "커뮤니티 이용 안내",
			Body: "준태스쿨 커뮤니티에 오신 것을 환영합니다. 게시판 규칙을 꼭 읽어주세요.",
			IsPinned: true, Likes: 42, Comments: 12, Author: teacher, SpaceID: "forums",
			CreatedAt: now.AddDate(0, -2, 0),
		},
		{
			ID: 2, Type: content.TypeLesson, Title: "한국어 문법 기초",
			Description: "조사와 어미의 기본을 다루는 입문 강의입니다.", Tag: "입문",
			Likes: 31, Comments: 7, Author: teacher, SpaceID: "courses",
			CreatedAt: now.AddDate(0, -1, -12),
		},
		{
			ID: 3, Type: content.TypeLesson, Title: "발음 클리닉: 받침",
			Description: "받침 발음을 집중적으로 교정하는 심화 강의입니다.", Tag: "중급",
			Likes: 18, Comments: 3, Author: teacher, SpaceID: "courses",
			CreatedAt: now.AddDate(0, 0, -20),
		},
		{
			ID: 4, Type: content.TypePost, Title: "스터디 모집합니다",
			Body: "주 2회 온라인으로 회화 연습할 분 구해요.",
			Likes: 9, Comments: 15, Author: hana, SpaceID: "forums",
			CreatedAt: now.AddDate(0, 0, -5),
		},
		{
			ID: 5, Type: content.TypeResource, Title: "TOPIK 기출 단어장",
			Description: "TOPIK II 빈출 어휘 1,000개 정리 PDF입니다.", Tag: "TOPIK",
			Likes: 27, Comments: 4, Author: teacher, SpaceID: "resources",
			CreatedAt: now.AddDate(0, 0, -9),
		},
		{
			ID: 6, Type: content.TypeEvent, Title: "주간 한국어 회화 모임",
			Description: "매주 수요일 저녁, 자유 주제 회화 연습.",
			Likes: 11, Comments: 2, Author: hana, SpaceID: "events",
			StartsAt: timePtr(now.AddDate(0, 0, 3)), CreatedAt: now.AddDate(0, 0, -3),
		},
		{
			ID: 7, Type: content.TypePost, Title: "오늘 배운 표현 공유",
			Body: "'눈이 높다'라는 표현, 재미있네요.",
			Likes: 5, Comments: 6, Author: juntae, SpaceID: "forums",
			CreatedAt: now.AddDate(0, 0, -1),
		},
		{
			ID: 8, Type: content.TypeResource, Title: "한글 타자 연습 사이트 모음",
			Description: "타자 속도를 올려주는 무료 사이트 링크 모음입니다.",
			Likes: 8, Comments: 1, Author: hana, SpaceID: "resources",
			CreatedAt: now.AddDate(0, 0, -2),
		},
	}

	db.events = []event.Event{
		{ID: 1, Title: "주간 한국어 회화 모임", Description: "자유 주제 회화 연습", StartsAt: now.AddDate(0, 0, 3), Participants: 14, SpaceID: "events"},
		{ID: 2, Title: "TOPIK 대비 특강", Description: "쓰기 영역 집중 대비", StartsAt: now.AddDate(0, 0, 7), Participants: 32, SpaceID: "events"},
		{ID: 3, Title: "온라인 낭독회", Description: "짧은 수필 함께 읽기", StartsAt: now.AddDate(0, 0, 14), Participants: 8, SpaceID: "events"},
		{ID: 4, Title: "신년 맞이 공부 계획 세우기", Description: "지난 워크샵", StartsAt: now.AddDate(0, -1, 0), Participants: 40, SpaceID: "events"},
		{ID: 5, Title: "봄 학기 오리엔테이션", Description: "지난 모임", StartsAt: now.AddDate(0, 0, -10), Participants: 25, SpaceID: "events"},
	}

	db.activities = []activity.Activity{
		{ID: 1, Type: activity.TypeLessonCompleted, User: juntae, ContentTitle: "한국어 문법 기초", SpaceName: "강의", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: 2, Type: activity.TypeEventJoined, User: juntae, ContentTitle: "주간 한국어 회화 모임", SpaceName: "이벤트", CreatedAt: now.AddDate(0, 0, -1)},
		{ID: 3, Type: activity.TypeResourceDownloaded, User: juntae, ContentTitle: "TOPIK 기출 단어장", SpaceName: "자료실", CreatedAt: now.AddDate(0, 0, -3)},
		{ID: 4, Type: activity.TypePostCreated, User: hana, ContentTitle: "스터디 모집합니다", SpaceName: "커뮤니티", CreatedAt: now.AddDate(0, 0, -5)},
		{ID: 5, Type: activity.TypeCommentAdded, User: teacher, ContentTitle: "스터디 모집합니다", SpaceName: "커뮤니티", CreatedAt: now.AddDate(0, 0, -4)},
		{ID: 6, Type: activity.TypeLikeAdded, User: hana, ContentTitle: "커뮤니티 이용 안내", SpaceName: "커뮤니티", CreatedAt: now.AddDate(0, 0, -6)},
		{ID: 7, Type: activity.TypePostCreated, User: juntae, ContentTitle: "오늘 배운 표현 공유", SpaceName: "커뮤니티", CreatedAt: now.AddDate(0, 0, -1)},
		{ID: 8, Type: activity.TypeLessonCompleted, User: hana, ContentTitle: "발음 클리닉: 받침", SpaceName: "강의", CreatedAt: now.AddDate(0, 0, -8)},
	}
}

func timePtr(t time.Time) *time.Time { return &t }
