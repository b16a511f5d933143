package space

import (
	"sort"

	"github.com/volatiletech/null/v8"

	"github.com/juntaeschool/backend/core/content"
)

// Type classifies a space and decides which content type it hosts.
type Type string

const (
	TypeHome     Type = "home"
	TypeCourse   Type = "course"
	TypeForum    Type = "forum"
	TypeEvent    Type = "event"
	TypeResource Type = "resource"
)

func (t Type) Valid() bool {
	switch t {
	case TypeHome, TypeCourse, TypeForum, TypeEvent, TypeResource:
		return true
	}
	return false
}

// ContentType maps a space type to the content type it hosts. The home
// space aggregates everything and has no mapping.
func (t Type) ContentType() (content.Type, bool) {
	switch t {
	case TypeCourse:
		return content.TypeLesson, true
	case TypeForum:
		return content.TypePost, true
	case TypeEvent:
		return content.TypeEvent, true
	case TypeResource:
		return content.TypeResource, true
	}
	return "", false
}

// Description returns the space's Korean tagline.
func (t Type) Description() string {
	switch t {
	case TypeCourse:
		return "강의 영상과 학습 자료를 확인하고 진도를 관리하세요."
	case TypeForum:
		return "다른 학습자들과 자유롭게 소통하고 정보를 공유하세요."
	case TypeEvent:
		return "온라인 세미나, 워크샵 등 다양한 이벤트에 참여하세요."
	case TypeResource:
		return "학습에 도움이 되는 자료들을 다운로드하고 활용하세요."
	}
	return "이 스페이스에서 다양한 콘텐츠를 확인하세요."
}

// Stats are derived, denormalized display aggregates; never authoritative.
type Stats struct {
	TotalContent  int `json:"totalContent"`
	ActiveMembers int `json:"activeMembers"`
	ThisWeek      int `json:"thisWeek"`
	Engagement    int `json:"engagement"` // percent
}

type Space struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	SpaceType Type   `json:"space_type"`
	SortOrder int    `json:"sort_order"`
	Stats     *Stats `json:"stats,omitempty"`
}

// NewSpace contains information needed to create a new Space. The identity
// and sort order are store-generated.
type NewSpace struct {
	Name      string `json:"name" validate:"required"`
	Icon      string `json:"icon"`
	SpaceType Type   `json:"space_type" validate:"required,oneof=home course forum event resource"`
}

// UpdateSpace defines what information may be provided to modify an
// existing Space. Absent fields are left untouched.
type UpdateSpace struct {
	Name      null.String `json:"name"`
	Icon      null.String `json:"icon"`
	SpaceType null.String `json:"space_type"`
	SortOrder null.Int    `json:"sort_order"`
}

// Merge applies the provided fields onto sp.
func (us UpdateSpace) Merge(sp Space) Space {
	if us.Name.Valid {
		sp.Name = us.Name.String
	}
	if us.Icon.Valid {
		sp.Icon = us.Icon.String
	}
	if us.SpaceType.Valid {
		sp.SpaceType = Type(us.SpaceType.String)
	}
	if us.SortOrder.Valid {
		sp.SortOrder = us.SortOrder.Int
	}
	return sp
}

// SortSpaces orders spaces for display: ascending sort_order, ties keeping
// their original relative order.
func SortSpaces(spaces []Space) []Space {
	out := make([]Space, len(spaces))
	copy(out, spaces)
	sort.SliceStable(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out
}
