package echoapi

import (
	"net/http"
	"strings"
	"testing"

	"github.com/juntaeschool/backend/core/space"
)

var fixtureSpaces = []space.Space{
	{ID: "home", Name: "홈", Icon: "Home", SpaceType: space.TypeHome, SortOrder: 0},
	{ID: "courses", Name: "강의", Icon: "BookOpen", SpaceType: space.TypeCourse, SortOrder: 1},
	{ID: "forums", Name: "커뮤니티", Icon: "MessageSquare", SpaceType: space.TypeForum, SortOrder: 2},
	{ID: "events", Name: "이벤트", Icon: "Calendar", SpaceType: space.TypeEvent, SortOrder: 3},
	{ID: "resources", Name: "자료실", Icon: "FolderOpen", SpaceType: space.TypeResource, SortOrder: 4},
}

func TestSpaceAPI_query(t *testing.T) {
	server := setup(t)

	tests := []httpTest{
		{
			name: "spaces in display order", method: http.MethodGet, path: "/v1/spaces",
			wantCode: http.StatusOK, wantData: marshallObj(t, fixtureSpaces),
		},
		{
			name: "single space", method: http.MethodGet, path: "/v1/spaces/courses",
			wantCode: http.StatusOK, wantData: marshallObj(t, fixtureSpaces[1]),
		},
		{
			name: "forum stats", method: http.MethodGet, path: "/v1/spaces/forums/stats",
			wantCode: http.StatusOK,
			wantData: marshallObj(t, space.Stats{TotalContent: 3, ActiveMembers: 3, ThisWeek: 2, Engagement: 100}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			server.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func TestSpaceAPI_create(t *testing.T) {
	server := setup(t)

	req, rec := newRequest(http.MethodPost, "/v1/spaces", []byte(`{"name":"스터디 그룹","space_type":"forum","icon":"Users"}`))
	server.ServeHTTP(rec, req)
	checkCode(t, rec, http.StatusCreated)

	var sp space.Space
	decodeBody(t, rec, &sp)
	if !strings.HasPrefix(sp.ID, "space_") {
		t.Errorf("ID = %q; want a generated space_ id", sp.ID)
	}
	if sp.SortOrder != 5 {
		t.Errorf("SortOrder = %d; want 5, after the fixtures", sp.SortOrder)
	}
	if sp.Name != "스터디 그룹" || sp.SpaceType != space.TypeForum {
		t.Errorf("created space = %+v", sp)
	}
}

func TestSpaceAPI_create_validation(t *testing.T) {
	server := setup(t)

	req, rec := newRequest(http.MethodPost, "/v1/spaces", []byte(`{"name":"스터디 그룹","space_type":"group"}`))
	server.ServeHTTP(rec, req)
	checkCode(t, rec, http.StatusBadRequest)

	var body map[string]string
	decodeBody(t, rec, &body)
	if _, ok := body["space_type"]; !ok {
		t.Errorf("body = %v; want a space_type field error", body)
	}
}

func TestSpaceAPI_update_partialMerge(t *testing.T) {
	server := setup(t)

	req, rec := newRequest(http.MethodPut, "/v1/spaces/forums", []byte(`{"name":"자유게시판"}`))
	server.ServeHTTP(rec, req)
	checkCode(t, rec, http.StatusOK)

	var sp space.Space
	decodeBody(t, rec, &sp)
	if sp.Name != "자유게시판" {
		t.Errorf("Name = %q; want the new name", sp.Name)
	}
	// untouched fields survive
	if sp.Icon != "MessageSquare" || sp.SpaceType != space.TypeForum || sp.SortOrder != 2 {
		t.Errorf("space = %+v; partial update clobbered it", sp)
	}
}

func TestSpaceAPI_destroy(t *testing.T) {
	server := setup(t)

	req, rec := newRequest(http.MethodDelete, "/v1/spaces/resources")
	server.ServeHTTP(rec, req)
	checkCode(t, rec, http.StatusOK)

	var removed space.Space
	decodeBody(t, rec, &removed)
	if removed.ID != "resources" {
		t.Errorf("removed = %+v; want the resources space", removed)
	}

	req, rec = newRequest(http.MethodGet, "/v1/spaces/resources")
	server.ServeHTTP(rec, req)
	checkCode(t, rec, http.StatusNotFound)

	// content that referenced the space is left in place
	req, rec = newRequest(http.MethodGet, "/v1/content?type=resource")
	server.ServeHTTP(rec, req)
	checkCode(t, rec, http.StatusOK)
	var items []map[string]interface{}
	decodeBody(t, rec, &items)
	if len(items) != 2 {
		t.Errorf("resources = %d; want the 2 fixture items", len(items))
	}
}
