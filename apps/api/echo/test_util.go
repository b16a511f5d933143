package echoapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"github.com/juntaeschool/backend/core"
	"github.com/juntaeschool/backend/core/activity"
	"github.com/juntaeschool/backend/core/content"
	"github.com/juntaeschool/backend/core/event"
	"github.com/juntaeschool/backend/core/space"
	"github.com/juntaeschool/backend/core/stats"
	"github.com/juntaeschool/backend/core/user"
	emailsvc "github.com/juntaeschool/backend/services/email"
	inmemdb "github.com/juntaeschool/backend/storage/database/inmem"
	"github.com/juntaeschool/backend/tests"
)

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	wantCode int
	wantData []byte
}

func setup(t *testing.T) *Server {
	t.Helper()

	db, err := inmemdb.OpenSeeded()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	contentRepo := inmemdb.NewContentRepository(db)
	spaceRepo := inmemdb.NewSpaceRepository(db)
	eventRepo := inmemdb.NewEventRepository(db)
	usrRepo := inmemdb.NewUserRepository(db)
	activityRepo := inmemdb.NewActivityRepository(db)

	conf := testutil.NewConfig()
	validate := validator.New()
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	core.InitValidators(validate, translator)

	return NewServer(ServerDeps{
		Conf:        conf,
		Logger:      testutil.Logger{},
		ContentSvc:  content.NewService(contentRepo),
		SpaceSvc:    space.NewService(spaceRepo),
		EventSvc:    event.NewService(eventRepo, usrRepo, emailsvc.NewConsoleServiceMock(conf)),
		UserSvc:     user.NewService(usrRepo, conf.CurrentUserID),
		ActivitySvc: activity.NewService(activityRepo, usrRepo),
		StatsSvc:    stats.NewService(contentRepo, spaceRepo, eventRepo, usrRepo, activityRepo),
		Validate:    validate,
		Translator:  translator,
	})
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	return req, rec
}

func marshallObj(t *testing.T, obj interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshallObj() failed: %v", err)
	}
	return data
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decoding response %q failed: %v", rec.Body.String(), err)
	}
}

func checkCode(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("code = %d; want %d; body: %s", rec.Code, want, rec.Body.String())
	}
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	return assert.ElementsMatch(t, j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
