package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/juntaeschool/backend/core"
	"github.com/juntaeschool/backend/core/activity"
	"github.com/juntaeschool/backend/core/content"
	"github.com/juntaeschool/backend/core/event"
	"github.com/juntaeschool/backend/core/space"
	"github.com/juntaeschool/backend/core/stats"
	"github.com/juntaeschool/backend/core/user"
)

type (
	ServerDeps struct {
		Conf        *core.Config
		Logger      core.Logger
		ContentSvc  *content.Service
		SpaceSvc    *space.Service
		EventSvc    *event.Service
		UserSvc     *user.Service
		ActivitySvc *activity.Service
		StatsSvc    *stats.Service
		Validate    *validator.Validate
		Translator  ut.Translator
	}

	Server struct {
		deps     ServerDeps
		app      *echo.Echo
		errs     chan error
		shutdown chan os.Signal
	}
)

func NewServer(deps ServerDeps) *Server {
	s := &Server{
		deps:     deps,
		app:      echo.New(),
		errs:     make(chan error, 1),
		shutdown: make(chan os.Signal, 1),
	}
	s.setup()
	return s
}

func (s *Server) setup() {
	conf := s.deps.Conf

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !conf.TestMode {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps.Logger, s.deps.Translator, s.signalShutdown)
	s.app.Debug = conf.Debug
	s.app.HideBanner = true

	s.app.GET("/", home)

	v1 := s.app.Group("/v1")
	registerContentAPI(v1, s.deps.ContentSvc, s.deps.UserSvc, s.deps.Validate)
	registerSpaceAPI(v1, s.deps.SpaceSvc, s.deps.StatsSvc, s.deps.Validate)
	registerEventAPI(v1, s.deps.EventSvc, s.deps.Validate)
	registerUserAPI(v1, s.deps.UserSvc, s.deps.StatsSvc, s.deps.Validate)
	registerActivityAPI(v1, s.deps.ActivitySvc, s.deps.Validate)
	registerStatsAPI(v1, s.deps.StatsSvc)
	registerPageAPI(v1, pageDeps{
		contentSvc:  s.deps.ContentSvc,
		spaceSvc:    s.deps.SpaceSvc,
		eventSvc:    s.deps.EventSvc,
		userSvc:     s.deps.UserSvc,
		activitySvc: s.deps.ActivitySvc,
		statsSvc:    s.deps.StatsSvc,
	})
}

func (s *Server) Start() {
	signal.Notify(s.shutdown, os.Interrupt, syscall.SIGTERM)
	if err := s.app.Start(s.deps.Conf.Server.Addr); err != nil && err != http.ErrServerClosed {
		s.errs <- err
	}
}

// Errors reports a failed listener. The channel receives at most one error.
func (s *Server) Errors() <-chan error {
	return s.errs
}

// ShutdownSignal receives OS termination signals and internal shutdown
// requests raised by the error handler.
func (s *Server) ShutdownSignal() <-chan os.Signal {
	return s.shutdown
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *Server) Close() error {
	return s.app.Close()
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

// signalShutdown requests a graceful shutdown from within a request.
func (s *Server) signalShutdown() {
	s.shutdown <- syscall.SIGTERM
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "준태스쿨 API에 오신 것을 환영합니다!")
}
