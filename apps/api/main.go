package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof" // register /debug/pprof handlers
	"os"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	echoapi "github.com/juntaeschool/backend/apps/api/echo"
	"github.com/juntaeschool/backend/core"
	"github.com/juntaeschool/backend/core/activity"
	"github.com/juntaeschool/backend/core/content"
	"github.com/juntaeschool/backend/core/event"
	"github.com/juntaeschool/backend/core/space"
	"github.com/juntaeschool/backend/core/stats"
	"github.com/juntaeschool/backend/core/user"
	emailsvc "github.com/juntaeschool/backend/services/email"
	logsvc "github.com/juntaeschool/backend/services/logger"
	apperdb "github.com/juntaeschool/backend/storage/database/apper"
	inmemdb "github.com/juntaeschool/backend/storage/database/inmem"
)

type repositories struct {
	content  content.Repository
	space    space.Repository
	event    event.Repository
	user     user.Repository
	activity activity.Repository
}

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	repos, err := setUpRepositories(conf, logger)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up storage: %v", err), err)
	}

	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}

	contentSvc := content.NewService(repos.content)
	spaceSvc := space.NewService(repos.space)
	eventSvc := event.NewService(repos.event, repos.user, mailSvc)
	usrSvc := user.NewService(repos.user, conf.CurrentUserID)
	activitySvc := activity.NewService(repos.activity, repos.user)
	statsSvc := stats.NewService(repos.content, repos.space, repos.event, repos.user, repos.activity)

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.

	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)

	go func() {
		if err := http.ListenAndServe(conf.Server.DebugAddr, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:        conf,
			Logger:      logger,
			ContentSvc:  contentSvc,
			SpaceSvc:    spaceSvc,
			EventSvc:    eventSvc,
			UserSvc:     usrSvc,
			ActivitySvc: activitySvc,
			StatsSvc:    statsSvc,
			Validate:    validate,
			Translator:  translator,
		},
	)

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err := <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

func setUpRepositories(conf *core.Config, logger core.Logger) (repositories, error) {
	switch conf.Storage.Backend {
	case "apper":
		client := apperdb.NewClient(conf, logger)
		return repositories{
			content:  apperdb.NewContentRepository(client),
			space:    apperdb.NewSpaceRepository(client),
			event:    apperdb.NewEventRepository(client),
			user:     apperdb.NewUserRepository(client),
			activity: apperdb.NewActivityRepository(client),
		}, nil
	case "memory":
		db, err := inmemdb.OpenSeeded()
		if err != nil {
			return repositories{}, err
		}
		return repositories{
			content:  inmemdb.NewContentRepository(db),
			space:    inmemdb.NewSpaceRepository(db),
			event:    inmemdb.NewEventRepository(db),
			user:     inmemdb.NewUserRepository(db),
			activity: inmemdb.NewActivityRepository(db),
		}, nil
	default:
		return repositories{}, fmt.Errorf("unknown storage backend %q", conf.Storage.Backend)
	}
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}
