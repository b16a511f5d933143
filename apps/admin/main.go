package main

import (
	"fmt"
	"log"
	"os"

	"github.com/juntaeschool/backend/core"
	"github.com/juntaeschool/backend/core/activity"
	"github.com/juntaeschool/backend/core/content"
	"github.com/juntaeschool/backend/core/event"
	"github.com/juntaeschool/backend/core/space"
	"github.com/juntaeschool/backend/core/user"
	logsvc "github.com/juntaeschool/backend/services/logger"
	apperdb "github.com/juntaeschool/backend/storage/database/apper"
	inmemdb "github.com/juntaeschool/backend/storage/database/inmem"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.NewConfig()
	svcLogger := logsvc.NewRollbarLogger(logger, conf)
	svcLogger.Enable(false)

	cli, err := newCommandLine(conf, svcLogger)
	errAndDie(err)

	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func newCommandLine(conf *core.Config, svcLogger core.Logger) (*commandLine, error) {
	switch conf.Storage.Backend {
	case "apper":
		client := apperdb.NewClient(conf, svcLogger)
		return &commandLine{
			contentRepo:  apperdb.NewContentRepository(client),
			spaceRepo:    apperdb.NewSpaceRepository(client),
			eventRepo:    apperdb.NewEventRepository(client),
			usrRepo:      apperdb.NewUserRepository(client),
			activityRepo: apperdb.NewActivityRepository(client),
		}, nil
	case "memory":
		db, err := inmemdb.OpenSeeded()
		if err != nil {
			return nil, err
		}
		return &commandLine{
			contentRepo:  inmemdb.NewContentRepository(db),
			spaceRepo:    inmemdb.NewSpaceRepository(db),
			eventRepo:    inmemdb.NewEventRepository(db),
			usrRepo:      inmemdb.NewUserRepository(db),
			activityRepo: inmemdb.NewActivityRepository(db),
		}, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", conf.Storage.Backend)
	}
}

type commandLine struct {
	contentRepo  content.Repository
	spaceRepo    space.Repository
	eventRepo    event.Repository
	usrRepo      user.Repository
	activityRepo activity.Repository
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
