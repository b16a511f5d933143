package main

import (
	"context"
	"io"
	"log"
	"testing"

	"github.com/juntaeschool/backend/core/space"
	inmemdb "github.com/juntaeschool/backend/storage/database/inmem"
)

var spaceRepo space.Repository

func setup(t *testing.T) *commandLine {
	logger = log.New(io.Discard, "", 0)

	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("Open() failed, %v", err)
	}
	spaceRepo = inmemdb.NewSpaceRepository(db)

	// start CLI
	return &commandLine{
		contentRepo:  inmemdb.NewContentRepository(db),
		spaceRepo:    spaceRepo,
		eventRepo:    inmemdb.NewEventRepository(db),
		usrRepo:      inmemdb.NewUserRepository(db),
		activityRepo: inmemdb.NewActivityRepository(db),
	}
}

type cliTest struct {
	name    string
	args    []string // without program name
	wantErr error
}

func Test_commandLine_run(t *testing.T) {
	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "addspace: no args", args: []string{"addspace"}, wantErr: errHelp},
		{name: "addspace: missing name", args: []string{"addspace", "-type", "forum"}, wantErr: errHelp},
		{name: "addspace: invalid type", args: []string{"addspace", "-name", "스터디", "-type", "lol"}, wantErr: errHelp},
		{name: "addspace", args: []string{"addspace", "-name", "스터디", "-type", "forum", "-icon", "Users"}},
		{name: "seed", args: []string{"seed"}},
		{name: "overview", args: []string{"overview"}},
	}
	for _, tt := range tests {
		cli := setup(t)
		args := append([]string{"admin"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			if err := cli.run(args); err != tt.wantErr {
				t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_commandLine_addSpace(t *testing.T) {
	cli := setup(t)

	if err := cli.run([]string{"admin", "addspace", "-name", "스터디", "-type", "forum", "-icon", "Users"}); err != nil {
		t.Fatalf("cli.run() failed, %v", err)
	}

	spaces, err := spaceRepo.QueryAllSpaces(context.Background())
	if err != nil {
		t.Fatalf("QueryAllSpaces() failed, %v", err)
	}
	if len(spaces) != 1 {
		t.Fatalf("len(spaces) = %d, want 1", len(spaces))
	}
	sp := spaces[0]
	if sp.Name != "스터디" || sp.SpaceType != space.TypeForum || sp.Icon != "Users" {
		t.Errorf("created space = %+v", sp)
	}
	if sp.ID == "" {
		t.Error("space was created without an ID")
	}
}

func Test_commandLine_seed(t *testing.T) {
	cli := setup(t)

	if err := cli.run([]string{"admin", "seed"}); err != nil {
		t.Fatalf("cli.run() failed, %v", err)
	}

	spaces, err := spaceRepo.QueryAllSpaces(context.Background())
	if err != nil {
		t.Fatalf("QueryAllSpaces() failed, %v", err)
	}
	if len(spaces) != 5 {
		t.Errorf("len(spaces) = %d, want 5", len(spaces))
	}
	items, err := cli.contentRepo.QueryAllContent(context.Background())
	if err != nil {
		t.Fatalf("QueryAllContent() failed, %v", err)
	}
	if len(items) != 8 {
		t.Errorf("len(items) = %d, want 8", len(items))
	}
}
