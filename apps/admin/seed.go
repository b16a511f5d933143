package main

import (
	"context"

	inmemdb "github.com/juntaeschool/backend/storage/database/inmem"
)

// seed loads the fixture dataset into the configured store. Identities are
// assigned by the target store, so the command is not idempotent; running
// it twice duplicates the dataset.
func (cli *commandLine) seed() error {
	src, err := inmemdb.OpenSeeded()
	if err != nil {
		return err
	}
	ctx := context.Background()

	spaces, err := inmemdb.NewSpaceRepository(src).QueryAllSpaces(ctx)
	if err != nil {
		return err
	}
	for _, sp := range spaces {
		if _, err := cli.spaceRepo.CreateSpace(ctx, sp); err != nil {
			return err
		}
	}

	users, err := inmemdb.NewUserRepository(src).QueryAllUsers(ctx)
	if err != nil {
		return err
	}
	for _, usr := range users {
		if _, err := cli.usrRepo.CreateUser(ctx, usr); err != nil {
			return err
		}
	}

	items, err := inmemdb.NewContentRepository(src).QueryAllContent(ctx)
	if err != nil {
		return err
	}
	for _, item := range items {
		if _, err := cli.contentRepo.CreateContent(ctx, item); err != nil {
			return err
		}
	}

	events, err := inmemdb.NewEventRepository(src).QueryAllEvents(ctx)
	if err != nil {
		return err
	}
	for _, ev := range events {
		if _, err := cli.eventRepo.CreateEvent(ctx, ev); err != nil {
			return err
		}
	}

	activities, err := inmemdb.NewActivityRepository(src).QueryAllActivities(ctx)
	if err != nil {
		return err
	}
	for _, a := range activities {
		if _, err := cli.activityRepo.CreateActivity(ctx, a); err != nil {
			return err
		}
	}

	logger.Printf(
		"seeded %d spaces, %d users, %d content items, %d events, %d activities\n",
		len(spaces), len(users), len(items), len(events), len(activities),
	)
	return nil
}
