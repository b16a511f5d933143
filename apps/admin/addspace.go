package main

import (
	"context"

	"github.com/juntaeschool/backend/core/space"
)

// addSpace creates a space in the configured store.
func (cli *commandLine) addSpace(name, spaceType, icon string) error {
	svc := space.NewService(cli.spaceRepo)
	sp, err := svc.Create(context.Background(), space.NewSpace{
		Name:      name,
		Icon:      icon,
		SpaceType: space.Type(spaceType),
	})
	if err != nil {
		return err
	}
	logger.Printf("created space %s (%s)\n", sp.ID, sp.Name)
	return nil
}
