package main

import (
	"context"

	"github.com/juntaeschool/backend/core/stats"
)

// overview prints the community dashboard figures.
func (cli *commandLine) overview() error {
	svc := stats.NewService(cli.contentRepo, cli.spaceRepo, cli.eventRepo, cli.usrRepo, cli.activityRepo)
	ov, err := svc.Overview(context.Background())
	if err != nil {
		return err
	}

	logger.Printf("total members    : %d\n", ov.TotalMembers)
	logger.Printf("active lessons   : %d\n", ov.ActiveLessons)
	logger.Printf("monthly events   : %d\n", ov.MonthlyEvents)
	logger.Printf("total resources  : %d\n", ov.TotalResources)
	logger.Printf("weekly active    : %d\n", ov.WeeklyActive)
	logger.Printf("completion rate  : %d%%\n", ov.CompletionRate)
	logger.Printf("satisfaction     : %.1f\n", ov.Satisfaction)
	logger.Printf("growth           : %.1f%%\n", ov.Growth)
	return nil
}
