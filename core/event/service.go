package event

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/juntaeschool/backend/core"
	"github.com/juntaeschool/backend/core/user"
)

// ErrNotFound is surfaced with the product's display message.
var ErrNotFound = errors.New("이벤트를 찾을 수 없습니다.")

// DefaultUpcomingLimit bounds upcoming-event queries that do not name one.
const DefaultUpcomingLimit = 10

type (
	Repository interface {
		QueryAllEvents(ctx context.Context) ([]Event, error)
		GetEventByID(ctx context.Context, id int) (Event, error)
		CreateEvent(ctx context.Context, ev Event) (Event, error)
		UpdateEvent(ctx context.Context, id int, ue UpdateEvent) (Event, error)
		DeleteEvent(ctx context.Context, id int) (Event, error)
	}

	Service struct {
		repo    Repository
		usrRepo user.Repository
		mailSvc core.EmailService
	}
)

func NewService(repo Repository, usrRepo user.Repository, mailSvc core.EmailService) *Service {
	return &Service{repo: repo, usrRepo: usrRepo, mailSvc: mailSvc}
}

func (svc *Service) QueryAll(ctx context.Context) ([]Event, error) {
	return svc.repo.QueryAllEvents(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id int) (Event, error) {
	return svc.repo.GetEventByID(ctx, id)
}

// Upcoming returns future events nearest in time first.
func (svc *Service) Upcoming(ctx context.Context, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = DefaultUpcomingLimit
	}
	events, err := svc.repo.QueryAllEvents(ctx)
	if err != nil {
		return nil, err
	}
	return SelectUpcoming(events, time.Now(), limit), nil
}

func (svc *Service) Create(ctx context.Context, ne NewEvent) (Event, error) {
	ev := Event{
		Title:        core.CleanString(ne.Title),
		Description:  ne.Description,
		StartsAt:     ne.StartsAt,
		Participants: 0,
		SpaceID:      ne.SpaceID,
	}
	ev, err := svc.repo.CreateEvent(ctx, ev)
	if err != nil {
		return Event{}, err
	}
	svc.notifyMembers(ctx, ev)
	return ev, nil
}

func (svc *Service) Update(ctx context.Context, id int, ue UpdateEvent) (Event, error) {
	return svc.repo.UpdateEvent(ctx, id, ue)
}

func (svc *Service) Delete(ctx context.Context, id int) (Event, error) {
	return svc.repo.DeleteEvent(ctx, id)
}

// notifyMembers mails members that opted into event notifications. Losing
// the notification on a user query failure is acceptable; creating the
// event is not rolled back.
func (svc *Service) notifyMembers(ctx context.Context, ev Event) {
	users, err := svc.usrRepo.QueryAllUsers(ctx)
	if err != nil {
		return
	}
	var to []mail.Address
	for _, usr := range users {
		if usr.Email == "" {
			continue
		}
		if usr.Settings.Notifications.Email && usr.Settings.Notifications.Events {
			to = append(to, mail.Address{Name: usr.DisplayName, Address: usr.Email})
		}
	}
	if len(to) == 0 {
		return
	}
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:      to,
		Subject: "새 이벤트: " + ev.Title,
		Body: fmt.Sprintf(
			"%s\n\n%s\n\n일시: %s",
			ev.Title, ev.Description, ev.StartsAt.Format("2006-01-02 15:04"),
		),
	})
}
