package event

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/juntaeschool/backend/core"
	"github.com/juntaeschool/backend/core/user"
)

type fakeRepo struct {
	events []Event
}

var _ Repository = (*fakeRepo)(nil)

func (r *fakeRepo) QueryAllEvents(ctx context.Context) ([]Event, error) { return r.events, nil }

func (r *fakeRepo) GetEventByID(ctx context.Context, id int) (Event, error) {
	for _, ev := range r.events {
		if ev.ID == id {
			return ev, nil
		}
	}
	return Event{}, ErrNotFound
}

func (r *fakeRepo) CreateEvent(ctx context.Context, ev Event) (Event, error) {
	ev.ID = len(r.events) + 1
	r.events = append(r.events, ev)
	return ev, nil
}

func (r *fakeRepo) UpdateEvent(ctx context.Context, id int, ue UpdateEvent) (Event, error) {
	for i, ev := range r.events {
		if ev.ID == id {
			r.events[i] = ue.Merge(ev)
			return r.events[i], nil
		}
	}
	return Event{}, ErrNotFound
}

func (r *fakeRepo) DeleteEvent(ctx context.Context, id int) (Event, error) {
	for i, ev := range r.events {
		if ev.ID == id {
			r.events = append(r.events[:i], r.events[i+1:]...)
			return ev, nil
		}
	}
	return Event{}, ErrNotFound
}

type fakeUserRepo struct {
	users []user.User
}

var _ user.Repository = (*fakeUserRepo)(nil)

func (r *fakeUserRepo) QueryAllUsers(ctx context.Context) ([]user.User, error) { return r.users, nil }

func (r *fakeUserRepo) GetUserByID(ctx context.Context, id int) (user.User, error) {
	for _, usr := range r.users {
		if usr.ID == id {
			return usr, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, usr user.User) (user.User, error) {
	usr.ID = len(r.users) + 1
	r.users = append(r.users, usr)
	return usr, nil
}

func (r *fakeUserRepo) UpdateUser(ctx context.Context, id int, uu user.UpdateUser) (user.User, error) {
	for i, usr := range r.users {
		if usr.ID == id {
			r.users[i] = uu.Merge(usr)
			return r.users[i], nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (r *fakeUserRepo) DeleteUser(ctx context.Context, id int) (user.User, error) {
	for i, usr := range r.users {
		if usr.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return usr, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

type mailCapture struct {
	mu   sync.Mutex
	sent []core.EmailMessage
}

var _ core.EmailService = (*mailCapture)(nil)

func (m *mailCapture) SendMessages(messages ...*core.EmailMessage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, msg := range messages {
		m.sent = append(m.sent, *msg)
	}
}

func subscribedUser(id int, name, email string) user.User {
	settings := user.DefaultSettings()
	settings.Notifications.Events = true
	return user.User{ID: id, DisplayName: name, Email: email, Settings: settings}
}

func TestService_Create_notifiesSubscribedMembers(t *testing.T) {
	unsubscribed := subscribedUser(2, "이수강", "lee@example.com")
	unsubscribed.Settings.Notifications.Events = false
	noEmail := subscribedUser(3, "박익명", "")

	usrRepo := &fakeUserRepo{users: []user.User{
		subscribedUser(1, "김학생", "kim@example.com"),
		unsubscribed,
		noEmail,
	}}
	mailSvc := &mailCapture{}
	svc := NewService(&fakeRepo{}, usrRepo, mailSvc)

	ev, err := svc.Create(context.Background(), NewEvent{
		Title:    "라이브 코딩 세션",
		StartsAt: time.Now().Add(48 * time.Hour),
	})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if ev.Participants != 0 {
		t.Errorf("Participants = %d; want 0", ev.Participants)
	}

	mailSvc.mu.Lock()
	defer mailSvc.mu.Unlock()
	if len(mailSvc.sent) != 1 {
		t.Fatalf("sent %d messages; want 1", len(mailSvc.sent))
	}
	msg := mailSvc.sent[0]
	if len(msg.To) != 1 || msg.To[0].Address != "kim@example.com" {
		t.Errorf("To = %v; want only kim@example.com", msg.To)
	}
	if !strings.HasPrefix(msg.Subject, "새 이벤트: ") {
		t.Errorf("Subject = %q; want 새 이벤트 prefix", msg.Subject)
	}
}

func TestService_Upcoming_defaultLimit(t *testing.T) {
	repo := &fakeRepo{}
	now := time.Now()
	for i := 0; i < DefaultUpcomingLimit+5; i++ {
		repo.events = append(repo.events, Event{ID: i + 1, StartsAt: now.Add(time.Duration(i+1) * time.Hour)})
	}
	svc := NewService(repo, &fakeUserRepo{}, &mailCapture{})

	events, err := svc.Upcoming(context.Background(), 0)
	if err != nil {
		t.Fatalf("Upcoming() failed: %v", err)
	}
	if len(events) != DefaultUpcomingLimit {
		t.Errorf("len = %d; want %d", len(events), DefaultUpcomingLimit)
	}
}
