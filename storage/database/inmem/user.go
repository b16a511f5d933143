package inmemdb

import (
	"context"

	"github.com/juntaeschool/backend/core/user"
)

type userRepository struct {
	db *DB
}

var _ user.Repository = (*userRepository)(nil) // interface compliance check

func NewUserRepository(db *DB) user.Repository {
	return &userRepository{db: db}
}

func (repo *userRepository) QueryAllUsers(ctx context.Context) ([]user.User, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	users := make([]user.User, len(repo.db.users))
	copy(users, repo.db.users)
	return users, nil
}

func (repo *userRepository) GetUserByID(ctx context.Context, id int) (user.User, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	for _, usr := range repo.db.users {
		if usr.ID == id {
			return usr, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (repo *userRepository) CreateUser(ctx context.Context, usr user.User) (user.User, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	var max int
	for _, existing := range repo.db.users {
		if existing.ID > max {
			max = existing.ID
		}
	}
	usr.ID = max + 1
	repo.db.users = append(repo.db.users, usr)
	return usr, nil
}

func (repo *userRepository) UpdateUser(ctx context.Context, id int, uu user.UpdateUser) (user.User, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	for i, usr := range repo.db.users {
		if usr.ID == id {
			repo.db.users[i] = uu.Merge(usr)
			return repo.db.users[i], nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (repo *userRepository) DeleteUser(ctx context.Context, id int) (user.User, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	for i, usr := range repo.db.users {
		if usr.ID == id {
			repo.db.users = append(repo.db.users[:i], repo.db.users[i+1:]...)
			return usr, nil
		}
	}
	return user.User{}, user.ErrNotFound
}
