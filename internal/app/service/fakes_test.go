package service

import (
	"context"
	"fmt"

	"race_timing/internal/common"
	"race_timing/internal/domain/model"
	"race_timing/internal/domain/repository"
)

// In-memory repositories backing the service tests.

type fakeUserRepo struct {
	nextID int
	users  map[int]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: map[int]*model.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	for _, u := range f.users {
		if u.Name == user.Name {
			return fmt.Errorf("user %s already exists: %w", user.Name, common.ErrBadRequest)
		}
	}
	user.ID = f.nextID
	f.nextID++
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]model.User, error) {
	users := []model.User{}
	for _, u := range f.users {
		users = append(users, *u)
	}
	return users, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id int) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeUserRepo) FindByName(_ context.Context, name string) (*model.User, error) {
	for _, u := range f.users {
		if u.Name == name {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeUserRepo) Update(_ context.Context, id int, params repository.UpdateUserParams) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	if params.Name != nil {
		u.Name = *params.Name
	}
	if params.Email != nil {
		u.Email = *params.Email
	}
	if params.PasswordHash != nil {
		u.PasswordHash = *params.PasswordHash
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id int) error {
	if _, ok := f.users[id]; !ok {
		return common.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

type fakeTimeRepo struct {
	nextID  int
	records []model.TimeRecord
}

func newFakeTimeRepo() *fakeTimeRepo {
	return &fakeTimeRepo{nextID: 1}
}

func (f *fakeTimeRepo) Create(_ context.Context, record *model.TimeRecord) error {
	record.ID = f.nextID
	f.nextID++
	f.records = append(f.records, *record)
	return nil
}

func (f *fakeTimeRepo) List(_ context.Context) ([]model.TimeRecord, error) {
	return append([]model.TimeRecord{}, f.records...), nil
}

func (f *fakeTimeRepo) ListByCompetitor(_ context.Context, competitorID int) ([]model.TimeRecord, error) {
	records := []model.TimeRecord{}
	for _, r := range f.records {
		if r.CompetitorID == competitorID {
			records = append(records, r)
		}
	}
	return records, nil
}

func (f *fakeTimeRepo) ListByCheckpoint(_ context.Context, checkpointID int) ([]model.TimeRecord, error) {
	records := []model.TimeRecord{}
	for _, r := range f.records {
		if r.CheckpointID == checkpointID {
			records = append(records, r)
		}
	}
	return records, nil
}

func (f *fakeTimeRepo) FindByID(_ context.Context, id int) (*model.TimeRecord, error) {
	for _, r := range f.records {
		if r.ID == id {
			cp := r
			return &cp, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeTimeRepo) Update(_ context.Context, id int, params repository.UpdateTimeParams) (*model.TimeRecord, error) {
	for i := range f.records {
		if f.records[i].ID != id {
			continue
		}
		r := &f.records[i]
		if params.ClockTime != nil {
			r.ClockTime = *params.ClockTime
		}
		if params.RecordType != nil {
			r.RecordType = *params.RecordType
		}
		if params.CompetitorID != nil {
			r.CompetitorID = *params.CompetitorID
		}
		if params.RecordedBy != nil {
			r.RecordedBy = *params.RecordedBy
		}
		if params.CheckpointID != nil {
			r.CheckpointID = *params.CheckpointID
		}
		cp := *r
		return &cp, nil
	}
	return nil, common.ErrNotFound
}

func (f *fakeTimeRepo) Delete(_ context.Context, id int) error {
	for i, r := range f.records {
		if r.ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return common.ErrNotFound
}
