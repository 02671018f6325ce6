package service

import (
	"context"

	"race_timing/internal/domain/model"
	"race_timing/internal/domain/repository"
)

type TeamService struct {
	teamRepo repository.TeamRepository
}

func NewTeamService(teamRepo repository.TeamRepository) *TeamService {
	return &TeamService{teamRepo: teamRepo}
}

type CreateTeamRequest struct {
	Name string `json:"name" validate:"required"`
}

type UpdateTeamRequest struct {
	Name *string `json:"name"`
}

func (s *TeamService) Create(ctx context.Context, req CreateTeamRequest) (*model.Team, error) {
	if err := checkStruct(req); err != nil {
		return nil, err
	}
	team := &model.Team{Name: req.Name}
	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, err
	}
	return team, nil
}

func (s *TeamService) List(ctx context.Context) ([]model.Team, error) {
	return s.teamRepo.List(ctx)
}

func (s *TeamService) Get(ctx context.Context, id int) (*model.Team, error) {
	return s.teamRepo.FindByID(ctx, id)
}

func (s *TeamService) Update(ctx context.Context, id int, req UpdateTeamRequest) (*model.Team, error) {
	return s.teamRepo.Update(ctx, id, repository.UpdateTeamParams{Name: req.Name})
}

func (s *TeamService) Delete(ctx context.Context, id int) error {
	return s.teamRepo.Delete(ctx, id)
}
