package service

import (
	"context"

	"race_timing/internal/domain/model"
	"race_timing/internal/domain/repository"
)

type CompetitorService struct {
	competitorRepo repository.CompetitorRepository
}

func NewCompetitorService(competitorRepo repository.CompetitorRepository) *CompetitorService {
	return &CompetitorService{competitorRepo: competitorRepo}
}

type CreateCompetitorRequest struct {
	Name       string `json:"name" validate:"required"`
	BibNumber  int    `json:"bib_number" validate:"required,gt=0"`
	EventID    int    `json:"event_id" validate:"required,gt=0"`
	TeamID     int    `json:"team_id" validate:"required,gt=0"`
	CategoryID int    `json:"category_id" validate:"required,gt=0"`
}

func (s *CompetitorService) Create(ctx context.Context, req CreateCompetitorRequest) (*model.Competitor, error) {
	if err := checkStruct(req); err != nil {
		return nil, err
	}
	competitor := &model.Competitor{
		Name:       req.Name,
		BibNumber:  req.BibNumber,
		EventID:    req.EventID,
		TeamID:     req.TeamID,
		CategoryID: req.CategoryID,
	}
	if err := s.competitorRepo.Create(ctx, competitor); err != nil {
		return nil, err
	}
	return competitor, nil
}

func (s *CompetitorService) List(ctx context.Context) ([]model.Competitor, error) {
	return s.competitorRepo.List(ctx)
}

func (s *CompetitorService) ListByEvent(ctx context.Context, eventID int) ([]model.Competitor, error) {
	return s.competitorRepo.ListByEvent(ctx, eventID)
}

func (s *CompetitorService) ListByTeam(ctx context.Context, teamID int) ([]model.Competitor, error) {
	return s.competitorRepo.ListByTeam(ctx, teamID)
}

func (s *CompetitorService) ListByCategory(ctx context.Context, categoryID int) ([]model.Competitor, error) {
	return s.competitorRepo.ListByCategory(ctx, categoryID)
}

func (s *CompetitorService) Get(ctx context.Context, id int) (*model.Competitor, error) {
	return s.competitorRepo.FindByID(ctx, id)
}

func (s *CompetitorService) Delete(ctx context.Context, id int) error {
	return s.competitorRepo.Delete(ctx, id)
}
