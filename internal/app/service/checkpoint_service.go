package service

import (
	"context"

	"race_timing/internal/domain/model"
	"race_timing/internal/domain/repository"
)

type CheckpointService struct {
	checkpointRepo repository.CheckpointRepository
}

func NewCheckpointService(checkpointRepo repository.CheckpointRepository) *CheckpointService {
	return &CheckpointService{checkpointRepo: checkpointRepo}
}

type CreateCheckpointRequest struct {
	Name       string  `json:"name" validate:"required"`
	DistanceKm float64 `json:"distance_km" validate:"gte=0"`
	EventID    int     `json:"event_id" validate:"required,gt=0"`
	RecordedBy int     `json:"recorded_by" validate:"required,gt=0"`
}

func (s *CheckpointService) Create(ctx context.Context, req CreateCheckpointRequest) (*model.Checkpoint, error) {
	if err := checkStruct(req); err != nil {
		return nil, err
	}
	checkpoint := &model.Checkpoint{
		Name:       req.Name,
		DistanceKm: req.DistanceKm,
		EventID:    req.EventID,
		RecordedBy: req.RecordedBy,
	}
	if err := s.checkpointRepo.Create(ctx, checkpoint); err != nil {
		return nil, err
	}
	return checkpoint, nil
}

func (s *CheckpointService) List(ctx context.Context) ([]model.Checkpoint, error) {
	return s.checkpointRepo.List(ctx)
}

func (s *CheckpointService) ListByEvent(ctx context.Context, eventID int) ([]model.Checkpoint, error) {
	return s.checkpointRepo.ListByEvent(ctx, eventID)
}

func (s *CheckpointService) ListByUser(ctx context.Context, userID int) ([]model.Checkpoint, error) {
	return s.checkpointRepo.ListByUser(ctx, userID)
}

func (s *CheckpointService) Get(ctx context.Context, id int) (*model.Checkpoint, error) {
	return s.checkpointRepo.FindByID(ctx, id)
}

func (s *CheckpointService) Delete(ctx context.Context, id int) error {
	return s.checkpointRepo.Delete(ctx, id)
}
