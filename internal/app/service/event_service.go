package service

import (
	"context"
	"fmt"
	"time"

	"race_timing/internal/common"
	"race_timing/internal/domain/model"
	"race_timing/internal/domain/repository"
)

type EventService struct {
	eventRepo repository.EventRepository
}

func NewEventService(eventRepo repository.EventRepository) *EventService {
	return &EventService{eventRepo: eventRepo}
}

type CreateEventRequest struct {
	Name       string `json:"name" validate:"required"`
	Date       string `json:"date" validate:"required"`
	Location   string `json:"location" validate:"required"`
	CategoryID int    `json:"category_id" validate:"required,gt=0"`
}

func (s *EventService) Create(ctx context.Context, req CreateEventRequest) (*model.Event, error) {
	if err := checkStruct(req); err != nil {
		return nil, err
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	event := &model.Event{
		Name:       req.Name,
		Date:       date,
		Location:   req.Location,
		CategoryID: req.CategoryID,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventService) List(ctx context.Context) ([]model.Event, error) {
	return s.eventRepo.List(ctx)
}

func (s *EventService) ListByCategory(ctx context.Context, categoryID int) ([]model.Event, error) {
	return s.eventRepo.ListByCategory(ctx, categoryID)
}

func (s *EventService) Get(ctx context.Context, id int) (*model.Event, error) {
	return s.eventRepo.FindByID(ctx, id)
}

func (s *EventService) Delete(ctx context.Context, id int) error {
	return s.eventRepo.Delete(ctx, id)
}

func parseDate(value string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", value, common.ErrValidation)
}
