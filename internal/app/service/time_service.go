package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"race_timing/internal/common"
	"race_timing/internal/domain/model"
	"race_timing/internal/domain/repository"
)

// TimeService records clock readings and serves the hot list queries during
// a race. When a Redis client is supplied, the per-checkpoint and
// per-competitor lists are cached with a short TTL; cache failures are
// ignored so a degraded cache never fails a request.
type TimeService struct {
	timeRepo repository.TimeRepository
	cache    *redis.Client
	cacheTTL time.Duration
}

func NewTimeService(timeRepo repository.TimeRepository, cache *redis.Client, cacheTTL time.Duration) *TimeService {
	return &TimeService{timeRepo: timeRepo, cache: cache, cacheTTL: cacheTTL}
}

type AddTimeRequest struct {
	ClockTime    string `json:"time" validate:"required"`
	RecordType   int    `json:"record_type"`
	CompetitorID int    `json:"competitor_id" validate:"required,gt=0"`
	RecordedBy   int    `json:"recorded_by" validate:"required,gt=0"`
	CheckpointID int    `json:"checkpoint_id" validate:"required,gt=0"`
}

// ValidateClockTime checks that the value is a well-formed HH:MM:SS string:
// exactly three numeric components with hours 0-23 and minutes/seconds 0-59.
// Malformed strings are rejected outright instead of leaking through numeric
// comparison edge cases.
func ValidateClockTime(value string) error {
	parts := strings.Split(value, ":")
	if len(parts) != 3 {
		return fmt.Errorf("invalid time: %s. Time should be in HH:MM:SS format: %w", value, common.ErrValidation)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || strings.ContainsAny(p, "+- ") {
			return fmt.Errorf("invalid time: %s. Time should be in HH:MM:SS format: %w", value, common.ErrValidation)
		}
		nums[i] = n
	}
	if nums[0] < 0 || nums[0] > 23 || nums[1] < 0 || nums[1] > 59 || nums[2] < 0 || nums[2] > 59 {
		return fmt.Errorf("invalid time: %s. Time should be in HH:MM:SS format: %w", value, common.ErrValidation)
	}
	return nil
}

// AddTime validates the clock reading and persists it. No record is created
// when validation fails.
func (s *TimeService) AddTime(ctx context.Context, req AddTimeRequest) (*model.TimeRecord, error) {
	if err := checkStruct(req); err != nil {
		return nil, err
	}
	if err := ValidateClockTime(req.ClockTime); err != nil {
		return nil, err
	}

	record := &model.TimeRecord{
		ClockTime:    req.ClockTime,
		RecordType:   req.RecordType,
		CompetitorID: req.CompetitorID,
		RecordedBy:   req.RecordedBy,
		CheckpointID: req.CheckpointID,
	}
	if err := s.timeRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	s.invalidate(ctx,
		cacheKeyAll,
		competitorKey(record.CompetitorID),
		checkpointKey(record.CheckpointID),
	)
	return record, nil
}

func (s *TimeService) List(ctx context.Context) ([]model.TimeRecord, error) {
	return s.cached(ctx, cacheKeyAll, func() ([]model.TimeRecord, error) {
		return s.timeRepo.List(ctx)
	})
}

func (s *TimeService) ListByCompetitor(ctx context.Context, competitorID int) ([]model.TimeRecord, error) {
	return s.cached(ctx, competitorKey(competitorID), func() ([]model.TimeRecord, error) {
		return s.timeRepo.ListByCompetitor(ctx, competitorID)
	})
}

func (s *TimeService) ListByCheckpoint(ctx context.Context, checkpointID int) ([]model.TimeRecord, error) {
	return s.cached(ctx, checkpointKey(checkpointID), func() ([]model.TimeRecord, error) {
		return s.timeRepo.ListByCheckpoint(ctx, checkpointID)
	})
}

const cacheKeyAll = "times:all"

func competitorKey(id int) string { return fmt.Sprintf("times:competitor:%d", id) }
func checkpointKey(id int) string { return fmt.Sprintf("times:checkpoint:%d", id) }

func (s *TimeService) cached(ctx context.Context, key string, fetch func() ([]model.TimeRecord, error)) ([]model.TimeRecord, error) {
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, key).Bytes(); err == nil {
			var records []model.TimeRecord
			if err := json.Unmarshal(data, &records); err == nil {
				return records, nil
			}
		}
	}

	records, err := fetch()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(records); err == nil {
			s.cache.Set(ctx, key, data, s.cacheTTL)
		}
	}
	return records, nil
}

func (s *TimeService) invalidate(ctx context.Context, keys ...string) {
	if s.cache == nil {
		return
	}
	s.cache.Del(ctx, keys...)
}
