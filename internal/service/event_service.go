package service

import (
	"context"
	"encoding/json"
	"time"

	"makom-backend/internal/domain"
	"makom-backend/internal/repository"
	apperrors "makom-backend/pkg/errors"
	"makom-backend/pkg/logger"
	"makom-backend/pkg/redis"
)

// eventService implements EventService
type eventService struct {
	repo   repository.EventRepository
	cache  *redis.Client
	logger *logger.Logger
}

// NewEventService creates a new event service. cache may be nil, in which
// case every listing goes straight to the backend.
func NewEventService(repo repository.EventRepository, cache *redis.Client, log *logger.Logger) EventService {
	return &eventService{
		repo:   repo,
		cache:  cache,
		logger: log,
	}
}

// List returns active events partitioned into upcoming and past relative to
// the start of today. Upcoming stays date ascending; past is most recent
// first. Both partitions are present even when empty.
func (s *eventService) List(ctx context.Context) (*domain.EventList, error) {
	if cached := s.cachedList(ctx); cached != nil {
		return cached, nil
	}

	events, err := s.repo.ListActive(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to fetch events")
		return nil, apperrors.NewInternalError("Failed to fetch events", err)
	}

	list := partitionEvents(events, domain.Today(time.Now()))

	if s.cache != nil {
		go s.cacheListAsync(list)
	}

	return list, nil
}

// GetBySlug returns one active event with its sponsorship tiers. A missing
// row and a failed lookup are reported identically: the caller cannot tell
// "does not exist" from "exists but inactive" or from a backend error.
func (s *eventService) GetBySlug(ctx context.Context, slug string) (*domain.EventDetail, error) {
	event, err := s.repo.GetActiveBySlug(ctx, slug)
	if err != nil {
		if err != repository.ErrNotFound {
			s.logger.WithError(err).WithField("slug", slug).Error("Event lookup failed")
		}
		return nil, apperrors.NewNotFoundError("Event not found")
	}

	tiers, err := s.repo.ListSponsorships(ctx, event.ID)
	if err != nil {
		// A missing sponsorship list is not an error; serve the event anyway.
		s.logger.WithError(err).WithField("event_id", event.ID).Warn("Failed to fetch sponsorships")
		tiers = []domain.EventSponsorship{}
	}

	return &domain.EventDetail{
		Event:        *event,
		Sponsorships: tiers,
	}, nil
}

// partitionEvents splits a date-ascending listing around today. Past events
// are reversed so the most recent comes first.
func partitionEvents(events []domain.Event, today time.Time) *domain.EventList {
	list := &domain.EventList{
		Upcoming: []domain.Event{},
		Past:     []domain.Event{},
	}

	for _, e := range events {
		if e.IsUpcoming(today) {
			list.Upcoming = append(list.Upcoming, e)
		} else {
			list.Past = append(list.Past, e)
		}
	}

	for i, j := 0, len(list.Past)-1; i < j; i, j = i+1, j-1 {
		list.Past[i], list.Past[j] = list.Past[j], list.Past[i]
	}

	return list
}

// cachedList returns the cached listing, or nil on miss or any cache error.
// Cache problems degrade to a backend read, never to a failed request.
func (s *eventService) cachedList(ctx context.Context) *domain.EventList {
	if s.cache == nil {
		return nil
	}

	raw, err := s.cache.Get(ctx, redis.KeyEventsList)
	if err != nil {
		s.logger.WithError(err).Warn("Events cache error, falling back to backend")
		return nil
	}
	if raw == "" {
		return nil
	}

	var list domain.EventList
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		s.logger.WithError(err).Warn("Events cache corrupted, falling back to backend")
		return nil
	}

	s.logger.Debug("Events cache hit")
	return &list
}

// cacheListAsync stores the listing without blocking the response
func (s *eventService) cacheListAsync(list *domain.EventList) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	raw, err := json.Marshal(list)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to marshal events listing for cache")
		return
	}

	if err := s.cache.Set(ctx, redis.KeyEventsList, string(raw), redis.TTLEventsList); err != nil {
		s.logger.WithError(err).Warn("Failed to cache events listing")
	}
}
