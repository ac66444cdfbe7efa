package service

import (
	"context"
	"fmt"
	"strconv"

	repository "github.com/akashsahu123/event-management/internal/database/postgres"
	"github.com/akashsahu123/event-management/internal/enrichment"
	"github.com/akashsahu123/event-management/internal/entity"
	"github.com/akashsahu123/event-management/internal/validator"

	"github.com/jonboulle/clockwork"
)

// Declared order matters: missing-field lists are reported in it.
var requiredEventFields = []string{"event_name", "city_name", "date", "time", "latitude", "longitude"}

var requiredSearchFields = []string{"date", "latitude", "longitude"}

type eventService struct {
	eventRepo repository.EventRepository
	enricher  *enrichment.Engine
	clock     clockwork.Clock
}

func NewEventService(eventRepo repository.EventRepository, enricher *enrichment.Engine, clock clockwork.Clock) EventService {
	return &eventService{
		eventRepo: eventRepo,
		enricher:  enricher,
		clock:     clock,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, data map[string]any) (*entity.Event, error) {
	if missing := validator.CheckMissingFields(requiredEventFields, data); len(missing) > 0 {
		return nil, &entity.ValidationError{
			Message:       "Missing required fields.",
			MissingFields: missing,
		}
	}

	eventName, ok := data["event_name"].(string)
	if !ok || len(eventName) > 100 {
		return nil, entity.NewValidationError("Invalid event name. Event name should be string not more than 100 characters long.")
	}

	cityName, ok := data["city_name"].(string)
	if !ok || len(cityName) > 100 {
		return nil, entity.NewValidationError("Invalid city name. City name should be string not more than 100 characters long.")
	}

	dateStr, ok := data["date"].(string)
	if !ok {
		return nil, entity.NewValidationError("Invalid date. Date should be string in YYYY-MM-DD format.")
	}
	date, ok := validator.ParseDate(dateStr)
	if !ok {
		return nil, entity.NewValidationError("Invalid date. Date should be string in YYYY-MM-DD format.")
	}

	timeStr, ok := data["time"].(string)
	if !ok {
		return nil, entity.NewValidationError("Invalid time. Time should be string in hh:mm:ss format.")
	}
	wallClock, ok := validator.ParseTime(timeStr)
	if !ok {
		return nil, entity.NewValidationError("Invalid time. Time should be string in hh:mm:ss format.")
	}

	dateMillis := entity.DateToMillis(date.Year, date.Month, date.Day)
	timeMillis := entity.TimeToMillis(wallClock.Hour, wallClock.Minute, wallClock.Second)

	if dateMillis+timeMillis < s.clock.Now().UnixMilli() {
		return nil, entity.NewValidationError("Past date/time provided. Please provide future date/time.")
	}

	latitude, ok := data["latitude"].(float64)
	if !ok || !validator.IsValidLatitude(latitude) {
		return nil, entity.NewValidationError("Invalid latitude. Latitude should be a number between -90 and 90.")
	}

	longitude, ok := data["longitude"].(float64)
	if !ok || !validator.IsValidLongitude(longitude) {
		return nil, entity.NewValidationError("Invalid longitude. Longitude should be a number between -180 and 180.")
	}

	event := &entity.Event{
		EventName: eventName,
		CityName:  cityName,
		Date:      dateMillis,
		Time:      timeMillis,
		Latitude:  latitude,
		Longitude: longitude,
	}

	if err := s.eventRepo.Insert(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return event, nil
}

func (s *eventService) SearchEvents(ctx context.Context, params SearchParams) (*entity.SearchResult, error) {
	data := make(map[string]any, len(params))
	for key, value := range params {
		data[key] = value
	}

	if missing := validator.CheckMissingFields(requiredSearchFields, data); len(missing) > 0 {
		return nil, &entity.ValidationError{
			Message:       "Missing required fields.",
			MissingFields: missing,
		}
	}

	anchor, ok := validator.ParseDate(params["date"])
	if !ok {
		return nil, entity.NewValidationError("Invalid date. Date should be string in YYYY-MM-DD format.")
	}

	latitude, err := strconv.ParseFloat(params["latitude"], 64)
	if err != nil || !validator.IsValidLatitude(latitude) {
		return nil, entity.NewValidationError("Invalid latitude. Latitude should be a number between -90 and 90.")
	}

	longitude, err := strconv.ParseFloat(params["longitude"], 64)
	if err != nil || !validator.IsValidLongitude(longitude) {
		return nil, entity.NewValidationError("Invalid longitude. Longitude should be a number between -180 and 180.")
	}

	page := 1
	if raw, present := params["page"]; present && raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil {
			return nil, entity.NewValidationError("Invalid page. Page should be a number.")
		}
	}

	result, err := s.eventRepo.FindByDateRange(ctx, anchor, NextDays, page, PageSize)
	if err != nil {
		return nil, err
	}

	totalPages := (result.TotalEvents + PageSize - 1) / PageSize

	// Negative-page guard only; zero is deliberately not excluded.
	if page < 0 || page > totalPages {
		return nil, &entity.RangeError{
			Page:        page,
			PageSize:    PageSize,
			TotalEvents: result.TotalEvents,
			TotalPages:  totalPages,
		}
	}

	enriched, err := s.enricher.Enrich(ctx, result.Events, latitude, longitude)
	if err != nil {
		return nil, err
	}

	return &entity.SearchResult{
		Page:        page,
		PageSize:    PageSize,
		TotalEvents: result.TotalEvents,
		TotalPages:  totalPages,
		Events:      enriched,
	}, nil
}

func (s *eventService) GetAllEvents(ctx context.Context) ([]*entity.Event, error) {
	events, err := s.eventRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all events: %w", err)
	}

	return events, nil
}
