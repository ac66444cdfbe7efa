package repository

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/akashsahu123/event-management/internal/entity"
	"github.com/akashsahu123/event-management/internal/validator"

	"github.com/sirupsen/logrus"
)

// CSVSeeder ingests the bootstrap dataset, one event per row under a
// header row. Every row is validated and inserted; the first bad row or
// failed insert aborts the whole bootstrap.
type CSVSeeder struct {
	Path string
}

func NewCSVSeeder(path string) *CSVSeeder {
	return &CSVSeeder{Path: path}
}

func (s *CSVSeeder) Seed(ctx context.Context, repo EventRepository) error {
	f, err := os.Open(s.Path)
	if err != nil {
		return fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)

	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("failed to read seed header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}
	for _, required := range []string{"event_name", "city_name", "date", "time", "latitude", "longitude"} {
		if _, ok := columns[required]; !ok {
			return fmt.Errorf("seed file is missing column %q", required)
		}
	}

	line := 1
	inserted := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read seed row: %w", err)
		}
		line++

		event, err := s.parseRecord(record, columns)
		if err != nil {
			return fmt.Errorf("seed row %d: %w", line, err)
		}

		if err := repo.Insert(ctx, event); err != nil {
			return fmt.Errorf("seed row %d: %w", line, err)
		}
		inserted++
	}

	logrus.WithField("events", inserted).Info("Seed dataset loaded into events table")
	return nil
}

func (s *CSVSeeder) parseRecord(record []string, columns map[string]int) (*entity.Event, error) {
	eventName := record[columns["event_name"]]
	cityName := record[columns["city_name"]]

	if eventName == "" || len(eventName) > 100 {
		return nil, fmt.Errorf("invalid event_name %q", eventName)
	}
	if cityName == "" || len(cityName) > 100 {
		return nil, fmt.Errorf("invalid city_name %q", cityName)
	}

	date, ok := validator.ParseDate(record[columns["date"]])
	if !ok {
		return nil, fmt.Errorf("invalid date %q", record[columns["date"]])
	}

	clock, ok := validator.ParseTime(record[columns["time"]])
	if !ok {
		return nil, fmt.Errorf("invalid time %q", record[columns["time"]])
	}

	latitude, err := strconv.ParseFloat(record[columns["latitude"]], 64)
	if err != nil || !validator.IsValidLatitude(latitude) {
		return nil, fmt.Errorf("invalid latitude %q", record[columns["latitude"]])
	}

	longitude, err := strconv.ParseFloat(record[columns["longitude"]], 64)
	if err != nil || !validator.IsValidLongitude(longitude) {
		return nil, fmt.Errorf("invalid longitude %q", record[columns["longitude"]])
	}

	return &entity.Event{
		EventName: eventName,
		CityName:  cityName,
		Date:      entity.DateToMillis(date.Year, date.Month, date.Day),
		Time:      entity.TimeToMillis(clock.Hour, clock.Minute, clock.Second),
		Latitude:  latitude,
		Longitude: longitude,
	}, nil
}
