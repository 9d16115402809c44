package services

import (
	"errors"
	"time"

	"shoppulse/internal/domain"
	"shoppulse/internal/repos"
)

var ErrBadDateRange = errors.New("start_date and end_date must be YYYY-MM-DD")

type StatsService struct {
	Stats  *repos.StatsRepo
	Events *repos.EventRepo
}

func (s *StatsService) Totals() (domain.Totals, error) {
	return s.Stats.Totals()
}

func (s *StatsService) OrdersByDate(start, end string) ([]domain.DayBucket, error) {
	if !validDate(start) || !validDate(end) {
		return nil, ErrBadDateRange
	}
	return s.Stats.OrdersByDate(start, end)
}

func (s *StatsService) TopCustomers() ([]domain.TopCustomer, error) {
	return s.Stats.TopCustomers(5)
}

// EventCounts backs the status page.
func (s *StatsService) EventCounts() (map[string]int64, error) {
	return s.Events.CountByType()
}

func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
