package store

import (
	"context"

	"fintrack/internal/core"
)

// Dashboard aggregates are computed by the backend and change only when the
// underlying data does, so reads go through a short-lived cache that every
// mutation, refresh and currency change clears.

const (
	dashKeyStats   = "stats"
	dashKeySlices  = "expense-by-category"
	dashKeyMonthly = "monthly-analysis"
)

func (s *Store) Stats(ctx context.Context) (core.Stats, error) {
	if v, ok := s.dash.Get(dashKeyStats); ok {
		return v.(core.Stats), nil
	}
	stats, err := s.backend.Stats(ctx)
	if err != nil {
		return core.Stats{}, err
	}
	s.dash.Set(dashKeyStats, stats)
	return stats, nil
}

func (s *Store) ExpenseByCategory(ctx context.Context) ([]core.CategorySlice, error) {
	if v, ok := s.dash.Get(dashKeySlices); ok {
		return v.([]core.CategorySlice), nil
	}
	slices, err := s.backend.ExpenseByCategory(ctx)
	if err != nil {
		return nil, err
	}
	s.dash.Set(dashKeySlices, slices)
	return slices, nil
}

func (s *Store) MonthlyAnalysis(ctx context.Context) ([]core.MonthlyPoint, error) {
	if v, ok := s.dash.Get(dashKeyMonthly); ok {
		return v.([]core.MonthlyPoint), nil
	}
	points, err := s.backend.MonthlyAnalysis(ctx)
	if err != nil {
		return nil, err
	}
	s.dash.Set(dashKeyMonthly, points)
	return points, nil
}
