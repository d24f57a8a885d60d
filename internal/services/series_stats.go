package services

import (
	"github.com/montanaflynn/stats"

	"github.com/tropicaldog17/cardfolio/internal/models"
)

// SeriesStats summarizes a daily value series
func SeriesStats(points []*models.DailyValue) (*models.SeriesStats, error) {
	if len(points) == 0 {
		return &models.SeriesStats{}, nil
	}

	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.Value.InexactFloat64()
	}

	low, err := stats.Min(values)
	if err != nil {
		return nil, err
	}
	high, err := stats.Max(values)
	if err != nil {
		return nil, err
	}
	mean, err := stats.Mean(values)
	if err != nil {
		return nil, err
	}

	first := values[0]
	last := values[len(values)-1]
	return &models.SeriesStats{
		Points: len(values),
		First:  first,
		Last:   last,
		Min:    low,
		Max:    high,
		Mean:   mean,
		Change: last - first,
	}, nil
}
