package repository

import (
	"time"

	"gorm.io/gorm"
)

// DateRange is an optional inclusive [Start, End] filter on a date column.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

func (r DateRange) apply(q *gorm.DB) *gorm.DB {
	if r.Start != nil {
		q = q.Where("date >= ?", *r.Start)
	}
	if r.End != nil {
		q = q.Where("date <= ?", *r.End)
	}
	return q
}
