package store

import "time"

// DatasetInfo summarizes a stored dataset.
type DatasetInfo struct {
	Name       string
	Title      string
	PointCount int
	FirstYear  int
	LastYear   int
	CreatedAt  time.Time
}
