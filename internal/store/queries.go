package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/blackwell-systems/enrollchart/internal/dataset"
)

// SaveSeries stores s under name, replacing any existing dataset with that name.
func (s *Store) SaveSeries(name string, series *dataset.Series) error {
	if name == "" {
		return fmt.Errorf("dataset name cannot be empty")
	}
	if err := series.Validate(); err != nil {
		return fmt.Errorf("invalid series %s: %w", name, err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Cascades to points
	if _, err := tx.Exec(`DELETE FROM datasets WHERE name = ?`, name); err != nil {
		return fmt.Errorf("failed to replace dataset %s: %w", name, classify(err))
	}

	_, err = tx.Exec(`
		INSERT INTO datasets (name, title, series_name, x_label, y_label, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, name, series.Title, series.Name, series.XLabel, series.YLabel, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to insert dataset %s: %w", name, classify(err))
	}

	stmt, err := tx.Prepare(`INSERT INTO points (dataset, year, value) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare point insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range series.Points {
		if _, err := stmt.Exec(name, p.Year, p.Value); err != nil {
			return fmt.Errorf("failed to insert point %d for %s: %w", p.Year, name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit dataset %s: %w", name, err)
	}
	return nil
}

// GetSeries loads the dataset stored under name, points ordered by year.
func (s *Store) GetSeries(name string) (*dataset.Series, error) {
	series := &dataset.Series{}
	err := s.db.QueryRow(`
		SELECT title, series_name, x_label, y_label
		FROM datasets
		WHERE name = ?
	`, name).Scan(&series.Title, &series.Name, &series.XLabel, &series.YLabel)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get dataset %s: %w", name, classify(err))
	}

	rows, err := s.db.Query(`SELECT year, value FROM points WHERE dataset = ? ORDER BY year`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get points for %s: %w", name, classify(err))
	}
	defer rows.Close()

	for rows.Next() {
		var p dataset.Point
		if err := rows.Scan(&p.Year, &p.Value); err != nil {
			return nil, fmt.Errorf("failed to scan point for %s: %w", name, err)
		}
		series.Points = append(series.Points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating points for %s: %w", name, err)
	}

	return series, nil
}

// ListDatasets returns a summary of every stored dataset, ordered by name.
func (s *Store) ListDatasets() ([]DatasetInfo, error) {
	rows, err := s.db.Query(`
		SELECT d.name, d.title, d.created_at,
		       COUNT(p.year), COALESCE(MIN(p.year), 0), COALESCE(MAX(p.year), 0)
		FROM datasets d
		LEFT JOIN points p ON p.dataset = d.name
		GROUP BY d.name
		ORDER BY d.name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list datasets: %w", classify(err))
	}
	defer rows.Close()

	var infos []DatasetInfo
	for rows.Next() {
		var info DatasetInfo
		var createdAt string
		if err := rows.Scan(&info.Name, &info.Title, &createdAt, &info.PointCount, &info.FirstYear, &info.LastYear); err != nil {
			return nil, fmt.Errorf("failed to scan dataset: %w", err)
		}
		info.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for %s: %w", info.Name, err)
		}
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating datasets: %w", err)
	}

	return infos, nil
}

// DeleteDataset removes the named dataset and its points.
func (s *Store) DeleteDataset(name string) error {
	res, err := s.db.Exec(`DELETE FROM datasets WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to delete dataset %s: %w", name, classify(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete dataset %s: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return nil
}
