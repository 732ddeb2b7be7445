package store

const schema = `
CREATE TABLE IF NOT EXISTS datasets (
    name TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    series_name TEXT NOT NULL,
    x_label TEXT NOT NULL,
    y_label TEXT NOT NULL,
    created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS points (
    dataset TEXT NOT NULL,
    year INTEGER NOT NULL,
    value REAL NOT NULL,
    PRIMARY KEY (dataset, year),
    FOREIGN KEY (dataset) REFERENCES datasets(name) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_points_dataset ON points(dataset);
`
