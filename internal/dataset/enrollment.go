package dataset

// Default labels applied to series that do not set their own.
const (
	DefaultName   = "Total Enrollment"
	DefaultTitle  = "U.S. Undergraduate Enrollment (2000-2030)"
	DefaultXLabel = "Year"
	DefaultYLabel = "Enrollment (Millions)"
)

// Enrollment returns U.S. undergraduate enrollment in millions, from the
// NCES report. The 2030 figure is a projection.
func Enrollment() *Series {
	return &Series{
		Name:   DefaultName,
		Title:  DefaultTitle,
		XLabel: DefaultXLabel,
		YLabel: DefaultYLabel,
		Points: []Point{
			{Year: 2000, Value: 13.2},
			{Year: 2010, Value: 15.7},
			{Year: 2021, Value: 13.3},
			{Year: 2030, Value: 16.7},
		},
	}
}

// applyDefaults fills empty labels with the enrollment chart labels.
func (s *Series) applyDefaults() {
	if s.Name == "" {
		s.Name = DefaultName
	}
	if s.Title == "" {
		s.Title = DefaultTitle
	}
	if s.XLabel == "" {
		s.XLabel = DefaultXLabel
	}
	if s.YLabel == "" {
		s.YLabel = DefaultYLabel
	}
}
