package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/enrollchart/internal/dataset"
	"github.com/blackwell-systems/enrollchart/internal/store"
)

// sourceFlags selects where a command reads its series from.
type sourceFlags struct {
	input   string
	dataset string
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "read points from a year,value CSV file")
	cmd.Flags().StringVarP(&f.dataset, "dataset", "d", "", "read points from an imported dataset")
	cmd.MarkFlagsMutuallyExclusive("input", "dataset")
}

// load returns the selected series, falling back to the built-in
// enrollment figures when no source is given.
func (f *sourceFlags) load() (*dataset.Series, error) {
	switch {
	case f.input != "":
		return dataset.LoadFile(f.input)
	case f.dataset != "":
		return loadDataset(f.dataset)
	default:
		return dataset.Enrollment(), nil
	}
}

func loadDataset(name string) (*dataset.Series, error) {
	path, err := getDBPath()
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", store.ErrNotInitialized, path)
	}

	st, err := store.New(path)
	if err != nil {
		return nil, err
	}
	defer st.Close()

	s, err := st.GetSeries(name)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w (run 'enrollchart list' to see imported datasets)", err)
	}
	return s, err
}

// openStore opens the database and ensures the schema exists.
func openStore() (*store.Store, error) {
	path, err := getDBPath()
	if err != nil {
		return nil, err
	}

	st, err := store.New(path)
	if err != nil {
		return nil, err
	}
	if err := st.CreateSchema(); err != nil {
		st.Close()
		return nil, err
	}
	return st, nil
}
