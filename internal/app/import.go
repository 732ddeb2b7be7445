package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/enrollchart/internal/dataset"
	"github.com/blackwell-systems/enrollchart/internal/output"
)

var (
	importName  string
	importTitle string
	importLabel string

	importCmd = &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Store a CSV series as a named dataset",
		Long: `Read "year,value" rows from a CSV file and store them in the local
database under a name. Importing under an existing name replaces it.

The dataset name defaults to the file name without its extension.`,
		Example: `  # Import as "fall"
  enrollchart import fall.csv

  # Import with a custom name and title
  enrollchart import data.csv --name grad --title "Graduate Enrollment"`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}
)

func init() {
	importCmd.Flags().StringVar(&importName, "name", "", "dataset name (default: file name)")
	importCmd.Flags().StringVar(&importTitle, "title", "", "chart title")
	importCmd.Flags().StringVar(&importLabel, "label", "", "legend label")
}

func runImport(cmd *cobra.Command, args []string) error {
	s, err := dataset.LoadFile(args[0])
	if err != nil {
		return err
	}
	if importTitle != "" {
		s.Title = importTitle
	}
	if importLabel != "" {
		s.Name = importLabel
	}

	name := importName
	if name == "" {
		base := filepath.Base(args[0])
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.SaveSeries(name, s); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), output.Success(fmt.Sprintf("Imported %d points as %q", s.Len(), name)))
	return nil
}
