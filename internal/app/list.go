package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/enrollchart/internal/output"
)

var (
	listDelete string

	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List imported datasets",
		Example: `  # List datasets
  enrollchart list

  # Delete a dataset
  enrollchart list --delete fall`,
		Args: cobra.NoArgs,
		RunE: runList,
	}
)

func init() {
	listCmd.Flags().StringVar(&listDelete, "delete", "", "delete the named dataset")
}

func runList(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	out := cmd.OutOrStdout()

	if listDelete != "" {
		if err := st.DeleteDataset(listDelete); err != nil {
			return err
		}
		fmt.Fprintln(out, output.Success(fmt.Sprintf("Deleted %q", listDelete)))
		return nil
	}

	infos, err := st.ListDatasets()
	if err != nil {
		return err
	}
	fmt.Fprint(out, output.RenderDatasetTable(infos))
	return nil
}
