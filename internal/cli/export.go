package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Abhishek2312Singh/complain-management-system/internal/export"
)

func newExportCmd(configPath *string) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export <status>",
		Short: "Export a status bucket to an xlsx workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := parseStatus(args[0])
			if err != nil {
				return err
			}
			a, err := newApp(*configPath)
			if err != nil {
				return err
			}
			records, err := fetchRecords(cmd, a, status)
			if err != nil {
				return err
			}
			if err := export.WriteWorkbook(out, records); err != nil {
				return err
			}
			fmt.Printf("Wrote %d complaints to %s\n", len(records), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "complaints.xlsx", "output file")
	return cmd
}
