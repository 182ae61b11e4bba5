package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/TheoAcker12/weekly-scheduler/internal/weekly"
)

func newTagCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tag <schedule id> [field id...]",
		Short: "Replace the fields attached to a schedule. Without field ids the schedule is untagged",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}
			scheduleID, fieldIDs := ids[0], ids[1:]

			_, service, closeFn, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			if err := service.ReplaceScheduleFields(cmd.Context(), scheduleID, fieldIDs); err != nil {
				if errors.Is(err, weekly.ErrReadOnlySource) {
					return fmt.Errorf("tagging needs datasource.driver %q: %w", "database", err)
				}
				return fmt.Errorf("service.ReplaceScheduleFields > %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Schedule %d now has %d field(s)\n", scheduleID, len(fieldIDs))
			return nil
		},
	}
}

func parseIDs(args []string) ([]int, error) {
	ids := make([]int, 0, len(args))
	for _, arg := range args {
		id, err := strconv.Atoi(arg)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid id %q: ids are positive integers", arg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
