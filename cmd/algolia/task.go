package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newTaskCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Inspect and wait on indexing tasks",
	}
	cmd.AddCommand(newTaskStatusCommand())
	cmd.AddCommand(newTaskWaitCommand())
	return cmd
}

func newTaskStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status <index> <taskID>",
		Short: "Show the current status of a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := newClient().Index(args[0]).GetTask(cmd.Context(), args[1])
			if err != nil {
				return err
			}
			return printJSON(res)
		},
	}
}

func newTaskWaitCommand() *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "wait <index> <taskID>",
		Short: "Block until a task is published",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index := newClient().Index(args[0])
			if err := index.WaitTaskWithInterval(cmd.Context(), args[1], interval); err != nil {
				return err
			}
			fmt.Println(titleStyle.Render("published"))
			return nil
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", time.Second, "poll interval")
	return cmd
}
