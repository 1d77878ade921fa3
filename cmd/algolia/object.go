package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newObjectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "object",
		Short: "Fetch, save, and delete index objects",
	}
	cmd.AddCommand(newObjectGetCommand())
	cmd.AddCommand(newObjectSaveCommand())
	cmd.AddCommand(newObjectDeleteCommand())
	return cmd
}

func newObjectGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <index> <objectID>",
		Short: "Fetch one object by identifier",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			obj, err := newClient().Index(args[0]).GetObject(cmd.Context(), args[1])
			if err != nil {
				return err
			}
			return printJSON(obj)
		},
	}
}

func newObjectSaveCommand() *cobra.Command {
	var wait bool

	cmd := &cobra.Command{
		Use:   "save <index> <json>",
		Short: "Create or replace an object (requires an objectID attribute)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var obj map[string]any
			if err := json.Unmarshal([]byte(args[1]), &obj); err != nil {
				return fmt.Errorf("invalid object JSON: %w", err)
			}

			client := newClient()
			res, err := client.Index(args[0]).SaveObject(cmd.Context(), obj)
			if wait {
				res, err = client.Wait(cmd.Context(), res, err)
			}
			if err != nil {
				return err
			}
			return printJSON(res)
		},
	}

	cmd.Flags().BoolVar(&wait, "wait", false, "block until the write is durable")
	return cmd
}

func newObjectDeleteCommand() *cobra.Command {
	var wait bool

	cmd := &cobra.Command{
		Use:   "delete <index> <objectID>",
		Short: "Delete one object by identifier",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newClient()
			res, err := client.Index(args[0]).DeleteObject(cmd.Context(), args[1])
			if wait {
				res, err = client.Wait(cmd.Context(), res, err)
			}
			if err != nil {
				return err
			}
			return printJSON(res)
		},
	}

	cmd.Flags().BoolVar(&wait, "wait", false, "block until the delete is durable")
	return cmd
}
