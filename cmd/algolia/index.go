package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newIndexCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index",
		Short: "List and manage indexes",
	}
	cmd.AddCommand(newIndexListCommand())
	cmd.AddCommand(newIndexClearCommand())
	cmd.AddCommand(newIndexSettingsCommand())
	return cmd
}

func newIndexListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every index of the application",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := newClient().ListIndexes(cmd.Context())
			if err != nil {
				return err
			}

			items, _ := res["items"].([]any)
			fmt.Println(titleStyle.Render(fmt.Sprintf("%d indexes", len(items))))
			for _, it := range items {
				index, ok := it.(map[string]any)
				if !ok {
					continue
				}
				name, _ := index["name"].(string)
				entries, _ := index["entries"].(float64)
				fmt.Printf("%s %d entries\n", labelStyle.Render(name), int(entries))
			}
			return nil
		},
	}
}

func newIndexClearCommand() *cobra.Command {
	var wait bool

	cmd := &cobra.Command{
		Use:   "clear <index>",
		Short: "Remove every object while keeping settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newClient()
			res, err := client.Index(args[0]).Clear(cmd.Context())
			if wait {
				res, err = client.Wait(cmd.Context(), res, err)
			}
			if err != nil {
				return err
			}
			return printJSON(res)
		},
	}

	cmd.Flags().BoolVar(&wait, "wait", false, "block until the clear is durable")
	return cmd
}

func newIndexSettingsCommand() *cobra.Command {
	var set string

	cmd := &cobra.Command{
		Use:   "settings <index>",
		Short: "Show or update index settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index := newClient().Index(args[0])

			if set == "" {
				settings, err := index.GetSettings(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(settings)
			}

			var settings map[string]any
			if err := json.Unmarshal([]byte(set), &settings); err != nil {
				return fmt.Errorf("invalid settings JSON: %w", err)
			}
			res, err := index.SetSettings(cmd.Context(), settings)
			if err != nil {
				return err
			}
			return printJSON(res)
		},
	}

	cmd.Flags().StringVar(&set, "set", "", "settings JSON to apply instead of reading")
	return cmd
}
