package main

import (
	"fmt"

	"github.com/spf13/cobra"

	algolia "github.com/britto/algolia-go"
)

func newSearchCommand() *cobra.Command {
	var (
		hitsPerPage int
		page        int
		filters     string
		raw         bool
	)

	cmd := &cobra.Command{
		Use:   "search <index> <query>",
		Short: "Run a full-text query against an index",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := algolia.Params{"hitsPerPage": hitsPerPage, "page": page}
			if filters != "" {
				params["filters"] = filters
			}

			res, err := newClient().Index(args[0]).Search(cmd.Context(), args[1], params)
			if err != nil {
				return err
			}
			if raw {
				return printJSON(res)
			}

			hits, _ := res["hits"].([]any)
			nbHits, _ := res["nbHits"].(float64)
			fmt.Println(titleStyle.Render(fmt.Sprintf("%d hits", int(nbHits))))
			for _, h := range hits {
				hit, ok := h.(map[string]any)
				if !ok {
					continue
				}
				id, _ := hit["objectID"].(string)
				fmt.Printf("%s %v\n", labelStyle.Render(id), hit["title"])
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&hitsPerPage, "hits", 10, "hits per page")
	cmd.Flags().IntVar(&page, "page", 0, "page number")
	cmd.Flags().StringVar(&filters, "filters", "", "filter expression")
	cmd.Flags().BoolVar(&raw, "json", false, "print the raw JSON response")

	return cmd
}
