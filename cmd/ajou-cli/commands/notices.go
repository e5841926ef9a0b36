package commands

import (
	"os"

	"ajou-backend/lib/scrapers/notice"
	"ajou-backend/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	noticesBaseLink *string
	noticesQuery    *string
	noticesLimit    *int
)

func init() {
	noticesBaseLink = noticesCmd.Flags().String(
		"base-link",
		"https://www.ajou.ac.kr/kr/ajou/notice.do",
		"The notice board url without a query string.",
	)
	noticesQuery = noticesCmd.Flags().String("query", notice.DefaultQuery, "The board facet to list.")
	noticesLimit = noticesCmd.Flags().Int("limit", notice.DefaultLimit, "How many notices to pull.")
	rootCmd.AddCommand(noticesCmd)
}

var noticesCmd = &cobra.Command{
	Use:   "notices [--limit <n>]",
	Short: "Fetches the latest notices straight off the board.",
	Run: func(cmd *cobra.Command, args []string) {
		client := notice.NewClient(*noticesBaseLink)
		notices, err := client.Fetch(cmd.Context(), *noticesQuery, *noticesLimit)
		if err != nil {
			serviceutil.Fatal("failed to fetch notices", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Id", "Category", "Date", "Title", "Writer"})
		for _, n := range notices {
			t.AppendRow(table.Row{n.Id, n.Category, n.Date, n.Title, n.Writer})
		}
		t.Render()
	},
}
