package commands

import (
	"context"
	"os"

	"ajou-backend/lib/configutil"
	"ajou-backend/lib/coursestore"
	"ajou-backend/lib/mongoutil"
	"ajou-backend/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	coursesDatabase *string
	coursesTerm     *string
	coursesCategory *string
)

func init() {
	coursesDatabase = coursesCmd.Flags().String("database", "ajou", "The database holding synced courses.")
	coursesTerm = coursesCmd.Flags().String("term", "", "The term label courses were synced under, e.g. 2023-1.")
	coursesCategory = coursesCmd.Flags().String("category", "전공과목", "The category collection to list.")
	coursesCmd.MarkFlagRequired("term")
	rootCmd.AddCommand(coursesCmd)
}

var coursesCmd = &cobra.Command{
	Use:   "courses --term <label> [--category <name>]",
	Short: "Prints the synced course catalog for one category.",
	Run: func(cmd *cobra.Command, args []string) {
		uri, err := configutil.RequireEnv("MONGODB")
		if err != nil {
			serviceutil.Fatal("failed to read database location", err)
		}
		client, err := mongoutil.Open(cmd.Context(), uri)
		if err != nil {
			serviceutil.Fatal("failed to open database", err)
		}
		defer client.Disconnect(context.Background())

		store := coursestore.New(client.Database(*coursesDatabase), *coursesTerm)
		courses, err := store.List(cmd.Context(), *coursesCategory)
		if err != nil {
			serviceutil.Fatal("failed to list courses", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Code", "Name", "Lecturer", "Credits", "Time"})
		for _, c := range courses {
			t.AppendRow(table.Row{
				c.SubjectCode,
				c.SubjectKoreanName,
				c.MainLecturerName,
				c.CreditPoints,
				c.ClassTimeKorean,
			})
		}
		t.Render()
	},
}
