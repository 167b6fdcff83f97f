package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ShayCichocki/relm/internal/examples"
	"github.com/ShayCichocki/relm/internal/store"
	"github.com/ShayCichocki/relm/pkg/relm"
)

var notesDB string

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Run the notes demo",
	Long: `Run a note list backed by SQLite.

Type a note and press enter to save it. The filter field matches notes
by substring or by a small edit distance per word.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		path := cfg.Notes.DBPath
		if notesDB != "" {
			path = notesDB
		}

		db, err := store.OpenAndMigrate(path)
		if err != nil {
			return fmt.Errorf("open notes database: %w", err)
		}
		defer db.Close()

		return relm.Run(examples.NewNotes(db), appOptions(cfg, "Notes")...)
	},
}

func init() {
	notesCmd.Flags().StringVar(&notesDB, "db", "", "Notes database (default: notes.db_path)")
}
