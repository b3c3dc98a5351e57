// Package main writes a demo directory snapshot so the service has known
// users to validate against on first run.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"roster/internal/directory/models"
)

func main() {
	path := flag.String("out", "users.json", "Snapshot file to write")
	force := flag.Bool("force", false, "Overwrite an existing snapshot")
	flag.Parse()

	if !*force {
		if _, err := os.Stat(*path); err == nil {
			fmt.Fprintf(os.Stderr, "error: %s already exists, use -force to overwrite\n", *path)
			os.Exit(1)
		}
	}

	records := []models.Record{
		{Email: "alice@example.com", UserID: "11111111-1111-1111-1111-111111111111"},
		{Email: "bob@example.com", UserID: "22222222-2222-2222-2222-222222222222"},
		{Email: "carol@example.com", UserID: "33333333-3333-3333-3333-333333333333", Blocked: true},
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	data = append(data, '\n')

	if err := os.WriteFile(*path, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("wrote %d records to %s\n", len(records), *path)
}
