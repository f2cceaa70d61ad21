// Command centaurctl is a small admin CLI for operating on this game's
// static data and on-disk session snapshots: catalog stats, a
// leaderboard rebuilt from saved snapshots, and single-snapshot
// inspection.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/lastcentaur/engine/game/catalog"
	"github.com/lastcentaur/engine/game/leaderboard"
	"github.com/lastcentaur/engine/game/session"
)

func main() {
	cmd := &cli.Command{
		Name:  "centaurctl",
		Usage: "admin CLI for The Last Centaur's catalog and saved sessions",
		Commands: []*cli.Command{
			catalogStatsCommand(),
			leaderboardCommand(),
			snapshotInspectCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "centaurctl:", err)
		os.Exit(1)
	}
}

func catalogStatsCommand() *cli.Command {
	return &cli.Command{
		Name:  "catalog-stats",
		Usage: "print counts of every static catalog table",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			fmt.Printf("items:        %d\n", len(catalog.Items))
			fmt.Printf("enemies:      %d\n", len(catalog.Enemies))
			fmt.Printf("discoveries:  %d\n", len(catalog.AllDiscoveries()))
			fmt.Printf("achievements: %d\n", len(catalog.Achievements))
			fmt.Printf("titles:       %d\n", len(catalog.Titles))
			return nil
		},
	}
}

func leaderboardCommand() *cli.Command {
	var sessionsDir string
	var top int64

	return &cli.Command{
		Name:  "leaderboard",
		Usage: "rebuild and print a leaderboard from a directory of saved snapshots",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "sessions-dir",
				Value:       "sessions",
				Destination: &sessionsDir,
				Usage:       "directory of instance_id.json snapshot files",
			},
			&cli.IntFlag{
				Name:        "top",
				Value:       10,
				Destination: &top,
				Usage:       "number of entries to print per category",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			board, skipped, err := buildLeaderboard(sessionsDir)
			if err != nil {
				return err
			}
			if skipped > 0 {
				fmt.Printf("skipped %d snapshot(s) that were not completed runs\n\n", skipped)
			}

			fmt.Println("-- fastest completions --")
			for i, e := range board.TopByFastest(int(top)) {
				fmt.Printf("%2d. %-20s %dd %dh %dm (%s)\n", i+1, e.PlayerName, e.Days, e.Hours, e.Minutes, e.PathType)
			}

			fmt.Println("\n-- most achievements --")
			for i, e := range board.TopByAchievements(int(top)) {
				fmt.Printf("%2d. %-20s %d achievements (%s)\n", i+1, e.PlayerName, e.Achievements, e.PathType)
			}
			return nil
		},
	}
}

// buildLeaderboard reads every snapshot in dir and records one leaderboard
// entry per victorious run, since the leaderboard itself (game/leaderboard.Board)
// is an in-memory, process-lifetime structure with no file format of its own.
func buildLeaderboard(dir string) (*leaderboard.Board, int, error) {
	persistence, err := session.NewFilePersistence(dir)
	if err != nil {
		return nil, 0, err
	}
	ids, err := persistence.ListAll()
	if err != nil {
		return nil, 0, err
	}

	board := leaderboard.NewBoard()
	skipped := 0
	for _, id := range ids {
		data, ok, err := persistence.Get(id)
		if err != nil || !ok {
			skipped++
			continue
		}
		var snap session.Snapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			skipped++
			continue
		}
		if !snap.Victory || snap.PathProgress.Selected == "" {
			skipped++
			continue
		}

		totalMinutes := snap.GameTimeTotalMinutes
		entry := leaderboard.Entry{
			PlayerID:     snap.PlayerID,
			PlayerName:   snap.PlayerName,
			Days:         totalMinutes / (24 * 60),
			Hours:        (totalMinutes % (24 * 60)) / 60,
			Minutes:      totalMinutes % 60,
			Achievements: len(snap.Achievements),
			PathType:     leaderboard.PathType(snap.PathProgress.Selected),
		}
		if !board.AddEntry(entry) {
			skipped++
		}
	}
	return board, skipped, nil
}

func snapshotInspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "snapshot-inspect",
		Usage:     "print a human-readable summary of one snapshot file",
		ArgsUsage: "<path-to-snapshot.json>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return fmt.Errorf("snapshot-inspect requires a file path")
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}
			var snap session.Snapshot
			if err := json.Unmarshal(data, &snap); err != nil {
				return fmt.Errorf("parsing %s: %w", path, err)
			}

			fmt.Printf("instance:    %s\n", snap.InstanceID)
			fmt.Printf("player:      %s (%s)\n", snap.PlayerName, snap.PlayerID)
			fmt.Printf("position:    (%d, %d) in %s\n", snap.PlayerPosition[0], snap.PlayerPosition[1], snap.PlayerArea)
			fmt.Printf("inventory:   %d item(s)\n", len(snap.Inventory))
			fmt.Printf("visited:     %d tile(s)\n", len(snap.VisitedTiles))
			fmt.Printf("tile overrides: %d\n", len(snap.TileOverrides))
			fmt.Printf("game time:   %s (%d min)\n", snap.GameTime, snap.GameTimeTotalMinutes)
			fmt.Printf("path:        %s\n", orNone(snap.PathProgress.Selected))
			fmt.Printf("achievements: %s\n", strings.Join(orNoneSlice(snap.Achievements), ", "))
			fmt.Printf("game over:   %v (victory: %v)\n", snap.GameOver, snap.Victory)
			return nil
		},
	}
}

func orNone(s string) string {
	if s == "" {
		return "(none selected)"
	}
	return s
}

func orNoneSlice(s []string) []string {
	if len(s) == 0 {
		return []string{"(none)"}
	}
	return s
}
