package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mfield/memorymatch/internal/cache"
	"github.com/mfield/memorymatch/internal/dependencies/clock"
	"github.com/mfield/memorymatch/internal/dependencies/random"
	"github.com/mfield/memorymatch/internal/dependencies/scheduler"
	"github.com/mfield/memorymatch/internal/model"
	"github.com/mfield/memorymatch/internal/services/deck"
	"github.com/mfield/memorymatch/internal/services/scoring"
	"github.com/mfield/memorymatch/internal/services/session"
	syncservice "github.com/mfield/memorymatch/internal/services/sync"
)

// leaderboardDisplayLimit matches the rows shown after a finished game
const leaderboardDisplayLimit = 8

func newPlayCmd() *cobra.Command {
	var difficulty, theme, name, images string
	var offline bool

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, difficulty, theme, name, images, offline)
		},
	}

	cmd.Flags().StringVar(&difficulty, "difficulty", "easy", "Difficulty: easy, medium, hard")
	cmd.Flags().StringVar(&theme, "theme", "emoji", "Theme: emoji, programming, animals, flags, custom")
	cmd.Flags().StringVar(&name, "name", "", "Player name for the leaderboard")
	cmd.Flags().StringVar(&images, "images", "", "Image URLs for the custom theme (whitespace or comma separated)")
	cmd.Flags().BoolVar(&offline, "offline", false, "Skip leaderboard submission")

	return cmd
}

func runPlay(cmd *cobra.Command, difficulty, theme, name, images string, offline bool) error {
	diffCfg, err := model.ConfigForDifficulty(model.Difficulty(difficulty))
	if err != nil {
		return fmt.Errorf("unknown difficulty %q", difficulty)
	}

	logger := playLogger()

	deckService := deck.New(random.New())
	items, err := deckService.ItemsFor(model.ThemeName(theme), diffCfg, deck.ParseCustomImageURLs(images))
	if err != nil {
		return err
	}
	cards, err := deckService.Build(items)
	if err != nil {
		return err
	}

	sess := session.New(cards, model.Difficulty(difficulty), model.ThemeName(theme), diffCfg, clock.New(), scheduler.New(), logger)
	defer sess.Discard()

	fmt.Printf("Memory Match: %s / %s (%d pairs)\n", difficulty, theme, diffCfg.PairCount)
	fmt.Println("Pick cards by number. Ctrl-D quits.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		snap := sess.Snapshot()
		printBoard(snap)

		if snap.State == model.SessionStateWon {
			break
		}

		fmt.Print("Card: ")
		if !scanner.Scan() {
			fmt.Println("\nGame abandoned.")
			return nil
		}

		cardID, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil {
			fmt.Println("Enter a card number.")
			continue
		}

		outcome, err := sess.Select(cardID)
		if err != nil {
			fmt.Printf("Can't pick that: %s\n", err)
			continue
		}

		switch outcome {
		case session.OutcomeMatch:
			fmt.Println("Match!")
		case session.OutcomeMismatch:
			mismatchSnap := sess.Snapshot()
			fmt.Printf("No match: %s vs %s\n",
				faceFor(mismatchSnap.Deck, mismatchSnap.FirstSelection),
				faceFor(mismatchSnap.Deck, mismatchSnap.SecondSelection),
			)
			// Let the settle task flip the pair back before the next render
			time.Sleep(session.SettleDelay + 50*time.Millisecond)
		}
	}

	return finishGame(cmd, sess, name, offline, scanner)
}

func finishGame(cmd *cobra.Command, sess *session.Session, name string, offline bool, scanner *bufio.Scanner) error {
	snap := sess.Snapshot()
	fmt.Println("\nYou won!")
	fmt.Printf("Score: %d\n", snap.Score)
	fmt.Printf("Time: %s\n", scoring.FormatTime(snap.ElapsedSeconds))
	fmt.Printf("Moves: %d\n", snap.Moves)
	fmt.Printf("Accuracy: %.0f%%\n", snap.Accuracy*100)

	if offline {
		return nil
	}

	if name == "" {
		fmt.Printf("Name for the leaderboard [%s]: ", model.DefaultPlayerName)
		if scanner.Scan() {
			name = strings.TrimSpace(scanner.Text())
		}
	}

	record := sess.Record(name)

	mirror := cache.NewMirrorInDir(cfg.DataDir)
	reconciler := syncservice.New(client, mirror, playLogger())
	records := reconciler.Submit(cmd.Context(), record)

	if reconciler.State() == syncservice.StateLocalOnly {
		fmt.Println("\nLeaderboard server unreachable; score saved locally.")
	}

	fmt.Println("\nLeaderboard:")
	out := NewOutput(cfg.Output)
	out.Print(syncservice.Rows(records, leaderboardDisplayLimit))
	return nil
}

func printBoard(snap session.Snapshot) {
	fmt.Println()
	const columns = 4
	for i, card := range snap.Deck {
		fmt.Printf("%-10s", cellFor(snap, i, card))
		if (i+1)%columns == 0 {
			fmt.Println()
		}
	}
	if len(snap.Deck)%columns != 0 {
		fmt.Println()
	}
	fmt.Printf("Moves: %d  Matched: %d/%d  Time: %s\n",
		snap.Moves, snap.MatchedPairs, snap.PairCount, scoring.FormatTime(snap.ElapsedSeconds))
}

func cellFor(snap session.Snapshot, index int, card model.Card) string {
	if card.Matched || index == snap.FirstSelection || index == snap.SecondSelection {
		return fmt.Sprintf("[%s]", faceFor(snap.Deck, index))
	}
	return fmt.Sprintf("(%2d)", card.ID)
}

func faceFor(deck model.Deck, index int) string {
	if index < 0 || index >= len(deck) {
		return "?"
	}
	card := deck[index]
	if card.Kind == model.CardKindImage {
		// Image URLs don't render in a terminal; show the file name instead
		label := card.Token
		if i := strings.LastIndex(label, "/"); i >= 0 && i < len(label)-1 {
			label = label[i+1:]
		}
		if len(label) > 8 {
			label = label[:8]
		}
		return label
	}
	return card.Token
}

func playLogger() *slog.Logger {
	if cfg.Verbose {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
