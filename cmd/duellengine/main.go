// duellengine is the reference CLI for the rules engine and search AI in
// pkg/engine: it loads or creates a game, runs diagnostic subcommands
// against it, and can invoke the search or a self-play batch.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/yourusername/duellengine/internal/strategy"
	"github.com/yourusername/duellengine/pkg/engine"
	"github.com/yourusername/duellengine/pkg/transcript"
)

const autosaveFile = ".autosave.kbx"

var (
	quiet        bool
	loadGameFile string
	randomSeed   int64
	strategyFile string
	strategyName string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "duellengine:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "duellengine",
	Short: "Rules engine and move-search AI for a Tactix/Duell-style board game",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadOrNewGame()
		if err != nil {
			return err
		}
		if quiet {
			return nil
		}
		printBoard(cmd.OutOrStdout(), g)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "exit immediately after initialization (root command only; subcommands ignore it)")
	rootCmd.PersistentFlags().StringVar(&loadGameFile, "load-game", "", "load a serialized game from FILE")
	rootCmd.PersistentFlags().Int64Var(&randomSeed, "random-seed", 0, "seed the RNG with N (0 = wall-clock time)")
	rootCmd.PersistentFlags().StringVar(&strategyFile, "strategy-file", "", "XML file of named strategy presets")
	rootCmd.PersistentFlags().StringVar(&strategyName, "strategy-name", "default", "strategy preset to use")

	rootCmd.AddCommand(boardCmd, movesCmd, searchCmd, selfplayCmd)
}

// loadOrNewGame implements the CLI mandate: --load-game FILE, falling back
// to .autosave.kbx in the working directory, falling back to a fresh game.
func loadOrNewGame() (*engine.Game, error) {
	path := loadGameFile
	if path == "" {
		if _, err := os.Stat(autosaveFile); err == nil {
			path = autosaveFile
		}
	}
	if path == "" {
		return engine.NewGame(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load game: %w", err)
	}
	g, err := engine.Deserialize(string(data))
	if err != nil {
		return nil, fmt.Errorf("load game: %w", err)
	}
	return g, nil
}

// saveGame writes g to path using Game.Serialize, falling back to the
// autosave file that a later invocation without --load-game reads back.
func saveGame(g *engine.Game, path string) error {
	if path == "" {
		path = autosaveFile
	}
	if err := os.WriteFile(path, []byte(g.Serialize()), 0o644); err != nil {
		return fmt.Errorf("save game: %w", err)
	}
	return nil
}

func resolveSeed() int64 {
	if randomSeed != 0 {
		return randomSeed
	}
	return time.Now().UnixNano()
}

func resolveStrategy() (engine.Strategy, error) {
	table := strategy.Default()
	if strategyFile != "" {
		loaded, err := strategy.LoadXML(strategyFile)
		if err != nil {
			return engine.Strategy{}, err
		}
		table = loaded
	}
	preset, ok := table.Get(strategyName)
	if !ok {
		preset = strategy.Preset{Name: "default", CoeffDiceRatio: 1.0, Patience: 0.95}
	}
	return engine.Strategy{
		Name:           preset.Name,
		CoeffDiceRatio: preset.CoeffDiceRatio,
		Patience:       preset.Patience,
	}, nil
}

// printMoveSummary reports the move that was just executed, any die it
// captured, and a fingerprint of the resulting position, so a caller
// scripting the CLI can tell what happened without re-parsing the board.
func printMoveSummary(w io.Writer, g *engine.Game) {
	last, ok := g.LastMove()
	if !ok {
		return
	}
	fmt.Fprintf(w, "move: die=%d dx=%d dy=%d firstX=%v\n",
		last.DieIndex, last.Rel.DX, last.Rel.DY, last.Rel.FirstX)
	if victim, captured := g.LastVictim(); captured {
		fmt.Fprintf(w, "captured: die=%d\n", victim)
	}
	fmt.Fprintf(w, "fingerprint: %s\n", g.Fingerprint())
}

func colorLetter(c engine.Color) string {
	switch c {
	case engine.White:
		return "W"
	case engine.Black:
		return "B"
	default:
		return "."
	}
}

func printBoard(w io.Writer, g *engine.Game) {
	table := tablewriter.NewTable(w)
	header := make([]string, 10)
	header[0] = "y\\x"
	for x := 0; x < engine.BoardSize; x++ {
		header[x+1] = strconv.Itoa(x)
	}
	table.Header(header)

	for y := engine.BoardSize - 1; y >= 0; y-- {
		row := make([]string, 10)
		row[0] = strconv.Itoa(y)
		for x := 0; x < engine.BoardSize; x++ {
			cell := "."
			for i := 0; i < 18; i++ {
				d := g.Die(i)
				if !d.GotKilled() && d.X == x && d.Y == y {
					cell = fmt.Sprintf("%s%d", colorLetter(d.Color), d.Value())
				}
			}
			row[x+1] = cell
		}
		table.Append(row)
	}
	table.Render()
}

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Print the current board as a 9x9 grid",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadOrNewGame()
		if err != nil {
			return err
		}
		printBoard(cmd.OutOrStdout(), g)
		return nil
	},
}

var movesCmd = &cobra.Command{
	Use:   "moves",
	Short: "List legal moves for one die, or every die to move",
	RunE: func(cmd *cobra.Command, args []string) error {
		dieFlag, err := cmd.Flags().GetInt("die")
		if err != nil {
			return err
		}
		if dieFlag >= 18 {
			return fmt.Errorf("%w: %d", engine.ErrDieIndex, dieFlag)
		}
		g, err := loadOrNewGame()
		if err != nil {
			return err
		}

		var moves []engine.Move
		if dieFlag >= 0 {
			moves = g.LegalMoves(dieFlag)
		} else {
			moves = g.LegalMovesForColor(g.Next)
		}

		table := tablewriter.NewTable(cmd.OutOrStdout())
		table.Header([]string{"die", "dx", "dy", "firstX"})
		for _, m := range moves {
			table.Append([]string{
				strconv.Itoa(m.DieIndex),
				strconv.Itoa(m.Rel.DX),
				strconv.Itoa(m.Rel.DY),
				strconv.FormatBool(m.Rel.FirstX),
			})
		}
		table.Render()
		return nil
	},
}

func init() {
	movesCmd.Flags().Int("die", -1, "die index (-1 = every die to move)")
}

var moveCmd = &cobra.Command{
	Use:   "move",
	Short: "Execute one move and persist the resulting game",
	RunE: func(cmd *cobra.Command, args []string) error {
		dieFlag, _ := cmd.Flags().GetInt("die")
		dx, _ := cmd.Flags().GetInt("dx")
		dy, _ := cmd.Flags().GetInt("dy")
		firstX, _ := cmd.Flags().GetBool("first-x")
		savePath, _ := cmd.Flags().GetString("save")

		if dieFlag < 0 || dieFlag >= 18 {
			return fmt.Errorf("%w: %d", engine.ErrDieIndex, dieFlag)
		}
		g, err := loadOrNewGame()
		if err != nil {
			return err
		}
		if d := g.Die(dieFlag); !engine.InBounds(d.X+dx, d.Y+dy) {
			return fmt.Errorf("%w: (%d,%d)", engine.ErrCoordinate, d.X+dx, d.Y+dy)
		}

		m := engine.Move{DieIndex: dieFlag, Rel: engine.RelativeMove{DX: dx, DY: dy, FirstX: firstX}}
		if !g.IsLegal(m) {
			return fmt.Errorf("%w: %+v", engine.ErrIllegalMove, m)
		}
		g.MakeMove(m, true)

		printBoard(cmd.OutOrStdout(), g)
		printMoveSummary(cmd.OutOrStdout(), g)
		if w := g.Winner(); w != engine.NoColor {
			fmt.Fprintf(cmd.OutOrStdout(), "winner: %s\n", w)
		}
		return saveGame(g, savePath)
	},
}

func init() {
	moveCmd.Flags().Int("die", -1, "die index to move (required)")
	moveCmd.Flags().Int("dx", 0, "x displacement")
	moveCmd.Flags().Int("dy", 0, "y displacement")
	moveCmd.Flags().Bool("first-x", true, "traverse the x-leg before the y-leg")
	moveCmd.Flags().String("save", "", "file to persist the result to (default .autosave.kbx)")
	rootCmd.AddCommand(moveCmd)
}

var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Undo the most recently executed move and persist the result",
	RunE: func(cmd *cobra.Command, args []string) error {
		savePath, _ := cmd.Flags().GetString("save")
		g, err := loadOrNewGame()
		if err != nil {
			return err
		}
		undone, ok := g.UndoMove()
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "nothing to undo")
			return nil
		}
		printBoard(cmd.OutOrStdout(), g)
		fmt.Fprintf(cmd.OutOrStdout(), "undid: die=%d dx=%d dy=%d firstX=%v\n",
			undone.DieIndex, undone.Rel.DX, undone.Rel.DY, undone.Rel.FirstX)
		fmt.Fprintf(cmd.OutOrStdout(), "fingerprint: %s\n", g.Fingerprint())
		return saveGame(g, savePath)
	},
}

var redoCmd = &cobra.Command{
	Use:   "redo",
	Short: "Redo the most recently undone move and persist the result",
	RunE: func(cmd *cobra.Command, args []string) error {
		savePath, _ := cmd.Flags().GetString("save")
		g, err := loadOrNewGame()
		if err != nil {
			return err
		}
		if _, ok := g.RedoMove(); !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "nothing to redo")
			return nil
		}
		printBoard(cmd.OutOrStdout(), g)
		printMoveSummary(cmd.OutOrStdout(), g)
		return saveGame(g, savePath)
	},
}

func init() {
	undoCmd.Flags().String("save", "", "file to persist the result to (default .autosave.kbx)")
	redoCmd.Flags().String("save", "", "file to persist the result to (default .autosave.kbx)")
	rootCmd.AddCommand(undoCmd, redoCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Run the negamax search and print the chosen move",
	RunE: func(cmd *cobra.Command, args []string) error {
		depth, err := cmd.Flags().GetInt("depth")
		if err != nil {
			return err
		}
		g, err := loadOrNewGame()
		if err != nil {
			return err
		}
		g.AIStrategy, err = resolveStrategy()
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("depth") && g.AIDepth > 0 {
			depth = g.AIDepth
		}

		search := engine.NewSearch(resolveSeed())
		rating, best := search.EvaluateNext(g, depth)
		if best == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "no legal move")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "rating=%.2f die=%d dx=%d dy=%d firstX=%v\n",
			rating, best.DieIndex, best.Rel.DX, best.Rel.DY, best.Rel.FirstX)
		return nil
	},
}

func init() {
	searchCmd.Flags().Int("depth", 4, "search depth in plies, one per half-move (overridden by a loaded game's own depth unless set)")
}

var selfplayCmd = &cobra.Command{
	Use:   "selfplay",
	Short: "Play a batch of AI-vs-AI games and report win rates",
	RunE: func(cmd *cobra.Command, args []string) error {
		games, _ := cmd.Flags().GetInt("games")
		depth, _ := cmd.Flags().GetInt("depth")
		workers, _ := cmd.Flags().GetInt("workers")

		strat, err := resolveStrategy()
		if err != nil {
			return err
		}

		opts := engine.SelfPlayOptions{
			Games:    games,
			Depth:    depth,
			Workers:  workers,
			Seed:     resolveSeed(),
			Strategy: strat,
		}
		result := engine.SelfPlay(opts)
		fmt.Fprintf(cmd.OutOrStdout(), "games=%d white=%d black=%d undecided=%d avgPlies=%.1f\n",
			result.GamesPlayed, result.WhiteWins, result.BlackWins, result.Undecided, result.AveragePlies)
		return nil
	},
}

func init() {
	selfplayCmd.Flags().Int("games", 100, "number of games to play")
	selfplayCmd.Flags().Int("depth", 2, "search depth per move")
	selfplayCmd.Flags().Int("workers", 0, "parallel workers (0 = GOMAXPROCS)")
}

var transcriptCmd = &cobra.Command{
	Use:   "transcript",
	Short: "Print a human-readable move log of the loaded game",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadOrNewGame()
		if err != nil {
			return err
		}
		return transcript.Write(cmd.OutOrStdout(), transcript.FromGame(g))
	},
}

func init() {
	rootCmd.AddCommand(transcriptCmd)
}
