package engine

import (
	"runtime"
	"sync"
)

// SelfPlayOptions controls a batch of AI-vs-AI games played to gather
// win-rate statistics for a strategy.
type SelfPlayOptions struct {
	Games    int      // number of independent games to play (default 100)
	Depth    int      // search depth passed to EvaluateNext each ply (default 2)
	MaxPlies int      // safety limit per game before it is called undecided (default 400)
	Seed     int64    // base RNG seed; each game gets a distinct derived seed
	Workers  int      // number of goroutines (default GOMAXPROCS)
	Strategy Strategy // strategy both sides play under
}

// DefaultSelfPlayOptions returns sensible defaults.
func DefaultSelfPlayOptions() SelfPlayOptions {
	return SelfPlayOptions{
		Games:    100,
		Depth:    2,
		MaxPlies: 400,
		Workers:  0,
		Strategy: DefaultStrategy(),
	}
}

// SelfPlayResult summarizes a completed batch.
type SelfPlayResult struct {
	GamesPlayed  int
	WhiteWins    int
	BlackWins    int
	Undecided    int // no winner: hit MaxPlies, or the search found no move
	AveragePlies float64
}

type gameOutcome struct {
	winner Color
	plies  int
}

// SelfPlay plays opts.Games independent games to completion, concurrently
// across opts.Workers goroutines. Only the outer loop over independent games
// is parallel — each game owns its own *Game and *Search, and a single
// game's EvaluateNext call is never invoked from more than one goroutine at
// a time, so the single-threaded-search guarantee holds at the granularity
// the search itself is required to honor.
func SelfPlay(opts SelfPlayOptions) SelfPlayResult {
	if opts.Games <= 0 {
		opts.Games = 100
	}
	if opts.Depth <= 0 {
		opts.Depth = 2
	}
	if opts.MaxPlies <= 0 {
		opts.MaxPlies = 400
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}

	gamesPerWorker := opts.Games / opts.Workers
	extra := opts.Games % opts.Workers

	results := make(chan gameOutcome, opts.Games)
	var wg sync.WaitGroup

	nextGame := 0
	for w := 0; w < opts.Workers; w++ {
		n := gamesPerWorker
		if w < extra {
			n++
		}
		start := nextGame
		nextGame += n

		wg.Add(1)
		go func(start, n int) {
			defer wg.Done()
			for i := 0; i < n; i++ {
				results <- playOneGame(opts, opts.Seed+int64(start+i)*1000003)
			}
		}(start, n)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var res SelfPlayResult
	totalPlies := 0
	for o := range results {
		res.GamesPlayed++
		totalPlies += o.plies
		switch o.winner {
		case White:
			res.WhiteWins++
		case Black:
			res.BlackWins++
		default:
			res.Undecided++
		}
	}
	if res.GamesPlayed > 0 {
		res.AveragePlies = float64(totalPlies) / float64(res.GamesPlayed)
	}
	return res
}

// playOneGame runs a single AI-vs-AI game to a winner, to the safety limit,
// or until the search finds no move (which should not happen from a legal
// position with any live die to move).
func playOneGame(opts SelfPlayOptions, seed int64) gameOutcome {
	g := NewGame()
	g.AIDepth = opts.Depth
	g.AIStrategy = opts.Strategy
	search := NewSearch(seed)

	plies := 0
	for plies < opts.MaxPlies {
		if w := g.Winner(); w != NoColor {
			return gameOutcome{winner: w, plies: plies}
		}
		_, best := search.EvaluateNext(g, opts.Depth)
		if best == nil {
			break
		}
		g.MakeMove(*best, true)
		plies++
	}
	return gameOutcome{winner: g.Winner(), plies: plies}
}
