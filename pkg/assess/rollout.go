package assess

import (
	"math"
	"math/rand"
	"runtime"
	"time"

	"github.com/HuXin0817/doots/pkg/models/chess"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/threading"
)

const (
	rolloutFamily     = "Rollout"
	DefaultSearchTime = 500 * time.Millisecond
)

// Rollout plays random greedy games to the end from every candidate edge on several
// goroutines and keeps the candidate with the best average box margin.
type Rollout struct {
	id         chess.PlayerID
	goroutines int
	searchTime time.Duration
	seed       int64
}

type RolloutOption func(*Rollout)

func WithGoroutines(n int) RolloutOption {
	return func(r *Rollout) {
		if n > 0 {
			r.goroutines = n
		}
	}
}

func WithSearchTime(d time.Duration) RolloutOption {
	return func(r *Rollout) {
		r.searchTime = d
	}
}

func WithSeed(seed int64) RolloutOption {
	return func(r *Rollout) {
		r.seed = seed
	}
}

func NewRollout(id chess.PlayerID, options ...RolloutOption) *Rollout {
	r := &Rollout{
		id:         id,
		goroutines: runtime.NumCPU(),
		searchTime: DefaultSearchTime,
		seed:       time.Now().UnixNano(),
	}

	for _, option := range options {
		option(r)
	}

	return r
}

func (r *Rollout) Name() string { return name(rolloutFamily, r.id) }

type playoutStats struct {
	sumScore   []int
	searchTime []int
}

func (r *Rollout) Play(b *chess.Board) (bestEdge chess.Edge, err error) {
	candidates := BetterEdges(b)
	switch len(candidates) {
	case 0:
		return bestEdge, ErrNoFreeEdge
	case 1:
		return candidates[0], nil
	}

	// Goroutine i samples candidates i, i+goroutines, ... so together they sweep the
	// list. Each runs at least one playout and stops at the shared deadline.
	deadline := time.Now().Add(r.searchTime)
	stats := make([]playoutStats, r.goroutines)
	group := threading.NewRoutineGroup()
	for i := range r.goroutines {
		local := &stats[i]
		local.sumScore = make([]int, len(candidates))
		local.searchTime = make([]int, len(candidates))
		rnd := rand.New(rand.NewSource(r.seed + int64(i)))
		group.RunSafe(func() {
			for k := i % len(candidates); ; k = (k + r.goroutines) % len(candidates) {
				local.sumScore[k] += Playout(b, r.id, candidates[k], rnd)
				local.searchTime[k]++
				if !time.Now().Before(deadline) {
					return
				}
			}
		})
	}
	group.Wait()

	globalSumScore := make([]int, len(candidates))
	globalSearchTime := make([]int, len(candidates))
	total := 0
	for _, local := range stats {
		for k := range candidates {
			globalSumScore[k] += local.sumScore[k]
			globalSearchTime[k] += local.searchTime[k]
			total += local.searchTime[k]
		}
	}

	bestEdge, bestScore := candidates[0], math.Inf(-1)
	for k, e := range candidates {
		if globalSearchTime[k] == 0 {
			continue
		}
		if avg := float64(globalSumScore[k]) / float64(globalSearchTime[k]); avg > bestScore {
			bestEdge, bestScore = e, avg
		}
	}

	logx.Debugf("%s: %d playouts over %d candidates, best %v (%.2f)", r.Name(), total, len(candidates), bestEdge, bestScore)
	return bestEdge, nil
}

// Playout draws first for id on a copy of b, then lets both sides pick randomly among
// BetterEdges until the board is full. It returns id's boxes minus the opponent's.
func Playout(b *chess.Board, id chess.PlayerID, first chess.Edge, r *rand.Rand) (score int) {
	board := b.Clone()
	turn := id
	e := first
	for {
		m := Move{Board: board, Edge: e}
		s := m.Score()
		if turn == id {
			score += s
		} else {
			score -= s
		}

		changeTurn := m.WillChangeTurn()
		if _, err := board.Draw(turn, e); err != nil {
			return
		}

		if changeTurn {
			turn = turn.Opponent()
		}

		next, ok := RandEdgeInBetterEdges(board, r)
		if !ok {
			return
		}
		e = next
	}
}
