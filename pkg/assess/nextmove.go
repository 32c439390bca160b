package assess

import (
	"math/rand"

	"github.com/HuXin0817/doots/pkg/models/chess"
)

func RandEdgeInBetterEdges(b *chess.Board, r *rand.Rand) (chess.Edge, bool) {
	edges := BetterEdges(b)
	if len(edges) == 0 {
		return chess.Edge{}, false
	}
	return edges[r.Intn(len(edges))], true
}

// BetterEdges narrows the free edges to the ones a greedy player would consider:
// double claims, then single claims, then edges that hand over nothing, then all.
// Edges keep scan order within each group.
func BetterEdges(b *chess.Board) []chess.Edge {
	scoreCount := make(map[int][]chess.Edge)
	var safe []chess.Edge
	for _, e := range b.FreeEdges() {
		score := len(b.ClaimableBoxes(e))
		scoreCount[score] = append(scoreCount[score], e)
		if score == 0 && !givesBox(b, e) {
			safe = append(safe, e)
		}
	}

	if len(scoreCount[2]) > 0 {
		return scoreCount[2]
	}

	if len(scoreCount[1]) > 0 {
		return scoreCount[1]
	}

	if len(safe) > 0 {
		return safe
	}

	return scoreCount[0]
}

// givesBox reports whether drawing e leaves one of its own boxes with three sides.
func givesBox(b *chess.Board, e chess.Edge) bool {
	for _, box := range b.AssociatedBoxes(e) {
		if b.EdgesInBox(box) == 2 {
			return true
		}
	}
	return false
}
