package board

// GenerateMoves returns every legal move available to the side to move, in
// deterministic order: castles (kingside then queenside) before simple
// moves, simple moves ordered by (from, to) over coords() x coords() in
// row-major, rank-ascending, file-ascending order. Test oracles depend on
// this order; it must never be reshuffled, including by parallel enumeration.
func GenerateMoves(state State) []Move {
	var moves []Move

	for _, cs := range []Castleside{Kingside, Queenside} {
		if CanCastle(state, cs) {
			moves = append(moves, Move{
				Action: CastleMove(cs),
				Next:   applyCastle(state, cs),
			})
		}
	}

	coords := Coords()
	for _, from := range coords {
		for _, to := range coords {
			if CanMove(state, from, to) {
				moves = append(moves, Move{
					Action: SimpleMove(from, to),
					Next:   applySimple(state, from, to),
				})
			}
		}
	}

	return moves
}
