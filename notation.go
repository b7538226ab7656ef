package rpgn

import (
	"regexp"
	"strings"

	"github.com/notnil/chess"
)

// The tree never mutates a position and never implements chess rules
// itself: legality, move application and SAN encoding are all delegated
// to the notnil/chess engine through the helpers in this file.

var sanRegexp = regexp.MustCompile(`^(?:(O-O(?:-O)?)|([KQRBN])?([a-h])?([1-8])?(x)?([a-h][1-8])(?:=([QRBN]))?)([+#])?$`)

var pieceLetters = map[string]chess.PieceType{
	"K": chess.King,
	"Q": chess.Queen,
	"R": chess.Rook,
	"B": chess.Bishop,
	"N": chess.Knight,
}

// encodeNotation produces the minimal disambiguated SAN for a move,
// including check and mate suffixes.
func encodeNotation(before *chess.Position, move *chess.Move) string {
	return chess.AlgebraicNotation{}.Encode(before, move)
}

// positionsEqual compares two positions by their FEN, which covers piece
// placement, side to move, castling rights, en passant and move counters.
func positionsEqual(a, b *chess.Position) bool {
	return a.String() == b.String()
}

// legalMove returns the engine's canonical form of move if it is legal in
// pos, or nil.
func legalMove(pos *chess.Position, move *chess.Move) *chess.Move {
	if move == nil {
		return nil
	}
	for _, m := range pos.ValidMoves() {
		if m.S1() == move.S1() && m.S2() == move.S2() && m.Promo() == move.Promo() {
			return m
		}
	}
	return nil
}

// resolveNotation resolves SAN text against a position, distinguishing
// malformed syntax, an illegal move and ambiguous notation. Ambiguity is
// judged by candidate counting, not by the engine decoder: the decoder is
// free to be lenient about missing disambiguation, a tree that records
// moves permanently is not.
func resolveNotation(pos *chess.Position, text string, ply MoveNumber) (*chess.Move, *NotationError) {
	san := strings.TrimRight(text, "!?")
	if strings.HasPrefix(san, "0-0") {
		san = strings.Replace(san, "0-0-0", "O-O-O", 1)
		san = strings.Replace(san, "0-0", "O-O", 1)
	}

	parts := sanRegexp.FindStringSubmatch(san)
	if parts == nil {
		// outside the grammar; give the engine decoder one chance before
		// declaring the text malformed
		if move, err := (chess.AlgebraicNotation{}).Decode(pos, san); err == nil {
			return move, nil
		}
		return nil, &NotationError{Text: text, Reason: NotationMalformed, Ply: ply}
	}

	candidates := matchingMoves(pos, parts)
	switch len(candidates) {
	case 0:
		return nil, &NotationError{Text: text, Reason: NotationIllegal, Ply: ply}
	case 1:
		return candidates[0], nil
	default:
		return nil, &NotationError{Text: text, Reason: NotationAmbiguous, Ply: ply}
	}
}

// matchingMoves collects the legal moves compatible with the parsed SAN
// parts. Capture glyphs are not required to match: readers are lenient
// about them, and leniency only widens the ambiguity net.
func matchingMoves(pos *chess.Position, parts []string) []*chess.Move {
	castle, pieceLetter := parts[1], parts[2]
	fromFile, fromRank := parts[3], parts[4]
	dest, promoLetter := parts[6], parts[7]

	var out []*chess.Move
	for _, m := range pos.ValidMoves() {
		if castle != "" {
			tag := chess.KingSideCastle
			if castle == "O-O-O" {
				tag = chess.QueenSideCastle
			}
			if m.HasTag(tag) {
				out = append(out, m)
			}
			continue
		}

		if m.S2().String() != dest {
			continue
		}
		pieceType := pos.Board().Piece(m.S1()).Type()
		if pieceLetter == "" {
			if pieceType != chess.Pawn || m.HasTag(chess.KingSideCastle) || m.HasTag(chess.QueenSideCastle) {
				continue
			}
		} else if pieceType != pieceLetters[pieceLetter] {
			continue
		}
		if fromFile != "" && m.S1().File().String() != fromFile {
			continue
		}
		if fromRank != "" && m.S1().Rank().String() != fromRank {
			continue
		}
		if promoLetter != "" && m.Promo() != pieceLetters[promoLetter] {
			continue
		}
		if promoLetter == "" && m.Promo() != chess.NoPieceType {
			continue
		}
		out = append(out, m)
	}
	return out
}
