/*
 * Orion - UCI chess engine in Go
 *
 * MIT License
 *
 * Copyright (c) 2026 The Orion Authors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package position

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	. "github.com/Wertyqin99331/OrionChessEngine/internal/types"
)

// FenErrorKind classifies which field of a FEN string failed to parse.
type FenErrorKind int

const (
	FieldCount FenErrorKind = iota
	PlacementSyntax
	SideToMove
	CastlingRightsField
	EnPassantSquare
	HalfMoveClock
	FullMoveNumber
)

func (k FenErrorKind) String() string {
	switch k {
	case FieldCount:
		return "FieldCount"
	case PlacementSyntax:
		return "PlacementSyntax"
	case SideToMove:
		return "SideToMove"
	case CastlingRightsField:
		return "CastlingRights"
	case EnPassantSquare:
		return "EnPassantSquare"
	case HalfMoveClock:
		return "HalfMoveClock"
	case FullMoveNumber:
		return "FullMoveNumber"
	default:
		return "Unknown"
	}
}

// FenError reports which field of an input FEN string was malformed.
type FenError struct {
	Kind  FenErrorKind
	Field string
}

func (e *FenError) Error() string {
	return fmt.Sprintf("fen: %s: %q", e.Kind, e.Field)
}

var (
	placementFieldRe = regexp.MustCompile(`^[pnbrqkPNBRQK1-8]+(/[pnbrqkPNBRQK1-8]+){7}$`)
	sideToMoveRe     = regexp.MustCompile(`^[wb]$`)
	castlingRe       = regexp.MustCompile(`^(-|K?Q?k?q?)$`)
	enPassantRe      = regexp.MustCompile(`^(-|[a-h][36])$`)
)

// FromFEN parses a 4- or 6-field FEN string into a new Position. The
// half-move clock and full-move number default to 0 and 1 when the
// last two fields are omitted.
func FromFEN(fen string) (*Position, error) {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) == 4 {
		fields = append(fields, "0", "1")
	}
	if len(fields) != 6 {
		return nil, &FenError{Kind: FieldCount, Field: fen}
	}

	p := &Position{enPassantSquare: SqNone}

	if err := p.parsePlacement(fields[0]); err != nil {
		return nil, err
	}
	if err := p.parseSideToMove(fields[1]); err != nil {
		return nil, err
	}
	if err := p.parseCastling(fields[2]); err != nil {
		return nil, err
	}
	if err := p.parseEnPassant(fields[3]); err != nil {
		return nil, err
	}
	if err := p.parseHalfMoveClock(fields[4]); err != nil {
		return nil, err
	}
	if err := p.parseFullMoveNumber(fields[5]); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Position) parsePlacement(field string) error {
	if !placementFieldRe.MatchString(field) {
		return &FenError{Kind: PlacementSyntax, Field: field}
	}
	ranks := strings.Split(field, "/")
	for i, rankStr := range ranks {
		r := Rank8 - Rank(i)
		f := FileA
		sum := 0
		for _, c := range rankStr {
			if c >= '1' && c <= '8' {
				n := int(c - '0')
				sum += n
				f += File(n)
				continue
			}
			pc := PieceFromChar(string(c))
			if pc == PieceNone || f > FileH {
				return &FenError{Kind: PlacementSyntax, Field: field}
			}
			p.addPiece(pc, SquareOf(f, r))
			f++
			sum++
		}
		if sum != 8 {
			return &FenError{Kind: PlacementSyntax, Field: field}
		}
	}
	return nil
}

func (p *Position) parseSideToMove(field string) error {
	if !sideToMoveRe.MatchString(field) {
		return &FenError{Kind: SideToMove, Field: field}
	}
	if field == "w" {
		p.sideToMove = White
	} else {
		p.sideToMove = Black
	}
	return nil
}

func (p *Position) parseCastling(field string) error {
	if !castlingRe.MatchString(field) {
		return &FenError{Kind: CastlingRightsField, Field: field}
	}
	if field == "-" {
		return nil
	}
	for _, c := range field {
		switch c {
		case 'K':
			p.castlingRights.Add(CastlingWhiteOO)
		case 'Q':
			p.castlingRights.Add(CastlingWhiteOOO)
		case 'k':
			p.castlingRights.Add(CastlingBlackOO)
		case 'q':
			p.castlingRights.Add(CastlingBlackOOO)
		}
	}
	return nil
}

// parseEnPassant additionally requires the target square's rank to
// match the side to move, beyond what the Rust original's parser
// checks: rank 6 only when White is to move, rank 3 only when Black
// is to move. A FEN claiming an en-passant square that no legal prior
// double push could have produced is rejected outright.
func (p *Position) parseEnPassant(field string) error {
	if !enPassantRe.MatchString(field) {
		return &FenError{Kind: EnPassantSquare, Field: field}
	}
	if field == "-" {
		return nil
	}
	sq := MakeSquare(field)
	if !p.sideToMove.EnPassantTargetRank().Has(sq) {
		return &FenError{Kind: EnPassantSquare, Field: field}
	}
	p.enPassantSquare = sq
	return nil
}

func (p *Position) parseHalfMoveClock(field string) error {
	n, err := strconv.Atoi(field)
	if err != nil || n < 0 || n > 100 {
		return &FenError{Kind: HalfMoveClock, Field: field}
	}
	p.halfMoveClock = n
	return nil
}

func (p *Position) parseFullMoveNumber(field string) error {
	n, err := strconv.Atoi(field)
	if err != nil || n < 1 || n > 65535 {
		return &FenError{Kind: FullMoveNumber, Field: field}
	}
	p.fullMoveNumber = n
	return nil
}

// FEN renders p back into Forsyth-Edwards notation, the inverse of
// FromFEN, used for round-trip tests and by Position.String.
func (p *Position) FEN() string {
	var b strings.Builder
	for r := Rank8; ; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			pc := p.board[SquareOf(f, r)]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteString(pc.String())
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if r == Rank1 {
			break
		}
		b.WriteByte('/')
	}
	b.WriteByte(' ')
	b.WriteString(p.sideToMove.String())
	b.WriteByte(' ')
	b.WriteString(p.castlingRights.String())
	b.WriteByte(' ')
	b.WriteString(p.enPassantSquare.String())
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(p.halfMoveClock))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(p.fullMoveNumber))
	return b.String()
}
