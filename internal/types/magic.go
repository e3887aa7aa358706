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

package types

// magic holds the fancy-magic-bitboard lookup data for a single square
// and a single sliding piece family (bishop or rook).
// Approach and constants taken from Stockfish; see
// https://www.chessprogramming.org/Magic_Bitboards.
type magic struct {
	mask    Bitboard
	factor  Bitboard
	attacks []Bitboard
	shift   uint
}

// index computes the table offset for occupied under this square's magic.
func (m *magic) index(occupied Bitboard) uint {
	occ := occupied & m.mask
	occ *= m.factor
	occ >>= m.shift
	return uint(occ)
}

// attacksFor returns the sliding-attack bitboard for the occupancy occupied.
func (m *magic) attacksFor(occupied Bitboard) Bitboard {
	return m.attacks[m.index(occupied)]
}

var (
	bishopTable  [0x1480]Bitboard
	rookTable    [0x19000]Bitboard
	bishopMagics [SqNone]magic
	rookMagics   [SqNone]magic
)

var bishopDirections = [4]Direction{Northeast, Southeast, Southwest, Northwest}
var rookDirections = [4]Direction{North, East, South, West}

func init() {
	initMagics(bishopTable[:], &bishopMagics, &bishopDirections)
	initMagics(rookTable[:], &rookMagics, &rookDirections)
}

// initMagics computes the magic lookup tables for one sliding piece
// family by enumerating every occupancy subset of each square's
// relevant-occupancy mask (Carry-Rippler trick) and searching for a
// multiplicative factor that hashes every subset to a collision-free
// index. Taken from Stockfish's init_magics.
func initMagics(table []Bitboard, magics *[SqNone]magic, directions *[4]Direction) {
	// Optimal PRNG seeds to find magics quickly, one per rank.
	seeds := [8]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

	var occupancy [4096]Bitboard
	var reference [4096]Bitboard
	var epoch [4096]int
	cnt := 0
	size := 0

	for sq := SqA1; sq < SqNone; sq++ {
		edges := ((Rank1Bb | Rank8Bb) &^ sq.RankOf().Bb()) | ((FileABb | FileHBb) &^ sq.FileOf().Bb())

		m := &magics[sq]
		m.mask = slidingAttack(directions, sq, BbZero) &^ edges
		m.shift = uint(64 - m.mask.PopCount())

		if sq == SqA1 {
			m.attacks = table
		} else {
			m.attacks = magics[sq-1].attacks[size:]
		}

		b := BbZero
		size = 0
		for {
			occupancy[size] = b
			reference[size] = slidingAttack(directions, sq, b)
			size++
			b = (b - m.mask) & m.mask
			if b == 0 {
				break
			}
		}

		rng := newPrnG(seeds[sq.RankOf()])
		for i := 0; i < size; {
			for m.factor = 0; ; {
				m.factor = Bitboard(rng.sparseRand())
				if ((m.factor * m.mask) >> 56).PopCount() >= 6 {
					break
				}
			}

			cnt++
			for i = 0; i < size; i++ {
				idx := m.index(occupancy[i])
				if epoch[idx] < cnt {
					epoch[idx] = cnt
					m.attacks[idx] = reference[i]
				} else if m.attacks[idx] != reference[i] {
					break
				}
			}
		}
	}
}

// slidingAttack walks each of the four directions one step at a time
// from sq until it runs off the board or hits an occupied square;
// used only to build the magic tables at startup, never during search.
func slidingAttack(directions *[4]Direction, sq Square, occupied Bitboard) Bitboard {
	attack := BbZero
	for _, d := range directions {
		s := sq
		for {
			next := s.To(d)
			if next == SqNone {
				break
			}
			s = next
			attack = PushSquare(attack, s)
			if occupied.Has(s) {
				break
			}
		}
	}
	return attack
}

// prnG is the xorshift64* pseudo-random generator used to search for
// magic factors, after Sebastiano Vigna's public-domain design.
type prnG struct {
	s uint64
}

func newPrnG(seed uint64) *prnG {
	return &prnG{s: seed}
}

func (r *prnG) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// sparseRand returns a candidate magic factor with roughly 1/8th of
// its bits set, which empirically finds valid magics much faster than
// a uniformly random 64-bit value.
func (r *prnG) sparseRand() uint64 {
	return r.rand64() & r.rand64() & r.rand64()
}
