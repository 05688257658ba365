// Package pot tracks per-seat chip contributions for a hand and derives
// main/side pot slices from them at settlement.
package pot

// Ledger is the per-seat, insertion-ordered record of total chips
// committed to the pot this hand. Contributions are non-negative and
// monotonically nondecreasing per seat through the hand.
type Ledger struct {
	order         []int
	contributions map[int]int
}

// NewLedger returns an empty ledger that will record contributions in the
// order seats first contribute.
func NewLedger() *Ledger {
	return &Ledger{contributions: make(map[int]int)}
}

// Add records an additional contribution from seatID. amount must be >= 0.
func (l *Ledger) Add(seatID, amount int) {
	if amount < 0 {
		panic("pot: negative contribution")
	}
	if _, ok := l.contributions[seatID]; !ok {
		l.order = append(l.order, seatID)
	}
	l.contributions[seatID] += amount
}

// Contribution returns seatID's total contribution this hand.
func (l *Ledger) Contribution(seatID int) int {
	return l.contributions[seatID]
}

// Total returns the sum of all contributions in the ledger.
func (l *Ledger) Total() int {
	total := 0
	for _, v := range l.contributions {
		total += v
	}
	return total
}

// Reset clears the ledger for a new hand.
func (l *Ledger) Reset() {
	l.order = nil
	l.contributions = make(map[int]int)
}

// Slice is a disjoint partition of the pot: an amount and the set of seats
// eligible to win it.
type Slice struct {
	Amount   int
	Eligible []int
}

// Slices partitions the ledger into main/side pot slices by distinct
// contribution level. folded reports whether a seat has folded (folded
// seats never appear in an Eligible set, but their dead money is still
// accounted for and, if it would otherwise leave a slice with no eligible
// winner, merged into the nearest slice that has one; see mergeDeadMoney).
//
// seatOrder fixes deterministic traversal order (the caller's fixed seat
// order), since map iteration order is not acceptable for reproducibility.
func (l *Ledger) Slices(seatOrder []int, folded map[int]bool) []Slice {
	levelSet := make(map[int]bool)
	for _, seatID := range seatOrder {
		if c := l.contributions[seatID]; c > 0 {
			levelSet[c] = true
		}
	}
	levels := sortedLevels(levelSet)

	var slices []Slice
	prev := 0
	for _, level := range levels {
		width := level - prev
		s := Slice{}
		for _, seatID := range seatOrder {
			c := l.contributions[seatID]
			switch {
			case c >= level:
				s.Amount += width
				if !folded[seatID] {
					s.Eligible = append(s.Eligible, seatID)
				}
			case c > prev:
				s.Amount += c - prev
				if !folded[seatID] {
					s.Eligible = append(s.Eligible, seatID)
				}
			}
		}
		if s.Amount > 0 {
			slices = append(slices, s)
		}
		prev = level
	}

	return mergeDeadMoney(slices)
}

// mergeDeadMoney folds any slice with no eligible winner (pure dead money
// from folded contributors) into the next higher slice that has one, or,
// if none does, into the nearest lower slice that has one, so no chips are
// stranded while any slice has an eligible winner.
func mergeDeadMoney(slices []Slice) []Slice {
	for i := 0; i < len(slices); i++ {
		if len(slices[i].Eligible) > 0 {
			continue
		}
		amount := slices[i].Amount
		slices = append(slices[:i], slices[i+1:]...)
		merged := false
		for j := i; j < len(slices); j++ {
			if len(slices[j].Eligible) > 0 {
				slices[j].Amount += amount
				merged = true
				break
			}
		}
		if !merged {
			for j := i - 1; j >= 0; j-- {
				if len(slices[j].Eligible) > 0 {
					slices[j].Amount += amount
					merged = true
					break
				}
			}
		}
		_ = merged
		i--
	}
	return slices
}

func sortedLevels(set map[int]bool) []int {
	levels := make([]int, 0, len(set))
	for l := range set {
		levels = append(levels, l)
	}
	// Insertion sort: the level count is small (bounded by distinct
	// all-in/bet sizes this hand), so this stays simple and allocation-free.
	for i := 1; i < len(levels); i++ {
		v := levels[i]
		j := i - 1
		for j >= 0 && levels[j] > v {
			levels[j+1] = levels[j]
			j--
		}
		levels[j+1] = v
	}
	return levels
}
