package pokemon

import (
	"errors"
	"fmt"
)

// Kind identifies one of the four data substructures.
type Kind uint8

const (
	KindGrowth Kind = iota
	KindAttacks
	KindCondition
	KindMisc
)

func (k Kind) String() string {
	switch k {
	case KindGrowth:
		return "growth"
	case KindAttacks:
		return "attacks"
	case KindCondition:
		return "condition"
	case KindMisc:
		return "misc"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// OrderCount is the number of possible substructure orderings (4!).
const OrderCount = 24

// ErrInvalidOrder is returned by PermutationFor for an order outside [0, OrderCount).
var ErrInvalidOrder = errors.New("order out of range")

// permutations is the slot assignment of the Generation III data block,
// indexed by personality % 24. Fixed by the save format.
var permutations = func() [OrderCount][4]Kind {
	const (
		g = KindGrowth
		a = KindAttacks
		c = KindCondition
		m = KindMisc
	)
	return [OrderCount][4]Kind{
		{g, a, c, m}, {g, a, m, c}, {g, c, a, m}, {g, c, m, a}, {g, m, a, c}, {g, m, c, a},
		{a, g, c, m}, {a, g, m, c}, {a, c, g, m}, {a, c, m, g}, {a, m, g, c}, {a, m, c, g},
		{c, g, a, m}, {c, g, m, a}, {c, a, g, m}, {c, a, m, g}, {c, m, g, a}, {c, m, a, g},
		{m, g, a, c}, {m, g, c, a}, {m, a, g, c}, {m, a, c, g}, {m, c, g, a}, {m, c, a, g},
	}
}()

// slots is the inverse of permutations: slots[order][kind] is the slot holding kind.
var slots = func() (inv [OrderCount][4]int) {
	for order, row := range permutations {
		for slot, kind := range row {
			inv[order][kind] = slot
		}
	}
	return inv
}()

// Order selects one of the 24 substructure layouts. Always < OrderCount
// when obtained from OrderOf; larger values wrap modulo OrderCount in
// Kinds and SlotOf, the same reduction OrderOf applies to a personality.
type Order uint8

// OrderOf returns personality % 24.
func OrderOf(personality uint32) Order {
	return Order(personality % OrderCount)
}

// Kinds returns the kind stored in each of the four slots.
func (o Order) Kinds() [4]Kind {
	return permutations[o%OrderCount]
}

// String returns the layout as initials, e.g. "GAMC" for order 1.
func (o Order) String() string {
	if int(o) >= OrderCount {
		return fmt.Sprintf("order(%d)", uint8(o))
	}
	var b [4]byte
	for i, k := range o.Kinds() {
		b[i] = "GACM"[k]
	}
	return string(b[:])
}

// SlotOf returns the slot (0-3) that holds kind k.
func (o Order) SlotOf(k Kind) int {
	return slots[o%OrderCount][k]
}

// PermutationFor returns the slot assignment for order.
func PermutationFor(order int) ([4]Kind, error) {
	if order < 0 || order >= OrderCount {
		return [4]Kind{}, fmt.Errorf("permutation for %d: %w", order, ErrInvalidOrder)
	}
	return permutations[order], nil
}
