package game

import (
	"fmt"
	"strings"
)

// Resource is one of the five producible resource kinds.
type Resource int

const (
	Wood Resource = iota
	Brick
	Wheat
	Rock
	Sheep
)

// NumResources is the size of the closed resource set.
const NumResources = 5

// Desert marks a tile that never produces. It is not a Resource a ledger can hold.
const Desert Resource = -1

var resourceNames = [NumResources]string{"Wood", "Brick", "Wheat", "Rock", "Sheep"}

func (r Resource) String() string {
	if r == Desert {
		return "Desert"
	}
	if !r.Valid() {
		return fmt.Sprintf("Resource(%d)", int(r))
	}
	return resourceNames[r]
}

// Valid reports whether r is one of the five ledger resources.
func (r Resource) Valid() bool {
	return r >= Wood && r <= Sheep
}

// ParseResource maps a case-insensitive name to a Resource.
func ParseResource(name string) (Resource, error) {
	for i, n := range resourceNames {
		if strings.EqualFold(n, name) {
			return Resource(i), nil
		}
	}
	if strings.EqualFold(name, "Desert") {
		return Desert, nil
	}
	return 0, fmt.Errorf("unknown resource %q", name)
}

// Amounts is a bank statement: a count per resource kind. It is a value type,
// so every copy is independent.
type Amounts [NumResources]int

// Of returns an Amounts holding n units of r.
func Of(r Resource, n int) Amounts {
	var a Amounts
	a[r] = n
	return a
}

func (a Amounts) Total() int {
	total := 0
	for _, n := range a {
		total += n
	}
	return total
}

func (a Amounts) Add(b Amounts) Amounts {
	for i := range a {
		a[i] += b[i]
	}
	return a
}

// Covers reports whether a holds at least b of every resource.
func (a Amounts) Covers(b Amounts) bool {
	for i := range a {
		if a[i] < b[i] {
			return false
		}
	}
	return true
}

// NonNegative reports whether no entry is negative.
func (a Amounts) NonNegative() bool {
	for _, n := range a {
		if n < 0 {
			return false
		}
	}
	return true
}

func (a Amounts) IsZero() bool {
	return a == Amounts{}
}

func (a Amounts) String() string {
	parts := make([]string, 0, NumResources)
	for i, n := range a {
		if n != 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", resourceNames[i], n))
		}
	}
	return "{" + strings.Join(parts, " ") + "}"
}

// Purchase names something a player can buy.
type Purchase int

const (
	RoadPurchase Purchase = iota
	SettlementPurchase
	CityPurchase
	CardPurchase
)

// StandardCosts is the price list of the base game.
var StandardCosts = map[Purchase]Amounts{
	RoadPurchase:       {Wood: 1, Brick: 1},
	SettlementPurchase: {Wood: 1, Brick: 1, Wheat: 1, Sheep: 1},
	CityPurchase:       {Wheat: 2, Rock: 3},
	CardPurchase:       {Wheat: 1, Rock: 1, Sheep: 1},
}
