package tetris

import (
	"fmt"
	"math/rand"
)

// Randomizer names accepted by NewPicker.
const (
	RandomizerUniform = "uniform"
	RandomizerBag     = "bag"
)

// Picker chooses the kind of the next piece.
type Picker interface {
	Pick() Kind
}

// UniformPicker draws each piece independently and uniformly; repeats are allowed.
type UniformPicker struct {
	rng *rand.Rand
}

// NewUniformPicker creates a uniform picker seeded for reproducible sequences.
func NewUniformPicker(seed int64) *UniformPicker {
	return &UniformPicker{rng: rand.New(rand.NewSource(seed))}
}

// Pick returns one of the seven kinds.
func (p *UniformPicker) Pick() Kind {
	return Kinds[p.rng.Intn(len(Kinds))]
}

// BagPicker deals all seven kinds in a shuffled order before reshuffling,
// so no kind is absent for more than twelve consecutive picks.
type BagPicker struct {
	rng *rand.Rand
	bag []Kind
}

// NewBagPicker creates a 7-bag picker.
func NewBagPicker(seed int64) *BagPicker {
	return &BagPicker{rng: rand.New(rand.NewSource(seed))}
}

// Pick returns the next kind from the current bag, refilling it when empty.
func (p *BagPicker) Pick() Kind {
	if len(p.bag) == 0 {
		p.bag = append(p.bag[:0], Kinds[:]...)
		p.rng.Shuffle(len(p.bag), func(i, j int) {
			p.bag[i], p.bag[j] = p.bag[j], p.bag[i]
		})
	}
	k := p.bag[0]
	p.bag = p.bag[1:]
	return k
}

// NewPicker returns the picker registered under name. An empty name selects
// the uniform picker.
func NewPicker(name string, seed int64) (Picker, error) {
	switch name {
	case "", RandomizerUniform:
		return NewUniformPicker(seed), nil
	case RandomizerBag:
		return NewBagPicker(seed), nil
	default:
		return nil, fmt.Errorf("tetris: unknown randomizer %q", name)
	}
}
