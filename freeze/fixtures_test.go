package freeze_test

import (
	"fmt"
	"hash/fnv"
	"sort"
)

// Person is the canonical hashable fixture: hash covers every field.
type Person struct {
	Name string
	Age  int
}

func (p Person) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%d", p.Name, p.Age)

	return h.Sum64()
}

// Profile hashes Name and Age only; Description stays outside the hash,
// which makes it a natural candidate for selective protection.
type Profile struct {
	Name        string
	Age         int
	Description string
}

func (p Profile) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%d", p.Name, p.Age)

	return h.Sum64()
}

// Employee has no hash of its own; it promotes Person's.
type Employee struct {
	Person
	Dept string
}

type Inventory map[string]int

func (inv Inventory) Hash() uint64 {
	keys := make([]string, 0, len(inv))
	for k := range inv {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	h := fnv.New64a()
	for _, k := range keys {
		fmt.Fprintf(h, "%s=%d|", k, inv[k])
	}

	return h.Sum64()
}

type Playlist []string

func (p Playlist) Hash() uint64 {
	h := fnv.New64a()
	for _, track := range p {
		fmt.Fprintf(h, "%s|", track)
	}

	return h.Sum64()
}

type Counter int

func (c Counter) Hash() uint64 { return uint64(c) }

// unhashable has no Hash method at all.
type unhashable struct {
	X int
}
