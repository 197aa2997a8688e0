// Package data is the static catalogue of the game: teams, factions, game
// modes, roles, maps, and layers. The catalogues are constant tables built at
// startup and exposed behind id lookups; the id strings are wire-verbatim and
// shared with the server.
package data

import "fmt"

// indexByID builds a lookup table over a catalogue. Duplicate ids are a
// defect in the tables and panic at startup.
func indexByID[K comparable, V any](items []V, id func(V) K) map[K]V {
	m := make(map[K]V, len(items))
	for _, item := range items {
		key := id(item)
		if _, exists := m[key]; exists {
			panic(fmt.Sprintf("duplicate catalogue id %v", key))
		}
		m[key] = item
	}
	return m
}
