package tilemap

import "sort"

// Exit is a set of trigger tiles leading to a spawn exit on another map.
// SpawnLocations is parallel to Locations: index i on the source side picks
// SpawnLocations[i] of the destination exit.
type Exit struct {
	Name             string
	Locations        []Point
	SpawnLocations   []Point
	Destination      string
	DestinationSpawn string
}

// IndexOf returns the index of p in Locations, or -1.
func (e *Exit) IndexOf(p Point) int {
	for i, l := range e.Locations {
		if l == p {
			return i
		}
	}
	return -1
}

// ExitMatch is a matched exit and the index of the matched location.
type ExitMatch struct {
	Exit  *Exit
	Index int
}

// Exits is the exit table of one map keyed by exit name.
type Exits map[string]*Exit

// Names returns the exit names in sorted order.
func (es Exits) Names() []string {
	names := make([]string, 0, len(es))
	for n := range es {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Match finds the exit registering tile p. Exits are visited in name order so
// the result does not depend on map iteration.
func Match(p Point, exits Exits) (ExitMatch, bool) {
	for _, name := range exits.Names() {
		e := exits[name]
		if i := e.IndexOf(p); i >= 0 {
			return ExitMatch{Exit: e, Index: i}, true
		}
	}
	return ExitMatch{}, false
}
