package tilemap

import "testing"

func TestMatchSouthExit(t *testing.T) {
	exits := Exits{
		"south": {
			Name:             "south",
			Locations:        []Point{{18, 49}, {19, 49}, {20, 49}, {21, 49}},
			SpawnLocations:   []Point{{18, 48}, {19, 48}, {20, 48}, {21, 48}},
			Destination:      "secondMap",
			DestinationSpawn: "north",
		},
		"east": {
			Name:        "east",
			Locations:   []Point{{49, 10}},
			Destination: "thirdMap",
		},
	}

	m, ok := Match(Point{19, 49}, exits)
	if !ok {
		t.Fatal("expected (19,49) to match the south exit")
	}
	if m.Exit.Name != "south" || m.Index != 1 {
		t.Errorf("got exit %q index %d, want south index 1", m.Exit.Name, m.Index)
	}

	if _, ok := Match(Point{19, 48}, exits); ok {
		t.Error("(19,48) is not an exit location")
	}
	if _, ok := Match(Point{49, 10}, exits); !ok {
		t.Error("(49,10) should match the east exit")
	}
}

func TestMatchNoExits(t *testing.T) {
	if _, ok := Match(Point{0, 0}, nil); ok {
		t.Error("nil exit table cannot match")
	}
}

func TestMatchIsDeterministic(t *testing.T) {
	shared := Point{3, 3}
	exits := Exits{
		"b": {Name: "b", Locations: []Point{shared}},
		"a": {Name: "a", Locations: []Point{{1, 1}, shared}},
	}
	for i := 0; i < 20; i++ {
		m, ok := Match(shared, exits)
		if !ok || m.Exit.Name != "a" || m.Index != 1 {
			t.Fatalf("run %d: got %+v, want exit a index 1", i, m)
		}
	}
}
