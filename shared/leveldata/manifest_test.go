package leveldata

import (
	"errors"
	"strings"
	"testing"
)

const twoMaps = `{
  "maps": {
    "firstMap": {
      "width": 1600, "height": 1600,
      "paths": ["firstMap/firstMap.tmx"],
      "exits": {
        "south": {
          "location": [[18,49],[19,49],[20,49],[21,49]],
          "spawnLocation": [[18,48],[19,48],[20,48],[21,48]],
          "destination": "secondMap",
          "destinationSpawn": "north"
        }
      }
    },
    "secondMap": {
      "paths": ["secondMap/secondMap.tmx"],
      "exits": {
        "north": {
          "location": [[10,0],[11,0],[12,0],[13,0]],
          "spawnLocation": [[10,1],[11,1],[12,1],[13,1]],
          "destination": "firstMap",
          "destinationSpawn": "south"
        }
      }
    }
  }
}`

func TestParseManifest(t *testing.T) {
	m, err := ParseManifest([]byte(twoMaps))
	if err != nil {
		t.Fatal(err)
	}
	if got := m.Names(); len(got) != 2 || got[0] != "firstMap" || got[1] != "secondMap" {
		t.Fatalf("names = %v", got)
	}
	first, err := m.Map("firstMap")
	if err != nil {
		t.Fatal(err)
	}
	if first.Name != "firstMap" {
		t.Errorf("map name not filled in: %q", first.Name)
	}
	exits := first.TileExits()
	south := exits["south"]
	if south == nil || len(south.Locations) != 4 || south.Locations[1].X != 19 || south.Locations[1].Y != 49 {
		t.Fatalf("south exit not converted: %+v", south)
	}

	second, _ := m.Map("secondMap")
	p, err := second.SpawnPoint("north", 1)
	if err != nil {
		t.Fatal(err)
	}
	if p.X != 11 || p.Y != 1 {
		t.Errorf("north spawn[1] = %v, want (11,1)", p)
	}
	if _, err := second.SpawnPoint("north", 4); !errors.Is(err, ErrConfig) {
		t.Errorf("out of range spawn index: err = %v", err)
	}
	if _, err := m.Map("thirdMap"); !errors.Is(err, ErrConfig) {
		t.Errorf("unknown map: err = %v", err)
	}
}

func TestManifestValidation(t *testing.T) {
	cases := []struct {
		name    string
		replace [2]string
		wantMsg string
	}{
		{
			name:    "unknown destination",
			replace: [2]string{`"destination": "secondMap"`, `"destination": "nowhere"`},
			wantMsg: "unknown map",
		},
		{
			name:    "unknown spawn exit",
			replace: [2]string{`"destinationSpawn": "north"`, `"destinationSpawn": "west"`},
			wantMsg: "unknown exit",
		},
		{
			name:    "mismatched lengths",
			replace: [2]string{`"spawnLocation": [[18,48],[19,48],[20,48],[21,48]]`, `"spawnLocation": [[18,48]]`},
			wantMsg: "spawn locations",
		},
		{
			name:    "empty locations",
			replace: [2]string{`"location": [[10,0],[11,0],[12,0],[13,0]]`, `"location": []`},
			wantMsg: "no locations",
		},
		{
			name:    "missing paths",
			replace: [2]string{`"paths": ["secondMap/secondMap.tmx"],`, ``},
			wantMsg: "no asset paths",
		},
		{
			name:    "bad json",
			replace: [2]string{`"maps": {`, `"maps": [`},
			wantMsg: "decode manifest",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			raw := strings.Replace(twoMaps, c.replace[0], c.replace[1], 1)
			if raw == twoMaps {
				t.Fatalf("fixture replacement %q did not apply", c.replace[0])
			}
			_, err := ParseManifest([]byte(raw))
			if !errors.Is(err, ErrConfig) {
				t.Fatalf("err = %v, want ErrConfig", err)
			}
			if !strings.Contains(err.Error(), c.wantMsg) {
				t.Errorf("err = %q, want it to mention %q", err, c.wantMsg)
			}
		})
	}
}

func TestManifestRejectsSharedExitTiles(t *testing.T) {
	raw := `{"maps": {"a": {"paths": ["a.json"], "exits": {
		"one": {"location": [[1,1]], "spawnLocation": [[1,2]]},
		"two": {"location": [[1,1]], "spawnLocation": [[2,2]]}
	}}}}`
	if _, err := ParseManifest([]byte(raw)); !errors.Is(err, ErrConfig) {
		t.Fatalf("err = %v, want ErrConfig for overlapping exits", err)
	}
}

func TestManifestRejectsShortDestinationSpawnList(t *testing.T) {
	raw := `{"maps": {
		"a": {"paths": ["a.json"], "exits": {"out": {"location": [[1,1],[2,1]], "spawnLocation": [[1,2],[2,2]], "destination": "b", "destinationSpawn": "in"}}},
		"b": {"paths": ["b.json"], "exits": {"in": {"location": [[5,5]], "spawnLocation": [[5,6]]}}}
	}}`
	if _, err := ParseManifest([]byte(raw)); !errors.Is(err, ErrConfig) {
		t.Fatalf("err = %v, want ErrConfig", err)
	}
}
