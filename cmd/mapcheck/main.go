// Command mapcheck validates a world's manifest and map files without
// starting the game.
package main

import (
	"context"
	"flag"
	"io/fs"
	"log"
	"os"

	"github.com/automoto/overworld/assets/maps"
	"github.com/automoto/overworld/shared/leveldata"
)

func main() {
	dir := flag.String("dir", "", "map directory holding manifest.json (empty = embedded maps)")
	strict := flag.Bool("strict", false, "exit non-zero on warnings")
	flag.Parse()

	var fsys fs.FS = maps.FS()
	if *dir != "" {
		fsys = os.DirFS(*dir)
	}

	manifest, err := leveldata.LoadManifest(fsys, maps.ManifestPath)
	if err != nil {
		log.Fatalf("Manifest error: %v", err)
	}

	report, err := Check(context.Background(), fsys, manifest)
	if err != nil {
		log.Fatalf("Check failed: %v", err)
	}
	for _, w := range report.Warnings {
		log.Printf("Warning: %s", w)
	}
	log.Printf("Checked %d maps, %d exits, %d warnings", report.Maps, report.Exits, len(report.Warnings))

	if *strict && len(report.Warnings) > 0 {
		os.Exit(1)
	}
}
