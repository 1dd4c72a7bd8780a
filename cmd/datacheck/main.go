// Command datacheck validates the effect and trail data files without
// starting the game: it parses both documents, flags degenerate
// records, duplicate names and missing sprite images, and exits
// non-zero when anything is wrong.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/wrenkin/starfx/internal/spfxdata"
)

func main() {
	dataDir := flag.String("data", "data", "directory with effect and trail data files")
	flag.Parse()

	problems := 0
	problems += checkEffects(*dataDir)
	problems += checkTrails(*dataDir)

	if problems > 0 {
		fmt.Printf("datacheck: %d problem(s) found\n", problems)
		os.Exit(1)
	}
	fmt.Println("datacheck: all data files ok")
}

// checkEffects reports degenerate effect records and unresolvable
// sprite references.
func checkEffects(dataDir string) int {
	path := filepath.Join(dataDir, "effects.yaml")
	f, err := os.Open(path)
	if err != nil {
		fmt.Printf("%s: %v\n", path, err)
		return 1
	}
	defer f.Close()

	doc, err := spfxdata.ParseEffects(f)
	if err != nil {
		fmt.Printf("%s: %v\n", path, err)
		return 1
	}

	problems := 0
	seen := make(map[string]bool)
	for _, def := range doc.Effects {
		if def.Name == "" {
			fmt.Printf("%s: effect with empty name\n", path)
			problems++
			continue
		}
		if seen[def.Name] {
			fmt.Printf("%s: duplicate effect name '%s'\n", path, def.Name)
			problems++
		}
		seen[def.Name] = true

		if def.AnimMs <= 0 {
			fmt.Printf("%s: effect '%s' has missing/invalid 'anim'\n", path, def.Name)
			problems++
		}
		switch {
		case def.Sprite == nil:
			fmt.Printf("%s: effect '%s' has no 'gfx' element\n", path, def.Name)
			problems++
		case def.Sprite.SX <= 0 || def.Sprite.SY <= 0:
			fmt.Printf("%s: effect '%s' has invalid sprite grid %dx%d\n",
				path, def.Name, def.Sprite.SX, def.Sprite.SY)
			problems++
		default:
			imgPath := filepath.Join(dataDir, def.Sprite.Image)
			if _, err := os.Stat(imgPath); err != nil {
				fmt.Printf("%s: effect '%s' sprite image missing: %s\n", path, def.Name, imgPath)
				problems++
			}
		}
	}
	return problems
}

// checkTrails reports empty ids, duplicates and fully transparent
// colour sets (all four states zero is almost certainly a data error).
func checkTrails(dataDir string) int {
	path := filepath.Join(dataDir, "trails.yaml")
	f, err := os.Open(path)
	if err != nil {
		fmt.Printf("%s: %v\n", path, err)
		return 1
	}
	defer f.Close()

	doc, err := spfxdata.ParseTrails(f)
	if err != nil {
		fmt.Printf("%s: %v\n", path, err)
		return 1
	}

	problems := 0
	seen := make(map[string]bool)
	for _, def := range doc.Trails {
		if def.ID == "" {
			fmt.Printf("%s: trail set with empty id\n", path)
			problems++
			continue
		}
		if seen[def.ID] {
			fmt.Printf("%s: duplicate trail id '%s'\n", path, def.ID)
			problems++
		}
		seen[def.ID] = true

		zero := spfxdata.RGBA{}
		if def.Idle == zero && def.Glow == zero && def.Afterburn == zero && def.Jumping == zero {
			fmt.Printf("%s: trail set '%s' has no colours at all\n", path, def.ID)
			problems++
		}
	}
	return problems
}
