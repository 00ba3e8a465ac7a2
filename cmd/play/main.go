// Command play runs a local match between strategies and prints the
// board and the final standings.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"squink-splash/internal/driver"
	"squink-splash/internal/game"
	"squink-splash/internal/strategy"
)

func main() {
	width := flag.Int("width", 8, "board width")
	height := flag.Int("height", 8, "board height")
	rounds := flag.Int("rounds", 20, "number of rounds")
	buyIn := flag.Int64("buyin", 10, "buy-in per player")
	seed := flag.Int64("seed", time.Now().UnixNano(), "seed for the random strategy")
	strategies := flag.String("strategies", "random,corner", "comma-separated strategies (base, random, corner or lua:<path>)")
	tick := flag.Duration("tick", 250*time.Millisecond, "round clock interval")
	flag.Parse()

	g, err := game.New(game.Settings{
		Width:         *width,
		Height:        *height,
		BuyIn:         *buyIn,
		FormingRounds: 0,
		Rounds:        *rounds,
	})
	if err != nil {
		log.Fatal(err)
	}

	names := strings.Split(*strategies, ",")
	strats := make([]strategy.Strategy, 0, len(names))
	ids := make([]string, 0, len(names))
	for i, raw := range names {
		raw = strings.TrimSpace(raw)
		st, err := buildStrategy(raw, *seed+int64(i))
		if err != nil {
			log.Fatal(err)
		}
		if closer, ok := st.(interface{ Close() }); ok {
			defer closer.Close()
		}
		id := fmt.Sprintf("p%d", i+1)
		name := fmt.Sprintf("%s-%d", st.Name(), i+1)
		if err := g.RegisterPlayer(id, name, *buyIn); err != nil {
			log.Fatal(err)
		}
		strats = append(strats, st)
		ids = append(ids, id)
	}

	if err := g.StartGame(); err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The round clock runs beside the drivers and forces stalled
	// rounds shut.
	go func() {
		t := time.NewTicker(*tick)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				if phase, _ := g.Tick(); phase == game.Finished {
					return
				}
			}
		}
	}()

	var wg sync.WaitGroup
	for i := range strats {
		wg.Add(1)
		go func(st strategy.Strategy, id string) {
			defer wg.Done()
			if err := driver.New(g, st, id).Run(ctx); err != nil {
				log.Printf("driver %s: %v", id, err)
			}
		}(strats[i], ids[i])
	}
	wg.Wait()

	printBoard(g.Snapshot(), ids)
	js, _ := json.MarshalIndent(g.Results(), "", "  ")
	fmt.Println(string(js))
}

func buildStrategy(name string, seed int64) (strategy.Strategy, error) {
	if path, ok := strings.CutPrefix(name, "lua:"); ok {
		return strategy.NewLuaFile("lua", path)
	}
	return strategy.New(name, seed)
}

func printBoard(s *game.Snapshot, ids []string) {
	mark := map[string]byte{}
	for i, id := range ids {
		mark[id] = byte('A' + i%26)
	}
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			cell := s.Cells[y][x]
			if cell.Owner == "" {
				fmt.Print(". ")
			} else {
				fmt.Printf("%c ", mark[cell.Owner])
			}
		}
		fmt.Println()
	}
}
