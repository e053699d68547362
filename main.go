package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/echoknight/common"
	"github.com/milk9111/echoknight/levels"
	"github.com/milk9111/echoknight/prefabs"
	"github.com/milk9111/echoknight/progress"
	"github.com/milk9111/echoknight/session"
)

func main() {
	level := flag.Int("level", 1, "level to start from when pressing Play (1-based, clamped to unlocked)")
	progressPath := flag.String("progress", "progress.json", "progress file; empty keeps progress in memory")
	seed := flag.Int64("seed", 0, "random seed (0 = time based)")
	debug := flag.Bool("debug", false, "draw collision boxes and tick rate")
	watch := flag.Bool("watch", false, "reload prefabs/ tuning and scripts when they change on disk")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		log.Fatal(err)
	}
	campaign, err := levels.LoadCampaign()
	if err != nil {
		log.Fatal(err)
	}

	store := progress.Open(*progressPath)
	sess, err := session.New(spec, campaign, store, common.NewRand(*seed))
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := sess.Close(); err != nil {
			log.Printf("progress: %v", err)
		}
	}()

	var watcher *prefabs.Watcher
	if *watch {
		if watcher, err = prefabs.NewWatcher(prefabs.Dir, prefabs.Dir+"/scripts"); err != nil {
			log.Printf("watch: %v; hot reload disabled", err)
			watcher = nil
		} else {
			defer watcher.Close()
		}
	}

	start := common.ClampInt(*level-1, 0, sess.Unlocked())

	ebiten.SetWindowSize(int(spec.Playfield.Width), int(spec.Playfield.Height))
	ebiten.SetWindowTitle("Echo Knight")
	ebiten.SetTPS(spec.TickRate)

	game := NewGame(sess, NewSounds(*mute), watcher, start, *debug)
	if err := ebiten.RunGame(game); err != nil {
		log.Printf("game: %v", err)
	}
}
