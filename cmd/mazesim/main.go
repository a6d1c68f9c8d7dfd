package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"chosenoffset.com/mazesim/internal/config"
	"chosenoffset.com/mazesim/internal/logger"
	ebitenrender "chosenoffset.com/mazesim/internal/render/ebiten"
	"chosenoffset.com/mazesim/internal/sim"
	"chosenoffset.com/mazesim/internal/world/maze"
	"chosenoffset.com/mazesim/internal/world/mazegen"
)

func main() {
	configPath := flag.String("config", "mazesim.yaml", "path to the YAML config file")
	printConfig := flag.Bool("print-config", false, "print the effective config as YAML and exit")
	seed := flag.Int64("seed", 0, "maze seed, overrides the config (0 = keep config)")
	rotate := flag.Bool("rotate", false, "rotate the zoomed map with the agent")
	flag.Parse()

	logger.Init()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to load config")
	}
	if *seed != 0 {
		cfg.Maze.Seed = *seed
	}
	if *rotate {
		cfg.Zoomed.RotateWithAgent = true
	}

	if *printConfig {
		out, err := cfg.Marshal()
		if err != nil {
			logger.Log.WithError(err).Fatal("failed to print config")
		}
		os.Stdout.Write(out)
		return
	}

	if cfg.Maze.Seed == 0 {
		cfg.Maze.Seed = time.Now().UnixNano()
	}

	// The grid is owned here; the topology and everything downstream only view it.
	grid := maze.NewGrid(cfg.Maze.Width, cfg.Maze.Height)
	topology := maze.NewTopology(grid, rand.New(rand.NewSource(cfg.Maze.Seed)), maze.LogReporter{})
	if err := mazegen.Generate(topology, cfg.Generate); err != nil {
		logger.Log.WithError(err).Fatal("failed to generate maze")
	}
	logger.Log.WithFields(logrus.Fields{
		"width":  topology.Width(),
		"height": topology.Height(),
		"seed":   cfg.Maze.Seed,
	}).Info("maze ready")

	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	session := sim.NewSession(cfg, topology, renderer, inputMgr)

	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(true)

	logger.Log.Info("starting simulator")
	if err := engine.RunGame(session); err != nil {
		logger.Log.WithError(err).Fatal("simulator stopped")
	}
}
