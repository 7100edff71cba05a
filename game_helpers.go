package main

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/persim/boardlife/model"
	"github.com/persim/boardlife/utils"
)

// initializeBoard allocates the board and loads its initial state from the
// board file.
func initializeBoard(config utils.Config) (*model.Board, *model.BoardPool, error) {
	board, err := model.NewBoard(config.Size)
	if err != nil {
		return nil, nil, errors.Wrap(err, "[initializeBoard]")
	}

	if err = board.LoadFile(config.BoardPath); err != nil {
		return nil, nil, errors.Wrap(err, "[initializeBoard]")
	}

	return board, model.NewBoardPool(), nil
}

// runSimulation drives the whole run: load the board, advance it the
// requested number of generations persisting after every step, then write
// the final state once more.
func runSimulation(config utils.Config) error {
	board, pool, err := initializeBoard(config)
	if err != nil {
		return err
	}

	var (
		stats         = utils.NewStats()
		lastFrameTime = time.Now()
	)

	for generation := 1; generation <= config.Generations; generation++ {
		if err = board.Step(pool, config.Workers); err != nil {
			return errors.Wrapf(err, "[runSimulation] generation %d", generation)
		}

		if err = board.WriteFile(config.BoardPath); err != nil {
			return errors.Wrapf(err, "[runSimulation] generation %d", generation)
		}

		stats.Update(generation, board.Population(), time.Since(lastFrameTime))
		lastFrameTime = time.Now()

		// Throttle so the board file can be watched between generations.
		time.Sleep(config.Delay)
	}

	if err = board.WriteFile(config.BoardPath); err != nil {
		return errors.Wrap(err, "[runSimulation] final write")
	}

	fmt.Println(stats.Summary())
	return nil
}
