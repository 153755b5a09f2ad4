package main

import "pursuit/game"

// pursuitDemo is a 9x5 maze with two ghosts and food on every other column.
func pursuitDemo() *game.PursuitState {
	walls := []game.Position{{X: 2, Y: 1}, {X: 2, Y: 3}, {X: 6, Y: 1}, {X: 6, Y: 3}, {X: 4, Y: 2}}
	maze := game.NewMaze(9, 5, walls...)

	pacman := game.Position{X: 0, Y: 0}
	ghosts := []game.Position{{X: 8, Y: 4}, {X: 8, Y: 0}}
	capsules := []game.Position{{X: 0, Y: 4}, {X: 8, Y: 2}}

	var food []game.Position
	for _, p := range maze.OpenCells() {
		if p.X%2 == 0 && p != pacman && p != ghosts[0] && p != ghosts[1] && p != capsules[0] && p != capsules[1] {
			food = append(food, p)
		}
	}
	return game.NewPursuitState(maze, pacman, ghosts, food, capsules)
}

// captureDemo is a 12x5 point symmetric maze with two agents per team.
func captureDemo() *game.CaptureState {
	const width, height = 12, 5
	mirror := func(p game.Position) game.Position {
		return game.Position{X: width - 1 - p.X, Y: height - 1 - p.Y}
	}

	redWalls := []game.Position{{X: 2, Y: 1}, {X: 2, Y: 3}, {X: 5, Y: 2}}
	redFood := []game.Position{}
	for _, x := range []int{1, 3, 4} {
		for _, y := range []int{0, 2, 4} {
			redFood = append(redFood, game.Position{X: x, Y: y})
		}
	}
	redCapsule := game.Position{X: 0, Y: 2}

	walls, food := []game.Position{}, []game.Position{}
	for _, w := range redWalls {
		walls = append(walls, w, mirror(w))
	}
	for _, f := range redFood {
		food = append(food, f, mirror(f))
	}
	capsules := []game.Position{redCapsule, mirror(redCapsule)}

	// Even agents are red
	starts := []game.Position{{X: 0, Y: 1}, {X: 11, Y: 3}, {X: 0, Y: 3}, {X: 11, Y: 1}}
	maze := game.NewMaze(width, height, walls...)
	return game.NewCaptureState(maze, nil, starts, food, capsules)
}
