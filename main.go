package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"blockade/internal/config"
	"blockade/internal/game"
)

func main() {
	cfg := config.Load()
	reader := bufio.NewReader(os.Stdin)

	switch chooseMode(reader) {
	case "1":
		loopPvP(reader, cfg)
	case "2":
		loopPvAI(reader, cfg, chooseBotSide(reader))
	case "3":
		loopAvA(cfg)
	}
}

func chooseMode(reader *bufio.Reader) string {
	fmt.Println("Choose a mode:")
	fmt.Println("  1) Player vs Player")
	fmt.Println("  2) Player vs Bot")
	fmt.Println("  3) Bot vs Bot")
	for {
		fmt.Print("Mode [1/2/3]: ")
		line, _ := reader.ReadString('\n')
		m := strings.TrimSpace(line)
		if m == "1" || m == "2" || m == "3" {
			return m
		}
		fmt.Println("Enter 1, 2 or 3.")
	}
}

func chooseBotSide(reader *bufio.Reader) game.Player {
	fmt.Println("Which side should the bot play?")
	fmt.Println("  1) A (moves first)")
	fmt.Println("  2) B (moves second)")
	for {
		fmt.Print("Side [1/2]: ")
		line, _ := reader.ReadString('\n')
		switch strings.TrimSpace(line) {
		case "1":
			return game.PlayerA
		case "2":
			return game.PlayerB
		}
		fmt.Println("Enter 1 or 2.")
	}
}

// askCoord reads "row col" in 1-based coordinates. ok is false when the user
// quits with q.
func askCoord(reader *bufio.Reader, prompt string, rows, cols int) (c game.Coord, ok bool) {
	for {
		fmt.Print(prompt)
		line, err := reader.ReadString('\n')
		if err != nil {
			return game.Coord{}, false
		}
		raw := strings.ToLower(strings.TrimSpace(line))
		if raw == "q" || raw == "quit" || raw == "exit" {
			return game.Coord{}, false
		}
		parts := strings.Fields(strings.ReplaceAll(raw, ",", " "))
		if len(parts) != 2 {
			fmt.Println("Enter two numbers: row col (e.g. 3 4), or q to quit.")
			continue
		}
		r, err1 := strconv.Atoi(parts[0])
		col, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil {
			fmt.Println("Use whole numbers.")
			continue
		}
		if r < 1 || r > rows || col < 1 || col > cols {
			fmt.Printf("Coordinates must be 1..%d and 1..%d.\n", rows, cols)
			continue
		}
		return game.Coord{R: r - 1, C: col - 1}, true
	}
}

func cellGlyph(c game.Cell) string {
	switch c {
	case game.TokenA:
		return "A"
	case game.TokenB:
		return "B"
	case game.Obstacle:
		return "#"
	default:
		return "."
	}
}

func printBoard(s game.State) {
	b := s.Board
	fmt.Print("\n   ")
	for c := 1; c <= b.Cols; c++ {
		fmt.Printf("%2d ", c)
	}
	fmt.Print("\n   " + strings.Repeat("---", b.Cols) + "\n")
	for r := 0; r < b.Rows; r++ {
		fmt.Printf("%2d|", r+1)
		for c := 0; c < b.Cols; c++ {
			fmt.Printf(" %s ", cellGlyph(b.Cells[r][c]))
		}
		fmt.Println()
	}
	fmt.Println()
}

// humanTurn prompts for the token step and the cell to seal, re-prompting on
// illegal input. ok is false when the user quits.
func humanTurn(reader *bufio.Reader, s game.State) (game.State, bool) {
	rows, cols := s.Board.Rows, s.Board.Cols
	for {
		dest, ok := askCoord(reader, "Token step (row col): ", rows, cols)
		if !ok {
			return s, false
		}
		legal := false
		for _, d := range game.LegalDestinations(s) {
			if d == dest {
				legal = true
				break
			}
		}
		if !legal {
			fmt.Println("Illegal step: one square, 8 directions, empty cell.")
			continue
		}

		for {
			obs, ok := askCoord(reader, "Seal a cell '#' (row col): ", rows, cols)
			if !ok {
				return s, false
			}
			ns, err := game.ApplyTurn(s, game.Turn{Dest: dest, Obstacle: obs})
			if err != nil {
				fmt.Println("Cannot seal that cell.")
				continue
			}
			return ns, true
		}
	}
}

func botTurn(s game.State, w config.Weights) game.State {
	t, err := game.ChooseTurn(s, w)
	if err != nil {
		// Callers check for a legal turn first; treat this as fatal.
		fmt.Println("bot error:", err)
		os.Exit(1)
	}
	fmt.Printf("Bot %s: step -> %d %d, seal -> %d %d\n",
		s.Mover, t.Dest.R+1, t.Dest.C+1, t.Obstacle.R+1, t.Obstacle.C+1)
	ns, _ := game.ApplyTurn(s, t)
	return ns
}

// checkTerminal resolves the start-of-turn blockage rule and announces the
// winner once the game is over.
func checkTerminal(s game.State) (game.State, bool) {
	s = game.ResolveBlocked(s)
	if s.Status != game.InProgress {
		fmt.Printf("Game over: %s\n", s.Status)
		return s, true
	}
	return s, false
}

func newGameOrDie(cfg config.Config) game.State {
	s, err := game.NewGame(cfg.BoardRows, cfg.BoardCols)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	return s
}

func loopPvP(reader *bufio.Reader, cfg config.Config) {
	s := newGameOrDie(cfg)
	fmt.Printf("=== Blockade — PvP ===\nBoard %dx%d. A starts at (1,1), B at (%d,%d). q to quit.\n",
		s.Board.Rows, s.Board.Cols, s.Board.Rows, s.Board.Cols)
	printBoard(s)

	for {
		var done bool
		if s, done = checkTerminal(s); done {
			return
		}
		fmt.Printf("Turn: player %s\n", s.Mover)
		var ok bool
		if s, ok = humanTurn(reader, s); !ok {
			fmt.Println("Game aborted.")
			return
		}
		printBoard(s)
	}
}

func loopPvAI(reader *bufio.Reader, cfg config.Config, botSide game.Player) {
	s := newGameOrDie(cfg)
	fmt.Printf("=== Blockade — PvAI ===\nBot plays %s. Board %dx%d. q to quit.\n",
		botSide, s.Board.Rows, s.Board.Cols)
	printBoard(s)

	for {
		var done bool
		if s, done = checkTerminal(s); done {
			return
		}
		if s.Mover == botSide {
			s = botTurn(s, cfg.Weights)
		} else {
			fmt.Printf("Your turn (%s)\n", s.Mover)
			var ok bool
			if s, ok = humanTurn(reader, s); !ok {
				fmt.Println("Game aborted.")
				return
			}
		}
		printBoard(s)
	}
}

func loopAvA(cfg config.Config) {
	const maxTurns = 500 // guard against stalemates that never block anyone

	s := newGameOrDie(cfg)
	fmt.Println("=== Blockade — Bot vs Bot ===")
	printBoard(s)

	for i := 0; i < maxTurns; i++ {
		var done bool
		if s, done = checkTerminal(s); done {
			return
		}
		s = botTurn(s, cfg.Weights)
		printBoard(s)
	}
	fmt.Println("Turn limit reached.")
}
