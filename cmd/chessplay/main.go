// Command chessplay is a two-human REPL over the rules engine:
// moves are typed in coordinate notation (e.g. "e2e4", "e7e8q" for a
// promotion), and the board is reprinted after every successful move,
// undo, redo, new, fen or load command.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/hailam/chessplay/internal/board"
	"github.com/hailam/chessplay/internal/game"
	"github.com/hailam/chessplay/internal/storage"
)

func main() {
	store, err := storage.NewStorage()
	if err != nil {
		log.Fatalf("chessplay: failed to open storage: %v", err)
	}
	defer store.Close()

	eng := game.NewEngine()

	r := &repl{eng: eng, store: store, in: bufio.NewReader(os.Stdin)}
	r.run()
}

type repl struct {
	eng   *game.Engine
	store *storage.Storage
	in    *bufio.Reader
}

func (r *repl) run() {
	fmt.Println("chessplay - two-player chess REPL")
	fmt.Println("commands: <from><to>[promo]  undo  redo  new  fen <FEN>  save <name>  load <name>  saves  quit")
	r.printBoard()

	for {
		fmt.Printf("%s> ", r.eng.SideToMove())
		line, err := r.in.ReadString('\n')
		if err != nil {
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.EqualFold(line, "quit") || strings.EqualFold(line, "exit") {
			return
		}

		r.dispatch(line)
	}
}

func (r *repl) dispatch(line string) {
	fields := strings.Fields(line)
	cmd := strings.ToLower(fields[0])

	switch cmd {
	case "undo":
		if err := r.eng.Undo(); err != nil {
			fmt.Println("undo:", err)
			return
		}
	case "redo":
		if err := r.eng.Redo(); err != nil {
			fmt.Println("redo:", err)
			return
		}
	case "new":
		r.eng.NewGame()
	case "fen":
		fen := strings.TrimSpace(strings.TrimPrefix(line, fields[0]))
		if err := r.eng.LoadFEN(fen); err != nil {
			fmt.Println("fen:", err)
			return
		}
	case "save":
		if len(fields) != 2 {
			fmt.Println("usage: save <name>")
			return
		}
		if err := r.store.SaveGame(fields[1], r.eng.SaveFEN(), r.eng.MoveHistory()); err != nil {
			fmt.Println("save:", err)
			return
		}
		fmt.Printf("saved as %q\n", fields[1])
		return
	case "load":
		if len(fields) != 2 {
			fmt.Println("usage: load <name>")
			return
		}
		slot, err := r.store.LoadGame(fields[1])
		if err != nil {
			fmt.Println("load:", err)
			return
		}
		if err := r.restoreSlot(slot); err != nil {
			fmt.Println("load:", err)
			return
		}
	case "saves":
		names, err := r.store.ListGames()
		if err != nil {
			fmt.Println("saves:", err)
			return
		}
		for _, n := range names {
			fmt.Println(" ", n)
		}
		return
	default:
		r.applyMoveInput(line)
		return
	}

	r.printBoard()
}

// restoreSlot rebuilds a saved game. If the slot carries a move
// history it is replayed from the starting position, which also
// rebuilds the undo stack and repetition history; if the replayed game
// doesn't land on the saved FEN (the game was saved after a "fen"
// load, so its history doesn't start at the standard position), the
// FEN snapshot alone is loaded instead.
func (r *repl) restoreSlot(slot *storage.SaveSlot) error {
	if len(slot.History) > 0 {
		r.eng.NewGame()
		if r.replay(slot.History) && r.eng.SaveFEN() == slot.FEN {
			return nil
		}
	}
	return r.eng.LoadFEN(slot.FEN)
}

// replay applies a sequence of coordinate-notation moves, reporting
// whether every one of them was legal.
func (r *repl) replay(history []string) bool {
	for _, u := range history {
		m, err := board.ParseMove(u, r.eng.Position())
		if err != nil {
			return false
		}
		result, err := r.eng.Apply(m.From(), m.To())
		if err != nil {
			return false
		}
		if result == game.PromotionRequired {
			kind := board.Queen
			if m.IsPromotion() {
				kind = m.Promotion()
			}
			if _, err := r.eng.CompletePromotion(kind); err != nil {
				return false
			}
		}
	}
	return true
}

// applyMoveInput parses and plays a move typed as coordinate notation
// ("e2e4") with an optional trailing promotion letter ("e7e8q").
func (r *repl) applyMoveInput(line string) {
	if len(line) != 4 && len(line) != 5 {
		fmt.Println("unrecognized command or malformed move:", line)
		return
	}

	from, err := board.ParseSquare(line[0:2])
	if err != nil {
		fmt.Println("move:", err)
		return
	}
	to, err := board.ParseSquare(line[2:4])
	if err != nil {
		fmt.Println("move:", err)
		return
	}

	result, err := r.eng.Apply(from, to)
	if err != nil {
		fmt.Println("illegal move:", line)
		return
	}

	if result == game.PromotionRequired {
		promo := board.Queen
		if len(line) == 5 {
			promo = promotionFromChar(line[4])
		}
		if _, err := r.eng.CompletePromotion(promo); err != nil {
			fmt.Println("promotion:", err)
			return
		}
	}

	r.printBoard()
	r.printStatus()
}

func promotionFromChar(c byte) board.PieceType {
	switch c {
	case 'n':
		return board.Knight
	case 'b':
		return board.Bishop
	case 'r':
		return board.Rook
	default:
		return board.Queen
	}
}

func (r *repl) printBoard() {
	fmt.Println(r.eng.Position())
}

func (r *repl) printStatus() {
	st := r.eng.Status()
	switch {
	case st.Checkmate:
		fmt.Println("checkmate")
	case st.Stalemate:
		fmt.Println("stalemate")
	case st.Repetition:
		fmt.Println("draw: threefold repetition")
	case st.FiftyMoveAvailable:
		fmt.Println("draw available: fifty-move rule")
	case st.InsufficientMaterial:
		fmt.Println("draw: insufficient material")
	case st.InCheck:
		fmt.Println("check")
	}
}
