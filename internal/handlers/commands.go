package handlers

import (
	"errors"
	"io"
	"iter"
	"math/rand/v2"
	"net/http"
	"strconv"
	"strings"

	"github.com/nmakarov/sweeper/internal/game"
)

func byPiece(s string, sep string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		i := 0
		found := true
		var piece string
		for found {
			piece, s, found = strings.Cut(s, sep)
			if !yield(i, piece) {
				return
			}
			i += 1
		}
	}
}

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"g":  0, // get state
	"o":  2, // open (reveal)
	"f":  2, // flag
	"c":  2, // chord
	"ff": 0, // forfeit
}

func parseRowCol(twoStrings []string) (row int, col int, err error) {
	if row, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("first argument must be an int")
		return
	}
	if col, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("second argument must be an int")
		return
	}
	return
}

func executeCommand(s *game.Session, rnd *rand.Rand, c string) (err error) {
	parts := strings.Split(c, " ")
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return errors.New("unknown command")
	}
	if nargs != len(parts)-1 {
		return errors.New("invalid number of arguments")
	}
	switch parts[0] {
	case "g":
		return nil
	case "o":
		row, col, err := parseRowCol(parts[1:])
		if err != nil {
			return err
		}
		_, err = s.Reveal(row, col, rnd)
		return err
	case "f":
		row, col, err := parseRowCol(parts[1:])
		if err != nil {
			return err
		}
		_, err = s.ToggleFlag(row, col)
		return err
	case "c":
		row, col, err := parseRowCol(parts[1:])
		if err != nil {
			return err
		}
		_, err = s.Chord(row, col, rnd)
		return err
	case "ff":
		s.Forfeit()
		return nil
	}
	return errors.New("invalid command")
}

// Batch accepts newline-separated commands via the request body:
//
//	o row col // reveal a cell at row:col
//	c row col // chord a cell at row:col
//	f row col // flag a cell at row:col
//	ff        // forfeit the game
//
// Commands are interpreted in the order they are listed; interpretation stops
// once the game reaches a terminal status. A malformed command drops all
// changes and responds with [http.StatusBadRequest], the command's line
// number and an error message.
func (g *Game) Batch(w http.ResponseWriter, r *http.Request) {
	rec := g.fetch(w, r)
	if rec == nil {
		return
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.Error(err)
		return
	}
	lines := strings.TrimSpace(string(body))
	for i, c := range byPiece(lines, "\n") {
		if err := executeCommand(rec.Session, g.rnd, c); err != nil {
			payload := map[string]any{
				"loc":   i,
				"error": err.Error(),
			}
			w.WriteHeader(http.StatusBadRequest)
			sendJSONOrLog(w, g.log, payload)
			return
		}
		if rec.Session.Status.Terminal() {
			break
		}
	}
	if err := g.repo.Update(r.Context(), rec); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.Error("unable to update game session: ", err)
		return
	}
	sendJSONOrLog(w, g.log, NewGameSessionDTO(rec))
}
