package shell

import (
	"strconv"

	"github.com/abhisek/quizzer/internal/session"
	"github.com/abhisek/quizzer/internal/ui/console"
	"github.com/abhisek/quizzer/internal/ui/theme"
)

// playReporter prints play session events.
type playReporter struct {
	out *console.Printer
}

var _ session.Reporter = (*playReporter)(nil)

func (r *playReporter) NoQuestions() {
	r.out.Error("There are no questions to resolve.")
}

func (r *playReporter) Correct(score int) {
	r.out.Logf("CORRECT - %d hits so far.", score)
}

func (r *playReporter) Completed(score int) {
	r.out.Log("Nothing more to ask.")
	r.endOfGame(score)
}

func (r *playReporter) Incorrect(score int) {
	r.out.Log("INCORRECT")
	r.endOfGame(score)
}

func (r *playReporter) Failed(err error, score int) {
	r.out.Error(err.Error())
	r.endOfGame(score)
}

func (r *playReporter) endOfGame(score int) {
	r.out.Logf("End of game. Hits: %d", score)
	r.out.Banner(strconv.Itoa(score), theme.Accent)
}
