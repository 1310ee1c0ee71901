package ui

import (
	"fmt"
	"time"

	"github.com/hotpile/uno/card/color"
)

// moveDelay paces the text flow so moves stay readable. Pacing is a
// presentation concern only; it never touches game state.
var moveDelay = 500 * time.Millisecond

func SetMoveDelay(delay time.Duration) {
	moveDelay = delay
}

func Printfln(format string, args ...interface{}) {
	Println(fmt.Sprintf(format, args...))
}

func Println(args ...interface{}) {
	fmt.Fprintln(color.Stdout, args...)
	time.Sleep(moveDelay)
}
