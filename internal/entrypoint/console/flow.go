package console

import (
	"strings"

	"github.com/shopspring/decimal"

	"abcbank/internal/entity"
)

// flowResult is the explicit outcome of a repeat-or-back prompt.
// Actions branch on these values instead of burying the decision inside
// the I/O loop.
type flowResult int

const (
	flowRepeat flowResult = iota
	flowBack
)

// askRepeatOrBack asks whether to repeat the same action (Enter) or go
// back to the previous menu ('b'). Input ending counts as back.
func (c *Console) askRepeatOrBack(label string) flowResult {
	for {
		choice, ok := c.prompt("Press Enter to " + label + " again or 'b' to go back: ")
		if !ok {
			return flowBack
		}
		switch strings.ToLower(choice) {
		case "":
			return flowRepeat
		case "b":
			return flowBack
		}
		c.printf("Invalid option.\n")
	}
}

// askBack is the read-only variant: there is nothing to repeat, so both
// Enter and 'b' go back.
func (c *Console) askBack() {
	for {
		choice, ok := c.prompt("Press 'b' then Enter to go back: ")
		if !ok {
			return
		}
		switch strings.ToLower(choice) {
		case "", "b":
			return
		}
		c.printf("Invalid option.\n")
	}
}

// promptAmount reads and validates a money amount. On invalid input it
// reports the reason and asks repeat-or-back; ok is false and flow says
// whether to retry the surrounding action or leave it.
func (c *Console) promptAmount(label, action string) (decimal.Decimal, bool, flowResult) {
	raw, ok := c.prompt(label)
	if !ok {
		return decimal.Decimal{}, false, flowBack
	}
	amount, err := entity.ParseAmount(raw)
	if err != nil {
		c.reportError(err)
		return decimal.Decimal{}, false, c.askRepeatOrBack(action)
	}
	return amount, true, flowRepeat
}
