package capture

import (
	"errors"
	"fmt"
	"strings"
)

// Strategy selects how a window is rendered into the capture bitmap.
type Strategy int

const (
	// StrategyAuto picks the best strategy the host supports.
	StrategyAuto Strategy = iota

	// StrategyPrintFullContent uses PrintWindow with PW_RENDERFULLCONTENT,
	// which captures DirectComposition content on Windows 8.1 and later.
	StrategyPrintFullContent

	// StrategyPrintWindow uses a plain PrintWindow.
	StrategyPrintWindow

	// StrategyBitBlt copies the on-screen pixels from the window DC.
	StrategyBitBlt
)

var ErrInvalidStrategy = errors.New("invalid capture strategy")

var strategyNames = map[Strategy]string{
	StrategyAuto:             "auto",
	StrategyPrintFullContent: "full",
	StrategyPrintWindow:      "print",
	StrategyBitBlt:           "bitblt",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}

	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy accepts the names printed by String.
func ParseStrategy(s string) (Strategy, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return StrategyAuto, nil
	}

	for strategy, n := range strategyNames {
		if n == name {
			return strategy, nil
		}
	}

	return StrategyAuto, fmt.Errorf("%w: %q", ErrInvalidStrategy, s)
}

// SelectStrategy resolves StrategyAuto for a host.
func SelectStrategy(windows8OrGreater, composition bool) Strategy {
	switch {
	case windows8OrGreater:
		return StrategyPrintFullContent
	case composition:
		return StrategyPrintWindow
	default:
		return StrategyBitBlt
	}
}
