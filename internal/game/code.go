package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Code is one ordered sequence of peg values. The array length keeps every
// code exactly PegSlots long by construction.
type Code [PegSlots]int

// String renders the code as space-separated values, e.g. "3 1 4 1".
func (c Code) String() string {
	parts := make([]string, PegSlots)
	for i, v := range c {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

// ParseCode reads exactly PegSlots whitespace-separated integers from line.
// Values are not range-checked: out-of-range pegs are valid input that can
// never match the secret. Errors are phrased for direct display to the
// player.
func ParseCode(line string) (Code, error) {
	var code Code
	fields := strings.Fields(line)
	if len(fields) != PegSlots {
		return code, fmt.Errorf("expected %d numbers, got %d", PegSlots, len(fields))
	}
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return code, fmt.Errorf("%q is not a number", f)
		}
		code[i] = v
	}
	return code, nil
}
