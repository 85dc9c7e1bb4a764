package cart

import (
	"errors"
	"strings"
)

type Size string

const (
	SizePP Size = "PP"
	SizeP  Size = "P"
	SizeM  Size = "M"
	SizeG  Size = "G"
	SizeGG Size = "GG"
)

var ErrUnknownSize = errors.New("unknown size")

var allSizes = [...]Size{SizePP, SizeP, SizeM, SizeG, SizeGG}

// AllSizes returns the sizes in display order, smallest first.
func AllSizes() []Size {
	out := make([]Size, len(allSizes))
	copy(out, allSizes[:])
	return out
}

func (s Size) Valid() bool {
	for _, v := range allSizes {
		if s == v {
			return true
		}
	}
	return false
}

func (s Size) rank() int {
	for i, v := range allSizes {
		if s == v {
			return i
		}
	}
	return len(allSizes)
}

func ParseSize(s string) (Size, error) {
	sz := Size(strings.ToUpper(strings.TrimSpace(s)))
	if !sz.Valid() {
		return "", ErrUnknownSize
	}
	return sz, nil
}
