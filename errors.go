package dc3

import "github.com/pkg/errors"

var (
	ErrTooShort    = errors.New("dc3: input must hold at least 2 symbols")
	ErrAlphabet    = errors.New("dc3: invalid alphabet bound")
	ErrSymbolRange = errors.New("dc3: symbol outside of alphabet")
	ErrLength      = errors.New("dc3: length does not fit buffer")
)
