package game

import "errors"

var (
	ErrCardNotFound   = errors.New("card not found")
	ErrSizeInvariant  = errors.New("deck size changed")
	ErrIllegalChoice  = errors.New("illegal choice")
	ErrNoBuyPhase     = errors.New("turn ended without a buy decision")
	ErrNegativeSupply = errors.New("supply count below zero")
	ErrNegativeDraw   = errors.New("cannot draw a negative number of cards")
	ErrUnknownCard    = errors.New("unknown card")
	ErrUnknownEffect  = errors.New("unknown effect")
	ErrDuplicateCard  = errors.New("duplicate card")
)
