package mprsa

import (
	"math/big"
	"runtime"
)

// ZeroizeInt overwrites the words backing x with zeros and resets x to 0.
//
// This follows the pattern recommended in golang/go#33325. It cannot reach
// copies math/big made during earlier arithmetic, so it only limits how long
// the value stays readable in the final buffer.
func ZeroizeInt(x *big.Int) {
	if x == nil {
		return
	}
	words := x.Bits()
	for i := range words {
		words[i] = 0
	}
	x.SetInt64(0)
	// Prevent dead store elimination per golang/go#33325
	runtime.KeepAlive(words)
}
