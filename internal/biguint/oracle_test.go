package biguint

import "math/big"

// toBig converts a BigUint to a math/big.Int for use as a reference oracle
// in tests; it is not part of the public API since the package intentionally
// has no math/big dependency.
func toBig(u BigUint) *big.Int {
	return new(big.Int).SetBytes(u.Bytes())
}

func fromBig(b *big.Int) BigUint {
	return SetBytes(b.Bytes())
}
