// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package receipt generates the verification codes handed to voters when a
ballot is cast.

# Codes

A code is 8 characters drawn uniformly from uppercase letters and digits:

	code, err := receipt.GenerateCode() // e.g. "Q7ZK2M0A"

Codes are a cosmetic receipt. They are not tied to the ballot contents and
prove nothing cryptographically.

# Sources

GenerateCode reads from crypto/rand. Seeded produces a reproducible
sequence for demos and tests:

	src := receipt.NewSeeded(42)
	code, _ := src.NewCode()

# Validation

Validate checks the shape of a code and wraps ErrInvalidCode on mismatch.
*/
package receipt
