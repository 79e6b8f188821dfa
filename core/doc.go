// Package core defines the fundamental types shared by every gradix
// package: the assignment vector, the objective capability, and the
// 8-bit modular mutation primitives.
//
// Overview:
//
//   - A Vector is an ordered sequence of n ≥ 1 unsigned 64-bit words.
//     Only the low byte of each word is an optimization variable; the
//     upper 56 bits are opaque payload that every mutation preserves.
//   - An Objective maps a Vector to a signed 64-bit cost. Callers
//     encode "smaller is better" in two's-complement signed ordering;
//     the engine never assumes non-negativity or any bound.
//   - AddByte, SubByte and XorByte are the only mutation primitives.
//     All of them operate modulo 256 on the low byte and reassemble
//     the word with the original high bits, so high-bit preservation
//     holds by construction everywhere upstream.
//
// Ownership:
//
//   - Vectors are plain slices owned by whoever allocated them. The
//     search engine borrows a caller's vector only for the duration of
//     a call and works on clones where the API promises the input is
//     read-only.
//
// Thread safety:
//
//   - Vectors carry no locks. Concurrent mutation of a shared Vector
//     must be synchronized externally.
package core
