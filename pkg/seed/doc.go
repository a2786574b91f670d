// Package seed maps display numbers onto the keys that drive generation.
//
// A display number n is encoded as a sequence of 16-bit code units: one
// 0xFFFF unit for every full multiple of 65536 in n, followed by a single
// unit holding the remainder. Zero encodes as the single unit 0x0000.
//
//	0      -> [0x0000]
//	65535  -> [0xFFFF]
//	65536  -> [0xFFFF 0x0000]
//	131072 -> [0xFFFF 0xFFFF 0x0000]
//
// Distinct numbers always produce distinct sequences, so every display gets
// its own key. Decimal strings are never used as keys because "1" and "12"
// share a prefix and some generators treat such seeds as related.
//
// The encoded length grows linearly with n. [Key] stores the encoding in
// compact form and streams it with [Key.WriteTo], so large numbers cost time
// to hash but not memory.
package seed
