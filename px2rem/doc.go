// Package px2rem rewrites pixel lengths in style objects into root-relative
// rem units, following conventions of the postcss-pxtorem post-processor.
//
// # Values
//
// For every entry of a [style.Node]:
//
//   - Strings containing "px" are scanned for pixel tokens (a numeral directly
//     followed by "px"). Each token is divided by the root value and rounded.
//     A result of exactly zero is written as bare "0". Values which start with
//     "calc" keep the unit ("0rem") so calc expressions stay dimensionally
//     valid.
//   - Bare numbers are treated as pixels unless zero or the key is unitless
//     (opacity, zIndex, ...), the result is a string.
//   - Nested nodes are left alone, use [style.Walk] to convert a whole tree.
//
// Pixel-looking text inside url(...) and var(...) is never touched.
//
// # Keys
//
// When media query conversion is enabled keys starting with '@' (any at-rule,
// not only @media) are rewritten too. Converted key is moved to the end of
// the node.
//
// # Rounding and formatting
//
// Results are rounded to Precision digits, half away from zero, in two steps:
// value is truncated to Precision+1 digits first so binary representation
// error cannot move a decimal tie. Numbers are formatted as JavaScript does,
// so with RootValue of zero results read "Infinityrem" or "NaNrem"; options
// are not validated here.
//
// # Usage
//
//	conv := px2rem.New(unitless.Default, px2rem.WithPrecision(3))
//	out := style.Walk(node, conv)
package px2rem
