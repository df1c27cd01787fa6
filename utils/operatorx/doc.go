// File: doc.go
// Title: Package Documentation for operatorx
// Description: Package operatorx provides a closed registry of symbolic
//              arithmetic operators and the resolver that applies relative
//              values such as "+5" or "*2" to a base.
// Author: msto63
// Version: v1.0.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v1.0.0: Initial implementation

// Package operatorx provides symbolic arithmetic operators and relative values.
//
// Package: operatorx
// Title: Operator Registry and Relative Values
// Description: A uniform way to express "add 5", "subtract 3" or "multiply
//              by 2" as data, look the operator up by any of its symbols and
//              apply it to a base value.
// Author: msto63
// Version: v1.0.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Overview
//
// Eight operators are built in, registered in this order:
//
//	add  add, +, addition                               identity 0
//	sub  sub, -, subtract, subtraction                  identity 0
//	mul  mul, *, x, ×, mult, multiply, multiplication   identity 1
//	div  div, /, ÷, divide, division                    identity 1
//	mod  mod, %, modulo, modulus, rem, remainder
//	exp  exp, ^, **, exponent, exponentiate, exponentiation
//	inc  inc, ++, increment
//	dec  dec, --, decrement
//
// Symbols are matched case-insensitively. When two operators claim the same
// symbol the one registered first owns it.
//
// Operator References
//
// Functions that take an operator accept a Ref, which is either a Symbol or
// an *Operator handle returned by the same registry:
//
//	op, ok := operatorx.Lookup(operatorx.Symbol("×"))
//	v, err := operatorx.Apply(op, 2, 3, 4) // 24
//
// Apply folds operands onto the base from left to right. An unknown
// operator yields an error matching ErrNoOperation, never a number.
//
// Modulo
//
// The modulo operator folds with math.Mod under ModuloRemainder, the
// default. Registries built with WithModuloMode(ModuloDivision) divide
// instead, which matches the behavior of early releases.
//
// Increment and Decrement
//
// inc and dec ignore their operands. Each Apply call steps the base by
// exactly one, whatever the number of operands.
//
// Relative Values
//
// Parse reads strings such as "+6", "-7.8", "*9" or "**2". The longest
// symbol that the trimmed input starts with wins, so "**2" is an exponent
// and "--1" a decrement. The text after the symbol is read leniently: "+6px"
// is add 6. A string without a symbol is an absolute number and becomes an
// addition.
//
// The two entry points make the base explicit:
//
//	operatorx.ApplyWithBase(10, "+6") // 16
//	operatorx.ApplyStandalone("*9")   // 9, the identity of mul times 9
//
// Input that does not parse is replaced by "add 0", so ApplyWithBase
// returns the base unchanged.
//
// Thread Safety
//
// A Registry is never modified after NewRegistry returns. The default
// registry is built during package initialization and may be read from any
// number of goroutines.
package operatorx
