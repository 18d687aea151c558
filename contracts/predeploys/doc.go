// Package predeploys is the registry of addresses the Selendra runtime
// reserves for its native tokens, liquidity pool tokens and precompiled
// modules. The table is fixed at build time and never mutated.
//
// Prefer the typed variables (predeploys.DEX) or MustLookup with a Name
// constant, which reject unknown names at compile time. Lookup is for
// names that arrive as strings and reports absence instead of guessing.
package predeploys
