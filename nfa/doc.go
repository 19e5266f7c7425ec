// Package nfa compiles a small regular-expression language into an
// epsilon-NFA represented as a graph.Digraph and recognizes whole inputs
// by simulating it with dfs.Reach.
//
// Pattern language:
//
//	(...)        group; every pattern is wrapped in one
//	a|b          alternation
//	A*  A+  A?   zero-or-more, one-or-more, optional
//	A{n} A{n,m}  bounded repetition, 0 <= n <= m <= 99, not both zero
//	(x-y) (^x-y) alphanumeric range and its complement
//	[[:digit:]]  classes: misc alpha ALPHA ascii digit hex alphanum
//	\X           the two bytes '\' and X
//	[            a '[' that does not open [[:name:]] is a literal
//
// The pattern is first rewritten into a corrected pattern containing only
// literals, escape pairs, ( ) * | and negative class/range sentinels. State
// i of the automaton is position i of that pattern and state M, one past
// the end, is the accepting state.
//
// By default input that looks like pattern syntax (a byte other than '\'
// followed by one of ( ) * ? ^ |) is rejected before matching. Text meant
// for an escaped operator carries the escape too: "(a\\*)" recognizes `a\*`.
//
// An NFA is immutable after New, but matching reuses per-instance scratch
// state; use one instance per goroutine.
package nfa
