// Package lexer reads text into pooled lines and splits them into INT,
// REAL, OPERATOR and STRING tokens.
//
// Numeric tokens are recognized by nfa automata compiled from IntPattern
// and RealPattern; operators are located with an Aho-Corasick automaton
// over the registered operator set. Everything else up to the next
// delimiter is a STRING. Tokens never span lines.
package lexer
