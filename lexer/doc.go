// Package lexer defines the token stream consumed by packrat matchers.
//
// The primary interfaces are Definition and Lexer. One implementation is included,
// TextScannerLexer, which tokenises Go-like source with text/scanner.
package lexer
