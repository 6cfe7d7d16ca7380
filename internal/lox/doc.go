/*
Package lox implements the front-to-back pipeline for expression-level Lox:
scanner, recursive descent parser, and tree-walking interpreter.

Grammar

	expression --> comma ;
	comma      --> ternary ( "," ternary )* ;
	ternary    --> equality ( "?" expression ":" expression )? ;
	equality   --> comparison ( ( "!=" | "==" ) comparison )* ;
	comparison --> term ( ( ">" | ">=" | "<" | "<=" ) term )* ;
	term       --> factor ( ( "-" | "+" ) factor )* ;
	factor     --> unary ( ( "/" | "*" ) unary )* ;
	unary      --> ( "!" | "-" | "+" | "/" | "*" ) unary
	             | primary ;
	primary    --> NUMBER | STRING
	             | "true" | "false" | "nil"
	             | "(" expression ")" ;

"unary" has some matches for error generation:
+ Unary '+' expressions are not supported.
+ Unary '/' expressions are not supported.
+ Unary '*' expressions are not supported.

The scanner tolerates lexical errors and keeps scanning past them, while the
parser and the interpreter both stop at the first error. There are no
statement boundaries to resynchronise on, so the parser does not attempt
error recovery.
*/
package lox
