/*
Package symb implements a small computer-algebra core over infix expressions.

Grammar

	expr     --> term ( ( "+" | "-" ) term )* ;
	term     --> factor ( ( "*" | "/" ) factor )* ;
	factor   --> unary ( "^" factor )? ;
	unary    --> ( "+" | "-" | FUNCTION ) unary
	           | primary ;
	primary  --> NUMBER | CONSTANT | VARIABLE
	           | OPEN expr CLOSE ;

OPEN is any of "(", "{" or "[" and CLOSE is any of ")", "}" or "]". Brackets are
matched by nesting only, so "(1+2]" is accepted. The parser does not descend the
grammar recursively, it runs the shunting-yard algorithm over the tokens, and a
unary operator or function binds tighter than any binary operator that follows
it: "-x^2" is "(-x)^2" and "sin x + 1" is "sin(x) + 1".

Every transformation (Substitute, Simplify, Diff, Taylor, Limit) takes a tree
and returns a new one, trees are never modified in place.
*/
package symb

//go:generate go run ../cmd/exprgen .
