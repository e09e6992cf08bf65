/*
Package pyvalid checks snippets of a small Python-like language and builds
their syntax tree.

Grammars

	program      --> statement* EOF ;
	statement    --> compoundStmt
	               | simpleStmt ;
	compoundStmt --> ifStmt
	               | whileStmt
	               | forStmt
	               | functionDef
	               | classDef ;
	simpleStmt   --> assignment
	               | returnStmt
	               | passStmt
	               | expr ;
	suite        --> "{" statement+ "}"
	               | simpleStmt ;
	ifStmt       --> "if" test ":" suite elseBlock? ;
	elseBlock    --> "else" ":" suite
	               | "elif" test ":" suite elseBlock? ;
	whileStmt    --> "while" test ":" suite ;
	forStmt      --> "for" IDENT "in" expr ":" suite ;
	functionDef  --> "def" IDENT "(" params? ")" ":" suite ;
	classDef     --> "class" IDENT ( "(" params? ")" )? ":" suite ;
	params       --> IDENT ( "," IDENT )* ;
	assignment   --> IDENT "=" expr ;
	returnStmt   --> "return" expr? ;
	passStmt     --> "pass" ;
	test         --> expr ( ( COMPARISON | LOGICAL ) expr )? ;
	expr         --> term ( ( "-" | "+" ) term )* ;
	term         --> factor ( ( "*" | "/" | "%" ) factor )* ;
	factor       --> ( "-" | "+" ) factor
	               | power ;
	power        --> atom ( "**" factor )? ;
	atom         --> primary ( "." IDENT )* ;
	primary      --> IDENT | NUMBER | STRING
	               | "True" | "False" | "None"
	               | "(" expr ")" ;

Statements are not separated by newlines or semicolons, a statement simply
ends where its production ends. Blocks are delimited by braces only,
indentation carries no meaning.

"test" applies at most one comparison or logical operator, so "a < b < c"
and "a and b or c" are rejected.

"power" takes a "factor" on its right-hand side, which makes "**" right
associative and lets unary operators bind looser than "**" on the left but
tighter than any other binary operator: "-a ** b" is "-(a ** b)" and
"a ** -b" is "a ** (-b)".
*/
package pyvalid

//go:generate go run ../cmd/ast_codegen .
