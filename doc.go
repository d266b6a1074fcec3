// Package brain implements the model of a stack-based calculator.
//
// A Brain holds a stack of operands, variables, constants, and operations,
// pushed one at a time as a user would press calculator keys. The stack is
// read as a postfix expression from the top down: "3 4 +" is 3+4, and
// "5 3 −" is 5−3, because the operand nearest the top is the right-hand side
// of a binary operation.
//
// Every push evaluates the whole stack. Evaluations which cannot complete,
// e.g. an operation with too few operands or a variable with no value, yield
// no result rather than an error, and they leave the stack as it was so that
// pushing more entries can complete the expression later.
//
package brain
