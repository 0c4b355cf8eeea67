package symb

import "math"

// Operator symbols
const (
	opAdd = "+"
	opSub = "-"
	opMul = "*"
	opDiv = "/"
	opPow = "^"
)

// Unary operators are stored the same way as functions.
const (
	fnPos = "+"
	fnNeg = "-"
	fnSin = "sin"
	fnCos = "cos"
	fnTan = "tan"
	fnCot = "cot"
	fnSec = "sec"
	fnCsc = "csc"
	fnLog = "log"
	fnExp = "exp"
)

// priorities of binary operators, higher binds tighter
var priorities = map[string]int{
	opAdd: 1,
	opSub: 1,
	opMul: 2,
	opDiv: 2,
	opPow: 3,
}

// functions lists the names the tokenizer reports as FUNCTION
var functions = map[string]bool{
	fnSin: true,
	fnCos: true,
	fnTan: true,
	fnCot: true,
	fnSec: true,
	fnCsc: true,
	fnLog: true,
	fnExp: true,
}

// The values are kept at this precision on purpose, printed results depend on
// them.
var constants = map[string]float64{
	"e":  2.718281,
	"pi": 3.141593,
}

var unaryFuncs = map[string]func(float64) float64{
	fnPos: func(x float64) float64 { return x },
	fnNeg: func(x float64) float64 { return -x },
	fnSin: math.Sin,
	fnCos: math.Cos,
	fnTan: math.Tan,
	fnCot: func(x float64) float64 { return 1 / math.Tan(x) },
	fnSec: func(x float64) float64 { return 1 / math.Cos(x) },
	fnCsc: func(x float64) float64 { return 1 / math.Sin(x) },
	fnLog: math.Log,
	fnExp: math.Exp,
}

var binaryFuncs = map[string]func(float64, float64) float64{
	opAdd: func(a, b float64) float64 { return a + b },
	opSub: func(a, b float64) float64 { return a - b },
	opMul: func(a, b float64) float64 { return a * b },
	opDiv: func(a, b float64) float64 { return a / b },
	opPow: math.Pow,
}

// derivatives maps a function to its derivative with respect to its argument,
// written in terms of that argument.
var derivatives = map[string]func(arg Expr) Expr{
	fnSin: func(arg Expr) Expr { return fn(fnCos, arg) },
	fnCos: func(arg Expr) Expr { return neg(fn(fnSin, arg)) },
	fnTan: func(arg Expr) Expr { return bin(opPow, fn(fnSec, arg), num(2)) },
	fnCot: func(arg Expr) Expr { return neg(bin(opPow, fn(fnCsc, arg), num(2))) },
	fnSec: func(arg Expr) Expr { return bin(opMul, fn(fnTan, arg), fn(fnSec, arg)) },
	fnCsc: func(arg Expr) Expr { return neg(bin(opMul, fn(fnCot, arg), fn(fnCsc, arg))) },
	fnLog: func(arg Expr) Expr { return bin(opPow, arg, num(-1)) },
	fnExp: func(arg Expr) Expr { return fn(fnExp, arg) },
	fnNeg: func(Expr) Expr { return num(-1) },
	fnPos: func(Expr) Expr { return num(1) },
}
