package symb

import (
	"strconv"
	"unicode"
)

// Tokenizer splits an infix expression into tokens. It never fails, text that
// can not be made sense of ends up as VARIABLE tokens and is rejected by the
// parser, if at all.
type Tokenizer struct {
	current int
	source  []rune
	tokens  []*Token
	// word being accumulated, and what it looks like so far
	candidate []rune
	numeric   bool
	decimal   bool
}

// NewTokenizer creates a new tokenizer for the given text
func NewTokenizer(text string) *Tokenizer {
	tokenizer := new(Tokenizer)
	tokenizer.source = []rune(text)
	tokenizer.tokens = make([]*Token, 0)
	tokenizer.reset()
	return tokenizer
}

// Tokenize splits text into tokens.
func Tokenize(text string) []*Token {
	return NewTokenizer(text).Tokenize()
}

// Tokenize reads the whole text and returns the tokens in the order they were
// found.
func (tokenizer *Tokenizer) Tokenize() []*Token {
	if len(tokenizer.tokens) != 0 {
		return tokenizer.tokens
	}

	for tokenizer.hasNext() {
		switch r := tokenizer.advance(); r {
		case '+', '-', '*', '/', '^':
			tokenizer.flush()
			tokenizer.addToken(OPERATOR, string(r), nil)
		case '(', '{', '[':
			tokenizer.flush()
			tokenizer.addToken(OPEN_BRACKET, string(r), nil)
		case ')', '}', ']':
			tokenizer.flush()
			tokenizer.addToken(CLOSE_BRACKET, string(r), nil)
		default:
			if unicode.IsSpace(r) {
				tokenizer.flush()
			} else {
				tokenizer.append(r)
			}
		}
	}
	tokenizer.flush()
	return tokenizer.tokens
}

// append adds a rune to the word being read
func (tokenizer *Tokenizer) append(r rune) {
	tokenizer.candidate = append(tokenizer.candidate, r)
	switch {
	case r == '.':
		// a second decimal point means this is not a number
		if tokenizer.decimal {
			tokenizer.numeric = false
		}
		tokenizer.decimal = true
	case r < '0' || r > '9':
		tokenizer.numeric = false
	}
}

// flush classifies the word being read, if any, and emits it as a token
func (tokenizer *Tokenizer) flush() {
	defer tokenizer.reset()
	if len(tokenizer.candidate) == 0 {
		return
	}

	lexeme := string(tokenizer.candidate)
	if tokenizer.numeric {
		if literal, err := strconv.ParseFloat(lexeme, 64); err == nil {
			tokenizer.addToken(LITERAL, lexeme, literal)
			return
		}
	}
	if _, ok := constants[lexeme]; ok {
		tokenizer.addToken(LITERAL, lexeme, Constant(lexeme))
	} else if functions[lexeme] {
		tokenizer.addToken(FUNCTION, lexeme, nil)
	} else {
		tokenizer.addToken(VARIABLE, lexeme, nil)
	}
}

func (tokenizer *Tokenizer) reset() {
	tokenizer.candidate = tokenizer.candidate[:0]
	tokenizer.numeric = true
	tokenizer.decimal = false
}

func (tokenizer *Tokenizer) addToken(typ TokenType, lexeme string, literal interface{}) {
	tokenizer.tokens = append(tokenizer.tokens, NewToken(typ, lexeme, literal))
}

// hasNext returns true if the tokenizer has not read pass the source length
func (tokenizer *Tokenizer) hasNext() bool {
	return tokenizer.current < len(tokenizer.source)
}

// advance consumes and returns the rune at the current position
func (tokenizer *Tokenizer) advance() rune {
	r := tokenizer.source[tokenizer.current]
	tokenizer.current++
	return r
}
