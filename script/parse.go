package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lifo-cli/lifo/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

var (
	ErrUnknownOp = errors.New("unknown operation")
	ErrArity     = errors.New("wrong number of arguments")
	ErrSyntax    = errors.New("syntax error")
)

// maxSuggestionDistance bounds how far a misspelled keyword may be from a suggestion.
const maxSuggestionDistance = 3

// Instruction is one parsed operation.
type Instruction struct {
	Line int
	Op   Op
	Args []string
}

// String renders the instruction back in script syntax.
func (i Instruction) String() string {
	if len(i.Args) == 0 {
		return i.Op.String()
	}

	args := lo.Map(i.Args, func(a string, _ int) string {
		if a == "" || strings.ContainsFunc(a, func(r rune) bool { return unicode.IsSpace(r) || r == ';' || r == '#' || r == '"' }) {
			return strconv.Quote(a)
		}
		return a
	})

	return i.Op.String() + " " + strings.Join(args, " ")
}

// Target returns the name of the stack the instruction changes or reads,
// given the name of the currently selected stack.
func (i Instruction) Target(current string) string {
	switch i.Op {
	case OpClone, OpUse:
		return i.Args[0]
	case OpFree:
		if len(i.Args) > 0 {
			return i.Args[0]
		}
	}
	return current
}

// ParseError describes a statement that could not be parsed.
type ParseError struct {
	Line       int
	Word       string
	Suggestion mo.Option[string]
	Err        error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	if e.Line > 0 {
		fmt.Fprintf(&b, "line %d: ", e.Line)
	}

	switch {
	case errors.Is(e.Err, ErrUnknownOp):
		fmt.Fprintf(&b, "unknown operation %q", e.Word)
		if s, ok := e.Suggestion.Get(); ok {
			fmt.Fprintf(&b, ", did you mean %s?", s)
		}
	case errors.Is(e.Err, ErrArity):
		op, _ := LookupOp(e.Word)
		fmt.Fprintf(&b, "%s: %s, usage: %s", e.Word, e.Err, op.Usage())
	default:
		fmt.Fprintf(&b, "%s", e.Err)
	}

	return b.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// suggest returns the closest operation keyword to word, if any is close enough.
func suggest(word string) mo.Option[string] {
	closest := lo.MinBy(Ops(), func(a, b string) bool {
		return levenshtein.Distance(word, a) < levenshtein.Distance(word, b)
	})

	if levenshtein.Distance(word, closest) > util.Max(maxSuggestionDistance, len(word)/2) {
		return mo.None[string]()
	}

	return mo.Some(closest)
}

// Parse reads a whole script. Lines are numbered from 1.
func Parse(r io.Reader) ([]Instruction, error) {
	var (
		instructions []Instruction
		scanner      = bufio.NewScanner(r)
		line         int
	)
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)

	for scanner.Scan() {
		line++
		parsed, err := ParseLine(scanner.Text(), line)
		if err != nil {
			return nil, err
		}
		instructions = append(instructions, parsed...)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}

	return instructions, nil
}

// ParseLine parses one line, which may hold several statements separated by ';'.
// Everything after an unquoted '#' is a comment.
func ParseLine(text string, line int) ([]Instruction, error) {
	statements, err := tokenize(text)
	if err != nil {
		return nil, &ParseError{Line: line, Err: err}
	}

	instructions := make([]Instruction, 0, len(statements))
	for _, words := range statements {
		name := strings.ToLower(words[0])
		op, ok := LookupOp(name)
		if !ok {
			return nil, &ParseError{Line: line, Word: words[0], Suggestion: suggest(name), Err: ErrUnknownOp}
		}

		args := words[1:]
		a := ops[op].arity
		if len(args) < a.min || (a.max >= 0 && len(args) > a.max) {
			return nil, &ParseError{Line: line, Word: name, Err: ErrArity}
		}

		instructions = append(instructions, Instruction{Line: line, Op: op, Args: args})
	}

	return instructions, nil
}

// tokenize splits text into statements of words, honouring double-quoted words.
func tokenize(text string) ([][]string, error) {
	var (
		statements [][]string
		words      []string
	)

	flush := func() {
		if len(words) > 0 {
			statements = append(statements, words)
			words = nil
		}
	}

	rest := text
	for {
		rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
		if rest == "" || rest[0] == '#' {
			break
		}

		switch rest[0] {
		case ';':
			flush()
			rest = rest[1:]
		case '"':
			quoted, err := strconv.QuotedPrefix(rest)
			if err != nil {
				return nil, fmt.Errorf("%w: unterminated string %s", ErrSyntax, rest)
			}
			word, _ := strconv.Unquote(quoted)
			words = append(words, word)
			rest = rest[len(quoted):]
		default:
			end := strings.IndexFunc(rest, func(r rune) bool {
				return unicode.IsSpace(r) || r == ';' || r == '#'
			})
			if end < 0 {
				end = len(rest)
			}
			words = append(words, rest[:end])
			rest = rest[end:]
		}
	}

	flush()
	return statements, nil
}
