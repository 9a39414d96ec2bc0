package crates

import (
	"regexp"
	"strconv"

	"github.com/alecthomas/participle"
	"github.com/alecthomas/participle/lexer"
)

// instructionPattern locates an instruction anywhere within a line.
var instructionPattern = regexp.MustCompile(`move \p{Nd}+ from \p{Nd}+ to \p{Nd}+`)

var instructionParser = participle.MustBuild(&instructionGrammar{},
	participle.Lexer(lexer.Must(lexer.Regexp(`(\s+)`+
		`|(?P<Keyword>move|from|to)`+
		`|(?P<Int>\p{Nd}+)`,
	))),
)

type instructionGrammar struct {
	Count *operand `"move" @@`
	From  *operand `"from" @@`
	To    *operand `"to" @@`
}

type operand struct {
	Pos    lexer.Position
	Digits string `@Int`
}

// ParseInstruction parses a line of the form "move N from A to B". It
// reports false for lines holding no instruction. A line that holds one
// whose numbers do not convert to integers results in an *InstructionError.
func ParseInstruction(line string) (Instruction, bool, error) {
	loc := instructionPattern.FindStringIndex(line)
	if loc == nil {
		return Instruction{}, false, nil
	}
	var g instructionGrammar
	if err := instructionParser.ParseString(line[loc[0]:loc[1]], &g); err != nil {
		return Instruction{}, true, &InstructionError{Text: line, Offset: loc[0], Err: err}
	}
	var in Instruction
	for _, x := range []struct {
		op  *operand
		dst *int
	}{
		{g.Count, &in.Count},
		{g.From, &in.From},
		{g.To, &in.To},
	} {
		n, err := strconv.Atoi(x.op.Digits)
		if err != nil {
			if e, ok := err.(*strconv.NumError); ok {
				err = e.Err
			}
			return Instruction{}, true, &InstructionError{
				Text:   line,
				Offset: loc[0] + x.op.Pos.Offset,
				Number: x.op.Digits,
				Err:    err,
			}
		}
		*x.dst = n
	}
	return in, true, nil
}
