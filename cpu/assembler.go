// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// mnemonicMap is the mnemonic to opcode mapping of the assembly language.
var mnemonicMap = map[string]Opcode{
	"right": OP_RIGHT,
	"left":  OP_LEFT,
	"inc":   OP_INC,
	"dec":   OP_DEC,
	"loop":  OP_OPEN,
	"end":   OP_CLOSE,
	"out":   OP_OUT,
	"in":    OP_IN,
	"halt":  OP_HALT,
}

// Assembler is a single pass assembler for the μBrain instruction set.
// A listing is one directive or mnemonic per line:
//
//	.equ WIDTH 8        ; define an equate
//	inc $(WIDTH * 2)    ; any mnemonic takes an optional repeat count
//	loop
//	dec
//	end
//	.text "+[->+<]"     ; raw operator passthrough
//	halt
//
// $(...) expressions are evaluated at assembly time with all equates
// predeclared as integers.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.

	Equate map[string]string // Map of equates.

	predefine map[string]string // Predefines.
}

// Predefine defines an equate before parsing; the emulator publishes the
// memory geometry this way.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// valueOf returns the value of a simple word: a number in any Go literal
// base, or an equate that resolves to one.
func (asm *Assembler) valueOf(word string) (value uint32, err error) {
	for range 8 {
		value64, nerr := strconv.ParseUint(word, 0, 32)
		if nerr == nil {
			value = uint32(value64)
			return
		}
		equ, ok := asm.Equate[word]
		if !ok {
			err = ErrParseNumber(word)
			return
		}
		word = equ
	}

	err = ErrParseNumber(word)
	return
}

// parenEval does assembly-time $(...) evaluations.
func (asm *Assembler) parenEval(expr string) (value uint32, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var value32 uint32
		value32, err = asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates.
			continue
		}
		pred[key] = starlark.MakeInt(int(value32))
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = uint32(st_int64)
	return
}

var parenRe = regexp.MustCompile(`\$\(([^)]*)\)`)

// parseLine splits a line into words, with comments stripped and $(...)
// expressions replaced by their values.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// .text consumes the whole line; don't mangle its quoted body.
	if strings.HasPrefix(strings.TrimSpace(line), ".text") {
		return strings.Fields(strings.TrimSpace(line))[:1], nil
	}

	if n := strings.IndexByte(line, ';'); n >= 0 {
		line = line[:n]
	}

	line = parenRe.ReplaceAllStringFunc(line, func(paren string) string {
		if err != nil {
			return paren
		}
		var value uint32
		value, err = asm.parenEval(paren[2 : len(paren)-1])
		if err != nil {
			return paren
		}
		return fmt.Sprintf("%v", value)
	})
	if err != nil {
		return
	}

	words = strings.Fields(line)
	return
}

// textRe matches the quoted body of a .text directive.
var textRe = regexp.MustCompile(`^\s*\.text\s+"([^"]*)"\s*(;.*)?$`)

// Parse assembles a listing into a Program.
func (asm *Assembler) Parse(r io.Reader) (prog *Program, err error) {
	asm.Equate = map[string]string{}
	for key, value := range asm.predefine {
		asm.Equate[key] = value
	}

	prog = &Program{}
	depth := 0

	lineno := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		lineno++
		prog.Source = append(prog.Source, line)

		fail := func(ferr error) error {
			return ErrSyntax{LineNo: lineno, Line: line, Err: ferr}
		}

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err != nil {
			err = fail(err)
			return
		}
		if len(words) == 0 {
			continue
		}

		switch words[0] {
		case ".equ":
			if len(words) != 3 {
				err = fail(ErrEquateSyntax)
				return
			}
			if _, ok := asm.Equate[words[1]]; ok {
				err = fail(ErrEquateDuplicate)
				return
			}
			asm.Equate[words[1]] = words[2]
			continue

		case ".text":
			match := textRe.FindStringSubmatch(line)
			if match == nil {
				err = fail(ErrTextSyntax)
				return
			}
			for _, ch := range []byte(match[1]) {
				op := Opcode(ch)
				switch op {
				case OP_OPEN:
					depth++
				case OP_CLOSE:
					depth--
				}
				err = prog.add(op, 1, lineno)
				if err != nil {
					err = fail(err)
					return
				}
			}
			continue
		}

		op, ok := mnemonicMap[words[0]]
		if !ok {
			err = fail(ErrMnemonicInvalid)
			return
		}

		count := 1
		if len(words) > 2 {
			err = fail(ErrExtraArgs)
			return
		}
		if len(words) == 2 {
			var value uint32
			value, err = asm.valueOf(words[1])
			if err != nil {
				err = fail(err)
				return
			}
			if value == 0 || value > STORE_SIZE {
				err = fail(ErrCountInvalid)
				return
			}
			count = int(value)
		}

		switch op {
		case OP_OPEN:
			depth += count
			if asm.Verbose && depth > 1 {
				// The return cache is a single slot; an inner loop
				// clobbers the outer loop's repeat address.
				log.Printf("asm: line %d: nested loop", lineno)
			}
		case OP_CLOSE:
			depth -= count
		}
		if depth < 0 {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: ErrEndWithoutLoop}
			return
		}

		if asm.Verbose {
			log.Printf("asm: line %d: %v x%d", lineno, op, count)
		}

		err = prog.add(op, count, lineno)
		if err != nil {
			err = fail(err)
			return
		}
	}
	if err = scanner.Err(); err != nil {
		return
	}

	if depth > 0 {
		err = ErrSyntax{LineNo: lineno, Line: "", Err: ErrLoopWithoutEnd}
		return
	}
	if depth < 0 {
		err = ErrSyntax{LineNo: lineno, Line: "", Err: ErrEndWithoutLoop}
		return
	}

	return
}
