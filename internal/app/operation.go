package app

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Kronuz/base-x-go/internal/basex"
	"github.com/Kronuz/base-x-go/internal/biguint"
	"github.com/Kronuz/base-x-go/internal/cli"
	apperrors "github.com/Kronuz/base-x-go/internal/errors"
)

// arithBase is the fixed radix cmd/basex uses to parse and render
// arithmetic operands; the codec's own alphabet governs encode/decode, but
// arithmetic always reads and prints decimal.
const arithBase = 10

// runOperation dispatches on Config.Operation and renders the result
// through the shared cli presentation layer.
func (a *Application) runOperation(out io.Writer) int {
	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
	}

	switch a.Config.Operation {
	case "encode":
		return a.runEncode(out, outputCfg)
	case "decode":
		return a.runDecode(out, outputCfg)
	case "add", "sub", "mul", "div", "mod", "cmp":
		return a.runArith(out, outputCfg)
	default:
		return a.exitf("unknown operation %q (want encode, decode, add, sub, mul, div, mod, or cmp)", a.Config.Operation)
	}
}

func (a *Application) codec() (*basex.Codec, int) {
	c, ok := basex.ByName(a.Config.Alphabet)
	if !ok {
		return nil, a.exitf("unknown alphabet %q (see -alphabet)", a.Config.Alphabet)
	}
	return c, apperrors.ExitSuccess
}

func (a *Application) runEncode(out io.Writer, outputCfg cli.OutputConfig) int {
	c, code := a.codec()
	if c == nil {
		return code
	}

	start := time.Now()
	encoded := c.EncodeBytes([]byte(a.Config.Input), a.Config.Checksum)
	duration := time.Since(start)

	if err := cli.DisplayResultWithConfig(out, "encode", encoded, duration, a.Config.Alphabet, outputCfg); err != nil {
		return a.exitf("error writing result: %v", err)
	}
	return apperrors.ExitSuccess
}

func (a *Application) runDecode(out io.Writer, outputCfg cli.OutputConfig) int {
	c, code := a.codec()
	if c == nil {
		return code
	}

	start := time.Now()
	payload, err := c.DecodeBytes(a.Config.Input, a.Config.Checksum)
	duration := time.Since(start)
	if err != nil {
		return a.exitf("decode failed: %v", apperrors.CalculationError{Cause: err})
	}

	if err := cli.DisplayResultWithConfig(out, "decode", renderDecoded(payload), duration, a.Config.Alphabet, outputCfg); err != nil {
		return a.exitf("error writing result: %v", err)
	}
	return apperrors.ExitSuccess
}

// renderDecoded shows decoded payload bytes as text when they round-trip
// through UTF-8 cleanly, falling back to hex for arbitrary binary data.
func renderDecoded(payload []byte) string {
	if utf8.Valid(payload) {
		return string(payload)
	}
	return fmt.Sprintf("%x", payload)
}

func (a *Application) runArith(out io.Writer, outputCfg cli.OutputConfig) int {
	operands := strings.SplitN(a.Config.Input, ",", 2)
	if len(operands) != 2 {
		return a.exitf("arith input must be \"A,B\" (got %q)", a.Config.Input)
	}

	x, err := biguint.ParseText(strings.TrimSpace(operands[0]), arithBase)
	if err != nil {
		return a.exitf("invalid operand a: %v", err)
	}
	y, err := biguint.ParseText(strings.TrimSpace(operands[1]), arithBase)
	if err != nil {
		return a.exitf("invalid operand b: %v", err)
	}

	start := time.Now()
	result, err := evaluate(a.Config.Operation, x, y)
	duration := time.Since(start)
	if err != nil {
		return a.exitf("%s failed: %v", a.Config.Operation, apperrors.CalculationError{Cause: err})
	}

	if err := cli.DisplayResultWithConfig(out, a.Config.Operation, result, duration, "", outputCfg); err != nil {
		return a.exitf("error writing result: %v", err)
	}
	return apperrors.ExitSuccess
}

func evaluate(op string, x, y biguint.BigUint) (string, error) {
	switch op {
	case "add":
		return x.Add(y).Text(arithBase)
	case "sub":
		r, _ := x.Sub(y)
		return r.Text(arithBase)
	case "mul":
		return x.Mul(y).Text(arithBase)
	case "div":
		r, err := x.Div(y)
		if err != nil {
			return "", err
		}
		return r.Text(arithBase)
	case "mod":
		r, err := x.Mod(y)
		if err != nil {
			return "", err
		}
		return r.Text(arithBase)
	case "cmp":
		switch c := x.Cmp(y); {
		case c < 0:
			return "-1", nil
		case c > 0:
			return "1", nil
		default:
			return "0", nil
		}
	default:
		return "", fmt.Errorf("unsupported operation %q", op)
	}
}
