package expr

import (
	"errors"
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	assert := assert.New(t)

	table := map[string]uint32{
		"0":           0,
		"42":          42,
		"0x7000":      0x7000,
		"0xffffffff":  0xffffffff,
		"0b101":       5,
		"0755":        0o755,
		"0o17":        0o17,
		"-1":          0xffffffff,
		"~0":          0xffffffff,
		"~0xff":       0xffffff00,
		" 0x20000 ":   0x20000,
		"0xc000_0000": 0xc0000000,
	}

	for text, want := range table {
		value, err := ParseNumber(text)
		assert.NoError(err, text)
		assert.Equal(want, value, text)
	}

	for _, text := range []string{"", "x", "0x", "0x100000000", "-0x80000001", "TK1_RAM_BASE", "08"} {
		_, err := ParseNumber(text)
		var epn ErrParseNumber
		assert.True(errors.As(err, &epn), text)
	}
}

func TestEval(t *testing.T) {
	assert := assert.New(t)

	ev := &Evaluator{}
	ev.DefineAll(maps.All(map[string]string{
		"TK1_RAM_BASE":  "0x40000000",
		"TK1_RAM_SIZE":  "0x20000",
		"TK1_MMIO_BASE": "0xc0000000",
		"NOT_A_NUMBER":  "r0",
	}))

	_, ok := ev.Lookup("NOT_A_NUMBER")
	assert.False(ok)

	table := map[string]uint32{
		"TK1_RAM_BASE":          0x40000000,
		"TK1_RAM_BASE + 0x7000": 0x40007000,
		"TK1_RAM_SIZE - ((TK1_RAM_BASE + 0x7000) - TK1_RAM_BASE)": 0x19000,
		"0xffffffff - TK1_MMIO_BASE":                              0x3fffffff,
		"TK1_MMIO_BASE | 0x3f000000":                              0xff000000,
		"TK1_MMIO_BASE | 0x24":                                    0xc0000024,
		"1 << 2":                                                  4,
		"~TK1_MMIO_BASE & 0xffffffff":                             0x3fffffff,
		"0x100 / 4":                                               0x40,
		"010 + 1":                                                 9,
		"0x20000UL >> 1":                                          0x10000,
		"0 - 1":                                                   0xffffffff,
	}

	for text, want := range table {
		value, err := ev.Eval(text)
		assert.NoError(err, text)
		assert.Equal(want, value, text)
	}
}

func TestEvalErrors(t *testing.T) {
	assert := assert.New(t)

	ev := &Evaluator{}
	ev.Define("BASE", 0xc0000000)

	var epe *ErrParseExpression

	_, err := ev.Eval("  ")
	assert.ErrorIs(err, ErrEmpty)

	_, err = ev.Eval("UNKNOWN + 1")
	assert.True(errors.As(err, &epe))
	assert.Equal("UNKNOWN + 1", epe.Expr)

	_, err = ev.Eval("BASE +")
	assert.True(errors.As(err, &epe))

	_, err = ev.Eval("'text'")
	assert.True(errors.As(err, &epe))
	assert.ErrorIs(err, ErrNotInteger)

	_, err = ev.Eval("\"1.0\"")
	assert.ErrorIs(err, ErrNotInteger)

	_, err = ev.Eval("UNKNOWN")
	assert.NotErrorIs(err, ErrNotInteger)

	_, err = ev.Eval("BASE << 4")
	assert.ErrorIs(err, ErrRange)

	_, err = ev.Eval("1 << 80")
	assert.ErrorIs(err, ErrRange)
}

func TestDefine(t *testing.T) {
	assert := assert.New(t)

	ev := &Evaluator{}
	ev.Define("A", 1)
	ev.Define("A", 2)
	ev.Define("B", 3)

	value, ok := ev.Lookup("A")
	assert.True(ok)
	assert.Equal(uint32(2), value)

	value, err := ev.Eval("A * B")
	assert.NoError(err)
	assert.Equal(uint32(6), value)
}
