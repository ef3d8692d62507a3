package console

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/quizzer/internal/ui/theme"
)

func TestPrinter_Plain(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, &errOut, false)

	p.Log("hello")
	p.Logf("[%s]: %s", p.Key("1"), "Capital de Italia")
	p.Banner("Correct", theme.Success)
	p.Error("there is no quiz with id=9")

	assert.Contains(t, out.String(), "hello\n")
	assert.Contains(t, out.String(), "[1]: Capital de Italia\n")
	assert.Contains(t, out.String(), "C O R R E C T")
	assert.Equal(t, "Error: there is no quiz with id=9\n", errOut.String())
	assert.NotContains(t, out.String()+errOut.String(), "\x1b[")
}

func TestPrinter_Colored(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out, &out, true)

	assert.True(t, p.Color())
	assert.Contains(t, p.Key("7"), "\x1b[")
	assert.Contains(t, p.PromptText("Capital?"), "Capital?")
}
