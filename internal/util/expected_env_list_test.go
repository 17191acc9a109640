//go:build unit

package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type nestedEnvs struct {
	Depth string `env:"DEPTH" envDefault:"1"`
}

type sampleEnvs struct {
	Token   string `env:"TOKEN,required"`
	Root    string `env:"ROOT"`
	Ignored string
	Nested  nestedEnvs
}

func TestFormatExpectedEnvList(t *testing.T) {
	got := FormatExpectedEnvList[sampleEnvs]()

	want := "- TOKEN [Required]\n" +
		"- ROOT  [Optional]\n" +
		"- DEPTH [Optional] (default: 1)\n"

	assert.Equal(t, want, got)
}
