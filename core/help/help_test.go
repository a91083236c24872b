package help

import (
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"

	"github.com/anomius/nushell/core/signature"
)

type testScope []*signature.Signature

func (s testScope) Signatures() []*signature.Signature { return s }

var (
	seqChar = signature.Build("seq char").
		Desc("Print a sequence of ASCII characters.").
		Req("start", signature.String, "Start of character sequence (inclusive).").
		Req("end", signature.String, "End of character sequence (inclusive).").
		Flag("graphic", 'g', "Only include ASCII graphic characters in the output").
		In(signature.CategoryGenerators).
		Ex("sequence a to e", "seq char a e", nil).
		Ex("sequence a to e, and put the characters in a pipe-separated string", "seq char a e | str join '|'", nil)

	to = signature.Build("to").
		Desc("Convert table into an output format (based on subcommand, like csv, html, json, yaml).").
		In(signature.CategoryFormats)

	toJSON = signature.Build("to json").Desc("Converts table data into JSON text.")
	toCSV  = signature.Build("to csv").Desc("Convert table into .csv text.")
	top    = signature.Build("top").Desc("Not a subcommand.")

	exec = signature.Build("exec").
		Desc("Execute command.").
		Req("command", signature.FilePath, "the command to execute").
		RestOf("rest", signature.GlobPattern, "any additional arguments for command")
)

func TestFull(t *testing.T) {
	g := goldie.New(
		t,
		goldie.WithFixtureDir(filepath.Join("testdata", "golden")),
		goldie.WithDiffEngine(goldie.ColoredDiff),
		goldie.WithTestNameForDir(true),
	)

	scope := testScope{toJSON, seqChar, top, toCSV, to, exec}

	cases := map[string]*signature.Signature{
		"seq-char": seqChar,
		"to":       to,
		"exec":     exec,
	}

	for tn, sig := range cases {
		t.Run(tn, func(t *testing.T) {
			g.Assert(t, tn, []byte(Full(sig, scope)))
		})
	}
}

func TestUsage(t *testing.T) {
	assert.Equal(t, "seq char {flags} <start> <end>", Usage(seqChar))
	assert.Equal(t, "exec {flags} <command> ...(rest)", Usage(exec))
	assert.Equal(t, "to {flags}", Usage(to))
}

func TestFull_nilScope(t *testing.T) {
	assert.NotContains(t, Full(to, nil), "Subcommands:")
}
