package commands

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anomius/nushell/core/engine"
	"github.com/anomius/nushell/core/value"
)

func TestAllCommands(t *testing.T) {
	for _, sig := range Builtins().Signatures() {
		t.Run(sig.Name, func(t *testing.T) {
			cmd, ok := Builtins().Lookup(sig.Name)
			require.True(t, ok)
			assert.Same(t, sig, cmd.Signature(), "signature must be static")
			assert.NotEmpty(t, sig.Description)
			assert.NotEmpty(t, sig.Examples)
		})
	}
}

func toJSON(t *testing.T, v value.Value) string {
	t.Helper()
	out, err := json.Marshal(v)
	require.NoError(t, err)
	return string(out)
}

// TestExamples runs every documented example that has an expected result.
func TestExamples(t *testing.T) {
	for _, sig := range Builtins().Signatures() {
		for _, ex := range sig.Examples {
			if ex.Result == nil {
				continue
			}
			ex := ex
			t.Run(ex.Example, func(t *testing.T) {
				out, err := eval(t, ex.Example)
				require.NoError(t, err)
				assert.Equal(t, toJSON(t, ex.Result), toJSON(t, out.IntoValue()))
			})
		}
	}
}

func eval(t *testing.T, source string) (value.PipelineData, error) {
	t.Helper()
	return engine.New(Builtins(), nil).Eval(source)
}

type goldenTestSuite map[string]string

func (gts goldenTestSuite) Run(t *testing.T) {
	t.Helper()

	g := goldie.New(
		t,
		goldie.WithFixtureDir(filepath.Join("testdata", "golden")),
		goldie.WithDiffEngine(goldie.ColoredDiff),
		goldie.WithTestNameForDir(true),
	)

	for tn, source := range gts {
		t.Run(tn, func(t *testing.T) {
			out, err := eval(t, source)
			require.NoError(t, err)

			g.Assert(t, tn, []byte(value.ToString(out.IntoValue())))
		})
	}
}
