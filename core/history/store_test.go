package history

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "history.db")
	s, err := Open(path)
	require.NoError(t, err)
	return s, path
}

func TestStore(t *testing.T) {
	s, path := openTemp(t)

	for i, line := range []string{"seq char a e", "to", "from tsv -n"} {
		seq, err := s.Add(line)
		require.NoError(t, err)
		assert.Equal(t, i+1, seq)
	}

	cases := map[string]struct {
		limit    int
		expected []Entry
	}{
		"all":              {0, []Entry{{1, "seq char a e"}, {2, "to"}, {3, "from tsv -n"}}},
		"newest":           {2, []Entry{{2, "to"}, {3, "from tsv -n"}}},
		"more than stored": {10, []Entry{{1, "seq char a e"}, {2, "to"}, {3, "from tsv -n"}}},
	}
	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			got, err := s.List(tc.limit)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("List(%d) mismatch (-want +got):\n%s", tc.limit, diff)
			}
		})
	}

	text, err := s.Get(2)
	require.NoError(t, err)
	assert.Equal(t, "to", text)

	_, err = s.Get(42)
	assert.ErrorIs(t, err, ErrNoMatchingCmd)

	// Sequence numbers continue after reopening.
	require.NoError(t, s.Close())
	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	seq, err := s.Add("help")
	require.NoError(t, err)
	assert.Equal(t, 4, seq)
}

func TestStore_empty(t *testing.T) {
	s, _ := openTemp(t)
	defer s.Close()

	got, err := s.List(5)
	require.NoError(t, err)
	assert.Empty(t, got)
}
