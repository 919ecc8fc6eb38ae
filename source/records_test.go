package source

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/danilown/kfold/types"
)

type visit struct {
	Patient int
	Image   string
}

func visits() []visit {
	return []visit{
		{1, "a"}, {2, "b"}, {2, "c"}, {3, "d"},
		{4, "e"}, {5, "f"}, {5, "g"}, {5, "h"},
	}
}

func TestRecords_GroupKeys(t *testing.T) {
	t.Run("reads key of every row", func(t *testing.T) {
		tbl := NewRecords(visits(), func(v visit) int { return v.Patient })

		keys, err := tbl.GroupKeys()

		require.NoError(t, err)
		require.Equal(t, []int{1, 2, 2, 3, 4, 5, 5, 5}, keys)
		require.Equal(t, 8, tbl.Len())
	})

	t.Run("missing key function is unsupported", func(t *testing.T) {
		tbl := NewRecords[int](visits(), nil)

		_, err := tbl.GroupKeys()

		require.ErrorIs(t, err, types.ErrUnsupportedInput)
		require.ErrorIs(t, err, types.ErrInvalidArgument)
	})
}

func TestRecords_FilterGroups(t *testing.T) {
	tbl := NewRecords(visits(), func(v visit) int { return v.Patient })

	t.Run("keeps every row of member groups in order", func(t *testing.T) {
		rows := tbl.FilterGroups(map[int]struct{}{5: {}, 2: {}})

		require.Equal(t, []visit{{2, "b"}, {2, "c"}, {5, "f"}, {5, "g"}, {5, "h"}}, rows)
	})

	t.Run("empty set selects nothing", func(t *testing.T) {
		require.Empty(t, tbl.FilterGroups(map[int]struct{}{}))
	})
}
