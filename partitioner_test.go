package kfold

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/danilown/kfold/source"
	kfoldtest "github.com/danilown/kfold/testing"
)

func thirteen() []int {
	return []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13}
}

func TestNew_Validation(t *testing.T) {
	t.Run("single group", func(t *testing.T) {
		_, err := New([]int{1}, DefaultConfig())

		require.ErrorIs(t, err, ErrInvalidArgument)
		require.Contains(t, err.Error(), "need at least 2 groups")
	})

	t.Run("two records of one group", func(t *testing.T) {
		_, err := New([]string{"p1", "p1"}, DefaultConfig())

		require.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := New([]int{}, DefaultConfig())

		require.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("one fold", func(t *testing.T) {
		_, err := New(thirteen(), Config{Folds: 1})

		require.ErrorIs(t, err, ErrInvalidArgument)
		require.Contains(t, err.Error(), "need at least 2 folds")
	})

	t.Run("nil source", func(t *testing.T) {
		_, err := NewFromSource[int](nil, DefaultConfig())

		require.ErrorIs(t, err, ErrUnsupportedInput)
		require.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("rejections are counted", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		m := NewPrometheusMetrics(reg, "test")

		_, _ = New([]int{1}, DefaultConfig(), WithMetrics(m))
		_, _ = New(thirteen(), Config{Folds: 1}, WithMetrics(m))
		_, _ = NewFromSource[int](nil, DefaultConfig(), WithMetrics(m))

		families, err := reg.Gather()
		require.NoError(t, err)

		var rejected float64
		for _, f := range families {
			if f.GetName() != "test_partitioner_rejections_total" {
				continue
			}
			for _, metric := range f.GetMetric() {
				rejected += metric.GetCounter().GetValue()
			}
		}
		require.InDelta(t, 3, rejected, 0)
	})
}

func TestNew_UnshuffledLayout(t *testing.T) {
	p, err := New(thirteen(), Config{Folds: 5, Shuffle: Bool(false)})
	require.NoError(t, err)

	require.Equal(t, 5, p.NumFolds())
	require.Equal(t, 13, p.NumGroups())
	require.Equal(t, thirteen(), p.Groups())
	require.Equal(t, []int{3, 3, 3, 2, 2}, p.FoldSizes())
	require.Equal(t, []FoldRange{
		{Start: 0, Stop: 3}, {Start: 3, Stop: 6}, {Start: 6, Stop: 9}, {Start: 9, Stop: 11}, {Start: 11, Stop: 13},
	}, p.Ranges())

	want := []Split[[]int]{
		{Fold: 0, Train: []int{4, 5, 6, 7, 8, 9, 10, 11, 12, 13}, Test: []int{1, 2, 3}},
		{Fold: 1, Train: []int{1, 2, 3, 7, 8, 9, 10, 11, 12, 13}, Test: []int{4, 5, 6}},
		{Fold: 2, Train: []int{1, 2, 3, 4, 5, 6, 10, 11, 12, 13}, Test: []int{7, 8, 9}},
		{Fold: 3, Train: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 12, 13}, Test: []int{10, 11}},
		{Fold: 4, Train: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, Test: []int{12, 13}},
	}

	for f := range want {
		split, err := p.Fold(f)
		require.NoError(t, err)
		require.Equal(t, want[f], split)
	}
}

func TestNew_DedupKeepsFirstSeenOrder(t *testing.T) {
	p, err := New([]string{"c", "a", "c", "b", "a"}, Config{Folds: 2, Shuffle: Bool(false)})
	require.NoError(t, err)

	require.Equal(t, []string{"c", "a", "b"}, p.Groups())
	require.Equal(t, []int{2, 1}, p.FoldSizes())
}

func TestNew_DoesNotMutateInput(t *testing.T) {
	ids := thirteen()

	_, err := New(ids, Config{Folds: 5, Seed: Seed(42)})
	require.NoError(t, err)

	require.Equal(t, thirteen(), ids)
}

func TestNew_FewerGroupsThanFolds(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)

	p, err := New([]int{7, 7, 9}, Config{Folds: 5, Shuffle: Bool(false)},
		WithLogger(NewZapLogger(zap.New(core).Sugar())))
	require.NoError(t, err)

	require.Equal(t, []int{1, 1, 0, 0, 0}, p.FoldSizes())
	require.Equal(t, 1, logs.FilterMessage("fewer groups than folds, trailing folds are empty").Len())

	split, err := p.Fold(4)
	require.NoError(t, err)
	require.Empty(t, split.Test)
	require.Equal(t, []int{7, 9}, split.Train)
}

func TestPartitioner_Properties(t *testing.T) {
	cases := []struct {
		name   string
		groups int
		folds  int
	}{
		{name: "13 into 5", groups: 13, folds: 5},
		{name: "100 into 10", groups: 100, folds: 10},
		{name: "7 into 7", groups: 7, folds: 7},
		{name: "2 into 2", groups: 2, folds: 2},
		{name: "50 into 3", groups: 50, folds: 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ids := make([]int, 0, tc.groups*2)
			for i := range tc.groups {
				// every group appears twice, as with multiple records per patient
				ids = append(ids, i, i)
			}

			p, err := New(ids, Config{Folds: tc.folds, Seed: Seed(int64(tc.groups))},
				WithLogger(kfoldtest.NewTestLogger(t)))
			require.NoError(t, err)

			groups := p.Groups()
			require.Len(t, groups, tc.groups)
			kfoldtest.AssertBalanced(t, p.FoldSizes(), tc.groups)

			tests := make([][]int, 0, tc.folds)
			for f, split := range p.All() {
				require.Equal(t, f, split.Fold)
				kfoldtest.AssertDisjoint(t, split, groups)
				tests = append(tests, split.Test)

				for _, id := range split.Test {
					got, ok := p.FoldOf(id)
					require.True(t, ok)
					require.Equal(t, f, got)
				}
			}
			require.Len(t, tests, tc.folds)
			kfoldtest.AssertExhaustive(t, tests, groups)
		})
	}
}

func TestPartitioner_Reproducible(t *testing.T) {
	cfg := Config{Folds: 5, Shuffle: Bool(true), Seed: Seed(42)}

	a, err := New(thirteen(), cfg)
	require.NoError(t, err)
	b, err := New(thirteen(), cfg)
	require.NoError(t, err)

	require.Equal(t, a.Groups(), b.Groups())
	require.Equal(t, a.Fingerprint(), b.Fingerprint())

	for f := range a.NumFolds() {
		sa, err := a.Fold(f)
		require.NoError(t, err)
		sb, err := b.Fold(f)
		require.NoError(t, err)
		require.Equal(t, sa, sb)
	}

	other, err := New(thirteen(), Config{Folds: 5, Seed: Seed(43)})
	require.NoError(t, err)
	require.NotEqual(t, a.Fingerprint(), other.Fingerprint())
}

func TestPartitioner_FoldOutOfRange(t *testing.T) {
	p, err := New(thirteen(), Config{Folds: 5})
	require.NoError(t, err)

	for _, f := range []int{-1, 5, 100} {
		_, err := p.Fold(f)
		require.ErrorIs(t, err, ErrIndexOutOfRange)
	}
}

func TestPartitioner_FoldOfUnknown(t *testing.T) {
	p, err := New(thirteen(), Config{Folds: 5})
	require.NoError(t, err)

	_, ok := p.FoldOf(99)
	require.False(t, ok)
}

func TestPartitioner_SplitsAreCopies(t *testing.T) {
	p, err := New(thirteen(), Config{Folds: 5, Shuffle: Bool(false)})
	require.NoError(t, err)

	split, err := p.Fold(0)
	require.NoError(t, err)
	split.Test[0] = -1
	split.Train[0] = -1

	again, err := p.Fold(0)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, again.Test)
	require.Equal(t, 4, again.Train[0])

	groups := p.Groups()
	groups[0] = -1
	require.Equal(t, 1, p.Groups()[0])
}

func TestCursor(t *testing.T) {
	p, err := New(thirteen(), Config{Folds: 5, Seed: Seed(42)})
	require.NoError(t, err)

	collect := func(t *testing.T, c *Cursor[[]int]) []Split[[]int] {
		t.Helper()

		var out []Split[[]int]
		for c.Next() {
			out = append(out, c.Value())
		}
		require.NoError(t, c.Err())

		return out
	}

	t.Run("yields every fold in order then stops", func(t *testing.T) {
		c := p.Folds()
		splits := collect(t, c)

		require.Len(t, splits, 5)
		for f, s := range splits {
			require.Equal(t, f, s.Fold)
		}
		require.False(t, c.Next())
	})

	t.Run("indexed access equals iteration", func(t *testing.T) {
		for f, s := range collect(t, p.Folds()) {
			direct, err := p.Fold(f)
			require.NoError(t, err)
			require.Equal(t, direct, s)
		}
	})

	t.Run("restartable", func(t *testing.T) {
		first := collect(t, p.Folds())
		second := collect(t, p.Folds())
		require.Equal(t, first, second)

		c := p.Folds()
		require.True(t, c.Next())
		require.True(t, c.Next())
		c.Reset()
		require.Equal(t, first, collect(t, c))
	})

	t.Run("independent cursors", func(t *testing.T) {
		c1, c2 := p.Folds(), p.Folds()
		require.True(t, c1.Next())
		require.True(t, c1.Next())
		require.True(t, c2.Next())

		require.Equal(t, 1, c1.Value().Fold)
		require.Equal(t, 0, c2.Value().Fold)
	})

	t.Run("range over All stops early", func(t *testing.T) {
		seen := 0
		for f := range p.All() {
			seen++
			if f == 1 {
				break
			}
		}
		require.Equal(t, 2, seen)
	})
}

func TestNewFromSource(t *testing.T) {
	p, err := NewFromSource[string](source.NewSlice([]string{"p2", "p1", "p2", "p3"}),
		Config{Folds: 3, Shuffle: Bool(false)})
	require.NoError(t, err)

	require.Equal(t, []string{"p2", "p1", "p3"}, p.Groups())

	split, err := p.Fold(1)
	require.NoError(t, err)
	require.Equal(t, []string{"p1"}, split.Test)
	require.Equal(t, []string{"p2", "p3"}, split.Train)
}

func TestPartitioner_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheusMetrics(reg, "test")

	p, err := New(thirteen(), Config{Folds: 5}, WithMetrics(m))
	require.NoError(t, err)

	for _, split := range p.All() {
		require.NotEmpty(t, split.Test)
	}

	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(`
# HELP test_fold_accesses_total Total fold lookups by kind (groups, records).
# TYPE test_fold_accesses_total counter
test_fold_accesses_total{kind="groups"} 5
# HELP test_partitioner_constructions_total Total partitioners successfully constructed.
# TYPE test_partitioner_constructions_total counter
test_partitioner_constructions_total 1
# HELP test_partitioner_folds Fold count of the most recently constructed partitioner.
# TYPE test_partitioner_folds gauge
test_partitioner_folds 5
`), "test_fold_accesses_total", "test_partitioner_constructions_total", "test_partitioner_folds"))
}
