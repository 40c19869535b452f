package problems

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	ctx *Context
	err error
}

func (s *stubStore) ProblemContext(_ context.Context, _ int) (*Context, error) {
	return s.ctx, s.err
}

func TestKeywordUnionMergesAlgorithms(t *testing.T) {
	pc := &Context{
		Keywords: []string{"외판원", "tsp", "방문 상태"},
		Guide: Guide{
			Algorithms: []string{"Dynamic Programming", "TSP", "Bitmasking"},
		},
	}

	union := pc.KeywordUnion()

	assert.Contains(t, union, "외판원")
	assert.Contains(t, union, "dynamic programming")
	assert.Contains(t, union, "bitmasking")
	// "TSP" the algorithm and "tsp" the keyword collapse to one entry.
	count := 0
	for _, kw := range union {
		if kw == "tsp" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestKeywordUnionSkipsBlanks(t *testing.T) {
	pc := &Context{
		Keywords: []string{"", "  ", "dp"},
		Guide:    Guide{Algorithms: []string{"DP"}},
	}

	assert.Equal(t, []string{"dp"}, pc.KeywordUnion())
}

func TestSampleTests(t *testing.T) {
	pc := &Context{
		TestCases: []TestCase{
			{Input: "1", Expected: "1", IsSample: true},
			{Input: "2", Expected: "2", IsSample: false},
		},
	}

	samples := pc.SampleTests()
	require.Len(t, samples, 1)
	assert.Equal(t, "1", samples[0].Input)
	assert.True(t, pc.HasTestCases())
}

func TestResolvePrefersStore(t *testing.T) {
	want := &Context{SpecID: 10, BasicInfo: BasicInfo{ProblemID: "2098", Title: "외판원 순회"}}
	reg := NewRegistry(&stubStore{ctx: want})

	got := reg.Resolve(context.Background(), 10)

	assert.Same(t, want, got)
}

func TestResolveFallsBackToStaticOnStoreError(t *testing.T) {
	reg := NewRegistry(&stubStore{err: errors.New("connection refused")})

	got := reg.Resolve(context.Background(), 10)

	require.NotNil(t, got)
	assert.Equal(t, "2098", got.BasicInfo.ProblemID)
	assert.Equal(t, 1000, got.Constraints.TimeLimitMS)
	assert.True(t, got.HasTestCases())
}

func TestResolveFallsBackToStaticOnStoreMiss(t *testing.T) {
	reg := NewRegistry(&stubStore{})

	got := reg.Resolve(context.Background(), 10)

	require.NotNil(t, got)
	assert.Equal(t, "외판원 순회", got.BasicInfo.Title)
}

func TestResolveUnknownSpecReturnsSkeleton(t *testing.T) {
	reg := NewRegistry(nil)

	got := reg.Resolve(context.Background(), 999)

	require.NotNil(t, got)
	assert.Equal(t, 999, got.SpecID)
	assert.Equal(t, "999", got.BasicInfo.ProblemID)
	assert.False(t, got.HasTestCases())
	assert.Empty(t, got.KeywordUnion())
}

func TestStaticSeedKeywords(t *testing.T) {
	reg := NewRegistry(nil)
	pc := reg.Resolve(context.Background(), 10)

	union := pc.KeywordUnion()
	for _, want := range []string{"외판원", "tsp", "traveling salesman", "dynamic programming", "bitmasking"} {
		assert.Contains(t, union, want)
	}

	require.True(t, pc.HasTestCases())
	samples := pc.SampleTests()
	require.Len(t, samples, 1)
	assert.Equal(t, "35", samples[0].Expected)
}
