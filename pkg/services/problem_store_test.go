package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/examkit/proctor/pkg/problems"
	testdb "github.com/examkit/proctor/test/database"
)

func TestProblemStore(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewProblemStore(client.Client)
	ctx := context.Background()

	t.Run("unknown spec id yields nil without error", func(t *testing.T) {
		pc, err := store.ProblemContext(ctx, 999)
		require.NoError(t, err)
		assert.Nil(t, pc)
	})

	t.Run("save and load round-trip", func(t *testing.T) {
		in := &problems.Context{
			SpecID: 20,
			BasicInfo: problems.BasicInfo{
				ProblemID: "1463",
				Title:     "1로 만들기",
				Summary:   "연산 세 가지로 N을 1로 만드는 최소 횟수",
			},
			Constraints: problems.Constraints{TimeLimitMS: 2000, MemoryLimitKB: 131072},
			Guide:       problems.Guide{Algorithms: []string{"Dynamic Programming"}},
			TestCases: []problems.TestCase{
				{Input: "2\n", Expected: "1", IsSample: true},
				{Input: "10\n", Expected: "3", IsSample: false},
			},
			Keywords: []string{"dp", "점화식"},
		}
		require.NoError(t, store.SaveProblemContext(ctx, in))

		out, err := store.ProblemContext(ctx, 20)
		require.NoError(t, err)
		require.NotNil(t, out)
		assert.Equal(t, "1463", out.BasicInfo.ProblemID)
		assert.Equal(t, 2000, out.Constraints.TimeLimitMS)
		assert.Len(t, out.TestCases, 2)
		assert.Equal(t, []string{"dp", "점화식"}, out.Keywords)
	})

	t.Run("save replaces the existing document", func(t *testing.T) {
		require.NoError(t, store.SaveProblemContext(ctx, &problems.Context{
			SpecID:    21,
			BasicInfo: problems.BasicInfo{ProblemID: "2098", Title: "v1"},
		}))
		require.NoError(t, store.SaveProblemContext(ctx, &problems.Context{
			SpecID:    21,
			BasicInfo: problems.BasicInfo{ProblemID: "2098", Title: "v2"},
		}))

		out, err := store.ProblemContext(ctx, 21)
		require.NoError(t, err)
		require.NotNil(t, out)
		assert.Equal(t, "v2", out.BasicInfo.Title)
	})

	t.Run("rejects missing spec id", func(t *testing.T) {
		err := store.SaveProblemContext(ctx, &problems.Context{})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("registry prefers the store over the static map", func(t *testing.T) {
		require.NoError(t, store.SaveProblemContext(ctx, &problems.Context{
			SpecID:    10,
			BasicInfo: problems.BasicInfo{ProblemID: "2098", Title: "bank copy"},
		}))

		reg := problems.NewRegistry(store)
		pc := reg.Resolve(ctx, 10)
		assert.Equal(t, "bank copy", pc.BasicInfo.Title)
	})
}
