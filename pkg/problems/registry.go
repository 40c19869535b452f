package problems

import (
	"context"
	"log/slog"
)

// Store is the durable lookup for problem contexts. Implementations return
// (nil, nil) when the spec id is unknown.
type Store interface {
	ProblemContext(ctx context.Context, specID int) (*Context, error)
}

// Registry resolves spec ids using the resolution hierarchy:
//  1. durable store (when configured)
//  2. static built-in map
//  3. empty skeleton context
//
// Store failures fall through to the static map so an exam keeps running
// during a database outage.
type Registry struct {
	store  Store
	static map[int]*Context
	logger *slog.Logger
}

// NewRegistry creates a Registry. store may be nil, in which case only the
// static map is consulted.
func NewRegistry(store Store) *Registry {
	return &Registry{
		store:  store,
		static: staticProblems(),
		logger: slog.Default().With("component", "problem_registry"),
	}
}

// Resolve returns the problem context for specID. It never fails: unknown
// ids yield an empty skeleton so the graph can still run the turn.
func (r *Registry) Resolve(ctx context.Context, specID int) *Context {
	if r.store != nil {
		pc, err := r.store.ProblemContext(ctx, specID)
		if err != nil {
			r.logger.Warn("problem store lookup failed, using static registry",
				"spec_id", specID,
				"error", err)
		} else if pc != nil {
			return pc
		}
	}

	if pc, ok := r.static[specID]; ok {
		return pc
	}

	r.logger.Debug("unknown spec id, returning empty problem context", "spec_id", specID)
	return emptyContext(specID)
}

// Lookup returns the problem context for specID and whether it is actually
// known. Unlike Resolve it does not fabricate a skeleton, so callers can
// report unknown ids.
func (r *Registry) Lookup(ctx context.Context, specID int) (*Context, bool) {
	if r.store != nil {
		pc, err := r.store.ProblemContext(ctx, specID)
		if err != nil {
			r.logger.Warn("problem store lookup failed, using static registry",
				"spec_id", specID,
				"error", err)
		} else if pc != nil {
			return pc, true
		}
	}

	pc, ok := r.static[specID]
	return pc, ok
}

// staticProblems seeds the built-in registry. Problem 2098 (traveling
// salesman, Baekjoon) is the pilot exam problem and ships with the binary so
// guardrails and tutoring work even before the problem bank is migrated to
// the database.
func staticProblems() map[int]*Context {
	return map[int]*Context{
		10: {
			SpecID: 10,
			BasicInfo: BasicInfo{
				ProblemID: "2098",
				Title:     "외판원 순회",
				Summary: "1번 도시에서 출발하여 모든 도시를 단 한 번씩 거쳐 " +
					"다시 1번 도시로 돌아오는 최소 비용의 경로를 구하는 문제.",
				InputFormat: "첫째 줄에 도시의 수 N (2 ≤ N ≤ 16). 다음 N개의 줄에 " +
					"비용 행렬 W가 주어짐. W[i][j]는 도시 i에서 j로 가기 위한 비용 " +
					"(0은 갈 수 없음).",
				OutputFormat: "첫째 줄에 순회에 필요한 최소 비용을 출력.",
			},
			Constraints: Constraints{
				TimeLimitMS:   1000,
				MemoryLimitKB: 131072,
				VariableRanges: map[string]string{
					"N":    "2 <= N <= 16",
					"Cost": "0 <= W[i][j] <= 1,000,000",
				},
				Reasoning: "N이 최대 16이므로 O(N!)의 완전 탐색은 시간 초과가 발생함. " +
					"O(N^2 * 2^N)의 비트마스킹 DP를 사용해야 함.",
			},
			Guide: Guide{
				Algorithms:   []string{"Dynamic Programming", "Bitmasking", "DFS", "TSP"},
				Architecture: "Top-down DFS with Memoization",
				HintRoadmap: []string{
					"N이 작다는 점(16)에 주목하세요. 방문한 도시들의 상태를 효율적으로 " +
						"저장할 방법이 필요합니다. 배열보다는 비트를 사용해보면 어떨까요?",
					"상태를 dp[current_city][visited_bitmask]로 정의해보세요. " +
						"visited_bitmask의 i번째 비트가 1이면 i번 도시를 방문했다는 뜻입니다.",
					"점화식: FindPath(curr, visited) = min(W[curr][next] + " +
						"FindPath(next, visited | (1<<next))) (단, next는 아직 방문하지 않은 도시)",
					"모든 도시를 방문했을 때(visited == (1<<N) - 1), 현재 도시에서 " +
						"출발 도시(0)로 돌아가는 길이 있는지 확인하고 비용을 반환해야 합니다.",
				},
				Pitfalls: []string{
					"갈 수 없는 길(W[i][j] == 0)인 경우를 체크하지 않음.",
					"DP 배열을 0으로 초기화하면 방문 안 함과 비용 0이 구분되지 않음. " +
						"-1이나 INF로 초기화해야 함.",
					"마지막 도시에서 시작 도시로 돌아올 수 없는 경우를 예외 처리하지 않음.",
				},
			},
			SolutionCode: tspSolution,
			TestCases: []TestCase{
				{
					Input:    "4\n0 10 15 20\n5 0 9 10\n6 13 0 12\n8 8 9 0\n",
					Expected: "35",
					IsSample: true,
				},
				{
					Input:    "3\n0 1 2\n1 0 100\n2 100 0\n",
					Expected: "103",
					IsSample: false,
				},
				{
					Input:    "2\n0 7\n4 0\n",
					Expected: "11",
					IsSample: false,
				},
			},
			Keywords: []string{
				"외판원",
				"tsp",
				"traveling salesman",
				"dp[현재도시][방문도시]",
				"방문 상태",
			},
		},
	}
}

const tspSolution = `import sys

def tsp(current, visited):
    if visited == (1 << N) - 1:
        if W[current][0] != 0:
            return W[current][0]
        return float('inf')

    if dp[current][visited] != -1:
        return dp[current][visited]

    dp[current][visited] = float('inf')
    for i in range(N):
        if not (visited & (1 << i)) and W[current][i] != 0:
            dp[current][visited] = min(dp[current][visited], tsp(i, visited | (1 << i)) + W[current][i])

    return dp[current][visited]

N = int(sys.stdin.readline())
W = [list(map(int, sys.stdin.readline().split())) for _ in range(N)]
dp = [[-1] * (1 << N) for _ in range(N)]
print(tsp(0, 1))
`
