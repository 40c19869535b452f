package judge

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/examkit/proctor/pkg/problems"
)

// fakeJudge0 serves the two Judge0 endpoints the client uses. Outcomes are
// looked up by the submission's stdin so multi-case runs can be scripted.
type fakeJudge0 struct {
	mu          sync.Mutex
	outcomes    map[string]judge0Outcome // stdin -> final outcome
	pendingPer  int                      // polls answered with "Processing" before the final outcome
	polls       map[string]int
	submissions map[string]judge0Submission // token -> submission
	lastHeaders http.Header
	nextToken   int
}

func newFakeJudge0() *fakeJudge0 {
	return &fakeJudge0{
		outcomes:    make(map[string]judge0Outcome),
		polls:       make(map[string]int),
		submissions: make(map[string]judge0Submission),
	}
}

func (f *fakeJudge0) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /submissions", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		var sub judge0Submission
		if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		f.lastHeaders = r.Header.Clone()
		f.nextToken++
		token := fmt.Sprintf("tok-%d", f.nextToken)
		f.submissions[token] = sub
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{"token": token})
	})
	mux.HandleFunc("GET /submissions/{token}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		token := r.PathValue("token")
		sub, ok := f.submissions[token]
		if !ok {
			http.Error(w, "unknown token", http.StatusNotFound)
			return
		}
		if f.polls[token] < f.pendingPer {
			f.polls[token]++
			_ = json.NewEncoder(w).Encode(judge0Outcome{
				Token:  token,
				Status: judge0Status{ID: statusProcessing, Description: "Processing"},
			})
			return
		}
		out, ok := f.outcomes[sub.Stdin]
		if !ok {
			out = judge0Outcome{Status: judge0Status{ID: statusAccepted, Description: "Accepted"}}
		}
		out.Token = token
		_ = json.NewEncoder(w).Encode(out)
	})
	return mux
}

func newTestJudge0(t *testing.T, fake *fakeJudge0, mutate func(*Judge0Config)) *Judge0Client {
	t.Helper()
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)

	cfg := Judge0Config{
		BaseURL:      srv.URL,
		PollInterval: time.Millisecond,
		MaxWait:      time.Second,
	}
	if mutate != nil {
		mutate(&cfg)
	}
	client, err := NewJudge0Client(cfg)
	require.NoError(t, err)
	return client
}

func TestLanguageID(t *testing.T) {
	assert.Equal(t, 71, LanguageID("python"))
	assert.Equal(t, 71, LanguageID("Python3"))
	assert.Equal(t, 62, LanguageID("java"))
	assert.Equal(t, 54, LanguageID("cpp"))
	assert.Equal(t, 54, LanguageID("C++"))
	assert.Equal(t, 50, LanguageID("c"))
	assert.Equal(t, 63, LanguageID("javascript"))
	assert.Equal(t, 60, LanguageID("go"))
	assert.Equal(t, 73, LanguageID("rust"))
	// Unknown languages run as Python 3.
	assert.Equal(t, 71, LanguageID("cobol"))
}

func TestNewJudge0ClientRequiresBaseURL(t *testing.T) {
	_, err := NewJudge0Client(Judge0Config{})
	assert.Error(t, err)
}

func TestExecuteAggregatesTestCases(t *testing.T) {
	fake := newFakeJudge0()
	fake.outcomes["4\n"] = judge0Outcome{
		Stdout: "35\n",
		Time:   "0.031",
		Memory: 3456,
		Status: judge0Status{ID: statusAccepted, Description: "Accepted"},
	}
	fake.outcomes["3\n"] = judge0Outcome{
		Stdout: "99\n",
		Time:   "0.045",
		Memory: 3100,
		Status: judge0Status{ID: statusAccepted, Description: "Accepted"},
	}
	client := newTestJudge0(t, fake, nil)

	task := &Task{
		TaskID:   "t1",
		Code:     "print(tsp())",
		Language: "python",
		TestCases: []problems.TestCase{
			{Input: "4\n", Expected: "35"},
			{Input: "3\n", Expected: "103"},
		},
		CPUTimeLimit:  1.0,
		MemoryLimitKB: 131072,
	}

	result := client.Execute(context.Background(), task)

	require.NotNil(t, result)
	assert.Equal(t, VerdictError, result.Status)
	assert.Equal(t, 1, result.Passed)
	assert.Equal(t, 2, result.Total)
	assert.Contains(t, result.Error, "1/2 tests failed")

	require.Len(t, result.Cases, 2)
	assert.True(t, result.Cases[0].Passed)
	assert.False(t, result.Cases[1].Passed)
	assert.Equal(t, "99", result.Cases[1].Actual)

	// Worst case over all runs, memory reported in bytes.
	assert.InDelta(t, 0.045, result.ExecutionTime, 1e-9)
	assert.Equal(t, int64(3456*1024), result.MemoryUsed)

	assert.Contains(t, result.Output, "Test 1: Accepted")
	assert.Contains(t, result.Output, "Test 2: Accepted")
	assert.Contains(t, result.Output, "Output: 99")
}

func TestExecuteAllPassing(t *testing.T) {
	fake := newFakeJudge0()
	fake.outcomes["4\n"] = judge0Outcome{
		Stdout: "35",
		Time:   "0.020",
		Memory: 2048,
		Status: judge0Status{ID: statusAccepted, Description: "Accepted"},
	}
	client := newTestJudge0(t, fake, nil)

	task := sampleTask("t1")
	result := client.Execute(context.Background(), task)

	assert.Equal(t, VerdictSuccess, result.Status)
	assert.Equal(t, 1, result.Passed)
	assert.Equal(t, 1, result.Total)
	assert.Empty(t, result.Error)
	assert.Equal(t, 0, result.ExitCode)
}

func TestExecutePollsUntilTerminal(t *testing.T) {
	fake := newFakeJudge0()
	fake.pendingPer = 3
	client := newTestJudge0(t, fake, nil)

	result := client.Execute(context.Background(), sampleTask("t1"))

	assert.Equal(t, VerdictError, result.Status) // default fake stdout "" != "35"
	require.Len(t, result.Cases, 1)
	assert.Equal(t, statusAccepted, result.Cases[0].StatusID)
}

func TestExecuteBareMapsTimeout(t *testing.T) {
	fake := newFakeJudge0()
	fake.outcomes[""] = judge0Outcome{
		Time:   "1.001",
		Status: judge0Status{ID: statusTimeLimit, Description: "Time Limit Exceeded"},
	}
	client := newTestJudge0(t, fake, nil)

	task := sampleTask("t1")
	task.TestCases = nil
	result := client.Execute(context.Background(), task)

	assert.Equal(t, VerdictTimeout, result.Status)
	assert.Equal(t, "time limit exceeded", result.Error)
	assert.Equal(t, 1, result.ExitCode)
}

func TestExecuteBareMapsCompileError(t *testing.T) {
	fake := newFakeJudge0()
	fake.outcomes[""] = judge0Outcome{
		CompileOutput: "SyntaxError: invalid syntax",
		Status:        judge0Status{ID: statusCompileError, Description: "Compilation Error"},
	}
	client := newTestJudge0(t, fake, nil)

	task := sampleTask("t1")
	task.TestCases = nil
	result := client.Execute(context.Background(), task)

	assert.Equal(t, VerdictError, result.Status)
	assert.Contains(t, result.Error, "SyntaxError")
}

func TestExecuteSandboxUnreachable(t *testing.T) {
	client, err := NewJudge0Client(Judge0Config{
		BaseURL:     "http://127.0.0.1:1",
		HTTPTimeout: 100 * time.Millisecond,
	})
	require.NoError(t, err)

	result := client.Execute(context.Background(), sampleTask("t1"))

	// The case is recorded as a sandbox error, not silently dropped.
	assert.Equal(t, VerdictError, result.Status)
	assert.Equal(t, 0, result.Passed)
	assert.Equal(t, 1, result.Total)
	require.Len(t, result.Cases, 1)
	assert.Contains(t, result.Cases[0].Status, "Sandbox error")
}

func TestSubmitPayloadAndSelfHostedAuth(t *testing.T) {
	fake := newFakeJudge0()
	client := newTestJudge0(t, fake, func(cfg *Judge0Config) {
		cfg.APIKey = "secret"
	})

	_ = client.Execute(context.Background(), sampleTask("t1"))

	fake.mu.Lock()
	defer fake.mu.Unlock()
	require.Len(t, fake.submissions, 1)
	for _, sub := range fake.submissions {
		assert.Equal(t, 71, sub.LanguageID)
		assert.Equal(t, "4\n", sub.Stdin)
		assert.Equal(t, "35", sub.ExpectedOutput)
		assert.InDelta(t, 1.0, sub.CPUTimeLimit, 1e-9)
		assert.Equal(t, 131072, sub.MemoryLimit)
	}
	assert.Equal(t, "secret", fake.lastHeaders.Get("X-Auth-Token"))
	assert.Empty(t, fake.lastHeaders.Get("x-rapidapi-key"))
}

func TestRapidAPIAuthHeaders(t *testing.T) {
	fake := newFakeJudge0()
	client := newTestJudge0(t, fake, func(cfg *Judge0Config) {
		cfg.APIKey = "rapid-secret"
		cfg.UseRapidAPI = true
		cfg.RapidAPIHost = "judge0-ce.p.rapidapi.com"
	})

	_ = client.Execute(context.Background(), sampleTask("t1"))

	fake.mu.Lock()
	defer fake.mu.Unlock()
	assert.Equal(t, "rapid-secret", fake.lastHeaders.Get("x-rapidapi-key"))
	assert.Equal(t, "judge0-ce.p.rapidapi.com", fake.lastHeaders.Get("x-rapidapi-host"))
	assert.Empty(t, fake.lastHeaders.Get("X-Auth-Token"))
}

func TestBaseURLTrailingSlashTrimmed(t *testing.T) {
	client, err := NewJudge0Client(Judge0Config{BaseURL: "http://judge0.local/"})
	require.NoError(t, err)
	assert.False(t, strings.HasSuffix(client.cfg.BaseURL, "/"))
}
