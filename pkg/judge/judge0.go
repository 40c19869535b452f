package judge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Judge0 submission status ids. 1 and 2 are in-flight; 3 is accepted;
// everything from 4 up is some flavor of failure.
const (
	statusInQueue      = 1
	statusProcessing   = 2
	statusAccepted     = 3
	statusWrongAnswer  = 4
	statusTimeLimit    = 5
	statusCompileError = 6
)

// languageIDs maps our language names to Judge0 language ids.
var languageIDs = map[string]int{
	"python":     71,
	"python3":    71,
	"java":       62,
	"cpp":        54,
	"c++":        54,
	"c":          50,
	"javascript": 63,
	"nodejs":     63,
	"go":         60,
	"rust":       73,
}

// LanguageID resolves a language name to its Judge0 id, defaulting to
// Python 3 for unknown names.
func LanguageID(language string) int {
	if id, ok := languageIDs[strings.ToLower(language)]; ok {
		return id
	}
	return 71
}

// Judge0Config holds sandbox connection settings. RapidAPI-hosted instances
// authenticate with different headers than self-hosted ones.
type Judge0Config struct {
	BaseURL      string        `yaml:"base_url"`
	APIKey       string        `yaml:"api_key"`
	UseRapidAPI  bool          `yaml:"use_rapidapi"`
	RapidAPIHost string        `yaml:"rapidapi_host"`
	HTTPTimeout  time.Duration `yaml:"http_timeout"`
	PollInterval time.Duration `yaml:"poll_interval"`
	MaxWait      time.Duration `yaml:"max_wait"`
}

// Judge0Client submits code to a Judge0 sandbox and polls for outcomes.
// It implements Executor.
type Judge0Client struct {
	cfg        Judge0Config
	httpClient *http.Client
	logger     *slog.Logger
}

// NewJudge0Client creates a sandbox client. BaseURL is required.
func NewJudge0Client(cfg Judge0Config) (*Judge0Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("judge0 base URL is required")
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 500 * time.Millisecond
	}
	if cfg.MaxWait <= 0 {
		cfg.MaxWait = 30 * time.Second
	}
	return &Judge0Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		logger:     slog.Default().With("component", "judge0"),
	}, nil
}

type judge0Submission struct {
	SourceCode     string  `json:"source_code"`
	LanguageID     int     `json:"language_id"`
	Stdin          string  `json:"stdin"`
	ExpectedOutput string  `json:"expected_output,omitempty"`
	CPUTimeLimit   float64 `json:"cpu_time_limit,omitempty"`
	MemoryLimit    int     `json:"memory_limit,omitempty"` // kilobytes
}

type judge0Status struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
}

type judge0Outcome struct {
	Token         string       `json:"token"`
	Stdout        string       `json:"stdout"`
	Stderr        string       `json:"stderr"`
	CompileOutput string       `json:"compile_output"`
	Message       string       `json:"message"`
	Time          string       `json:"time"`   // seconds, decimal string
	Memory        int          `json:"memory"` // kilobytes
	Status        judge0Status `json:"status"`
}

func (o *judge0Outcome) timeSeconds() float64 {
	t, err := strconv.ParseFloat(o.Time, 64)
	if err != nil {
		return 0
	}
	return t
}

func (c *Judge0Client) setAuthHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.UseRapidAPI {
		if c.cfg.APIKey != "" {
			req.Header.Set("x-rapidapi-key", c.cfg.APIKey)
		}
		req.Header.Set("x-rapidapi-host", c.cfg.RapidAPIHost)
		return
	}
	if c.cfg.APIKey != "" {
		req.Header.Set("X-Auth-Token", c.cfg.APIKey)
	}
}

// submit posts one submission and returns its token.
func (c *Judge0Client) submit(ctx context.Context, sub judge0Submission) (string, error) {
	body, err := json.Marshal(sub)
	if err != nil {
		return "", fmt.Errorf("marshal submission: %w", err)
	}

	url := c.cfg.BaseURL + "/submissions?base64_encoded=false&wait=false"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	c.setAuthHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("submit code: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		payload, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("judge0 returned HTTP %d: %s", resp.StatusCode, string(payload))
	}

	var out judge0Outcome
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode submit response: %w", err)
	}
	if out.Token == "" {
		return "", fmt.Errorf("judge0 response carried no token")
	}
	return out.Token, nil
}

// fetch reads the current outcome for a token.
func (c *Judge0Client) fetch(ctx context.Context, token string) (*judge0Outcome, error) {
	url := c.cfg.BaseURL + "/submissions/" + token + "?base64_encoded=false"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	c.setAuthHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch outcome for %s: %w", token, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("judge0 returned HTTP %d for token %s", resp.StatusCode, token)
	}

	var out judge0Outcome
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode outcome: %w", err)
	}
	return &out, nil
}

// waitForOutcome polls a token until it leaves the in-flight states or the
// wait cap passes. A capped wait returns the last outcome seen, letting the
// caller classify the still-processing status.
func (c *Judge0Client) waitForOutcome(ctx context.Context, token string) (*judge0Outcome, error) {
	deadline := time.Now().Add(c.cfg.MaxWait)
	for {
		out, err := c.fetch(ctx, token)
		if err != nil {
			return nil, err
		}
		if out.Status.ID != statusInQueue && out.Status.ID != statusProcessing {
			return out, nil
		}
		if time.Now().After(deadline) {
			c.logger.Warn("outcome wait capped", "token", token, "status_id", out.Status.ID)
			return out, nil
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.cfg.PollInterval):
		}
	}
}

// runOne executes the code once with the given stdin and waits for the outcome.
func (c *Judge0Client) runOne(ctx context.Context, task *Task, stdin, expected string) (*judge0Outcome, error) {
	token, err := c.submit(ctx, judge0Submission{
		SourceCode:     task.Code,
		LanguageID:     LanguageID(task.Language),
		Stdin:          stdin,
		ExpectedOutput: expected,
		CPUTimeLimit:   task.CPUTimeLimit,
		MemoryLimit:    task.MemoryLimitKB,
	})
	if err != nil {
		return nil, err
	}
	return c.waitForOutcome(ctx, token)
}

// Execute runs the task against all its test cases and aggregates the result.
// It never returns nil: every failure mode is folded into the Result so the
// waiting evaluator always gets an answer.
func (c *Judge0Client) Execute(ctx context.Context, task *Task) *Result {
	if len(task.TestCases) == 0 {
		return c.executeBare(ctx, task)
	}

	result := &Result{
		TaskID: task.TaskID,
		Total:  len(task.TestCases),
	}
	var output strings.Builder
	var firstFailure string

	for i, tc := range task.TestCases {
		caseResult := CaseResult{
			Index:    i,
			Input:    tc.Input,
			Expected: tc.Expected,
		}

		out, err := c.runOne(ctx, task, tc.Input, tc.Expected)
		if err != nil {
			caseResult.Status = "Sandbox error: " + err.Error()
			caseResult.Stderr = err.Error()
			result.Cases = append(result.Cases, caseResult)
			fmt.Fprintf(&output, "Test %d: sandbox error\n", i+1)
			if firstFailure == "" {
				firstFailure = err.Error()
			}
			continue
		}

		actual := strings.TrimSpace(out.Stdout)
		caseResult.Actual = actual
		caseResult.StatusID = out.Status.ID
		caseResult.Status = out.Status.Description
		caseResult.TimeSec = out.timeSeconds()
		caseResult.MemoryKB = out.Memory
		caseResult.Stderr = out.Stderr
		caseResult.Passed = out.Status.ID == statusAccepted && actual == strings.TrimSpace(tc.Expected)

		if caseResult.Passed {
			result.Passed++
		} else if firstFailure == "" {
			firstFailure = out.Status.Description
			if out.Status.ID == statusCompileError && out.CompileOutput != "" {
				firstFailure = out.CompileOutput
			}
		}
		if caseResult.TimeSec > result.ExecutionTime {
			result.ExecutionTime = caseResult.TimeSec
		}
		if mem := int64(out.Memory) * 1024; mem > result.MemoryUsed {
			result.MemoryUsed = mem
		}
		result.Cases = append(result.Cases, caseResult)

		fmt.Fprintf(&output, "Test %d: %s\n", i+1, out.Status.Description)
		if actual != "" {
			fmt.Fprintf(&output, "  Output: %s\n", actual)
		}
		if out.Stderr != "" {
			fmt.Fprintf(&output, "  Error: %s\n", out.Stderr)
		}
	}

	result.Output = strings.TrimRight(output.String(), "\n")
	if result.Passed == result.Total {
		result.Status = VerdictSuccess
	} else {
		result.Status = VerdictError
		result.Error = fmt.Sprintf("%d/%d tests failed: %s", result.Total-result.Passed, result.Total, firstFailure)
		result.ExitCode = 1
	}
	return result
}

// executeBare runs the code once with empty stdin when the problem carries no
// test cases, reporting only that it ran.
func (c *Judge0Client) executeBare(ctx context.Context, task *Task) *Result {
	out, err := c.runOne(ctx, task, "", "")
	if err != nil {
		return ErrorResult(task.TaskID, err)
	}

	result := &Result{
		TaskID:        task.TaskID,
		Output:        out.Stdout,
		ExecutionTime: out.timeSeconds(),
		MemoryUsed:    int64(out.Memory) * 1024,
	}
	switch out.Status.ID {
	case statusAccepted:
		result.Status = VerdictSuccess
	case statusTimeLimit:
		result.Status = VerdictTimeout
		result.Error = "time limit exceeded"
		result.ExitCode = 1
	case statusCompileError:
		result.Status = VerdictError
		result.Error = out.CompileOutput
		result.ExitCode = 1
	default:
		result.Status = VerdictError
		result.Error = out.Stderr
		if result.Error == "" {
			result.Error = out.Status.Description
		}
		result.ExitCode = 1
	}
	return result
}
