// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ProblemSpecsColumns holds the columns for the "problem_specs" table.
	ProblemSpecsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "spec_id", Type: field.TypeInt, Unique: true},
		{Name: "context", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProblemSpecsTable holds the schema information for the "problem_specs" table.
	ProblemSpecsTable = &schema.Table{
		Name:       "problem_specs",
		Columns:    ProblemSpecsColumns,
		PrimaryKey: []*schema.Column{ProblemSpecsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "problemspec_spec_id",
				Unique:  true,
				Columns: []*schema.Column{ProblemSpecsColumns[1]},
			},
		},
	}
	// PromptEvaluationsColumns holds the columns for the "prompt_evaluations" table.
	PromptEvaluationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "turn", Type: field.TypeInt, Nullable: true},
		{Name: "evaluation_type", Type: field.TypeEnum, Enums: []string{"TURN_EVAL", "HOLISTIC_FLOW", "HOLISTIC_PERFORMANCE"}},
		{Name: "node_name", Type: field.TypeString, Nullable: true},
		{Name: "score", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(5,2)"}},
		{Name: "analysis", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeInt},
	}
	// PromptEvaluationsTable holds the schema information for the "prompt_evaluations" table.
	PromptEvaluationsTable = &schema.Table{
		Name:       "prompt_evaluations",
		Columns:    PromptEvaluationsColumns,
		PrimaryKey: []*schema.Column{PromptEvaluationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "prompt_evaluations_prompt_sessions_evaluations",
				Columns:    []*schema.Column{PromptEvaluationsColumns[8]},
				RefColumns: []*schema.Column{PromptSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "promptevaluation_session_id_evaluation_type",
				Unique:  false,
				Columns: []*schema.Column{PromptEvaluationsColumns[8], PromptEvaluationsColumns[2]},
			},
			{
				Name:    "promptevaluation_session_id_turn_evaluation_type",
				Unique:  true,
				Columns: []*schema.Column{PromptEvaluationsColumns[8], PromptEvaluationsColumns[1], PromptEvaluationsColumns[2]},
			},
		},
	}
	// PromptMessagesColumns holds the columns for the "prompt_messages" table.
	PromptMessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "turn", Type: field.TypeInt},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "ai"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "token_count", Type: field.TypeInt, Default: 0},
		{Name: "meta", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeInt},
	}
	// PromptMessagesTable holds the schema information for the "prompt_messages" table.
	PromptMessagesTable = &schema.Table{
		Name:       "prompt_messages",
		Columns:    PromptMessagesColumns,
		PrimaryKey: []*schema.Column{PromptMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "prompt_messages_prompt_sessions_messages",
				Columns:    []*schema.Column{PromptMessagesColumns[7]},
				RefColumns: []*schema.Column{PromptSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "promptmessage_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{PromptMessagesColumns[7], PromptMessagesColumns[6]},
			},
			{
				Name:    "promptmessage_session_id_turn_role",
				Unique:  true,
				Columns: []*schema.Column{PromptMessagesColumns[7], PromptMessagesColumns[1], PromptMessagesColumns[2]},
			},
		},
	}
	// PromptSessionsColumns holds the columns for the "prompt_sessions" table.
	PromptSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "exam_id", Type: field.TypeInt},
		{Name: "participant_id", Type: field.TypeInt},
		{Name: "spec_id", Type: field.TypeInt},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "total_tokens", Type: field.TypeInt, Default: 0},
	}
	// PromptSessionsTable holds the schema information for the "prompt_sessions" table.
	PromptSessionsTable = &schema.Table{
		Name:       "prompt_sessions",
		Columns:    PromptSessionsColumns,
		PrimaryKey: []*schema.Column{PromptSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "promptsession_exam_id_participant_id",
				Unique:  false,
				Columns: []*schema.Column{PromptSessionsColumns[1], PromptSessionsColumns[2]},
			},
			{
				Name:    "promptsession_started_at",
				Unique:  false,
				Columns: []*schema.Column{PromptSessionsColumns[4]},
			},
			{
				Name:    "promptsession_exam_id_participant_id_open",
				Unique:  true,
				Columns: []*schema.Column{PromptSessionsColumns[1], PromptSessionsColumns[2]},
				Annotation: &entsql.IndexAnnotation{
					Where: "ended_at IS NULL",
				},
			},
		},
	}
	// ScoresColumns holds the columns for the "scores" table.
	ScoresColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeInt},
		{Name: "prompt_score", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(5,2)"}},
		{Name: "performance_score", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(5,2)"}},
		{Name: "correctness_score", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(5,2)"}},
		{Name: "total_score", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(5,2)"}},
		{Name: "grade", Type: field.TypeString, Size: 2},
		{Name: "rubric", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "submission_id", Type: field.TypeInt, Unique: true},
	}
	// ScoresTable holds the schema information for the "scores" table.
	ScoresTable = &schema.Table{
		Name:       "scores",
		Columns:    ScoresColumns,
		PrimaryKey: []*schema.Column{ScoresColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "scores_submissions_score",
				Columns:    []*schema.Column{ScoresColumns[9]},
				RefColumns: []*schema.Column{SubmissionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "score_submission_id",
				Unique:  true,
				Columns: []*schema.Column{ScoresColumns[9]},
			},
			{
				Name:    "score_session_id",
				Unique:  false,
				Columns: []*schema.Column{ScoresColumns[1]},
			},
		},
	}
	// SubmissionsColumns holds the columns for the "submissions" table.
	SubmissionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "exam_id", Type: field.TypeInt},
		{Name: "participant_id", Type: field.TypeInt},
		{Name: "spec_id", Type: field.TypeInt},
		{Name: "code", Type: field.TypeString, Size: 2147483647},
		{Name: "language", Type: field.TypeString, Default: "python"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "evaluating", "completed", "failed"}, Default: "pending"},
		{Name: "task_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "session_id", Type: field.TypeInt},
	}
	// SubmissionsTable holds the schema information for the "submissions" table.
	SubmissionsTable = &schema.Table{
		Name:       "submissions",
		Columns:    SubmissionsColumns,
		PrimaryKey: []*schema.Column{SubmissionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "submissions_prompt_sessions_submissions",
				Columns:    []*schema.Column{SubmissionsColumns[10]},
				RefColumns: []*schema.Column{PromptSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "submission_exam_id_participant_id_spec_id",
				Unique:  false,
				Columns: []*schema.Column{SubmissionsColumns[1], SubmissionsColumns[2], SubmissionsColumns[3]},
			},
			{
				Name:    "submission_session_id",
				Unique:  false,
				Columns: []*schema.Column{SubmissionsColumns[10]},
			},
			{
				Name:    "submission_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{SubmissionsColumns[6], SubmissionsColumns[8]},
			},
		},
	}
	// SubmissionRunsColumns holds the columns for the "submission_runs" table.
	SubmissionRunsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "case_index", Type: field.TypeInt},
		{Name: "verdict", Type: field.TypeEnum, Enums: []string{"success", "timeout", "error", "memory_limit"}},
		{Name: "passed", Type: field.TypeBool, Default: false},
		{Name: "output", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "stderr", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "execution_time", Type: field.TypeFloat64, Default: 0},
		{Name: "memory_kb", Type: field.TypeInt, Default: 0},
		{Name: "exit_code", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "submission_id", Type: field.TypeInt},
	}
	// SubmissionRunsTable holds the schema information for the "submission_runs" table.
	SubmissionRunsTable = &schema.Table{
		Name:       "submission_runs",
		Columns:    SubmissionRunsColumns,
		PrimaryKey: []*schema.Column{SubmissionRunsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "submission_runs_submissions_runs",
				Columns:    []*schema.Column{SubmissionRunsColumns[10]},
				RefColumns: []*schema.Column{SubmissionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "submissionrun_submission_id_case_index",
				Unique:  true,
				Columns: []*schema.Column{SubmissionRunsColumns[10], SubmissionRunsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ProblemSpecsTable,
		PromptEvaluationsTable,
		PromptMessagesTable,
		PromptSessionsTable,
		ScoresTable,
		SubmissionsTable,
		SubmissionRunsTable,
	}
)

func init() {
	PromptEvaluationsTable.ForeignKeys[0].RefTable = PromptSessionsTable
	PromptMessagesTable.ForeignKeys[0].RefTable = PromptSessionsTable
	ScoresTable.ForeignKeys[0].RefTable = SubmissionsTable
	SubmissionsTable.ForeignKeys[0].RefTable = PromptSessionsTable
	SubmissionRunsTable.ForeignKeys[0].RefTable = SubmissionsTable
}
