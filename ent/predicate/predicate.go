// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ProblemSpec is the predicate function for problemspec builders.
type ProblemSpec func(*sql.Selector)

// PromptEvaluation is the predicate function for promptevaluation builders.
type PromptEvaluation func(*sql.Selector)

// PromptMessage is the predicate function for promptmessage builders.
type PromptMessage func(*sql.Selector)

// PromptSession is the predicate function for promptsession builders.
type PromptSession func(*sql.Selector)

// Score is the predicate function for score builders.
type Score func(*sql.Selector)

// Submission is the predicate function for submission builders.
type Submission func(*sql.Selector)

// SubmissionRun is the predicate function for submissionrun builders.
type SubmissionRun func(*sql.Selector)
