package models

import "strings"

// Pipeline is the read-only projection of a SQL pipeline returned by the API
type Pipeline struct {
	SqlPipelineURI string        `json:"sqlPipelineUri" yaml:"uri"`
	Name           string        `json:"name,omitempty" yaml:"name,omitempty"`
	Label          string        `json:"label" yaml:"label"`
	Description    string        `json:"description,omitempty" yaml:"description,omitempty"`
	Owner          string        `json:"owner,omitempty" yaml:"owner,omitempty"`
	SamlGroupName  string        `json:"SamlGroupName,omitempty" yaml:"team,omitempty"`
	Repo           string        `json:"repo,omitempty" yaml:"repo,omitempty"`
	DevStrategy    string        `json:"devStrategy,omitempty" yaml:"dev_strategy,omitempty"`
	Created        string        `json:"created,omitempty" yaml:"created,omitempty"`
	Tags           []string      `json:"tags,omitempty" yaml:"tags,omitempty"`
	Environment    *Environment  `json:"environment,omitempty" yaml:"environment,omitempty"`
	Organization   *Organization `json:"organization,omitempty" yaml:"organization,omitempty"`
	Stack          *Stack        `json:"stack,omitempty" yaml:"stack,omitempty"`
}

// StackAvailable reports whether the pipeline carries both the environment
// and stack references needed to look up its deployment stack.
func (p *Pipeline) StackAvailable() bool {
	if p == nil || p.Environment == nil || p.Stack == nil {
		return false
	}
	return p.Environment.EnvironmentURI != "" && p.Stack.StackURI != ""
}

// DisplayName returns the label, falling back to the name and then the URI
func (p *Pipeline) DisplayName() string {
	switch {
	case p.Label != "":
		return p.Label
	case p.Name != "":
		return p.Name
	default:
		return p.SqlPipelineURI
	}
}

type Environment struct {
	EnvironmentURI string `json:"environmentUri" yaml:"uri"`
	Label          string `json:"label,omitempty" yaml:"label,omitempty"`
	AwsAccountID   string `json:"AwsAccountId,omitempty" yaml:"aws_account_id,omitempty"`
	Region         string `json:"region,omitempty" yaml:"region,omitempty"`
}

type Organization struct {
	OrganizationURI string `json:"organizationUri" yaml:"uri"`
	Label           string `json:"label,omitempty" yaml:"label,omitempty"`
}

// Stack is the deployment unit behind a pipeline
type Stack struct {
	StackURI  string `json:"stackUri" yaml:"uri"`
	Stack     string `json:"stack,omitempty" yaml:"name,omitempty"`
	Status    string `json:"status,omitempty" yaml:"status,omitempty"`
	Link      string `json:"link,omitempty" yaml:"link,omitempty"`
	Outputs   string `json:"outputs,omitempty" yaml:"outputs,omitempty"`
	Resources string `json:"resources,omitempty" yaml:"resources,omitempty"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`
}

// InProgress reports whether the stack status is still transitioning.
// Statuses follow CloudFormation naming, e.g. CREATE_IN_PROGRESS.
func (s *Stack) InProgress() bool {
	if s == nil {
		return false
	}
	status := strings.ToUpper(s.Status)
	return status == "PENDING" || strings.HasSuffix(status, "_IN_PROGRESS")
}

// Failed reports whether the stack ended in a failed or rolled back state
func (s *Stack) Failed() bool {
	if s == nil {
		return false
	}
	status := strings.ToUpper(s.Status)
	return strings.HasSuffix(status, "_FAILED") || strings.Contains(status, "ROLLBACK_COMPLETE")
}

type KeyValueTag struct {
	TagURI  string `json:"tagUri,omitempty" yaml:"uri,omitempty"`
	Key     string `json:"key" yaml:"key"`
	Value   string `json:"value" yaml:"value"`
	Cascade bool   `json:"cascade" yaml:"cascade"`
}

// Execution is one run of a pipeline
type Execution struct {
	ExecutionArn string `json:"executionArn" yaml:"arn"`
	Status       string `json:"status" yaml:"status"`
	StartDate    string `json:"startDate,omitempty" yaml:"start_date,omitempty"`
	StopDate     string `json:"stopDate,omitempty" yaml:"stop_date,omitempty"`
}

type FeedMessage struct {
	FeedMessageURI string `json:"feedMessageUri,omitempty" yaml:"uri,omitempty"`
	Creator        string `json:"creator" yaml:"creator"`
	Content        string `json:"content" yaml:"content"`
	Created        string `json:"created" yaml:"created"`
}

// PipelineSearchResult is one page of pipelines
type PipelineSearchResult struct {
	Count   int        `json:"count" yaml:"count"`
	Page    int        `json:"page" yaml:"page"`
	Pages   int        `json:"pages" yaml:"pages"`
	HasNext bool       `json:"hasNext" yaml:"has_next"`
	HasPrev bool       `json:"hasPrevious" yaml:"has_previous"`
	Nodes   []Pipeline `json:"nodes" yaml:"nodes"`
}

// PipelineFilter narrows a pipeline search
type PipelineFilter struct {
	Term     string `json:"term,omitempty"`
	Page     int    `json:"page,omitempty"`
	PageSize int    `json:"pageSize,omitempty"`
}

// PipelineUpdate carries the editable fields of a pipeline
type PipelineUpdate struct {
	Label       string   `json:"label"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}
