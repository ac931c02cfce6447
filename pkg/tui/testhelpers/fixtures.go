package testhelpers

import (
	"github.com/pluqqy/pluqqy-console/pkg/api"
	"github.com/pluqqy/pluqqy-console/pkg/models"
)

const (
	SamplePipelineURI    = "pipe-123"
	SamplePipelineLabel  = "ETL Job"
	SampleEnvironmentURI = "env-1"
	SampleStackURI       = "stack-1"
	SampleOwner          = "alice"
)

// Operation names as sent by the request builders
var (
	OpGetPipeline    = api.GetSqlPipeline("").OperationName
	OpDeletePipeline = api.DeleteSqlPipeline("", false).OperationName
	OpUpdatePipeline = api.UpdateSqlPipeline("", models.PipelineUpdate{}).OperationName
	OpSearch         = api.SearchSqlPipelines(models.PipelineFilter{}).OperationName
	OpExecutions     = api.ListSqlPipelineExecutions("").OperationName
	OpTags           = api.ListKeyValueTags("", "").OperationName
	OpStack          = api.GetStack("", "").OperationName
	OpFeed           = api.GetFeed("", "").OperationName
	OpPostFeed       = api.PostFeedMessage("", "", "").OperationName
)

// SamplePipeline is pipe-123 with environment and stack references
func SamplePipeline() *models.Pipeline {
	return NewPipelineBuilder(SamplePipelineURI).
		WithName("etl_job").
		WithLabel(SamplePipelineLabel).
		WithOwner(SampleOwner).
		WithDescription("Loads raw events into the warehouse").
		WithTags("etl", "daily").
		WithEnvironment(SampleEnvironmentURI).
		WithStack(SampleStackURI, "CREATE_COMPLETE").
		Build()
}

// PipelinePayload wraps p as a getSqlPipeline result. A nil p is a null payload.
func PipelinePayload(p *models.Pipeline) map[string]any {
	return map[string]any{"getSqlPipeline": p}
}

func UpdatePayload(p *models.Pipeline) map[string]any {
	return map[string]any{"updateSqlPipeline": p}
}

func DeletePayload() map[string]any {
	return map[string]any{"deleteSqlPipeline": true}
}

func SearchPayload(page, pages int, nodes ...models.Pipeline) map[string]any {
	return map[string]any{"listSqlPipelines": models.PipelineSearchResult{
		Count:   len(nodes),
		Page:    page,
		Pages:   pages,
		HasNext: page < pages,
		HasPrev: page > 1,
		Nodes:   nodes,
	}}
}

func ExecutionsPayload(runs ...models.Execution) map[string]any {
	return map[string]any{"listSqlPipelineExecutions": runs}
}

func TagsPayload(tags ...models.KeyValueTag) map[string]any {
	return map[string]any{"listKeyValueTags": tags}
}

func StackPayload(stack *models.Stack) map[string]any {
	return map[string]any{"getStack": stack}
}

func FeedPayload(messages ...models.FeedMessage) map[string]any {
	return map[string]any{"getFeed": map[string]any{
		"messages": map[string]any{"nodes": messages},
	}}
}

func FeedPostPayload(message models.FeedMessage) map[string]any {
	return map[string]any{"postFeedMessage": message}
}

// SearchRequestFilter is the first page of an unfiltered search
func SearchRequestFilter() models.PipelineFilter {
	return models.PipelineFilter{Page: 1, PageSize: 20}
}
