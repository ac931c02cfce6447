package api

import "github.com/pluqqy/pluqqy-console/pkg/models"

// TargetTypePipeline is the target type used for pipeline tags and stacks
const TargetTypePipeline = "pipeline"

// FeedTargetPipeline is the target type used for pipeline chat threads
const FeedTargetPipeline = "SqlPipeline"

const pipelineFields = `
    sqlPipelineUri
    name
    label
    description
    owner
    SamlGroupName
    repo
    devStrategy
    created
    tags
    environment {
      environmentUri
      label
      AwsAccountId
      region
    }
    organization {
      organizationUri
      label
    }
    stack {
      stack
      status
      stackUri
      link
      outputs
      resources
      error
    }`

// GetSqlPipeline reads one pipeline. The getSqlPipeline field is null when
// the pipeline does not exist.
func GetSqlPipeline(uri string) Request {
	return Request{
		OperationName: "GetSqlPipeline",
		Query: `query GetSqlPipeline($sqlPipelineUri: String!) {
  getSqlPipeline(sqlPipelineUri: $sqlPipelineUri) {` + pipelineFields + `
  }
}`,
		Variables: map[string]any{"sqlPipelineUri": uri},
	}
}

// DeleteSqlPipeline deletes a pipeline, and its deployed stack when
// deleteFromAWS is set.
func DeleteSqlPipeline(uri string, deleteFromAWS bool) Request {
	return Request{
		OperationName: "deleteSqlPipeline",
		Query: `mutation deleteSqlPipeline($sqlPipelineUri: String!, $deleteFromAWS: Boolean) {
  deleteSqlPipeline(sqlPipelineUri: $sqlPipelineUri, deleteFromAWS: $deleteFromAWS)
}`,
		Variables: map[string]any{
			"sqlPipelineUri": uri,
			"deleteFromAWS":  deleteFromAWS,
		},
	}
}

func UpdateSqlPipeline(uri string, input models.PipelineUpdate) Request {
	return Request{
		OperationName: "UpdateSqlPipeline",
		Query: `mutation UpdateSqlPipeline($sqlPipelineUri: String!, $input: UpdateSqlPipelineInput) {
  updateSqlPipeline(sqlPipelineUri: $sqlPipelineUri, input: $input) {` + pipelineFields + `
  }
}`,
		Variables: map[string]any{
			"sqlPipelineUri": uri,
			"input":          input,
		},
	}
}

func SearchSqlPipelines(filter models.PipelineFilter) Request {
	return Request{
		OperationName: "ListSqlPipelines",
		Query: `query ListSqlPipelines($filter: SqlPipelineFilter) {
  listSqlPipelines(filter: $filter) {
    count
    page
    pages
    hasNext
    hasPrevious
    nodes {` + pipelineFields + `
    }
  }
}`,
		Variables: map[string]any{"filter": filter},
	}
}

func ListSqlPipelineExecutions(uri string) Request {
	return Request{
		OperationName: "ListSqlPipelineExecutions",
		Query: `query ListSqlPipelineExecutions($sqlPipelineUri: String!) {
  listSqlPipelineExecutions(sqlPipelineUri: $sqlPipelineUri) {
    executionArn
    status
    startDate
    stopDate
  }
}`,
		Variables: map[string]any{"sqlPipelineUri": uri},
	}
}

func ListKeyValueTags(targetURI, targetType string) Request {
	return Request{
		OperationName: "listKeyValueTags",
		Query: `query listKeyValueTags($targetUri: String!, $targetType: String!) {
  listKeyValueTags(targetUri: $targetUri, targetType: $targetType) {
    tagUri
    key
    value
    cascade
  }
}`,
		Variables: map[string]any{
			"targetUri":  targetURI,
			"targetType": targetType,
		},
	}
}

func GetStack(environmentURI, stackURI string) Request {
	return Request{
		OperationName: "getStack",
		Query: `query getStack($environmentUri: String!, $stackUri: String!) {
  getStack(environmentUri: $environmentUri, stackUri: $stackUri) {
    stack
    status
    stackUri
    link
    outputs
    resources
    error
  }
}`,
		Variables: map[string]any{
			"environmentUri": environmentURI,
			"stackUri":       stackURI,
		},
	}
}

func GetFeed(targetURI, targetType string) Request {
	return Request{
		OperationName: "GetFeed",
		Query: `query GetFeed($targetUri: String!, $targetType: String!) {
  getFeed(targetUri: $targetUri, targetType: $targetType) {
    messages {
      nodes {
        feedMessageUri
        creator
        content
        created
      }
    }
  }
}`,
		Variables: map[string]any{
			"targetUri":  targetURI,
			"targetType": targetType,
		},
	}
}

func PostFeedMessage(targetURI, targetType, content string) Request {
	return Request{
		OperationName: "PostFeedMessage",
		Query: `mutation PostFeedMessage($targetUri: String!, $targetType: String!, $input: FeedMessageInput!) {
  postFeedMessage(targetUri: $targetUri, targetType: $targetType, input: $input) {
    feedMessageUri
    creator
    content
    created
  }
}`,
		Variables: map[string]any{
			"targetUri":  targetURI,
			"targetType": targetType,
			"input":      map[string]any{"content": content},
		},
	}
}
