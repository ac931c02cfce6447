package api

import (
	"context"
	"errors"

	"github.com/pluqqy/pluqqy-console/pkg/models"
)

// Service turns Client envelopes into models and typed errors
type Service struct {
	client Client
}

func NewService(client Client) *Service {
	return &Service{client: client}
}

// Client returns the underlying remote data client
func (s *Service) Client() Client {
	return s.client
}

// GetPipeline fetches one pipeline. A null payload yields a NotFoundError
// whose message is "Pipeline not found".
func (s *Service) GetPipeline(ctx context.Context, uri string) (*models.Pipeline, error) {
	var data struct {
		GetSqlPipeline *models.Pipeline `json:"getSqlPipeline"`
	}
	if err := s.query(ctx, GetSqlPipeline(uri), &data); err != nil {
		return nil, err
	}
	if data.GetSqlPipeline == nil {
		return nil, &NotFoundError{Kind: "Pipeline"}
	}
	return data.GetSqlPipeline, nil
}

// DeletePipeline deletes a pipeline. Success is the absence of errors.
func (s *Service) DeletePipeline(ctx context.Context, uri string, deleteFromAWS bool) error {
	resp, err := s.client.Mutate(ctx, DeleteSqlPipeline(uri, deleteFromAWS))
	if err != nil {
		return err
	}
	return resp.Err()
}

func (s *Service) UpdatePipeline(ctx context.Context, uri string, input models.PipelineUpdate) (*models.Pipeline, error) {
	var data struct {
		UpdateSqlPipeline *models.Pipeline `json:"updateSqlPipeline"`
	}
	if err := s.mutate(ctx, UpdateSqlPipeline(uri, input), &data); err != nil {
		return nil, err
	}
	if data.UpdateSqlPipeline == nil {
		return nil, &NotFoundError{Kind: "Pipeline"}
	}
	return data.UpdateSqlPipeline, nil
}

func (s *Service) SearchPipelines(ctx context.Context, filter models.PipelineFilter) (*models.PipelineSearchResult, error) {
	var data struct {
		ListSqlPipelines *models.PipelineSearchResult `json:"listSqlPipelines"`
	}
	if err := s.query(ctx, SearchSqlPipelines(filter), &data); err != nil {
		return nil, err
	}
	if data.ListSqlPipelines == nil {
		return &models.PipelineSearchResult{}, nil
	}
	return data.ListSqlPipelines, nil
}

func (s *Service) ListExecutions(ctx context.Context, uri string) ([]models.Execution, error) {
	var data struct {
		ListSqlPipelineExecutions []models.Execution `json:"listSqlPipelineExecutions"`
	}
	if err := s.query(ctx, ListSqlPipelineExecutions(uri), &data); err != nil {
		return nil, err
	}
	return data.ListSqlPipelineExecutions, nil
}

func (s *Service) ListTags(ctx context.Context, targetURI, targetType string) ([]models.KeyValueTag, error) {
	var data struct {
		ListKeyValueTags []models.KeyValueTag `json:"listKeyValueTags"`
	}
	if err := s.query(ctx, ListKeyValueTags(targetURI, targetType), &data); err != nil {
		return nil, err
	}
	return data.ListKeyValueTags, nil
}

func (s *Service) GetStack(ctx context.Context, environmentURI, stackURI string) (*models.Stack, error) {
	if environmentURI == "" || stackURI == "" {
		return nil, errors.New("stack lookup needs both environment and stack references")
	}
	var data struct {
		GetStack *models.Stack `json:"getStack"`
	}
	if err := s.query(ctx, GetStack(environmentURI, stackURI), &data); err != nil {
		return nil, err
	}
	if data.GetStack == nil {
		return nil, &NotFoundError{Kind: "Stack"}
	}
	return data.GetStack, nil
}

func (s *Service) GetFeed(ctx context.Context, targetURI, targetType string) ([]models.FeedMessage, error) {
	var data struct {
		GetFeed *struct {
			Messages struct {
				Nodes []models.FeedMessage `json:"nodes"`
			} `json:"messages"`
		} `json:"getFeed"`
	}
	if err := s.query(ctx, GetFeed(targetURI, targetType), &data); err != nil {
		return nil, err
	}
	if data.GetFeed == nil {
		return nil, nil
	}
	return data.GetFeed.Messages.Nodes, nil
}

func (s *Service) PostFeedMessage(ctx context.Context, targetURI, targetType, content string) (*models.FeedMessage, error) {
	var data struct {
		PostFeedMessage *models.FeedMessage `json:"postFeedMessage"`
	}
	if err := s.mutate(ctx, PostFeedMessage(targetURI, targetType, content), &data); err != nil {
		return nil, err
	}
	if data.PostFeedMessage == nil {
		return nil, errors.New("feed message was not stored")
	}
	return data.PostFeedMessage, nil
}

func (s *Service) query(ctx context.Context, req Request, into any) error {
	resp, err := s.client.Query(ctx, req)
	return decode(resp, err, into)
}

func (s *Service) mutate(ctx context.Context, req Request, into any) error {
	resp, err := s.client.Mutate(ctx, req)
	return decode(resp, err, into)
}

func decode(resp *Response, err error, into any) error {
	if err != nil {
		return err
	}
	if err := resp.Err(); err != nil {
		return err
	}
	return resp.Decode(into)
}
