package testhelpers

import (
	"github.com/pluqqy/pluqqy-console/pkg/models"
)

// PipelineBuilder builds pipelines for tests
type PipelineBuilder struct {
	p models.Pipeline
}

// NewPipelineBuilder starts a pipeline with the given URI and a label equal to it
func NewPipelineBuilder(uri string) *PipelineBuilder {
	return &PipelineBuilder{p: models.Pipeline{
		SqlPipelineURI: uri,
		Name:           uri,
		Label:          uri,
		Tags:           []string{},
	}}
}

func (b *PipelineBuilder) WithLabel(label string) *PipelineBuilder {
	b.p.Label = label
	return b
}

func (b *PipelineBuilder) WithName(name string) *PipelineBuilder {
	b.p.Name = name
	return b
}

func (b *PipelineBuilder) WithOwner(owner string) *PipelineBuilder {
	b.p.Owner = owner
	return b
}

func (b *PipelineBuilder) WithDescription(description string) *PipelineBuilder {
	b.p.Description = description
	return b
}

func (b *PipelineBuilder) WithTags(tags ...string) *PipelineBuilder {
	b.p.Tags = tags
	return b
}

// WithEnvironment attaches an environment reference
func (b *PipelineBuilder) WithEnvironment(environmentURI string) *PipelineBuilder {
	b.p.Environment = &models.Environment{
		EnvironmentURI: environmentURI,
		Label:          "Dev",
		AwsAccountID:   "111122223333",
		Region:         "eu-west-1",
	}
	return b
}

// WithStack attaches a stack reference in the given status
func (b *PipelineBuilder) WithStack(stackURI, status string) *PipelineBuilder {
	b.p.Stack = &models.Stack{StackURI: stackURI, Stack: "pipeline-" + b.p.Name, Status: status}
	return b
}

func (b *PipelineBuilder) Build() *models.Pipeline {
	p := b.p
	return &p
}
