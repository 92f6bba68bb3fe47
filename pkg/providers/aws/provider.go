package awsprovider

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/AWSToolbox/get-aws-regions-package/pkg/providers/aws/interfaces"
)

// AWSProvider holds the loaded AWS configuration and the service clients the
// region listing operations issue calls through. Clients sit behind interfaces
// so tests can inject mocks.
type AWSProvider struct {
	Config    *aws.Config
	Profile   string
	EC2Client interfaces.EC2Clienter
	SSMClient interfaces.SSMClienter
	STSClient interfaces.STSClienter
}

// Option configures an AWSProvider before its AWS config is loaded.
type Option func(*AWSProvider)

// WithProfile selects a named shared-config profile instead of the default
// credential chain.
func WithProfile(profile string) Option {
	return func(p *AWSProvider) {
		p.Profile = profile
	}
}

var NewAWSProviderFunc = NewAWSProvider

// NewAWSProvider creates a new AWS provider instance. Credentials come from
// the default chain, or from the named profile when WithProfile is used.
func NewAWSProvider(ctx context.Context, opts ...Option) (*AWSProvider, error) {
	provider := &AWSProvider{}
	for _, opt := range opts {
		opt(provider)
	}

	var loadOpts []func(*awsconfig.LoadOptions) error
	if provider.Profile != "" {
		loadOpts = append(loadOpts, awsconfig.WithSharedConfigProfile(provider.Profile))
	}

	// Load default AWS config - region comes from the environment or profile
	awsConfig, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	provider.Config = &awsConfig
	provider.EC2Client = ec2.NewFromConfig(awsConfig)
	provider.SSMClient = ssm.NewFromConfig(awsConfig)
	provider.STSClient = sts.NewFromConfig(awsConfig)

	return provider, nil
}

func (p *AWSProvider) GetEC2Client() interfaces.EC2Clienter {
	return p.EC2Client
}

func (p *AWSProvider) SetEC2Client(client interfaces.EC2Clienter) {
	p.EC2Client = client
}

func (p *AWSProvider) GetSSMClient() interfaces.SSMClienter {
	return p.SSMClient
}

func (p *AWSProvider) SetSSMClient(client interfaces.SSMClienter) {
	p.SSMClient = client
}

func (p *AWSProvider) GetSTSClient() interfaces.STSClienter {
	return p.STSClient
}

func (p *AWSProvider) SetSTSClient(client interfaces.STSClienter) {
	p.STSClient = client
}
