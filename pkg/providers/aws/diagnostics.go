package awsprovider

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/AWSToolbox/get-aws-regions-package/pkg/logger"
)

// PrintDiagnostics logs the AWS configuration the process resolved and probes
// the two services the region listing depends on. It never fails; every check
// reports its own outcome.
func (p *AWSProvider) PrintDiagnostics(ctx context.Context) error {
	l := logger.Get()
	l.Info("=== AWS Configuration Diagnostics ===")

	l.Info("Environment Variables:")
	envVars := []string{
		"AWS_PROFILE",
		"AWS_DEFAULT_PROFILE",
		"AWS_REGION",
		"AWS_DEFAULT_REGION",
		"AWS_ACCESS_KEY_ID",
		"AWS_SECRET_ACCESS_KEY",
		"AWS_SESSION_TOKEN",
		"AWS_CONFIG_FILE",
		"AWS_SHARED_CREDENTIALS_FILE",
		"AWS_ROLE_ARN",
		"AWS_WEB_IDENTITY_TOKEN_FILE",
	}

	for _, env := range envVars {
		value := os.Getenv(env)
		if value != "" {
			if strings.Contains(strings.ToLower(env), "secret") ||
				strings.Contains(strings.ToLower(env), "token") ||
				strings.Contains(strings.ToLower(env), "key") {
				value = "[REDACTED]"
			}
			l.Infof("  %s: %s", env, value)
		}
	}

	l.Info("\nProvider Configuration:")
	if p.Profile != "" {
		l.Infof("  Profile: %s", p.Profile)
	}

	l.Info("\nAWS Credentials:")
	if p.Config == nil {
		l.Error("  AWS Config is nil!")
	} else {
		l.Infof("  Region Configured: %t", p.Config.Region != "")
		creds, err := p.Config.Credentials.Retrieve(ctx)
		if err != nil {
			l.Errorf("  Failed to retrieve credentials: %v", err)
		} else {
			l.Infof("  Provider: %s", creds.Source)
			l.Infof("  Access Key ID: %s", maskString(creds.AccessKeyID))
			l.Info("  Secret Access Key: [REDACTED]")
			if creds.SessionToken != "" {
				l.Info("  Session Token: [REDACTED]")
			}
		}
	}

	l.Info("\nCaller Identity:")
	identity, err := p.STSClient.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		l.Errorf("  Failed to get caller identity: %v", err)
	} else {
		l.Infof("  Account: %s", aws.ToString(identity.Account))
		l.Infof("  UserId: %s", aws.ToString(identity.UserId))
		l.Infof("  ARN: %s", aws.ToString(identity.Arn))
	}

	l.Info("\nService Access Check:")

	_, err = p.EC2Client.DescribeRegions(ctx, &ec2.DescribeRegionsInput{
		AllRegions: aws.Bool(true),
	})
	l.Infof("  EC2 DescribeRegions Access: %v", err == nil)
	if err != nil {
		l.Errorf("    Error: %v", err)
	}

	_, err = p.SSMClient.GetParameter(ctx, &ssm.GetParameterInput{
		Name: aws.String(fmt.Sprintf(regionLongNamePath, "us-east-1")),
	})
	l.Infof("  SSM GetParameter Access: %v", err == nil)
	if err != nil {
		l.Errorf("    Error: %v", err)
	}

	l.Info("=== End of AWS Configuration Diagnostics ===\n")
	return nil
}

func maskString(s string) string {
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return s[:4] + strings.Repeat("*", len(s)-4)
}
