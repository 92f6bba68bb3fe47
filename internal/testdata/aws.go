package testdata

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2_types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	ssm_types "github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// FakeDescribeRegionsOutput mirrors a typical account: legacy regions enabled
// by default, one explicit opt-in, one region the account never opted into.
func FakeDescribeRegionsOutput() *ec2.DescribeRegionsOutput {
	return &ec2.DescribeRegionsOutput{
		Regions: []ec2_types.Region{
			{
				RegionName:  aws.String("us-east-1"),
				OptInStatus: aws.String("opt-in-not-required"),
			},
			{
				RegionName:  aws.String("eu-west-2"),
				OptInStatus: aws.String("opt-in-not-required"),
			},
			{
				RegionName:  aws.String("af-south-1"),
				OptInStatus: aws.String("opted-in"),
			},
			{
				RegionName:  aws.String("ap-east-1"),
				OptInStatus: aws.String("not-opted-in"),
			},
		},
	}
}

func FakeGetParameterOutput(value string) *ssm.GetParameterOutput {
	return &ssm.GetParameterOutput{
		Parameter: &ssm_types.Parameter{
			Value: aws.String(value),
		},
	}
}

func FakeGetCallerIdentityOutput() *sts.GetCallerIdentityOutput {
	return &sts.GetCallerIdentityOutput{
		Account: aws.String("123456789012"),
		Arn:     aws.String("arn:aws:iam::123456789012:user/test"),
		UserId:  aws.String("AIDAEXAMPLE"),
	}
}
