package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ec2"

	"ec2manager/internal/models"
)

// EC2ClientAPI defines the subset of the EC2 client the gateway needs.
// It also satisfies ec2.DescribeInstancesAPIClient, so the SDK waiters and
// paginator can run against it.
//
//go:generate mockery --name=EC2ClientAPI --output=./mocks --unroll-variadic=false
type EC2ClientAPI interface {
	DescribeSecurityGroups(ctx context.Context, params *ec2.DescribeSecurityGroupsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeSecurityGroupsOutput, error)
	CreateSecurityGroup(ctx context.Context, params *ec2.CreateSecurityGroupInput, optFns ...func(*ec2.Options)) (*ec2.CreateSecurityGroupOutput, error)
	AuthorizeSecurityGroupIngress(ctx context.Context, params *ec2.AuthorizeSecurityGroupIngressInput, optFns ...func(*ec2.Options)) (*ec2.AuthorizeSecurityGroupIngressOutput, error)
	DeleteSecurityGroup(ctx context.Context, params *ec2.DeleteSecurityGroupInput, optFns ...func(*ec2.Options)) (*ec2.DeleteSecurityGroupOutput, error)
	RunInstances(ctx context.Context, params *ec2.RunInstancesInput, optFns ...func(*ec2.Options)) (*ec2.RunInstancesOutput, error)
	DescribeInstances(ctx context.Context, params *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error)
	TerminateInstances(ctx context.Context, params *ec2.TerminateInstancesInput, optFns ...func(*ec2.Options)) (*ec2.TerminateInstancesOutput, error)
}

// GatewayAPI is the capability set the orchestrator consumes from the cloud provider.
//
//go:generate mockery --name=GatewayAPI --output=./mocks
type GatewayAPI interface {
	RuleGroupExists(ctx context.Context, name string) (bool, error)
	FindRuleGroup(ctx context.Context, name string) (*models.RuleGroupRef, error)
	CreateRuleGroup(ctx context.Context, name, description string) (models.RuleGroupRef, error)
	AuthorizeIngress(ctx context.Context, ref models.RuleGroupRef, rule models.IngressRule) error
	DeleteRuleGroup(ctx context.Context, ref models.RuleGroupRef) error
	CreateInstances(ctx context.Context, input models.CreateInstancesRequest) ([]models.InstanceHandle, error)
	WaitUntilRunning(ctx context.Context, handle models.InstanceHandle) error
	Refresh(ctx context.Context, handle models.InstanceHandle) (*models.InstanceAttributes, error)
	ListAllInstances(ctx context.Context) ([]models.InstanceAttributes, error)
	Terminate(ctx context.Context, instanceID string) error
	WaitUntilTerminated(ctx context.Context, instanceID string) error
}
