package aws

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ec2manager/internal/models"
	"ec2manager/internal/providers/aws/mocks"
	"ec2manager/pkg/logging"
)

func newTestGateway(t *testing.T, opts ...Option) (*Gateway, *mocks.EC2ClientAPI) {
	mockClient := mocks.NewEC2ClientAPI(t)
	opts = append([]Option{
		WithLogger(logging.NewMockLogger()),
		WithClientTokenFunc(func() string { return "token-1" }),
	}, opts...)
	return NewGatewayWithClient(mockClient, opts...), mockClient
}

func describeInstancesFor(instanceID string) any {
	return mock.MatchedBy(func(input *ec2.DescribeInstancesInput) bool {
		return len(input.InstanceIds) == 1 && input.InstanceIds[0] == instanceID
	})
}

func instanceInState(instanceID string, state types.InstanceStateName) *ec2.DescribeInstancesOutput {
	return &ec2.DescribeInstancesOutput{
		Reservations: []types.Reservation{
			{
				Instances: []types.Instance{
					{
						InstanceId: aws.String(instanceID),
						State:      &types.InstanceState{Name: state},
					},
				},
			},
		},
	}
}

func TestFindRuleGroup(t *testing.T) {
	tests := []struct {
		name     string
		response *ec2.DescribeSecurityGroupsOutput
		apiErr   error
		want     *models.RuleGroupRef
		wantErr  bool
	}{
		{
			name: "existing group",
			response: &ec2.DescribeSecurityGroupsOutput{
				SecurityGroups: []types.SecurityGroup{
					{GroupId: aws.String("sg-123"), GroupName: aws.String("SSHAccess")},
				},
			},
			want: &models.RuleGroupRef{ID: "sg-123", Name: "SSHAccess"},
		},
		{
			name:     "no group",
			response: &ec2.DescribeSecurityGroupsOutput{},
			want:     nil,
		},
		{
			name: "only a group with a different name",
			response: &ec2.DescribeSecurityGroupsOutput{
				SecurityGroups: []types.SecurityGroup{
					{GroupId: aws.String("sg-999"), GroupName: aws.String("SSHAccess-test")},
				},
			},
			want: nil,
		},
		{
			name:    "api error",
			apiErr:  errors.New("AuthFailure: credentials rejected"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway, mockClient := newTestGateway(t)

			mockClient.On("DescribeSecurityGroups",
				mock.Anything,
				mock.MatchedBy(func(input *ec2.DescribeSecurityGroupsInput) bool {
					return len(input.Filters) == 1 &&
						aws.ToString(input.Filters[0].Name) == "group-name" &&
						len(input.Filters[0].Values) == 1 &&
						input.Filters[0].Values[0] == "SSHAccess"
				}),
				mock.Anything,
			).Return(tt.response, tt.apiErr)

			ref, err := gateway.FindRuleGroup(context.Background(), "SSHAccess")
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsErrorCategory(err, ErrPermissionDenied))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ref)
		})
	}
}

func TestRuleGroupExists(t *testing.T) {
	gateway, mockClient := newTestGateway(t)

	mockClient.On("DescribeSecurityGroups", mock.Anything, mock.Anything, mock.Anything).
		Return(&ec2.DescribeSecurityGroupsOutput{
			SecurityGroups: []types.SecurityGroup{
				{GroupId: aws.String("sg-1"), GroupName: aws.String("web")},
			},
		}, nil)

	exists, err := gateway.RuleGroupExists(context.Background(), "web")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestCreateRuleGroup(t *testing.T) {
	gateway, mockClient := newTestGateway(t)

	mockClient.On("CreateSecurityGroup",
		mock.Anything,
		mock.MatchedBy(func(input *ec2.CreateSecurityGroupInput) bool {
			return aws.ToString(input.GroupName) == "SSHAccess" &&
				aws.ToString(input.Description) == "Allow SSH access to EC2 instances"
		}),
		mock.Anything,
	).Return(&ec2.CreateSecurityGroupOutput{GroupId: aws.String("sg-new")}, nil)

	ref, err := gateway.CreateRuleGroup(context.Background(), "SSHAccess", "Allow SSH access to EC2 instances")
	require.NoError(t, err)
	assert.Equal(t, models.RuleGroupRef{ID: "sg-new", Name: "SSHAccess"}, ref)
}

func TestCreateRuleGroup_Duplicate(t *testing.T) {
	gateway, mockClient := newTestGateway(t)

	apiErr := &smithy.GenericAPIError{Code: "InvalidGroup.Duplicate", Message: "The security group 'SSHAccess' already exists"}
	mockClient.On("CreateSecurityGroup", mock.Anything, mock.Anything, mock.Anything).Return(nil, apiErr)

	_, err := gateway.CreateRuleGroup(context.Background(), "SSHAccess", "desc")
	require.Error(t, err)

	var awsErr *Error
	require.True(t, errors.As(err, &awsErr))
	assert.Equal(t, ErrDuplicateResource, awsErr.Category)
	assert.Equal(t, SecurityGroupResourceType, awsErr.ResourceType)
	assert.Equal(t, "SSHAccess", awsErr.ResourceID)
	assert.ErrorIs(t, err, apiErr)
}

func TestAuthorizeIngress(t *testing.T) {
	gateway, mockClient := newTestGateway(t)

	mockClient.On("AuthorizeSecurityGroupIngress",
		mock.Anything,
		mock.MatchedBy(func(input *ec2.AuthorizeSecurityGroupIngressInput) bool {
			if aws.ToString(input.GroupId) != "sg-new" || len(input.IpPermissions) != 1 {
				return false
			}
			perm := input.IpPermissions[0]
			return aws.ToString(perm.IpProtocol) == "tcp" &&
				aws.ToInt32(perm.FromPort) == 22 &&
				aws.ToInt32(perm.ToPort) == 22 &&
				len(perm.IpRanges) == 1 &&
				aws.ToString(perm.IpRanges[0].CidrIp) == "0.0.0.0/0"
		}),
		mock.Anything,
	).Return(&ec2.AuthorizeSecurityGroupIngressOutput{}, nil)

	err := gateway.AuthorizeIngress(context.Background(),
		models.RuleGroupRef{ID: "sg-new", Name: "SSHAccess"},
		models.IngressRule{Protocol: "tcp", Port: 22, CIDR: "0.0.0.0/0"})
	assert.NoError(t, err)
}

func TestDeleteRuleGroup(t *testing.T) {
	gateway, mockClient := newTestGateway(t)

	mockClient.On("DeleteSecurityGroup",
		mock.Anything,
		mock.MatchedBy(func(input *ec2.DeleteSecurityGroupInput) bool {
			return aws.ToString(input.GroupId) == "sg-new"
		}),
		mock.Anything,
	).Return(&ec2.DeleteSecurityGroupOutput{}, nil)

	assert.NoError(t, gateway.DeleteRuleGroup(context.Background(), models.RuleGroupRef{ID: "sg-new"}))
}

func TestCreateInstances(t *testing.T) {
	gateway, mockClient := newTestGateway(t)

	mockClient.On("RunInstances",
		mock.Anything,
		mock.MatchedBy(func(input *ec2.RunInstancesInput) bool {
			if len(input.TagSpecifications) != 1 || len(input.TagSpecifications[0].Tags) != 1 {
				return false
			}
			tag := input.TagSpecifications[0].Tags[0]
			return aws.ToString(input.ImageId) == "ami-12345678" &&
				input.InstanceType == types.InstanceTypeT2Micro &&
				aws.ToString(input.KeyName) == "my-keypair" &&
				aws.ToInt32(input.MinCount) == 1 &&
				aws.ToInt32(input.MaxCount) == 1 &&
				len(input.SecurityGroups) == 1 && input.SecurityGroups[0] == "test-security-group" &&
				aws.ToString(input.ClientToken) == "token-1" &&
				input.TagSpecifications[0].ResourceType == types.ResourceTypeInstance &&
				aws.ToString(tag.Key) == "Name" && aws.ToString(tag.Value) == "TestInstance"
		}),
		mock.Anything,
	).Return(&ec2.RunInstancesOutput{
		Instances: []types.Instance{{InstanceId: aws.String("i-0abc")}},
	}, nil)

	handles, err := gateway.CreateInstances(context.Background(), models.CreateInstancesRequest{
		ImageID:        "ami-12345678",
		Count:          1,
		InstanceType:   "t2.micro",
		KeyPairName:    "my-keypair",
		RuleGroupNames: []string{"test-security-group"},
		Tags:           NameTags("TestInstance"),
	})
	require.NoError(t, err)
	assert.Equal(t, []models.InstanceHandle{{InstanceID: "i-0abc"}}, handles)
}

func TestCreateInstances_Rejected(t *testing.T) {
	gateway, mockClient := newTestGateway(t)

	apiErr := &smithy.GenericAPIError{Code: "InvalidAMIID.Malformed", Message: "Invalid id: \"bogus\""}
	mockClient.On("RunInstances", mock.Anything, mock.Anything, mock.Anything).Return(nil, apiErr)

	handles, err := gateway.CreateInstances(context.Background(), models.CreateInstancesRequest{ImageID: "bogus"})
	assert.Nil(t, handles)
	assert.True(t, IsErrorCategory(err, ErrInvalidInput))
}

func TestCreateInstances_EmptyResponse(t *testing.T) {
	gateway, mockClient := newTestGateway(t)

	mockClient.On("RunInstances", mock.Anything, mock.Anything, mock.Anything).Return(&ec2.RunInstancesOutput{}, nil)

	_, err := gateway.CreateInstances(context.Background(), models.CreateInstancesRequest{ImageID: "ami-1"})
	assert.True(t, IsErrorCategory(err, ErrInternalError))
}

func TestWaitUntilRunning(t *testing.T) {
	gateway, mockClient := newTestGateway(t)

	mockClient.On("DescribeInstances", mock.Anything, describeInstancesFor("i-0abc"), mock.Anything).
		Return(instanceInState("i-0abc", types.InstanceStateNameRunning), nil)

	assert.NoError(t, gateway.WaitUntilRunning(context.Background(), models.InstanceHandle{InstanceID: "i-0abc"}))
}

func TestWaitUntilRunning_Timeout(t *testing.T) {
	gateway, mockClient := newTestGateway(t, WithWaitTimeout(time.Millisecond))

	mockClient.On("DescribeInstances", mock.Anything, describeInstancesFor("i-0abc"), mock.Anything).
		Return(instanceInState("i-0abc", types.InstanceStateNamePending), nil)

	err := gateway.WaitUntilRunning(context.Background(), models.InstanceHandle{InstanceID: "i-0abc"})
	require.Error(t, err)
	assert.True(t, IsErrorCategory(err, ErrWaitTimeout))
}

func TestRefresh(t *testing.T) {
	gateway, mockClient := newTestGateway(t)

	mockClient.On("DescribeInstances", mock.Anything, describeInstancesFor("i-0abc"), mock.Anything).
		Return(&ec2.DescribeInstancesOutput{
			Reservations: []types.Reservation{
				{
					Instances: []types.Instance{
						{
							InstanceId:      aws.String("i-0abc"),
							InstanceType:    types.InstanceTypeT2Micro,
							ImageId:         aws.String("ami-12345678"),
							KeyName:         aws.String("my-keypair"),
							PublicIpAddress: aws.String("54.1.2.3"),
							State:           &types.InstanceState{Name: types.InstanceStateNameRunning},
							Tags: []types.Tag{
								{Key: aws.String("Name"), Value: aws.String("TestInstance")},
							},
							SecurityGroups: []types.GroupIdentifier{
								{GroupId: aws.String("sg-1"), GroupName: aws.String("test-security-group")},
							},
						},
					},
				},
			},
		}, nil)

	attrs, err := gateway.Refresh(context.Background(), models.InstanceHandle{InstanceID: "i-0abc"})
	require.NoError(t, err)

	assert.Equal(t, "i-0abc", attrs.InstanceID)
	assert.Equal(t, "t2.micro", attrs.InstanceType)
	assert.Equal(t, "ami-12345678", attrs.ImageID)
	assert.Equal(t, "my-keypair", attrs.KeyPairName)
	assert.Equal(t, "54.1.2.3", attrs.PublicIPAddress)
	assert.Equal(t, "running", attrs.State)
	assert.Equal(t, []string{"test-security-group"}, attrs.RuleGroupNames)
	assert.Equal(t, "TestInstance", attrs.Tags["Name"])
}

func TestRefresh_NotFound(t *testing.T) {
	gateway, mockClient := newTestGateway(t)

	mockClient.On("DescribeInstances", mock.Anything, describeInstancesFor("i-nonexistent"), mock.Anything).
		Return(&ec2.DescribeInstancesOutput{Reservations: []types.Reservation{}}, nil)

	attrs, err := gateway.Refresh(context.Background(), models.InstanceHandle{InstanceID: "i-nonexistent"})
	assert.Nil(t, attrs)

	var awsErr *Error
	require.True(t, errors.As(err, &awsErr))
	assert.Equal(t, ErrResourceNotFound, awsErr.Category)
	assert.Equal(t, EC2ResourceType, awsErr.ResourceType)
	assert.Equal(t, "i-nonexistent", awsErr.ResourceID)
	assert.Contains(t, err.Error(), "EC2 instance not found")
}

func TestListAllInstances(t *testing.T) {
	gateway, mockClient := newTestGateway(t)

	mockClient.On("DescribeInstances", mock.Anything, mock.Anything, mock.Anything).
		Return(&ec2.DescribeInstancesOutput{
			Reservations: []types.Reservation{
				{
					Instances: []types.Instance{
						{
							InstanceId:   aws.String("i-1"),
							InstanceType: types.InstanceTypeT2Micro,
							Tags:         []types.Tag{{Key: aws.String("Name"), Value: aws.String("web")}},
							SecurityGroups: []types.GroupIdentifier{
								{GroupName: aws.String("SSHAccess")},
							},
						},
						{
							InstanceId:   aws.String("i-2"),
							InstanceType: types.InstanceTypeT2Medium,
						},
					},
				},
				{
					Instances: []types.Instance{
						{
							InstanceId:   aws.String("i-3"),
							InstanceType: types.InstanceTypeT3Small,
							State:        &types.InstanceState{Name: types.InstanceStateNameTerminated},
						},
					},
				},
			},
		}, nil)

	instances, err := gateway.ListAllInstances(context.Background())
	require.NoError(t, err)
	require.Len(t, instances, 3)

	assert.Equal(t, "i-1", instances[0].InstanceID)
	assert.Equal(t, []string{"SSHAccess"}, instances[0].RuleGroupNames)
	assert.Equal(t, "web", instances[0].Tags["Name"])
	assert.Equal(t, "i-2", instances[1].InstanceID)
	assert.Empty(t, instances[1].RuleGroupNames)
	assert.NotNil(t, instances[1].RuleGroupNames)
	assert.Equal(t, "i-3", instances[2].InstanceID)
	assert.Equal(t, "terminated", instances[2].State)
}

func TestListAllInstances_Empty(t *testing.T) {
	gateway, mockClient := newTestGateway(t)

	mockClient.On("DescribeInstances", mock.Anything, mock.Anything, mock.Anything).
		Return(&ec2.DescribeInstancesOutput{}, nil)

	instances, err := gateway.ListAllInstances(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, instances)
	assert.Empty(t, instances)
}

func TestListAllInstances_Error(t *testing.T) {
	gateway, mockClient := newTestGateway(t)

	mockClient.On("DescribeInstances", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("dial tcp: lookup ec2.us-east-1.amazonaws.com: no such host"))

	instances, err := gateway.ListAllInstances(context.Background())
	assert.Nil(t, instances)
	assert.True(t, IsErrorCategory(err, ErrNetworkError))
}

func TestTerminate(t *testing.T) {
	gateway, mockClient := newTestGateway(t)

	mockClient.On("TerminateInstances",
		mock.Anything,
		mock.MatchedBy(func(input *ec2.TerminateInstancesInput) bool {
			return len(input.InstanceIds) == 1 && input.InstanceIds[0] == "i-0abc"
		}),
		mock.Anything,
	).Return(&ec2.TerminateInstancesOutput{}, nil)

	assert.NoError(t, gateway.Terminate(context.Background(), "i-0abc"))
}

func TestTerminate_UnknownInstance(t *testing.T) {
	gateway, mockClient := newTestGateway(t)

	apiErr := &smithy.GenericAPIError{Code: "InvalidInstanceID.NotFound", Message: "The instance ID 'i-nope' does not exist"}
	mockClient.On("TerminateInstances", mock.Anything, mock.Anything, mock.Anything).Return(nil, apiErr)

	err := gateway.Terminate(context.Background(), "i-nope")
	assert.True(t, IsErrorCategory(err, ErrResourceNotFound))
}

func TestWaitUntilTerminated(t *testing.T) {
	gateway, mockClient := newTestGateway(t)

	mockClient.On("DescribeInstances", mock.Anything, describeInstancesFor("i-0abc"), mock.Anything).
		Return(instanceInState("i-0abc", types.InstanceStateNameTerminated), nil)

	assert.NoError(t, gateway.WaitUntilTerminated(context.Background(), "i-0abc"))
}

func TestNameTag(t *testing.T) {
	assert.Equal(t, "web", NameTag(map[string]string{"Name": "web"}, "N/A"))
	assert.Equal(t, "", NameTag(map[string]string{"Name": ""}, "N/A"))
	assert.Equal(t, "N/A", NameTag(map[string]string{"Env": "dev"}, "N/A"))
	assert.Equal(t, "N/A", NameTag(nil, "N/A"))
	assert.Nil(t, NameTags(""))
}
