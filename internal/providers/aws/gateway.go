package aws

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/google/uuid"

	"ec2manager/internal/models"
	"ec2manager/pkg/logging"
)

const (
	// DefaultWaitTimeout bounds every waiter call when no timeout is configured.
	DefaultWaitTimeout = 10 * time.Minute

	nameTagKey = "Name"
)

// Gateway implements GatewayAPI on top of the EC2 API.
type Gateway struct {
	client      EC2ClientAPI
	waitTimeout time.Duration
	clientToken func() string
	logger      logging.Logger
}

// Option customizes a Gateway.
type Option func(*Gateway)

// WithWaitTimeout sets the maximum time a waiter blocks for a state transition.
func WithWaitTimeout(d time.Duration) Option {
	return func(g *Gateway) {
		if d > 0 {
			g.waitTimeout = d
		}
	}
}

// WithLogger sets the logger used by the gateway.
func WithLogger(logger logging.Logger) Option {
	return func(g *Gateway) {
		g.logger = logger
	}
}

// WithClientTokenFunc replaces the generator of RunInstances idempotency tokens.
func WithClientTokenFunc(fn func() string) Option {
	return func(g *Gateway) {
		g.clientToken = fn
	}
}

// NewGatewayWithDefaultConfig creates a Gateway with the default AWS SDK configuration
// pinned to the given region.
func NewGatewayWithDefaultConfig(ctx context.Context, region string, opts ...Option) (*Gateway, error) {
	var loadOpts []func(*config.LoadOptions) error
	if region != "" {
		loadOpts = append(loadOpts, config.WithRegion(region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, NewAWSError(ErrConfigurationError, "", "", "unable to load AWS SDK config", err)
	}

	return NewGatewayWithClient(ec2.NewFromConfig(cfg), opts...), nil
}

// NewGatewayWithClient creates a Gateway with a provided client
func NewGatewayWithClient(client EC2ClientAPI, opts ...Option) *Gateway {
	g := &Gateway{
		client:      client,
		waitTimeout: DefaultWaitTimeout,
		clientToken: uuid.NewString,
		logger:      logging.NewDefaultLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// RuleGroupExists reports whether a security group with exactly this name exists.
func (g *Gateway) RuleGroupExists(ctx context.Context, name string) (bool, error) {
	ref, err := g.FindRuleGroup(ctx, name)
	if err != nil {
		return false, err
	}
	return ref != nil, nil
}

// FindRuleGroup looks a security group up by exact name. It returns nil when none exists.
func (g *Gateway) FindRuleGroup(ctx context.Context, name string) (*models.RuleGroupRef, error) {
	resp, err := g.client.DescribeSecurityGroups(ctx, &ec2.DescribeSecurityGroupsInput{
		Filters: []types.Filter{
			{Name: aws.String("group-name"), Values: []string{name}},
		},
	})
	if err != nil {
		return nil, ClassifyAWSError(fmt.Errorf("failed to describe security group %s: %w", name, err),
			SecurityGroupResourceType, name)
	}

	for _, sg := range resp.SecurityGroups {
		if aws.ToString(sg.GroupName) == name {
			return &models.RuleGroupRef{
				ID:   aws.ToString(sg.GroupId),
				Name: name,
			}, nil
		}
	}
	return nil, nil
}

// CreateRuleGroup creates a security group and returns its reference.
func (g *Gateway) CreateRuleGroup(ctx context.Context, name, description string) (models.RuleGroupRef, error) {
	resp, err := g.client.CreateSecurityGroup(ctx, &ec2.CreateSecurityGroupInput{
		GroupName:   aws.String(name),
		Description: aws.String(description),
	})
	if err != nil {
		return models.RuleGroupRef{}, ClassifyAWSError(
			fmt.Errorf("failed to create security group %s: %w", name, err),
			SecurityGroupResourceType, name)
	}
	if resp.GroupId == nil {
		return models.RuleGroupRef{}, NewAWSError(ErrInternalError, SecurityGroupResourceType, name,
			"no group id returned from create", nil)
	}

	ref := models.RuleGroupRef{ID: aws.ToString(resp.GroupId), Name: name}
	g.logger.Debug("Created security group %s (%s)", ref.Name, ref.ID)
	return ref, nil
}

// AuthorizeIngress adds one inbound rule to a security group.
func (g *Gateway) AuthorizeIngress(ctx context.Context, ref models.RuleGroupRef, rule models.IngressRule) error {
	_, err := g.client.AuthorizeSecurityGroupIngress(ctx, &ec2.AuthorizeSecurityGroupIngressInput{
		GroupId: aws.String(ref.ID),
		IpPermissions: []types.IpPermission{
			{
				IpProtocol: aws.String(rule.Protocol),
				FromPort:   aws.Int32(rule.Port),
				ToPort:     aws.Int32(rule.Port),
				IpRanges:   []types.IpRange{{CidrIp: aws.String(rule.CIDR)}},
			},
		},
	})
	if err != nil {
		return ClassifyAWSError(fmt.Errorf("failed to authorize ingress on %s: %w", ref.ID, err),
			SecurityGroupResourceType, ref.ID)
	}

	g.logger.Debug("Authorized %s/%d from %s on %s", rule.Protocol, rule.Port, rule.CIDR, ref.ID)
	return nil
}

// DeleteRuleGroup removes a security group.
func (g *Gateway) DeleteRuleGroup(ctx context.Context, ref models.RuleGroupRef) error {
	_, err := g.client.DeleteSecurityGroup(ctx, &ec2.DeleteSecurityGroupInput{
		GroupId: aws.String(ref.ID),
	})
	if err != nil {
		return ClassifyAWSError(fmt.Errorf("failed to delete security group %s: %w", ref.ID, err),
			SecurityGroupResourceType, ref.ID)
	}
	return nil
}

// CreateInstances launches exactly input.Count instances. Each request carries a
// fresh client token so that an SDK-level retry cannot launch a second batch.
func (g *Gateway) CreateInstances(ctx context.Context, input models.CreateInstancesRequest) ([]models.InstanceHandle, error) {
	count := input.Count
	if count <= 0 {
		count = 1
	}

	params := &ec2.RunInstancesInput{
		ImageId:        aws.String(input.ImageID),
		InstanceType:   types.InstanceType(input.InstanceType),
		MinCount:       aws.Int32(count),
		MaxCount:       aws.Int32(count),
		SecurityGroups: input.RuleGroupNames,
		ClientToken:    aws.String(g.clientToken()),
	}
	if input.KeyPairName != "" {
		params.KeyName = aws.String(input.KeyPairName)
	}
	if len(input.Tags) > 0 {
		params.TagSpecifications = []types.TagSpecification{
			{
				ResourceType: types.ResourceTypeInstance,
				Tags:         toTags(input.Tags),
			},
		}
	}

	resp, err := g.client.RunInstances(ctx, params)
	if err != nil {
		return nil, ClassifyAWSError(fmt.Errorf("failed to launch instance from %s: %w", input.ImageID, err),
			EC2ResourceType, input.ImageID)
	}
	if len(resp.Instances) == 0 {
		return nil, NewAWSError(ErrInternalError, EC2ResourceType, input.ImageID,
			"no instance returned from launch", nil)
	}

	handles := make([]models.InstanceHandle, 0, len(resp.Instances))
	for _, inst := range resp.Instances {
		handles = append(handles, models.InstanceHandle{InstanceID: aws.ToString(inst.InstanceId)})
	}
	return handles, nil
}

// WaitUntilRunning blocks until the instance is running or the wait timeout expires.
func (g *Gateway) WaitUntilRunning(ctx context.Context, handle models.InstanceHandle) error {
	waiter := ec2.NewInstanceRunningWaiter(g.client)
	err := waiter.Wait(ctx, &ec2.DescribeInstancesInput{
		InstanceIds: []string{handle.InstanceID},
	}, g.waitTimeout)
	if err != nil {
		return ClassifyAWSError(fmt.Errorf("waiting for instance %s to run: %w", handle.InstanceID, err),
			EC2ResourceType, handle.InstanceID)
	}
	return nil
}

// Refresh reloads the attributes of one instance.
func (g *Gateway) Refresh(ctx context.Context, handle models.InstanceHandle) (*models.InstanceAttributes, error) {
	instanceID := handle.InstanceID
	resp, err := g.client.DescribeInstances(ctx, &ec2.DescribeInstancesInput{
		InstanceIds: []string{instanceID},
	})
	if err != nil {
		return nil, ClassifyAWSError(fmt.Errorf("failed to describe EC2 instance %s: %w", instanceID, err),
			EC2ResourceType, instanceID)
	}

	if len(resp.Reservations) == 0 || len(resp.Reservations[0].Instances) == 0 {
		return nil, NewAWSError(ErrResourceNotFound, EC2ResourceType, instanceID, "EC2 instance not found", nil)
	}

	attrs := toAttributes(resp.Reservations[0].Instances[0])
	return &attrs, nil
}

// ListAllInstances returns every instance visible to the caller, reading all pages
// before returning.
func (g *Gateway) ListAllInstances(ctx context.Context) ([]models.InstanceAttributes, error) {
	instances := make([]models.InstanceAttributes, 0)

	paginator := ec2.NewDescribeInstancesPaginator(g.client, &ec2.DescribeInstancesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, ClassifyAWSError(fmt.Errorf("failed to describe EC2 instances: %w", err), EC2ResourceType, "")
		}
		for _, reservation := range page.Reservations {
			for _, inst := range reservation.Instances {
				instances = append(instances, toAttributes(inst))
			}
		}
	}

	return instances, nil
}

// Terminate sends a termination request for a single instance.
func (g *Gateway) Terminate(ctx context.Context, instanceID string) error {
	_, err := g.client.TerminateInstances(ctx, &ec2.TerminateInstancesInput{
		InstanceIds: []string{instanceID},
	})
	if err != nil {
		return ClassifyAWSError(fmt.Errorf("failed to terminate EC2 instance %s: %w", instanceID, err),
			EC2ResourceType, instanceID)
	}
	return nil
}

// WaitUntilTerminated blocks until the instance is terminated or the wait timeout expires.
func (g *Gateway) WaitUntilTerminated(ctx context.Context, instanceID string) error {
	waiter := ec2.NewInstanceTerminatedWaiter(g.client)
	err := waiter.Wait(ctx, &ec2.DescribeInstancesInput{
		InstanceIds: []string{instanceID},
	}, g.waitTimeout)
	if err != nil {
		return ClassifyAWSError(fmt.Errorf("waiting for instance %s to terminate: %w", instanceID, err),
			EC2ResourceType, instanceID)
	}
	return nil
}

func toAttributes(instance types.Instance) models.InstanceAttributes {
	attrs := models.InstanceAttributes{
		InstanceID:      aws.ToString(instance.InstanceId),
		InstanceType:    string(instance.InstanceType),
		ImageID:         aws.ToString(instance.ImageId),
		KeyPairName:     aws.ToString(instance.KeyName),
		PublicIPAddress: aws.ToString(instance.PublicIpAddress),
		Tags:            convertTags(instance.Tags),
	}
	if instance.State != nil {
		attrs.State = string(instance.State.Name)
	}

	// Keep an empty, non-nil slice so listings render "[]" rather than null
	attrs.RuleGroupNames = make([]string, 0, len(instance.SecurityGroups))
	for _, sg := range instance.SecurityGroups {
		attrs.RuleGroupNames = append(attrs.RuleGroupNames, aws.ToString(sg.GroupName))
	}

	return attrs
}

// convertTags converts AWS SDK tags to a map
func convertTags(tags []types.Tag) map[string]string {
	if len(tags) == 0 {
		return nil
	}

	result := make(map[string]string, len(tags))
	for _, tag := range tags {
		if tag.Key != nil && tag.Value != nil {
			result[aws.ToString(tag.Key)] = aws.ToString(tag.Value)
		}
	}
	return result
}

// toTags converts a map to AWS SDK tags, sorted by key for stable requests
func toTags(tags map[string]string) []types.Tag {
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := make([]types.Tag, 0, len(keys))
	for _, k := range keys {
		result = append(result, types.Tag{Key: aws.String(k), Value: aws.String(tags[k])})
	}
	return result
}

// NameTag returns the value of the Name tag, or fallback when the instance is untagged.
func NameTag(tags map[string]string, fallback string) string {
	if name, ok := tags[nameTagKey]; ok {
		return name
	}
	return fallback
}

// NameTags builds the tag set that labels an instance with a display name.
func NameTags(name string) map[string]string {
	if name == "" {
		return nil
	}
	return map[string]string{nameTagKey: name}
}
