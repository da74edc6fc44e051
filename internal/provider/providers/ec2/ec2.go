package ec2

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsec2 "github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/r-heap47/skylr/skylr-fleet/internal/fleet"
	"github.com/r-heap47/skylr/skylr-fleet/internal/pkg/utils"
	"github.com/r-heap47/skylr/skylr-fleet/internal/provider"
)

// API is the subset of *awsec2.Client used by the provider.
type API interface {
	awsec2.DescribeInstancesAPIClient
	RunInstances(ctx context.Context, params *awsec2.RunInstancesInput, optFns ...func(*awsec2.Options)) (*awsec2.RunInstancesOutput, error)
	StartInstances(ctx context.Context, params *awsec2.StartInstancesInput, optFns ...func(*awsec2.Options)) (*awsec2.StartInstancesOutput, error)
	StopInstances(ctx context.Context, params *awsec2.StopInstancesInput, optFns ...func(*awsec2.Options)) (*awsec2.StopInstancesOutput, error)
	TerminateInstances(ctx context.Context, params *awsec2.TerminateInstancesInput, optFns ...func(*awsec2.Options)) (*awsec2.TerminateInstancesOutput, error)
}

// Config holds the launch shape and wait bounds for the EC2 provider.
type Config struct {
	ImageID          string   // AMI for new workers.
	InstanceType     string   // e.g. c5.4xlarge.
	SubnetID         string   // Subnet of the primary network interface; empty uses the default VPC.
	PlacementGroupID string   // Optional placement group.
	SecurityGroupIDs []string // Security groups of the primary network interface.

	MetadataHTTPEndpoint string
	MetadataHTTPTokens   string
	MetadataHopLimit     int32

	// RunningTimeout bounds WaitUntilRunning.
	RunningTimeout utils.Provider[time.Duration]
	// TerminatedTimeout bounds WaitUntilTerminated.
	TerminatedTimeout utils.Provider[time.Duration]
	// MinDelay and MaxDelay bound the waiter's poll interval.
	MinDelay time.Duration
	MaxDelay time.Duration
}

// Provider manages fleet instances through the EC2 API.
type Provider struct {
	api API
	cfg Config
}

var _ provider.Provider = (*Provider)(nil)

// New creates a new EC2 provider.
func New(api API, cfg Config) *Provider {
	// Apply defaults for optional wait settings; these match the aws cli waiters.
	if cfg.RunningTimeout == nil {
		cfg.RunningTimeout = utils.Const(10 * time.Minute)
	}
	if cfg.TerminatedTimeout == nil {
		cfg.TerminatedTimeout = utils.Const(10 * time.Minute)
	}
	cfg.MinDelay = utils.Or(cfg.MinDelay, 15*time.Second)
	cfg.MaxDelay = utils.Or(cfg.MaxDelay, 2*time.Minute)

	return &Provider{api: api, cfg: cfg}
}

// DescribeInstances lists every instance of every reservation, following pagination.
func (p *Provider) DescribeInstances(ctx context.Context) ([]provider.Instance, error) {
	var out []provider.Instance

	pages := awsec2.NewDescribeInstancesPaginator(p.api, &awsec2.DescribeInstancesInput{})
	for pages.HasMorePages() {
		page, err := pages.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("DescribeInstances: %w", err)
		}

		for _, res := range page.Reservations {
			for _, inst := range res.Instances {
				converted, err := toInstance(inst)
				if err != nil {
					return nil, err
				}
				out = append(out, converted)
			}
		}
	}

	return out, nil
}

// CreateInstance launches exactly one instance with the configured shape and tags.
func (p *Provider) CreateInstance(ctx context.Context, tags map[string]string) (string, error) {
	out, err := p.api.RunInstances(ctx, p.runInput(tags))
	if err != nil {
		return "", fmt.Errorf("RunInstances: %w", err)
	}

	if len(out.Instances) != 1 || aws.ToString(out.Instances[0].InstanceId) == "" {
		return "", fmt.Errorf("RunInstances: expected 1 instance, got %d", len(out.Instances))
	}

	return aws.ToString(out.Instances[0].InstanceId), nil
}

// StartInstances implements provider.Provider. An empty list issues no call.
func (p *Provider) StartInstances(ctx context.Context, handles []string) error {
	if len(handles) == 0 {
		return nil
	}

	if _, err := p.api.StartInstances(ctx, &awsec2.StartInstancesInput{InstanceIds: handles}); err != nil {
		return fmt.Errorf("StartInstances: %w", err)
	}

	return nil
}

// StopInstances implements provider.Provider. An empty list issues no call.
func (p *Provider) StopInstances(ctx context.Context, handles []string) error {
	if len(handles) == 0 {
		return nil
	}

	if _, err := p.api.StopInstances(ctx, &awsec2.StopInstancesInput{InstanceIds: handles}); err != nil {
		return fmt.Errorf("StopInstances: %w", err)
	}

	return nil
}

// TerminateInstances implements provider.Provider. An empty list issues no call.
func (p *Provider) TerminateInstances(ctx context.Context, handles []string) error {
	if len(handles) == 0 {
		return nil
	}

	if _, err := p.api.TerminateInstances(ctx, &awsec2.TerminateInstancesInput{InstanceIds: handles}); err != nil {
		return fmt.Errorf("TerminateInstances: %w", err)
	}

	return nil
}

// WaitUntilRunning blocks on the SDK's InstanceRunning waiter.
func (p *Provider) WaitUntilRunning(ctx context.Context, handles []string) error {
	if len(handles) == 0 {
		return nil
	}

	waiter := awsec2.NewInstanceRunningWaiter(p.api, func(o *awsec2.InstanceRunningWaiterOptions) {
		o.MinDelay = p.cfg.MinDelay
		o.MaxDelay = p.cfg.MaxDelay
	})

	timeout := p.cfg.RunningTimeout(ctx)
	if err := waiter.Wait(ctx, &awsec2.DescribeInstancesInput{InstanceIds: handles}, timeout); err != nil {
		return fmt.Errorf("InstanceRunningWaiter.Wait (%v): %w", timeout, err)
	}

	log.Printf("[INFO] ec2: %d instances running", len(handles))

	return nil
}

// WaitUntilTerminated blocks on the SDK's InstanceTerminated waiter.
func (p *Provider) WaitUntilTerminated(ctx context.Context, handles []string) error {
	if len(handles) == 0 {
		return nil
	}

	waiter := awsec2.NewInstanceTerminatedWaiter(p.api, func(o *awsec2.InstanceTerminatedWaiterOptions) {
		o.MinDelay = p.cfg.MinDelay
		o.MaxDelay = p.cfg.MaxDelay
	})

	timeout := p.cfg.TerminatedTimeout(ctx)
	if err := waiter.Wait(ctx, &awsec2.DescribeInstancesInput{InstanceIds: handles}, timeout); err != nil {
		return fmt.Errorf("InstanceTerminatedWaiter.Wait (%v): %w", timeout, err)
	}

	log.Printf("[INFO] ec2: %d instances terminated", len(handles))

	return nil
}

// runInput builds the RunInstances request. Shape fields are copied from
// config untouched; only tags vary per call.
func (p *Provider) runInput(tags map[string]string) *awsec2.RunInstancesInput {
	in := &awsec2.RunInstancesInput{
		ImageId:      aws.String(p.cfg.ImageID),
		InstanceType: types.InstanceType(p.cfg.InstanceType),
		MinCount:     aws.Int32(1),
		MaxCount:     aws.Int32(1),
		TagSpecifications: []types.TagSpecification{{
			ResourceType: types.ResourceTypeInstance,
			Tags:         toTags(tags),
		}},
	}

	if p.cfg.SubnetID != "" {
		in.NetworkInterfaces = []types.InstanceNetworkInterfaceSpecification{{
			SubnetId:    aws.String(p.cfg.SubnetID),
			DeviceIndex: aws.Int32(0),
			Groups:      p.cfg.SecurityGroupIDs,
		}}
	} else if len(p.cfg.SecurityGroupIDs) > 0 {
		in.SecurityGroupIds = p.cfg.SecurityGroupIDs
	}

	if p.cfg.PlacementGroupID != "" {
		in.Placement = &types.Placement{GroupId: aws.String(p.cfg.PlacementGroupID)}
	}

	if p.cfg.MetadataHTTPEndpoint != "" || p.cfg.MetadataHTTPTokens != "" || p.cfg.MetadataHopLimit > 0 {
		in.MetadataOptions = &types.InstanceMetadataOptionsRequest{
			HttpEndpoint: types.InstanceMetadataEndpointState(p.cfg.MetadataHTTPEndpoint),
			HttpTokens:   types.HttpTokensState(p.cfg.MetadataHTTPTokens),
		}
		if p.cfg.MetadataHopLimit > 0 {
			in.MetadataOptions.HttpPutResponseHopLimit = aws.Int32(p.cfg.MetadataHopLimit)
		}
	}

	return in
}

// toTags converts tags to the SDK shape, sorted by key for a stable request.
func toTags(tags map[string]string) []types.Tag {
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]types.Tag, 0, len(keys))
	for _, k := range keys {
		out = append(out, types.Tag{Key: aws.String(k), Value: aws.String(tags[k])})
	}

	return out
}

// toInstance converts an SDK instance, rejecting entries the fleet cannot address.
func toInstance(inst types.Instance) (provider.Instance, error) {
	handle := aws.ToString(inst.InstanceId)
	if handle == "" {
		return provider.Instance{}, errors.New("instance without InstanceId")
	}
	if inst.State == nil {
		return provider.Instance{}, fmt.Errorf("instance %s without State", handle)
	}

	state, err := fleet.ParseLifecycleState(string(inst.State.Name))
	if err != nil {
		return provider.Instance{}, fmt.Errorf("instance %s: %w", handle, err)
	}

	tags := make(map[string]string, len(inst.Tags))
	for _, tag := range inst.Tags {
		tags[aws.ToString(tag.Key)] = aws.ToString(tag.Value)
	}

	return provider.Instance{Handle: handle, State: state, Tags: tags}, nil
}
