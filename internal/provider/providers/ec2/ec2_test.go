package ec2

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsec2 "github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/r-heap47/skylr/skylr-fleet/internal/fleet"
	"github.com/r-heap47/skylr/skylr-fleet/internal/pkg/utils"
	"github.com/r-heap47/skylr/skylr-fleet/internal/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI serves DescribeInstances from pages and records mutating calls.
type fakeAPI struct {
	mu sync.Mutex

	pages       []*awsec2.DescribeInstancesOutput
	describeErr error
	describeIn  []*awsec2.DescribeInstancesInput

	runOut *awsec2.RunInstancesOutput
	runErr error
	runIn  []*awsec2.RunInstancesInput

	started    [][]string
	stopped    [][]string
	terminated [][]string
	actionErr  error
}

func (f *fakeAPI) DescribeInstances(_ context.Context, in *awsec2.DescribeInstancesInput, _ ...func(*awsec2.Options)) (*awsec2.DescribeInstancesOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.describeIn = append(f.describeIn, in)
	if f.describeErr != nil {
		return nil, f.describeErr
	}

	idx := 0
	if in.NextToken != nil {
		for i, p := range f.pages {
			if aws.ToString(p.NextToken) == aws.ToString(in.NextToken) {
				idx = i + 1
			}
		}
	}

	return f.pages[idx], nil
}

func (f *fakeAPI) RunInstances(_ context.Context, in *awsec2.RunInstancesInput, _ ...func(*awsec2.Options)) (*awsec2.RunInstancesOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.runIn = append(f.runIn, in)
	return f.runOut, f.runErr
}

func (f *fakeAPI) StartInstances(_ context.Context, in *awsec2.StartInstancesInput, _ ...func(*awsec2.Options)) (*awsec2.StartInstancesOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.started = append(f.started, in.InstanceIds)
	return &awsec2.StartInstancesOutput{}, f.actionErr
}

func (f *fakeAPI) StopInstances(_ context.Context, in *awsec2.StopInstancesInput, _ ...func(*awsec2.Options)) (*awsec2.StopInstancesOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.stopped = append(f.stopped, in.InstanceIds)
	return &awsec2.StopInstancesOutput{}, f.actionErr
}

func (f *fakeAPI) TerminateInstances(_ context.Context, in *awsec2.TerminateInstancesInput, _ ...func(*awsec2.Options)) (*awsec2.TerminateInstancesOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.terminated = append(f.terminated, in.InstanceIds)
	return &awsec2.TerminateInstancesOutput{}, f.actionErr
}

func sdkInstance(id string, state types.InstanceStateName, name string) types.Instance {
	inst := types.Instance{
		InstanceId: aws.String(id),
		State:      &types.InstanceState{Name: state},
	}
	if name != "" {
		inst.Tags = []types.Tag{{Key: aws.String("Name"), Value: aws.String(name)}}
	}

	return inst
}

func fastConfig() Config {
	return Config{
		ImageID:           "ami-test",
		InstanceType:      "c5.4xlarge",
		RunningTimeout:    utils.Const(time.Second),
		TerminatedTimeout: utils.Const(time.Second),
		MinDelay:          time.Millisecond,
		MaxDelay:          10 * time.Millisecond,
	}
}

func TestDescribeInstances_AllReservationsAllPages(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{pages: []*awsec2.DescribeInstancesOutput{
		{
			Reservations: []types.Reservation{{
				Instances: []types.Instance{
					sdkInstance("i-1", types.InstanceStateNameRunning, "Worker-1"),
					sdkInstance("i-2", types.InstanceStateNameStopped, "Worker-2"),
				},
			}},
			NextToken: aws.String("page-2"),
		},
		{
			Reservations: []types.Reservation{{
				Instances: []types.Instance{
					sdkInstance("i-3", types.InstanceStateNameTerminated, "Worker-3"),
					sdkInstance("i-4", types.InstanceStateNameShuttingDown, ""),
				},
			}},
		},
	}}

	got, err := New(api, fastConfig()).DescribeInstances(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []provider.Instance{
		{Handle: "i-1", State: fleet.StateRunning, Tags: map[string]string{"Name": "Worker-1"}},
		{Handle: "i-2", State: fleet.StateStopped, Tags: map[string]string{"Name": "Worker-2"}},
		{Handle: "i-3", State: fleet.StateTerminated, Tags: map[string]string{"Name": "Worker-3"}},
		{Handle: "i-4", State: fleet.StateShuttingDown, Tags: map[string]string{}},
	}, got)
	assert.Len(t, api.describeIn, 2)
	assert.Empty(t, api.describeIn[0].Filters, "no filter is pushed down")
}

func TestDescribeInstances_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		api  *fakeAPI
	}{
		{
			name: "api error",
			api:  &fakeAPI{describeErr: errors.New("UnauthorizedOperation")},
		},
		{
			name: "missing instance id",
			api: &fakeAPI{pages: []*awsec2.DescribeInstancesOutput{{
				Reservations: []types.Reservation{{Instances: []types.Instance{{State: &types.InstanceState{Name: types.InstanceStateNameRunning}}}}},
			}}},
		},
		{
			name: "missing state",
			api: &fakeAPI{pages: []*awsec2.DescribeInstancesOutput{{
				Reservations: []types.Reservation{{Instances: []types.Instance{{InstanceId: aws.String("i-1")}}}},
			}}},
		},
		{
			name: "unknown state",
			api: &fakeAPI{pages: []*awsec2.DescribeInstancesOutput{{
				Reservations: []types.Reservation{{Instances: []types.Instance{sdkInstance("i-1", "hibernating", "Worker-1")}}},
			}}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := New(tc.api, fastConfig()).DescribeInstances(context.Background())
			require.Error(t, err)
		})
	}
}

func TestCreateInstance_RunInput(t *testing.T) {
	t.Parallel()

	cfg := fastConfig()
	cfg.SubnetID = "subnet-1"
	cfg.PlacementGroupID = "pg-1"
	cfg.SecurityGroupIDs = []string{"sg-1", "sg-2"}
	cfg.MetadataHTTPEndpoint = "enabled"
	cfg.MetadataHTTPTokens = "required"
	cfg.MetadataHopLimit = 2

	api := &fakeAPI{runOut: &awsec2.RunInstancesOutput{Instances: []types.Instance{{InstanceId: aws.String("i-new")}}}}

	handle, err := New(api, cfg).CreateInstance(context.Background(), map[string]string{
		"Name":            "Worker-4",
		"ClusterNodeType": "Worker",
	})
	require.NoError(t, err)
	assert.Equal(t, "i-new", handle)

	require.Len(t, api.runIn, 1)
	in := api.runIn[0]

	assert.Equal(t, "ami-test", aws.ToString(in.ImageId))
	assert.Equal(t, types.InstanceType("c5.4xlarge"), in.InstanceType)
	assert.Equal(t, int32(1), aws.ToInt32(in.MinCount))
	assert.Equal(t, int32(1), aws.ToInt32(in.MaxCount))

	require.Len(t, in.NetworkInterfaces, 1)
	assert.Equal(t, "subnet-1", aws.ToString(in.NetworkInterfaces[0].SubnetId))
	assert.Equal(t, int32(0), aws.ToInt32(in.NetworkInterfaces[0].DeviceIndex))
	assert.Equal(t, []string{"sg-1", "sg-2"}, in.NetworkInterfaces[0].Groups)
	assert.Empty(t, in.SecurityGroupIds)

	require.NotNil(t, in.Placement)
	assert.Equal(t, "pg-1", aws.ToString(in.Placement.GroupId))

	require.NotNil(t, in.MetadataOptions)
	assert.Equal(t, types.HttpTokensStateRequired, in.MetadataOptions.HttpTokens)
	assert.Equal(t, types.InstanceMetadataEndpointStateEnabled, in.MetadataOptions.HttpEndpoint)
	assert.Equal(t, int32(2), aws.ToInt32(in.MetadataOptions.HttpPutResponseHopLimit))

	require.Len(t, in.TagSpecifications, 1)
	assert.Equal(t, types.ResourceTypeInstance, in.TagSpecifications[0].ResourceType)
	assert.Equal(t, []types.Tag{
		{Key: aws.String("ClusterNodeType"), Value: aws.String("Worker")},
		{Key: aws.String("Name"), Value: aws.String("Worker-4")},
	}, in.TagSpecifications[0].Tags)
}

func TestCreateInstance_NoSubnetNoPlacement(t *testing.T) {
	t.Parallel()

	cfg := fastConfig()
	cfg.SecurityGroupIDs = []string{"sg-1"}

	api := &fakeAPI{runOut: &awsec2.RunInstancesOutput{Instances: []types.Instance{{InstanceId: aws.String("i-new")}}}}

	_, err := New(api, cfg).CreateInstance(context.Background(), map[string]string{"Name": "Worker-1"})
	require.NoError(t, err)

	in := api.runIn[0]
	assert.Empty(t, in.NetworkInterfaces)
	assert.Equal(t, []string{"sg-1"}, in.SecurityGroupIds)
	assert.Nil(t, in.Placement)
	assert.Nil(t, in.MetadataOptions)
}

func TestCreateInstance_Errors(t *testing.T) {
	t.Parallel()

	_, err := New(&fakeAPI{runErr: errors.New("InsufficientInstanceCapacity")}, fastConfig()).
		CreateInstance(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "InsufficientInstanceCapacity")

	_, err = New(&fakeAPI{runOut: &awsec2.RunInstancesOutput{}}, fastConfig()).
		CreateInstance(context.Background(), nil)
	require.Error(t, err)
}

func TestBatchedActions(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	p := New(api, fastConfig())
	ctx := context.Background()

	require.NoError(t, p.StartInstances(ctx, []string{"i-1", "i-2"}))
	require.NoError(t, p.StopInstances(ctx, []string{"i-3"}))
	require.NoError(t, p.TerminateInstances(ctx, []string{"i-1", "i-2", "i-3"}))

	assert.Equal(t, [][]string{{"i-1", "i-2"}}, api.started)
	assert.Equal(t, [][]string{{"i-3"}}, api.stopped)
	assert.Equal(t, [][]string{{"i-1", "i-2", "i-3"}}, api.terminated)
}

func TestBatchedActions_EmptyIssuesNoCall(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	p := New(api, fastConfig())
	ctx := context.Background()

	require.NoError(t, p.StartInstances(ctx, nil))
	require.NoError(t, p.StopInstances(ctx, []string{}))
	require.NoError(t, p.TerminateInstances(ctx, nil))
	require.NoError(t, p.WaitUntilRunning(ctx, nil))
	require.NoError(t, p.WaitUntilTerminated(ctx, nil))

	assert.Empty(t, api.started)
	assert.Empty(t, api.stopped)
	assert.Empty(t, api.terminated)
	assert.Empty(t, api.describeIn)
}

func TestBatchedActions_Error(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{actionErr: errors.New("IncorrectInstanceState")}

	err := New(api, fastConfig()).StartInstances(context.Background(), []string{"i-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "StartInstances")
}

func TestWaitUntilRunning(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{pages: []*awsec2.DescribeInstancesOutput{{
		Reservations: []types.Reservation{{Instances: []types.Instance{
			sdkInstance("i-1", types.InstanceStateNameRunning, "Worker-1"),
			sdkInstance("i-2", types.InstanceStateNameRunning, "Worker-2"),
		}}},
	}}}

	err := New(api, fastConfig()).WaitUntilRunning(context.Background(), []string{"i-1", "i-2"})
	require.NoError(t, err)

	require.NotEmpty(t, api.describeIn)
	assert.Equal(t, []string{"i-1", "i-2"}, api.describeIn[0].InstanceIds)
}

func TestWaitUntilRunning_FailureState(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{pages: []*awsec2.DescribeInstancesOutput{{
		Reservations: []types.Reservation{{Instances: []types.Instance{
			sdkInstance("i-1", types.InstanceStateNameTerminated, "Worker-1"),
		}}},
	}}}

	err := New(api, fastConfig()).WaitUntilRunning(context.Background(), []string{"i-1"})
	require.Error(t, err)
}

func TestWaitUntilTerminated(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{pages: []*awsec2.DescribeInstancesOutput{{
		Reservations: []types.Reservation{{Instances: []types.Instance{
			sdkInstance("i-1", types.InstanceStateNameTerminated, "Worker-1"),
		}}},
	}}}

	err := New(api, fastConfig()).WaitUntilTerminated(context.Background(), []string{"i-1"})
	require.NoError(t, err)
}

func TestWaitUntilTerminated_Timeout(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{pages: []*awsec2.DescribeInstancesOutput{{
		Reservations: []types.Reservation{{Instances: []types.Instance{
			sdkInstance("i-1", types.InstanceStateNameShuttingDown, "Worker-1"),
		}}},
	}}}

	cfg := fastConfig()
	cfg.TerminatedTimeout = utils.Const(50 * time.Millisecond)

	err := New(api, cfg).WaitUntilTerminated(context.Background(), []string{"i-1"})
	require.Error(t, err)
}
