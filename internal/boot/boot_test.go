package boot

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/r-heap47/skylr/skylr-fleet/internal/config"
	"github.com/r-heap47/skylr/skylr-fleet/internal/fleet"
	"github.com/r-heap47/skylr/skylr-fleet/internal/pkg/testutils"
	"github.com/r-heap47/skylr/skylr-fleet/internal/provider"
	"github.com/r-heap47/skylr/skylr-fleet/internal/reconciler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseList(t *testing.T) {
	t.Parallel()

	assert.Nil(t, parseList(""))
	assert.Equal(t, []string{"sg-1"}, parseList("sg-1"))
	assert.Equal(t, []string{"sg-1", "sg-2"}, parseList(" sg-1, ,sg-2,"))
}

func TestPrintReport(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	rep := &reconciler.Report{
		Operation: reconciler.OpSetActive,
		Target:    1,
		Observed:  3,
		Started:   []string{"i-1"},
		Stopped:   []string{"i-2", "i-3"},
		Calls: []reconciler.CallResult{
			{Action: fleet.ActionStart, Handles: []string{"i-1"}},
			{Action: fleet.ActionStop, Handles: []string{"i-2", "i-3"}, Err: errors.New("boom")},
		},
	}

	var buf bytes.Buffer
	printReport(&buf, rep, namingScheme(&cfg))

	assert.Equal(t, "set-active: target=1 observed=3 started=1 stopped=2 failed_calls=1\n"+
		"started\ti-1\n"+
		"stopped\ti-2\n"+
		"stopped\ti-3\n"+
		"failed\tstop\t2 instances\tboom\n", buf.String())
}

func TestPrintReport_DryRunProvision(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	rep := &reconciler.Report{
		Operation: reconciler.OpProvision,
		Target:    2,
		DryRun:    true,
		Created:   []reconciler.Created{{Ordinal: 1}, {Ordinal: 2, Handle: "i-2"}},
	}

	var buf bytes.Buffer
	printReport(&buf, rep, namingScheme(&cfg))

	assert.Equal(t, "[dry-run] provision: target=2 observed=0 created=2\n"+
		"created\tWorker-1\t-\n"+
		"created\tWorker-2\ti-2\n", buf.String())
}

func TestProviderConfig(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Instance.SubnetID = "subnet-1"
	cfg.Instance.SecurityGroupIDs = []string{"sg-1"}

	pc := providerConfig(&cfg)
	assert.Equal(t, "c5.4xlarge", pc.InstanceType)
	assert.Equal(t, "subnet-1", pc.SubnetID)
	assert.Equal(t, []string{"sg-1"}, pc.SecurityGroupIDs)
	assert.Equal(t, int32(2), pc.MetadataHopLimit)
	assert.Equal(t, 10*time.Minute, pc.RunningTimeout(t.Context()))
	assert.Equal(t, 15*time.Second, pc.MinDelay)
}

func TestNamingScheme(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Fleet.ExtraTags = map[string]string{"team": "graph"}

	ns := namingScheme(&cfg)
	assert.Equal(t, map[string]string{
		"Name":            "Worker-3",
		"ClusterNodeType": "Worker",
		"team":            "graph",
	}, ns.Tags(3))
}

func TestEntryPoints_FlagErrors(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "missing.yaml")

	err := Provision([]string{"-num-workers", "many"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "flag parse")

	err = SetActive([]string{"-config", missing, "-num-workers", "2"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.Load")

	err = Decommission([]string{"-config", missing, "extra"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected arguments")

	assert.NoError(t, Decommission([]string{"-h"}), "help is not a failure")
}

func writeConfig(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("aws:\n  region: us-east-1\n"), 0o600))

	return path
}

func fakeRunner(prov provider.Provider, out *bytes.Buffer) runner {
	return runner{
		newProvider: func(context.Context, *config.Config, bool) (provider.Provider, error) {
			return prov, nil
		},
		out: out,
	}
}

func TestRunner_SetActivePartialFailure(t *testing.T) {
	t.Parallel()

	prov := testutils.NewFakeProvider(
		testutils.Instance("i-1", fleet.StateStopped, "Worker-1"),
		testutils.Instance("i-2", fleet.StateRunning, "Worker-2"),
	)
	prov.Err["StopInstances"] = errors.New("UnsupportedOperation")

	var out bytes.Buffer
	err := fakeRunner(prov, &out).setActive([]string{"-config", writeConfig(t), "-num-workers", "1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, fleet.ErrProviderAction)
	assert.Contains(t, err.Error(), "set-active: stop")

	assert.Equal(t, "set-active: target=1 observed=2 started=1 stopped=0 failed_calls=1\n"+
		"started\ti-1\n"+
		"failed\tstop\t1 instances\tUnsupportedOperation\n", out.String())
	assert.Empty(t, prov.CallsOf("WaitUntilRunning"))
}

func TestRunner_ProvisionAppliesOverrides(t *testing.T) {
	t.Parallel()

	prov := testutils.NewFakeProvider()

	var (
		out bytes.Buffer
		got *config.Config
	)
	r := runner{
		newProvider: func(_ context.Context, cfg *config.Config, _ bool) (provider.Provider, error) {
			got = cfg
			return prov, nil
		},
		out: &out,
	}

	err := r.provision([]string{
		"-config", writeConfig(t),
		"-num-workers", "2",
		"-image-id", "ami-123",
		"-security-group-ids", "sg-1,sg-2",
	})
	require.NoError(t, err)

	require.NotNil(t, got)
	assert.Equal(t, "ami-123", got.Instance.ImageID)
	assert.Equal(t, "c5.4xlarge", got.Instance.InstanceType)
	assert.Equal(t, []string{"sg-1", "sg-2"}, got.Instance.SecurityGroupIDs)

	assert.Equal(t, "provision: target=2 observed=0 created=2\n"+
		"created\tWorker-1\ti-fake0001\n"+
		"created\tWorker-2\ti-fake0002\n", out.String())
}

func TestRunner_DecommissionDryRun(t *testing.T) {
	t.Parallel()

	prov := testutils.NewFakeProvider(
		testutils.Instance("i-1", fleet.StateRunning, "Worker-1"),
		testutils.Instance("i-gpu", fleet.StateStopped, "Worker-gpu"),
	)

	var out bytes.Buffer
	err := fakeRunner(prov, &out).decommission([]string{"-config", writeConfig(t), "-dry-run"})
	require.NoError(t, err)

	assert.Equal(t, "[dry-run] decommission: observed=2 terminated=2\n"+
		"terminated\ti-1\n"+
		"terminated\ti-gpu\n", out.String())
	assert.Empty(t, prov.CallsOf("TerminateInstances"))
	assert.Equal(t, fleet.StateRunning, prov.State("i-1"))
}

func TestRunner_ProviderError(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	r := runner{
		newProvider: func(context.Context, *config.Config, bool) (provider.Provider, error) {
			return nil, errors.New("no credentials")
		},
		out: &out,
	}

	err := r.decommission([]string{"-config", writeConfig(t)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "newProvider: no credentials")
	assert.Empty(t, out.String())
}
