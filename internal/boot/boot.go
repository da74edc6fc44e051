package boot

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsec2 "github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/r-heap47/skylr/skylr-fleet/internal/config"
	"github.com/r-heap47/skylr/skylr-fleet/internal/fleet"
	"github.com/r-heap47/skylr/skylr-fleet/internal/pkg/logwriter"
	"github.com/r-heap47/skylr/skylr-fleet/internal/pkg/utils"
	"github.com/r-heap47/skylr/skylr-fleet/internal/provider"
	"github.com/r-heap47/skylr/skylr-fleet/internal/provider/providers/ec2"
	"github.com/r-heap47/skylr/skylr-fleet/internal/reconciler"
)

type options struct {
	configPath string
	dryRun     bool
	verbose    bool
}

type operation func(ctx context.Context, eng *reconciler.Engine) (*reconciler.Report, error)

// providerFunc builds the provider for one invocation from the loaded config.
type providerFunc func(ctx context.Context, cfg *config.Config, verbose bool) (provider.Provider, error)

// runner carries what an entry point needs beyond its arguments.
type runner struct {
	newProvider providerFunc
	out         io.Writer
}

func defaultRunner() runner {
	return runner{newProvider: newProvider, out: os.Stdout}
}

func commonFlags(fs *flag.FlagSet) *options {
	opts := &options{}

	fs.StringVar(&opts.configPath, "config", "config/config.yaml", "Path to YAML config file")
	fs.BoolVar(&opts.dryRun, "dry-run", false, "resolve and plan, issue no create/start/stop/terminate")
	fs.BoolVar(&opts.verbose, "v", false, "log AWS SDK requests and retries")

	return opts
}

// Provision creates workers for missing ordinals in 1..num-workers.
func Provision(args []string) error {
	return defaultRunner().provision(args)
}

// SetActive starts workers with ordinal <= num-workers and stops the rest.
func SetActive(args []string) error {
	return defaultRunner().setActive(args)
}

// Decommission terminates every worker of the fleet.
func Decommission(args []string) error {
	return defaultRunner().decommission(args)
}

func (r runner) provision(args []string) error {
	fs := flag.NewFlagSet("skylr-provision", flag.ContinueOnError)
	opts := commonFlags(fs)

	var (
		numWorkers       = fs.Int("num-workers", 1, "desired number of workers")
		imageID          = fs.String("image-id", "", "override instance.image_id")
		instanceType     = fs.String("instance-type", "", "override instance.instance_type")
		subnetID         = fs.String("subnet-id", "", "override instance.subnet_id")
		placementGroupID = fs.String("placement-group-id", "", "override instance.placement_group_id")
		securityGroupIDs = fs.String("security-group-ids", "", "comma-separated list, overrides instance.security_group_ids")
	)

	if err := fs.Parse(args); err != nil {
		return parseErr(err)
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	cfg.Instance.ImageID = utils.Or(*imageID, cfg.Instance.ImageID)
	cfg.Instance.InstanceType = utils.Or(*instanceType, cfg.Instance.InstanceType)
	cfg.Instance.SubnetID = utils.Or(*subnetID, cfg.Instance.SubnetID)
	cfg.Instance.PlacementGroupID = utils.Or(*placementGroupID, cfg.Instance.PlacementGroupID)
	if groups := parseList(*securityGroupIDs); len(groups) > 0 {
		cfg.Instance.SecurityGroupIDs = groups
	}

	return r.run(opts, cfg, func(ctx context.Context, eng *reconciler.Engine) (*reconciler.Report, error) {
		return eng.Provision(ctx, *numWorkers)
	})
}

func (r runner) setActive(args []string) error {
	fs := flag.NewFlagSet("skylr-activate", flag.ContinueOnError)
	opts := commonFlags(fs)
	numWorkers := fs.Int("num-workers", 1, "number of workers to keep running")

	if err := fs.Parse(args); err != nil {
		return parseErr(err)
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	return r.run(opts, cfg, func(ctx context.Context, eng *reconciler.Engine) (*reconciler.Report, error) {
		return eng.SetActive(ctx, *numWorkers)
	})
}

func (r runner) decommission(args []string) error {
	fs := flag.NewFlagSet("skylr-decommission", flag.ContinueOnError)
	opts := commonFlags(fs)

	if err := fs.Parse(args); err != nil {
		return parseErr(err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	return r.run(opts, cfg, func(ctx context.Context, eng *reconciler.Engine) (*reconciler.Report, error) {
		return eng.DecommissionAll(ctx)
	})
}

// run prints the report even when op fails, so partial progress reaches the operator.
func (r runner) run(opts *options, cfg *config.Config, op operation) error {
	// SIGINT/SIGTERM cancel between creates and abort pending waits
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	prov, err := r.newProvider(ctx, cfg, opts.verbose)
	if err != nil {
		return fmt.Errorf("newProvider: %w", err)
	}

	eng := reconciler.New(reconciler.Config{
		Provider: prov,
		Scheme:   namingScheme(cfg),
		DryRun:   opts.dryRun,
	})

	rep, err := op(ctx, eng)
	if rep != nil {
		printReport(r.out, rep, namingScheme(cfg))
	}
	if err != nil {
		return fmt.Errorf("%s: %w", rep.Operation, err)
	}

	return nil
}

func newProvider(ctx context.Context, cfg *config.Config, verbose bool) (provider.Provider, error) {
	var loadOpts []func(*awsconfig.LoadOptions) error

	if cfg.AWS.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.AWS.Region))
	}
	if cfg.AWS.Profile != "" {
		loadOpts = append(loadOpts, awsconfig.WithSharedConfigProfile(cfg.AWS.Profile))
	}
	if verbose {
		loadOpts = append(loadOpts,
			awsconfig.WithLogger(logwriter.SDK("aws")),
			awsconfig.WithClientLogMode(aws.LogRetries|aws.LogRequest),
		)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("awsconfig.LoadDefaultConfig: %w", err)
	}

	log.Printf("[INFO] boot: using region %q", awsCfg.Region)

	return ec2.New(awsec2.NewFromConfig(awsCfg), providerConfig(cfg)), nil
}

func providerConfig(cfg *config.Config) ec2.Config {
	return ec2.Config{
		ImageID:              cfg.Instance.ImageID,
		InstanceType:         cfg.Instance.InstanceType,
		SubnetID:             cfg.Instance.SubnetID,
		PlacementGroupID:     cfg.Instance.PlacementGroupID,
		SecurityGroupIDs:     cfg.Instance.SecurityGroupIDs,
		MetadataHTTPEndpoint: cfg.Instance.Metadata.HTTPEndpoint,
		MetadataHTTPTokens:   cfg.Instance.Metadata.HTTPTokens,
		MetadataHopLimit:     cfg.Instance.Metadata.HTTPPutResponseHopLimit,
		RunningTimeout:       utils.Const(cfg.Waiter.RunningTimeout.Duration),
		TerminatedTimeout:    utils.Const(cfg.Waiter.TerminatedTimeout.Duration),
		MinDelay:             cfg.Waiter.MinDelay.Duration,
		MaxDelay:             cfg.Waiter.MaxDelay.Duration,
	}
}

func namingScheme(cfg *config.Config) fleet.NamingScheme {
	return fleet.NamingScheme{
		NameTagKey:   cfg.Fleet.NameTagKey,
		Prefix:       cfg.Fleet.NamePrefix,
		Separator:    cfg.Fleet.Separator,
		RoleTagKey:   cfg.Fleet.RoleTagKey,
		RoleTagValue: cfg.Fleet.RoleTagValue,
		ExtraTags:    cfg.Fleet.ExtraTags,
	}
}

// printReport writes the summary line followed by one line per affected worker.
func printReport(w io.Writer, rep *reconciler.Report, scheme fleet.NamingScheme) {
	fmt.Fprintln(w, rep.Summary())

	for _, c := range rep.Created {
		fmt.Fprintf(w, "created\t%s\t%s\n", scheme.Name(c.Ordinal), utils.Or(c.Handle, "-"))
	}
	for _, h := range rep.Started {
		fmt.Fprintf(w, "started\t%s\n", h)
	}
	for _, h := range rep.Stopped {
		fmt.Fprintf(w, "stopped\t%s\n", h)
	}
	for _, h := range rep.Terminated {
		fmt.Fprintf(w, "terminated\t%s\n", h)
	}
	for _, c := range rep.Failed() {
		fmt.Fprintf(w, "failed\t%s\t%d instances\t%s\n", c.Action, len(c.Handles), c.Err)
	}
}

// parseList splits a comma-separated flag value, dropping empty items.
func parseList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}

	return out
}

func parseErr(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}

	return fmt.Errorf("flag parse: %w", err)
}
