package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ec2manager/internal/config"
	"ec2manager/internal/driftcheck"
	"ec2manager/internal/models"
	"ec2manager/internal/orchestrator"
	"ec2manager/internal/terraform"
	"ec2manager/pkg/logging"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// interruptedHint is printed when the user stops a run before the provider confirmed it.
const interruptedHint = "Interrupted: requests already sent may still complete; run 'ec2manager --list' to check"

type mode int

const (
	modeNone mode = iota
	modeCreate
	modeList
	modeDestroy
)

// commandService is the part of the orchestrator the CLI drives.
type commandService interface {
	Create(ctx context.Context, spec models.InstanceSpec) error
	List(ctx context.Context) error
	Destroy(ctx context.Context, instanceIDs []string) error
}

// newService builds the service for a resolved configuration. Tests replace it.
var newService = func(ctx context.Context, cfg orchestrator.Config, logger logging.Logger) (commandService, error) {
	service, err := orchestrator.NewDefaultService(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	return service, nil
}

// newParser builds the reader for --from-file. Tests replace it.
var newParser = func(logger logging.Logger) terraform.IProvider {
	return terraform.NewParserWithLogger(logger)
}

type options struct {
	create  bool
	list    bool
	destroy bool

	name         string
	amiID        string
	keyName      string
	instanceType string
	instanceIDs  []string

	configPath    string
	fromFile      string
	region        string
	securityGroup string
	output        string
	logLevel      string
	rollback      bool
	concurrency   int
	checkAttrs    []string
}

// usageError marks failures caused by how the command was invoked.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "ec2manager",
		Short: "AWS EC2: Create and manage EC2 instances",
		Long: `Create, list and destroy EC2 instances.

Create mode launches one instance into the configured SSH security group,
creating the group first when it does not exist, and waits until it runs.`,
		Example: `  ec2manager -c -n TestInstance -a ami-12345678 -k my-keypair
  ec2manager -c --from-file main.tf -n TestInstance
  ec2manager -l --output json
  ec2manager -d -i i-0123456789abcdef0`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return &usageError{err: fmt.Errorf("unexpected arguments: %s", strings.Join(args, " "))}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	flags := cmd.Flags()
	flags.BoolVarP(&opts.create, "create", "c", false, "Create a new EC2 instance")
	flags.StringVarP(&opts.name, "name", "n", "", "Name to assign to the EC2 instance")
	flags.StringVarP(&opts.amiID, "ami-id", "a", "", "Id of the Amazon machine image")
	flags.StringVarP(&opts.keyName, "key-name", "k", "", "Name of the key pair for SSH access")
	flags.StringVarP(&opts.instanceType, "type-instance", "t", config.DefaultInstanceType, "Type of instance")
	flags.BoolVarP(&opts.list, "list", "l", false, "List all EC2 instances")
	flags.BoolVarP(&opts.destroy, "destroy", "d", false, "Destroy existing EC2 instances")
	flags.StringSliceVarP(&opts.instanceIDs, "instance-id", "i", nil, "Instance ID to destroy (repeatable or comma separated)")

	flags.StringVar(&opts.configPath, "config", "", "Path to a YAML file with tool defaults")
	flags.StringVar(&opts.fromFile, "from-file", "", "Terraform file whose aws_instance block supplies create settings")
	flags.StringVar(&opts.region, "region", "", "AWS region (default from config, us-east-1)")
	flags.StringVar(&opts.securityGroup, "security-group", "", "Security group to launch into (default from config, SSHAccess)")
	flags.StringVarP(&opts.output, "output", "o", "", "Output format: table or json")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	flags.BoolVar(&opts.rollback, "rollback", false, "Delete resources created by a failed create")
	flags.IntVar(&opts.concurrency, "concurrency", 0, "Maximum number of instances destroyed concurrently (0 = unlimited)")
	flags.StringSliceVar(&opts.checkAttrs, "check-attributes", nil, "Attributes compared after launch, e.g. instance_type,ami (default all)")

	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	m, err := resolveMode(opts)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return &usageError{err: err}
	}

	logger := logging.NewDefaultLogger()
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetLevel(logging.StringToLogLevel(cfg.LogLevel))

	var spec models.InstanceSpec
	if m == modeCreate {
		spec, err = buildSpec(cmd, opts, cfg, logger)
		if err != nil {
			return err
		}
	}

	ctx := cmd.Context()
	service, err := newService(ctx, serviceConfig(cfg), logger)
	if err != nil {
		return err
	}

	switch m {
	case modeCreate:
		return service.Create(ctx, spec)
	case modeList:
		return service.List(ctx)
	case modeDestroy:
		return service.Destroy(ctx, dedupe(opts.instanceIDs))
	default:
		return orchestrator.NewProvisionError(orchestrator.ErrConfiguration, "no mode selected", "", nil)
	}
}

// resolveMode picks the single requested mode and checks that its required flags are present.
func resolveMode(opts *options) (mode, error) {
	var selected []string
	m := modeNone
	if opts.create {
		selected = append(selected, "--create")
		m = modeCreate
	}
	if opts.list {
		selected = append(selected, "--list")
		m = modeList
	}
	if opts.destroy {
		selected = append(selected, "--destroy")
		m = modeDestroy
	}

	switch {
	case len(selected) == 0:
		return modeNone, orchestrator.NewProvisionError(orchestrator.ErrConfiguration,
			"one of --create, --list or --destroy is required", "", nil)
	case len(selected) > 1:
		return modeNone, orchestrator.NewProvisionError(orchestrator.ErrConfiguration,
			fmt.Sprintf("%s cannot be combined", strings.Join(selected, " and ")), "", nil)
	}

	if m == modeDestroy && len(dedupe(opts.instanceIDs)) == 0 {
		return modeNone, orchestrator.NewProvisionError(orchestrator.ErrConfiguration,
			"--destroy requires --instance-id", "", nil)
	}

	return m, nil
}

// loadConfig reads the defaults file and applies command-line overrides.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg, err := config.LoadFile(opts.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if opts.region != "" {
		cfg.Region = opts.region
	}
	if opts.securityGroup != "" {
		cfg.RuleGroupName = opts.securityGroup
	}
	if opts.output != "" {
		cfg.OutputFormat = opts.output
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("rollback") {
		cfg.RollbackOnFailure = opts.rollback
	}
	if flags.Changed("concurrency") {
		cfg.ConcurrencyLimit = opts.concurrency
	}
	if flags.Changed("check-attributes") {
		cfg.ConformanceAttributes = opts.checkAttrs
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := driftcheck.ValidateAttributes(cfg.ConformanceAttributes); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	return cfg, nil
}

// buildSpec assembles the create-mode request. Values from --from-file are
// overridden by explicit flags; the rule group and class fall back to config.
func buildSpec(cmd *cobra.Command, opts *options, cfg *config.Config, logger logging.Logger) (models.InstanceSpec, error) {
	var spec models.InstanceSpec
	if opts.fromFile != "" {
		fromFile, err := newParser(logger).ParseHCLConfig(opts.fromFile)
		if err != nil {
			return models.InstanceSpec{}, orchestrator.NewProvisionError(orchestrator.ErrConfiguration,
				"failed to read --from-file", opts.fromFile, err)
		}
		spec = *fromFile
	}

	flags := cmd.Flags()
	if opts.name != "" {
		spec.Name = opts.name
	}
	if opts.amiID != "" {
		spec.ImageID = opts.amiID
	}
	if opts.keyName != "" {
		spec.KeyPairName = opts.keyName
	}
	switch {
	case flags.Changed("type-instance"):
		spec.InstanceType = opts.instanceType
	case spec.InstanceType == "":
		spec.InstanceType = cfg.InstanceType
	}
	if opts.securityGroup != "" || spec.RuleGroupName == "" {
		spec.RuleGroupName = cfg.RuleGroupName
	}

	var missing []string
	if spec.Name == "" {
		missing = append(missing, "--name")
	}
	if spec.ImageID == "" {
		missing = append(missing, "--ami-id")
	}
	if spec.KeyPairName == "" {
		missing = append(missing, "--key-name")
	}
	if len(missing) > 0 {
		return models.InstanceSpec{}, orchestrator.NewProvisionError(orchestrator.ErrConfiguration,
			fmt.Sprintf("--create requires %s", strings.Join(missing, ", ")), "", nil)
	}

	return spec, nil
}

func serviceConfig(cfg *config.Config) orchestrator.Config {
	return orchestrator.Config{
		Region:               cfg.Region,
		WaitTimeout:          cfg.WaitTimeout,
		RuleGroupDescription: cfg.RuleGroupDescription,
		Ingress: models.IngressRule{
			Protocol: strings.ToLower(cfg.Ingress.Protocol),
			Port:     cfg.Ingress.Port,
			CIDR:     cfg.Ingress.CIDR,
		},
		UntaggedName:      cfg.UntaggedName,
		OutputFormat:      cfg.OutputFormat,
		RollbackOnFailure: cfg.RollbackOnFailure,
		ConcurrencyLimit:  cfg.ConcurrencyLimit,
		AttributesToCheck: cfg.ConformanceAttributes,
	}
}

// dedupe trims ids and drops empty and repeated ones, keeping first occurrences.
func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}

// exitCode maps a command error onto the process exit status.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var uerr *usageError
	if errors.As(err, &uerr) || orchestrator.IsErrorCategory(err, orchestrator.ErrConfiguration) {
		return exitUsage
	}
	return exitFailure
}
