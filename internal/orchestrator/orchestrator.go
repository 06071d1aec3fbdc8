package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"ec2manager/internal/driftcheck"
	"ec2manager/internal/models"
	aws "ec2manager/internal/providers/aws"
	"ec2manager/internal/report"
	"ec2manager/pkg/logging"
)

// Service orchestrates rule group resolution, instance provisioning, listing and termination.
type Service struct {
	config        Config
	gateway       aws.GatewayAPI
	reportPrinter report.IPrinter
	logger        logging.Logger
}

// NewService creates a new orchestrator service with the given configuration.
func NewService(
	config Config,
	gateway aws.GatewayAPI,
	reportPrinter report.IPrinter,
	logger logging.Logger,
) *Service {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	return &Service{
		config:        config,
		gateway:       gateway,
		reportPrinter: reportPrinter,
		logger:        logger,
	}
}

// NewDefaultService creates a new service with default implementations of dependencies
func NewDefaultService(ctx context.Context, config Config, logger logging.Logger) (*Service, error) {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}

	opts := []aws.Option{aws.WithLogger(logger)}
	if config.WaitTimeout > 0 {
		opts = append(opts, aws.WithWaitTimeout(config.WaitTimeout))
	}

	gateway, err := aws.NewGatewayWithDefaultConfig(ctx, config.Region, opts...)
	if err != nil {
		return nil, gatewayError(err, ErrGatewayUnavailable, "failed to initialize AWS gateway", "")
	}

	printer := report.NewDefaultPrinter(os.Stdout, report.WithPlaceholder(config.UntaggedName))
	return NewService(config, gateway, printer, logger), nil
}

// EnsureRuleGroup returns the rule group with the given name, creating it and
// authorizing the configured ingress rule when it does not exist yet.
func (s *Service) EnsureRuleGroup(ctx context.Context, name string) (models.RuleGroupRef, error) {
	var rollback rollbackStack
	ref, err := s.ensureRuleGroup(ctx, name, &rollback)
	if err != nil {
		s.unwind(ctx, &rollback)
		return models.RuleGroupRef{}, err
	}
	return ref, nil
}

func (s *Service) ensureRuleGroup(ctx context.Context, name string, rollback *rollbackStack) (models.RuleGroupRef, error) {
	if name == "" {
		return models.RuleGroupRef{}, NewProvisionError(ErrConfiguration, "rule group name is required", "", nil)
	}

	existing, err := s.gateway.FindRuleGroup(ctx, name)
	if err != nil {
		return models.RuleGroupRef{}, gatewayError(err, ErrProvisioningFailed, "failed to look up rule group", name)
	}
	if existing != nil {
		s.logger.Info("Security group %s already exists (%s)", name, existing.ID)
		return *existing, nil
	}

	// Two concurrent runs can both get here; the loser's create is rejected as a duplicate.
	ref, err := s.gateway.CreateRuleGroup(ctx, name, s.config.RuleGroupDescription)
	if err != nil {
		return models.RuleGroupRef{}, gatewayError(err, ErrProvisioningFailed, "failed to create rule group", name)
	}
	s.logger.Info("Created security group %s with ID: %s", name, ref.ID)

	rollback.Push(func(ctx context.Context) error {
		s.logger.Warn("Deleting security group %s", ref.ID)
		return s.gateway.DeleteRuleGroup(ctx, ref)
	})

	if err := s.gateway.AuthorizeIngress(ctx, ref, s.config.Ingress); err != nil {
		return models.RuleGroupRef{}, gatewayError(err, ErrProvisioningFailed, "failed to authorize ingress on rule group", name)
	}

	return ref, nil
}

// ProvisionInstance creates one instance from spec and blocks until it is running.
func (s *Service) ProvisionInstance(ctx context.Context, spec models.InstanceSpec) (*models.ProvisionedInstance, error) {
	run := &provisioningRun{name: spec.Name, phase: PhaseRequested, logger: s.logger}
	var rollback rollbackStack

	fail := func(err *ProvisionError) (*models.ProvisionedInstance, error) {
		err.Phase = run.phase
		run.enter(PhaseFailed)
		s.unwind(ctx, &rollback)
		return nil, err
	}

	if err := validateSpec(spec); err != nil {
		return fail(err)
	}

	run.enter(PhaseRuleGroupResolving)
	if _, err := s.ensureRuleGroup(ctx, spec.RuleGroupName, &rollback); err != nil {
		var perr *ProvisionError
		if !errors.As(err, &perr) {
			perr = gatewayError(err, ErrProvisioningFailed, "failed to resolve rule group", spec.RuleGroupName)
		}
		return fail(perr)
	}

	run.enter(PhaseInstanceRequested)
	handles, err := s.gateway.CreateInstances(ctx, models.CreateInstancesRequest{
		ImageID:        spec.ImageID,
		Count:          1,
		InstanceType:   spec.InstanceType,
		KeyPairName:    spec.KeyPairName,
		RuleGroupNames: []string{spec.RuleGroupName},
		Tags:           aws.NameTags(spec.Name),
	})
	if err != nil {
		return fail(gatewayError(err, ErrProvisioningFailed, "instance request was rejected", spec.Name))
	}
	if len(handles) == 0 {
		return fail(NewProvisionError(ErrProvisioningFailed, "provider returned no instance", spec.Name, nil))
	}
	handle := handles[0]
	s.logger.Info("Requested instance %s", handle.InstanceID)

	rollback.Push(func(ctx context.Context) error {
		s.logger.Warn("Terminating instance %s", handle.InstanceID)
		if err := s.gateway.Terminate(ctx, handle.InstanceID); err != nil {
			return err
		}
		return s.gateway.WaitUntilTerminated(ctx, handle.InstanceID)
	})

	run.enter(PhaseWaitingRunning)
	if err := s.gateway.WaitUntilRunning(ctx, handle); err != nil {
		return fail(gatewayError(err, ErrProvisioningFailed, "instance did not reach the running state", handle.InstanceID))
	}

	attrs, err := s.gateway.Refresh(ctx, handle)
	if err != nil {
		return fail(gatewayError(err, ErrProvisioningFailed, "failed to refresh instance attributes", handle.InstanceID))
	}

	run.enter(PhaseRunning)
	s.warnOnDrift(&spec, attrs)

	return &models.ProvisionedInstance{
		InstanceID:      attrs.InstanceID,
		PublicIPAddress: attrs.PublicIPAddress,
		InstanceType:    attrs.InstanceType,
		RuleGroupNames:  attrs.RuleGroupNames,
		Name:            aws.NameTag(attrs.Tags, s.config.UntaggedName),
	}, nil
}

// ListInstances returns every instance visible to the caller, terminated ones included.
func (s *Service) ListInstances(ctx context.Context) ([]models.InstanceSummary, error) {
	instances, err := s.gateway.ListAllInstances(ctx)
	if err != nil {
		return nil, gatewayError(err, ErrGatewayUnavailable, "failed to list instances", "")
	}

	summaries := make([]models.InstanceSummary, 0, len(instances))
	for _, inst := range instances {
		summaries = append(summaries, models.InstanceSummary{
			InstanceID:      inst.InstanceID,
			InstanceType:    inst.InstanceType,
			PublicIPAddress: inst.PublicIPAddress,
			RuleGroupNames:  inst.RuleGroupNames,
			Name:            aws.NameTag(inst.Tags, s.config.UntaggedName),
			State:           inst.State,
		})
	}
	return summaries, nil
}

// TerminateInstance terminates one instance and blocks until it is terminated.
func (s *Service) TerminateInstance(ctx context.Context, instanceID string) error {
	if instanceID == "" {
		return NewProvisionError(ErrConfiguration, "instance id is required", "", nil)
	}

	if err := s.gateway.Terminate(ctx, instanceID); err != nil {
		return gatewayError(err, ErrTerminationFailed, "termination request was rejected", instanceID)
	}
	s.logger.Info("Termination request sent for instance %s", instanceID)

	s.logger.Info("Waiting for instance %s to be fully terminated...", instanceID)
	if err := s.gateway.WaitUntilTerminated(ctx, instanceID); err != nil {
		return gatewayError(err, ErrTerminationFailed, "could not confirm termination", instanceID)
	}
	s.logger.Info("Instance %s has been terminated", instanceID)
	return nil
}

// TerminateInstances terminates several instances concurrently. It returns the ids
// that were confirmed terminated, in input order, and the failures joined.
func (s *Service) TerminateInstances(ctx context.Context, instanceIDs []string) ([]string, error) {
	if len(instanceIDs) == 0 {
		return nil, NewProvisionError(ErrConfiguration, "at least one instance id is required", "", nil)
	}

	var g errgroup.Group
	// Set the concurrency limit if specified
	if s.config.ConcurrencyLimit > 0 {
		g.SetLimit(s.config.ConcurrencyLimit)
	}

	results := make([]terminationResult, len(instanceIDs))
	for i, instanceID := range instanceIDs {
		g.Go(func() error {
			results[i] = terminationResult{
				InstanceID: instanceID,
				Error:      s.TerminateInstance(ctx, instanceID),
			}
			return nil
		})
	}
	_ = g.Wait()

	terminated := make([]string, 0, len(results))
	var errs []error
	for _, r := range results {
		if r.Error != nil {
			errs = append(errs, r.Error)
			continue
		}
		terminated = append(terminated, r.InstanceID)
	}
	return terminated, errors.Join(errs...)
}

// Create provisions an instance and prints it.
func (s *Service) Create(ctx context.Context, spec models.InstanceSpec) error {
	instance, err := s.ProvisionInstance(ctx, spec)
	if err != nil {
		return err
	}
	return s.reportPrinter.PrintInstance(instance, s.getOutputFormat())
}

// List prints every visible instance.
func (s *Service) List(ctx context.Context) error {
	instances, err := s.ListInstances(ctx)
	if err != nil {
		return err
	}
	return s.reportPrinter.PrintInstances(instances, s.getOutputFormat())
}

// Destroy terminates the given instances and prints a confirmation for each one
// that reached the terminated state, even when others failed.
func (s *Service) Destroy(ctx context.Context, instanceIDs []string) error {
	terminated, err := s.TerminateInstances(ctx, instanceIDs)
	if len(terminated) > 0 {
		if printErr := s.reportPrinter.PrintTermination(terminated, s.getOutputFormat()); printErr != nil {
			return errors.Join(err, printErr)
		}
	}
	return err
}

// warnOnDrift logs every attribute where the running instance differs from the request.
func (s *Service) warnOnDrift(spec *models.InstanceSpec, attrs *models.InstanceAttributes) {
	result, err := driftcheck.DetectDrift(spec, attrs, s.config.AttributesToCheck)
	if err != nil {
		s.logger.Warn("Skipping conformance check for instance %s: %v", attrs.InstanceID, err)
		return
	}
	for _, d := range driftcheck.ConvertToDrifts(result) {
		s.logger.Warn("Instance %s: %s requested %v but provider reports %v",
			attrs.InstanceID, d.Attribute, d.RequestedValue, d.ActualValue)
	}
}

// unwind undoes already-applied steps when rollback is enabled.
func (s *Service) unwind(ctx context.Context, rollback *rollbackStack) {
	if rollback.Len() == 0 {
		return
	}
	if !s.config.RollbackOnFailure {
		s.logger.Warn("Leaving %d partially created resources in place", rollback.Len())
		return
	}

	// The run may have failed because ctx was cancelled; cleanup still has to reach the provider.
	if err := rollback.Unwind(context.WithoutCancel(ctx)); err != nil {
		s.logger.Error("Rollback incomplete: %v", err)
		return
	}
	s.logger.Info("Rolled back partially created resources")
}

// getOutputFormat converts the string format to report.OutputFormatType.
func (s *Service) getOutputFormat() report.OutputFormatType {
	switch strings.ToUpper(s.config.OutputFormat) {
	case "JSON":
		return report.OutputFormatTypeJSON
	default:
		return report.OutputFormatTypeTABLE
	}
}

// validateSpec checks if the required create-mode input is provided.
func validateSpec(spec models.InstanceSpec) *ProvisionError {
	var missing []string
	if spec.Name == "" {
		missing = append(missing, "name")
	}
	if spec.ImageID == "" {
		missing = append(missing, "image id")
	}
	if spec.KeyPairName == "" {
		missing = append(missing, "key pair name")
	}
	if spec.InstanceType == "" {
		missing = append(missing, "instance type")
	}
	if spec.RuleGroupName == "" {
		missing = append(missing, "rule group name")
	}
	if len(missing) > 0 {
		return NewProvisionError(ErrConfiguration,
			fmt.Sprintf("missing required instance settings: %s", strings.Join(missing, ", ")), spec.Name, nil)
	}
	return nil
}

// provisioningRun tracks the phase of a single ProvisionInstance call.
type provisioningRun struct {
	name   string
	phase  Phase
	logger logging.Logger
}

func (r *provisioningRun) enter(next Phase) {
	if r.phase.IsTerminal() {
		return
	}
	r.logger.Debug("Instance %q: %s -> %s", r.name, r.phase, next)
	r.phase = next
}
