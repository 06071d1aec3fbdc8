package orchestrator

import (
	"time"

	"ec2manager/internal/models"
)

// Config contains the parameters the CLI supplies to the provisioning workflow.
type Config struct {
	Region               string             // Provider region
	WaitTimeout          time.Duration      // Maximum time a running/terminated wait may take
	RuleGroupDescription string             // Description used when a rule group has to be created
	Ingress              models.IngressRule // Rule authorized on a newly created rule group
	UntaggedName         string             // Display name for instances without a Name tag
	OutputFormat         string             // Output format (json or table)
	RollbackOnFailure    bool               // Undo already-created resources when provisioning fails
	ConcurrencyLimit     int                // Maximum number of concurrent terminations (0 = unlimited)
	AttributesToCheck    []string           // Attributes compared after provisioning (empty = all)
}

// Phase is a step of a single provisioning run.
type Phase string

const (
	PhaseRequested          Phase = "requested"
	PhaseRuleGroupResolving Phase = "rule_group_resolving"
	PhaseInstanceRequested  Phase = "instance_requested"
	PhaseWaitingRunning     Phase = "waiting_running"
	PhaseRunning            Phase = "running"
	PhaseFailed             Phase = "failed"
)

// IsTerminal reports whether no further transition can follow this phase.
func (p Phase) IsTerminal() bool {
	return p == PhaseRunning || p == PhaseFailed
}

// terminationResult is the outcome of terminating a single instance.
type terminationResult struct {
	InstanceID string
	Error      error
}
