package models

// InstanceSpec describes the instance a user asked for. It is built once by the CLI
// and consumed by a single provisioning run.
type InstanceSpec struct {
	Name          string `json:"name"`
	ImageID       string `json:"image_id"`
	KeyPairName   string `json:"key_pair_name"`
	InstanceType  string `json:"instance_type"`
	RuleGroupName string `json:"rule_group_name"`
}

// RuleGroupRef identifies a security group on the provider side.
type RuleGroupRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// IngressRule is a single inbound permission on a rule group.
type IngressRule struct {
	Protocol string
	Port     int32
	CIDR     string
}

// CreateInstancesRequest describes an instance launch request.
type CreateInstancesRequest struct {
	ImageID        string
	Count          int32
	InstanceType   string
	KeyPairName    string
	RuleGroupNames []string
	Tags           map[string]string
}

// InstanceHandle is what the gateway hands back right after an instance is requested.
type InstanceHandle struct {
	InstanceID string
}

// InstanceAttributes is the gateway's current view of one instance.
type InstanceAttributes struct {
	InstanceID      string
	InstanceType    string
	ImageID         string
	KeyPairName     string
	State           string
	PublicIPAddress string // empty until assigned
	RuleGroupNames  []string
	Tags            map[string]string
}

// ProvisionedInstance is returned once an instance has reached the running state.
type ProvisionedInstance struct {
	InstanceID      string   `json:"instance_id"`
	PublicIPAddress string   `json:"public_ip_address,omitempty"`
	InstanceType    string   `json:"instance_type"`
	RuleGroupNames  []string `json:"security_groups"`
	Name            string   `json:"name"`
}

// InstanceSummary is one row of an instance listing.
type InstanceSummary struct {
	InstanceID      string   `json:"instance_id"`
	InstanceType    string   `json:"instance_type"`
	PublicIPAddress string   `json:"public_ip_address,omitempty"`
	RuleGroupNames  []string `json:"security_groups"`
	Name            string   `json:"name"`
	State           string   `json:"state,omitempty"`
}

// DriftDetail represents the difference found for a specific attribute.
type DriftDetail struct {
	Attribute      string
	RequestedValue any
	ActualValue    any
}
