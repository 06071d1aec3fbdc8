package terraform

import "github.com/hashicorp/hcl/v2"

// HCLInstance represents the create-mode attributes of an aws_instance resource in HCL.
// Every attribute is optional because command-line flags can fill the gaps.
type HCLInstance struct {
	AMI            string            `hcl:"ami,optional"`
	InstanceType   string            `hcl:"instance_type,optional"`
	KeyName        string            `hcl:"key_name,optional"`
	Tags           map[string]string `hcl:"tags,optional"`
	SecurityGroups []string          `hcl:"security_groups,optional"`
	Remain         hcl.Body          `hcl:",remain"` // Other arguments and nested blocks are ignored
}

// ResourceBlock represents a single resource block in HCL.
type ResourceBlock struct {
	Type string   `hcl:"type,label"`
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

// ConfigFile represents the top-level structure containing resource blocks.
type ConfigFile struct {
	Resources []*ResourceBlock `hcl:"resource,block"`
	Remain    hcl.Body         `hcl:",remain"` // Catch-all for other blocks if necessary
}
