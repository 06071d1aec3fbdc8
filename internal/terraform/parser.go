package terraform

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"ec2manager/internal/models"
	"ec2manager/pkg/logging"
)

const (
	awsInstanceType = "aws_instance"
	nameTagKey      = "Name"
)

type DefaultParser struct {
	logger logging.Logger
}

// NewDefaultParser creates a new instance of DefaultParser
func NewDefaultParser() *DefaultParser {
	return NewParserWithLogger(
		logging.NewDefaultLogger(),
	)
}

// NewParserWithLogger creates a new instance of DefaultParser with a specific logger
func NewParserWithLogger(logger logging.Logger) *DefaultParser {
	return &DefaultParser{
		logger: logger,
	}
}

// ParseHCLConfig parses an HCL configuration file and builds an instance specification
// from the first aws_instance resource found. Fields the resource does not set are left empty.
func (p DefaultParser) ParseHCLConfig(configPath string) (*models.InstanceSpec, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(configPath)

	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %s", configPath, diags.Error())
	}

	if file == nil || file.Body == nil {
		return nil, fmt.Errorf("parsed HCL file is empty or invalid: %s", configPath)
	}

	// First, decode the top-level resource blocks
	var cfg ConfigFile
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL body %s: %s", configPath, diags.Error())
	}

	p.logger.Debug("Searching for %s resources in configuration", awsInstanceType)
	for _, res := range cfg.Resources {
		if res.Type != awsInstanceType {
			continue
		}

		p.logger.Info("Found aws_instance resource: %s", res.Name)
		instance, err := p.decodeInstance(res)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s.%s in %s: %w", awsInstanceType, res.Name, configPath, err)
		}

		spec := &models.InstanceSpec{
			Name:         instance.Tags[nameTagKey],
			ImageID:      instance.AMI,
			KeyPairName:  instance.KeyName,
			InstanceType: instance.InstanceType,
		}
		if len(instance.SecurityGroups) > 0 {
			// Instances are launched into a single rule group
			spec.RuleGroupName = instance.SecurityGroups[0]
			if len(instance.SecurityGroups) > 1 {
				p.logger.Warn("aws_instance '%s' lists %d security groups, using %s",
					res.Name, len(instance.SecurityGroups), spec.RuleGroupName)
			}
		}

		p.logger.Debug("Successfully parsed instance settings: type=%s, ami=%s", spec.InstanceType, spec.ImageID)
		return spec, nil
	}

	return nil, fmt.Errorf("no '%s' resource found in %s", awsInstanceType, configPath)
}

// decodeInstance reads the create-mode attributes of an aws_instance block one at a
// time. Terraform files usually reference variables, data sources and other resources,
// none of which can be resolved here, so such attributes are skipped with a warning and
// left for the command-line flags to fill.
func (p DefaultParser) decodeInstance(res *ResourceBlock) (HCLInstance, error) {
	var instance HCLInstance
	schema, _ := gohcl.ImpliedBodySchema(&instance)

	content, _, diags := res.Body.PartialContent(schema)
	if diags.HasErrors() {
		return HCLInstance{}, diags
	}

	targets := map[string]any{
		"ami":             &instance.AMI,
		"instance_type":   &instance.InstanceType,
		"key_name":        &instance.KeyName,
		"tags":            &instance.Tags,
		"security_groups": &instance.SecurityGroups,
	}

	for _, attrSchema := range schema.Attributes {
		attr, ok := content.Attributes[attrSchema.Name]
		if !ok {
			continue
		}
		target, ok := targets[attr.Name]
		if !ok {
			continue
		}
		if diags := gohcl.DecodeExpression(attr.Expr, nil, target); diags.HasErrors() {
			p.logger.Warn("aws_instance '%s': skipping %s, it is not a literal value (%s)",
				res.Name, attr.Name, firstDiagnostic(diags))
		}
	}

	return instance, nil
}

func firstDiagnostic(diags hcl.Diagnostics) string {
	for _, d := range diags {
		if d.Severity == hcl.DiagError {
			return d.Summary
		}
	}
	return diags.Error()
}
