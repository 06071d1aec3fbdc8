package terraform

import "ec2manager/internal/models"

// IProvider is the interface for reading instance settings from Terraform files
//
//go:generate mockery --name=IProvider --output=./mocks
type IProvider interface {
	ParseHCLConfig(configPath string) (*models.InstanceSpec, error)
}
