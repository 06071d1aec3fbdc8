package report

import "ec2manager/internal/models"

// IPrinter is the interface for rendering command results
//
//go:generate mockery --name=IPrinter --output=./mocks
type IPrinter interface {
	PrintInstance(instance *models.ProvisionedInstance, format OutputFormatType) error
	PrintInstances(instances []models.InstanceSummary, format OutputFormatType) error
	PrintTermination(instanceIDs []string, format OutputFormatType) error
}
