package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"ec2manager/internal/models"
)

// OutputFormatType defines the format types for command output.
type OutputFormatType string

const (
	// OutputFormatTypeJSON represents JSON output format
	OutputFormatTypeJSON OutputFormatType = "JSON"
	// OutputFormatTypeTABLE represents table output format
	OutputFormatTypeTABLE OutputFormatType = "TABLE"
)

// DefaultPlaceholder is shown in tables for attributes the provider has not assigned yet.
const DefaultPlaceholder = "N/A"

// terminationReport is the JSON shape of a destroy result.
type terminationReport struct {
	Terminated []string `json:"terminated"`
}

// DefaultPrinter is the default implementation of the report printer
type DefaultPrinter struct {
	out         io.Writer
	placeholder string
}

// PrinterOption configures a DefaultPrinter.
type PrinterOption func(*DefaultPrinter)

// WithPlaceholder sets the text printed in table cells that have no value.
// An empty placeholder keeps the default.
func WithPlaceholder(placeholder string) PrinterOption {
	return func(p *DefaultPrinter) {
		if placeholder != "" {
			p.placeholder = placeholder
		}
	}
}

// NewDefaultPrinter creates a printer writing to w. A nil writer means stdout.
func NewDefaultPrinter(w io.Writer, opts ...PrinterOption) *DefaultPrinter {
	if w == nil {
		w = os.Stdout
	}
	p := &DefaultPrinter{out: w, placeholder: DefaultPlaceholder}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// PrintInstance prints a freshly provisioned instance.
func (p *DefaultPrinter) PrintInstance(instance *models.ProvisionedInstance, format OutputFormatType) error {
	if instance == nil {
		return fmt.Errorf("no instance to print")
	}

	switch format {
	case OutputFormatTypeJSON:
		return p.printJSON(instance)
	case OutputFormatTypeTABLE:
		writer := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(writer, "ID\tNAME\tTYPE\tPUBLIC IP\tSECURITY GROUPS")
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n",
			instance.InstanceID,
			p.formatValue(instance.Name),
			instance.InstanceType,
			p.formatValue(instance.PublicIPAddress),
			p.formatGroups(instance.RuleGroupNames))
		return writer.Flush()
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// PrintInstances prints one row per listed instance.
func (p *DefaultPrinter) PrintInstances(instances []models.InstanceSummary, format OutputFormatType) error {
	switch format {
	case OutputFormatTypeJSON:
		if instances == nil {
			instances = []models.InstanceSummary{}
		}
		return p.printJSON(instances)
	case OutputFormatTypeTABLE:
		if len(instances) == 0 {
			_, err := fmt.Fprintln(p.out, "No instances found")
			return err
		}

		writer := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(writer, "NAME\tID\tPUBLIC IP\tTYPE\tSTATE\tSECURITY GROUPS")
		for _, inst := range instances {
			fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\t%s\n",
				p.formatValue(inst.Name),
				inst.InstanceID,
				p.formatValue(inst.PublicIPAddress),
				inst.InstanceType,
				p.formatValue(inst.State),
				p.formatGroups(inst.RuleGroupNames))
		}
		fmt.Fprintln(writer, "")
		fmt.Fprintf(writer, "Summary: %d instances found\n", len(instances))
		return writer.Flush()
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// PrintTermination confirms that the given instances reached the terminated state.
func (p *DefaultPrinter) PrintTermination(instanceIDs []string, format OutputFormatType) error {
	switch format {
	case OutputFormatTypeJSON:
		ids := instanceIDs
		if ids == nil {
			ids = []string{}
		}
		return p.printJSON(terminationReport{Terminated: ids})
	case OutputFormatTypeTABLE:
		for _, id := range instanceIDs {
			if _, err := fmt.Fprintf(p.out, "Instance %s has been terminated.\n", id); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func (p *DefaultPrinter) printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling output to JSON: %w", err)
	}
	_, err = fmt.Fprintln(p.out, string(data))
	return err
}

// formatValue formats values for better display in the table
func (p *DefaultPrinter) formatValue(s string) string {
	if s == "" {
		return p.placeholder
	}
	return s
}

func (p *DefaultPrinter) formatGroups(groups []string) string {
	if len(groups) == 0 {
		return p.placeholder
	}
	return strings.Join(groups, ",")
}
