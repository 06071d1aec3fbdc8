package terraform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ec2manager/internal/models"
	"ec2manager/pkg/logging"
	loggerMocks "ec2manager/pkg/logging/mocks"
)

func TestParseHCLConfig_CompleteInstanceSpec(t *testing.T) {
	testFile := filepath.Join("testdata", "valid_instance.tf")

	parser := NewParserWithLogger(logging.NewMockLogger())
	spec, err := parser.ParseHCLConfig(testFile)

	require.NoError(t, err)
	require.NotNil(t, spec)

	assert.Equal(t, "TestInstance", spec.Name)
	assert.Equal(t, "ami-12345678", spec.ImageID)
	assert.Equal(t, "my-keypair", spec.KeyPairName)
	assert.Equal(t, "t2.micro", spec.InstanceType)
	// Only the first security group is used
	assert.Equal(t, "test-security-group", spec.RuleGroupName)
}

func TestParseHCLConfig_PartialInstance(t *testing.T) {
	testFile := filepath.Join("testdata", "partial_instance.tf")

	parser := NewParserWithLogger(logging.NewMockLogger())
	spec, err := parser.ParseHCLConfig(testFile)

	require.NoError(t, err)
	assert.Equal(t, "ami-0c55b159cbfafe1f0", spec.ImageID)
	assert.Empty(t, spec.InstanceType)
	assert.Empty(t, spec.Name)
	assert.Empty(t, spec.RuleGroupName)
}

func TestParseHCLConfig_NoInstance(t *testing.T) {
	testFile := filepath.Join("testdata", "no_instance.tf")

	parser := NewParserWithLogger(logging.NewMockLogger())
	spec, err := parser.ParseHCLConfig(testFile)

	// Should get an error about no aws_instance found
	assert.Error(t, err)
	assert.Nil(t, spec)
}

func TestParseHCLConfig_InvalidHCL(t *testing.T) {
	testFile := filepath.Join("testdata", "invalid_hcl.tf")

	parser := NewParserWithLogger(logging.NewMockLogger())
	spec, err := parser.ParseHCLConfig(testFile)

	assert.Error(t, err)
	assert.Nil(t, spec)
}

func TestParseHCLConfig_VariableReference(t *testing.T) {
	testFile := filepath.Join("testdata", "variable_reference.tf")

	parser := NewParserWithLogger(logging.NewMockLogger())
	spec, err := parser.ParseHCLConfig(testFile)

	require.NoError(t, err)
	assert.Empty(t, spec.ImageID, "var.ami cannot be resolved and is left for --ami-id")
	assert.Equal(t, "t2.micro", spec.InstanceType)
}

func TestParseHCLConfig_ReferencesAreSkipped(t *testing.T) {
	logger := loggerMocks.NewLogger(t)
	logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	logger.On("Debug", mock.Anything, mock.Anything, mock.Anything).Maybe()
	logger.On("Info", "Found aws_instance resource: %s", "app").Once()
	logger.On("Warn", "aws_instance '%s': skipping %s, it is not a literal value (%s)", "app", "ami", mock.Anything).Once()
	logger.On("Warn", "aws_instance '%s': skipping %s, it is not a literal value (%s)", "app", "security_groups", mock.Anything).Once()

	spec, err := NewParserWithLogger(logger).ParseHCLConfig(filepath.Join("testdata", "referenced_instance.tf"))

	require.NoError(t, err)
	assert.Equal(t, models.InstanceSpec{
		Name:         "app-server",
		KeyPairName:  "deploy-key",
		InstanceType: "t3.small",
	}, *spec, "the first aws_instance is used even when some attributes are references")
}

func TestParseHCLConfig_WrongTypeIsSkipped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.tf")
	require.NoError(t, os.WriteFile(path, []byte(`
resource "aws_instance" "web" {
  ami           = "ami-1"
  instance_type = ["t2.micro", "t3.micro"]
  key_name      = "k"
}
`), 0o600))

	logger := loggerMocks.NewLogger(t)
	logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	logger.On("Debug", mock.Anything, mock.Anything, mock.Anything).Maybe()
	logger.On("Info", "Found aws_instance resource: %s", "web").Once()
	logger.On("Warn", "aws_instance '%s': skipping %s, it is not a literal value (%s)", "web", "instance_type", "Unsuitable value type").Once()

	spec, err := NewParserWithLogger(logger).ParseHCLConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "ami-1", spec.ImageID)
	assert.Equal(t, "k", spec.KeyPairName)
	assert.Empty(t, spec.InstanceType)
}

func TestParseHCLConfig_NonExistentFile(t *testing.T) {
	parser := NewParserWithLogger(logging.NewMockLogger())
	spec, err := parser.ParseHCLConfig("testdata/non_existent_file.tf")

	assert.Error(t, err)
	assert.Nil(t, spec)
}

// This test covers the DefaultParser implementation
func TestDefaultParser_ParseHCLConfig(t *testing.T) {
	parser := NewDefaultParser()
	testFile := filepath.Join("testdata", "valid_instance.tf")

	spec, err := parser.ParseHCLConfig(testFile)

	assert.NoError(t, err)
	require.NotNil(t, spec)
	assert.Equal(t, "t2.micro", spec.InstanceType)
}

func TestParseHCLConfig_WarnsAboutExtraSecurityGroups(t *testing.T) {
	logger := loggerMocks.NewLogger(t)
	logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	logger.On("Debug", mock.Anything, mock.Anything, mock.Anything).Maybe()
	logger.On("Info", "Found aws_instance resource: %s", "web").Once()
	logger.On("Warn", "aws_instance '%s' lists %d security groups, using %s", "web", 2, "test-security-group").Once()

	spec, err := NewParserWithLogger(logger).ParseHCLConfig(filepath.Join("testdata", "valid_instance.tf"))

	require.NoError(t, err)
	assert.Equal(t, "test-security-group", spec.RuleGroupName)
}
