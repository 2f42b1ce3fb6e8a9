package commands

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/bjb28/pws-api-wrapper/internal/auth"
	"github.com/bjb28/pws-api-wrapper/internal/constants"
)

// Config is the persisted CLI configuration.
type Config struct {
	APIKey            string `json:"api_key,omitempty"             yaml:"api_key,omitempty"`
	BaseURL           string `json:"base_url,omitempty"            yaml:"base_url,omitempty"`
	Output            string `json:"output,omitempty"              yaml:"output,omitempty"`
	Verbose           bool   `json:"verbose"                       yaml:"verbose"`
	NATSURL           string `json:"nats_url,omitempty"            yaml:"nats_url,omitempty"`
	NATSSubjectPrefix string `json:"nats_subject_prefix,omitempty" yaml:"nats_subject_prefix,omitempty"`
}

// loadConfig reads the effective configuration from viper.
func loadConfig() *Config {
	return &Config{
		APIKey:            viper.GetString(KeyAPIKey),
		BaseURL:           viper.GetString(KeyBaseURL),
		Output:            viper.GetString(KeyOutput),
		Verbose:           viper.GetBool(KeyVerbose),
		NATSURL:           viper.GetString(KeyNATSURL),
		NATSSubjectPrefix: viper.GetString(KeyNATSSubjectPrefix),
	}
}

// ConfigPath returns the file configuration is written to.
func ConfigPath() (string, error) {
	if used := viper.ConfigFileUsed(); used != "" {
		return used, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to find home directory: %w", err)
	}

	return filepath.Join(home, ".pws", "config.yml"), nil
}

// saveConfigValue stores key=value in the configuration file, creating it
// with owner-only permissions.
func saveConfigValue(key string, value any) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// A separate instance so flag and environment overrides are not
	// written to disk.
	file := viper.New()
	file.SetConfigFile(path)
	file.SetConfigType("yaml")

	if _, statErr := os.Stat(path); statErr == nil {
		err = file.ReadInConfig()
		if err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	file.Set(key, value)

	err = file.WriteConfigAs(path)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	err = os.Chmod(path, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to set config file permissions: %w", err)
	}

	viper.Set(key, value)

	return nil
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the pws CLI configuration stored in ~/.pws/config.yml",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigSetKeyCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective configuration. The API key is masked.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			if config.APIKey != "" {
				config.APIKey = auth.Mask(config.APIKey)
			}

			format, err := OutputFormat()
			if err != nil {
				return err
			}

			done, err := writeStructured(cmd.OutOrStdout(), format, config)
			if done || err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("Key", "Value")

			_ = table.Append(KeyAPIKey, valueOrNA(config.APIKey))
			_ = table.Append(KeyBaseURL, valueOrNA(config.BaseURL))
			_ = table.Append(KeyOutput, valueOrNA(config.Output))
			_ = table.Append(KeyVerbose, strconv.FormatBool(config.Verbose))
			_ = table.Append(KeyNATSURL, valueOrNA(config.NATSURL))
			_ = table.Append(KeyNATSSubjectPrefix, valueOrNA(config.NATSSubjectPrefix))

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			if path, err := ConfigPath(); err == nil {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\nConfig file: %s\n", path)
			}

			return nil
		},
	}
}

func valueOrNA(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value. Keys: " + strings.Join(ConfigKeys, ", "),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := parseConfigValue(args[0], args[1])
			if err != nil {
				return err
			}

			err = saveConfigValue(args[0], value)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", args[0])

			return nil
		},
	}
}

// parseConfigValue validates value for key and converts it to the stored
// type.
func parseConfigValue(key, value string) (any, error) {
	if !slices.Contains(ConfigKeys, key) {
		return nil, fmt.Errorf("%w: %q (valid keys: %s)", constants.ErrUnknownConfigKey, key, strings.Join(ConfigKeys, ", "))
	}

	switch key {
	case KeyVerbose:
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("verbose must be true or false: %w", err)
		}

		return enabled, nil
	case KeyOutput:
		switch strings.ToLower(value) {
		case constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
			return strings.ToLower(value), nil
		default:
			return nil, fmt.Errorf("%w: %q (use table, json or yaml)", constants.ErrInvalidOutputFormat, value)
		}
	case KeyAPIKey:
		if strings.TrimSpace(value) == "" {
			return nil, constants.ErrEmptyAPIKey
		}

		return strings.TrimSpace(value), nil
	default:
		return value, nil
	}
}

func newConfigSetKeyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-key [KEY]",
		Short: "Store the pentest.ws API key",
		Long: "Store the API key in the config file. Without an argument the key " +
			"is read from the terminal without echo.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var key string

			if len(args) == 1 {
				key = args[0]
			} else {
				prompted, err := promptAPIKey(cmd)
				if err != nil {
					return err
				}

				key = prompted
			}

			value, err := parseConfigValue(KeyAPIKey, key)
			if err != nil {
				return err
			}

			err = saveConfigValue(KeyAPIKey, value)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "API key %s saved\n", auth.Mask(value.(string)))

			return nil
		},
	}
}

// promptAPIKey reads a key without echo from a terminal, or a single line
// from piped input.
func promptAPIKey(cmd *cobra.Command) (string, error) {
	input := cmd.InOrStdin()

	if file, ok := input.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		_, _ = fmt.Fprint(cmd.ErrOrStderr(), "API key: ")

		secret, err := term.ReadPassword(int(file.Fd()))

		_, _ = fmt.Fprintln(cmd.ErrOrStderr())

		if err != nil {
			return "", fmt.Errorf("failed to read API key: %w", err)
		}

		return string(secret), nil
	}

	line, err := bufio.NewReader(input).ReadString('\n')
	if err != nil && line == "" {
		return "", constants.ErrNotATerminal
	}

	return strings.TrimSpace(line), nil
}
