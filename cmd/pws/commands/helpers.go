package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/bjb28/pws-api-wrapper/internal/constants"
	"github.com/bjb28/pws-api-wrapper/internal/events"
	"github.com/bjb28/pws-api-wrapper/internal/logging"
	"github.com/bjb28/pws-api-wrapper/pkg/pws"
	"github.com/bjb28/pws-api-wrapper/pkg/pwsclient"
)

// Configuration keys shared by the root command and config subcommands.
const (
	KeyAPIKey            = "api_key"
	KeyBaseURL           = "base_url"
	KeyOutput            = "output"
	KeyVerbose           = "verbose"
	KeyNATSURL           = "nats_url"
	KeyNATSSubjectPrefix = "nats_subject_prefix"
)

// ConfigKeys lists the keys accepted by "config set", in display order.
var ConfigKeys = []string{KeyAPIKey, KeyBaseURL, KeyOutput, KeyVerbose, KeyNATSURL, KeyNATSSubjectPrefix}

// NewLogger builds the CLI logger writing to cmd's error stream.
func NewLogger(cmd *cobra.Command) *logrus.Logger {
	return logging.NewWithOutput(cmd.ErrOrStderr(), viper.GetBool(KeyVerbose))
}

// CreateClient builds an API client from the merged configuration.
func CreateClient(cmd *cobra.Command) (pws.Client, error) {
	logger := NewLogger(cmd)

	config := &pws.Config{
		APIKey:  viper.GetString(KeyAPIKey),
		BaseURL: viper.GetString(KeyBaseURL),
		Debug:   viper.GetBool(KeyVerbose),
		Logger:  logging.NewAdapter(logger.WithField("component", "client")),
	}

	if config.Debug {
		config.Interceptors = pws.NewInterceptorChain().
			AddResponseInterceptor(pws.LoggingResponseInterceptor(config.Logger))
	}

	client, err := pwsclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// OpenPublisher returns the change-event publisher for the configuration.
func OpenPublisher() (events.Publisher, error) {
	publisher, err := events.Open(viper.GetString(KeyNATSURL), viper.GetString(KeyNATSSubjectPrefix))
	if err != nil {
		return nil, fmt.Errorf("failed to open event publisher: %w", err)
	}

	return publisher, nil
}

// OutputFormat returns the configured output format.
func OutputFormat() (string, error) {
	format := strings.ToLower(viper.GetString(KeyOutput))
	if format == "" {
		return constants.FormatTable, nil
	}

	switch format {
	case constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
		return format, nil
	default:
		return "", fmt.Errorf("%w: %q (use table, json or yaml)", constants.ErrInvalidOutputFormat, format)
	}
}

// writeStructured writes value as JSON or YAML. It reports false for the
// table format so the caller can render its own table.
func writeStructured(out io.Writer, format string, value any) (bool, error) {
	switch format {
	case constants.FormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")

		return true, encoder.Encode(value)
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)

		defer func() { _ = encoder.Close() }()

		return true, encoder.Encode(value)
	default:
		return false, nil
	}
}

// renderEntities prints entities as a table with the given columns, or as
// JSON/YAML lists.
func renderEntities[T pws.Entity](out io.Writer, entities []T, columns []string, empty string) error {
	format, err := OutputFormat()
	if err != nil {
		return err
	}

	maps := make([]map[string]any, 0, len(entities))
	for _, entity := range entities {
		maps = append(maps, entity.ToMap())
	}

	done, err := writeStructured(out, format, maps)
	if done || err != nil {
		return err
	}

	if len(entities) == 0 {
		_, _ = fmt.Fprintln(out, empty)

		return nil
	}

	table := tablewriter.NewWriter(out)
	table.Header(headers(columns)...)

	for _, row := range maps {
		values := make([]any, 0, len(columns))
		for _, column := range columns {
			values = append(values, displayValue(row[column]))
		}

		_ = table.Append(values...)
	}

	err = table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// renderEntity prints one entity as a property table, or as JSON/YAML.
func renderEntity(out io.Writer, entity pws.Entity) error {
	format, err := OutputFormat()
	if err != nil {
		return err
	}

	fields := entity.ToMap()

	done, err := writeStructured(out, format, fields)
	if done || err != nil {
		return err
	}

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	_, _ = fmt.Fprintf(out, "%s: %s\n\n", entity.Kind().Name, entity.Label())

	table := tablewriter.NewWriter(out)
	table.Header("Property", "Value")

	for _, key := range keys {
		_ = table.Append(key, displayValue(fields[key]))
	}

	err = table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// renderResult prints a mutation result. Results that were not accepted
// are returned as errors so the command exits non-zero.
func renderResult(out io.Writer, result *pws.Result) error {
	format, err := OutputFormat()
	if err != nil {
		return err
	}

	done, err := writeStructured(out, format, result)
	if err != nil {
		return err
	}

	if !done {
		_, _ = fmt.Fprintln(out, result.Message)
	}

	if !result.OK {
		return fmt.Errorf("%w: %s", constants.ErrMutationFailed, result.Message)
	}

	return nil
}

func headers(columns []string) []any {
	out := make([]any, 0, len(columns))
	for _, column := range columns {
		out = append(out, strings.ToUpper(strings.ReplaceAll(column, "_", " ")))
	}

	return out
}

func displayValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case []string:
		return strings.Join(v, ", ")
	default:
		if data, err := json.Marshal(v); err == nil {
			return strings.Trim(string(data), `"`)
		}

		return fmt.Sprint(v)
	}
}

// ParseFields converts repeated --field key=value flags into attributes
// for kind. Values are typed by the field's schema rule: booleans, numbers
// and lists are decoded, strings are kept verbatim, and "null" clears a
// nullable field.
func ParseFields(kind *pws.Kind, pairs []string) (map[string]any, error) {
	fields := make(map[string]any, len(pairs))

	for _, pair := range pairs {
		key, raw, ok := strings.Cut(pair, "=")

		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidFieldFlag, pair)
		}

		rule, known := kind.Schema.Rule(key)
		if !known {
			fields[key] = raw

			continue
		}

		fields[key] = parseFieldValue(rule, raw)
	}

	return fields, nil
}

func parseFieldValue(rule pws.Rule, raw string) any {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "null" && rule.Nullable {
		return nil
	}

	switch rule.Type {
	case pws.TypeBool:
		if value, err := strconv.ParseBool(trimmed); err == nil {
			return value
		}
	case pws.TypeInt, pws.TypeFloat, pws.TypeList:
		decoder := json.NewDecoder(strings.NewReader(trimmed))
		decoder.UseNumber()

		var value any
		if err := decoder.Decode(&value); err == nil && !decoder.More() {
			return value
		}
	}

	return raw
}
