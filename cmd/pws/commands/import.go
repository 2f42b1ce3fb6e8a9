package commands

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/bjb28/pws-api-wrapper/internal/constants"
	"github.com/bjb28/pws-api-wrapper/internal/nmapimport"
	"github.com/bjb28/pws-api-wrapper/pkg/pws"
)

// NewImportCommand creates the import command group.
func NewImportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import scan results",
		Long:  "Import hosts and ports from scanner output into an engagement",
	}

	cmd.AddCommand(newImportNmapCommand())

	return cmd
}

// ImportNmapOptions holds the options for importing an nmap report.
type ImportNmapOptions struct {
	EngagementID   string
	EngagementName string
	DryRun         bool
}

func newImportNmapCommand() *cobra.Command {
	var opts ImportNmapOptions

	cmd := &cobra.Command{
		Use:   "nmap FILE",
		Short: "Import an nmap XML report",
		Long: "Create a host for every live host in an nmap XML report (nmap -oX) " +
			"and a port for each of its tcp and udp ports",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImportNmap(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.EngagementID, "eid", "", "engagement ID")
	cmd.Flags().StringVar(&opts.EngagementName, "engagement", "", "engagement name (instead of --eid)")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "parse and validate the report without creating anything")

	return cmd
}

func runImportNmap(cmd *cobra.Command, path string, opts ImportNmapOptions) error {
	if opts.EngagementID == "" && opts.EngagementName == "" {
		return fmt.Errorf("%w (or --engagement)", constants.ErrEngagementRequired)
	}

	logger := NewLogger(cmd)

	var (
		client pws.Client
		err    error
	)

	eid := opts.EngagementID
	if eid == "" || !opts.DryRun {
		client, err = CreateClient(cmd)
		if err != nil {
			return err
		}
	}

	if eid == "" {
		eid, err = client.Engagements().FindID(cmd.Context(), opts.EngagementName)
		if err != nil {
			return fmt.Errorf("failed to find engagement: %w", err)
		}
	}

	candidates, err := nmapimport.ParseFile(path, eid)
	if err != nil {
		return err
	}

	log := logger.WithFields(map[string]any{"file": path, "eid": eid})
	log.WithField("hosts", len(candidates)).Info("Parsed nmap report")

	if opts.DryRun {
		return renderCandidates(cmd, candidates)
	}

	publisher, err := OpenPublisher()
	if err != nil {
		return err
	}

	defer func() { _ = publisher.Close() }()

	importer := nmapimport.NewImporter(client.Hosts(), client.Ports(), publisher, log)

	summary, importErr := importer.Import(cmd.Context(), candidates)

	err = renderSummary(cmd, summary)
	if importErr != nil {
		return fmt.Errorf("import stopped: %w", importErr)
	}

	return err
}

func renderCandidates(cmd *cobra.Command, candidates []nmapimport.Candidate) error {
	format, err := OutputFormat()
	if err != nil {
		return err
	}

	rows := make([]map[string]any, 0, len(candidates))
	for _, candidate := range candidates {
		ports := make([]map[string]any, 0, len(candidate.Ports))
		for _, port := range candidate.Ports {
			ports = append(ports, port.ToMap())
		}

		rows = append(rows, map[string]any{
			"host":    candidate.Host.ToMap(),
			"ports":   ports,
			"skipped": candidate.Skipped,
		})
	}

	done, err := writeStructured(cmd.OutOrStdout(), format, rows)
	if done || err != nil {
		return err
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.Header("Target", "Hostnames", "OS Type", "Ports", "Skipped")

	for _, candidate := range candidates {
		_ = table.Append(
			candidate.Host.Target(),
			candidate.Host.Hostnames(),
			candidate.Host.OSType(),
			fmt.Sprint(len(candidate.Ports)),
			fmt.Sprint(len(candidate.Skipped)),
		)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func renderSummary(cmd *cobra.Command, summary *nmapimport.Summary) error {
	format, err := OutputFormat()
	if err != nil {
		return err
	}

	done, err := writeStructured(cmd.OutOrStdout(), format, summary)
	if done || err != nil {
		return err
	}

	for _, message := range summary.Messages {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), message)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(),
		"\nHosts: %d created, %d rejected. Ports: %d created, %d rejected, %d skipped.\n",
		summary.HostsCreated, summary.HostsRejected, summary.PortsCreated, summary.PortsRejected, summary.PortsSkipped)

	return nil
}
