package cmd

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/Gthulhu/kanagawa/domain"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

const flagWindow = "window"

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show current utilization and the bounds each profile would write",
		Args:  cobra.NoArgs,
		RunE:  runStatus,
	}
	cmd.Flags().Duration(flagWindow, time.Second, "Sampling window used to measure utilization")
	return cmd
}

func runStatus(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	window, _ := cmd.Flags().GetDuration(flagWindow)
	svc, err := buildService(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	utilization, err := svc.MeasureUtilization(cmd.Context(), window)
	if err != nil {
		fmt.Fprintf(out, "Utilization: unavailable (%v)\n", err)
	} else {
		fmt.Fprintf(out, "Utilization: %.2f%% over %s -> %s profile\n", utilization, window, svc.Classify(utilization))
	}

	states, err := svc.DomainStates(cmd.Context())
	if err != nil {
		return err
	}
	renderDomainStates(out, states)
	return nil
}

func renderDomainStates(out io.Writer, states []domain.DomainState) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Domain", "Governor", "CPUs", "Cur", "Min", "Max", "High min", "High max", "Low min", "Low max", "Steps"})
	for _, s := range states {
		t.AppendRow(table.Row{
			s.Domain.ID,
			s.Governor,
			s.AffectedCPUs,
			formatKHz(s.CurrentFreq),
			formatKHz(s.ScalingMin),
			formatKHz(s.ScalingMax),
			formatKHz(s.HighLoadMin),
			formatKHz(s.AbsoluteMax),
			formatKHz(s.AbsoluteMin),
			formatKHz(s.LowLoadMax),
			len(s.Table),
		})
	}
	t.Render()
}

func formatKHz(khz uint64) string {
	if khz == domain.Unresolved {
		return "-"
	}
	return strconv.FormatUint(khz, 10)
}
