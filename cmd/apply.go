package cmd

import (
	"io"

	"github.com/Gthulhu/kanagawa/domain"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const flagProfile = "profile"

func newApplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply one profile to every scaling domain and exit",
		Args:  cobra.NoArgs,
		RunE:  runApply,
	}
	cmd.Flags().String(flagProfile, "", "Profile to apply: high or low")
	_ = cmd.MarkFlagRequired(flagProfile)
	return cmd
}

func runApply(cmd *cobra.Command, _ []string) error {
	name, _ := cmd.Flags().GetString(flagProfile)
	profile, err := domain.ParseProfile(name)
	if err != nil {
		return errors.Wrapf(err, "--%s %q", flagProfile, name)
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	svc, err := buildService(cfg)
	if err != nil {
		return err
	}

	report := svc.ApplyProfile(cmd.Context(), profile)
	renderApplyReport(cmd.OutOrStdout(), report)
	if len(report.Domains) == 0 {
		return domain.ErrNoDomains
	}
	return nil
}

func renderApplyReport(out io.Writer, report domain.ApplyReport) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.SetTitle("Profile " + report.Profile.String())
	t.AppendHeader(table.Row{"Domain", "Min", "Max", "Write failures", "Skipped"})
	for _, d := range report.Domains {
		skipped := ""
		if d.Skipped {
			skipped = d.SkipReason
		}
		t.AppendRow(table.Row{d.Domain.ID, formatKHz(d.MinFreq), formatKHz(d.MaxFreq), d.WriteFailures, skipped})
	}
	t.AppendFooter(table.Row{"", "", "", "applied", report.Applied()})
	t.Render()
}
