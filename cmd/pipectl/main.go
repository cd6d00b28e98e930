// Command pipectl prints the wirecrm pipeline and accounts in a terminal.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rpggio/wirecrm/internal/config"
	"github.com/rpggio/wirecrm/internal/demo"
	"github.com/rpggio/wirecrm/internal/domain/account"
	"github.com/rpggio/wirecrm/internal/domain/pipeline"
	"github.com/spf13/cobra"
)

type options struct {
	dataPath string
	locale   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "pipectl",
		Short:        "Inspect the wirecrm demo pipeline",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			if !cmd.Flags().Changed("data") {
				opts.dataPath = cfg.UI.DatasetPath
			}
			if !cmd.Flags().Changed("locale") {
				opts.locale = cfg.UI.Locale
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&opts.dataPath, "data", "", "dataset YAML file (default: embedded demo data)")
	root.PersistentFlags().StringVar(&opts.locale, "locale", "en-US", "locale for currency formatting")

	root.AddCommand(newPlanCmd(opts), newAccountsCmd(opts))
	return root
}

func (o *options) accounts() (*account.Service, error) {
	provider, err := demo.Load(o.dataPath)
	if err != nil {
		return nil, err
	}
	return account.NewService(provider, nil), nil
}

func newPlanCmd(opts *options) *cobra.Command {
	var (
		tab   string
		query string
		flat  bool
	)
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print the filtered pipeline, grouped by stage unless --flat",
		Long: `Print the pipeline the way the pipeline screen shows it.

Tabs:
  all      every deal
  closing  closes within 30 days
  risk     hot deals
  stale    accounts untouched for 14+ days`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := opts.accounts()
			if err != nil {
				return err
			}
			data, err := svc.Dataset(context.Background())
			if err != nil {
				return err
			}
			plan := pipeline.Build(data, pipeline.ViewState{
				Tab:          pipeline.ParseTab(tab),
				Query:        query,
				GroupByStage: !flat,
			})
			fmt.Fprint(cmd.OutOrStdout(), renderPlan(plan, pipeline.NewFormatter(opts.locale)))
			return nil
		},
	}
	cmd.Flags().StringVar(&tab, "tab", string(pipeline.TabAll), "tab filter: all, closing, risk or stale")
	cmd.Flags().StringVarP(&query, "query", "q", "", "match deal, account or stage")
	cmd.Flags().BoolVar(&flat, "flat", false, "one list sorted by value instead of stage groups")
	return cmd
}

func newAccountsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "List accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := opts.accounts()
			if err != nil {
				return err
			}
			summaries, err := svc.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderAccounts(summaries))
			return nil
		},
	}
}
