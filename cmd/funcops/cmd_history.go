package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/funcops/funcops/config/funcopscfg"
	"github.com/funcops/funcops/usecase/stack"
	"github.com/spf13/cobra"
)

// newCmdHistory lists recorded deployments from the local store.
func newCmdHistory() *cobra.Command {
	var file string
	var all bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded deployments",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(file)
			if err != nil {
				return err
			}

			dbURL, _ := cmd.Flags().GetString("db-url")
			repos, err := buildRepos(dbURL)
			if err != nil {
				return err
			}
			u := &stack.UseCase{Repos: repos}

			stackName := cfg.Stack.Name
			if all {
				stackName = ""
			}
			deployments, err := u.History(cmd.Context(), stack.HistoryInput{StackName: stackName})
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "STARTED\tSTACK\tSUFFIX\tSTATE\tAPP\tHOSTNAME")
			for _, d := range deployments {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					d.StartedAt.Format("2006-01-02 15:04:05"),
					d.StackName, d.Suffix, d.State, d.AppName, d.Hostname)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", funcopscfg.DefaultConfigPath, "Path to funcops.yml")
	cmd.Flags().BoolVar(&all, "all", false, "List deployments of every stack")
	return cmd
}
