package main

import (
	"context"
	"fmt"
	"os"

	decisiontrees "github.com/jayelm/decisiontrees"
	"github.com/spf13/cobra"
)

type growCmdConfig struct {
	dataInputConfig
	dataInput      string
	classAttribute string
	criterion      string
	showRules      bool
}

func growCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &growCmdConfig{dataInputConfig: dataInputConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a decision tree from a dataset",
		Long:  `Grow a decision tree from a dataset to predict a certain attribute.`,
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			attributes, err := config.attributes()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			ds, err := config.readDataset(ctx, config.dataInput, attributes)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			dependent, err := dependentAttribute(config.classAttribute, ds)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			scorer, err := splitScorer(config.criterion)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(5)
			}
			config.Logf("Growing tree from a dataset with %d records and %d attributes to predict %s ...", ds.Count(), len(ds.Schema())-1, dependent)
			t, err := decisiontrees.New(scorer).Grow(ctx, ds, dependent)
			if err != nil {
				fmt.Fprintf(os.Stderr, "growing the tree: %v\n", err)
				os.Exit(6)
			}
			config.Logf("Done")
			config.Logf("Tree has depth %d and %d leaves", t.Root.Depth(), t.Root.LeafCount())
			fmt.Print(t)
			if config.showRules {
				for _, r := range t.Root.Rules() {
					fmt.Println(r)
				}
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with data to use to grow the tree (defaults to STDIN, interpreted as CSV)")
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with metadata describing the attributes available on the input (optional for CSV and SQL inputs, required for MongoDB)")
	cmd.PersistentFlags().StringVarP(&(config.classAttribute), "class-attribute", "c", "", "name of the attribute the grown tree should predict (defaults to the last column of the dataset)")
	cmd.PersistentFlags().StringVar(&(config.criterion), "criterion", "information-gain", "split-selection criterion to apply, the following are valid: information-gain, purity")
	cmd.PersistentFlags().IntVar(&(config.maxDBConns), "max-db-conns", 0, "limit to DB connections opened at a time (defaults to 0: no limit)")
	cmd.Flags().BoolVar(&(config.showRules), "rules", false, "print the rule listing of the grown tree after the tree itself")
	return cmd
}

func splitScorer(criterion string) (decisiontrees.SplitScorer, error) {
	switch criterion {
	case "information-gain":
		return decisiontrees.InformationGainScorer(), nil
	case "purity":
		return decisiontrees.PurityScorer(), nil
	}
	return nil, fmt.Errorf("unknown split-selection criterion %q", criterion)
}
