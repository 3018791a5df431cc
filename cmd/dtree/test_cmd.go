package main

import (
	"context"
	"fmt"
	"os"

	decisiontrees "github.com/jayelm/decisiontrees"
	"github.com/spf13/cobra"
)

type testCmdConfig struct {
	dataInputConfig
	trainingInput  string
	testingInput   string
	classAttribute string
	criterion      string
}

func testCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &testCmdConfig{dataInputConfig: dataInputConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test the performance of a tree",
		Long:  `Grow a tree from a training dataset and test its decisions against a testing dataset sharing the schema`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			ctx := context.Background()
			attributes, err := config.attributes()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			trainingSet, err := config.readDataset(ctx, config.trainingInput, attributes)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			dependent, err := dependentAttribute(config.classAttribute, trainingSet)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			scorer, err := splitScorer(config.criterion)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(5)
			}
			config.Logf("Growing tree from a dataset with %d records to predict %s ...", trainingSet.Count(), dependent)
			t, err := decisiontrees.New(scorer).Grow(ctx, trainingSet, dependent)
			if err != nil {
				fmt.Fprintf(os.Stderr, "growing the tree: %v\n", err)
				os.Exit(6)
			}
			testingSet, err := config.readDataset(ctx, config.testingInput, attributes)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(7)
			}
			config.Logf("Testing tree against a dataset with %d records...", testingSet.Count())
			successRate, errCount, err := t.Test(ctx, testingSet)
			if err != nil {
				fmt.Fprintf(os.Stderr, "testing tree: %v\n", err)
				os.Exit(8)
			}
			config.Logf("Done")
			fmt.Printf("%f success rate, failed to make a decision for %d records\n", successRate, errCount)
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.trainingInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with data to use to grow the tree (defaults to STDIN, interpreted as CSV)")
	cmd.PersistentFlags().StringVarP(&(config.testingInput), "testing-input", "t", "", "path or URL to the dataset to test the tree against, in the same formats as the input flag (required)")
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with metadata describing the attributes available on the input (optional for CSV and SQL inputs, required for MongoDB)")
	cmd.PersistentFlags().StringVarP(&(config.classAttribute), "class-attribute", "c", "", "name of the attribute the grown tree should predict (defaults to the last column of the dataset)")
	cmd.PersistentFlags().StringVar(&(config.criterion), "criterion", "information-gain", "split-selection criterion to apply, the following are valid: information-gain, purity")
	cmd.PersistentFlags().IntVar(&(config.maxDBConns), "max-db-conns", 0, "limit to DB connections opened at a time (defaults to 0: no limit)")
	return cmd
}

func (tcc *testCmdConfig) Validate() error {
	if tcc.testingInput == "" {
		return fmt.Errorf("required testing-input flag was not set")
	}
	return nil
}
