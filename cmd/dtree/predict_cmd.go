package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	decisiontrees "github.com/jayelm/decisiontrees"
	"github.com/jayelm/decisiontrees/dataset"
	"github.com/jayelm/decisiontrees/dataset/inputrecord"
	"github.com/jayelm/decisiontrees/tree"
	"github.com/spf13/cobra"
)

type predictCmdConfig struct {
	dataInputConfig
	dataInput      string
	classAttribute string
	criterion      string
}

type stdoutValueRequester struct{}

func predictCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &predictCmdConfig{dataInputConfig: dataInputConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Decide values for records answering questions",
		Long:  `Grow a tree from a training dataset and enter a loop deciding the class attribute for records described by answering a reduced set of questions about their attributes`,
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
			t, err := decisiontrees.New(scorer).Grow(ctx, ds, dependent)
			if err != nil {
				fmt.Fprintf(os.Stderr, "growing the tree: %v\n", err)
				os.Exit(6)
			}
			err = decisionLoop(ctx, t, independentAttributes(ds, dependent))
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(7)
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with data to use to grow the tree (defaults to STDIN, interpreted as CSV)")
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with metadata describing the attributes available on the input (optional for CSV and SQL inputs, required for MongoDB)")
	cmd.PersistentFlags().StringVarP(&(config.classAttribute), "class-attribute", "c", "", "name of the attribute the grown tree should predict (defaults to the last column of the dataset)")
	cmd.PersistentFlags().StringVar(&(config.criterion), "criterion", "information-gain", "split-selection criterion to apply, the following are valid: information-gain, purity")
	cmd.PersistentFlags().IntVar(&(config.maxDBConns), "max-db-conns", 0, "limit to DB connections opened at a time (defaults to 0: no limit)")
	return cmd
}

/*
independentAttributes builds the attribute metadata for the decision
loop from the training dataset: every independent attribute with its
observed domain as the admissible values.
*/
func independentAttributes(ds *dataset.Dataset, dependent string) []dataset.Attribute {
	names := ds.IndependentAttributes(dependent)
	attributes := make([]dataset.Attribute, len(names))
	for i, name := range names {
		attributes[i] = dataset.Attribute{Name: name, Values: ds.Domain(name)}
	}
	return attributes
}

/*
decisionLoop reads records from STDIN one at a time, asking only for
the attributes the tree consults, and prints the decision for each.
The loop ends when the input is exhausted.
*/
func decisionLoop(ctx context.Context, t *tree.Tree, attributes []dataset.Attribute) error {
	for {
		record := inputrecord.New(os.Stdin, attributes, &stdoutValueRequester{})
		decision, err := t.Decide(ctx, record)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Printf("Decision: %s is %s\n", t.Label, decision)
	}
}

func (svr *stdoutValueRequester) RequestValueFor(attribute string, values []string) error {
	fmt.Printf("Please provide the record's %s:\n(valid values are %s)\n", attribute, strings.Join(values, ", "))
	return nil
}

func (svr *stdoutValueRequester) RejectValueFor(attribute string, values []string, value string) error {
	fmt.Printf("%s is not a valid value for the record's %s. Please provide one of %s.\n", value, attribute, strings.Join(values, ", "))
	return nil
}
