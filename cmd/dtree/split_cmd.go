package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/jayelm/decisiontrees/dataset"
	"github.com/jayelm/decisiontrees/dataset/csv"
	"github.com/spf13/cobra"
)

type splitCmdConfig struct {
	dataInputConfig
	dataInput        string
	output           string
	splitOutput      string
	splitProbability int
}

func splitCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &splitCmdConfig{dataInputConfig: dataInputConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a dataset into two datasets",
		Long:  `Split a CSV dataset into an output dataset and a split dataset, typically to separate training from testing data`,
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

			var outputFile *os.File
			if config.output != "" {
				config.Logf("Creating %s to dump output dataset...", config.output)
				outputFile, err = os.Create(config.output)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(3)
				}
				defer outputFile.Close()
			} else {
				config.Logf("Using STDOUT to dump output dataset...")
				outputFile = os.Stdout
			}

			config.Logf("Creating %s to dump split dataset...", config.splitOutput)
			splitOutputFile, err := os.Create(config.splitOutput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			defer splitOutputFile.Close()

			var f *os.File
			if config.dataInput == "" {
				config.Logf("Reading input dataset from STDIN and splitting it into output and split datasets...")
				f = os.Stdin
			} else {
				config.Logf("Opening %s to read input dataset...", config.dataInput)
				f, err = os.Open(config.dataInput)
				if err != nil {
					fmt.Fprintf(os.Stderr, "reading dataset from %s: %v\n", config.dataInput, err)
					os.Exit(5)
				}
				defer f.Close()
				config.Logf("Splitting input dataset into output and split datasets...")
			}

			var output, splitOutput csv.Writer
			randomizer := rand.New(rand.NewSource(time.Now().UnixNano()))
			splitter := func(_ int, schema []string, r dataset.Record) (bool, error) {
				if output == nil {
					output, err = csv.NewWriter(outputFile, schema)
					if err != nil {
						return false, err
					}
					splitOutput, err = csv.NewWriter(splitOutputFile, schema)
					if err != nil {
						return false, err
					}
				}
				w := output
				if 100*randomizer.Float32() <= float32(config.splitProbability) {
					w = splitOutput
				}
				if err := w.Write(ctx, r); err != nil {
					return false, err
				}
				return true, nil
			}
			err = csv.ReadByRecord(ctx, f, attributes, splitter)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(6)
			}
			if output == nil {
				fmt.Fprintln(os.Stderr, "input dataset has no records to split")
				os.Exit(7)
			}
			config.Logf("Flushing output dataset...")
			err = output.Flush()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(8)
			}
			config.Logf("Flushing split dataset...")
			err = splitOutput.Flush()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(9)
			}
			config.Logf("Done")
			config.Logf("Input dataset with %d records was split into datasets with %d and %d records", output.Count()+splitOutput.Count(), output.Count(), splitOutput.Count())
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input CSV file with the dataset to split (defaults to STDIN)")
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with metadata describing the attributes available on the input (optional)")
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "path to a file to dump the output dataset (defaults to STDOUT)")
	cmd.PersistentFlags().IntVarP(&(config.splitProbability), "split-probability", "p", 20, "probability as percent integer that a record of the dataset will be assigned to the split dataset")
	cmd.PersistentFlags().StringVarP(&(config.splitOutput), "split-output", "s", "", "path to a file to dump the split dataset (required)")
	return cmd
}

func (scc *splitCmdConfig) Validate() error {
	if scc.splitOutput == "" {
		return fmt.Errorf("required split-output flag was not set")
	}
	if scc.splitProbability <= 0 || scc.splitProbability > 100 {
		return fmt.Errorf("split-probability flag was set to an invalid value: it must be an integer between 1 and 100")
	}
	return nil
}
