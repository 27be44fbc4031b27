package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"toolapps/convert"
	"toolapps/pipeline"
	"toolapps/toolconfig"
)

type runner interface {
	Run(input string) (string, error)
}

// runInputs runs every arg, or every stdin line when there are no args.
func runInputs(cmd *cobra.Command, r runner, args []string) error {
	out := cmd.OutOrStdout()
	if len(args) > 0 {
		for _, input := range args {
			if err := runOne(out, r, input); err != nil {
				return err
			}
		}
		return nil
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		if err := runOne(out, r, scanner.Text()); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func runOne(out io.Writer, r runner, input string) error {
	result, err := r.Run(input)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, result)
	return err
}

type cachedRunner struct {
	p *toolconfig.PipelineConfig
}

func (c cachedRunner) Run(input string) (string, error) {
	out, _, err := c.p.Run(input)
	return out, err
}

func newRunCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run <pipeline> [input...]",
		Short: "Run a configured pipeline over inputs or stdin lines",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := toolconfig.NewStore(a.configDir)
			if err := store.Load(); err != nil {
				return err
			}
			p, ok := store.Get(args[0])
			if !ok {
				return fmt.Errorf("%w: %s", pipeline.ErrUnknownPipeline, args[0])
			}
			return runInputs(cmd, cachedRunner{p: p}, args[1:])
		},
	}
}

func newConvertCommand() *cobra.Command {
	var (
		decoder string
		stages  string
		encoder string
		params  map[string]string
	)
	cmd := &cobra.Command{
		Use:   "convert [input...]",
		Short: "Run an ad hoc decode, convert, encode pipeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			defs := pipeline.ParseStages(stages)
			for i := range defs {
				defs[i].Params = convert.Params(params)
			}
			p, err := pipeline.Build("", pipeline.Definition{Decode: decoder, Convert: defs, Encode: encoder})
			if err != nil {
				return err
			}
			return runInputs(cmd, p, args)
		},
	}
	cmd.Flags().StringVarP(&decoder, "decode", "d", "utf8", "input decoding scheme")
	cmd.Flags().StringVarP(&stages, "convert", "c", "", "comma separated converters")
	cmd.Flags().StringVarP(&encoder, "encode", "e", "hex", "output encoding scheme")
	cmd.Flags().StringToStringVarP(&params, "param", "p", nil, "converter params, e.g. key=<hex>")
	return cmd
}

type digestRunner string

func (alg digestRunner) Run(input string) (string, error) {
	return pipeline.Digest(input, string(alg))
}

func newDigestCommand() *cobra.Command {
	var algorithm string
	cmd := &cobra.Command{
		Use:   "digest [input...]",
		Short: "Print the hex digest of each input",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInputs(cmd, digestRunner(algorithm), args)
		},
	}
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "sha256", "digest algorithm")
	return cmd
}
