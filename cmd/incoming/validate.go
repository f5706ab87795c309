package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/incoming/pkg/payload"
	"github.com/dmitrymomot/incoming/pkg/validator"
)

type validateOutput struct {
	Schema string           `json:"schema"`
	Valid  bool             `json:"valid"`
	Errors validator.Report `json:"errors,omitempty"`
}

func newValidateCmd(a *app) *cobra.Command {
	var (
		strict   bool
		required bool
		asYAML   bool
	)

	cmd := &cobra.Command{
		Use:   "validate <schema> [file]",
		Short: "Validate a payload file, or stdin, against a schema",
		Long: "Validate a JSON (or, with --yaml, YAML) object against a schema and print the result.\n" +
			"Exits with status 1 when the payload is invalid.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.loadRegistry(cmd.Context())
			if err != nil {
				return err
			}
			s, ok := reg.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown schema %q", args[0])
			}

			var in io.Reader = a.stdin
			if len(args) == 2 && args[1] != "-" {
				f, err := os.Open(args[1])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			decode := payload.Decode
			if asYAML {
				decode = payload.DecodeYAML
			}
			p, err := decode(in)
			if err != nil {
				return err
			}

			var opts []validator.ValidateOption
			if cmd.Flags().Changed("strict") {
				opts = append(opts, validator.OverrideStrict(strict))
			}
			if cmd.Flags().Changed("required") {
				opts = append(opts, validator.OverrideRequired(required))
			}

			v := validator.New(s, validator.WithLogger(a.logger), validator.WithMaxDepth(a.cfg.MaxDepth))
			res := v.Validate(p, opts...)

			enc := json.NewEncoder(a.stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(validateOutput{Schema: s.Name(), Valid: res.Valid, Errors: res.Errors}); err != nil {
				return err
			}

			if !res.Valid {
				return errInvalidPayload
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "override the schema strict mode")
	cmd.Flags().BoolVar(&required, "required", false, "override the schema required default")
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "decode the payload as YAML")
	return cmd
}
