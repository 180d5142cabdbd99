package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"halcyon-bio/halcyon/pkg/cli"
	"halcyon-bio/halcyon/pkg/sap"
	saperrors "halcyon-bio/halcyon/pkg/sap/errors"
	"halcyon-bio/halcyon/pkg/sap/policyfile"
	"halcyon-bio/halcyon/pkg/sap/validator"
)

var lintFlags struct {
	file   string
	dir    string
	strict bool
	format string
}

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Validate policy-set files",
	Long: `Validate every policy in one or more policy-set files.

The lint command parses each policy string against the file's mode flags
and runs semantic validation on the resolved result:
  - Grammar validation (clause structure, tags, sub-token counts, numbers)
  - Semantic validation (seed mismatch range, seed length, tunable ranges)

Examples:
  # Lint single file
  halcyon lint --file policies.yaml

  # Lint directory
  halcyon lint --dir policies/

  # Strict mode (warnings as errors)
  halcyon lint --file policies.yaml --strict

  # JSON output for CI/CD
  halcyon lint --file policies.yaml --format json`,
	RunE: lintPolicies,
}

func init() {
	rootCmd.AddCommand(lintCmd)

	lintCmd.Flags().StringVarP(&lintFlags.file, "file", "f", "", "policy-set file to validate")
	lintCmd.Flags().StringVarP(&lintFlags.dir, "dir", "d", "", "directory of policy-set files")
	lintCmd.Flags().BoolVar(&lintFlags.strict, "strict", false, "treat warnings as errors")
	lintCmd.Flags().StringVar(&lintFlags.format, "format", "text", "output format: text, json")
}

func lintPolicies(cmd *cobra.Command, args []string) error {
	if lintFlags.file == "" && lintFlags.dir == "" {
		return fmt.Errorf("either --file or --dir must be specified")
	}

	var files []string

	if lintFlags.file != "" {
		files = append(files, lintFlags.file)
	}

	if lintFlags.dir != "" {
		for _, pattern := range []string{"*.yaml", "*.yml"} {
			matches, err := filepath.Glob(filepath.Join(lintFlags.dir, pattern))
			if err != nil {
				return fmt.Errorf("failed to list policy-set files: %w", err)
			}
			files = append(files, matches...)
		}
	}

	if len(files) == 0 {
		return fmt.Errorf("no policy-set files found")
	}

	var results []LintResult
	for _, file := range files {
		results = append(results, lintPolicyFile(file)...)
	}

	if lintFlags.format == "json" {
		if err := json.NewEncoder(os.Stdout).Encode(results); err != nil {
			return err
		}
		if failed(results, lintFlags.strict) {
			return cli.NewCommandError("lint", fmt.Errorf("validation failed"))
		}
		return nil
	}

	writeLintText(os.Stdout, results, lintFlags.strict)
	if failed(results, lintFlags.strict) {
		return cli.NewCommandError("lint", fmt.Errorf("validation failed"))
	}
	return nil
}

// LintResult represents the validation result for a single named policy.
type LintResult struct {
	File     string      `json:"file"`
	Name     string      `json:"name,omitempty"`
	Valid    bool        `json:"valid"`
	Errors   []LintIssue `json:"errors,omitempty"`
	Warnings []LintIssue `json:"warnings,omitempty"`
}

// LintIssue represents a single validation error or warning.
type LintIssue struct {
	Clause     int    `json:"clause,omitempty"`
	Tag        string `json:"tag,omitempty"`
	Field      string `json:"field,omitempty"`
	Message    string `json:"message"`
	Severity   string `json:"severity"`
	Type       string `json:"type,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// lintPolicyFile loads one policy-set file and validates every entry.
func lintPolicyFile(path string) []LintResult {
	set, err := policyfile.Load(path)
	if err != nil {
		return []LintResult{{
			File:   path,
			Valid:  false,
			Errors: []LintIssue{{Message: err.Error(), Severity: "error"}},
		}}
	}

	results := make([]LintResult, 0, len(set.Policies))
	v := validator.NewValidator()

	for _, entry := range set.Policies {
		result := LintResult{File: path, Name: entry.Name, Valid: true}

		pol, err := sap.ParseAndResolve(entry.Policy, set.Local, set.NoisyHomopolymer)
		if err != nil {
			result.Valid = false
			var perr *saperrors.Error
			if errors.As(err, &perr) {
				result.Errors = append(result.Errors, LintIssue{
					Clause:     perr.Clause,
					Tag:        perr.Tag,
					Message:    perr.Message,
					Severity:   "error",
					Type:       string(perr.Type),
					Suggestion: perr.Suggestion,
				})
			} else {
				result.Errors = append(result.Errors, LintIssue{Message: err.Error(), Severity: "error"})
			}
			results = append(results, result)
			continue
		}

		vr := v.Validate(pol)
		for _, issue := range vr.Errors {
			result.Errors = append(result.Errors, LintIssue{
				Field:    issue.Field,
				Message:  issue.Message,
				Severity: string(issue.Severity),
			})
		}
		for _, issue := range vr.Warnings {
			result.Warnings = append(result.Warnings, LintIssue{
				Field:    issue.Field,
				Message:  issue.Message,
				Severity: string(issue.Severity),
			})
		}
		result.Valid = vr.Valid(lintFlags.strict)
		results = append(results, result)
	}

	return results
}

// failed reports whether any result should fail the command.
func failed(results []LintResult, strict bool) bool {
	for _, r := range results {
		if len(r.Errors) > 0 {
			return true
		}
		if strict && len(r.Warnings) > 0 {
			return true
		}
	}
	return false
}

// writeLintText renders lint results for humans.
func writeLintText(w io.Writer, results []LintResult, strict bool) {
	totalErrors := 0
	totalWarnings := 0

	for _, result := range results {
		if result.Name != "" {
			fmt.Fprintf(w, "Validating %s (%s)...\n", result.Name, result.File)
		} else {
			fmt.Fprintf(w, "Validating %s...\n", result.File)
		}

		if len(result.Errors) == 0 && len(result.Warnings) == 0 {
			fmt.Fprintln(w, "✓ policy resolves cleanly")
		}

		for _, err := range result.Errors {
			fmt.Fprintf(w, "✗ Error: %s", err.Message)
			if err.Clause > 0 {
				fmt.Fprintf(w, " (clause %d", err.Clause)
				if err.Tag != "" {
					fmt.Fprintf(w, ", %s", err.Tag)
				}
				fmt.Fprint(w, ")")
			}
			if err.Field != "" {
				fmt.Fprintf(w, " [%s]", err.Field)
			}
			if err.Type != "" {
				fmt.Fprintf(w, " [%s]", err.Type)
			}
			fmt.Fprintln(w)
			if err.Suggestion != "" {
				fmt.Fprintf(w, "  = suggestion: %s\n", err.Suggestion)
			}
			totalErrors++
		}

		for _, warn := range result.Warnings {
			fmt.Fprintf(w, "⚠  Warning: %s", warn.Message)
			if warn.Field != "" {
				fmt.Fprintf(w, " [%s]", warn.Field)
			}
			fmt.Fprintln(w)
			totalWarnings++
		}

		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "Summary:")
	fmt.Fprintf(w, "  %d error(s), %d warning(s)\n", totalErrors, totalWarnings)

	if strict && totalWarnings > 0 {
		fmt.Fprintln(w, "  Strict mode enabled: treating warnings as errors")
	}
}
