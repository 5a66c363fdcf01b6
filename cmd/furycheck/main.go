// Command furycheck loads a ClassChecker policy file and reports
// whether each class name given on the command line is currently
// permitted.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
)

var errPolicyRequired = errors.New("--policy is required")

func main() {
	os.Exit(run(os.Stdout, os.Stderr, os.Args[1:]))
}

func run(out, errOut io.Writer, args []string) int {
	flagSet := flag.NewFlagSet("furycheck", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	policyPath := flagSet.StringP("policy", "p", "", "path to a JSONC allow/deny policy file")

	if err := flagSet.Parse(args); err != nil {
		fmt.Fprintln(errOut, "error:", err)
		return 2
	}

	if *policyPath == "" {
		fmt.Fprintln(errOut, "error:", errPolicyRequired)
		return 2
	}

	classNames := flagSet.Args()
	if len(classNames) == 0 {
		fmt.Fprintln(errOut, "error: at least one class name is required")
		return 2
	}

	policy, err := loadPolicy(*policyPath)
	if err != nil {
		fmt.Fprintln(errOut, "error:", err)
		return 1
	}

	checker, err := policy.build()
	if err != nil {
		fmt.Fprintln(errOut, "error:", err)
		return 1
	}

	anyDenied := false
	for _, name := range classNames {
		if checker.Check(name) {
			fmt.Fprintf(out, "ALLOW %s\n", name)
		} else {
			fmt.Fprintf(out, "DENY  %s\n", name)
			anyDenied = true
		}
	}

	if anyDenied {
		return 1
	}
	return 0
}
