// Pre-commit hook: gofmt every staged Go file and re-stage it.
// Wire it up with: ln -s ../../bin/pre-commit .git/hooks/pre-commit
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

const (
	colorReset = "\033[0m"
	colorGreen = "\033[32m"
	colorRed   = "\033[31m"
)

// stagedGoFiles lists the added/copied/modified .go files in the index.
func stagedGoFiles(ctx context.Context) ([]string, error) {
	cmd := exec.CommandContext(ctx, "git", "diff", "--cached", "--name-only", "--diff-filter=ACM")
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to get staged files: %w", err)
	}

	var goFiles []string
	for _, file := range strings.Split(strings.TrimSpace(string(output)), "\n") {
		if file != "" && strings.HasSuffix(file, ".go") {
			goFiles = append(goFiles, file)
		}
	}
	return goFiles, nil
}

// format runs gofmt on one file and re-stages the result.
func format(ctx context.Context, file string) error {
	if err := exec.CommandContext(ctx, "gofmt", "-s", "-w", file).Run(); err != nil {
		return fmt.Errorf("gofmt failed: %w", err)
	}
	if err := exec.CommandContext(ctx, "git", "add", file).Run(); err != nil {
		return fmt.Errorf("git add failed: %w", err)
	}
	return nil
}

func main() {
	ctx := context.Background()

	files, err := stagedGoFiles(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s✗ %v%s\n", colorRed, err, colorReset)
		os.Exit(1)
	}
	if len(files) == 0 {
		os.Exit(0)
	}

	var failures []string
	formatted := 0
	for _, file := range files {
		if err := format(ctx, file); err != nil {
			failures = append(failures, fmt.Sprintf("  %s: %v", file, err))
		} else {
			formatted++
		}
	}

	if len(failures) > 0 {
		fmt.Fprintf(os.Stderr, "%s✗ gofmt failed:%s\n%s\n", colorRed, colorReset, strings.Join(failures, "\n"))
		os.Exit(1)
	}

	fmt.Printf("%s✓ gofmt:%s formatted %d file(s)\n", colorGreen, colorReset, formatted)
}
