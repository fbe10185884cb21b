// Package ci runs the local CI pipeline: format check, lint, tests with a
// coverage floor, vulnerability scan, and a build of the huntboard binary.
// Steps run concurrently and the summary sorts passes before failures.
package ci

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
)

const (
	colorRed    = "\033[0;31m"
	colorGreen  = "\033[0;32m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
	colorReset  = "\033[0m"
)

// coverageFloor is the minimum total test coverage the pipeline accepts.
const coverageFloor = 40.0

// StepResult records the outcome of one pipeline step.
type StepResult struct {
	Name    string
	Passed  bool
	Output  string
	Message string
}

// Runner executes the pipeline steps and collects their results.
type Runner struct {
	results []StepResult
	mu      sync.Mutex
}

func NewRunner() *Runner {
	return &Runner{results: make([]StepResult, 0)}
}

func (r *Runner) addResult(result StepResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, result)
}

// Run executes every step and returns the process exit code.
func (r *Runner) Run() int {
	fmt.Printf("%s======================================%s\n", colorBlue, colorReset)
	fmt.Printf("%s      huntboard CI pipeline           %s\n", colorBlue, colorReset)
	fmt.Printf("%s======================================%s\n", colorBlue, colorReset)
	fmt.Println()

	steps := []func(){
		r.checkFormat,
		r.runLint,
		r.runTests,
		r.runVulnScan,
		r.runBuild,
	}

	var wg sync.WaitGroup
	for _, step := range steps {
		wg.Add(1)
		go func(fn func()) {
			defer wg.Done()
			fn()
		}(step)
	}
	wg.Wait()

	return r.printSummary()
}

// run executes a command and returns its combined output and error.
func run(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	return out.String(), err
}

func (r *Runner) checkFormat() {
	out, err := run("gofmt", "-s", "-l", ".")
	if err != nil {
		r.addResult(StepResult{
			Name:    "Format",
			Output:  out,
			Message: "Failed to run gofmt",
		})
		return
	}

	if unformatted := strings.TrimSpace(out); unformatted != "" {
		r.addResult(StepResult{
			Name:    "Format",
			Output:  unformatted,
			Message: "Files not formatted (run 'gofmt -s -w .')",
		})
		return
	}

	r.addResult(StepResult{Name: "Format", Passed: true, Message: "All files formatted"})
}

func (r *Runner) runLint() {
	if _, err := exec.LookPath("golangci-lint"); err != nil {
		r.addResult(StepResult{
			Name:    "Lint",
			Message: "golangci-lint not found (go install github.com/golangci/golangci-lint/cmd/golangci-lint@latest)",
		})
		return
	}

	out, err := run("golangci-lint", "run", "--timeout=5m")
	if err != nil {
		r.addResult(StepResult{Name: "Lint", Output: out, Message: "Lint failed"})
		return
	}
	r.addResult(StepResult{Name: "Lint", Passed: true, Message: "Lint passed"})
}

func (r *Runner) runTests() {
	out, err := run("go", "test", "-race", "-coverprofile=coverage.out", "-covermode=atomic", "./...")
	if err != nil {
		r.addResult(StepResult{Name: "Test", Output: out, Message: "Tests failed"})
		return
	}
	r.addResult(StepResult{Name: "Test", Passed: true, Message: "Tests passed"})

	r.checkCoverage()
}

func (r *Runner) checkCoverage() {
	out, err := run("go", "tool", "cover", "-func=coverage.out")
	if err != nil {
		r.addResult(StepResult{Name: "Coverage", Message: "Failed to read coverage"})
		return
	}

	var coverage float64
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "total:") {
			fields := strings.Fields(line)
			if len(fields) >= 3 {
				fmt.Sscanf(fields[2], "%f%%", &coverage)
			}
		}
	}

	if coverage < coverageFloor {
		r.addResult(StepResult{
			Name:    "Coverage",
			Message: fmt.Sprintf("Coverage is %.1f%% - below %.0f%% floor", coverage, coverageFloor),
		})
		return
	}
	r.addResult(StepResult{
		Name:    "Coverage",
		Passed:  true,
		Message: fmt.Sprintf("Coverage is %.1f%%", coverage),
	})
}

func (r *Runner) runVulnScan() {
	if _, err := exec.LookPath("govulncheck"); err != nil {
		r.addResult(StepResult{
			Name:    "Vulnerability Scan",
			Message: "govulncheck not found (go install golang.org/x/vuln/cmd/govulncheck@latest)",
		})
		return
	}

	out, err := run("govulncheck", "./...")
	if err != nil {
		r.addResult(StepResult{Name: "Vulnerability Scan", Output: out, Message: "Scan failed"})
		return
	}
	r.addResult(StepResult{Name: "Vulnerability Scan", Passed: true, Message: "No known vulnerabilities"})
}

func (r *Runner) runBuild() {
	out, err := run("go", "build", "-o", "bin/huntboard", ".")
	if err != nil {
		r.addResult(StepResult{Name: "Build", Output: out, Message: "Build failed"})
		return
	}

	if _, err := os.Stat("bin/huntboard"); os.IsNotExist(err) {
		r.addResult(StepResult{Name: "Build", Message: "Binary not created"})
		return
	}
	r.addResult(StepResult{Name: "Build", Passed: true, Message: "Build successful"})
}

func (r *Runner) printSummary() int {
	fmt.Println()
	fmt.Printf("%s======================================%s\n", colorBlue, colorReset)
	fmt.Printf("%s             Summary                  %s\n", colorBlue, colorReset)
	fmt.Printf("%s======================================%s\n", colorBlue, colorReset)
	fmt.Println()

	var passed []StepResult
	var failed []StepResult
	for _, result := range r.results {
		if result.Passed {
			passed = append(passed, result)
		} else {
			failed = append(failed, result)
		}
	}

	for _, result := range passed {
		fmt.Printf("%s✅ PASS%s  %s\n", colorGreen, colorReset, result.Name)
	}
	for _, result := range failed {
		fmt.Printf("%s❌ FAIL%s  %s", colorRed, colorReset, result.Name)
		if result.Message != "" {
			fmt.Printf(" - %s", result.Message)
		}
		fmt.Println()
		if result.Output != "" {
			fmt.Printf("%s%s%s\n", colorYellow, result.Output, colorReset)
		}
	}

	fmt.Println()
	if len(failed) == 0 {
		fmt.Printf("%s✅ All steps passed%s\n", colorGreen, colorReset)
		return 0
	}
	fmt.Printf("%s❌ Failed: %d/%d steps%s\n", colorRed, len(failed), len(r.results), colorReset)
	return 1
}
