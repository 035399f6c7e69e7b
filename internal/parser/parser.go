// Package parser extracts test counts and failed test names from captured
// dotnet test output.
package parser

import (
	"regexp"
	"strconv"
	"strings"

	"dotpipe/internal/domain"
)

var (
	// Passed!  - Failed:     0, Passed:    12, Skipped:     0, Total:    12, Duration: 1 s - Api.Test.dll (net8.0)
	summaryLine = regexp.MustCompile(`(?m)^\s*(?:Passed|Failed)!\s+-\s+(.*)$`)
	countPair   = regexp.MustCompile(`(Failed|Passed|Skipped|Total):\s*(\d+)`)

	// Older VSTest summary block:
	//   Total tests: 4
	//        Passed: 3
	//        Failed: 1
	legacyTotal = regexp.MustCompile(`(?m)^\s*Total tests:\s*(\d+)`)
	legacyCount = regexp.MustCompile(`(?m)^\s+(Passed|Failed|Skipped):\s*(\d+)\s*$`)

	//   Failed Shop.Api.Test.OrdersTests.Total_IsSum [12 ms]
	failedTest = regexp.MustCompile(`(?m)^\s+Failed\s+(\S+)\s+\[[^\]]*\]\s*$`)
)

// TestOutputParser parses dotnet test console output
type TestOutputParser struct{}

// NewTestOutputParser creates a new TestOutputParser
func NewTestOutputParser() *TestOutputParser {
	return &TestOutputParser{}
}

// ParseCounts sums the test counts of every summary line in output (one per
// target framework). ok is false when output has no summary, e.g. when it was
// streamed instead of captured.
func (p *TestOutputParser) ParseCounts(output string) (counts domain.TestCounts, ok bool) {
	for _, line := range summaryLine.FindAllStringSubmatch(output, -1) {
		var c domain.TestCounts
		total := -1
		for _, pair := range countPair.FindAllStringSubmatch(line[1], -1) {
			n, _ := strconv.Atoi(pair[2])
			switch pair[1] {
			case "Failed":
				c.Failed = n
			case "Passed":
				c.Passed = n
			case "Skipped":
				c.Skipped = n
			case "Total":
				total = n
			}
		}
		if total < 0 {
			total = c.Passed + c.Failed + c.Skipped
		}
		c.Total = total
		counts = counts.Add(c)
		ok = true
	}
	if ok {
		return counts, true
	}

	return p.parseLegacy(output)
}

func (p *TestOutputParser) parseLegacy(output string) (domain.TestCounts, bool) {
	m := legacyTotal.FindStringSubmatch(output)
	if len(m) < 2 {
		return domain.TestCounts{}, false
	}

	var c domain.TestCounts
	c.Total, _ = strconv.Atoi(m[1])
	for _, pair := range legacyCount.FindAllStringSubmatch(output, -1) {
		n, _ := strconv.Atoi(pair[2])
		switch pair[1] {
		case "Passed":
			c.Passed = n
		case "Failed":
			c.Failed = n
		case "Skipped":
			c.Skipped = n
		}
	}
	return c, true
}

// ParseFailedTests returns the fully qualified names of failed tests in the
// order they were reported, without duplicates.
func (p *TestOutputParser) ParseFailedTests(output string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, m := range failedTest.FindAllStringSubmatch(output, -1) {
		name := strings.TrimSpace(m[1])
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}
