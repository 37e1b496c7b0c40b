// Package harness provides conformance testing for the longest-run finder.
//
// The harness loads scenarios, runs them through runs.Longest, checks the
// structural properties every result must have, and compares traces against
// golden snapshots.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	predicate: divisible:10
//	input: [10, 20, 5, 6, 7, 10, 20, 30, 1, 2, 3, 30]
//	expect: [10, 20, 30]
//	checks:
//	  - value: 0
//	    holds: true
//
// predicate takes any form accepted by runs.ParsePredicate. checks are
// optional point tests of the predicate itself.
//
// # Property Checks
//
// Independently of expect, every result is checked to be:
//
//   - a contiguous sub-slice of the input, in original order
//   - made only of elements satisfying the predicate
//   - maximal: its neighbours (if any) fail the predicate
//   - the earliest of the longest maximal runs
//
// # Deterministic Testing
//
// Trace events are stamped by a deterministic sequencer and scenarios
// carry a fixed session token, so identical scenarios produce byte-identical
// snapshots for golden file comparison.
//
// # Usage
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/tens.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := harness.Run(scenario)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !result.Pass {
//	    for _, e := range result.Errors {
//	        log.Println(e)
//	    }
//	}
package harness
