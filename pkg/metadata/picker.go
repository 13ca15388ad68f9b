package metadata

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
)

// RankedResult pairs a search result with its similarity to the query.
type RankedResult struct {
	Similarity float64
	Result     SearchResult
}

// RankResults orders results by title similarity to name, best first.
func RankResults(name string, results []SearchResult) []RankedResult {
	ranked := make([]RankedResult, 0, len(results))
	for _, result := range results {
		ranked = append(ranked, RankedResult{
			Similarity: similarity(name, result.Title),
			Result:     result,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Similarity > ranked[j].Similarity
	})

	return ranked
}

// similarity maps edit distance into [0, 1], 1 being an exact
// (case-insensitive) match.
func similarity(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}

	if longest == 0 {
		return 1
	}

	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(longest)
}

// Pick chooses one of results for the query name. A single result is
// taken as-is. Multiple results are ranked; useFirst takes the best,
// otherwise the user picks an index on in. Quitting the prompt returns
// ErrNoSelection.
func Pick(name string, results []SearchResult, useFirst bool, in io.Reader, out io.Writer) (*SearchResult, error) {
	if len(results) == 0 {
		return nil, ErrNoResults
	}

	if len(results) == 1 {
		return &results[0], nil
	}

	ranked := RankResults(name, results)
	fmt.Fprintf(out, "Found %d possible results.\n", len(ranked))

	if useFirst {
		fmt.Fprintln(out, "Automatically choosing first result.")
		return &ranked[0].Result, nil
	}

	for i, rr := range ranked {
		fmt.Fprintf(out, "%02d -- %s (Sim: %1.3f) --- %s\n", i, rr.Result.Title, rr.Similarity, rr.Result.Description)
	}

	index, ok := promptIndex(in, out, len(ranked)-1, "Enter index of desired result.")
	if !ok {
		return nil, ErrNoSelection
	}

	return &ranked[index].Result, nil
}

// promptIndex reads an int in [0, upper] from in, reprompting on bad
// input. Returns false on q/quit or end of input.
func promptIndex(in io.Reader, out io.Writer, upper int, prompt string) (int, bool) {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprintf(out, "%s (Enter \"q\" or \"quit\" to exit.): ", prompt)

		if !scanner.Scan() {
			fmt.Fprintln(out)
			return 0, false
		}

		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		if lowered := strings.ToLower(text); lowered == "q" || lowered == "quit" {
			return 0, false
		}

		value, err := strconv.Atoi(text)
		if err != nil {
			continue
		}

		if value < 0 || value > upper {
			fmt.Fprintf(out, "Int is out of bounds, must be in [0, %d].\n", upper)
			continue
		}

		return value, true
	}
}
