package contig

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/foldworks/contigctl/pkg/types"
)

// Run is a maximal run of consecutive residue numbers, inclusive on both
// ends. A single residue is represented as Start == End.
type Run struct {
	Start int
	End   int
}

// segmentRE matches one range segment: a chain letter followed by an
// inclusive numeric range, e.g. "A2-15".
var segmentRE = regexp.MustCompile(`^([A-Z])(\d+)-(\d+)$`)

// GroupConsecutive groups a strictly increasing sequence of integers into
// maximal runs of consecutive values. Empty input yields empty output.
func GroupConsecutive(numbers []int) []Run {
	if len(numbers) == 0 {
		return nil
	}

	runs := make([]Run, 0, len(numbers))
	run := Run{Start: numbers[0], End: numbers[0]}
	for _, n := range numbers[1:] {
		if n == run.End+1 {
			run.End = n
			continue
		}
		runs = append(runs, run)
		run = Run{Start: n, End: n}
	}
	return append(runs, run)
}

// Encode renders a residue set as a range string. Residues are grouped by
// chain (chains sorted), each maximal consecutive run becomes
// "<chain><start>-<end>", and segments are joined with "/". Single-residue
// runs keep the dashed form ("A9-9") so the output re-parses unambiguously.
// An empty set encodes to the empty string.
func Encode(keys []types.ResidueKey) string {
	if len(keys) == 0 {
		return ""
	}

	byChain := make(map[string][]int)
	for _, key := range keys {
		byChain[key.Chain] = append(byChain[key.Chain], key.Number)
	}

	chains := make([]string, 0, len(byChain))
	for chain := range byChain {
		chains = append(chains, chain)
	}
	sort.Strings(chains)

	var segments []string
	for _, chain := range chains {
		numbers := byChain[chain]
		sort.Ints(numbers)
		for _, run := range GroupConsecutive(numbers) {
			segments = append(segments, fmt.Sprintf("%s%d-%d", chain, run.Start, run.End))
		}
	}
	return strings.Join(segments, "/")
}

// Decode parses a range string into the set of residue keys it names.
// Segments are split on "/" and expanded inclusively; malformed segments
// are silently skipped, as are reversed ranges (start greater than end).
// The empty string decodes to an empty set.
func Decode(s string) map[types.ResidueKey]bool {
	keys := make(map[types.ResidueKey]bool)
	for _, segment := range strings.Split(s, "/") {
		segment = strings.TrimSpace(segment)
		m := segmentRE.FindStringSubmatch(segment)
		if m == nil {
			continue
		}
		// The regexp only admits digit runs, so these cannot fail.
		start, _ := strconv.Atoi(m[2])
		end, _ := strconv.Atoi(m[3])
		for n := start; n <= end; n++ {
			keys[types.ResidueKey{Chain: m[1], Number: n}] = true
		}
	}
	return keys
}

// DecodeSorted is Decode with the result flattened to a slice sorted by
// chain and residue number.
func DecodeSorted(s string) []types.ResidueKey {
	set := Decode(s)
	keys := make([]types.ResidueKey, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	types.SortResidueKeys(keys)
	return keys
}
