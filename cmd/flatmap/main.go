package main

import (
	"cmp"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/scottcagno/collections/pkg/flatmap"
	"go.yaml.in/yaml/v3"
)

func main() {

	// count words, first appearance decides the slot
	counts := flatmap.New[string, int]()
	t1 := time.Now()
	for _, word := range strings.Fields(strings.ToLower(sonnet55)) {
		word = strings.Trim(word, `.,;:!?'"`)
		*counts.GetOrInsert(word) += 1
	}
	fmt.Printf("counted %d distinct words (took %s)\n", counts.Len(), time.Since(t1))

	// first few words, in order of first appearance
	shown := 0
	counts.Range(func(key string, value int) bool {
		fmt.Printf("%-12s %d\n", key, value)
		shown++
		return shown < 5
	})

	// sort the pairs by count, then by word
	counts.Sort(func(a, b flatmap.Entry[string, int]) int {
		if n := cmp.Compare(b.Value, a.Value); n != 0 {
			return n
		}
		return cmp.Compare(a.Key, b.Key)
	})
	fmt.Println("\nmost frequent:")
	n := 0
	counts.Range(func(key string, value int) bool {
		fmt.Printf("%-12s %d\n", key, value)
		n++
		return n < 5
	})

	// binary search once sorted by key
	counts.SortKeys(cmp.Compare[string])
	t2 := time.Now()
	i, found := counts.Search(func(entry flatmap.Entry[string, int]) int {
		return cmp.Compare(entry.Key, "marble")
	})
	fmt.Printf("\nsearch %q: slot=%d, found=%t (took %s)\n", "marble", i, found, time.Since(t2))

	// the slot order survives a round of yaml
	out, err := yaml.Marshal(counts)
	if err != nil {
		log.Fatalf("marshal: %v", err)
	}
	fmt.Printf("\nyaml (first lines):\n%s\n", firstLines(string(out), 5))
}

func firstLines(s string, n int) string {
	lines := strings.SplitN(s, "\n", n+1)
	if len(lines) > n {
		lines = lines[:n]
	}
	return strings.Join(lines, "\n")
}

var sonnet55 = `Not marble nor the gilded monuments
Of princes shall outlive this powerful rhyme;
But you shall shine more bright in these contents
Than unswept stone, besmear'd with sluttish time.
When wasteful war shall statues overturn,
And broils root out the work of masonry,
Nor Mars his sword nor war's quick fire shall burn
The living record of your memory.
'Gainst death and all-oblivious enmity
Shall you pace forth; your praise shall still find room,
Even in the eyes of all posterity
That wear this world out to the ending doom.
    So, till the judgment that yourself arise,
    You live in this, and dwell in lovers' eyes.`
