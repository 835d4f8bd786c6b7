// cmpstat loads a synthetic record set into the store and reports how
// many key comparisons its lookups cost, next to a balanced B-tree
// baseline over the same keys. Run it with growing -records values to
// watch the unbalanced tree's cost climb relative to ceil(log2 n).
//
// Usage: go run ./cmd/cmpstat [-records N] [-workload file.yaml]
package main

import (
	"fmt"
	"log"
	"math"
	"math/rand"

	"github.com/google/btree"

	"treedb/config"
	"treedb/storage"
	"treedb/version"
)

// Mixed casing on purpose: the last-name index folds case, and the
// prefix scans below should see that.
var surnames = []string{
	"Smith", "smith", "Jones", "JOHNSON", "Williams", "brown", "Davis",
	"miller", "Wilson", "Moore", "Taylor", "anderson", "Thomas",
	"Jackson", "White", "harris", "Martin", "Thompson", "garcia",
	"Martinez", "Robinson", "clark", "Rodriguez", "Lewis", "lee",
	"Walker", "Hall", "allen", "Young", "King", "Smythe", "Snow",
}

var firstNames = []string{
	"Ada", "Alan", "Barbara", "Edsger", "Grace", "Donald", "John",
	"Kathleen", "Ken", "Dennis", "Margaret", "Niklaus", "Tony", "Fran",
}

func main() {
	cfg, err := config.Parse()
	if err != nil {
		log.Fatal(err)
	}
	w := cfg.Workload

	fmt.Println(version.String())
	fmt.Printf("workload: %d records, %d lookups, seed %d\n\n", w.Records, w.Lookups, w.Seed)

	rng := rand.New(rand.NewSource(w.Seed))
	eng := storage.New()

	// Shuffled ids keep the tree from degenerating into a list; pass a
	// sorted workload file id order through -seed experiments instead
	// if degradation is what you want to see.
	ids := rng.Perm(w.Records)
	for _, id := range ids {
		eng.InsertRecord(storage.Record{
			ID:    id,
			First: firstNames[rng.Intn(len(firstNames))],
			Last:  surnames[rng.Intn(len(surnames))],
		})
	}

	reportPointLookups(eng, rng, ids, w.Lookups)
	reportBaseline(rng, ids, w.Lookups)
	reportRangeScan(eng, rng, w)
	reportPrefixScans(eng, w.Prefixes)

	for i := 0; i < w.Deletes; i++ {
		eng.DeleteByID(ids[rng.Intn(len(ids))])
	}
	reportStats(eng, w.Deletes)
}

func reportPointLookups(eng *storage.Engine, rng *rand.Rand, ids []int, lookups int) {
	minCmp, maxCmp, total := math.MaxInt, 0, 0
	for i := 0; i < lookups; i++ {
		_, cmps := eng.FindByID(ids[rng.Intn(len(ids))])
		total += cmps
		if cmps < minCmp {
			minCmp = cmps
		}
		if cmps > maxCmp {
			maxCmp = cmps
		}
	}
	logN := math.Ceil(math.Log2(float64(len(ids))))
	fmt.Printf("point lookups (%d):\n", lookups)
	fmt.Printf("  comparisons min/avg/max: %d / %.1f / %d (ceil(log2 n) = %.0f)\n\n",
		minCmp, float64(total)/float64(lookups), maxCmp, logN)
}

// reportBaseline runs the same point lookups against a balanced B-tree
// whose Less function counts its own comparisons.
func reportBaseline(rng *rand.Rand, ids []int, lookups int) {
	var cmps int
	bt := btree.NewG(32, func(a, b int) bool {
		cmps++
		return a < b
	})
	for _, id := range ids {
		bt.ReplaceOrInsert(id)
	}

	cmps = 0
	for i := 0; i < lookups; i++ {
		bt.Get(ids[rng.Intn(len(ids))])
	}
	fmt.Printf("balanced B-tree baseline (%d lookups):\n", lookups)
	fmt.Printf("  comparisons avg: %.1f\n\n", float64(cmps)/float64(lookups))
}

func reportRangeScan(eng *storage.Engine, rng *rand.Rand, w config.Workload) {
	lo := rng.Intn(w.Records)
	hi := lo + w.RangeWidth - 1
	recs, cmps := eng.RangeByID(lo, hi)
	fmt.Printf("range scan [%d, %d]: %d records, %d comparisons\n\n", lo, hi, len(recs), cmps)
}

func reportPrefixScans(eng *storage.Engine, prefixes []string) {
	fmt.Println("prefix scans:")
	for _, p := range prefixes {
		recs, cmps := eng.PrefixByLast(p)
		fmt.Printf("  %-8q %6d records, %d comparisons\n", p, len(recs), cmps)
	}
	fmt.Println()
}

func reportStats(eng *storage.Engine, deletes int) {
	stats := eng.Stats()
	fmt.Printf("after %d deletes:\n", deletes)
	fmt.Printf("  records total/live/deleted: %d / %d / %d\n",
		stats.TotalRecords, stats.LiveRecords, stats.DeletedRecords)
	fmt.Printf("  index keys id/last-name:    %d / %d\n", stats.IDKeys, stats.LastNameKeys)
	fmt.Printf("  memory estimate:            %d bytes\n", stats.MemoryBytes)
}
