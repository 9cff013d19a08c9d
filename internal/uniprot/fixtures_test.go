// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package uniprot

import (
	"context"
	"fmt"
	"sync"

	"github.com/pdiddy/dictionary-uniprot/pkg/types"
)

const testURLBase = "http://test"

const columnsURLPart = "&columns=id%2Ccomment%28FUNCTION%29%2Cprotein%20names%2Cgenes%2Corganism%2Creviewed%2Centry%20name%2Cannotation%20score"

const tabHeader = "Entry\tFunction [CC]\tProtein names\tGene names\tOrganism\tStatus\tEntry name\tAnnotation\n"

const rowP52413 = "P52413\tFUNCTION: Carrier of the growing fatty acid chain in fatty acid biosynthesis. \tAcyl carrier protein 3, chloroplastic (ACP)\tACL1.3 ACP1-3\tCuphea lanceolata (Cigar flower)\treviewed\tACP3_CUPLA\t3 out of 5\n"

const rowP53142 = "P53142\tFUNCTION: May be involved in vacuolar protein sorting. {ECO:0000269|PubMed:12134085}.\tVacuolar protein sorting-associated protein 73\tVPS73 YGL104C G3090\tSaccharomyces cerevisiae (strain ATCC 204508 / S288c) (Baker's yeast)\treviewed\tVPS73_YEAST\t3 out of 5\n"

const rowP12345 = "P12345\tFUNCTION: Catalyzes the irreversible transamination of the L-tryptophan metabolite L-kynurenine. \tAspartate aminotransferase, mitochondrial (mAspAT) (EC 2.6.1.1)\tGOT2\tOryctolagus cuniculus (Rabbit)\treviewed\tAATM_RABIT\t4 out of 5\n"

const rowQ6UVK1 = "Q6UVK1\tFUNCTION: Proteoglycan playing a role in cell proliferation and migration.\tChondroitin sulfate proteoglycan 4 (Chondroitin sulfate proteoglycan NG2) (Melanoma chondroitin sulfate proteoglycan) (Melanoma-associated chondroitin sulfate proteoglycan)\tCSPG4 MCSP\tHomo sapiens (Human)\treviewed\tCSPG4_HUMAN\t5 out of 5\n"

const rowP43121 = "P43121\tFUNCTION: Plays a role in cell adhesion.\tCell surface glycoprotein MUC18 (Cell surface glycoprotein P1H12) (Melanoma cell adhesion molecule) (Melanoma-associated antigen A32) (Melanoma-associated antigen MUC18) (S-endo 1 endothelial-associated antigen) (CD antigen CD146)\tMCAM MUC18\tHomo sapiens (Human)\treviewed\tMUC18_HUMAN\t5 out of 5\n"

// idsTab is a response holding two entries.
const idsTab = tabHeader + rowP52413 + rowP53142

// melanomaTab is a response to a free-text search for "melanoma".
const melanomaTab = tabHeader + rowP43121 + rowQ6UVK1

// entryURL returns the lookup URL the test dictionary builds for acc.
func entryURL(acc string) string {
	return testURLBase + "/?query=id:" + acc + columnsURLPart + "&format=tab"
}

// testDict returns a dictionary against testURLBase. Curator ordering is
// off unless curator is true.
func testDict(f Fetcher, curator bool, opts ...Option) *Dictionary {
	return New(types.DictionaryConfig{BaseURL: testURLBase, OptimizeForCurator: types.Bool(curator)}, f, opts...)
}

// fakeFetcher serves canned bodies or errors by URL and records calls.
type fakeFetcher struct {
	mu     sync.Mutex
	bodies map[string]string
	errs   map[string]error
	calls  []string
	// gates holds per-URL channels; a call for a gated URL waits until
	// its channel is closed.
	gates map[string]chan struct{}
}

func (f *fakeFetcher) Fetch(_ context.Context, url string) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, url)
	f.mu.Unlock()

	if gate, ok := f.gates[url]; ok {
		<-gate
	}

	if err, ok := f.errs[url]; ok {
		return "", err
	}
	if body, ok := f.bodies[url]; ok {
		return body, nil
	}
	return "", fmt.Errorf("unexpected URL %s", url)
}

func (f *fakeFetcher) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}
