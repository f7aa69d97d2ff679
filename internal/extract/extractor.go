package extract

import "github.com/rs/zerolog/log"

// Extractor turns a buffered corpus into the ordered list of header
// sections to emit. Implementations must be deterministic.
type Extractor interface {
	Extract(input string) []string
}

// HeaderExtractor is the default Extractor. It behaves like Extract and
// additionally reports each dropped document at debug level.
type HeaderExtractor struct{}

func (HeaderExtractor) Extract(input string) []string {
	docs := SplitDocuments(input)
	log.Debug().Int("documents", len(docs)).Msg("corpus split")

	out := make([]string, 0, len(docs))
	for i, d := range docs {
		h, ok := headerText(d)
		if !ok {
			log.Debug().Int("index", i).Str("title", d.Title).Msg("document has no header; skipped")
			continue
		}
		out = append(out, h)
	}
	return out
}
