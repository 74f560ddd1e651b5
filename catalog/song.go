// ABOUTME: Song-level matching and routing of files to editions
// ABOUTME: Picks an existing edition or starts a new one

package catalog

import "fmt"

// Match compares artists and title
func (s *Song) Match(in *ParsedFilename, m Matcher) Match {
	return m.Classify(
		[2]string{s.Artists, in.Artists},
		[2]string{s.Title, in.Title},
	)
}

// Append routes the incoming file to one of the song's editions, creating a
// new edition when none fits. It always merges, so it only fails on errors.
func (s *Song) Append(b *Builder, in *ParsedFilename) (bool, error) {
	target, err := s.findEdition(b, in)
	if err != nil {
		return false, err
	}

	if target != nil {
		merged, err := target.Append(b, in)
		if err != nil {
			return false, err
		}

		if merged {
			return true, nil
		}

		b.opts.Logf("Keeping %s as a separate edition of %s", in.BaseName(), s.CanonicalName())
	}

	e := newEdition(s, in)
	s.Editions = append(s.Editions, e)

	return true, b.syncEdition(e)
}

// findEdition returns the exact edition, or the one picked among near editions
func (s *Song) findEdition(b *Builder, in *ParsedFilename) (*Edition, error) {
	var near []*Edition

	for _, e := range s.Editions {
		switch e.Match(in, b.opts.Matcher) {
		case Exact:
			return e, nil
		case Near:
			near = append(near, e)
		}
	}

	options := []string{noMatchOption}
	for _, e := range near {
		options = append(options, e.Label())
	}

	idx, err := b.choose(options, fmt.Sprintf("Pick a match for %s", in.BaseName()), !b.opts.PromptNewEdition)
	if err != nil || idx == 0 {
		return nil, err
	}

	return near[idx-1], nil
}
