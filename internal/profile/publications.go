package profile

import (
	"fmt"

	"github.com/jonathan/resume-profiles/internal/types"
)

// publicationLimit is how many publications limited profiles keep
const publicationLimit = 3

// PublicationMode selects how publications are included
type PublicationMode int

const (
	// PublicationsNone drops every publication
	PublicationsNone PublicationMode = iota
	// PublicationsFirst keeps the first Limit publications
	PublicationsFirst
	// PublicationsAll keeps the publications section as is
	PublicationsAll
)

// PublicationRule is the publication inclusion policy of a profile
type PublicationRule struct {
	Mode  PublicationMode
	Limit int
}

// PublicationRuleFor returns the rule for a resolved profile name
func PublicationRuleFor(name string) PublicationRule {
	switch name {
	case Research:
		return PublicationRule{Mode: PublicationsAll}
	case Aerospace, Default:
		return PublicationRule{Mode: PublicationsFirst, Limit: publicationLimit}
	default:
		return PublicationRule{Mode: PublicationsNone}
	}
}

// Apply returns the publications section allowed by the rule.
// The input section is never modified.
func (r PublicationRule) Apply(pubs types.Publications) types.Publications {
	switch r.Mode {
	case PublicationsAll:
		return pubs
	case PublicationsFirst:
		n := max(min(len(pubs.Publications), r.Limit), 0)
		kept := make([]types.Publication, n)
		copy(kept, pubs.Publications[:n])
		return types.Publications{Publications: kept}
	default:
		return types.Publications{Publications: []types.Publication{}}
	}
}

func (r PublicationRule) String() string {
	switch r.Mode {
	case PublicationsAll:
		return "all"
	case PublicationsFirst:
		return fmt.Sprintf("first %d", r.Limit)
	default:
		return "none"
	}
}
