// Package tailoring assembles a profile-specific resume from the master data.
package tailoring

import (
	"github.com/jonathan/resume-profiles/internal/filter"
	"github.com/jonathan/resume-profiles/internal/profile"
	"github.com/jonathan/resume-profiles/internal/types"
)

// Assemble builds the tailored resume for cfg. Personal and education pass
// through verbatim; every other section is filtered into new containers so
// master is left untouched.
func Assemble(master *types.MasterData, cfg profile.Config) *types.TailoredResume {
	return &types.TailoredResume{
		Personal:     master.Personal,
		Education:    master.Education,
		SectionOrder: append([]string(nil), cfg.SectionOrder...),
		Experience:   assembleExperience(master.Experience, cfg.JobTags),
		Skills:       assembleSkills(master.Skills, cfg.SkillFields),
		Projects: types.Projects{
			Projects: filter.Projects(master.Projects.Projects, cfg.ProjectTags),
		},
		Publications: cfg.Publications.Apply(master.Publications),
	}
}

func assembleExperience(experience types.Experience, sel filter.Selector) types.Experience {
	if sel.IsAll() {
		return experience
	}
	return types.Experience{Jobs: filter.Achievements(experience.Jobs, sel)}
}

func assembleSkills(skills types.Skills, sel filter.Selector) types.Skills {
	if sel.IsAll() {
		return skills
	}
	return types.Skills{SkillSets: filter.SkillSets(skills.SkillSets, sel)}
}
