package brand

// Brand is the record the wizard fills in step by step.
type Brand struct {
	Name                   string          `json:"name" yaml:"name"`
	Industry               string          `json:"industry" yaml:"industry"`
	Mission                string          `json:"mission" yaml:"mission"`
	Vision                 string          `json:"vision" yaml:"vision"`
	LongTermVision         string          `json:"longTermVision" yaml:"longTermVision"`
	Values                 []string        `json:"values" yaml:"values"`
	TargetAudience         TargetAudience  `json:"targetAudience" yaml:"targetAudience"`
	UniqueValueProposition string          `json:"uniqueValueProposition" yaml:"uniqueValueProposition"`
	ContentPillars         []ContentPillar `json:"contentPillars" yaml:"contentPillars"`
}

// TargetAudience groups the audience description. Only Demographics is
// editable through the wizard.
type TargetAudience struct {
	Demographics string   `json:"demographics" yaml:"demographics"`
	Interests    []string `json:"interests" yaml:"interests"`
	PainPoints   []string `json:"painPoints" yaml:"painPoints"`
}

// ContentPillar is declared for downstream consumers; the wizard never
// populates it.
type ContentPillar struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Topics      []string `json:"topics" yaml:"topics"`
}

// New returns the default record: empty scalars and single-element lists
// holding an empty string.
func New() Brand {
	return Brand{
		Values: []string{""},
		TargetAudience: TargetAudience{
			Interests:  []string{""},
			PainPoints: []string{""},
		},
		ContentPillars: []ContentPillar{},
	}
}

// Clone returns a deep copy so callers cannot alias list storage.
func (b Brand) Clone() Brand {
	out := b
	out.Values = cloneStrings(b.Values)
	out.TargetAudience.Interests = cloneStrings(b.TargetAudience.Interests)
	out.TargetAudience.PainPoints = cloneStrings(b.TargetAudience.PainPoints)
	if b.ContentPillars != nil {
		out.ContentPillars = make([]ContentPillar, len(b.ContentPillars))
		for i, pillar := range b.ContentPillars {
			pillar.Topics = cloneStrings(pillar.Topics)
			out.ContentPillars[i] = pillar
		}
	}
	return out
}

// Normalize fills nil lists with their defaults so a record decoded from an
// external source keeps the "no absent field" invariant.
func (b Brand) Normalize() Brand {
	out := b.Clone()
	if len(out.Values) == 0 {
		out.Values = []string{""}
	}
	if len(out.TargetAudience.Interests) == 0 {
		out.TargetAudience.Interests = []string{""}
	}
	if len(out.TargetAudience.PainPoints) == 0 {
		out.TargetAudience.PainPoints = []string{""}
	}
	if out.ContentPillars == nil {
		out.ContentPillars = []ContentPillar{}
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
