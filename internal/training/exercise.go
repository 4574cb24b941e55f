package training

// Exercise is immutable reference data describing one movement.
type Exercise struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"` // upper / lower / core
	Equipment string `json:"equipment"`
	DemoURL   string `json:"demoUrl,omitempty"`
	FormNotes string `json:"formNotes,omitempty"`
}

// WorkoutTemplate is one of exactly two alternating workout blueprints.
// Ordering by cycle position defines the alternation.
type WorkoutTemplate struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	CyclePosition int    `json:"cyclePosition"` // 1 or 2
	Description   string `json:"description,omitempty"`
}

// TemplateItem prescribes one exercise slot within a template.
// Invariant: RepMin <= RepMax, Increment >= 0.
type TemplateItem struct {
	ID          int      `json:"id"`
	TemplateID  int      `json:"templateId"`
	Exercise    Exercise `json:"exercise"`
	SortOrder   int      `json:"sortOrder"`
	TargetSets  int      `json:"targetSets"`
	RepMin      int      `json:"repMin"`
	RepMax      int      `json:"repMax"`
	RestSeconds int      `json:"restSeconds"`
	StartWeight *float64 `json:"startWeight,omitempty"`
	Increment   float64  `json:"increment"`
	Notes       string   `json:"notes,omitempty"`
}
