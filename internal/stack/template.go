package stack

// Template defaults offered by `ldot generate`
const (
	DefaultStackName        = "stack"
	DefaultStackVersion     = "1.0.0"
	DefaultStackDescription = "Stack Description"
)

// NewTemplate returns a starter document with one project, one stage and one
// script, meant to be edited by hand before loading.
func NewTemplate(name, version, description string) *Document {
	return &Document{
		Version:     version,
		StackName:   name,
		Description: description,
		Projects: []Project{
			{
				Name:        "some_project",
				Description: "some project description",
				Stages: []Stage{
					{
						Name:          "stage_name",
						Description:   "stage description",
						Prerequisites: []string{},
						Commands:      []string{"echo hello world"},
					},
				},
			},
		},
		Scripts: []Script{
			{
				Name:        "script_name",
				Description: "script description",
				Commands:    []string{"echo hello world"},
			},
		},
	}
}
