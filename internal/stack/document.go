package stack

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	ldoterrors "ldot.dev/ldot/internal/errors"
)

// DefaultFileName is the stack file used when no path is given
const DefaultFileName = "ldot_stack.json"

// Document is a parsed stack file
type Document struct {
	Version     string    `json:"version" yaml:"version"`
	StackName   string    `json:"stack_name" yaml:"stack_name"`
	Description string    `json:"description" yaml:"description"`
	Projects    []Project `json:"projects" yaml:"projects"`
	Scripts     []Script  `json:"scripts" yaml:"scripts"`
}

// Project is a named group of stages
type Project struct {
	Name        string  `json:"project_name" yaml:"project_name"`
	Description string  `json:"project_description" yaml:"project_description"`
	Stages      []Stage `json:"stages" yaml:"stages"`
}

// Stage is a named, ordered list of commands within a project.
// Prerequisites are carried as metadata only; nothing orders or gates on them.
type Stage struct {
	Name          string   `json:"stage_name" yaml:"stage_name"`
	Description   string   `json:"stage_description" yaml:"stage_description"`
	Prerequisites []string `json:"prerequisites" yaml:"prerequisites"`
	Commands      []string `json:"commands" yaml:"commands"`
}

// Script is a named, ordered list of commands at the stack level
type Script struct {
	Name        string   `json:"script_name" yaml:"script_name"`
	Description string   `json:"script_description" yaml:"script_description"`
	Commands    []string `json:"commands" yaml:"commands"`
}

// FindStage returns the first stage named stageName within a project named
// projectName, scanning projects and stages in declaration order.
// A missing project and a missing stage are not distinguished.
func (d *Document) FindStage(projectName, stageName string) (*Stage, bool) {
	for i := range d.Projects {
		if d.Projects[i].Name != projectName {
			continue
		}
		for j := range d.Projects[i].Stages {
			if d.Projects[i].Stages[j].Name == stageName {
				return &d.Projects[i].Stages[j], true
			}
		}
	}
	return nil, false
}

// FindScript returns the first script named name
func (d *Document) FindScript(name string) (*Script, bool) {
	for i := range d.Scripts {
		if d.Scripts[i].Name == name {
			return &d.Scripts[i], true
		}
	}
	return nil, false
}

// wire types mirror the JSON layout with pointers on required fields so that
// absent keys can be told apart from empty values.
type wireDocument struct {
	Version     string         `json:"version"`
	StackName   *string        `json:"stack_name"`
	Description string         `json:"description"`
	Projects    *[]wireProject `json:"projects"`
	Scripts     *[]wireScript  `json:"scripts"`
}

type wireProject struct {
	Name        *string      `json:"project_name"`
	Description string       `json:"project_description"`
	Stages      *[]wireStage `json:"stages"`
}

type wireStage struct {
	Name          *string  `json:"stage_name"`
	Description   string   `json:"stage_description"`
	Prerequisites []string `json:"prerequisites"`
	Commands      []string `json:"commands"`
}

type wireScript struct {
	Name        *string  `json:"script_name"`
	Description string   `json:"script_description"`
	Commands    []string `json:"commands"`
}

func missingField(field string) error {
	return fmt.Errorf("missing field `%s`", field)
}

// Parse decodes a stack document. It does not validate names; see Validate.
func Parse(data []byte) (*Document, error) {
	var w wireDocument
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, ldoterrors.NewMalformedDocumentError("", err)
	}
	doc, err := w.toDocument()
	if err != nil {
		return nil, ldoterrors.NewMalformedDocumentError("", err)
	}
	return doc, nil
}

func (w *wireDocument) toDocument() (*Document, error) {
	if w.StackName == nil {
		return nil, missingField("stack_name")
	}
	if w.Projects == nil {
		return nil, missingField("projects")
	}
	if w.Scripts == nil {
		return nil, missingField("scripts")
	}

	doc := &Document{
		Version:     w.Version,
		StackName:   *w.StackName,
		Description: w.Description,
		Projects:    make([]Project, 0, len(*w.Projects)),
		Scripts:     make([]Script, 0, len(*w.Scripts)),
	}

	for i, wp := range *w.Projects {
		if wp.Name == nil {
			return nil, fmt.Errorf("projects[%d]: %w", i, missingField("project_name"))
		}
		if wp.Stages == nil {
			return nil, fmt.Errorf("projects[%d]: %w", i, missingField("stages"))
		}
		project := Project{
			Name:        *wp.Name,
			Description: wp.Description,
			Stages:      make([]Stage, 0, len(*wp.Stages)),
		}
		for j, ws := range *wp.Stages {
			if ws.Name == nil {
				return nil, fmt.Errorf("projects[%d].stages[%d]: %w", i, j, missingField("stage_name"))
			}
			project.Stages = append(project.Stages, Stage{
				Name:          *ws.Name,
				Description:   ws.Description,
				Prerequisites: orEmpty(ws.Prerequisites),
				Commands:      orEmpty(ws.Commands),
			})
		}
		doc.Projects = append(doc.Projects, project)
	}

	for i, ws := range *w.Scripts {
		if ws.Name == nil {
			return nil, fmt.Errorf("scripts[%d]: %w", i, missingField("script_name"))
		}
		doc.Scripts = append(doc.Scripts, Script{
			Name:        *ws.Name,
			Description: ws.Description,
			Commands:    orEmpty(ws.Commands),
		})
	}

	return doc, nil
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// ReadFile reads and parses the stack document at path.
// Documents are never cached; every call goes back to disk.
func ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open and read stack file %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, ldoterrors.NewMalformedDocumentError(path, unwrapMalformed(err))
	}
	return doc, nil
}

func unwrapMalformed(err error) error {
	if m, ok := err.(*ldoterrors.MalformedDocumentError); ok {
		return m.Err
	}
	return err
}

// Load reads, parses and validates the stack document at path
func Load(path string) (*Document, error) {
	doc, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Validate(doc)
}

// Marshal encodes a document in the on-disk layout
func Marshal(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(normalize(doc)); err != nil {
		return nil, fmt.Errorf("failed to marshal stack document: %w", err)
	}
	return buf.Bytes(), nil
}

// normalize returns a copy where nil slices encode as [] instead of null
func normalize(doc *Document) *Document {
	out := *doc
	out.Projects = make([]Project, len(doc.Projects))
	for i, p := range doc.Projects {
		p.Stages = append([]Stage{}, p.Stages...)
		for j := range p.Stages {
			p.Stages[j].Prerequisites = orEmpty(p.Stages[j].Prerequisites)
			p.Stages[j].Commands = orEmpty(p.Stages[j].Commands)
		}
		out.Projects[i] = p
	}
	out.Scripts = make([]Script, len(doc.Scripts))
	for i, s := range doc.Scripts {
		s.Commands = orEmpty(s.Commands)
		out.Scripts[i] = s
	}
	return &out
}

// WriteFile writes doc to path, replacing any existing content
func WriteFile(path string, doc *Document) error {
	data, err := Marshal(doc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
