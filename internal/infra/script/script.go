// Package script parses YAML replay scripts into board messages.
//
// A script looks like:
//
//	seed:            # optional; replaces the configured seed
//	  - name: Task 1
//	    status: todo
//	steps:
//	  - set_name: "Task 5"
//	  - select_assignee: "🐶"
//	  - set_mandays: "4"
//	  - submit: true
//	  - advance: 0
//
// Each step holds exactly one key.
package script

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/runoshun/kanban/internal/domain"
	"gopkg.in/yaml.v3"
)

// Script is a decoded replay script.
type Script struct {
	Seed  []domain.SeedTask
	Steps []domain.Msg
}

type file struct {
	Seed  []domain.SeedTask `yaml:"seed"`
	Steps []step            `yaml:"steps"`
}

type step struct {
	SetName        *string `yaml:"set_name"`
	SelectAssignee *string `yaml:"select_assignee"`
	InputAssignee  *string `yaml:"input_assignee"`
	SetMandays     *string `yaml:"set_mandays"`
	Submit         *bool   `yaml:"submit"`
	Advance        *int    `yaml:"advance"`
	Retreat        *int    `yaml:"retreat"`
}

// Parser decodes scripts.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes only the steps of a script.
func (p *Parser) Parse(data []byte) ([]domain.Msg, error) {
	s, err := p.Decode(data)
	if err != nil {
		return nil, err
	}
	return s.Steps, nil
}

// Decode decodes a full script. Unknown keys are rejected.
func (p *Parser) Decode(data []byte) (*Script, error) {
	var f file
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode script: %w", err)
	}

	out := &Script{Seed: f.Seed}
	for i, st := range f.Steps {
		msg, err := st.toMsg()
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		out.Steps = append(out.Steps, msg)
	}
	return out, nil
}

// Load reads and decodes a script file.
func (p *Parser) Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrScriptNotFound, path)
		}
		return nil, err
	}
	return p.Decode(data)
}

func (s step) toMsg() (domain.Msg, error) {
	var msgs []domain.Msg
	if s.SetName != nil {
		msgs = append(msgs, domain.SetNewTaskName{Text: *s.SetName})
	}
	if s.SelectAssignee != nil {
		msgs = append(msgs, domain.SetNewTaskAssignee{Event: domain.ChangeSelect{Value: *s.SelectAssignee}})
	}
	if s.InputAssignee != nil {
		msgs = append(msgs, domain.SetNewTaskAssignee{Event: domain.ChangeInput{Value: *s.InputAssignee}})
	}
	if s.SetMandays != nil {
		msgs = append(msgs, domain.SetNewTaskMandays{Text: *s.SetMandays})
	}
	if s.Submit != nil {
		if !*s.Submit {
			return nil, fmt.Errorf("%w: submit must be true", domain.ErrInvalidStep)
		}
		msgs = append(msgs, domain.SubmitNewTask{})
	}
	if s.Advance != nil {
		msgs = append(msgs, domain.AdvanceStatus{Index: *s.Advance})
	}
	if s.Retreat != nil {
		msgs = append(msgs, domain.RetreatStatus{Index: *s.Retreat})
	}

	switch len(msgs) {
	case 0:
		return nil, fmt.Errorf("%w: empty step", domain.ErrInvalidStep)
	case 1:
		return msgs[0], nil
	default:
		return nil, fmt.Errorf("%w: %d actions in one step", domain.ErrInvalidStep, len(msgs))
	}
}
