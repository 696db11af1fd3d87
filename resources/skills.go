package resources

import (
	"context"
	"strings"
	"sync"

	serverError "github.com/supakorn-kn/go-dashboard/errors"
	"github.com/supakorn-kn/go-dashboard/objects"
	"github.com/supakorn-kn/go-dashboard/remote"
)

const (
	skillSectionsPath = "/dynamic/ourSkills"
	skillsPath        = "/dynamic/ourSkills/%s/skill"
	skillPath         = "/dynamic/ourSkills/%s/skill/%s"
)

// parentTracker remembers the first parent section seen by the last list,
// which is where new children are created.
type parentTracker struct {
	mu       sync.RWMutex
	parentID string
}

func (p *parentTracker) set(parentID string) {

	p.mu.Lock()
	defer p.mu.Unlock()

	p.parentID = parentID
}

func (p *parentTracker) get() string {

	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.parentID
}

// SkillsResource flattens every skill section into a single table.
type SkillsResource struct {
	client  *remote.Client
	parents *parentTracker
}

func NewSkillsResource(client *remote.Client) *SkillsResource {
	return &SkillsResource{client: client, parents: &parentTracker{}}
}

func (SkillsResource) GetName() string {
	return "skills"
}

func (r SkillsResource) List(ctx context.Context) ([]objects.Skill, error) {

	body, err := r.client.GetRaw(ctx, skillSectionsPath)
	if err != nil {
		return nil, err
	}

	sections, err := remote.DecodeOneOrMany[objects.SkillSection](skillSectionsPath, body)
	if err != nil {
		return nil, err
	}

	skills := []objects.Skill{}
	for _, section := range sections {
		skills = append(skills, section.Skills...)
	}

	if len(sections) > 0 {
		r.parents.set(sections[0].SectionID)
	} else {
		r.parents.set("")
	}

	return skills, nil
}

// ParentID returns the section new skills go to, listing once if needed.
func (r SkillsResource) ParentID(ctx context.Context) (string, error) {

	if parentID := r.parents.get(); parentID != "" {
		return parentID, nil
	}

	if _, err := r.List(ctx); err != nil {
		return "", err
	}

	if parentID := r.parents.get(); parentID != "" {
		return parentID, nil
	}

	return "", serverError.ParentSectionMissingError.New("skills")
}

func (r SkillsResource) Insert(ctx context.Context, skill objects.Skill) error {

	skill.Name = strings.TrimSpace(skill.Name)
	if err := Validate(skill); err != nil {
		return err
	}

	parentID, err := r.ParentID(ctx)
	if err != nil {
		return err
	}

	body := objects.Skill{Name: skill.Name, Percentage: skill.Percentage}
	return r.client.Post(ctx, itemPath(skillsPath, parentID), body, nil)
}

func (r SkillsResource) Update(ctx context.Context, skill objects.Skill) error {

	skill.Name = strings.TrimSpace(skill.Name)
	if err := Validate(skill); err != nil {
		return err
	}

	parentID, err := r.ParentID(ctx)
	if err != nil {
		return err
	}

	body := objects.Skill{Name: skill.Name, Percentage: skill.Percentage}
	err = r.client.Put(ctx, itemPath(skillPath, parentID, skill.GetID()), body, nil)
	return notFoundAsObjectID(err, skill.GetID())
}

func (r SkillsResource) Delete(ctx context.Context, skillID string) error {

	parentID, err := r.ParentID(ctx)
	if err != nil {
		return err
	}

	err = r.client.Delete(ctx, itemPath(skillPath, parentID, skillID))
	return notFoundAsObjectID(err, skillID)
}
