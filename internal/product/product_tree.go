package product

import (
	"strings"

	producterrors "github.com/TheLeeJungYan/EINV-POS-API/internal/product/errors"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/shared/money"

	"github.com/google/uuid"
)

type optionSpec struct {
	Label       string
	Description string
	Price       int64
}

type groupSpec struct {
	Name    string
	Default int
	Options []optionSpec
}

// normalizeGroups validates the wire option tree and converts prices to
// minor units. Nothing is written when it fails.
func normalizeGroups(reqs []OptionGroupRequest) ([]groupSpec, error) {
	specs := make([]groupSpec, 0, len(reqs))
	names := make(map[string]struct{}, len(reqs))

	for _, g := range reqs {
		name := strings.TrimSpace(g.Name)
		if name == "" {
			return nil, producterrors.ErrEmptyGroupName
		}
		if _, dup := names[name]; dup {
			return nil, producterrors.ErrDuplicateGroupName
		}
		names[name] = struct{}{}

		if len(g.Options) == 0 {
			return nil, producterrors.ErrEmptyOptionGroup
		}
		if g.Default < 0 || g.Default >= len(g.Options) {
			return nil, producterrors.ErrDefaultOutOfRange
		}

		spec := groupSpec{Name: name, Default: g.Default, Options: make([]optionSpec, 0, len(g.Options))}
		labels := make(map[string]struct{}, len(g.Options))
		for _, o := range g.Options {
			label := strings.TrimSpace(o.Option)
			if label == "" {
				return nil, producterrors.ErrEmptyOptionLabel
			}
			if _, dup := labels[label]; dup {
				return nil, producterrors.ErrDuplicateOptionLabel
			}
			labels[label] = struct{}{}

			if o.Price.IsNegative() {
				return nil, producterrors.ErrNegativeOptionPrice
			}

			var desc string
			if o.Desc != nil {
				desc = *o.Desc
			}
			spec.Options = append(spec.Options, optionSpec{
				Label:       label,
				Description: desc,
				Price:       money.ToMinor(o.Price),
			})
		}
		specs = append(specs, spec)
	}

	return specs, nil
}

// buildGroups materialises specs as new rows for productID.
func buildGroups(productID uuid.UUID, specs []groupSpec) []OptionGroup {
	groups := make([]OptionGroup, 0, len(specs))
	for i, spec := range specs {
		groups = append(groups, newGroup(productID, i, spec))
	}
	return groups
}

func newGroup(productID uuid.UUID, position int, spec groupSpec) OptionGroup {
	g := OptionGroup{
		ID:        uuid.New(),
		ProductID: productID,
		Name:      spec.Name,
		Position:  position,
		Values:    make([]OptionValue, 0, len(spec.Options)),
	}
	for j, o := range spec.Options {
		g.Values = append(g.Values, newValue(g.ID, j, o, j == spec.Default))
	}
	return g
}

func newValue(groupID uuid.UUID, position int, o optionSpec, isDefault bool) OptionValue {
	return OptionValue{
		ID:          uuid.New(),
		GroupID:     groupID,
		Label:       o.Label,
		Description: o.Description,
		Price:       o.Price,
		IsDefault:   isDefault,
		Position:    position,
	}
}

type rowUpdate struct {
	ID     uuid.UUID
	Fields map[string]any
}

// treePlan is the set of writes that turns the current option tree into the
// requested one.
type treePlan struct {
	NewGroups      []OptionGroup
	NewValues      []OptionValue
	GroupUpdates   []rowUpdate
	ValueUpdates   []rowUpdate
	DeleteGroupIDs []uuid.UUID
	DeleteValueIDs []uuid.UUID
}

func (p treePlan) Empty() bool {
	return len(p.NewGroups) == 0 &&
		len(p.NewValues) == 0 &&
		len(p.GroupUpdates) == 0 &&
		len(p.ValueUpdates) == 0 &&
		len(p.DeleteGroupIDs) == 0 &&
		len(p.DeleteValueIDs) == 0
}

// planTree reconciles the active tree with specs by group name and, inside
// a kept group, by option label. Matching rows keep their identity and are
// only updated when something differs.
func planTree(productID uuid.UUID, existing []OptionGroup, specs []groupSpec) treePlan {
	var plan treePlan

	current := make(map[string]OptionGroup, len(existing))
	for _, g := range existing {
		current[g.Name] = g
	}

	wanted := make(map[string]struct{}, len(specs))
	for pos, spec := range specs {
		wanted[spec.Name] = struct{}{}

		g, ok := current[spec.Name]
		if !ok {
			plan.NewGroups = append(plan.NewGroups, newGroup(productID, pos, spec))
			continue
		}

		if g.Position != pos {
			plan.GroupUpdates = append(plan.GroupUpdates, rowUpdate{ID: g.ID, Fields: map[string]any{"position": pos}})
		}
		planValues(&plan, g, spec)
	}

	for _, g := range existing {
		if _, keep := wanted[g.Name]; keep {
			continue
		}
		plan.DeleteGroupIDs = append(plan.DeleteGroupIDs, g.ID)
		for _, v := range g.Values {
			plan.DeleteValueIDs = append(plan.DeleteValueIDs, v.ID)
		}
	}

	return plan
}

func planValues(plan *treePlan, g OptionGroup, spec groupSpec) {
	current := make(map[string]OptionValue, len(g.Values))
	for _, v := range g.Values {
		current[v.Label] = v
	}

	wanted := make(map[string]struct{}, len(spec.Options))
	for pos, o := range spec.Options {
		wanted[o.Label] = struct{}{}
		isDefault := pos == spec.Default

		v, ok := current[o.Label]
		if !ok {
			plan.NewValues = append(plan.NewValues, newValue(g.ID, pos, o, isDefault))
			continue
		}

		fields := map[string]any{}
		if v.Description != o.Description {
			fields["description"] = o.Description
		}
		if v.Price != o.Price {
			fields["price"] = o.Price
		}
		if v.IsDefault != isDefault {
			fields["is_default"] = isDefault
		}
		if v.Position != pos {
			fields["position"] = pos
		}
		if len(fields) > 0 {
			plan.ValueUpdates = append(plan.ValueUpdates, rowUpdate{ID: v.ID, Fields: fields})
		}
	}

	for _, v := range g.Values {
		if _, keep := wanted[v.Label]; !keep {
			plan.DeleteValueIDs = append(plan.DeleteValueIDs, v.ID)
		}
	}
}

// quote prices one configuration. Unselected groups fall back to their
// default option.
func quote(p *Product, selections map[string]string) (int64, []QuoteLine, map[string]any, error) {
	groups := make(map[string]struct{}, len(p.OptionGroups))
	for _, g := range p.OptionGroups {
		groups[g.Name] = struct{}{}
	}
	for name := range selections {
		if _, ok := groups[name]; !ok {
			return 0, nil, nil, producterrors.ErrUnknownOptionGroup
		}
	}

	total := p.Price
	lines := make([]QuoteLine, 0, len(p.OptionGroups))
	snapshot := make(map[string]any, len(p.OptionGroups))

	for _, g := range p.OptionGroups {
		var chosen *OptionValue
		label, selected := selections[g.Name]
		for i := range g.Values {
			v := &g.Values[i]
			if (selected && v.Label == label) || (!selected && v.IsDefault) {
				chosen = v
				break
			}
		}
		if chosen == nil {
			if selected {
				return 0, nil, nil, producterrors.ErrUnknownOption
			}
			continue
		}

		total += chosen.Price
		lines = append(lines, QuoteLine{Group: g.Name, Option: chosen.Label, Price: money.FromMinor(chosen.Price)})
		snapshot[g.Name] = map[string]any{
			"option_value_id": chosen.ID.String(),
			"option":          chosen.Label,
			"price":           chosen.Price,
		}
	}

	return total, lines, snapshot, nil
}
