package product

import (
	"testing"

	producterrors "github.com/TheLeeJungYan/EINV-POS-API/internal/product/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func opt(label, price string) OptionRequest {
	return OptionRequest{Option: label, Price: decimal.RequireFromString(price)}
}

func burgerGroups() []OptionGroupRequest {
	return []OptionGroupRequest{
		{
			Name:    "Size",
			Default: 0,
			Options: []OptionRequest{opt("Regular", "0"), opt("Large", "2")},
		},
		{
			Name:    "Sauce",
			Default: 1,
			Options: []OptionRequest{opt("Chilli", "0.50"), opt("Tomato", "0"), opt("Mayo", "0.30")},
		},
	}
}

func TestNormalizeGroups_ConvertsToMinorUnits(t *testing.T) {
	specs, err := normalizeGroups(burgerGroups())
	require.NoError(t, err)
	require.Len(t, specs, 2)

	assert.Equal(t, "Size", specs[0].Name)
	assert.Equal(t, int64(0), specs[0].Options[0].Price)
	assert.Equal(t, int64(200), specs[0].Options[1].Price)
	assert.Equal(t, int64(50), specs[1].Options[0].Price)
	assert.Equal(t, 1, specs[1].Default)
}

func TestNormalizeGroups_Rejects(t *testing.T) {
	desc := "x"
	tests := []struct {
		name    string
		groups  []OptionGroupRequest
		wantErr error
	}{
		{
			name:    "blank group name",
			groups:  []OptionGroupRequest{{Name: "  ", Options: []OptionRequest{opt("A", "0")}}},
			wantErr: producterrors.ErrEmptyGroupName,
		},
		{
			name: "duplicate group name",
			groups: []OptionGroupRequest{
				{Name: "Size", Options: []OptionRequest{opt("A", "0")}},
				{Name: "Size", Options: []OptionRequest{opt("B", "0")}},
			},
			wantErr: producterrors.ErrDuplicateGroupName,
		},
		{
			name:    "no options",
			groups:  []OptionGroupRequest{{Name: "Size"}},
			wantErr: producterrors.ErrEmptyOptionGroup,
		},
		{
			name:    "default past the end",
			groups:  []OptionGroupRequest{{Name: "Size", Default: 2, Options: []OptionRequest{opt("A", "0"), opt("B", "1")}}},
			wantErr: producterrors.ErrDefaultOutOfRange,
		},
		{
			name:    "negative default",
			groups:  []OptionGroupRequest{{Name: "Size", Default: -1, Options: []OptionRequest{opt("A", "0")}}},
			wantErr: producterrors.ErrDefaultOutOfRange,
		},
		{
			name:    "blank label",
			groups:  []OptionGroupRequest{{Name: "Size", Options: []OptionRequest{{Option: "", Desc: &desc}}}},
			wantErr: producterrors.ErrEmptyOptionLabel,
		},
		{
			name:    "duplicate label",
			groups:  []OptionGroupRequest{{Name: "Size", Options: []OptionRequest{opt("A", "0"), opt("A", "1")}}},
			wantErr: producterrors.ErrDuplicateOptionLabel,
		},
		{
			name:    "negative price",
			groups:  []OptionGroupRequest{{Name: "Size", Options: []OptionRequest{opt("A", "-0.01")}}},
			wantErr: producterrors.ErrNegativeOptionPrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			specs, err := normalizeGroups(tt.groups)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, specs)
		})
	}
}

func TestBuildGroups_ExactlyOneDefaultPerGroup(t *testing.T) {
	specs, err := normalizeGroups(burgerGroups())
	require.NoError(t, err)

	pid := uuid.New()
	groups := buildGroups(pid, specs)
	require.Len(t, groups, 2)

	for gi, g := range groups {
		assert.Equal(t, pid, g.ProductID)
		assert.Equal(t, gi, g.Position)

		defaults := 0
		for vi, v := range g.Values {
			assert.Equal(t, g.ID, v.GroupID)
			assert.Equal(t, vi, v.Position)
			if v.IsDefault {
				defaults++
				assert.Equal(t, specs[gi].Default, vi)
			}
		}
		assert.Equal(t, 1, defaults)
	}
}

func TestPlanTree_IdenticalTreeIsEmpty(t *testing.T) {
	specs, err := normalizeGroups(burgerGroups())
	require.NoError(t, err)

	pid := uuid.New()
	existing := buildGroups(pid, specs)

	plan := planTree(pid, existing, specs)
	assert.True(t, plan.Empty())
}

func TestPlanTree_Changes(t *testing.T) {
	specs, err := normalizeGroups(burgerGroups())
	require.NoError(t, err)
	pid := uuid.New()
	existing := buildGroups(pid, specs)
	size, sauce := existing[0], existing[1]

	t.Run("price change updates in place", func(t *testing.T) {
		changed := burgerGroups()
		changed[0].Options[1].Price = decimal.RequireFromString("2.50")
		next, err := normalizeGroups(changed)
		require.NoError(t, err)

		plan := planTree(pid, existing, next)
		require.Len(t, plan.ValueUpdates, 1)
		assert.Equal(t, size.Values[1].ID, plan.ValueUpdates[0].ID)
		assert.Equal(t, map[string]any{"price": int64(250)}, plan.ValueUpdates[0].Fields)
		assert.Empty(t, plan.NewValues)
		assert.Empty(t, plan.DeleteValueIDs)
	})

	t.Run("moving the default flips two rows", func(t *testing.T) {
		changed := burgerGroups()
		changed[0].Default = 1
		next, err := normalizeGroups(changed)
		require.NoError(t, err)

		plan := planTree(pid, existing, next)
		require.Len(t, plan.ValueUpdates, 2)
		assert.Equal(t, false, plan.ValueUpdates[0].Fields["is_default"])
		assert.Equal(t, true, plan.ValueUpdates[1].Fields["is_default"])
	})

	t.Run("renamed group replaces the old one", func(t *testing.T) {
		changed := burgerGroups()
		changed[1].Name = "Dip"
		next, err := normalizeGroups(changed)
		require.NoError(t, err)

		plan := planTree(pid, existing, next)
		require.Len(t, plan.NewGroups, 1)
		assert.Equal(t, "Dip", plan.NewGroups[0].Name)
		assert.Len(t, plan.NewGroups[0].Values, 3)
		assert.Equal(t, []uuid.UUID{sauce.ID}, plan.DeleteGroupIDs)
		assert.ElementsMatch(t, []uuid.UUID{sauce.Values[0].ID, sauce.Values[1].ID, sauce.Values[2].ID}, plan.DeleteValueIDs)
	})

	t.Run("removed option and added option", func(t *testing.T) {
		changed := burgerGroups()
		changed[1].Options = []OptionRequest{opt("Chilli", "0.50"), opt("Tomato", "0"), opt("BBQ", "0.40")}
		next, err := normalizeGroups(changed)
		require.NoError(t, err)

		plan := planTree(pid, existing, next)
		assert.Equal(t, []uuid.UUID{sauce.Values[2].ID}, plan.DeleteValueIDs)
		require.Len(t, plan.NewValues, 1)
		assert.Equal(t, "BBQ", plan.NewValues[0].Label)
		assert.Equal(t, sauce.ID, plan.NewValues[0].GroupID)
		assert.Empty(t, plan.DeleteGroupIDs)
	})

	t.Run("reorder updates positions only", func(t *testing.T) {
		changed := []OptionGroupRequest{burgerGroups()[1], burgerGroups()[0]}
		next, err := normalizeGroups(changed)
		require.NoError(t, err)

		plan := planTree(pid, existing, next)
		assert.Len(t, plan.GroupUpdates, 2)
		assert.Empty(t, plan.NewGroups)
		assert.Empty(t, plan.ValueUpdates)
	})

	t.Run("nil specs deletes everything", func(t *testing.T) {
		plan := planTree(pid, existing, nil)
		assert.ElementsMatch(t, []uuid.UUID{size.ID, sauce.ID}, plan.DeleteGroupIDs)
		assert.Len(t, plan.DeleteValueIDs, 5)
	})
}

func burgerProduct(t *testing.T) *Product {
	t.Helper()
	specs, err := normalizeGroups(burgerGroups())
	require.NoError(t, err)

	p := &Product{ID: uuid.New(), CompanyID: uuid.New(), Name: "Burger", Price: 999}
	p.OptionGroups = buildGroups(p.ID, specs)
	return p
}

func TestQuote(t *testing.T) {
	p := burgerProduct(t)

	t.Run("defaults when nothing selected", func(t *testing.T) {
		total, lines, snapshot, err := quote(p, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(999), total)
		require.Len(t, lines, 2)
		assert.Equal(t, "Regular", lines[0].Option)
		assert.Equal(t, "Tomato", lines[1].Option)
		assert.Contains(t, snapshot, "Size")
	})

	t.Run("selected options add up", func(t *testing.T) {
		total, _, snapshot, err := quote(p, map[string]string{"Size": "Large", "Sauce": "Mayo"})
		require.NoError(t, err)
		assert.Equal(t, int64(999+200+30), total)

		size := snapshot["Size"].(map[string]any)
		assert.Equal(t, "Large", size["option"])
		assert.Equal(t, int64(200), size["price"])
		assert.Equal(t, p.OptionGroups[0].Values[1].ID.String(), size["option_value_id"])
	})

	t.Run("unknown group", func(t *testing.T) {
		_, _, _, err := quote(p, map[string]string{"Drink": "Cola"})
		assert.ErrorIs(t, err, producterrors.ErrUnknownOptionGroup)
	})

	t.Run("unknown option", func(t *testing.T) {
		_, _, _, err := quote(p, map[string]string{"Size": "Huge"})
		assert.ErrorIs(t, err, producterrors.ErrUnknownOption)
	})
}
