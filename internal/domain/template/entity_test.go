//go:build unit

package template_test

import (
	"testing"

	"lushquote/internal/domain/template"
	"lushquote/internal/domain/tier"
	"lushquote/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTemplate(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		tmpl, err := builder.NewTemplateBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, tmpl)

		assert.NotEqual(t, uuid.Nil, tmpl.ID())
		assert.Equal(t, "Lush Lawn Care", tmpl.BusinessName())
		assert.Equal(t, "lush-lawn-care", tmpl.Slug().Value())
		assert.Len(t, tmpl.Services(), 2)
	})

	t.Run("business name is required", func(t *testing.T) {
		b := builder.NewTemplateBuilder()
		b.BusinessName = "   "
		_, err := b.BuildDomain()
		assert.ErrorIs(t, err, template.ErrEmptyBusinessName)
	})

	t.Run("duplicate service ids rejected", func(t *testing.T) {
		b := builder.NewTemplateBuilder()
		b.Services[1].ID = b.Services[0].ID
		_, err := b.BuildDomain()
		assert.ErrorIs(t, err, template.ErrDuplicateService)
	})

	t.Run("slug generated when absent", func(t *testing.T) {
		b := builder.NewTemplateBuilder()
		b.Slug = ""
		tmpl, err := b.BuildDomain()
		require.NoError(t, err)
		assert.False(t, tmpl.Slug().IsEmpty())
		assert.Contains(t, tmpl.Slug().Value(), "lush-lawn-care")
	})

	t.Run("invalid explicit slug rejected", func(t *testing.T) {
		b := builder.NewTemplateBuilder()
		b.Slug = "Not A Slug!"
		_, err := b.BuildDomain()
		assert.ErrorIs(t, err, template.ErrInvalidSlug)
	})
}

func TestTierBranding(t *testing.T) {
	t.Run("free tier forces the default footer", func(t *testing.T) {
		tmpl, err := builder.NewTemplateBuilder().WithTier(tier.Free).BuildDomain()
		require.NoError(t, err)
		assert.True(t, tmpl.FooterEnabled())
		assert.Equal(t, template.DefaultFooterText, tmpl.FooterText())
	})

	t.Run("free tier overrides custom footer text", func(t *testing.T) {
		b := builder.NewTemplateBuilder().WithTier(tier.Free)
		req := b.BuildRequest()
		req.FooterEnabled = false
		req.FooterText = "My own footer"

		tmpl, err := template.New(b.OwnerID, tier.Free, req.ToSpec())
		require.NoError(t, err)
		assert.True(t, tmpl.FooterEnabled())
		assert.Equal(t, template.DefaultFooterText, tmpl.FooterText())
	})

	t.Run("premium keeps custom footer settings", func(t *testing.T) {
		b := builder.NewTemplateBuilder().WithTier(tier.Premium)
		req := b.BuildRequest()
		req.FooterEnabled = false
		req.FooterText = "My own footer"

		tmpl, err := template.New(b.OwnerID, tier.Premium, req.ToSpec())
		require.NoError(t, err)
		assert.False(t, tmpl.FooterEnabled())
		assert.Equal(t, "My own footer", tmpl.FooterText())
	})

	t.Run("premium with empty footer text gets the default", func(t *testing.T) {
		b := builder.NewTemplateBuilder().WithTier(tier.Premium)
		req := b.BuildRequest()
		req.FooterText = ""

		tmpl, err := template.New(b.OwnerID, tier.Premium, req.ToSpec())
		require.NoError(t, err)
		assert.Equal(t, template.DefaultFooterText, tmpl.FooterText())
	})

	t.Run("branding re-enforced on update", func(t *testing.T) {
		tmpl, err := builder.NewTemplateBuilder().WithTier(tier.Premium).BuildDomain()
		require.NoError(t, err)

		req := builder.NewTemplateBuilder().BuildRequest()
		req.FooterEnabled = false
		req.FooterText = "custom"

		// Owner downgraded to free since creation: the update re-applies the rules.
		require.NoError(t, tmpl.ApplyUpdate(tier.Free, req.ToSpec()))
		assert.True(t, tmpl.FooterEnabled())
		assert.Equal(t, template.DefaultFooterText, tmpl.FooterText())
	})
}

func TestApplyUpdate(t *testing.T) {
	t.Run("services replaced wholesale", func(t *testing.T) {
		tmpl, err := builder.NewTemplateBuilder().BuildDomain()
		require.NoError(t, err)
		require.Len(t, tmpl.Services(), 2)

		b := builder.NewTemplateBuilder()
		req := b.BuildRequest()
		req.Services = req.Services[:1]

		require.NoError(t, tmpl.ApplyUpdate(tier.Free, req.ToSpec()))
		assert.Len(t, tmpl.Services(), 1)
	})

	t.Run("empty slug keeps the existing one", func(t *testing.T) {
		tmpl, err := builder.NewTemplateBuilder().BuildDomain()
		require.NoError(t, err)
		original := tmpl.Slug().Value()

		req := builder.NewTemplateBuilder().BuildRequest()
		req.Slug = ""

		require.NoError(t, tmpl.ApplyUpdate(tier.Free, req.ToSpec()))
		assert.Equal(t, original, tmpl.Slug().Value())
	})

	t.Run("validation failure leaves entity usable", func(t *testing.T) {
		tmpl, err := builder.NewTemplateBuilder().BuildDomain()
		require.NoError(t, err)

		req := builder.NewTemplateBuilder().BuildRequest()
		req.BusinessName = ""
		assert.ErrorIs(t, tmpl.ApplyUpdate(tier.Free, req.ToSpec()), template.ErrEmptyBusinessName)
		assert.Equal(t, "Lush Lawn Care", tmpl.BusinessName())
	})
}

func TestServiceValidation(t *testing.T) {
	base := template.ServiceSpec{
		ID:              "svc-1",
		Name:            "Mowing",
		PricingType:     "fixed",
		UnitPriceCents:  5000,
		SelectionMethod: "checkbox",
	}

	tests := []struct {
		name   string
		mutate func(*template.ServiceSpec)
		errIs  error
	}{
		{name: "valid service", mutate: func(s *template.ServiceSpec) {}},
		{name: "missing id", mutate: func(s *template.ServiceSpec) { s.ID = " " }, errIs: template.ErrEmptyServiceID},
		{name: "missing name", mutate: func(s *template.ServiceSpec) { s.Name = "" }, errIs: template.ErrEmptyServiceName},
		{name: "bad pricing type", mutate: func(s *template.ServiceSpec) { s.PricingType = "hourly" }, errIs: template.ErrInvalidPricingType},
		{name: "bad selection method", mutate: func(s *template.ServiceSpec) { s.SelectionMethod = "slider" }, errIs: template.ErrInvalidSelection},
		{name: "empty selection method defaults to checkbox", mutate: func(s *template.ServiceSpec) { s.SelectionMethod = "" }},
		{name: "negative price", mutate: func(s *template.ServiceSpec) { s.UnitPriceCents = -1 }, errIs: template.ErrNegativePrice},
		{
			name: "min above max",
			mutate: func(s *template.ServiceSpec) {
				minQ, maxQ := 5, 2
				s.MinQuantity, s.MaxQuantity = &minQ, &maxQ
			},
			errIs: template.ErrInvalidQuantitySpan,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := base
			tt.mutate(&spec)
			_, err := template.NewService(spec)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestEffectiveQuantity(t *testing.T) {
	minQ, maxQ := 2, 6

	checkbox, err := template.NewService(template.ServiceSpec{
		ID: "cb", Name: "Checkbox", PricingType: "fixed", SelectionMethod: "checkbox",
	})
	require.NoError(t, err)

	stepper, err := template.NewService(template.ServiceSpec{
		ID: "st", Name: "Stepper", PricingType: "per_unit", SelectionMethod: "numeric_stepper",
		MinQuantity: &minQ, MaxQuantity: &maxQ,
	})
	require.NoError(t, err)

	tests := []struct {
		name      string
		svc       template.Service
		requested int
		want      int
	}{
		{name: "checkbox zero stays zero", svc: checkbox, requested: 0, want: 0},
		{name: "checkbox negative stays zero", svc: checkbox, requested: -3, want: 0},
		{name: "checkbox clamps to one", svc: checkbox, requested: 9, want: 1},
		{name: "stepper below min clamps up", svc: stepper, requested: 1, want: 2},
		{name: "stepper within bounds passes through", svc: stepper, requested: 4, want: 4},
		{name: "stepper above max clamps down", svc: stepper, requested: 99, want: 6},
		{name: "stepper zero means unselected", svc: stepper, requested: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.svc.EffectiveQuantity(tt.requested))
		})
	}
}

func TestSlug(t *testing.T) {
	t.Run("valid slugs", func(t *testing.T) {
		for _, raw := range []string{"lawn", "lush-lawn-care", "a1-b2-c3", "UPPER-case"} {
			_, err := template.NewSlug(raw)
			assert.NoError(t, err, raw)
		}
	})

	t.Run("invalid slugs", func(t *testing.T) {
		for _, raw := range []string{"", "has space", "trailing-", "-leading", "double--dash", "sym&bol"} {
			_, err := template.NewSlug(raw)
			assert.ErrorIs(t, err, template.ErrInvalidSlug, raw)
		}
	})

	t.Run("generated slugs are distinct per call", func(t *testing.T) {
		a := template.GenerateSlug("Lush Lawn Care")
		b := template.GenerateSlug("Lush Lawn Care")
		assert.NotEqual(t, a.Value(), b.Value())
		assert.Contains(t, a.Value(), "lush-lawn-care")
	})
}
