//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"lushquote/internal/domain/tier"
	"lushquote/internal/infra"
	"lushquote/internal/pkg/clock"
	"lushquote/internal/usecase/commands"
	"lushquote/tests/common/builder"
	commandsmock "lushquote/tests/mock/commands"
	queriesmock "lushquote/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type billingFixture struct {
	billing   commands.BillingCommands
	gateway   *commandsmock.MockBillingGateway
	ownerRepo *commandsmock.MockOwnerRepository
	readStore *queriesmock.MockOwnerReadStore
}

func newBillingCommands(t *testing.T) billingFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	gateway := commandsmock.NewMockBillingGateway(ctrl)
	ownerRepo := commandsmock.NewMockOwnerRepository(ctrl)
	readStore := queriesmock.NewMockOwnerReadStore(ctrl)
	mockClock := clock.NewMockClock(time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))

	return billingFixture{
		billing:   commands.NewBillingCommands(gateway, ownerRepo, readStore, mockClock),
		gateway:   gateway,
		ownerRepo: ownerRepo,
		readStore: readStore,
	}
}

func TestCreateCheckoutSession(t *testing.T) {
	t.Run("first checkout has no stripe customer yet", func(t *testing.T) {
		f := newBillingCommands(t)
		view := builder.NewOwnerBuilder().BuildView()

		f.readStore.EXPECT().FindByID(gomock.Any(), view.ID, "2025-06").Return(view, nil)
		f.gateway.EXPECT().
			CreateCheckoutSession(view.ID, view.Email, gomock.Nil()).
			Return("https://checkout.stripe.com/session/abc", nil)

		url, err := f.billing.CreateCheckoutSession(context.Background(), view.ID)
		require.NoError(t, err)
		assert.Equal(t, "https://checkout.stripe.com/session/abc", url)
	})

	t.Run("existing customer id passed through", func(t *testing.T) {
		f := newBillingCommands(t)
		view := builder.NewOwnerBuilder().AsPremium().BuildView()

		f.readStore.EXPECT().FindByID(gomock.Any(), view.ID, "2025-06").Return(view, nil)
		f.gateway.EXPECT().
			CreateCheckoutSession(view.ID, view.Email, view.StripeCustomerID).
			Return("https://checkout.stripe.com/session/def", nil)

		_, err := f.billing.CreateCheckoutSession(context.Background(), view.ID)
		assert.NoError(t, err)
	})

	t.Run("unknown owner", func(t *testing.T) {
		f := newBillingCommands(t)
		id := uuid.New()

		f.readStore.EXPECT().
			FindByID(gomock.Any(), id, "2025-06").
			Return(nil, infra.WrapRepoErr("owner not found", nil, infra.KindNotFound))

		_, err := f.billing.CreateCheckoutSession(context.Background(), id)
		assert.ErrorIs(t, err, commands.ErrOwnerNotFound)
	})

	t.Run("gateway failure marked as checkout error", func(t *testing.T) {
		f := newBillingCommands(t)
		view := builder.NewOwnerBuilder().BuildView()

		f.readStore.EXPECT().FindByID(gomock.Any(), view.ID, "2025-06").Return(view, nil)
		f.gateway.EXPECT().CreateCheckoutSession(view.ID, view.Email, gomock.Nil()).Return("", assert.AnError)

		_, err := f.billing.CreateCheckoutSession(context.Background(), view.ID)
		assert.ErrorIs(t, err, commands.ErrCheckoutFailed)
	})
}

func TestCreatePortalSession(t *testing.T) {
	t.Run("requires an existing stripe customer", func(t *testing.T) {
		f := newBillingCommands(t)
		view := builder.NewOwnerBuilder().BuildView()

		f.readStore.EXPECT().FindByID(gomock.Any(), view.ID, "2025-06").Return(view, nil)

		_, err := f.billing.CreatePortalSession(context.Background(), view.ID)
		assert.ErrorIs(t, err, commands.ErrNoStripeCustomer)
	})

	t.Run("success", func(t *testing.T) {
		f := newBillingCommands(t)
		view := builder.NewOwnerBuilder().AsPremium().BuildView()

		f.readStore.EXPECT().FindByID(gomock.Any(), view.ID, "2025-06").Return(view, nil)
		f.gateway.EXPECT().
			CreatePortalSession(*view.StripeCustomerID).
			Return("https://billing.stripe.com/portal/xyz", nil)

		url, err := f.billing.CreatePortalSession(context.Background(), view.ID)
		require.NoError(t, err)
		assert.Equal(t, "https://billing.stripe.com/portal/xyz", url)
	})
}

func TestHandleWebhook(t *testing.T) {
	payload := []byte(`{"id":"evt_1"}`)
	const signature = "t=1,v1=sig"

	t.Run("invalid signature rejected", func(t *testing.T) {
		f := newBillingCommands(t)
		f.gateway.EXPECT().ParseWebhook(payload, signature).Return(nil, assert.AnError)

		err := f.billing.HandleWebhook(context.Background(), payload, signature)
		assert.ErrorIs(t, err, commands.ErrWebhookInvalid)
	})

	t.Run("checkout completed upgrades the owner", func(t *testing.T) {
		f := newBillingCommands(t)
		ownerID := uuid.New()

		f.gateway.EXPECT().ParseWebhook(payload, signature).Return(&commands.BillingEvent{
			Type:              "checkout.session.completed",
			ClientReferenceID: ownerID.String(),
			CustomerID:        "cus_new",
		}, nil)
		f.ownerRepo.EXPECT().SetStripeCustomerID(gomock.Any(), ownerID, "cus_new").Return(nil)
		f.ownerRepo.EXPECT().UpdateTierByID(gomock.Any(), ownerID, tier.Premium).Return(nil)

		assert.NoError(t, f.billing.HandleWebhook(context.Background(), payload, signature))
	})

	t.Run("checkout completed with bad reference id", func(t *testing.T) {
		f := newBillingCommands(t)
		f.gateway.EXPECT().ParseWebhook(payload, signature).Return(&commands.BillingEvent{
			Type:              "checkout.session.completed",
			ClientReferenceID: "not-a-uuid",
		}, nil)

		err := f.billing.HandleWebhook(context.Background(), payload, signature)
		assert.ErrorIs(t, err, commands.ErrWebhookInvalid)
	})

	t.Run("subscription status drives the tier", func(t *testing.T) {
		tests := []struct {
			status string
			want   tier.Tier
		}{
			{status: "active", want: tier.Premium},
			{status: "trialing", want: tier.Premium},
			{status: "past_due", want: tier.Free},
			{status: "canceled", want: tier.Free},
			{status: "unpaid", want: tier.Free},
		}

		for _, tt := range tests {
			t.Run(tt.status, func(t *testing.T) {
				f := newBillingCommands(t)
				f.gateway.EXPECT().ParseWebhook(payload, signature).Return(&commands.BillingEvent{
					Type:               "customer.subscription.updated",
					CustomerID:         "cus_abc",
					SubscriptionStatus: tt.status,
				}, nil)
				f.ownerRepo.EXPECT().UpdateTierByStripeCustomer(gomock.Any(), "cus_abc", tt.want).Return(nil)

				assert.NoError(t, f.billing.HandleWebhook(context.Background(), payload, signature))
			})
		}
	})

	t.Run("subscription deleted downgrades", func(t *testing.T) {
		f := newBillingCommands(t)
		f.gateway.EXPECT().ParseWebhook(payload, signature).Return(&commands.BillingEvent{
			Type:       "customer.subscription.deleted",
			CustomerID: "cus_abc",
		}, nil)
		f.ownerRepo.EXPECT().UpdateTierByStripeCustomer(gomock.Any(), "cus_abc", tier.Free).Return(nil)

		assert.NoError(t, f.billing.HandleWebhook(context.Background(), payload, signature))
	})

	t.Run("unknown stripe customer acknowledged without error", func(t *testing.T) {
		f := newBillingCommands(t)
		f.gateway.EXPECT().ParseWebhook(payload, signature).Return(&commands.BillingEvent{
			Type:       "customer.subscription.deleted",
			CustomerID: "cus_stranger",
		}, nil)
		f.ownerRepo.EXPECT().
			UpdateTierByStripeCustomer(gomock.Any(), "cus_stranger", tier.Free).
			Return(infra.WrapRepoErr("owner not found", nil, infra.KindNotFound))

		assert.NoError(t, f.billing.HandleWebhook(context.Background(), payload, signature))
	})

	t.Run("unhandled event types acknowledged", func(t *testing.T) {
		f := newBillingCommands(t)
		f.gateway.EXPECT().ParseWebhook(payload, signature).Return(&commands.BillingEvent{
			Type: "invoice.paid",
		}, nil)

		assert.NoError(t, f.billing.HandleWebhook(context.Background(), payload, signature))
	})
}
