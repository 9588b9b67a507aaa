package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fr0stylo/partnerhub/internal/app/ports"
	portmocks "github.com/fr0stylo/partnerhub/internal/app/ports/mocks"
	"github.com/fr0stylo/partnerhub/internal/secrets"
)

func newTestBox(t *testing.T) *secrets.Box {
	t.Helper()
	box, err := secrets.New("vendor-service-test-key")
	require.NoError(t, err)
	return box
}

func TestCreateVendorIssuesHashedToken(t *testing.T) {
	t.Parallel()

	store := portmocks.NewMockVendorStore(t)
	svc := NewVendorService(store, nil)
	svc.random = strings.NewReader(strings.Repeat("k", apiTokenBytes))

	wantToken := strings.Repeat("6b", apiTokenBytes)
	store.EXPECT().CreateVendor(mock.Anything, ports.CreateVendorInput{
		Name:      "Acme Supplies",
		TokenHash: HashToken(wantToken),
		Enabled:   true,
	}).Return(ports.Vendor{ID: 1, Name: "Acme Supplies", Enabled: true}, nil).Once()

	created, err := svc.CreateVendor(context.Background(), "  Acme Supplies ", "")
	require.NoError(t, err)
	require.Equal(t, int64(1), created.Vendor.ID)
	require.Equal(t, wantToken, created.APIToken)
	require.Empty(t, created.Vendor.SealedStorefrontCredential)
}

func TestCreateVendorRejectsBlankName(t *testing.T) {
	t.Parallel()

	svc := NewVendorService(portmocks.NewMockVendorStore(t), nil)
	_, err := svc.CreateVendor(context.Background(), "   ", "")
	require.ErrorIs(t, err, ErrInvalidVendorName)
}

func TestCreateVendorNeedsBoxForCredential(t *testing.T) {
	t.Parallel()

	svc := NewVendorService(portmocks.NewMockVendorStore(t), nil)
	_, err := svc.CreateVendor(context.Background(), "acme", "shpat_secret")
	require.ErrorIs(t, err, ErrCredentialBoxUnavailable)
}

func TestCreateVendorWrapsStoreError(t *testing.T) {
	t.Parallel()

	store := portmocks.NewMockVendorStore(t)
	store.EXPECT().CreateVendor(mock.Anything, mock.Anything).Return(ports.Vendor{}, errors.New("unique constraint")).Once()

	_, err := NewVendorService(store, nil).CreateVendor(context.Background(), "acme", "")
	require.ErrorContains(t, err, "create vendor: unique constraint")
}

func TestStorefrontCredentialRoundTrip(t *testing.T) {
	t.Parallel()

	store := portmocks.NewMockVendorStore(t)
	svc := NewVendorService(store, newTestBox(t))

	var sealed string
	store.EXPECT().CreateVendor(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, input ports.CreateVendorInput) (ports.Vendor, error) {
			sealed = input.SealedStorefrontCredential
			return ports.Vendor{ID: 3, Name: input.Name, Enabled: true, SealedStorefrontCredential: sealed}, nil
		}).Once()

	created, err := svc.CreateVendor(context.Background(), "acme", "shpat_secret")
	require.NoError(t, err)
	require.NotEmpty(t, sealed)
	require.NotContains(t, sealed, "shpat_secret")

	store.EXPECT().GetVendorByID(mock.Anything, int64(3)).Return(created.Vendor, nil).Once()
	credential, err := svc.RevealStorefrontCredential(context.Background(), 3)
	require.NoError(t, err)
	require.Equal(t, "shpat_secret", credential)
}

func TestRevealStorefrontCredentialErrors(t *testing.T) {
	t.Parallel()

	store := portmocks.NewMockVendorStore(t)
	svc := NewVendorService(store, newTestBox(t))

	store.EXPECT().GetVendorByID(mock.Anything, int64(1)).Return(ports.Vendor{ID: 1, Name: "acme"}, nil).Once()
	_, err := svc.RevealStorefrontCredential(context.Background(), 1)
	require.ErrorIs(t, err, ErrNoStorefrontCredential)

	store.EXPECT().GetVendorByID(mock.Anything, int64(404)).Return(ports.Vendor{}, sql.ErrNoRows).Once()
	_, err = svc.RevealStorefrontCredential(context.Background(), 404)
	require.ErrorIs(t, err, ErrVendorNotFound)

	store.EXPECT().GetVendorByID(mock.Anything, int64(2)).Return(ports.Vendor{ID: 2, SealedStorefrontCredential: "bm90LXNlYWxlZA=="}, nil).Once()
	_, err = svc.RevealStorefrontCredential(context.Background(), 2)
	require.ErrorIs(t, err, secrets.ErrMalformed)
}

func TestSetVendorEnabled(t *testing.T) {
	t.Parallel()

	store := portmocks.NewMockVendorStore(t)
	svc := NewVendorService(store, nil)

	store.EXPECT().GetVendorByID(mock.Anything, int64(1)).Return(ports.Vendor{ID: 1, Enabled: true}, nil).Once()
	store.EXPECT().UpdateVendorEnabled(mock.Anything, int64(1), false).Return(nil).Once()
	require.NoError(t, svc.SetVendorEnabled(context.Background(), 1, false))

	require.ErrorIs(t, svc.SetVendorEnabled(context.Background(), 0, true), ErrVendorNotFound)

	store.EXPECT().GetVendorByID(mock.Anything, int64(99)).Return(ports.Vendor{}, sql.ErrNoRows).Once()
	require.ErrorIs(t, svc.SetVendorEnabled(context.Background(), 99, true), ErrVendorNotFound)
}

func TestListVendorsPassesThrough(t *testing.T) {
	t.Parallel()

	store := portmocks.NewMockVendorStore(t)
	want := []ports.Vendor{{ID: 1, Name: "acme"}, {ID: 2, Name: "globex", Enabled: true}}
	store.EXPECT().ListVendors(mock.Anything).Return(want, nil).Once()

	vendors, err := NewVendorService(store, nil).ListVendors(context.Background())
	require.NoError(t, err)
	require.Equal(t, want, vendors)
}
