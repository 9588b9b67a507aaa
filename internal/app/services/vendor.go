package services

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fr0stylo/partnerhub/internal/app/ports"
)

const apiTokenBytes = 32

var (
	// ErrInvalidVendorName indicates a blank vendor name.
	ErrInvalidVendorName = errors.New("vendor name is required")
	// ErrVendorNotFound indicates no vendor with that id.
	ErrVendorNotFound = errors.New("vendor not found")
	// ErrNoStorefrontCredential indicates the vendor never stored a credential.
	ErrNoStorefrontCredential = errors.New("vendor has no storefront credential")
	// ErrCredentialBoxUnavailable indicates no secret key was configured.
	ErrCredentialBoxUnavailable = errors.New("credential encryption is not configured")
)

// CredentialBox seals vendor storefront credentials at rest.
type CredentialBox interface {
	Seal(plaintext string) (string, error)
	Open(sealed string) (string, error)
}

// VendorCredentials is returned once, at vendor creation. The API token is
// never stored in clear.
type VendorCredentials struct {
	Vendor   ports.Vendor
	APIToken string
}

// VendorService manages vendors and their API tokens.
type VendorService struct {
	store  ports.VendorStore
	box    CredentialBox
	random io.Reader
}

// NewVendorService constructs a vendor service. box may be nil when no
// storefront credentials are handled.
func NewVendorService(store ports.VendorStore, box CredentialBox) *VendorService {
	return &VendorService{store: store, box: box, random: rand.Reader}
}

// CreateVendor registers a vendor and issues its API token.
func (s *VendorService) CreateVendor(ctx context.Context, name, storefrontCredential string) (VendorCredentials, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return VendorCredentials{}, ErrInvalidVendorName
	}

	token, err := s.newAPIToken()
	if err != nil {
		return VendorCredentials{}, err
	}

	sealed := ""
	if credential := strings.TrimSpace(storefrontCredential); credential != "" {
		if s.box == nil {
			return VendorCredentials{}, ErrCredentialBoxUnavailable
		}
		sealed, err = s.box.Seal(credential)
		if err != nil {
			return VendorCredentials{}, fmt.Errorf("seal storefront credential: %w", err)
		}
	}

	vendor, err := s.store.CreateVendor(ctx, ports.CreateVendorInput{
		Name:                       name,
		TokenHash:                  HashToken(token),
		SealedStorefrontCredential: sealed,
		Enabled:                    true,
	})
	if err != nil {
		return VendorCredentials{}, fmt.Errorf("create vendor: %w", err)
	}
	return VendorCredentials{Vendor: vendor, APIToken: token}, nil
}

// RevealStorefrontCredential decrypts a vendor's stored storefront credential.
func (s *VendorService) RevealStorefrontCredential(ctx context.Context, vendorID int64) (string, error) {
	vendor, err := s.getVendor(ctx, vendorID)
	if err != nil {
		return "", err
	}
	if vendor.SealedStorefrontCredential == "" {
		return "", ErrNoStorefrontCredential
	}
	if s.box == nil {
		return "", ErrCredentialBoxUnavailable
	}
	credential, err := s.box.Open(vendor.SealedStorefrontCredential)
	if err != nil {
		return "", fmt.Errorf("open storefront credential: %w", err)
	}
	return credential, nil
}

// SetVendorEnabled enables or disables a vendor's API token.
func (s *VendorService) SetVendorEnabled(ctx context.Context, vendorID int64, enabled bool) error {
	if _, err := s.getVendor(ctx, vendorID); err != nil {
		return err
	}
	return s.store.UpdateVendorEnabled(ctx, vendorID, enabled)
}

// ListVendors returns all vendors ordered by id.
func (s *VendorService) ListVendors(ctx context.Context) ([]ports.Vendor, error) {
	return s.store.ListVendors(ctx)
}

func (s *VendorService) getVendor(ctx context.Context, vendorID int64) (ports.Vendor, error) {
	if vendorID <= 0 {
		return ports.Vendor{}, ErrVendorNotFound
	}
	vendor, err := s.store.GetVendorByID(ctx, vendorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ports.Vendor{}, ErrVendorNotFound
		}
		return ports.Vendor{}, err
	}
	return vendor, nil
}

func (s *VendorService) newAPIToken() (string, error) {
	buf := make([]byte, apiTokenBytes)
	if _, err := io.ReadFull(s.random, buf); err != nil {
		return "", fmt.Errorf("generate api token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
