// auth_service.go
//
// Manufacturing quality management service: complaints, 8D reports and corrective actions
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of qms.
// qms is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// qms is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with qms.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
	authorizer "github.com/localnerve/authorizer-go"
	"github.com/localnerve/qms/internal/config"
)

// Identity is the verified caller as asserted by the identity provider
type Identity struct {
	Subject string         `json:"sub"`
	Email   string         `json:"email"`
	Name    string         `json:"name"`
	Claims  map[string]any `json:"-"`
}

// TokenVerifier checks a bearer ID token and extracts the caller identity
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
	// Close releases background key refresh and client resources.
	Close()
}

// NewTokenVerifier builds the verifier selected by AUTH_PROVIDER.
func NewTokenVerifier(ctx context.Context, cfg config.AuthConfig) (TokenVerifier, error) {
	switch cfg.Provider {
	case "jwks", "":
		return NewJWKSVerifier(ctx, JWKSConfig{
			EnableVerification: cfg.EnableVerification,
			JWKSURL:            cfg.JWKSURL,
			Issuer:             cfg.Issuer,
			Audience:           cfg.Audience,
		})
	case "authorizer":
		return NewAuthorizerVerifier(cfg.AuthzURL, cfg.AuthzClientID)
	}
	return nil, fmt.Errorf("unsupported auth provider: %s", cfg.Provider)
}

// JWKSConfig contains configuration for the JWKS verifier.
type JWKSConfig struct {
	// EnableVerification set to false parses tokens without checking signatures.
	EnableVerification bool
	JWKSURL            string
	Issuer             string
	Audience           string
}

// JWKSVerifier validates RS256 ID tokens against the provider's published key set.
// Firebase ID tokens are verified this way.
type JWKSVerifier struct {
	config JWKSConfig
	jwks   keyfunc.Keyfunc
	cancel context.CancelFunc
}

// NewJWKSVerifier fetches the key set and keeps it refreshed until Close.
func NewJWKSVerifier(ctx context.Context, cfg JWKSConfig) (*JWKSVerifier, error) {
	v := &JWKSVerifier{config: cfg}
	if !cfg.EnableVerification {
		return v, nil
	}

	refreshCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	jwks, err := keyfunc.NewDefaultCtx(refreshCtx, []string{cfg.JWKSURL})
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to create JWKS client for %s: %w", cfg.JWKSURL, err)
	}
	v.jwks = jwks
	v.cancel = cancel
	return v, nil
}

// NewJWKSVerifierWithKeyfunc verifies against an already loaded key set.
func NewJWKSVerifierWithKeyfunc(cfg JWKSConfig, jwks keyfunc.Keyfunc) *JWKSVerifier {
	cfg.EnableVerification = true
	return &JWKSVerifier{config: cfg, jwks: jwks}
}

// Verify validates signature, expiry, issuer and audience.
func (v *JWKSVerifier) Verify(ctx context.Context, tokenString string) (*Identity, error) {
	if !v.config.EnableVerification {
		return v.parseUnverified(tokenString)
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, v.jwks.KeyfuncCtx(ctx),
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithIssuer(v.config.Issuer),
		jwt.WithAudience(v.config.Audience),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	return identityFromClaims(claims)
}

// parseUnverified parses a JWT without verifying the signature.
// Used in development mode when EnableVerification is false.
func (v *JWKSVerifier) parseUnverified(tokenString string) (*Identity, error) {
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return identityFromClaims(claims)
}

// Close stops background key refresh.
func (v *JWKSVerifier) Close() {
	if v.cancel != nil {
		v.cancel()
	}
}

// AuthorizerVerifier validates ID tokens by asking an Authorizer server.
type AuthorizerVerifier struct {
	client *authorizer.AuthorizerClient
}

// NewAuthorizerVerifier creates the Authorizer client once for the process.
func NewAuthorizerVerifier(authzURL, clientID string) (*AuthorizerVerifier, error) {
	client, err := authorizer.NewAuthorizerClient(clientID, authzURL, "", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create authorizer client: %w", err)
	}
	return &AuthorizerVerifier{client: client}, nil
}

// Verify validates the token with the Authorizer server.
func (v *AuthorizerVerifier) Verify(_ context.Context, token string) (*Identity, error) {
	res, err := v.client.ValidateJWTToken(&authorizer.ValidateJWTTokenInput{
		TokenType: authorizer.TokenTypeIDToken,
		Token:     token,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if res == nil || !res.IsValid {
		return nil, fmt.Errorf("%w: token is not valid", ErrInvalidToken)
	}
	return identityFromClaims(res.Claims)
}

// Close is a no-op. The Authorizer client holds no background resources.
func (v *AuthorizerVerifier) Close() {}

func identityFromClaims(claims map[string]any) (*Identity, error) {
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	if name == "" {
		given, _ := claims["given_name"].(string)
		family, _ := claims["family_name"].(string)
		name = strings.TrimSpace(given + " " + family)
	}

	return &Identity{
		Subject: sub,
		Email:   email,
		Name:    name,
		Claims:  claims,
	}, nil
}

// DisplayName is the name to show for the identity, falling back to email.
func (i *Identity) DisplayName() string {
	if i.Name != "" {
		return i.Name
	}
	return i.Email
}

// ensure interface compliance at compile time
var (
	_ TokenVerifier = (*JWKSVerifier)(nil)
	_ TokenVerifier = (*AuthorizerVerifier)(nil)
)

// IsInvalidToken reports whether err came from token verification.
func IsInvalidToken(err error) bool {
	return errors.Is(err, ErrInvalidToken)
}
