package services

import (
	"context"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/sevahub-simple/dto"
)

// securetokenCertsURL serves the rotating x509 certificates Google signs
// Firebase ID tokens with.
const securetokenCertsURL = "https://www.googleapis.com/robot/v1/metadata/x509/securetoken@system.gserviceaccount.com"

// FirebaseVerifier validates Firebase ID tokens: RS256 signature against
// Google's published certificates, audience equal to the project id, issuer
// equal to the project's securetoken issuer, and a live expiry. Certificates
// are cached until the Cache-Control max-age lapses.
type FirebaseVerifier struct {
	projectID  string
	httpClient *http.Client
	logger     *zap.Logger
	certsURL   string

	mu        sync.Mutex
	certs     map[string]*rsa.PublicKey
	refreshAt time.Time
}

// NewFirebaseVerifier creates a verifier for the given Firebase project.
// A nil client gets a 10 second timeout default.
func NewFirebaseVerifier(projectID string, client *http.Client, logger *zap.Logger) *FirebaseVerifier {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FirebaseVerifier{
		projectID:  projectID,
		httpClient: client,
		logger:     logger,
		certsURL:   securetokenCertsURL,
	}
}

// VerifyIDToken checks the raw token and returns its verified claims.
func (v *FirebaseVerifier) VerifyIDToken(ctx context.Context, rawToken string) (*dto.IdentityClaims, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(t *jwt.Token) (interface{}, error) {
		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return nil, errors.New("token missing kid header")
		}
		return v.certificate(ctx, kid)
	},
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithAudience(v.projectID),
		jwt.WithIssuer("https://securetoken.google.com/"+v.projectID),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("parse id token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid id token")
	}

	subject, _ := claims["sub"].(string)
	if subject == "" {
		return nil, errors.New("id token missing subject")
	}

	identity := &dto.IdentityClaims{Subject: subject}
	identity.Email, _ = claims["email"].(string)
	identity.Name, _ = claims["name"].(string)
	identity.Picture, _ = claims["picture"].(string)
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		identity.IssuedAt = iat.Time
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		identity.ExpiresAt = exp.Time
	}
	return identity, nil
}

// certificate returns the public key for kid, refreshing the cache when the
// cache is stale or the kid is unknown (Google rotates certificates).
func (v *FirebaseVerifier) certificate(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.certs == nil || time.Now().After(v.refreshAt) {
		if err := v.refreshLocked(ctx); err != nil {
			return nil, err
		}
	}
	key, ok := v.certs[kid]
	if !ok {
		if err := v.refreshLocked(ctx); err != nil {
			return nil, err
		}
		key, ok = v.certs[kid]
	}
	if !ok {
		return nil, fmt.Errorf("no certificate for kid %q", kid)
	}
	return key, nil
}

func (v *FirebaseVerifier) refreshLocked(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.certsURL, nil)
	if err != nil {
		return fmt.Errorf("build certificate request: %w", err)
	}

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch certificates: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read certificates: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("certificate fetch failed: status=%d", resp.StatusCode)
	}

	var raw map[string]string
	if err := json.Unmarshal(body, &raw); err != nil {
		return fmt.Errorf("decode certificates: %w", err)
	}

	certs := make(map[string]*rsa.PublicKey, len(raw))
	for kid, pemCert := range raw {
		block, _ := pem.Decode([]byte(pemCert))
		if block == nil {
			continue
		}
		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			v.logger.Warn("skipping unparsable certificate", zap.String("kid", kid), zap.Error(err))
			continue
		}
		if key, ok := cert.PublicKey.(*rsa.PublicKey); ok {
			certs[kid] = key
		}
	}
	if len(certs) == 0 {
		return errors.New("no usable certificates in response")
	}

	v.certs = certs
	v.refreshAt = time.Now().Add(certMaxAge(resp.Header.Get("Cache-Control")))
	return nil
}

// certMaxAge extracts the max-age directive, defaulting to an hour.
func certMaxAge(header string) time.Duration {
	for _, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(part)
		if after, ok := strings.CutPrefix(part, "max-age="); ok {
			if secs, err := strconv.Atoi(after); err == nil && secs > 0 {
				return time.Duration(secs) * time.Second
			}
		}
	}
	return time.Hour
}
