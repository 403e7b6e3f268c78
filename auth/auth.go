/*
Package auth provides the injected identity provider.

PURPOSE:
  The login check is a static credential lookup, not a security
  boundary: case-insensitive email match, exact password match, returns
  a role or nothing. The provider is injected so deployments swap the
  credential source (YAML file, env, a real IdP later) without touching
  the gateway.
*/
package auth

import "strings"

// =============================================================================
// ROLES
// =============================================================================

type Role string

const (
	RoleCollector Role = "collector"
	RoleManager   Role = "manager"
)

// =============================================================================
// PROVIDER
// =============================================================================

// Credential is one entry in the static credential table.
type Credential struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Role     Role   `yaml:"role"`
	Name     string `yaml:"name"`
}

// Provider resolves credentials to a role.
type Provider interface {
	// Authenticate returns the role for the credentials, or false if
	// they match no known user.
	Authenticate(email, password string) (Role, bool)
}

// StaticProvider authenticates against a fixed credential table.
type StaticProvider struct {
	creds []Credential
}

func NewStaticProvider(creds []Credential) *StaticProvider {
	return &StaticProvider{creds: creds}
}

// Authenticate matches the email case-insensitively and the password
// exactly. Surrounding whitespace is ignored on both.
func (p *StaticProvider) Authenticate(email, password string) (Role, bool) {
	cleanEmail := strings.ToLower(strings.TrimSpace(email))
	cleanPassword := strings.TrimSpace(password)

	for _, c := range p.creds {
		if strings.ToLower(c.Email) == cleanEmail && c.Password == cleanPassword {
			return c.Role, true
		}
	}
	return "", false
}
