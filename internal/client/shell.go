package client

import (
	"context"
	"strings"
)

type Link struct {
	Label string
	Path  string
}

var navigation = map[string][]Link{
	RoleAdmin: {
		{Label: "Users", Path: "./"},
		{Label: "User Information", Path: "./user-info"},
		{Label: "Projects", Path: "./assign-projects"},
	},
	RoleApprover: {
		{Label: "Pending", Path: "./"},
		{Label: "Approved", Path: "./approved"},
		{Label: "Rolled back", Path: "./rolled-back"},
	},
	RoleDeveloper: {
		{Label: "Projects", Path: "./"},
		{Label: "Change Request History", Path: "./change-requests-history"},
		{Label: "Actions", Path: "./actions"},
	},
}

const NoAccessMessage = "You don't have access to any dashboard"

// Navigation returns the links of role, or nil for an unknown role.
func Navigation(role string) []Link {
	links, ok := navigation[strings.ToLower(strings.TrimSpace(role))]
	if !ok {
		return nil
	}
	return append([]Link(nil), links...)
}

// DefaultRoute is the dashboard a role lands on.
func DefaultRoute(role string) string {
	switch r := strings.ToLower(strings.TrimSpace(role)); r {
	case RoleAdmin, RoleApprover, RoleDeveloper:
		return "/dashboards/" + r
	}
	return "/dashboards"
}

// Shell is the dashboard frame. Every shell resolves the identity itself on
// Load; nothing is shared between shells.
type Shell struct {
	viewState
	api    *Client
	user   *User
	loaded bool
}

func NewShell(api *Client) *Shell {
	return &Shell{api: api}
}

func (s *Shell) Load(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	u, err := s.api.Me(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.loaded = true
	if err != nil {
		s.user = nil
		s.err = "Authentication check failed"
		return err
	}
	if u == nil {
		s.user = nil
		s.err = "No user data received"
		return validationError(s.err)
	}
	s.user = u
	return nil
}

func (s *Shell) User() *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Links is empty while loading and for users without a known role.
func (s *Shell) Links() []Link {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loading || s.user == nil {
		return nil
	}
	return Navigation(s.user.UserType)
}

// NoAccess reports that identity resolved but grants no dashboard.
func (s *Shell) NoAccess() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded || s.loading {
		return false
	}
	return s.user == nil || Navigation(s.user.UserType) == nil
}

type Decision struct {
	Allowed  bool
	Redirect string
	User     *User
}

// Guard gates a route on identity and role.
type Guard struct {
	api *Client
}

func NewGuard(api *Client) *Guard {
	return &Guard{api: api}
}

// Check resolves the identity. No identity sends the caller to /login; a role
// outside a non-empty allowed list sends it to the role's own dashboard.
func (g *Guard) Check(ctx context.Context, allowed ...string) Decision {
	u, err := g.api.Me(ctx)
	if err != nil || u == nil {
		return Decision{Redirect: "/login"}
	}
	if len(allowed) == 0 {
		return Decision{Allowed: true, User: u}
	}
	role := strings.ToLower(u.UserType)
	for _, a := range allowed {
		if strings.ToLower(a) == role {
			return Decision{Allowed: true, User: u}
		}
	}
	return Decision{Redirect: DefaultRoute(role), User: u}
}
