package identity

// Package identity contains domain-level types for the current user's
// profile record. It is pure and free of transport/adapter concerns.

import "encoding/json"

// Role represents a user's authorization role as carried on the wire.
// The set is closed; valid values are defined as constants below.
type Role string

const (
	RoleSuperuser Role = "SU"
	RoleModerator Role = "MO"
	RoleStandard  Role = "US"
)

// Elevated reports whether the role may delete other accounts.
func (r Role) Elevated() bool {
	return r == RoleSuperuser || r == RoleModerator
}

// Known reports whether the role is one of the declared values.
func (r Role) Known() bool {
	switch r {
	case RoleSuperuser, RoleModerator, RoleStandard:
		return true
	}
	return false
}

// User is the profile record for an account. Declared fields mirror the
// server's profile serializer; anything else the server sends is preserved
// verbatim in Extra so that a serialize/deserialize round trip is lossless.
//
// Timestamps are kept as the server's raw strings rather than time.Time:
// this core never interprets them and re-encoding must not reformat them.
type User struct {
	ID           int64
	Username     string
	Email        string
	FirstName    string
	LastName     string
	Role         Role
	DateJoined   string
	LastActivity string

	// Extra holds profile fields this core does not model.
	Extra map[string]json.RawMessage
}

// declared keys handled explicitly by the JSON codec.
const (
	keyID           = "id"
	keyUsername     = "username"
	keyEmail        = "email"
	keyFirstName    = "first_name"
	keyLastName     = "last_name"
	keyRole         = "role"
	keyDateJoined   = "date_joined"
	keyLastActivity = "last_activity"
)

// UnmarshalJSON decodes declared fields and routes everything else into Extra.
func (u *User) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	type declared struct {
		ID           int64  `json:"id"`
		Username     string `json:"username"`
		Email        string `json:"email"`
		FirstName    string `json:"first_name"`
		LastName     string `json:"last_name"`
		Role         Role   `json:"role"`
		DateJoined   string `json:"date_joined"`
		LastActivity string `json:"last_activity"`
	}
	var d declared
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}

	*u = User{
		ID:           d.ID,
		Username:     d.Username,
		Email:        d.Email,
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		Role:         d.Role,
		DateJoined:   d.DateJoined,
		LastActivity: d.LastActivity,
	}

	for _, k := range []string{
		keyID, keyUsername, keyEmail, keyFirstName,
		keyLastName, keyRole, keyDateJoined, keyLastActivity,
	} {
		delete(raw, k)
	}
	if len(raw) > 0 {
		u.Extra = raw
	}
	return nil
}

// MarshalJSON re-encodes declared fields and merges Extra back in.
// Declared fields win on key collision.
func (u User) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(u.Extra)+8)
	for k, v := range u.Extra {
		out[k] = v
	}

	put := func(key string, v any) error {
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		out[key] = b
		return nil
	}
	if err := put(keyID, u.ID); err != nil {
		return nil, err
	}
	if err := put(keyUsername, u.Username); err != nil {
		return nil, err
	}
	if err := put(keyEmail, u.Email); err != nil {
		return nil, err
	}
	if err := put(keyFirstName, u.FirstName); err != nil {
		return nil, err
	}
	if err := put(keyLastName, u.LastName); err != nil {
		return nil, err
	}
	if err := put(keyRole, u.Role); err != nil {
		return nil, err
	}
	if err := put(keyDateJoined, u.DateJoined); err != nil {
		return nil, err
	}
	if err := put(keyLastActivity, u.LastActivity); err != nil {
		return nil, err
	}

	return json.Marshal(out)
}

// Clone returns a deep copy, including the Extra map.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	cp := *u
	if u.Extra != nil {
		cp.Extra = make(map[string]json.RawMessage, len(u.Extra))
		for k, v := range u.Extra {
			cp.Extra[k] = append(json.RawMessage(nil), v...)
		}
	}
	return &cp
}

// ProfileDocument returns the user as a generic JSON document
// (declared fields plus extras) for query-style consumers.
func (u *User) ProfileDocument() (map[string]any, error) {
	b, err := json.Marshal(u)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
