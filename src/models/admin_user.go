package models

// AdminUser represents a CMS administrator account as returned by the API.
// The password is write-only: it appears in create/update payloads and is
// never present in responses.
type AdminUser struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      Role   `json:"role"`
	CreatedAt string `json:"createdAt"`
}

// CreateAdminUserRequest is the payload for POST /admin/users.
type CreateAdminUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     Role   `json:"role,omitempty"`
}

// UpdateAdminUserRequest is the partial payload for PUT /admin/users/:id.
// A nil Password means "no change"; the field is omitted from the JSON body
// entirely so the server never interprets an empty string as a new password.
type UpdateAdminUserRequest struct {
	Email    *string `json:"email,omitempty"`
	Name     *string `json:"name,omitempty"`
	Role     *Role   `json:"role,omitempty"`
	Password *string `json:"password,omitempty"`
}
