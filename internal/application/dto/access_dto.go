package dto

import "time"

// MemberResponse un usuario con acceso a un restaurante y su rol.
type MemberResponse struct {
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	GrantedAt time.Time `json:"granted_at"`
}

// MemberListResponse listado de miembros de un restaurante.
type MemberListResponse struct {
	Members []MemberResponse `json:"members"`
	Total   int              `json:"total"`
}
